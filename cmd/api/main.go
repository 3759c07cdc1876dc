package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"aula-match/internal/config"
	"aula-match/internal/db"
	"aula-match/internal/email"
	apihttp "aula-match/internal/http"
	"aula-match/internal/repository"
	"aula-match/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	userRepo := repository.NewPgUserRepository(pool)
	answerRepo := repository.NewPgAnswerRepository(pool)
	profileRepo := repository.NewPgProfileRepository(pool)
	styleRepo := repository.NewPgStyleRepository(pool)
	contentRepo := repository.NewPgContentRepository(pool)

	emailSender := email.NewDisabledSender("email sender not configured")
	if cfg.SMTPHost != "" {
		sender, err := email.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.SMTPFromName, cfg.SMTPUseTLS)
		if err != nil {
			logger.Warn("smtp sender init failed", zap.Error(err))
		} else {
			emailSender = sender
		}
	}

	otpLimiter := service.NewMemoryRateLimiter(10*time.Minute, 3)
	var (
		tokenStore   service.RefreshTokenStore
		catalogCache service.CatalogCache
	)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			otpLimiter = service.NewRedisRateLimiter(redisClient, 10*time.Minute, 3)
			tokenStore = service.NewRedisRefreshTokenStore(redisClient)
			catalogCache = service.NewRedisCatalogCache(redisClient, time.Duration(cfg.CatalogCacheTTL)*time.Minute)
		}
		cancel()
	}

	jwtSvc := service.NewJWTServiceWithStore(
		cfg.JWTSecret,
		time.Duration(cfg.JWTAccessTTLMinutes)*time.Minute,
		time.Duration(cfg.JWTRefreshTTLMinutes)*time.Minute,
		tokenStore,
	)
	if cfg.JWTSecret == "" {
		logger.Warn("jwt secret not configured")
	}

	userSvc := service.NewUserService(logger, userRepo, emailSender, otpLimiter)
	diagnosisSvc := service.NewDiagnosisService(answerRepo, profileRepo, userRepo, emailSender, logger)
	recommendSvc := service.NewRecommendationService(styleRepo, profileRepo, catalogCache, logger)
	contentSvc := service.NewContentService(styleRepo, profileRepo, contentRepo, logger)

	userHandler := apihttp.NewUserHandler(logger, userSvc, jwtSvc)
	diagnosisHandler := apihttp.NewDiagnosisHandler(logger, diagnosisSvc)
	recommendHandler := apihttp.NewRecommendationHandler(logger, recommendSvc)
	contentHandler := apihttp.NewContentHandler(logger, contentSvc)
	router := apihttp.NewRouter(logger, jwtSvc, userHandler, diagnosisHandler, recommendHandler, contentHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
