package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"aula-match/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	jwtSvc *service.JWTService,
	userH *UserHandler,
	diagnosisH *DiagnosisHandler,
	recommendH *RecommendationHandler,
	contentH *ContentHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	users := r.Group("/users")
	users.POST("", userH.CreateUser)

	auth := r.Group("/auth")
	auth.POST("/login", userH.Login)
	auth.POST("/otp/request", userH.RequestOTP)
	auth.POST("/otp/verify", userH.VerifyOTP)
	auth.POST("/refresh", userH.RefreshToken)

	// Todo lo que toca el perfil del docente requiere access token.
	api := r.Group("/", JWTAuthMiddleware(jwtSvc))
	api.POST("/diagnosis", diagnosisH.SubmitDiagnosis)
	api.GET("/diagnosis/profile", diagnosisH.GetProfile)
	api.POST("/diagnosis/rerun", diagnosisH.Rerun)

	api.GET("/styles", recommendH.ListStyles)
	api.POST("/recommendations", recommendH.RecommendForMe)
	api.POST("/recommendations/by-type", recommendH.RecommendByType)
	api.POST("/recommendations/compare", recommendH.Compare)

	api.POST("/content", contentH.Generate)
	api.GET("/content", contentH.ListMine)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
