package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"aula-match/internal/service"
)

// UserHandler expone alta de docentes y autenticacion.
type UserHandler struct {
	logger  *zap.Logger
	userSvc *service.UserService
	jwtSvc  *service.JWTService
}

func NewUserHandler(logger *zap.Logger, userSvc *service.UserService, jwtSvc *service.JWTService) *UserHandler {
	return &UserHandler{
		logger:  logger,
		userSvc: userSvc,
		jwtSvc:  jwtSvc,
	}
}

// CreateUser maneja POST /users.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req struct {
		Email       string `json:"email" binding:"required,email"`
		DisplayName string `json:"display_name"`
		Password    string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create user request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := h.userSvc.CreateUser(c.Request.Context(), service.CreateUserInput{
		Email:       req.Email,
		DisplayName: req.DisplayName,
		Password:    req.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid email"})
			return
		}
		h.logger.Error("create user failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// Login maneja POST /auth/login.
func (h *UserHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := h.userSvc.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		h.logger.Error("login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not login"})
		return
	}

	pair, err := h.jwtSvc.GeneratePair(user)
	if err != nil {
		h.logger.Error("token generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue tokens"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "tokens": pair})
}

// RequestOTP maneja POST /auth/otp/request.
func (h *UserHandler) RequestOTP(c *gin.Context) {
	var req struct {
		Email       string `json:"email" binding:"required,email"`
		DisplayName string `json:"display_name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := h.userSvc.RequestOTP(c.Request.Context(), req.Email, req.DisplayName)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRateLimited):
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many otp requests"})
		case errors.Is(err, service.ErrEmailSendFailure):
			c.JSON(http.StatusBadGateway, gin.H{"error": "could not send otp"})
		case errors.Is(err, service.ErrInvalidEmail):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid email"})
		default:
			h.logger.Error("request otp failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not request otp"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// VerifyOTP maneja POST /auth/otp/verify y emite tokens si el codigo es valido.
func (h *UserHandler) VerifyOTP(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
		Code  string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := h.userSvc.VerifyOTP(c.Request.Context(), req.Email, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		case errors.Is(err, service.ErrOTPNotRequested),
			errors.Is(err, service.ErrOTPExpired),
			errors.Is(err, service.ErrOTPInvalid):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "otp invalid"})
		default:
			h.logger.Error("verify otp failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not verify otp"})
		}
		return
	}

	pair, err := h.jwtSvc.GeneratePair(user)
	if err != nil {
		h.logger.Error("token generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue tokens"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "tokens": pair})
}

// RefreshToken maneja POST /auth/refresh.
func (h *UserHandler) RefreshToken(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	pair, err := h.jwtSvc.RefreshPair(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid refresh token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tokens": pair})
}
