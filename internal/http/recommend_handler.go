package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"aula-match/internal/domain"
	"aula-match/internal/service"
)

// RecommendationHandler expone el ranking de estilos y la comparacion.
type RecommendationHandler struct {
	logger       *zap.Logger
	recommendSvc *service.RecommendationService
}

func NewRecommendationHandler(logger *zap.Logger, recommendSvc *service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		logger:       logger,
		recommendSvc: recommendSvc,
	}
}

// ListStyles maneja GET /styles.
func (h *RecommendationHandler) ListStyles(c *gin.Context) {
	styles, err := h.recommendSvc.ListStyles(c.Request.Context())
	if err != nil {
		h.logger.Error("list styles failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load styles"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"styles": styles})
}

// RecommendForMe maneja POST /recommendations usando el perfil diagnosticado.
func (h *RecommendationHandler) RecommendForMe(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing claims"})
		return
	}

	var req struct {
		Subject    string `json:"subject"`
		GradeLevel string `json:"grade_level"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	results, err := h.recommendSvc.RecommendForUser(c.Request.Context(), claims.UserID, domain.RecommendationFilters{
		Subject:    req.Subject,
		GradeLevel: req.GradeLevel,
	})
	if err != nil {
		if errors.Is(err, service.ErrDiagnosisProfileMissing) {
			c.JSON(http.StatusNotFound, gin.H{"error": "run a diagnosis first"})
			return
		}
		h.logger.Error("recommend failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not recommend"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recommendations": results})
}

// RecommendByType maneja POST /recommendations/by-type para un tipo explicito.
func (h *RecommendationHandler) RecommendByType(c *gin.Context) {
	var req struct {
		PersonalityType string `json:"personality_type" binding:"required"`
		Subject         string `json:"subject"`
		GradeLevel      string `json:"grade_level"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	results, err := h.recommendSvc.RecommendForType(c.Request.Context(), req.PersonalityType, domain.RecommendationFilters{
		Subject:    req.Subject,
		GradeLevel: req.GradeLevel,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidPersonalityType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid personality type"})
			return
		}
		h.logger.Error("recommend by type failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not recommend"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recommendations": results})
}

// Compare maneja POST /recommendations/compare sobre ids explicitos.
func (h *RecommendationHandler) Compare(c *gin.Context) {
	var req struct {
		StyleIDs        []string `json:"style_ids" binding:"required,min=1"`
		PersonalityType string   `json:"personality_type" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	comparison, err := h.recommendSvc.Compare(c.Request.Context(), req.StyleIDs, req.PersonalityType)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPersonalityType):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid personality type"})
		case errors.Is(err, service.ErrStyleNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "style not found"})
		default:
			h.logger.Error("compare failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not compare"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"comparison": comparison})
}
