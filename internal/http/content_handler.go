package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"aula-match/internal/domain"
	"aula-match/internal/service"
)

// ContentHandler expone la sintesis de contenido.
type ContentHandler struct {
	logger     *zap.Logger
	contentSvc *service.ContentService
}

func NewContentHandler(logger *zap.Logger, contentSvc *service.ContentService) *ContentHandler {
	return &ContentHandler{
		logger:     logger,
		contentSvc: contentSvc,
	}
}

// Generate maneja POST /content.
func (h *ContentHandler) Generate(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing claims"})
		return
	}

	var req struct {
		StyleID         string `json:"style_id" binding:"required"`
		Subject         string `json:"subject" binding:"required"`
		GradeLevel      string `json:"grade_level" binding:"required"`
		DurationMinutes int    `json:"duration_minutes" binding:"required,min=10,max=240"`
		TemplateType    string `json:"template_type" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid content request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	template, err := h.contentSvc.GenerateForUser(c.Request.Context(), claims.UserID, req.StyleID, domain.LessonParams{
		Subject:         req.Subject,
		GradeLevel:      req.GradeLevel,
		DurationMinutes: req.DurationMinutes,
		TemplateType:    req.TemplateType,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnsupportedTemplateType):
			c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported template type"})
		case errors.Is(err, service.ErrDurationOverflow):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "activities exceed lesson duration"})
		case errors.Is(err, service.ErrStyleNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "style not found"})
		case errors.Is(err, service.ErrDiagnosisProfileMissing):
			c.JSON(http.StatusNotFound, gin.H{"error": "run a diagnosis first"})
		default:
			h.logger.Error("generate content failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate content"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"content": template})
}

// ListMine maneja GET /content.
func (h *ContentHandler) ListMine(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing claims"})
		return
	}

	contents, err := h.contentSvc.ListForUser(c.Request.Context(), claims.UserID)
	if err != nil {
		h.logger.Error("list content failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load content"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"contents": contents})
}
