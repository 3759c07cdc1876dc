package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"aula-match/internal/domain"
	"aula-match/internal/service"
)

// DiagnosisHandler expone el envio del cuestionario y la consulta del perfil.
type DiagnosisHandler struct {
	logger       *zap.Logger
	diagnosisSvc *service.DiagnosisService
}

func NewDiagnosisHandler(logger *zap.Logger, diagnosisSvc *service.DiagnosisService) *DiagnosisHandler {
	return &DiagnosisHandler{
		logger:       logger,
		diagnosisSvc: diagnosisSvc,
	}
}

type answerRequest struct {
	QuestionID string    `json:"question_id" binding:"required"`
	Category   string    `json:"category" binding:"required"`
	Value      int       `json:"value" binding:"required,min=1,max=5"`
	AnsweredAt time.Time `json:"answered_at"`
}

// SubmitDiagnosis maneja POST /diagnosis. El motor recibe datos ya validados:
// valor en rango y categoria conocida se chequean aca, en el borde.
func (h *DiagnosisHandler) SubmitDiagnosis(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing claims"})
		return
	}

	var req struct {
		Answers []answerRequest `json:"answers" binding:"required,min=1,dive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid diagnosis request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	answers := make([]domain.Answer, 0, len(req.Answers))
	for _, a := range req.Answers {
		if !domain.IsKnownCategory(a.Category) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category: " + a.Category})
			return
		}
		answeredAt := a.AnsweredAt
		if answeredAt.IsZero() {
			answeredAt = time.Now().UTC()
		}
		answers = append(answers, domain.Answer{
			QuestionID: a.QuestionID,
			Category:   a.Category,
			Value:      a.Value,
			AnsweredAt: answeredAt,
		})
	}

	result, err := h.diagnosisSvc.RunDiagnosis(c.Request.Context(), claims.UserID, answers)
	if err != nil {
		if errors.Is(err, service.ErrDiagnosisInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid answers"})
			return
		}
		h.logger.Error("diagnosis failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not run diagnosis"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"result": result})
}

// GetProfile maneja GET /diagnosis/profile.
func (h *DiagnosisHandler) GetProfile(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing claims"})
		return
	}

	profile, err := h.diagnosisSvc.GetProfile(c.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, service.ErrDiagnosisProfileMissing) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		h.logger.Error("get profile failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// Rerun maneja POST /diagnosis/rerun: reclasifica desde respuestas guardadas.
func (h *DiagnosisHandler) Rerun(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing claims"})
		return
	}

	result, err := h.diagnosisSvc.Rediagnose(c.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, service.ErrDiagnosisInvalidInput) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no stored answers"})
			return
		}
		h.logger.Error("rediagnose failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not rerun diagnosis"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}
