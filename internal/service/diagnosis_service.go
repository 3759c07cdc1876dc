package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"aula-match/internal/domain"
	"aula-match/internal/email"
	"aula-match/internal/repository"
)

// DiagnosisService orquesta el diagnostico: guarda las respuestas, corre la
// clasificacion y la validacion de confiabilidad en paralelo (son lecturas
// independientes de la misma lista) y persiste el perfil resultante.
type DiagnosisService struct {
	answers     repository.AnswerRepository
	profiles    repository.ProfileRepository
	users       repository.UserRepository
	emailSender email.Sender
	logger      *zap.Logger
}

var (
	ErrDiagnosisNotConfigured  = errors.New("diagnosis service not configured")
	ErrDiagnosisInvalidInput   = errors.New("diagnosis invalid input")
	ErrDiagnosisProfileMissing = errors.New("personality profile not found")
)

func NewDiagnosisService(answers repository.AnswerRepository, profiles repository.ProfileRepository, users repository.UserRepository, emailSender email.Sender, logger *zap.Logger) *DiagnosisService {
	return &DiagnosisService{
		answers:     answers,
		profiles:    profiles,
		users:       users,
		emailSender: emailSender,
		logger:      logger,
	}
}

// DiagnosisResult junta el perfil y el reporte de confiabilidad de una corrida.
type DiagnosisResult struct {
	Profile     domain.PersonalityProfile `json:"profile"`
	Reliability domain.ReliabilityReport  `json:"reliability"`
}

// RunDiagnosis procesa un envio completo de respuestas para un docente.
func (s *DiagnosisService) RunDiagnosis(ctx context.Context, userID string, answers []domain.Answer) (DiagnosisResult, error) {
	if s == nil || s.answers == nil || s.profiles == nil {
		return DiagnosisResult{}, ErrDiagnosisNotConfigured
	}
	userID = strings.TrimSpace(userID)
	if userID == "" || len(answers) == 0 {
		return DiagnosisResult{}, ErrDiagnosisInvalidInput
	}

	for i := range answers {
		if answers[i].ID == "" {
			answers[i].ID = uuid.NewString()
		}
		answers[i].UserID = userID
	}

	if err := s.answers.UpsertBatch(ctx, answers); err != nil {
		return DiagnosisResult{}, fmt.Errorf("persist answers: %w", err)
	}

	var (
		profile     domain.PersonalityProfile
		reliability domain.ReliabilityReport
		wg          sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		profile = Classify(answers)
	}()
	go func() {
		defer wg.Done()
		reliability = ValidateReliability(answers)
	}()
	wg.Wait()

	profile.ID = uuid.NewString()
	profile.UserID = userID
	profile.CreatedAt = time.Now().UTC()

	if err := s.profiles.Upsert(ctx, profile); err != nil {
		return DiagnosisResult{}, fmt.Errorf("persist profile: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("diagnosis completed",
			zap.String("user_id", userID),
			zap.String("type", profile.Type),
			zap.Bool("reliable", reliability.IsReliable),
		)
	}

	s.sendSummary(ctx, userID, profile)

	return DiagnosisResult{Profile: profile, Reliability: reliability}, nil
}

// sendSummary notifica el resultado por correo. Mejor esfuerzo: un fallo de
// busqueda o de envio no invalida el diagnostico.
func (s *DiagnosisService) sendSummary(ctx context.Context, userID string, profile domain.PersonalityProfile) {
	if s.emailSender == nil || s.users == nil {
		return
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil || user.Email == "" {
		return
	}
	if err := s.emailSender.SendDiagnosisSummary(ctx, user.Email, profile.Type, profile.Strengths); err != nil {
		if s.logger != nil {
			s.logger.Warn("send diagnosis summary failed", zap.Error(err), zap.String("user_id", userID))
		}
	}
}

// GetProfile devuelve el perfil vigente del docente.
func (s *DiagnosisService) GetProfile(ctx context.Context, userID string) (domain.PersonalityProfile, error) {
	if s == nil || s.profiles == nil {
		return domain.PersonalityProfile{}, ErrDiagnosisNotConfigured
	}
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return domain.PersonalityProfile{}, fmt.Errorf("%w: %s", ErrDiagnosisProfileMissing, userID)
	}
	return profile, nil
}

// Rediagnose reclasifica desde las respuestas almacenadas. Por el invariante
// de determinismo, con las mismas respuestas el perfil resultante es identico.
func (s *DiagnosisService) Rediagnose(ctx context.Context, userID string) (DiagnosisResult, error) {
	if s == nil || s.answers == nil {
		return DiagnosisResult{}, ErrDiagnosisNotConfigured
	}
	answers, err := s.answers.FindByUserID(ctx, userID)
	if err != nil {
		return DiagnosisResult{}, fmt.Errorf("load answers: %w", err)
	}
	if len(answers) == 0 {
		return DiagnosisResult{}, ErrDiagnosisInvalidInput
	}
	return s.RunDiagnosis(ctx, userID, answers)
}
