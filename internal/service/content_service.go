package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"aula-match/internal/domain"
	"aula-match/internal/repository"
)

// ContentService sintetiza contenido para un estilo elegido y lo persiste.
type ContentService struct {
	styles   repository.StyleRepository
	profiles repository.ProfileRepository
	contents repository.ContentRepository
	logger   *zap.Logger
}

var ErrContentNotConfigured = errors.New("content service not configured")

func NewContentService(styles repository.StyleRepository, profiles repository.ProfileRepository, contents repository.ContentRepository, logger *zap.Logger) *ContentService {
	return &ContentService{
		styles:   styles,
		profiles: profiles,
		contents: contents,
		logger:   logger,
	}
}

// GenerateForUser arma el contenido para el docente con su perfil vigente y el
// estilo pedido. Los errores del sintetizador (tipo de plantilla desconocido,
// desborde de duracion) suben tal cual al caller.
func (s *ContentService) GenerateForUser(ctx context.Context, userID, styleID string, params domain.LessonParams) (domain.ContentTemplate, error) {
	if s == nil || s.styles == nil || s.profiles == nil || s.contents == nil {
		return domain.ContentTemplate{}, ErrContentNotConfigured
	}

	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return domain.ContentTemplate{}, fmt.Errorf("%w: %s", ErrDiagnosisProfileMissing, userID)
	}

	catalog, err := s.styles.ListAll(ctx)
	if err != nil {
		return domain.ContentTemplate{}, fmt.Errorf("load style catalog: %w", err)
	}
	var style domain.StyleProfile
	found := false
	for _, candidate := range catalog {
		if candidate.ID == styleID {
			style = candidate
			found = true
			break
		}
	}
	if !found {
		return domain.ContentTemplate{}, fmt.Errorf("%w: %q", ErrStyleNotFound, styleID)
	}

	template, err := Synthesize(style, profile, params)
	if err != nil {
		return domain.ContentTemplate{}, err
	}

	template.ID = uuid.NewString()
	template.UserID = userID
	template.CreatedAt = time.Now().UTC()

	if err := s.contents.Create(ctx, template); err != nil {
		return domain.ContentTemplate{}, fmt.Errorf("persist content: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("content generated",
			zap.String("user_id", userID),
			zap.String("style_id", styleID),
			zap.String("template_type", params.TemplateType),
		)
	}
	return template, nil
}

// ListForUser devuelve el contenido generado previamente por el docente.
func (s *ContentService) ListForUser(ctx context.Context, userID string) ([]domain.ContentTemplate, error) {
	if s == nil || s.contents == nil {
		return nil, ErrContentNotConfigured
	}
	return s.contents.FindByUserID(ctx, userID)
}
