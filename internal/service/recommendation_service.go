package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"aula-match/internal/domain"
	"aula-match/internal/repository"
)

// RecommendationService carga el catalogo (cache primero, despues base) y
// aplica el motor de recomendacion puro.
type RecommendationService struct {
	styles   repository.StyleRepository
	profiles repository.ProfileRepository
	cache    CatalogCache
	logger   *zap.Logger
}

var ErrRecommendationNotConfigured = errors.New("recommendation service not configured")

func NewRecommendationService(styles repository.StyleRepository, profiles repository.ProfileRepository, cache CatalogCache, logger *zap.Logger) *RecommendationService {
	return &RecommendationService{
		styles:   styles,
		profiles: profiles,
		cache:    cache,
		logger:   logger,
	}
}

// RecommendForUser usa el perfil diagnosticado del docente, asi el motor
// aplica tambien los bonus por dimension/caracteristica.
func (s *RecommendationService) RecommendForUser(ctx context.Context, userID string, filters domain.RecommendationFilters) ([]domain.RecommendationResult, error) {
	if s == nil || s.styles == nil || s.profiles == nil {
		return nil, ErrRecommendationNotConfigured
	}
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDiagnosisProfileMissing, userID)
	}
	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	return RecommendForDiagnosis(profile, catalog, filters)
}

// RecommendForType rankea el catalogo contra un tipo pelado, sin puntajes.
func (s *RecommendationService) RecommendForType(ctx context.Context, personalityType string, filters domain.RecommendationFilters) ([]domain.RecommendationResult, error) {
	if s == nil || s.styles == nil {
		return nil, ErrRecommendationNotConfigured
	}
	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	return RecommendByType(personalityType, catalog, filters)
}

// Compare evalua un subconjunto explicito de estilos por id.
func (s *RecommendationService) Compare(ctx context.Context, ids []string, personalityType string) (domain.StyleComparison, error) {
	if s == nil || s.styles == nil {
		return domain.StyleComparison{}, ErrRecommendationNotConfigured
	}
	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return domain.StyleComparison{}, err
	}
	return CompareStyles(catalog, ids, personalityType)
}

// ListStyles expone el catalogo completo.
func (s *RecommendationService) ListStyles(ctx context.Context) ([]domain.StyleProfile, error) {
	if s == nil || s.styles == nil {
		return nil, ErrRecommendationNotConfigured
	}
	return s.loadCatalog(ctx)
}

func (s *RecommendationService) loadCatalog(ctx context.Context) ([]domain.StyleProfile, error) {
	if s.cache != nil {
		if styles, ok := s.cache.Get(ctx); ok {
			return styles, nil
		}
	}

	styles, err := s.styles.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load style catalog: %w", err)
	}

	if s.cache != nil {
		s.cache.Set(ctx, styles)
	}
	if s.logger != nil {
		s.logger.Debug("style catalog loaded", zap.Int("styles", len(styles)))
	}
	return styles, nil
}
