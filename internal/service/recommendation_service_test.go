package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"aula-match/internal/domain"
)

type fakeStyleRepo struct {
	styles []domain.StyleProfile
	calls  int
	err    error
}

func (f *fakeStyleRepo) ListAll(_ context.Context) ([]domain.StyleProfile, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.styles, nil
}

type fakeCatalogCache struct {
	styles []domain.StyleProfile
	loaded bool
	sets   int
}

func (f *fakeCatalogCache) Get(_ context.Context) ([]domain.StyleProfile, bool) {
	return f.styles, f.loaded
}

func (f *fakeCatalogCache) Set(_ context.Context, styles []domain.StyleProfile) {
	f.styles = styles
	f.loaded = true
	f.sets++
}

func catalogFixture() []domain.StyleProfile {
	return []domain.StyleProfile{
		{
			ID:   "s1",
			Name: "Metodo de Casos",
			Compatibility: domain.StyleCompatibility{
				PersonalityTypes: []string{"INTJ", "INTP"},
			},
		},
		{
			ID:   "s2",
			Name: "Dramatizaciones",
			Compatibility: domain.StyleCompatibility{
				PersonalityTypes: []string{"ESFP"},
			},
		},
	}
}

func TestRecommendationService_RecommendForType(t *testing.T) {
	repo := &fakeStyleRepo{styles: catalogFixture()}
	svc := NewRecommendationService(repo, newFakeProfileRepo(), nil, zap.NewNop())

	results, err := svc.RecommendForType(context.Background(), "INTJ", domain.RecommendationFilters{})
	if err != nil {
		t.Fatalf("recommend for type: %v", err)
	}
	if len(results) != 1 || results[0].Style.ID != "s1" {
		t.Fatalf("expected s1 only, got %+v", results)
	}

	if _, err := svc.RecommendForType(context.Background(), "mal", domain.RecommendationFilters{}); !errors.Is(err, ErrInvalidPersonalityType) {
		t.Fatalf("expected ErrInvalidPersonalityType, got %v", err)
	}
}

func TestRecommendationService_RecommendForUser(t *testing.T) {
	repo := &fakeStyleRepo{styles: catalogFixture()}
	profiles := newFakeProfileRepo()
	svc := NewRecommendationService(repo, profiles, nil, zap.NewNop())

	if _, err := svc.RecommendForUser(context.Background(), "u1", domain.RecommendationFilters{}); !errors.Is(err, ErrDiagnosisProfileMissing) {
		t.Fatalf("expected ErrDiagnosisProfileMissing, got %v", err)
	}

	profiles.byUser["u1"] = domain.PersonalityProfile{
		UserID: "u1",
		Type:   "INTJ",
		Scores: domain.CategoryScores{domain.CategoryThinking: 90},
	}
	results, err := svc.RecommendForUser(context.Background(), "u1", domain.RecommendationFilters{})
	if err != nil {
		t.Fatalf("recommend for user: %v", err)
	}
	if len(results) != 1 || results[0].Style.ID != "s1" {
		t.Fatalf("expected s1 only, got %+v", results)
	}
}

func TestRecommendationService_CatalogCache(t *testing.T) {
	repo := &fakeStyleRepo{styles: catalogFixture()}
	cache := &fakeCatalogCache{}
	svc := NewRecommendationService(repo, newFakeProfileRepo(), cache, zap.NewNop())

	if _, err := svc.ListStyles(context.Background()); err != nil {
		t.Fatalf("first list: %v", err)
	}
	if repo.calls != 1 || cache.sets != 1 {
		t.Fatalf("expected repo hit and cache fill, got calls=%d sets=%d", repo.calls, cache.sets)
	}

	if _, err := svc.ListStyles(context.Background()); err != nil {
		t.Fatalf("second list: %v", err)
	}
	if repo.calls != 1 {
		t.Fatalf("expected cache hit on second list, repo calls = %d", repo.calls)
	}
}

func TestRecommendationService_Compare(t *testing.T) {
	repo := &fakeStyleRepo{styles: catalogFixture()}
	svc := NewRecommendationService(repo, newFakeProfileRepo(), nil, zap.NewNop())

	cmp, err := svc.Compare(context.Background(), []string{"s1", "s2"}, "INTJ")
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if cmp.BestMatch.Style.ID != "s1" {
		t.Fatalf("expected s1 best (compatible), got %s", cmp.BestMatch.Style.ID)
	}

	if _, err := svc.Compare(context.Background(), []string{"s1", "zzz"}, "INTJ"); !errors.Is(err, ErrStyleNotFound) {
		t.Fatalf("expected ErrStyleNotFound, got %v", err)
	}
}

func TestRecommendationService_RepoError(t *testing.T) {
	repo := &fakeStyleRepo{err: errors.New("db down")}
	svc := NewRecommendationService(repo, newFakeProfileRepo(), nil, zap.NewNop())

	if _, err := svc.ListStyles(context.Background()); err == nil {
		t.Fatalf("expected catalog load error")
	}
}
