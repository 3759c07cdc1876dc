package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"aula-match/internal/domain"
)

type fakeAnswerRepo struct {
	byUser  map[string][]domain.Answer
	upserts int
	err     error
}

func newFakeAnswerRepo() *fakeAnswerRepo {
	return &fakeAnswerRepo{byUser: make(map[string][]domain.Answer)}
}

func (f *fakeAnswerRepo) UpsertBatch(_ context.Context, answers []domain.Answer) error {
	if f.err != nil {
		return f.err
	}
	f.upserts++
	for _, a := range answers {
		f.byUser[a.UserID] = append(f.byUser[a.UserID], a)
	}
	return nil
}

func (f *fakeAnswerRepo) FindByUserID(_ context.Context, userID string) ([]domain.Answer, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byUser[userID], nil
}

type fakeProfileRepo struct {
	byUser map[string]domain.PersonalityProfile
	err    error
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{byUser: make(map[string]domain.PersonalityProfile)}
}

func (f *fakeProfileRepo) Upsert(_ context.Context, profile domain.PersonalityProfile) error {
	if f.err != nil {
		return f.err
	}
	f.byUser[profile.UserID] = profile
	return nil
}

func (f *fakeProfileRepo) GetByUserID(_ context.Context, userID string) (domain.PersonalityProfile, error) {
	if f.err != nil {
		return domain.PersonalityProfile{}, f.err
	}
	profile, ok := f.byUser[userID]
	if !ok {
		return domain.PersonalityProfile{}, pgx.ErrNoRows
	}
	return profile, nil
}

func diagnosisAnswers() []domain.Answer {
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	values := map[string]int{
		domain.CategoryExtroversion: 2,
		domain.CategorySensing:      2,
		domain.CategoryThinking:     5,
		domain.CategoryJudging:      4,
	}
	var answers []domain.Answer
	i := 0
	for _, category := range domain.Categories() {
		for q := 0; q < 2; q++ {
			answers = append(answers, domain.Answer{
				QuestionID: category + "-" + string(rune('a'+q)),
				Category:   category,
				Value:      values[category],
				AnsweredAt: base.Add(time.Duration(i) * 30 * time.Second),
			})
			i++
		}
	}
	return answers
}

func TestDiagnosisService_RunDiagnosis(t *testing.T) {
	answerRepo := newFakeAnswerRepo()
	profileRepo := newFakeProfileRepo()
	userRepo := newMockUserRepo()
	sender := &mockEmailSender{}
	svc := NewDiagnosisService(answerRepo, profileRepo, userRepo, sender, zap.NewNop())

	if err := userRepo.Create(context.Background(), domain.User{ID: "u1", Email: "docente@example.com"}); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	result, err := svc.RunDiagnosis(context.Background(), "u1", diagnosisAnswers())
	if err != nil {
		t.Fatalf("run diagnosis: %v", err)
	}

	if result.Profile.Type != "INTJ" {
		t.Fatalf("expected INTJ, got %s", result.Profile.Type)
	}
	if result.Profile.UserID != "u1" || result.Profile.ID == "" {
		t.Fatalf("expected stamped profile, got %+v", result.Profile)
	}
	if !result.Reliability.IsReliable {
		t.Fatalf("steady answers should be reliable: %+v", result.Reliability)
	}

	stored, err := profileRepo.GetByUserID(context.Background(), "u1")
	if err != nil || stored.Type != "INTJ" {
		t.Fatalf("expected persisted profile, got %+v (%v)", stored, err)
	}
	if answerRepo.upserts != 1 {
		t.Fatalf("expected answers persisted once, got %d", answerRepo.upserts)
	}
	if sender.lastTo != "docente@example.com" || sender.lastType != "INTJ" {
		t.Fatalf("expected summary email, got to=%q type=%q", sender.lastTo, sender.lastType)
	}
}

func TestDiagnosisService_RunDiagnosisInvalidInput(t *testing.T) {
	svc := NewDiagnosisService(newFakeAnswerRepo(), newFakeProfileRepo(), newMockUserRepo(), &mockEmailSender{}, zap.NewNop())

	if _, err := svc.RunDiagnosis(context.Background(), "", diagnosisAnswers()); !errors.Is(err, ErrDiagnosisInvalidInput) {
		t.Fatalf("expected ErrDiagnosisInvalidInput for empty user, got %v", err)
	}
	if _, err := svc.RunDiagnosis(context.Background(), "u1", nil); !errors.Is(err, ErrDiagnosisInvalidInput) {
		t.Fatalf("expected ErrDiagnosisInvalidInput for empty answers, got %v", err)
	}
}

func TestDiagnosisService_EmailFailureDoesNotBreakDiagnosis(t *testing.T) {
	userRepo := newMockUserRepo()
	if err := userRepo.Create(context.Background(), domain.User{ID: "u1", Email: "docente@example.com"}); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	sender := &mockEmailSender{err: errors.New("smtp down")}
	svc := NewDiagnosisService(newFakeAnswerRepo(), newFakeProfileRepo(), userRepo, sender, zap.NewNop())

	if _, err := svc.RunDiagnosis(context.Background(), "u1", diagnosisAnswers()); err != nil {
		t.Fatalf("email failure must not break the diagnosis, got %v", err)
	}
}

func TestDiagnosisService_GetProfile(t *testing.T) {
	profileRepo := newFakeProfileRepo()
	svc := NewDiagnosisService(newFakeAnswerRepo(), profileRepo, newMockUserRepo(), &mockEmailSender{}, zap.NewNop())

	if _, err := svc.GetProfile(context.Background(), "nadie"); !errors.Is(err, ErrDiagnosisProfileMissing) {
		t.Fatalf("expected ErrDiagnosisProfileMissing, got %v", err)
	}

	profileRepo.byUser["u1"] = domain.PersonalityProfile{UserID: "u1", Type: "ENFP"}
	profile, err := svc.GetProfile(context.Background(), "u1")
	if err != nil || profile.Type != "ENFP" {
		t.Fatalf("expected stored profile, got %+v (%v)", profile, err)
	}
}

func TestDiagnosisService_Rediagnose(t *testing.T) {
	answerRepo := newFakeAnswerRepo()
	profileRepo := newFakeProfileRepo()
	svc := NewDiagnosisService(answerRepo, profileRepo, newMockUserRepo(), &mockEmailSender{}, zap.NewNop())

	if _, err := svc.Rediagnose(context.Background(), "u1"); !errors.Is(err, ErrDiagnosisInvalidInput) {
		t.Fatalf("expected error without stored answers, got %v", err)
	}

	first, err := svc.RunDiagnosis(context.Background(), "u1", diagnosisAnswers())
	if err != nil {
		t.Fatalf("run diagnosis: %v", err)
	}

	second, err := svc.Rediagnose(context.Background(), "u1")
	if err != nil {
		t.Fatalf("rediagnose: %v", err)
	}
	if second.Profile.Type != first.Profile.Type {
		t.Fatalf("rediagnosis must be deterministic: %s vs %s", second.Profile.Type, first.Profile.Type)
	}
}
