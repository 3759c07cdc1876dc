package service

import (
	"strings"
	"testing"
	"time"

	"aula-match/internal/domain"
)

// steadyAnswers genera dos respuestas identicas por dimension, espaciadas por
// el intervalo dado.
func steadyAnswers(interval time.Duration) []domain.Answer {
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	var answers []domain.Answer
	i := 0
	for _, category := range domain.Categories() {
		for q := 0; q < 2; q++ {
			answers = append(answers, domain.Answer{
				QuestionID: category + "-q" + string(rune('0'+q)),
				Category:   category,
				Value:      4,
				AnsweredAt: base.Add(time.Duration(i) * interval),
			})
			i++
		}
	}
	return answers
}

func TestValidateReliability_SteadyAnswersAreReliable(t *testing.T) {
	report := ValidateReliability(steadyAnswers(30 * time.Second))

	if !report.IsReliable {
		t.Fatalf("expected reliable report, got %+v", report)
	}
	if report.Consistency.Score != 1.0 {
		t.Fatalf("identical values per category should give score 1.0, got %v", report.Consistency.Score)
	}
	if report.Consistency.Interpretation != "consistencia alta" {
		t.Fatalf("unexpected interpretation: %s", report.Consistency.Interpretation)
	}
	if !report.TimeValidity.IsValid {
		t.Fatalf("expected valid pacing: %+v", report.TimeValidity)
	}
	if report.TimeValidity.AverageIntervalSeconds != 30 {
		t.Fatalf("expected average interval 30s, got %v", report.TimeValidity.AverageIntervalSeconds)
	}
}

func TestValidateReliability_HighVarianceLowersConsistency(t *testing.T) {
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	var answers []domain.Answer
	i := 0
	for _, category := range domain.Categories() {
		for _, v := range []int{1, 5} {
			answers = append(answers, domain.Answer{
				QuestionID: category,
				Category:   category,
				Value:      v,
				AnsweredAt: base.Add(time.Duration(i) * 30 * time.Second),
			})
			i++
		}
	}

	report := ValidateReliability(answers)
	if report.Consistency.Score != 0 {
		t.Fatalf("values 1 and 5 per category have max variance, expected score 0, got %v", report.Consistency.Score)
	}
	if report.IsReliable {
		t.Fatalf("expected unreliable report with zero consistency")
	}
	if report.Consistency.Interpretation != "consistencia baja" {
		t.Fatalf("unexpected interpretation: %s", report.Consistency.Interpretation)
	}
}

func TestValidateReliability_TimePacing(t *testing.T) {
	tests := []struct {
		name       string
		interval   time.Duration
		wantValid  bool
		wantReason string
	}{
		{"demasiado rapido", 200 * time.Millisecond, false, "rapido"},
		{"demasiado lento", 10 * time.Minute, false, "lento"},
		{"limite inferior valido", time.Second, true, "esperado"},
		{"limite superior valido", 5 * time.Minute, true, "esperado"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			report := ValidateReliability(steadyAnswers(tc.interval))
			if report.TimeValidity.IsValid != tc.wantValid {
				t.Fatalf("IsValid = %v, want %v (%+v)", report.TimeValidity.IsValid, tc.wantValid, report.TimeValidity)
			}
			if !strings.Contains(report.TimeValidity.Reason, tc.wantReason) {
				t.Fatalf("reason %q does not mention %q", report.TimeValidity.Reason, tc.wantReason)
			}
			if report.IsReliable != tc.wantValid {
				t.Fatalf("pacing should gate the verdict: IsReliable = %v", report.IsReliable)
			}
		})
	}
}

func TestValidateReliability_PatternDoesNotGateVerdict(t *testing.T) {
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	var answers []domain.Answer
	for i := 0; i < 10; i++ {
		category := domain.Categories()[i%4]
		answers = append(answers, domain.Answer{
			QuestionID: category + "-" + string(rune('a'+i)),
			Category:   category,
			Value:      4,
			AnsweredAt: base.Add(time.Duration(i) * 30 * time.Second),
		})
	}

	report := ValidateReliability(answers)
	if report.PatternAnalysis.MaxConsecutiveSameAnswer != 10 {
		t.Fatalf("expected run of 10, got %d", report.PatternAnalysis.MaxConsecutiveSameAnswer)
	}
	if report.PatternAnalysis.IsNormal {
		t.Fatalf("a run of 10 identical answers is not a normal pattern")
	}
	// El patron sospechoso se reporta pero no tumba el veredicto.
	if !report.IsReliable {
		t.Fatalf("pattern analysis must not gate IsReliable: %+v", report)
	}
}

func TestValidateReliability_ExtremeRatio(t *testing.T) {
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	values := []int{1, 5, 1, 5, 1, 5, 1, 5}
	var answers []domain.Answer
	for i, v := range values {
		category := domain.Categories()[i%4]
		answers = append(answers, domain.Answer{
			QuestionID: category + "-" + string(rune('a'+i)),
			Category:   category,
			Value:      v,
			AnsweredAt: base.Add(time.Duration(i) * 30 * time.Second),
		})
	}

	report := ValidateReliability(answers)
	if report.PatternAnalysis.ExtremeRatio != 1.0 {
		t.Fatalf("expected extreme ratio 1.0, got %v", report.PatternAnalysis.ExtremeRatio)
	}
	if report.PatternAnalysis.IsNormal {
		t.Fatalf("all-extreme answers should not be a normal pattern")
	}
	if report.PatternAnalysis.Distribution[1] != 4 || report.PatternAnalysis.Distribution[5] != 4 {
		t.Fatalf("unexpected distribution: %+v", report.PatternAnalysis.Distribution)
	}
}

func TestValidateReliability_EmptyAndSingleAnswer(t *testing.T) {
	report := ValidateReliability(nil)
	if report.IsReliable {
		t.Fatalf("empty input must not be reliable")
	}
	if report.Consistency.Score != 0 || !strings.Contains(report.Consistency.Interpretation, "insuficientes") {
		t.Fatalf("expected insufficient-data consistency, got %+v", report.Consistency)
	}
	if report.TimeValidity.IsValid {
		t.Fatalf("empty input cannot have valid pacing")
	}

	single := ValidateReliability([]domain.Answer{{
		QuestionID: "q1",
		Category:   domain.CategoryThinking,
		Value:      3,
		AnsweredAt: time.Now().UTC(),
	}})
	if single.IsReliable {
		t.Fatalf("a single answer must not be reliable")
	}
	if !strings.Contains(single.TimeValidity.Reason, "dos respuestas") {
		t.Fatalf("unexpected reason: %s", single.TimeValidity.Reason)
	}
}

func TestValidateReliability_SortsByTimestamp(t *testing.T) {
	// Mismas respuestas que el caso estable, pero en orden invertido: el
	// reporte debe ser identico porque la secuencia se ordena primero.
	answers := steadyAnswers(30 * time.Second)
	reversed := make([]domain.Answer, 0, len(answers))
	for i := len(answers) - 1; i >= 0; i-- {
		reversed = append(reversed, answers[i])
	}

	report := ValidateReliability(reversed)
	if !report.TimeValidity.IsValid || report.TimeValidity.AverageIntervalSeconds != 30 {
		t.Fatalf("expected sorted evaluation, got %+v", report.TimeValidity)
	}
}
