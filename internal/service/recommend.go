package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"aula-match/internal/domain"
)

var (
	ErrInvalidPersonalityType = errors.New("invalid personality type")
	ErrStyleNotFound          = errors.New("style not found in catalog")
)

/*
========================
 Pesos del ranking
========================
*/

const (
	typeCompatBonus     = 50 // el tipo figura en la compatibilidad del estilo
	strengthBonus       = 10 // por caracteristica que solapa una fortaleza
	methodBonus         = 15 // por metodo preferido que solapa un metodo del estilo
	subjectBonus        = 20 // la materia pedida figura en las materias del estilo
	ratingHighBonus     = 15 // valoracion promedio >= 4.5
	ratingMidBonus      = 10 // valoracion promedio >= 4.0
	adoptionBonus       = 10 // tasa de adopcion > 0.7
	diagnosisTraitBonus = 5  // por pareja dimension/caracteristica en modo diagnostico

	ratingHighThreshold   = 4.5
	ratingMidThreshold    = 4.0
	adoptionRateThreshold = 0.7
	maxRecommendation     = 100
)

// traitPairing vincula una dimension con una caracteristica de estilo. Solo se
// aplica en la recomendacion guiada por diagnostico, cuando el puntaje de la
// dimension supera el umbral de letra alta y el estilo declara la caracteristica.
type traitPairing struct {
	Category string
	Keyword  string
	Label    string
}

var traitPairings = []traitPairing{
	{Category: domain.CategoryExtroversion, Keyword: "interactiv", Label: "interactivo"},
	{Category: domain.CategoryThinking, Keyword: "analitic", Label: "analitico"},
	{Category: domain.CategorySensing, Keyword: "practic", Label: "practico"},
	{Category: domain.CategoryJudging, Keyword: "estructur", Label: "estructurado"},
}

// RecommendByType rankea el catalogo contra un tipo de personalidad. Solo
// entran estilos cuya compatibilidad incluye el tipo; el orden de salida es por
// puntaje descendente y los empates conservan el orden del catalogo.
func RecommendByType(personalityType string, catalog []domain.StyleProfile, filters domain.RecommendationFilters) ([]domain.RecommendationResult, error) {
	return recommend(personalityType, nil, catalog, filters)
}

// RecommendForDiagnosis rankea usando el perfil completo del diagnostico. A
// diferencia de RecommendByType suma los bonus por pareja dimension/caracteristica,
// porque aca si hay puntajes por dimension disponibles.
func RecommendForDiagnosis(profile domain.PersonalityProfile, catalog []domain.StyleProfile, filters domain.RecommendationFilters) ([]domain.RecommendationResult, error) {
	return recommend(profile.Type, profile.Scores, catalog, filters)
}

func recommend(personalityType string, scores domain.CategoryScores, catalog []domain.StyleProfile, filters domain.RecommendationFilters) ([]domain.RecommendationResult, error) {
	if !IsValidPersonalityType(personalityType) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPersonalityType, personalityType)
	}
	narrative := narrativeForType(personalityType)

	var results []domain.RecommendationResult
	for _, style := range catalog {
		if !containsNormalized(style.Compatibility.PersonalityTypes, personalityType) {
			continue
		}
		score, reasons := scoreStyle(style, personalityType, narrative, scores, filters)
		results = append(results, domain.RecommendationResult{
			Style:               style,
			RecommendationScore: score,
			MatchingReasons:     reasons,
		})
	}

	sortByScoreDesc(results)
	return results, nil
}

// CompareStyles evalua un subconjunto explicito del catalogo. Un id ausente es
// un error, no un resultado parcial.
func CompareStyles(catalog []domain.StyleProfile, ids []string, personalityType string) (domain.StyleComparison, error) {
	if !IsValidPersonalityType(personalityType) {
		return domain.StyleComparison{}, fmt.Errorf("%w: %q", ErrInvalidPersonalityType, personalityType)
	}

	byID := make(map[string]domain.StyleProfile, len(catalog))
	for _, style := range catalog {
		byID[style.ID] = style
	}

	narrative := narrativeForType(personalityType)
	results := make([]domain.RecommendationResult, 0, len(ids))
	for _, id := range ids {
		style, ok := byID[id]
		if !ok {
			return domain.StyleComparison{}, fmt.Errorf("%w: %q", ErrStyleNotFound, id)
		}
		score, reasons := scoreStyle(style, personalityType, narrative, nil, domain.RecommendationFilters{})
		results = append(results, domain.RecommendationResult{
			Style:               style,
			RecommendationScore: score,
			MatchingReasons:     reasons,
		})
	}
	if len(results) == 0 {
		return domain.StyleComparison{}, fmt.Errorf("%w: empty id list", ErrStyleNotFound)
	}

	sortByScoreDesc(results)
	best := results[0]
	worst := results[len(results)-1]

	return domain.StyleComparison{
		Comparison: results,
		BestMatch:  best,
		Analysis:   comparisonAnalysis(best.Style.Name, best.RecommendationScore-worst.RecommendationScore),
	}, nil
}

// comparisonAnalysis clasifica la brecha entre el mejor y el peor puntaje.
func comparisonAnalysis(bestName string, gap int) string {
	switch {
	case gap < 10:
		return fmt.Sprintf("Todos los estilos comparados son opciones comparables; %s encabeza por un margen minimo.", bestName)
	case gap < 20:
		return fmt.Sprintf("%s es el mas recomendado, aunque el resto sigue siendo viable.", bestName)
	default:
		return fmt.Sprintf("%s es claramente superior al resto de los estilos comparados.", bestName)
	}
}

// scoreStyle aplica el sistema de pesos y arma las razones en orden fijo:
// compatibilidad directa, fortalezas reforzadas, desafios abordados, valoracion
// destacada y, en modo diagnostico, las parejas dimension/caracteristica.
// Un solapamiento vacio omite su oracion en lugar de emitirla vacia.
func scoreStyle(style domain.StyleProfile, personalityType string, narrative typeNarrative, scores domain.CategoryScores, filters domain.RecommendationFilters) (int, []string) {
	score := 0
	var reasons []string

	if containsNormalized(style.Compatibility.PersonalityTypes, personalityType) {
		score += typeCompatBonus
		reasons = append(reasons, fmt.Sprintf("El estilo es directamente compatible con el tipo %s.", personalityType))
	}

	matched := overlappingStrengths(style.Characteristics, narrative.Strengths)
	score += strengthBonus * matched.characteristics
	if len(matched.strengths) > 0 {
		reasons = append(reasons, fmt.Sprintf("Refuerza fortalezas del tipo: %s.", strings.Join(matched.strengths, ", ")))
	}

	if addressed := overlappingTexts(narrative.Challenges, style.Benefits); len(addressed) > 0 {
		reasons = append(reasons, fmt.Sprintf("Aborda desafios tipicos del tipo: %s.", strings.Join(addressed, ", ")))
	}

	for _, method := range narrative.PreferredMethods {
		for _, styleMethod := range style.Methods {
			if textOverlaps(method, styleMethod) {
				score += methodBonus
				break
			}
		}
	}

	if filters.Subject != "" && containsNormalized(style.Compatibility.Subjects, filters.Subject) {
		score += subjectBonus
	}

	switch {
	case style.UsageStats.AverageRating >= ratingHighThreshold:
		score += ratingHighBonus
		reasons = append(reasons, "El estilo tiene una valoracion destacada entre los docentes que lo usan.")
	case style.UsageStats.AverageRating >= ratingMidThreshold:
		score += ratingMidBonus
	}

	if style.UsageStats.AdoptionRate > adoptionRateThreshold {
		score += adoptionBonus
	}

	if scores != nil {
		for _, pairing := range traitPairings {
			if scores[pairing.Category] > highLetterThreshold && anyContainsKeyword(style.Characteristics, pairing.Keyword) {
				score += diagnosisTraitBonus
				reasons = append(reasons, fmt.Sprintf("Tu puntaje alto en %s encaja con el caracter %s del estilo.", pairing.Category, pairing.Label))
			}
		}
	}

	if score > maxRecommendation {
		score = maxRecommendation
	}
	if score < 0 {
		score = 0
	}
	return score, reasons
}

type strengthOverlap struct {
	characteristics int
	strengths       []string
}

// overlappingStrengths cuenta caracteristicas que solapan alguna fortaleza y
// junta las fortalezas alcanzadas, sin duplicados y en el orden del tipo.
func overlappingStrengths(characteristics, strengths []string) strengthOverlap {
	var out strengthOverlap
	hit := make(map[string]bool, len(strengths))

	for _, characteristic := range characteristics {
		overlapped := false
		for _, strength := range strengths {
			if textOverlaps(characteristic, strength) {
				overlapped = true
				hit[strength] = true
			}
		}
		if overlapped {
			out.characteristics++
		}
	}

	for _, strength := range strengths {
		if hit[strength] {
			out.strengths = append(out.strengths, strength)
		}
	}
	return out
}

// overlappingTexts devuelve los elementos de base que solapan con algun texto
// de against, preservando el orden de base.
func overlappingTexts(base, against []string) []string {
	var out []string
	for _, b := range base {
		for _, a := range against {
			if textOverlaps(b, a) {
				out = append(out, b)
				break
			}
		}
	}
	return out
}

func sortByScoreDesc(results []domain.RecommendationResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RecommendationScore > results[j].RecommendationScore
	})
}
