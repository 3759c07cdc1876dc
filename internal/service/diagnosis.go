package service

import (
	"math"

	"aula-match/internal/domain"
)

/*
========================
 Diagnostico de tipo
========================
*/

// Puntaje por defecto para una dimension sin respuestas y umbral inclusivo a
// partir del cual gana la letra "alta" de cada eje. Constantes de diseno.
const (
	defaultCategoryScore = 50
	highLetterThreshold  = 60
)

// Classify convierte la lista de respuestas crudas en un perfil de
// personalidad. Es una funcion pura y determinista: las mismas respuestas
// producen siempre el mismo perfil, y nunca falla para input bien formado.
func Classify(answers []domain.Answer) domain.PersonalityProfile {
	scores := AggregateScores(answers)
	personalityType := typeFromScores(scores)
	narrative := narrativeForType(personalityType)

	return domain.PersonalityProfile{
		Type:       personalityType,
		Scores:     scores,
		Strengths:  append([]string(nil), narrative.Strengths...),
		Challenges: append([]string(nil), narrative.Challenges...),
	}
}

// AggregateScores reduce las respuestas a un puntaje 0-100 por dimension.
// Una respuesta posterior con el mismo question_id reemplaza a la anterior
// (gana la ultima en el orden de la lista). Dimension sin respuestas: 50.
func AggregateScores(answers []domain.Answer) domain.CategoryScores {
	latest := make(map[string]domain.Answer, len(answers))
	for _, a := range answers {
		latest[a.QuestionID] = a
	}

	sums := make(map[string]int)
	counts := make(map[string]int)
	for _, a := range latest {
		sums[a.Category] += a.Value
		counts[a.Category]++
	}

	scores := make(domain.CategoryScores, 4)
	for _, category := range domain.Categories() {
		if counts[category] == 0 {
			scores[category] = defaultCategoryScore
			continue
		}
		mean := float64(sums[category]) / float64(counts[category])
		scores[category] = int(math.Round(mean / 5.0 * 100.0))
	}
	return scores
}

// typeFromScores arma el tipo de cuatro letras en el orden fijo de ejes.
func typeFromScores(scores domain.CategoryScores) string {
	letters := []byte{
		axisLetter(scores[domain.CategoryExtroversion], 'E', 'I'),
		axisLetter(scores[domain.CategorySensing], 'S', 'N'),
		axisLetter(scores[domain.CategoryThinking], 'T', 'F'),
		axisLetter(scores[domain.CategoryJudging], 'J', 'P'),
	}
	return string(letters)
}

func axisLetter(score int, high, low byte) byte {
	if score >= highLetterThreshold {
		return high
	}
	return low
}
