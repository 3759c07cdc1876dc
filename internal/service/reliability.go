package service

import (
	"sort"
	"time"

	"aula-match/internal/domain"
)

/*
========================
 Confiabilidad
========================
*/

// Umbrales del chequeo de confiabilidad. La varianza maxima posible de una
// escala 1-5 es 4, y normaliza el puntaje de consistencia.
const (
	consistencyHighThreshold = 0.7
	maxLikertVariance        = 4.0
	minAvgInterval           = time.Second
	maxAvgInterval           = 5 * time.Minute
	maxNormalRun             = 5
	maxExtremeRatio          = 0.8
)

// ValidateReliability inspecciona la secuencia cruda de respuestas (ordenada
// por timestamp) y arma el reporte de confiabilidad. Funcion pura; una lista
// vacia produce un reporte no valido con motivo, nunca un error.
//
// IsReliable combina consistencia y ritmo de respuesta. El analisis de
// patrones se reporta pero no participa del veredicto; cambiarlo alteraria el
// contrato observado por los callers.
func ValidateReliability(answers []domain.Answer) domain.ReliabilityReport {
	ordered := sortedByTime(answers)

	consistency := checkConsistency(ordered)
	timeValidity := checkTimeValidity(ordered)
	pattern := checkPattern(ordered)

	return domain.ReliabilityReport{
		IsReliable:      consistency.Score > consistencyHighThreshold && timeValidity.IsValid,
		Consistency:     consistency,
		TimeValidity:    timeValidity,
		PatternAnalysis: pattern,
	}
}

func sortedByTime(answers []domain.Answer) []domain.Answer {
	ordered := append([]domain.Answer(nil), answers...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].AnsweredAt.Before(ordered[j].AnsweredAt)
	})
	return ordered
}

// checkConsistency promedia la varianza de valores crudos por categoria (solo
// categorias con al menos dos respuestas) y la normaliza a [0,1].
func checkConsistency(answers []domain.Answer) domain.ConsistencyCheck {
	byCategory := make(map[string][]float64)
	for _, a := range answers {
		byCategory[a.Category] = append(byCategory[a.Category], float64(a.Value))
	}

	perCategory := make(map[string]float64)
	var total float64
	var measured int
	for category, values := range byCategory {
		if len(values) < 2 {
			continue
		}
		v := variance(values)
		perCategory[category] = v
		total += v
		measured++
	}

	if measured == 0 {
		return domain.ConsistencyCheck{
			Score:               0,
			PerCategoryVariance: perCategory,
			Interpretation:      "datos insuficientes para evaluar consistencia",
		}
	}

	score := 1.0 - (total/float64(measured))/maxLikertVariance
	if score < 0 {
		score = 0
	}

	interpretation := "consistencia baja"
	if score > consistencyHighThreshold {
		interpretation = "consistencia alta"
	}

	return domain.ConsistencyCheck{
		Score:               score,
		PerCategoryVariance: perCategory,
		Interpretation:      interpretation,
	}
}

func variance(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	var sq float64
	for _, v := range values {
		d := v - mean
		sq += d * d
	}
	return sq / float64(len(values))
}

// checkTimeValidity evalua el delta promedio entre respuestas consecutivas de
// toda la secuencia (no por categoria).
func checkTimeValidity(answers []domain.Answer) domain.TimeValidityCheck {
	if len(answers) < 2 {
		return domain.TimeValidityCheck{
			IsValid: false,
			Reason:  "se necesitan al menos dos respuestas para evaluar el ritmo",
		}
	}

	var totalDelta time.Duration
	for i := 1; i < len(answers); i++ {
		totalDelta += answers[i].AnsweredAt.Sub(answers[i-1].AnsweredAt)
	}
	avg := totalDelta / time.Duration(len(answers)-1)
	avgSeconds := avg.Seconds()

	switch {
	case avg < minAvgInterval:
		return domain.TimeValidityCheck{
			IsValid:                false,
			AverageIntervalSeconds: avgSeconds,
			Reason:                 "ritmo demasiado rapido: las respuestas parecen automaticas",
		}
	case avg > maxAvgInterval:
		return domain.TimeValidityCheck{
			IsValid:                false,
			AverageIntervalSeconds: avgSeconds,
			Reason:                 "ritmo demasiado lento: hubo pausas largas entre respuestas",
		}
	default:
		return domain.TimeValidityCheck{
			IsValid:                true,
			AverageIntervalSeconds: avgSeconds,
			Reason:                 "ritmo de respuesta dentro del rango esperado",
		}
	}
}

// checkPattern recorre la secuencia de valores buscando rachas de respuestas
// identicas, la distribucion 1..5 y la proporcion de extremos (1 o 5).
func checkPattern(answers []domain.Answer) domain.PatternCheck {
	distribution := make(map[int]int)
	maxRun, currentRun := 0, 0
	lastValue := 0
	extremes := 0

	for _, a := range answers {
		distribution[a.Value]++
		if a.Value == 1 || a.Value == 5 {
			extremes++
		}
		if a.Value == lastValue {
			currentRun++
		} else {
			currentRun = 1
			lastValue = a.Value
		}
		if currentRun > maxRun {
			maxRun = currentRun
		}
	}

	extremeRatio := 0.0
	if len(answers) > 0 {
		extremeRatio = float64(extremes) / float64(len(answers))
	}

	return domain.PatternCheck{
		MaxConsecutiveSameAnswer: maxRun,
		Distribution:             distribution,
		ExtremeRatio:             extremeRatio,
		IsNormal:                 maxRun < maxNormalRun && extremeRatio < maxExtremeRatio,
	}
}
