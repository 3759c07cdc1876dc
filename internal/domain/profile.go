package domain

import "time"

// CategoryScores mapea cada dimension a un puntaje 0-100.
// Siempre contiene las cuatro dimensiones; sin respuestas el puntaje es 50.
type CategoryScores map[string]int

// PersonalityProfile es el resultado del diagnostico: tipo de cuatro letras
// ([EI][SN][TF][JP]) mas el texto narrativo asociado. Derivado, nunca se muta;
// las mismas respuestas producen siempre el mismo perfil.
type PersonalityProfile struct {
	ID         string         `json:"id,omitempty"`
	UserID     string         `json:"user_id,omitempty"`
	Type       string         `json:"type"`
	Scores     CategoryScores `json:"scores"`
	Strengths  []string       `json:"strengths"`
	Challenges []string       `json:"challenges"`
	CreatedAt  time.Time      `json:"created_at,omitempty"`
}

// ReliabilityReport describe si un conjunto de respuestas es estadisticamente
// confiable. Se calcula sobre las respuestas crudas, no sobre los puntajes.
type ReliabilityReport struct {
	IsReliable      bool              `json:"is_reliable"`
	Consistency     ConsistencyCheck  `json:"consistency"`
	TimeValidity    TimeValidityCheck `json:"time_validity"`
	PatternAnalysis PatternCheck      `json:"pattern_analysis"`
}

// ConsistencyCheck resume la varianza por categoria normalizada a [0,1].
type ConsistencyCheck struct {
	Score               float64            `json:"score"`
	PerCategoryVariance map[string]float64 `json:"per_category_variance"`
	Interpretation      string             `json:"interpretation"`
}

// TimeValidityCheck valida el ritmo de respuesta (delta promedio entre respuestas).
type TimeValidityCheck struct {
	IsValid                bool    `json:"is_valid"`
	AverageIntervalSeconds float64 `json:"average_interval_seconds"`
	Reason                 string  `json:"reason"`
}

// PatternCheck detecta rachas, distribucion de valores y abuso de extremos.
type PatternCheck struct {
	MaxConsecutiveSameAnswer int         `json:"max_consecutive_same_answer"`
	Distribution             map[int]int `json:"distribution"`
	ExtremeRatio             float64     `json:"extreme_ratio"`
	IsNormal                 bool        `json:"is_normal"`
}
