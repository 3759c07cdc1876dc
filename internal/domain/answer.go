package domain

import "time"

// Las cuatro dimensiones fijas del cuestionario. Cada pregunta pertenece a una.
const (
	CategoryExtroversion = "EXTROVERSION"
	CategorySensing      = "SENSING"
	CategoryThinking     = "THINKING"
	CategoryJudging      = "JUDGING"
)

// Categories devuelve las dimensiones en el orden fijo en que se arma el tipo.
func Categories() []string {
	return []string{
		CategoryExtroversion,
		CategorySensing,
		CategoryThinking,
		CategoryJudging,
	}
}

// IsKnownCategory indica si la etiqueta pertenece a una dimension del test.
func IsKnownCategory(category string) bool {
	switch category {
	case CategoryExtroversion, CategorySensing, CategoryThinking, CategoryJudging:
		return true
	default:
		return false
	}
}

// Answer es una respuesta individual del cuestionario, escala Likert 1-5.
// Una respuesta posterior con el mismo QuestionID reemplaza a la anterior.
type Answer struct {
	ID         string    `json:"id,omitempty"`
	UserID     string    `json:"user_id,omitempty"`
	QuestionID string    `json:"question_id"`
	Category   string    `json:"category"`
	Value      int       `json:"value"`
	AnsweredAt time.Time `json:"answered_at"`
}
