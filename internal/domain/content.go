package domain

import "time"

// Tipos de plantilla reconocidos por el sintetizador de contenido.
const (
	TemplateLessonPlan    = "lesson_plan"
	TemplateWorksheet     = "worksheet"
	TemplateAssessment    = "assessment"
	TemplateComprehensive = "comprehensive"
)

// LessonParams son los parametros contextuales de una leccion, ya validados
// en tipo y rango por la capa externa.
type LessonParams struct {
	Subject         string `json:"subject"`
	GradeLevel      string `json:"grade_level"`
	DurationMinutes int    `json:"duration_minutes"`
	TemplateType    string `json:"template_type"`
}

// ContentTemplate es el contenido estructurado sintetizado para un estilo y un
// perfil. Segun el tipo de plantilla trae una o mas secciones.
type ContentTemplate struct {
	ID         string      `json:"id,omitempty"`
	UserID     string      `json:"user_id,omitempty"`
	StyleID    string      `json:"style_id,omitempty"`
	LessonPlan *LessonPlan `json:"lesson_plan,omitempty"`
	Worksheet  *Worksheet  `json:"worksheet,omitempty"`
	Assessment *Assessment `json:"assessment,omitempty"`
	CreatedAt  time.Time   `json:"created_at,omitempty"`
}

type LessonPlan struct {
	Overview   string     `json:"overview"`
	Objectives []string   `json:"objectives"`
	Materials  []string   `json:"materials"`
	Activities []Activity `json:"activities"`
	Homework   string     `json:"homework"`
}

type Activity struct {
	Name            string `json:"name"`
	DurationMinutes int    `json:"duration_minutes"`
	Description     string `json:"description"`
}

// Worksheet siempre recalcula TotalPoints como la suma de sus ejercicios.
type Worksheet struct {
	Instructions string     `json:"instructions"`
	Exercises    []Exercise `json:"exercises"`
	TotalPoints  int        `json:"total_points"`
}

type Exercise struct {
	Kind   string `json:"kind"`
	Prompt string `json:"prompt"`
	Points int    `json:"points"`
}

type Assessment struct {
	Type              string                `json:"type"` // formative, summative, performance
	Criteria          []AssessmentCriterion `json:"criteria"`
	Rubric            string                `json:"rubric"`
	FeedbackGuideline string                `json:"feedback_guideline"`
}

type AssessmentCriterion struct {
	Name   string             `json:"name"`
	Weight float64            `json:"weight"`
	Levels []AchievementLevel `json:"levels"`
}

type AchievementLevel struct {
	Label       string `json:"label"`
	Points      int    `json:"points"`
	Description string `json:"description"`
}
