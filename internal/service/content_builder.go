package service

import (
	"errors"
	"fmt"
	"strings"

	"aula-match/internal/domain"
)

var (
	ErrUnsupportedTemplateType = errors.New("unsupported template type")
	ErrDurationOverflow        = errors.New("lesson activities exceed requested duration")
)

// fillSubject interpola la materia solo si la plantilla declara el verbo;
// algunas oraciones de las tablas no la mencionan.
func fillSubject(template, subject string) string {
	if !strings.Contains(template, "%s") {
		return template
	}
	return fmt.Sprintf(template, subject)
}

// Synthesize arma el contenido estructurado para un estilo elegido, un perfil
// y los parametros de la leccion. Despacha segun el tipo de plantilla; un tipo
// desconocido se rechaza antes de construir nada.
func Synthesize(style domain.StyleProfile, profile domain.PersonalityProfile, params domain.LessonParams) (domain.ContentTemplate, error) {
	template := domain.ContentTemplate{StyleID: style.ID}

	switch params.TemplateType {
	case domain.TemplateLessonPlan:
		plan, err := BuildLessonPlan(style, profile, params)
		if err != nil {
			return domain.ContentTemplate{}, err
		}
		template.LessonPlan = &plan
	case domain.TemplateWorksheet:
		sheet := BuildWorksheet(style, params)
		template.Worksheet = &sheet
	case domain.TemplateAssessment:
		assessment := BuildAssessment(style, params)
		template.Assessment = &assessment
	case domain.TemplateComprehensive:
		plan, err := BuildLessonPlan(style, profile, params)
		if err != nil {
			return domain.ContentTemplate{}, err
		}
		sheet := BuildWorksheet(style, params)
		assessment := BuildAssessment(style, params)
		template.LessonPlan = &plan
		template.Worksheet = &sheet
		template.Assessment = &assessment
	default:
		return domain.ContentTemplate{}, fmt.Errorf("%w: %q", ErrUnsupportedTemplateType, params.TemplateType)
	}

	return template, nil
}

// BuildLessonPlan construye el plan de clase desde la tabla de reglas del
// estilo. Las fases reparten la duracion total por porcentajes fijos; si la
// suma de minutos supera la duracion pedida el error llega al caller, no se
// recorta en silencio.
func BuildLessonPlan(style domain.StyleProfile, profile domain.PersonalityProfile, params domain.LessonParams) (domain.LessonPlan, error) {
	rules := lessonRulesByTag[resolveStyleTag(style)]

	objectives := make([]string, 0, len(rules.Objectives))
	for _, objective := range rules.Objectives {
		objectives = append(objectives, fillSubject(objective, params.Subject))
	}

	materials := append([]string(nil), baseMaterials...)
	materials = append(materials, rules.ExtraMaterials...)

	activities := make([]domain.Activity, 0, len(rules.Phases))
	total := 0
	for _, phase := range rules.Phases {
		minutes := params.DurationMinutes * phase.Percent / 100
		total += minutes
		activities = append(activities, domain.Activity{
			Name:            phase.Name,
			DurationMinutes: minutes,
			Description:     phase.Description,
		})
	}
	if total > params.DurationMinutes {
		return domain.LessonPlan{}, fmt.Errorf("%w: %d > %d minutos", ErrDurationOverflow, total, params.DurationMinutes)
	}

	return domain.LessonPlan{
		Overview:   fmt.Sprintf(rules.Overview, params.Subject, params.GradeLevel, profile.Type),
		Objectives: objectives,
		Materials:  materials,
		Activities: activities,
		Homework:   fmt.Sprintf(rules.Homework, params.Subject),
	}, nil
}

// BuildWorksheet arma la hoja de trabajo: linea de base fija mas el ejercicio
// extra condicional del estilo. TotalPoints se recalcula siempre, nunca se
// acepta de afuera.
func BuildWorksheet(style domain.StyleProfile, params domain.LessonParams) domain.Worksheet {
	rules := worksheetRulesByTag[resolveStyleTag(style)]

	exercises := make([]domain.Exercise, 0, len(baseExercises)+1)
	for _, e := range baseExercises {
		e.Prompt = fmt.Sprintf(e.Prompt, params.Subject)
		exercises = append(exercises, e)
	}
	if rules.ExtraExercise != nil {
		exercises = append(exercises, *rules.ExtraExercise)
	}

	total := 0
	for _, e := range exercises {
		total += e.Points
	}

	return domain.Worksheet{
		Instructions: fmt.Sprintf(rules.Instructions, params.Subject),
		Exercises:    exercises,
		TotalPoints:  total,
	}
}

// BuildAssessment arma la evaluacion: dos criterios de base mas uno decidido
// por las caracteristicas del estilo, cada uno con sus cuatro niveles fijos.
func BuildAssessment(style domain.StyleProfile, params domain.LessonParams) domain.Assessment {
	rules := assessmentRulesByTag[resolveStyleTag(style)]

	criteria := make([]domain.AssessmentCriterion, 0, len(baseCriteria)+1)
	criteria = append(criteria, baseCriteria...)
	criteria = append(criteria, thirdCriterion(style))

	return domain.Assessment{
		Type:              rules.Type,
		Criteria:          criteria,
		Rubric:            fmt.Sprintf(rules.Rubric, params.Subject),
		FeedbackGuideline: rules.Feedback,
	}
}
