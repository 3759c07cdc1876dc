// table_check recorre las tablas de reglas del motor con datos sinteticos y
// reporta huecos: tipos sin narrativa propia, estilos sin plantillas, fases
// que no suman la duracion o rubricas incompletas. Es una verificacion
// offline, no toca base de datos ni red.
package main

import (
	"fmt"
	"os"
	"time"

	"aula-match/internal/domain"
	"aula-match/internal/service"
)

const (
	colorGreen = "\033[32m"
	colorRed   = "\033[31m"
	colorCyan  = "\033[36m"
	colorReset = "\033[0m"
)

var allTypes = []string{
	"INTJ", "INTP", "ENTJ", "ENTP",
	"INFJ", "INFP", "ENFJ", "ENFP",
	"ISTJ", "ISFJ", "ESTJ", "ESFJ",
	"ISTP", "ISFP", "ESTP", "ESFP",
}

// styleFixtures cubre cada familia de estilo mas un nombre que no matchea
// ninguna keyword, para ejercitar la rama por defecto.
var styleFixtures = []domain.StyleProfile{
	{ID: "s1", Name: "Aprendizaje Creativo", Description: "proyectos y produccion creativa"},
	{ID: "s2", Name: "Metodo Analitico", Description: "analisis de casos y datos"},
	{ID: "s3", Name: "Trabajo Colaborativo", Description: "equipos cooperativos"},
	{ID: "s4", Name: "Taller Practico", Description: "aprendizaje experiencial"},
	{ID: "s5", Name: "Clase Estructurada", Description: "secuencia magistral tradicional"},
	{ID: "s6", Name: "Metodo Socratico", Description: "dialogo y preguntas"},
}

func main() {
	failures := 0

	fmt.Printf("%s==== Narrativas por tipo ====%s\n", colorCyan, colorReset)
	for _, pt := range allTypes {
		profile := service.Classify(answersForType(pt))
		switch {
		case profile.Type != pt:
			report(&failures, false, fmt.Sprintf("%s: clasificacion devolvio %s", pt, profile.Type))
		case len(profile.Strengths) == 0 || len(profile.Challenges) == 0:
			report(&failures, false, fmt.Sprintf("%s: narrativa sin fortalezas o desafios", pt))
		default:
			report(&failures, true, fmt.Sprintf("%s: %d fortalezas, %d desafios", pt, len(profile.Strengths), len(profile.Challenges)))
		}
	}

	fmt.Printf("\n%s==== Plantillas por estilo ====%s\n", colorCyan, colorReset)
	params := domain.LessonParams{
		Subject:         "Matematica",
		GradeLevel:      "secundaria",
		DurationMinutes: 60,
		TemplateType:    domain.TemplateComprehensive,
	}
	profile := service.Classify(answersForType("ENFP"))
	for _, style := range styleFixtures {
		tpl, err := service.Synthesize(style, profile, params)
		if err != nil {
			report(&failures, false, fmt.Sprintf("%s: sintesis fallo: %v", style.Name, err))
			continue
		}
		checkLessonPlan(&failures, style.Name, tpl.LessonPlan, params.DurationMinutes)
		checkWorksheet(&failures, style.Name, tpl.Worksheet)
		checkAssessment(&failures, style.Name, tpl.Assessment)
	}

	fmt.Println()
	if failures > 0 {
		fmt.Printf("%s%d problemas encontrados%s\n", colorRed, failures, colorReset)
		os.Exit(1)
	}
	fmt.Printf("%stablas completas%s\n", colorGreen, colorReset)
}

func checkLessonPlan(failures *int, name string, plan *domain.LessonPlan, duration int) {
	if plan == nil {
		report(failures, false, name+": plan de leccion ausente")
		return
	}
	total := 0
	for _, act := range plan.Activities {
		total += act.DurationMinutes
	}
	ok := len(plan.Activities) > 0 && total <= duration && len(plan.Objectives) > 0
	report(failures, ok, fmt.Sprintf("%s: plan con %d actividades, %d/%d min", name, len(plan.Activities), total, duration))
}

func checkWorksheet(failures *int, name string, ws *domain.Worksheet) {
	if ws == nil {
		report(failures, false, name+": guia de trabajo ausente")
		return
	}
	sum := 0
	for _, ex := range ws.Exercises {
		sum += ex.Points
	}
	ok := len(ws.Exercises) > 0 && sum == ws.TotalPoints
	report(failures, ok, fmt.Sprintf("%s: guia con %d ejercicios, %d puntos", name, len(ws.Exercises), ws.TotalPoints))
}

func checkAssessment(failures *int, name string, as *domain.Assessment) {
	if as == nil {
		report(failures, false, name+": evaluacion ausente")
		return
	}
	var weight float64
	levelsOK := true
	for _, crit := range as.Criteria {
		weight += crit.Weight
		if len(crit.Levels) != 4 {
			levelsOK = false
		}
	}
	ok := len(as.Criteria) == 3 && levelsOK && weight > 0.99 && weight < 1.01
	report(failures, ok, fmt.Sprintf("%s: evaluacion %s con %d criterios (peso %.2f)", name, as.Type, len(as.Criteria), weight))
}

// answersForType arma un cuestionario sintetico que fuerza cada letra del
// tipo pedido: 5 para el polo alto del eje, 1 para el polo bajo.
func answersForType(personalityType string) []domain.Answer {
	values := map[string]int{
		domain.CategoryExtroversion: poleValue(personalityType[0] == 'E'),
		domain.CategorySensing:      poleValue(personalityType[1] == 'S'),
		domain.CategoryThinking:     poleValue(personalityType[2] == 'T'),
		domain.CategoryJudging:      poleValue(personalityType[3] == 'J'),
	}

	now := time.Now().UTC()
	var answers []domain.Answer
	i := 0
	for _, cat := range domain.Categories() {
		for q := 0; q < 3; q++ {
			answers = append(answers, domain.Answer{
				QuestionID: fmt.Sprintf("%s-%d", cat, q),
				Category:   cat,
				Value:      values[cat],
				AnsweredAt: now.Add(time.Duration(i) * 30 * time.Second),
			})
			i++
		}
	}
	return answers
}

func poleValue(high bool) int {
	if high {
		return 5
	}
	return 1
}

func report(failures *int, ok bool, msg string) {
	if ok {
		fmt.Printf("  %sOK%s  %s\n", colorGreen, colorReset, msg)
		return
	}
	*failures++
	fmt.Printf("  %sFAIL%s %s\n", colorRed, colorReset, msg)
}
