package service

import (
	"strings"

	"aula-match/internal/domain"
)

/*
========================
 Tablas de reglas por estilo
========================

Cada tabla mapea una etiqueta de estilo a sus parametros de construccion y
tiene obligatoriamente una entrada por defecto. cmd/table_check valida que
todas las tablas cubran todas las etiquetas declaradas.
*/

type styleTag string

const (
	styleTagCreative      styleTag = "creativo"
	styleTagAnalytical    styleTag = "analitico"
	styleTagCollaborative styleTag = "colaborativo"
	styleTagPractical     styleTag = "practico"
	styleTagStructured    styleTag = "estructurado"
	styleTagDefault       styleTag = "general"
)

// styleTags lista las etiquetas explicitas (sin el default) en orden de deteccion.
var styleTags = []styleTag{
	styleTagCreative,
	styleTagAnalytical,
	styleTagCollaborative,
	styleTagPractical,
	styleTagStructured,
}

// resolveStyleTag deduce la etiqueta de reglas desde el nombre del estilo.
// Nombre no enumerado cae siempre en la entrada por defecto, nunca en un hueco.
func resolveStyleTag(style domain.StyleProfile) styleTag {
	name := normalize(style.Name)
	for _, tag := range styleTags {
		if keywordInText(name, tagKeywords[tag]) {
			return tag
		}
	}
	return styleTagDefault
}

var tagKeywords = map[styleTag][]string{
	styleTagCreative:      {"creativ"},
	styleTagAnalytical:    {"analitic", "analisis"},
	styleTagCollaborative: {"colaborat", "cooperat"},
	styleTagPractical:     {"practic", "experiencial"},
	styleTagStructured:    {"estructur", "tradicional", "magistral"},
}

func keywordInText(text string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

/*
========================
 Plan de clase
========================
*/

type lessonPhase struct {
	Name        string
	Percent     int // fraccion de la duracion total; por estilo suman 100
	Description string
}

type lessonRules struct {
	Overview       string // con %s materia, %s nivel, %s tipo
	Objectives     []string
	ExtraMaterials []string
	Phases         []lessonPhase
	Homework       string // con %s materia
}

var lessonRulesByTag = map[styleTag]lessonRules{
	styleTagCreative: {
		Overview: "Clase de %s para %s con enfoque creativo: los estudiantes exploran el tema produciendo sus propias piezas, con espacio para la experimentacion. Pensada para un docente de perfil %s.",
		Objectives: []string{
			"Explorar el tema de %s desde multiples perspectivas",
			"Producir una pieza original que aplique los conceptos de la clase",
			"Compartir y fundamentar las decisiones creativas propias",
		},
		ExtraMaterials: []string{"materiales de arte o maquetado", "ejemplos de producciones creativas"},
		Phases: []lessonPhase{
			{Name: "Apertura creativa", Percent: 15, Description: "disparador visual o narrativo que abre el tema"},
			{Name: "Exploracion", Percent: 35, Description: "los estudiantes investigan el tema con materiales variados"},
			{Name: "Creacion", Percent: 30, Description: "produccion individual o en parejas de una pieza propia"},
			{Name: "Exposicion", Percent: 10, Description: "muestra breve de las producciones"},
			{Name: "Cierre", Percent: 10, Description: "reflexion sobre el proceso creativo"},
		},
		Homework: "Terminar la pieza iniciada en clase y preparar una breve justificacion de las decisiones tomadas sobre %s.",
	},
	styleTagAnalytical: {
		Overview: "Clase de %s para %s con enfoque analitico: se parte de un problema central y se lo descompone paso a paso hasta llegar a conclusiones fundamentadas. Pensada para un docente de perfil %s.",
		Objectives: []string{
			"Descomponer un problema de %s en sus partes",
			"Aplicar un metodo de analisis sistematico",
			"Justificar conclusiones con evidencia",
		},
		ExtraMaterials: []string{"guia de analisis paso a paso", "set de datos o casos para analizar"},
		Phases: []lessonPhase{
			{Name: "Planteo del problema", Percent: 15, Description: "presentacion del problema central de la clase"},
			{Name: "Analisis guiado", Percent: 40, Description: "descomposicion del problema con el docente"},
			{Name: "Resolucion individual", Percent: 30, Description: "cada estudiante resuelve una variante"},
			{Name: "Sintesis", Percent: 15, Description: "puesta en comun de conclusiones"},
		},
		Homework: "Resolver un problema analogo de %s aplicando el mismo metodo de analisis.",
	},
	styleTagCollaborative: {
		Overview: "Clase de %s para %s con enfoque colaborativo: el contenido se construye en equipos con roles rotativos y puesta en comun final. Pensada para un docente de perfil %s.",
		Objectives: []string{
			"Construir en equipo una respuesta al problema de %s planteado",
			"Ejercitar roles de coordinacion, registro y vocero",
			"Integrar los aportes de todos los equipos en una conclusion comun",
		},
		ExtraMaterials: []string{"tarjetas de roles", "afiches o pizarras grupales"},
		Phases: []lessonPhase{
			{Name: "Activacion", Percent: 10, Description: "pregunta inicial para activar conocimientos previos"},
			{Name: "Formacion de equipos", Percent: 10, Description: "armado de grupos y reparto de roles"},
			{Name: "Trabajo colaborativo", Percent: 45, Description: "cada equipo resuelve su consigna"},
			{Name: "Puesta en comun", Percent: 25, Description: "los voceros presentan y se integran resultados"},
			{Name: "Cierre", Percent: 10, Description: "sintesis del docente y autoevaluacion grupal"},
		},
		Homework: "Completar con el equipo el registro de lo trabajado sobre %s y anotar una pregunta pendiente.",
	},
	styleTagPractical: {
		Overview: "Clase de %s para %s con enfoque practico: se aprende haciendo, con demostracion inicial y practica progresivamente autonoma. Pensada para un docente de perfil %s.",
		Objectives: []string{
			"Ejecutar el procedimiento central de %s de la clase",
			"Identificar errores frecuentes durante la practica",
			"Ganar autonomia en la aplicacion del procedimiento",
		},
		ExtraMaterials: []string{"insumos o herramientas de practica", "hoja de procedimiento"},
		Phases: []lessonPhase{
			{Name: "Demostracion", Percent: 20, Description: "el docente ejecuta el procedimiento completo"},
			{Name: "Practica guiada", Percent: 40, Description: "los estudiantes repiten con acompanamiento"},
			{Name: "Practica autonoma", Percent: 30, Description: "ejecucion individual sin ayuda"},
			{Name: "Cierre", Percent: 10, Description: "revision de errores frecuentes"},
		},
		Homework: "Repetir la practica de %s en casa y registrar las dificultades encontradas.",
	},
	styleTagStructured: {
		Overview: "Clase de %s para %s con estructura tradicional: repaso, presentacion ordenada del tema nuevo y ejercitacion pautada. Pensada para un docente de perfil %s.",
		Objectives: []string{
			"Dominar el contenido nuevo de %s de la unidad",
			"Resolver la ejercitacion pautada sin errores de concepto",
			"Relacionar el tema nuevo con lo visto en clases anteriores",
		},
		ExtraMaterials: []string{"guia de ejercicios impresa", "resumen del tema en una carilla"},
		Phases: []lessonPhase{
			{Name: "Repaso", Percent: 10, Description: "revision breve de la clase anterior"},
			{Name: "Presentacion", Percent: 30, Description: "exposicion ordenada del tema nuevo"},
			{Name: "Ejercitacion", Percent: 40, Description: "resolucion de la guia de ejercicios"},
			{Name: "Evaluacion rapida", Percent: 10, Description: "tres preguntas de chequeo"},
			{Name: "Cierre", Percent: 10, Description: "resumen y anticipo de la proxima clase"},
		},
		Homework: "Completar los ejercicios restantes de la guia de %s.",
	},
	styleTagDefault: {
		Overview: "Clase de %s para %s con estructura equilibrada entre exposicion, practica y cierre. Pensada para un docente de perfil %s.",
		Objectives: []string{
			"Comprender el contenido central de %s de la clase",
			"Aplicar lo aprendido en ejercicios breves",
			"Registrar dudas para retomar en la proxima clase",
		},
		ExtraMaterials: nil,
		Phases: []lessonPhase{
			{Name: "Apertura", Percent: 10, Description: "presentacion del objetivo de la clase"},
			{Name: "Desarrollo", Percent: 40, Description: "explicacion del contenido central"},
			{Name: "Practica guiada", Percent: 25, Description: "ejercicios resueltos junto al docente"},
			{Name: "Practica autonoma", Percent: 15, Description: "ejercicios individuales"},
			{Name: "Cierre", Percent: 10, Description: "sintesis y registro de dudas"},
		},
		Homework: "Repasar lo visto de %s y traer una pregunta para la proxima clase.",
	},
}

// baseMaterials es la lista fija comun a todos los estilos.
var baseMaterials = []string{"pizarra o proyector", "cuaderno de clase", "material de lectura del tema"}

/*
========================
 Hoja de trabajo
========================
*/

type worksheetRules struct {
	Instructions  string // con %s materia
	ExtraExercise *domain.Exercise
}

var worksheetRulesByTag = map[styleTag]worksheetRules{
	styleTagCreative: {
		Instructions: "Resolve la hoja de %s a tu manera: en los ejercicios abiertos se valora la originalidad tanto como la correccion.",
		ExtraExercise: &domain.Exercise{
			Kind:   "produccion_creativa",
			Prompt: "Disena una pieza propia (afiche, relato o esquema) que explique el tema a alguien que no lo conoce.",
			Points: 20,
		},
	},
	styleTagAnalytical: {
		Instructions: "Resolve la hoja de %s justificando cada paso: la respuesta sin desarrollo no suma puntaje completo.",
		ExtraExercise: &domain.Exercise{
			Kind:   "analisis_de_caso",
			Prompt: "Analiza el caso presentado, identifica el error de razonamiento y propone la correccion.",
			Points: 20,
		},
	},
	styleTagCollaborative: {
		Instructions: "Resolve la hoja de %s en parejas: primero cada uno responde solo, despues comparan y acuerdan una respuesta final.",
	},
	styleTagPractical: {
		Instructions: "Resolve la hoja de %s aplicando el procedimiento visto en clase, en el mismo orden de pasos.",
	},
	styleTagStructured: {
		Instructions: "Resolve la hoja de %s en orden, sin saltear ejercicios, y marca los que no te salgan para repasarlos.",
	},
	styleTagDefault: {
		Instructions: "Resolve la hoja de %s con lo trabajado en clase; podes consultar el material de lectura.",
	},
}

// baseExercises es la linea de base comun: opcion multiple, respuesta corta y
// resolucion de problemas. Con %s materia en cada consigna.
var baseExercises = []domain.Exercise{
	{Kind: "opcion_multiple", Prompt: "Marca la opcion correcta en las cinco preguntas sobre %s.", Points: 20},
	{Kind: "respuesta_corta", Prompt: "Responde en dos o tres oraciones las tres preguntas sobre %s.", Points: 30},
	{Kind: "resolucion_problemas", Prompt: "Resolve el problema integrador de %s mostrando el desarrollo completo.", Points: 50},
}

/*
========================
 Evaluacion
========================
*/

type assessmentRules struct {
	Type     string // formative, summative, performance
	Rubric   string // con %s materia
	Feedback string
}

var assessmentRulesByTag = map[styleTag]assessmentRules{
	styleTagCreative: {
		Type:     "formative",
		Rubric:   "Se evalua el proceso y la produccion final de %s; la originalidad pondera junto con la correccion conceptual.",
		Feedback: "Destacar primero una decision creativa lograda y despues senalar un aspecto conceptual a ajustar.",
	},
	styleTagAnalytical: {
		Type:     "summative",
		Rubric:   "Se evalua el desarrollo completo de cada respuesta de %s; el resultado sin justificacion obtiene puntaje parcial.",
		Feedback: "Senalar el paso exacto del razonamiento donde aparece el error y pedir la correccion.",
	},
	styleTagCollaborative: {
		Type:     "formative",
		Rubric:   "Se evalua el aporte individual y el resultado grupal de %s en partes iguales.",
		Feedback: "Devolver al equipo una fortaleza del trabajo conjunto y un acuerdo a mejorar.",
	},
	styleTagPractical: {
		Type:     "performance",
		Rubric:   "Se evalua la ejecucion del procedimiento de %s en condiciones reales, con lista de cotejo.",
		Feedback: "Mostrar en el momento el paso mal ejecutado y repetirlo junto al estudiante.",
	},
	styleTagStructured: {
		Type:     "summative",
		Rubric:   "Se evalua la prueba escrita de %s segun la tabla de puntajes publicada de antemano.",
		Feedback: "Entregar la prueba corregida con el puntaje por ejercicio y los temas a repasar.",
	},
	styleTagDefault: {
		Type:     "formative",
		Rubric:   "Se evalua el trabajo de clase de %s combinando participacion, ejercicios y una pregunta de cierre.",
		Feedback: "Dar una devolucion breve por estudiante con un logro y una sugerencia concreta.",
	},
}

// Criterios de base: conocimiento/comprension 30% y pensamiento/juicio 40%.
// El tercer criterio (30%) lo decide una caracteristica del estilo.
var baseCriteria = []domain.AssessmentCriterion{
	{Name: "Conocimiento y comprension", Weight: 0.3, Levels: standardLevels("los conceptos centrales del tema")},
	{Name: "Pensamiento y juicio", Weight: 0.4, Levels: standardLevels("el razonamiento aplicado al problema")},
}

func thirdCriterion(style domain.StyleProfile) domain.AssessmentCriterion {
	switch {
	case anyContainsKeyword(style.Characteristics, "creativ"):
		return domain.AssessmentCriterion{Name: "Creatividad y originalidad", Weight: 0.3, Levels: standardLevels("la originalidad de la produccion")}
	case anyContainsKeyword(style.Characteristics, "colaborat"):
		return domain.AssessmentCriterion{Name: "Colaboracion y comunicacion", Weight: 0.3, Levels: standardLevels("el trabajo con otros y la comunicacion")}
	default:
		return domain.AssessmentCriterion{Name: "Habilidad y expresion", Weight: 0.3, Levels: standardLevels("la ejecucion y la expresion del resultado")}
	}
}

// standardLevels arma los cuatro niveles fijos de logro para un criterio.
func standardLevels(aspect string) []domain.AchievementLevel {
	return []domain.AchievementLevel{
		{Label: "Excelente", Points: 4, Description: "Domina " + aspect + " y lo transfiere a situaciones nuevas."},
		{Label: "Bueno", Points: 3, Description: "Maneja " + aspect + " con errores menores."},
		{Label: "Suficiente", Points: 2, Description: "Alcanza lo minimo esperado en " + aspect + "."},
		{Label: "Insuficiente", Points: 1, Description: "Todavia no alcanza lo esperado en " + aspect + "."},
	}
}
