package service

// typeNarrative agrupa el texto narrativo y los metodos preferidos de un tipo.
// Es una tabla de datos, no logica: cmd/table_check valida que cubra los 16 tipos.
type typeNarrative struct {
	Strengths        []string
	Challenges       []string
	PreferredMethods []string
}

var typeNarratives = map[string]typeNarrative{
	"ESTJ": {
		Strengths:        []string{"organizacion y estructura", "liderazgo practico", "toma de decisiones rapida"},
		Challenges:       []string{"flexibilidad ante imprevistos", "escucha de enfoques alternativos"},
		PreferredMethods: []string{"clase magistral", "ejercitacion guiada", "proyectos con entregas pautadas"},
	},
	"ESTP": {
		Strengths:        []string{"energia en el aula", "resolucion practica de problemas", "adaptacion sobre la marcha"},
		Challenges:       []string{"planificacion de largo plazo", "seguimiento de rutinas"},
		PreferredMethods: []string{"aprendizaje basado en experiencias", "juegos y competencias", "demostraciones en vivo"},
	},
	"ESFJ": {
		Strengths:        []string{"comunicacion cercana", "armonia grupal", "organizacion de actividades colaborativas"},
		Challenges:       []string{"manejo de conflictos abiertos", "critica directa"},
		PreferredMethods: []string{"trabajo en grupos", "tutoria entre pares", "dinamicas de integracion"},
	},
	"ESFP": {
		Strengths:        []string{"entusiasmo contagioso", "improvisacion creativa", "conexion emocional con estudiantes"},
		Challenges:       []string{"estructura y seguimiento", "evaluacion sistematica"},
		PreferredMethods: []string{"dramatizaciones", "actividades ludicas", "salidas de campo"},
	},
	"ENTJ": {
		Strengths:        []string{"liderazgo estrategico", "vision de conjunto", "exigencia academica"},
		Challenges:       []string{"paciencia con ritmos lentos", "sensibilidad emocional"},
		PreferredMethods: []string{"debate estructurado", "proyectos ambiciosos", "estudio de casos"},
	},
	"ENTP": {
		Strengths:        []string{"pensamiento divergente", "debate e interaccion", "generacion de ideas"},
		Challenges:       []string{"cierre de temas abiertos", "constancia administrativa"},
		PreferredMethods: []string{"debate abierto", "lluvia de ideas", "aprendizaje por descubrimiento"},
	},
	"ENFJ": {
		Strengths:        []string{"inspiracion y motivacion", "empatia pedagogica", "comunicacion expresiva"},
		Challenges:       []string{"limites personales", "objetividad en la evaluacion"},
		PreferredMethods: []string{"mentoria individual", "proyectos con impacto social", "discusion guiada"},
	},
	"ENFP": {
		Strengths:        []string{"creatividad desbordante", "entusiasmo interactivo", "vinculo afectivo con el grupo"},
		Challenges:       []string{"organizacion del tiempo", "detalle administrativo"},
		PreferredMethods: []string{"proyectos creativos", "aprendizaje colaborativo", "exploracion libre"},
	},
	"ISTJ": {
		Strengths:        []string{"rigor metodico", "estructura y planificacion", "cumplimiento confiable"},
		Challenges:       []string{"apertura a la improvisacion", "expresion emocional"},
		PreferredMethods: []string{"clase magistral", "guias de ejercicios", "evaluacion periodica"},
	},
	"ISTP": {
		Strengths:        []string{"analisis tecnico", "resolucion practica", "calma bajo presion"},
		Challenges:       []string{"comunicacion extensa", "trabajo en equipos grandes"},
		PreferredMethods: []string{"talleres practicos", "experimentacion", "resolucion de problemas"},
	},
	"ISFJ": {
		Strengths:        []string{"dedicacion al detalle", "acompanamiento paciente", "ambiente de confianza"},
		Challenges:       []string{"delegacion de tareas", "exposicion publica"},
		PreferredMethods: []string{"tutoria individual", "practica repetida", "material de apoyo detallado"},
	},
	"ISFP": {
		Strengths:        []string{"sensibilidad estetica", "flexibilidad creativa", "respeto por los ritmos individuales"},
		Challenges:       []string{"estructura rigida", "confrontacion directa"},
		PreferredMethods: []string{"proyectos artisticos", "trabajo individual", "portafolios"},
	},
	"INTJ": {
		Strengths:        []string{"pensamiento estrategico", "analisis profundo", "diseno de sistemas de estudio"},
		Challenges:       []string{"comunicacion espontanea", "tolerancia a la ambiguedad social"},
		PreferredMethods: []string{"estudio de casos", "investigacion autonoma", "resolucion de problemas"},
	},
	"INTP": {
		Strengths:        []string{"curiosidad conceptual", "analisis logico", "precision teorica"},
		Challenges:       []string{"plazos y rutinas", "comunicacion simplificada"},
		PreferredMethods: []string{"investigacion autonoma", "discusion socratica", "modelado de problemas"},
	},
	"INFJ": {
		Strengths:        []string{"vision pedagogica de largo plazo", "empatia profunda", "integracion de ideas"},
		Challenges:       []string{"sobrecarga emocional", "exposicion prolongada"},
		PreferredMethods: []string{"mentoria individual", "escritura reflexiva", "proyectos con proposito"},
	},
	"INFP": {
		Strengths:        []string{"autenticidad y valores", "imaginacion narrativa", "atencion a cada estudiante"},
		Challenges:       []string{"critica externa", "gestion de grupos numerosos"},
		PreferredMethods: []string{"escritura creativa", "trabajo individual", "proyectos con sentido personal"},
	},
}

// genericNarrative es el degradado defensivo: el algoritmo de construccion del
// tipo no deberia producir un tipo fuera de la tabla, pero el lookup nunca falla.
var genericNarrative = typeNarrative{
	Strengths:  []string{"perfil docente equilibrado"},
	Challenges: []string{"perfil aun sin caracterizar"},
}

func narrativeForType(personalityType string) typeNarrative {
	if n, ok := typeNarratives[personalityType]; ok {
		return n
	}
	return genericNarrative
}

// IsValidPersonalityType valida el formato [EI][SN][TF][JP].
func IsValidPersonalityType(personalityType string) bool {
	if len(personalityType) != 4 {
		return false
	}
	axes := []string{"EI", "SN", "TF", "JP"}
	for i, pair := range axes {
		if personalityType[i] != pair[0] && personalityType[i] != pair[1] {
			return false
		}
	}
	return true
}
