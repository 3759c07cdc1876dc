package domain

// StyleProfile describe un estilo de ensenanza del catalogo. El catalogo es
// propiedad del caller; el motor de recomendacion solo lo lee.
type StyleProfile struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Description     string             `json:"description,omitempty"`
	Characteristics []string           `json:"characteristics"`
	Methods         []string           `json:"methods"`
	Benefits        []string           `json:"benefits,omitempty"`
	Compatibility   StyleCompatibility `json:"compatibility"`
	UsageStats      StyleUsageStats    `json:"usage_stats"`
}

type StyleCompatibility struct {
	PersonalityTypes []string `json:"personality_types"`
	Subjects         []string `json:"subjects"`
}

type StyleUsageStats struct {
	AverageRating float64 `json:"average_rating"` // 0-5
	AdoptionRate  float64 `json:"adoption_rate"`  // 0-1
}

// RecommendationResult es un estilo evaluado contra un tipo de personalidad.
type RecommendationResult struct {
	Style               StyleProfile `json:"style"`
	RecommendationScore int          `json:"recommendation_score"` // 0-100
	MatchingReasons     []string     `json:"matching_reasons"`
}

// StyleComparison compara un subconjunto explicito del catalogo.
type StyleComparison struct {
	Comparison []RecommendationResult `json:"comparison"`
	BestMatch  RecommendationResult   `json:"best_match"`
	Analysis   string                 `json:"analysis"`
}

// RecommendationFilters acota la recomendacion por materia y nivel.
type RecommendationFilters struct {
	Subject    string `json:"subject,omitempty"`
	GradeLevel string `json:"grade_level,omitempty"`
}
