package types

// RecommendationPriority classifies a skill gap for remediation ordering
type RecommendationPriority string

// Priority values: high for missing required skills, medium for missing
// preferred skills.
const (
	PriorityHigh   RecommendationPriority = "high"
	PriorityMedium RecommendationPriority = "medium"
)

// Section names used as keys in OptimizationAdvice.SectionAdvice.
const (
	SectionSummary    = "summary"
	SectionSkills     = "skills"
	SectionExperience = "experience"
)

// SkillRecommendation is one prioritized skill-gap entry with a rationale and
// a learning suggestion drawn from the lexicon's category templates.
type SkillRecommendation struct {
	Skill              string                 `json:"skill"`
	Priority           RecommendationPriority `json:"priority"`
	Rationale          string                 `json:"rationale"`
	LearningSuggestion string                 `json:"learning_suggestion"`
}

// OptimizationAdvice is a pure function of a CompatibilityReport plus the two
// profiles used for phrasing. It carries no engine-internal state.
type OptimizationAdvice struct {
	SkillRecommendations []SkillRecommendation `json:"skill_recommendations"`
	// KeywordRecommendations are the report's missing keywords, deduplicated
	// and case-normalized.
	KeywordRecommendations []string `json:"keyword_recommendations"`
	// SectionAdvice maps a CV section name to ordered guidance lines.
	// Sections with nothing to add are omitted, never included empty.
	SectionAdvice        map[string][]string `json:"section_advice,omitempty"`
	TailoringSuggestions []string            `json:"tailoring_suggestions,omitempty"`
	InterviewFocus       []string            `json:"interview_focus,omitempty"`
}
