package types

// CandidateProfile represents a structured candidate document. Like
// JobRequirementProfile it is immutable once built and rebuilt wholesale when
// the source text changes.
type CandidateProfile struct {
	Skills          []Skill         `json:"skills"`
	ExperienceLevel ExperienceLevel `json:"experience_level" validate:"required"`
	// ExperienceBullets are the lines found under experience-like headings,
	// in document order.
	ExperienceBullets []string `json:"experience_bullets"`
	// TextTerms is the n-gram term extraction over the whole candidate text,
	// captured at profile construction so the scorer can compute keyword
	// coverage without re-reading the source document.
	TextTerms         []string `json:"text_terms,omitempty"`
	InferenceDegraded bool     `json:"inference_degraded,omitempty"`
}
