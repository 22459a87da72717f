package types

// JobRequirementProfile represents a structured job posting extracted from raw
// text. Profiles are immutable once built: if the source text changes the
// profile is rebuilt wholesale, never patched field-by-field.
type JobRequirementProfile struct {
	JobTitle        string          `json:"job_title,omitempty"`
	Company         string          `json:"company,omitempty"`
	RequiredSkills  []Skill         `json:"required_skills"`
	PreferredSkills []Skill         `json:"preferred_skills"`
	ExperienceLevel ExperienceLevel `json:"experience_level" validate:"required"`
	// Responsibilities holds one entry per extracted duty, in document order.
	Responsibilities []string `json:"responsibilities"`
	IndustryKeywords []string `json:"industry_keywords"`
	CultureSignals   []string `json:"culture_signals,omitempty"`
	// InferenceDegraded is set when the optional inference collaborator failed
	// and the profile was built from dictionary matching alone.
	InferenceDegraded bool `json:"inference_degraded,omitempty"`
}
