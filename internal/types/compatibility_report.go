package types

// FactorScores holds the per-factor sub-scores of a compatibility report.
// Every score is an integer in [0, 100].
type FactorScores struct {
	SkillMatch              int `json:"skill_match"`
	ExperienceAlignment     int `json:"experience_alignment"`
	KeywordCoverage         int `json:"keyword_coverage"`
	ResponsibilityAlignment int `json:"responsibility_alignment"`
}

// CompatibilityReport is the scoring result for one (job, candidate) pair.
// Reports are produced fresh per pairing and never mutated after creation.
//
// MatchedSkills, MissingRequiredSkills and MissingPreferredSkills partition
// the union of the job's required and preferred skills: no skill appears in
// more than one bucket.
type CompatibilityReport struct {
	OverallScore           int          `json:"overall_score"`
	FactorScores           FactorScores `json:"factor_scores"`
	MatchedSkills          []Skill      `json:"matched_skills"`
	MissingRequiredSkills  []Skill      `json:"missing_required_skills"`
	MissingPreferredSkills []Skill      `json:"missing_preferred_skills"`
	MissingKeywords        []string     `json:"missing_keywords"`
	// Advice is populated by the advisory generator when requested; the
	// scorer itself leaves it nil.
	Advice *OptimizationAdvice `json:"advice,omitempty"`
}
