package advice

import "strings"

// IndustryCategory is a closed set of industry tags used to vary advisory
// phrasing. Unknown postings fall back to IndustryGeneral.
type IndustryCategory string

// Known industry categories.
const (
	IndustryGeneral    IndustryCategory = "general"
	IndustrySoftware   IndustryCategory = "software"
	IndustryData       IndustryCategory = "data"
	IndustryDesign     IndustryCategory = "design"
	IndustryMarketing  IndustryCategory = "marketing"
	IndustryFinance    IndustryCategory = "finance"
	IndustryHealthcare IndustryCategory = "healthcare"
)

// industryMarkers maps each category to the terms that signal it. Detection
// picks the category with the most marker hits; ties resolve by the fixed
// order below so results are deterministic.
var industryMarkers = []struct {
	category IndustryCategory
	terms    []string
}{
	{IndustrySoftware, []string{"software", "engineering", "backend", "frontend", "full stack", "developer", "devops", "api"}},
	{IndustryData, []string{"data", "machine learning", "analytics", "statistics", "etl", "data science"}},
	{IndustryDesign, []string{"design", "ux", "ui", "figma", "prototyping", "user research"}},
	{IndustryMarketing, []string{"marketing", "seo", "campaign", "brand", "content", "social media"}},
	{IndustryFinance, []string{"finance", "financial", "accounting", "trading", "banking", "fintech"}},
	{IndustryHealthcare, []string{"healthcare", "clinical", "medical", "patient", "health"}},
}

// DetectIndustry classifies a posting from its title and industry keywords.
func DetectIndustry(jobTitle string, keywords []string) IndustryCategory {
	haystack := strings.ToLower(jobTitle + " " + strings.Join(keywords, " "))

	best := IndustryGeneral
	bestHits := 0
	for _, marker := range industryMarkers {
		hits := 0
		for _, term := range marker.terms {
			if strings.Contains(haystack, term) {
				hits++
			}
		}
		if hits > bestHits {
			bestHits = hits
			best = marker.category
		}
	}
	return best
}

// framing returns the phrasing fragment used by tailoring suggestions for a
// category.
func (c IndustryCategory) framing() string {
	switch c {
	case IndustrySoftware:
		return "shipped systems and measurable engineering outcomes"
	case IndustryData:
		return "datasets, models, and quantified analytical impact"
	case IndustryDesign:
		return "portfolio pieces and user-impact metrics"
	case IndustryMarketing:
		return "campaign results and audience growth numbers"
	case IndustryFinance:
		return "regulatory awareness and quantified portfolio or cost outcomes"
	case IndustryHealthcare:
		return "patient or compliance outcomes and cross-team coordination"
	default:
		return "measurable outcomes and concrete achievements"
	}
}
