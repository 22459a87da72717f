package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Denis172003/CV-Analyser/internal/types"
)

// yearsPattern matches explicit year requirements: "3 years", "3-5 years",
// "3+ years of experience".
var yearsPattern = regexp.MustCompile(`(\d{1,2})\s*(?:-|–|to)?\s*(\d{1,2})?\s*\+?\s*years?`)

// Seniority word lists for lexical level detection.
var (
	seniorWords = []string{"senior", "lead", "principal", "staff", "architect", "head of"}
	entryWords  = []string{"junior", "entry level", "entry-level", "intern", "graduate", "trainee"}
	midWords    = []string{"mid level", "mid-level", "intermediate", "midlevel"}
)

// InferExperienceLevel infers a seniority band from explicit year ranges and
// seniority words. When the numeric and lexical signals disagree, the result
// resolves toward the higher band.
func InferExperienceLevel(text string) types.ExperienceLevel {
	lower := strings.ToLower(text)

	numeric := levelFromYears(maxYearsMentioned(lower))
	lexical := levelFromWords(lower)

	if numeric == types.LevelUnspecified && lexical == types.LevelUnspecified {
		return types.LevelUnspecified
	}
	return types.MaxLevel(numeric, lexical)
}

// YearsExperienceLevel infers a band from explicit year phrases alone,
// ignoring seniority words. Used by the candidate profiler, where role titles
// in past positions would skew a lexical signal.
func YearsExperienceLevel(text string) types.ExperienceLevel {
	return levelFromYears(maxYearsMentioned(strings.ToLower(text)))
}

// maxYearsMentioned returns the largest lower-bound year figure found, or -1
// when no year phrase is present. For ranges like "3-5 years" the lower bound
// is the requirement.
func maxYearsMentioned(lower string) int {
	best := -1
	for _, m := range yearsPattern.FindAllStringSubmatch(lower, -1) {
		years, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if years > best && years <= 50 {
			best = years
		}
	}
	return best
}

// levelFromYears maps a years-of-experience figure to a band:
// 0-2 entry, 3-5 mid, 6+ senior.
func levelFromYears(years int) types.ExperienceLevel {
	switch {
	case years < 0:
		return types.LevelUnspecified
	case years <= 2:
		return types.LevelEntry
	case years <= 5:
		return types.LevelMid
	default:
		return types.LevelSenior
	}
}

func levelFromWords(lower string) types.ExperienceLevel {
	for _, w := range seniorWords {
		if strings.Contains(lower, w) {
			return types.LevelSenior
		}
	}
	for _, w := range midWords {
		if strings.Contains(lower, w) {
			return types.LevelMid
		}
	}
	for _, w := range entryWords {
		if strings.Contains(lower, w) {
			return types.LevelEntry
		}
	}
	return types.LevelUnspecified
}
