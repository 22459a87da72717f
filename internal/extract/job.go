package extract

import (
	"github.com/Denis172003/CV-Analyser/internal/lexicon"
	"github.com/Denis172003/CV-Analyser/internal/types"
)

// DefaultMinTokens is the minimum token count below which extraction fails.
const DefaultMinTokens = 20

// Options configures extraction thresholds.
type Options struct {
	// MinTokens is the minimum document token count; shorter inputs fail with
	// ExtractionError.
	MinTokens int
	// TopKeywords caps the industry keyword list.
	TopKeywords int
}

// DefaultOptions returns the documented extraction defaults.
func DefaultOptions() Options {
	return Options{
		MinTokens:   DefaultMinTokens,
		TopKeywords: DefaultTopKeywords,
	}
}

// JobProfile extracts a JobRequirementProfile from raw job-posting text.
// The profile is built wholesale; callers re-extract when the source changes.
func JobProfile(text, title, company string, lex *lexicon.Lexicon, opts Options) (*types.JobRequirementProfile, error) {
	if opts.MinTokens <= 0 {
		opts.MinTokens = DefaultMinTokens
	}

	tokens := lexicon.Tokenize(text)
	if len(tokens) == 0 {
		return nil, &ExtractionError{Stage: "job", Reason: "input text is empty"}
	}
	if len(tokens) < opts.MinTokens {
		return nil, &ExtractionError{
			Stage:      "job",
			Reason:     "input text is below the minimum token count",
			TokenCount: len(tokens),
		}
	}

	sections := SegmentSections(text, lex)

	requirementsText := sectionText(sections, LabelRequirements)
	preferredText := sectionText(sections, LabelPreferred)

	// Postings without recognizable headings still carry requirements; treat
	// the whole document as one requirements section in that case.
	if requirementsText == "" && preferredText == "" {
		requirementsText = text
	}

	required := lex.MatchSkills(requirementsText)
	preferred := disjointPreferred(lex.MatchSkills(preferredText), required)

	responsibilities := sectionLines(sections, LabelResponsibilities)

	if len(required) == 0 && len(preferred) == 0 && len(responsibilities) == 0 {
		return nil, &ExtractionError{
			Stage:      "job",
			Reason:     "input text could not be parsed into any requirement or responsibility section",
			TokenCount: len(tokens),
		}
	}

	captured := append(append([]types.Skill{}, required...), preferred...)

	return &types.JobRequirementProfile{
		JobTitle:         title,
		Company:          company,
		RequiredSkills:   required,
		PreferredSkills:  preferred,
		ExperienceLevel:  InferExperienceLevel(text),
		Responsibilities: responsibilities,
		IndustryKeywords: IndustryKeywords(text, captured, lex, opts.TopKeywords),
		CultureSignals:   CultureSignals(text, lex),
	}, nil
}

// disjointPreferred drops preferred skills already captured as required, so
// the two sets never overlap.
func disjointPreferred(preferred, required []types.Skill) []types.Skill {
	requiredSet := types.SkillSet(required)
	kept := make([]types.Skill, 0, len(preferred))
	for _, s := range preferred {
		if !requiredSet[s.Name] {
			kept = append(kept, s)
		}
	}
	return kept
}
