// Package profile turns raw candidate text into a structured CandidateProfile
// using whole-document dictionary matching.
package profile

import (
	"regexp"

	"github.com/Denis172003/CV-Analyser/internal/extract"
	"github.com/Denis172003/CV-Analyser/internal/lexicon"
	"github.com/Denis172003/CV-Analyser/internal/types"
)

// dateRangePattern approximates employment date ranges in resumes:
// "2019-2023", "2019 - present", "Jan 2020 – Mar 2022".
var dateRangePattern = regexp.MustCompile(`(?i)(?:(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+)?(19|20)\d{2}\s*(?:-|–|—|to)\s*(?:(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+)?((?:19|20)\d{2}|present|current|now)`)

// Candidate builds a CandidateProfile from raw candidate text, optionally
// merging a pre-extracted skills list (union semantics). The profile is
// rebuilt wholesale when the source text changes.
func Candidate(text string, preExtracted []string, lex *lexicon.Lexicon, opts extract.Options) (*types.CandidateProfile, error) {
	if opts.MinTokens <= 0 {
		opts.MinTokens = extract.DefaultMinTokens
	}

	tokens := lexicon.Tokenize(text)
	if len(tokens) == 0 {
		return nil, &extract.ExtractionError{Stage: "candidate", Reason: "input text is empty"}
	}
	if len(tokens) < opts.MinTokens {
		return nil, &extract.ExtractionError{
			Stage:      "candidate",
			Reason:     "input text is below the minimum token count",
			TokenCount: len(tokens),
		}
	}

	// Resume structure is less standardized than job postings, so skill
	// matching runs over the whole document with no section gating.
	skills := MergeSkills(lex.MatchSkills(text), preExtracted, lex)

	sections := extract.SegmentSections(text, lex)

	return &types.CandidateProfile{
		Skills:            skills,
		ExperienceLevel:   inferCandidateLevel(text),
		ExperienceBullets: experienceBullets(sections),
		TextTerms:         lex.ExtractTextTerms(text),
	}, nil
}

// MergeSkills unions dictionary matches with an externally supplied skills
// list. External suggestions are advisory: they are normalized through the
// lexicon and never replace dictionary results.
func MergeSkills(matched []types.Skill, extra []string, lex *lexicon.Lexicon) []types.Skill {
	merged := append([]types.Skill{}, matched...)
	seen := types.SkillSet(matched)
	for _, term := range extra {
		skill, _ := lex.CanonicalSkill(term)
		if skill.Name == "" || seen[skill.Name] {
			continue
		}
		seen[skill.Name] = true
		merged = append(merged, skill)
	}
	return merged
}

// experienceBullets collects the lines under experience-like headings in
// document order.
func experienceBullets(sections []extract.Section) []string {
	var bullets []string
	for _, sec := range sections {
		if sec.Label != extract.LabelExperience {
			continue
		}
		bullets = append(bullets, sec.Lines...)
	}
	return bullets
}

// inferCandidateLevel takes the maximum of the explicit years-of-experience
// signal and a heuristic count of listed employment date ranges.
func inferCandidateLevel(text string) types.ExperienceLevel {
	explicit := extract.YearsExperienceLevel(text)
	heuristic := levelFromDateRanges(len(dateRangePattern.FindAllString(text, -1)))
	return types.MaxLevel(explicit, heuristic)
}

// levelFromDateRanges maps a count of employment date ranges to a band:
// one position entry, two or three mid, four or more senior.
func levelFromDateRanges(ranges int) types.ExperienceLevel {
	switch {
	case ranges <= 0:
		return types.LevelUnspecified
	case ranges == 1:
		return types.LevelEntry
	case ranges <= 3:
		return types.LevelMid
	default:
		return types.LevelSenior
	}
}
