// Package advice derives optimization advice from a compatibility report.
// Generation is deterministic and template-driven, with no external calls.
package advice

import (
	"fmt"
	"strings"

	"github.com/Denis172003/CV-Analyser/internal/lexicon"
	"github.com/Denis172003/CV-Analyser/internal/scoring"
	"github.com/Denis172003/CV-Analyser/internal/types"
)

// Rationale templates for skill recommendations.
const (
	rationaleRequired  = "required by the target role but absent from the candidate profile"
	rationalePreferred = "listed as preferred for the target role but absent from the candidate profile"
)

// summaryTopSkills is how many missing required skills the summary advice
// names.
const summaryTopSkills = 3

// Generate produces OptimizationAdvice from a report plus the two profiles it
// was computed from. The profiles supply the actual skill and section names
// used in phrasing; nothing is recomputed that would change the report.
func Generate(report *types.CompatibilityReport, job *types.JobRequirementProfile, cand *types.CandidateProfile, lex *lexicon.Lexicon) *types.OptimizationAdvice {
	return &types.OptimizationAdvice{
		SkillRecommendations:   skillRecommendations(report, lex),
		KeywordRecommendations: keywordRecommendations(report.MissingKeywords),
		SectionAdvice:          sectionAdvice(report, job, cand),
		TailoringSuggestions:   tailoringSuggestions(job),
		InterviewFocus:         interviewFocus(job),
	}
}

// skillRecommendations lists every missing required skill at high priority
// followed by every missing preferred skill at medium priority, each with a
// template rationale and a category-keyed learning suggestion.
func skillRecommendations(report *types.CompatibilityReport, lex *lexicon.Lexicon) []types.SkillRecommendation {
	recs := make([]types.SkillRecommendation, 0, len(report.MissingRequiredSkills)+len(report.MissingPreferredSkills))
	for _, skill := range report.MissingRequiredSkills {
		recs = append(recs, types.SkillRecommendation{
			Skill:              skill.Name,
			Priority:           types.PriorityHigh,
			Rationale:          rationaleRequired,
			LearningSuggestion: lex.LearningSuggestion(skill.Category, skill.Name),
		})
	}
	for _, skill := range report.MissingPreferredSkills {
		recs = append(recs, types.SkillRecommendation{
			Skill:              skill.Name,
			Priority:           types.PriorityMedium,
			Rationale:          rationalePreferred,
			LearningSuggestion: lex.LearningSuggestion(skill.Category, skill.Name),
		})
	}
	return recs
}

// keywordRecommendations deduplicates and case-normalizes the missing
// keywords.
func keywordRecommendations(missing []string) []string {
	seen := make(map[string]bool, len(missing))
	out := make([]string, 0, len(missing))
	for _, kw := range missing {
		normalized := strings.ToLower(strings.TrimSpace(kw))
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true
		out = append(out, normalized)
	}
	return out
}

// sectionAdvice populates guidance for the summary, skills and experience
// sections. Sections with nothing to add are omitted from the map.
func sectionAdvice(report *types.CompatibilityReport, job *types.JobRequirementProfile, cand *types.CandidateProfile) map[string][]string {
	sections := make(map[string][]string)

	if summary := summaryAdvice(report, job); len(summary) > 0 {
		sections[types.SectionSummary] = summary
	}
	if skills := skillsAdvice(report, cand); len(skills) > 0 {
		sections[types.SectionSkills] = skills
	}
	if experience := experienceAdvice(job, cand); len(experience) > 0 {
		sections[types.SectionExperience] = experience
	}

	if len(sections) == 0 {
		return nil
	}
	return sections
}

// summaryAdvice suggests naming the top missing required skills and the job
// title phrase in the professional summary.
func summaryAdvice(report *types.CompatibilityReport, job *types.JobRequirementProfile) []string {
	var lines []string

	top := report.MissingRequiredSkills
	if len(top) > summaryTopSkills {
		top = top[:summaryTopSkills]
	}
	if len(top) > 0 {
		lines = append(lines, fmt.Sprintf(
			"Work %s into your professional summary where the experience supports it",
			joinSkillNames(top)))
	}
	if job.JobTitle != "" {
		lines = append(lines, fmt.Sprintf(
			"Include a variation of the title %q in your summary so screeners see an immediate match", job.JobTitle))
	}
	return lines
}

// skillsAdvice lists every missing required or preferred skill not already in
// the candidate's skill set.
func skillsAdvice(report *types.CompatibilityReport, cand *types.CandidateProfile) []string {
	candidateSkills := types.SkillSet(cand.Skills)

	var toAdd []string
	for _, skill := range report.MissingRequiredSkills {
		if !candidateSkills[skill.Name] {
			toAdd = append(toAdd, skill.Name)
		}
	}
	for _, skill := range report.MissingPreferredSkills {
		if !candidateSkills[skill.Name] {
			toAdd = append(toAdd, skill.Name)
		}
	}
	if len(toAdd) == 0 {
		return nil
	}
	return []string{fmt.Sprintf(
		"Add the following to your skills section if you can honestly claim them: %s",
		strings.Join(toAdd, ", "))}
}

// experienceAdvice targets the responsibility line with the lowest overlap
// against the candidate's bullets and suggests one concrete achievement
// pattern for it.
func experienceAdvice(job *types.JobRequirementProfile, cand *types.CandidateProfile) []string {
	line, ok := lowestOverlapResponsibility(job.Responsibilities, cand.ExperienceBullets)
	if !ok {
		return nil
	}
	return []string{fmt.Sprintf(
		"Re-phrase your weakest matching bullet: use measurable outcomes tied to %q", line)}
}

// lowestOverlapResponsibility finds the job responsibility with the smallest
// best-bullet Jaccard overlap. Returns false when the job lists no
// responsibilities.
func lowestOverlapResponsibility(responsibilities, bullets []string) (string, bool) {
	if len(responsibilities) == 0 {
		return "", false
	}
	worst := responsibilities[0]
	worstScore := 2.0
	for _, resp := range responsibilities {
		score, _ := scoring.BestBulletOverlap(resp, bullets)
		if score < worstScore {
			worstScore = score
			worst = resp
		}
	}
	return worst, true
}

// tailoringSuggestions are ordered general suggestions phrased with the job
// title, culture signals and top keywords.
func tailoringSuggestions(job *types.JobRequirementProfile) []string {
	industry := DetectIndustry(job.JobTitle, job.IndustryKeywords)
	var suggestions []string

	if job.JobTitle != "" {
		suggestions = append(suggestions, fmt.Sprintf(
			"Customize your professional summary to emphasize fit for the %s role", job.JobTitle))
	}
	if len(job.CultureSignals) > 0 {
		limit := len(job.CultureSignals)
		if limit > 2 {
			limit = 2
		}
		suggestions = append(suggestions, fmt.Sprintf(
			"Highlight experiences that demonstrate %s", strings.Join(job.CultureSignals[:limit], ", ")))
	}
	if len(job.Responsibilities) > 0 {
		suggestions = append(suggestions, fmt.Sprintf(
			"Lead with experience related to: %s", job.Responsibilities[0]))
	}
	if len(job.IndustryKeywords) > 0 {
		limit := len(job.IndustryKeywords)
		if limit > 3 {
			limit = 3
		}
		suggestions = append(suggestions, fmt.Sprintf(
			"Incorporate industry terms: %s", strings.Join(job.IndustryKeywords[:limit], ", ")))
	}
	suggestions = append(suggestions,
		"Reorder bullet points to prioritize the most relevant experience",
		"Mirror the job description's language and terminology",
		fmt.Sprintf("Quantify achievements, favoring %s", industry.framing()),
	)
	return suggestions
}

// interviewFocus builds preparation focus areas from the top required skills,
// the top responsibility and the experience level.
func interviewFocus(job *types.JobRequirementProfile) []string {
	var focus []string

	if len(job.RequiredSkills) > 0 {
		top := job.RequiredSkills
		if len(top) > 2 {
			top = top[:2]
		}
		focus = append(focus, fmt.Sprintf(
			"Prepare examples demonstrating %s", joinSkillNames(top)))
	}
	if len(job.Responsibilities) > 0 {
		focus = append(focus, fmt.Sprintf(
			"Practice discussing experience with: %s", job.Responsibilities[0]))
	}
	switch job.ExperienceLevel {
	case types.LevelSenior:
		focus = append(focus, "Prepare leadership and mentoring examples")
	case types.LevelEntry:
		focus = append(focus, "Emphasize learning agility and growth potential")
	}
	if len(job.CultureSignals) > 0 {
		focus = append(focus, fmt.Sprintf(
			"Prepare examples showing a %s mindset", job.CultureSignals[0]))
	}
	return focus
}

func joinSkillNames(skills []types.Skill) string {
	return strings.Join(types.SkillNames(skills), ", ")
}
