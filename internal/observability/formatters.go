// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/Denis172003/CV-Analyser/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJobProfile outputs a human-readable summary of the extracted job
// requirement profile.
func (p *Printer) PrintJobProfile(profile *types.JobRequirementProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	if profile.Company != "" {
		sb.WriteString(fmt.Sprintf("Company:  %s\n", profile.Company))
	}
	if profile.JobTitle != "" {
		sb.WriteString(fmt.Sprintf("Role:     %s\n", profile.JobTitle))
	}
	sb.WriteString(fmt.Sprintf("Level:    %s\n", profile.ExperienceLevel))
	sb.WriteString("\n")

	writeSkillList(&sb, "Required Skills:", profile.RequiredSkills, maxItemsToShow)
	writeSkillList(&sb, "Preferred Skills:", profile.PreferredSkills, 3)

	if len(profile.IndustryKeywords) > 0 {
		sb.WriteString(fmt.Sprintf("Keywords: %s\n", truncateList(profile.IndustryKeywords, 40)))
	}
	if profile.InferenceDegraded {
		sb.WriteString("Warning:  inference collaborator unavailable\n")
	}

	p.printBox("JOB REQUIREMENT PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCandidateProfile outputs a human-readable summary of the candidate
// profile.
func (p *Printer) PrintCandidateProfile(profile *types.CandidateProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Level:    %s\n", profile.ExperienceLevel))
	sb.WriteString(fmt.Sprintf("Bullets:  %d\n", len(profile.ExperienceBullets)))
	sb.WriteString("\n")

	writeSkillList(&sb, "Skills:", profile.Skills, maxItemsToShow)

	if profile.InferenceDegraded {
		sb.WriteString("Warning:  inference collaborator unavailable\n")
	}

	p.printBox("CANDIDATE PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintReport outputs the compatibility report with its factor breakdown.
func (p *Printer) PrintReport(report *types.CompatibilityReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall Score: %d / 100\n\n", report.OverallScore))
	sb.WriteString(fmt.Sprintf("  Skill Match:              %3d\n", report.FactorScores.SkillMatch))
	sb.WriteString(fmt.Sprintf("  Experience Alignment:     %3d\n", report.FactorScores.ExperienceAlignment))
	sb.WriteString(fmt.Sprintf("  Keyword Coverage:         %3d\n", report.FactorScores.KeywordCoverage))
	sb.WriteString(fmt.Sprintf("  Responsibility Alignment: %3d\n", report.FactorScores.ResponsibilityAlignment))
	sb.WriteString("\n")

	if len(report.MatchedSkills) > 0 {
		sb.WriteString(fmt.Sprintf("Matched:  %s\n", truncateList(types.SkillNames(report.MatchedSkills), 40)))
	}
	if len(report.MissingRequiredSkills) > 0 {
		sb.WriteString(fmt.Sprintf("Missing (required):  %s\n", truncateList(types.SkillNames(report.MissingRequiredSkills), 30)))
	}
	if len(report.MissingPreferredSkills) > 0 {
		sb.WriteString(fmt.Sprintf("Missing (preferred): %s\n", truncateList(types.SkillNames(report.MissingPreferredSkills), 30)))
	}

	p.printBox("COMPATIBILITY REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAdvice outputs the optimization advice summary.
func (p *Printer) PrintAdvice(advice *types.OptimizationAdvice) {
	if advice == nil {
		return
	}

	var sb strings.Builder

	if len(advice.SkillRecommendations) > 0 {
		sb.WriteString("Skill Recommendations:\n")
		count := min(len(advice.SkillRecommendations), maxItemsToShow)
		for i := 0; i < count; i++ {
			rec := advice.SkillRecommendations[i]
			sb.WriteString(fmt.Sprintf("  • %s (%s)\n", rec.Skill, rec.Priority))
		}
		if len(advice.SkillRecommendations) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(advice.SkillRecommendations)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	for _, section := range []string{types.SectionSummary, types.SectionSkills, types.SectionExperience} {
		lines, ok := advice.SectionAdvice[section]
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s:\n", strings.ToUpper(section[:1])+section[1:]))
		for _, line := range lines {
			sb.WriteString(fmt.Sprintf("  • %s\n", line))
		}
	}

	p.printBox("OPTIMIZATION ADVICE", strings.TrimSuffix(sb.String(), "\n"))
}

// writeSkillList appends a capped bullet list of skill names.
func writeSkillList(sb *strings.Builder, title string, skills []types.Skill, limit int) {
	if len(skills) == 0 {
		return
	}
	sb.WriteString(title + "\n")
	count := min(len(skills), limit)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", skills[i].Name))
	}
	if len(skills) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(skills)-limit))
	}
	sb.WriteString("\n")
}

// truncateList joins items with commas and truncates the result.
func truncateList(items []string, limit int) string {
	joined := strings.Join(items, ", ")
	if len(joined) > limit {
		joined = joined[:limit-3] + "..."
	}
	return joined
}
