// Package extract turns raw job-posting text into a structured
// JobRequirementProfile using section segmentation and dictionary matching.
package extract

import (
	"strings"

	"github.com/Denis172003/CV-Analyser/internal/lexicon"
)

// Section labels produced by segmentation. They mirror the lexicon's
// section_headers keys; LabelOther covers text before any recognized heading
// or under unrecognized ones.
const (
	LabelRequirements     = "requirements"
	LabelPreferred        = "preferred"
	LabelResponsibilities = "responsibilities"
	LabelExperience       = "experience"
	LabelOther            = "other"
)

// maxHeadingWords bounds how long a line can be and still count as a heading.
const maxHeadingWords = 8

// Section is a labeled run of lines under one heading.
type Section struct {
	Label   string
	Heading string
	Lines   []string
}

// SegmentSections splits text into labeled sections by heading-keyword
// detection. A line is a heading when it is short and its normalized form
// matches one of the lexicon's section-header synonyms.
func SegmentSections(text string, lex *lexicon.Lexicon) []Section {
	var sections []Section
	current := Section{Label: LabelOther}

	flush := func() {
		if len(current.Lines) > 0 || current.Heading != "" {
			sections = append(sections, current)
		}
	}

	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}
		if label, ok := headingLabel(line, lex); ok {
			flush()
			current = Section{Label: label, Heading: line}
			continue
		}
		current.Lines = append(current.Lines, line)
	}
	flush()

	return sections
}

// headingLabel reports whether a line is a section heading and which label it
// maps to.
func headingLabel(line string, lex *lexicon.Lexicon) (string, bool) {
	if len(strings.Fields(line)) > maxHeadingWords {
		return "", false
	}
	// Bullet lines are content even when they mention a header word.
	if strings.HasPrefix(line, "-") || strings.HasPrefix(line, "*") || strings.HasPrefix(line, "•") {
		return "", false
	}
	return lex.SectionLabel(line)
}

// sectionText joins the lines of every section with one of the given labels.
func sectionText(sections []Section, labels ...string) string {
	wanted := make(map[string]bool, len(labels))
	for _, l := range labels {
		wanted[l] = true
	}
	var sb strings.Builder
	for _, sec := range sections {
		if !wanted[sec.Label] {
			continue
		}
		for _, line := range sec.Lines {
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// sectionLines collects the lines of every section with the given label, in
// document order.
func sectionLines(sections []Section, label string) []string {
	var lines []string
	for _, sec := range sections {
		if sec.Label == label {
			lines = append(lines, sec.Lines...)
		}
	}
	return lines
}
