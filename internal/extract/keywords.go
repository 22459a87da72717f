package extract

import (
	"sort"
	"strings"

	"github.com/Denis172003/CV-Analyser/internal/lexicon"
	"github.com/Denis172003/CV-Analyser/internal/types"
)

// DefaultTopKeywords is how many industry keywords are kept when the caller
// does not configure a limit.
const DefaultTopKeywords = 15

// IndustryKeywords returns the top-N most frequent multi-word phrases across
// the whole document, after removing phrases already captured as required or
// preferred skills. Ranked by frequency, with first-occurrence position as the
// tie-break.
func IndustryKeywords(text string, captured []types.Skill, lex *lexicon.Lexicon, topN int) []string {
	if topN <= 0 {
		topN = DefaultTopKeywords
	}

	skip := make(map[string]bool)
	for _, skill := range captured {
		skip[lexicon.NormalizeTerm(skill.Name)] = true
		for _, surface := range skill.SurfaceForms {
			skip[lexicon.NormalizeTerm(surface)] = true
		}
	}

	phrases := lex.ExtractPhrases(text)
	kept := phrases[:0]
	for _, p := range phrases {
		if skip[p.Text] {
			continue
		}
		// Phrases that are a known skill under another surface form are
		// already counted as skills, not keywords.
		if entry, ok := lex.Canonical(p.Text); ok && skip[lexicon.NormalizeTerm(entry.Name)] {
			continue
		}
		kept = append(kept, p)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].Count != kept[j].Count {
			return kept[i].Count > kept[j].Count
		}
		if kept[i].First != kept[j].First {
			return kept[i].First < kept[j].First
		}
		return kept[i].Text < kept[j].Text
	})

	if len(kept) > topN {
		kept = kept[:topN]
	}
	keywords := make([]string, len(kept))
	for i, p := range kept {
		keywords[i] = p.Text
	}
	return keywords
}

// CultureSignals scans the whole document for the lexicon's culture terms,
// returned lowercased in first-occurrence order.
func CultureSignals(text string, lex *lexicon.Lexicon) []string {
	lower := strings.ToLower(text)
	var signals []string
	seen := make(map[string]bool)
	type hit struct {
		term string
		pos  int
	}
	var hits []hit
	for _, term := range lex.CultureTerms {
		t := strings.ToLower(term)
		if idx := strings.Index(lower, t); idx >= 0 && !seen[t] {
			seen[t] = true
			hits = append(hits, hit{term: t, pos: idx})
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })
	for _, h := range hits {
		signals = append(signals, h.term)
	}
	return signals
}
