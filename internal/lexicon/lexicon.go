// Package lexicon provides the versioned skill/synonym lookup table used by the
// extraction and scoring packages. The table is loaded once per process and is
// read-only for the lifetime of all scoring calls.
package lexicon

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/Denis172003/CV-Analyser/internal/schemas"
	"github.com/Denis172003/CV-Analyser/internal/types"
)

//go:embed default.json
var defaultLexiconJSON []byte

//go:embed lexicon.schema.json
var lexiconSchemaJSON []byte

// SkillEntry is one canonical skill in the lookup table
type SkillEntry struct {
	Name     string   `json:"name"`
	Category string   `json:"category,omitempty"`
	Synonyms []string `json:"synonyms,omitempty"`
}

// Lexicon is the external lookup table: canonical skills with synonyms,
// section-header synonym lists, culture terms, stop words and the
// learning-suggestion templates keyed by skill category.
type Lexicon struct {
	Version             string              `json:"version"`
	Skills              []SkillEntry        `json:"skills"`
	SectionHeaders      map[string][]string `json:"section_headers"`
	CultureTerms        []string            `json:"culture_terms,omitempty"`
	StopWords           []string            `json:"stop_words,omitempty"`
	LearningSuggestions map[string]string   `json:"learning_suggestions,omitempty"`

	// Derived indexes, built once by buildIndexes.
	synonymIndex   map[string]*SkillEntry
	headerIndex    map[string]string
	headerSynonyms []string
	stopSet        map[string]bool
	maxGram        int
}

// Default returns the compiled-in lexicon. The embedded table is trusted and
// loading it never fails at runtime.
func Default() *Lexicon {
	lex, err := parse(defaultLexiconJSON)
	if err != nil {
		panic(fmt.Sprintf("embedded default lexicon is invalid: %v", err))
	}
	return lex
}

// Load reads and validates an external lexicon file. The file is checked
// against the embedded JSON Schema before parsing so malformed tables are
// rejected with field-level errors instead of partial state.
func Load(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lexicon file %s: %w", path, err)
	}

	if err := schemas.ValidateBytes(lexiconSchemaJSON, data); err != nil {
		return nil, fmt.Errorf("lexicon file %s failed schema validation: %w", path, err)
	}

	return parse(data)
}

func parse(data []byte) (*Lexicon, error) {
	var lex Lexicon
	if err := json.Unmarshal(data, &lex); err != nil {
		return nil, fmt.Errorf("failed to parse lexicon JSON: %w", err)
	}
	if len(lex.Skills) == 0 {
		return nil, fmt.Errorf("lexicon contains no skills")
	}
	lex.buildIndexes()
	return &lex, nil
}

// buildIndexes precomputes the synonym, header and stop-word lookups.
func (l *Lexicon) buildIndexes() {
	l.synonymIndex = make(map[string]*SkillEntry)
	l.maxGram = 1
	for i := range l.Skills {
		entry := &l.Skills[i]
		key := NormalizeTerm(entry.Name)
		if key == "" {
			continue
		}
		l.synonymIndex[key] = entry
		if n := len(strings.Fields(key)); n > l.maxGram {
			l.maxGram = n
		}
		for _, syn := range entry.Synonyms {
			synKey := NormalizeTerm(syn)
			if synKey == "" {
				continue
			}
			l.synonymIndex[synKey] = entry
			if n := len(strings.Fields(synKey)); n > l.maxGram {
				l.maxGram = n
			}
		}
	}

	l.headerIndex = make(map[string]string)
	labels := make([]string, 0, len(l.SectionHeaders))
	for label := range l.SectionHeaders {
		labels = append(labels, label)
	}
	// Deterministic build order so duplicate header synonyms resolve stably.
	sort.Strings(labels)
	for _, label := range labels {
		for _, header := range l.SectionHeaders[label] {
			key := NormalizeTerm(header)
			if key == "" {
				continue
			}
			if _, exists := l.headerIndex[key]; !exists {
				l.headerIndex[key] = label
			}
		}
	}

	// Containment scan order: longest synonym first so the most specific
	// match decides, lexicographic after that. Map iteration order must
	// never influence which label an ambiguous heading resolves to.
	l.headerSynonyms = make([]string, 0, len(l.headerIndex))
	for synonym := range l.headerIndex {
		l.headerSynonyms = append(l.headerSynonyms, synonym)
	}
	sort.Slice(l.headerSynonyms, func(i, j int) bool {
		if len(l.headerSynonyms[i]) != len(l.headerSynonyms[j]) {
			return len(l.headerSynonyms[i]) > len(l.headerSynonyms[j])
		}
		return l.headerSynonyms[i] < l.headerSynonyms[j]
	})

	l.stopSet = make(map[string]bool, len(l.StopWords))
	for _, w := range l.StopWords {
		l.stopSet[strings.ToLower(strings.TrimSpace(w))] = true
	}
}

// Canonical resolves a surface term to its canonical skill entry.
func (l *Lexicon) Canonical(term string) (*SkillEntry, bool) {
	entry, ok := l.synonymIndex[NormalizeTerm(term)]
	return entry, ok
}

// CanonicalSkill resolves a surface term into a types.Skill, preserving the
// surface form. Unrecognized terms become a skill named by their normalized
// form with an unknown category, so collaborator-suggested skills are never
// dropped.
func (l *Lexicon) CanonicalSkill(term string) (types.Skill, bool) {
	if entry, ok := l.Canonical(term); ok {
		return types.Skill{
			Name:         entry.Name,
			SurfaceForms: []string{strings.TrimSpace(term)},
			Category:     types.SkillCategory(entry.Category),
		}, true
	}
	normalized := NormalizeTerm(term)
	if normalized == "" {
		return types.Skill{}, false
	}
	return types.Skill{
		Name:         normalized,
		SurfaceForms: []string{strings.TrimSpace(term)},
		Category:     types.CategoryUnknown,
	}, false
}

// SectionLabel maps a heading line to its section label ("requirements",
// "preferred", "responsibilities", "experience"). Returns false when the
// heading matches no configured synonym.
func (l *Lexicon) SectionLabel(heading string) (string, bool) {
	key := NormalizeTerm(heading)
	if key == "" {
		return "", false
	}
	if label, ok := l.headerIndex[key]; ok {
		return label, true
	}
	// Headings often decorate the synonym ("Key Responsibilities:", "What
	// you'll need"). Fall back to substring containment over the synonyms,
	// longest first, so headings containing synonyms of two labels resolve
	// the same way on every call.
	for _, synonym := range l.headerSynonyms {
		if strings.Contains(key, synonym) {
			return l.headerIndex[synonym], true
		}
	}
	return "", false
}

// IsStopWord reports whether a lowercase token is in the stop-word list.
func (l *Lexicon) IsStopWord(token string) bool {
	return l.stopSet[token]
}

// LearningSuggestion returns the learning-suggestion template for a skill
// category, falling back to the generic template for unknown categories.
func (l *Lexicon) LearningSuggestion(category types.SkillCategory, skill string) string {
	if tpl, ok := l.LearningSuggestions[string(category)]; ok && category != types.CategoryUnknown {
		return expandTemplate(tpl, skill)
	}
	if tpl, ok := l.LearningSuggestions["default"]; ok {
		return expandTemplate(tpl, skill)
	}
	return expandTemplate("If you don't have %s experience, consider taking an online course or mentioning willingness to learn", skill)
}

// expandTemplate substitutes the skill name into a suggestion template.
// Templates come from external lexicon files, so a missing %s placeholder
// must not leak formatting noise into advice; the skill is appended instead.
func expandTemplate(tpl, skill string) string {
	if !strings.Contains(tpl, "%s") {
		return tpl + ": " + skill
	}
	return strings.ReplaceAll(tpl, "%s", skill)
}

// MaxGram returns the longest phrase length (in tokens) of any skill or
// synonym in the table, used to bound the n-gram scan window.
func (l *Lexicon) MaxGram() int {
	if l.maxGram < 1 {
		return 1
	}
	return l.maxGram
}
