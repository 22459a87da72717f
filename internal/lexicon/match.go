package lexicon

import (
	"strings"

	"github.com/Denis172003/CV-Analyser/internal/types"
)

// MatchSkills scans text for skill terms from the lookup table using n-gram
// matching, longest phrase first. Each canonical skill appears once, in
// first-occurrence order, with every distinct surface form recorded.
func (l *Lexicon) MatchSkills(text string) []types.Skill {
	tokens := Tokenize(text)
	consumed := make([]bool, len(tokens))

	var order []string
	matched := make(map[string]*types.Skill)

	// Longest match first so "machine learning" wins over any single-token
	// entry sharing its words.
	for n := l.MaxGram(); n >= 1; n-- {
		for i := 0; i+n <= len(tokens); i++ {
			if anyConsumed(consumed[i : i+n]) {
				continue
			}
			surface := strings.Join(tokens[i:i+n], " ")
			entry, ok := l.synonymIndex[surface]
			if !ok {
				continue
			}
			for j := i; j < i+n; j++ {
				consumed[j] = true
			}
			if existing, seen := matched[entry.Name]; seen {
				addSurfaceForm(existing, surface)
				continue
			}
			matched[entry.Name] = &types.Skill{
				Name:         entry.Name,
				SurfaceForms: []string{surface},
				Category:     types.SkillCategory(entry.Category),
			}
			order = append(order, entry.Name)
		}
	}

	// First-occurrence order is by token position, not by gram length pass.
	positions := make(map[string]int, len(order))
	for name := range matched {
		positions[name] = firstPosition(tokens, matched[name].SurfaceForms)
	}
	sortByPosition(order, positions)

	skills := make([]types.Skill, 0, len(order))
	for _, name := range order {
		skills = append(skills, *matched[name])
	}
	return skills
}

func anyConsumed(window []bool) bool {
	for _, c := range window {
		if c {
			return true
		}
	}
	return false
}

func addSurfaceForm(skill *types.Skill, surface string) {
	for _, existing := range skill.SurfaceForms {
		if existing == surface {
			return
		}
	}
	skill.SurfaceForms = append(skill.SurfaceForms, surface)
}

// firstPosition finds the earliest token index at which any of the surface
// forms begins.
func firstPosition(tokens []string, surfaces []string) int {
	best := len(tokens)
	for _, surface := range surfaces {
		parts := strings.Fields(surface)
		for i := 0; i+len(parts) <= len(tokens); i++ {
			if tokensEqual(tokens[i:i+len(parts)], parts) {
				if i < best {
					best = i
				}
				break
			}
		}
	}
	return best
}

func tokensEqual(a, b []string) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func sortByPosition(order []string, positions map[string]int) {
	// Insertion sort keeps this dependency-free and stable for equal
	// positions.
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && positions[order[j]] < positions[order[j-1]]; j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}
}
