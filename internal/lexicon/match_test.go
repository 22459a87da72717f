package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Denis172003/CV-Analyser/internal/types"
)

func TestMatchSkills_SynonymCollapse(t *testing.T) {
	lex := Default()

	skills := lex.MatchSkills("We use golang on the backend and Go for tooling.")

	require.Len(t, skills, 1)
	assert.Equal(t, "Go", skills[0].Name)
	assert.ElementsMatch(t, []string{"golang", "go"}, skills[0].SurfaceForms)
}

func TestMatchSkills_LongestPhraseWins(t *testing.T) {
	lex := Default()

	skills := lex.MatchSkills("Background in machine learning and statistics.")

	names := types.SkillNames(skills)
	assert.Contains(t, names, "Machine Learning")
	// The phrase consumed its tokens, so no spurious single-token match
	// remains for "learning".
	for _, s := range skills {
		assert.NotEqual(t, "learning", s.Name)
	}
}

func TestMatchSkills_FirstOccurrenceOrder(t *testing.T) {
	lex := Default()

	skills := lex.MatchSkills("Python, Docker and PostgreSQL. Also machine learning.")

	assert.Equal(t, []string{"Python", "Docker", "PostgreSQL", "Machine Learning"}, types.SkillNames(skills))
}

func TestMatchSkills_NoMatches(t *testing.T) {
	lex := Default()

	assert.Empty(t, lex.MatchSkills("We make artisanal pottery by hand."))
	assert.Empty(t, lex.MatchSkills(""))
}

func TestMatchSkills_TechPunctuationNames(t *testing.T) {
	lex := Default()

	skills := lex.MatchSkills("Strong C++ and C# background, some Node.js.")

	assert.Equal(t, []string{"C++", "C#", "Node.js"}, types.SkillNames(skills))
}
