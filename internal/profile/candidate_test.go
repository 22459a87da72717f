package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Denis172003/CV-Analyser/internal/extract"
	"github.com/Denis172003/CV-Analyser/internal/lexicon"
	"github.com/Denis172003/CV-Analyser/internal/types"
)

const sampleResume = `Jane Candidate
Backend developer focused on payment systems.

Skills and experience:
- Python, Go, PostgreSQL, Docker

Work experience:
Acme Corp, 2019 - 2023
- Built payment processing services in Go
- Operated PostgreSQL clusters under heavy load

Beta LLC, 2016 - 2019
- Developed internal tooling in Python`

func TestCandidate_FullResume(t *testing.T) {
	lex := lexicon.Default()

	cand, err := Candidate(sampleResume, nil, lex, extract.DefaultOptions())
	require.NoError(t, err)

	names := types.SkillNames(cand.Skills)
	assert.Contains(t, names, "Python")
	assert.Contains(t, names, "Go")
	assert.Contains(t, names, "PostgreSQL")
	assert.Contains(t, names, "Docker")

	assert.NotEmpty(t, cand.ExperienceBullets)
	assert.Contains(t, cand.ExperienceBullets, "- Built payment processing services in Go")
	assert.NotEmpty(t, cand.TextTerms)
}

func TestCandidate_EmptyInput(t *testing.T) {
	lex := lexicon.Default()

	_, err := Candidate("", nil, lex, extract.DefaultOptions())
	require.Error(t, err)

	var extractErr *extract.ExtractionError
	require.ErrorAs(t, err, &extractErr)
	assert.Equal(t, "candidate", extractErr.Stage)
}

func TestCandidate_TooShort(t *testing.T) {
	lex := lexicon.Default()

	_, err := Candidate("Go developer", nil, lex, extract.DefaultOptions())

	var extractErr *extract.ExtractionError
	require.ErrorAs(t, err, &extractErr)
	assert.Equal(t, 2, extractErr.TokenCount)
}

func TestCandidate_PreExtractedSkillsUnion(t *testing.T) {
	lex := lexicon.Default()

	cand, err := Candidate(sampleResume, []string{"Kubernetes", "golang", "Rust"}, lex, extract.DefaultOptions())
	require.NoError(t, err)

	names := types.SkillNames(cand.Skills)
	assert.Contains(t, names, "Kubernetes")
	assert.Contains(t, names, "Rust")

	// golang resolves to Go, already matched from the text, so no duplicate.
	goCount := 0
	for _, n := range names {
		if n == "Go" {
			goCount++
		}
	}
	assert.Equal(t, 1, goCount)
}

func TestCandidate_LevelFromExplicitYears(t *testing.T) {
	lex := lexicon.Default()
	text := `Engineer with 7 years of professional backend development experience
across payments and logistics, shipping Python services into production environments
and operating cloud infrastructure at scale.`

	cand, err := Candidate(text, nil, lex, extract.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, types.LevelSenior, cand.ExperienceLevel)
}

func TestCandidate_LevelIgnoresPastRoleTitles(t *testing.T) {
	lex := lexicon.Default()
	// A resume mentioning "Senior" in a past title carries no years signal
	// and no date ranges, so the level stays unspecified.
	text := `Worked under the Senior Platform group building deployment tooling,
incident dashboards, and review automation for several product squads across the company.`

	cand, err := Candidate(text, nil, lex, extract.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, types.LevelUnspecified, cand.ExperienceLevel)
}

func TestCandidate_LevelFromDateRanges(t *testing.T) {
	lex := lexicon.Default()

	cand, err := Candidate(sampleResume, nil, lex, extract.DefaultOptions())
	require.NoError(t, err)
	// Two employment ranges map to the middle band.
	assert.Equal(t, types.LevelMid, cand.ExperienceLevel)
}

func TestMergeSkills_NormalizesExternalTerms(t *testing.T) {
	lex := lexicon.Default()
	matched := []types.Skill{{Name: "Go", SurfaceForms: []string{"go"}}}

	merged := MergeSkills(matched, []string{"js", "Go", "  "}, lex)

	names := types.SkillNames(merged)
	assert.Equal(t, []string{"Go", "JavaScript"}, names)
}

func TestLevelFromDateRanges_Bands(t *testing.T) {
	assert.Equal(t, types.LevelUnspecified, levelFromDateRanges(0))
	assert.Equal(t, types.LevelEntry, levelFromDateRanges(1))
	assert.Equal(t, types.LevelMid, levelFromDateRanges(3))
	assert.Equal(t, types.LevelSenior, levelFromDateRanges(4))
}
