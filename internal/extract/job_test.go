package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Denis172003/CV-Analyser/internal/lexicon"
	"github.com/Denis172003/CV-Analyser/internal/types"
)

const samplePosting = `Acme builds payment infrastructure for online retailers.

Requirements:
- 5+ years of backend development
- Strong Python and Go background
- PostgreSQL in production

Nice to have:
- Kubernetes
- Terraform

Responsibilities:
- Design and operate payment services
- Mentor junior engineers
- Own incident response for your services`

func TestJobProfile_FullPosting(t *testing.T) {
	lex := lexicon.Default()

	job, err := JobProfile(samplePosting, "Backend Engineer", "Acme", lex, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "Backend Engineer", job.JobTitle)
	assert.Equal(t, "Acme", job.Company)
	assert.ElementsMatch(t, []string{"Python", "Go", "PostgreSQL"}, types.SkillNames(job.RequiredSkills))
	assert.ElementsMatch(t, []string{"Kubernetes", "Terraform"}, types.SkillNames(job.PreferredSkills))
	assert.Equal(t, types.LevelMid, job.ExperienceLevel)
	require.Len(t, job.Responsibilities, 3)
	assert.Equal(t, "- Design and operate payment services", job.Responsibilities[0])
}

func TestJobProfile_EmptyInput(t *testing.T) {
	lex := lexicon.Default()

	_, err := JobProfile("", "", "", lex, DefaultOptions())
	require.Error(t, err)

	var extractErr *ExtractionError
	require.ErrorAs(t, err, &extractErr)
	assert.Equal(t, "job", extractErr.Stage)
}

func TestJobProfile_TooShort(t *testing.T) {
	lex := lexicon.Default()

	_, err := JobProfile("Go developer wanted", "", "", lex, DefaultOptions())
	require.Error(t, err)

	var extractErr *ExtractionError
	require.ErrorAs(t, err, &extractErr)
	assert.Equal(t, 3, extractErr.TokenCount)
}

func TestJobProfile_Unparseable(t *testing.T) {
	lex := lexicon.Default()
	text := strings.Repeat("lorem ipsum dolor sit amet consectetur ", 10)

	_, err := JobProfile(text, "", "", lex, DefaultOptions())
	require.Error(t, err)

	var extractErr *ExtractionError
	assert.ErrorAs(t, err, &extractErr)
}

func TestJobProfile_NoHeadingsFallsBackToWholeDocument(t *testing.T) {
	lex := lexicon.Default()
	text := `Acme is hiring a backend developer to build services in Go and Python
against PostgreSQL, deployed on Kubernetes, serving millions of customers daily.`

	job, err := JobProfile(text, "", "", lex, DefaultOptions())
	require.NoError(t, err)

	names := types.SkillNames(job.RequiredSkills)
	assert.Contains(t, names, "Go")
	assert.Contains(t, names, "Python")
	assert.Contains(t, names, "PostgreSQL")
	assert.Empty(t, job.PreferredSkills)
}

func TestJobProfile_RequiredAndPreferredAreDisjoint(t *testing.T) {
	lex := lexicon.Default()
	text := `Requirements:
- Python and Go are the core of our daily engineering stack here
- You design reliable services with measurable outcomes for customers

Nice to have:
- Python again, plus Kubernetes operations and Terraform provisioning background`

	job, err := JobProfile(text, "", "", lex, DefaultOptions())
	require.NoError(t, err)

	requiredSet := types.SkillSet(job.RequiredSkills)
	for _, s := range job.PreferredSkills {
		assert.False(t, requiredSet[s.Name], "skill %q appears in both buckets", s.Name)
	}
	assert.Contains(t, types.SkillNames(job.RequiredSkills), "Python")
	assert.NotContains(t, types.SkillNames(job.PreferredSkills), "Python")
	assert.Contains(t, types.SkillNames(job.PreferredSkills), "Kubernetes")
}

func TestJobProfile_MinTokensOverride(t *testing.T) {
	lex := lexicon.Default()

	job, err := JobProfile("Go and Python developer wanted immediately", "", "", lex, Options{MinTokens: 3})
	require.NoError(t, err)
	assert.NotEmpty(t, job.RequiredSkills)
}
