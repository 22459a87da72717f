package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Denis172003/CV-Analyser/internal/types"
)

func TestPrintJobProfile(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobProfile(&types.JobRequirementProfile{
		JobTitle: "Backend Engineer",
		Company:  "Acme",
		RequiredSkills: []types.Skill{
			{Name: "Go"}, {Name: "PostgreSQL"},
		},
		PreferredSkills: []types.Skill{{Name: "Kubernetes"}},
		ExperienceLevel: types.LevelMid,
	})

	output := buf.String()
	assert.Contains(t, output, "JOB REQUIREMENT PROFILE")
	assert.Contains(t, output, "Acme")
	assert.Contains(t, output, "Go")
	assert.Contains(t, output, "Kubernetes")
	assert.Contains(t, output, "mid")
}

func TestPrintJobProfile_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintJobProfile(nil)
	assert.Empty(t, buf.String())
}

func TestPrintCandidateProfile_DegradedWarning(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCandidateProfile(&types.CandidateProfile{
		Skills:            []types.Skill{{Name: "Python"}},
		ExperienceLevel:   types.LevelSenior,
		InferenceDegraded: true,
	})

	output := buf.String()
	assert.Contains(t, output, "CANDIDATE PROFILE")
	assert.Contains(t, output, "Python")
	assert.Contains(t, output, "inference collaborator unavailable")
}

func TestPrintReport_FactorBreakdown(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintReport(&types.CompatibilityReport{
		OverallScore: 72,
		FactorScores: types.FactorScores{
			SkillMatch:              80,
			ExperienceAlignment:     100,
			KeywordCoverage:         40,
			ResponsibilityAlignment: 50,
		},
		MissingRequiredSkills: []types.Skill{{Name: "Kubernetes"}},
	})

	output := buf.String()
	assert.Contains(t, output, "72 / 100")
	assert.Contains(t, output, "Skill Match")
	assert.Contains(t, output, "Missing (required)")
}

func TestPrintAdvice_SectionsInFixedOrder(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAdvice(&types.OptimizationAdvice{
		SkillRecommendations: []types.SkillRecommendation{
			{Skill: "Kubernetes", Priority: types.PriorityHigh},
		},
		SectionAdvice: map[string][]string{
			types.SectionSummary: {"mention Kubernetes"},
			types.SectionSkills:  {"add Kubernetes"},
		},
	})

	output := buf.String()
	assert.Contains(t, output, "OPTIMIZATION ADVICE")
	assert.Contains(t, output, "Kubernetes (high)")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("Summary:")), bytes.Index(buf.Bytes(), []byte("Skills:")))
}

func TestPrintAdvice_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintAdvice(nil)
	assert.Empty(t, buf.String())
}

func TestTruncateList(t *testing.T) {
	assert.Equal(t, "a, b", truncateList([]string{"a", "b"}, 10))
	assert.Equal(t, "one, tw...", truncateList([]string{"one", "two", "three"}, 10))
}
