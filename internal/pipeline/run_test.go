package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Denis172003/CV-Analyser/internal/config"
	"github.com/Denis172003/CV-Analyser/internal/extract"
	"github.com/Denis172003/CV-Analyser/internal/lexicon"
	"github.com/Denis172003/CV-Analyser/internal/types"
)

const testJobText = `Requirements:
- 5+ years of backend development
- Strong Python and Go background
- PostgreSQL in production

Nice to have:
- Kubernetes

Responsibilities:
- Design and operate payment services
- Mentor junior engineers`

const testCandidateText = `Backend developer focused on payment systems and reliability.

Skills and experience:
- Python, Go, Docker

Work experience:
Acme Corp, 2019 - 2023
- Built payment processing services in Go
- Operated production databases under heavy load`

// stubCollaborator returns a fixed suggestion list or error.
type stubCollaborator struct {
	skills []string
	err    error
	calls  int
}

func (s *stubCollaborator) SuggestSkills(ctx context.Context, text string) ([]string, error) {
	s.calls++
	return s.skills, s.err
}

func (s *stubCollaborator) Close() error { return nil }

func newTestPipeline(collaborator *stubCollaborator) *Pipeline {
	p := &Pipeline{
		Lexicon: lexicon.Default(),
		Config: &config.Config{
			InferenceBackoffMillis:  1,
			InferenceTimeoutSeconds: 1,
		},
	}
	if collaborator != nil {
		p.Collaborator = collaborator
	}
	return p
}

func TestAnalyze_EndToEnd(t *testing.T) {
	p := newTestPipeline(nil)

	result, err := p.Analyze(context.Background(), AnalyzeOptions{
		JobText:       testJobText,
		JobTitle:      "Backend Engineer",
		CandidateText: testCandidateText,
		IncludeAdvice: true,
	})
	require.NoError(t, err)

	require.NotNil(t, result.Job)
	require.NotNil(t, result.Candidate)
	require.NotNil(t, result.Report)

	assert.Equal(t, "Backend Engineer", result.Job.JobTitle)
	assert.Contains(t, types.SkillNames(result.Job.RequiredSkills), "Go")
	assert.Contains(t, types.SkillNames(result.Candidate.Skills), "Docker")

	assert.GreaterOrEqual(t, result.Report.OverallScore, 0)
	assert.LessOrEqual(t, result.Report.OverallScore, 100)
	require.NotNil(t, result.Report.Advice)
	assert.NotEmpty(t, result.Report.Advice.SkillRecommendations)
}

func TestAnalyze_NoAdviceWhenNotRequested(t *testing.T) {
	p := newTestPipeline(nil)

	result, err := p.Analyze(context.Background(), AnalyzeOptions{
		JobText:       testJobText,
		CandidateText: testCandidateText,
	})
	require.NoError(t, err)
	assert.Nil(t, result.Report.Advice)
}

func TestAnalyze_BadJobTextFailsPairing(t *testing.T) {
	p := newTestPipeline(nil)

	_, err := p.Analyze(context.Background(), AnalyzeOptions{
		JobText:       "",
		CandidateText: testCandidateText,
	})

	var extractErr *extract.ExtractionError
	require.ErrorAs(t, err, &extractErr)
	assert.Equal(t, "job", extractErr.Stage)
}

func TestAnalyze_CollaboratorSuggestionsMerged(t *testing.T) {
	stub := &stubCollaborator{skills: []string{"Terraform"}}
	p := newTestPipeline(stub)

	result, err := p.Analyze(context.Background(), AnalyzeOptions{
		JobText:       testJobText,
		CandidateText: testCandidateText,
	})
	require.NoError(t, err)

	assert.Contains(t, types.SkillNames(result.Job.RequiredSkills), "Terraform")
	assert.Contains(t, types.SkillNames(result.Candidate.Skills), "Terraform")
	assert.False(t, result.Job.InferenceDegraded)
	assert.False(t, result.Candidate.InferenceDegraded)
}

func TestAnalyze_CollaboratorFailureDegradesGracefully(t *testing.T) {
	stub := &stubCollaborator{err: errors.New("upstream down")}
	p := newTestPipeline(stub)

	result, err := p.Analyze(context.Background(), AnalyzeOptions{
		JobText:       testJobText,
		CandidateText: testCandidateText,
	})
	require.NoError(t, err)

	assert.True(t, result.Job.InferenceDegraded)
	assert.True(t, result.Candidate.InferenceDegraded)
	assert.Contains(t, types.SkillNames(result.Job.RequiredSkills), "Go")
}

func TestExtractJob_Standalone(t *testing.T) {
	p := newTestPipeline(nil)

	job, err := p.ExtractJob(context.Background(), testJobText, "Backend Engineer", "Acme")
	require.NoError(t, err)
	assert.Equal(t, "Acme", job.Company)
	assert.NotEmpty(t, job.RequiredSkills)
}

func TestProfileCandidate_Standalone(t *testing.T) {
	p := newTestPipeline(nil)

	cand, err := p.ProfileCandidate(context.Background(), testCandidateText, []string{"Kubernetes"})
	require.NoError(t, err)
	assert.Contains(t, types.SkillNames(cand.Skills), "Kubernetes")
	assert.NotEmpty(t, cand.ExperienceBullets)
}

func TestRunBatch_OrderPreservedAndFailuresIsolated(t *testing.T) {
	p := newTestPipeline(nil)

	pairs := []Pair{
		{ID: "good-1", JobText: testJobText, CandidateText: testCandidateText},
		{ID: "bad", JobText: "", CandidateText: testCandidateText},
		{ID: "good-2", JobText: testJobText, CandidateText: testCandidateText},
	}

	results := p.RunBatch(context.Background(), pairs, false)

	require.Len(t, results, 3)
	assert.Equal(t, "good-1", results[0].ID)
	assert.Equal(t, "bad", results[1].ID)
	assert.Equal(t, "good-2", results[2].ID)

	assert.NoError(t, results[0].Err)
	assert.NotNil(t, results[0].Result)

	assert.Error(t, results[1].Err)
	assert.Nil(t, results[1].Result)

	assert.NoError(t, results[2].Err)
}

func TestRunBatch_AssignsMissingIDs(t *testing.T) {
	p := newTestPipeline(nil)

	results := p.RunBatch(context.Background(), []Pair{
		{JobText: testJobText, CandidateText: testCandidateText},
	}, false)

	require.Len(t, results, 1)
	assert.NotEmpty(t, results[0].ID)
}

func TestRunBatch_EmptyInput(t *testing.T) {
	p := newTestPipeline(nil)
	assert.Empty(t, p.RunBatch(context.Background(), nil, false))
}
