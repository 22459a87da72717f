package pipeline

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultBatchConcurrency bounds the worker pool when the caller does not
// configure a limit.
const DefaultBatchConcurrency = 4

// Pair is one (job, candidate) pairing in a batch evaluation.
type Pair struct {
	// ID labels the pairing in results and logs. Empty IDs are assigned a
	// fresh UUID.
	ID                 string   `json:"id,omitempty"`
	JobText            string   `json:"job_text"`
	JobTitle           string   `json:"job_title,omitempty"`
	Company            string   `json:"company,omitempty"`
	CandidateText      string   `json:"candidate_text"`
	PreExtractedSkills []string `json:"pre_extracted_skills,omitempty"`
}

// PairResult is the outcome for one pairing. A failed pairing carries its
// error and a nil result; it never aborts the rest of the batch.
type PairResult struct {
	ID     string
	Result *Result
	Err    error
}

// RunBatch evaluates pairs across a bounded worker pool. Pairings are
// independent and share no mutable state, so they are scored in parallel.
// The returned slice is ordered like the input. Only context cancellation
// aborts the batch; per-pair failures are recorded in their PairResult.
func (p *Pipeline) RunBatch(ctx context.Context, pairs []Pair, includeAdvice bool) []PairResult {
	limit := p.Config.BatchConcurrency
	if limit <= 0 {
		limit = DefaultBatchConcurrency
	}

	results := make([]PairResult, len(pairs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, pair := range pairs {
		i, pair := i, pair
		if pair.ID == "" {
			pair.ID = uuid.NewString()
		}
		g.Go(func() error {
			res, err := p.Analyze(gctx, AnalyzeOptions{
				JobText:            pair.JobText,
				JobTitle:           pair.JobTitle,
				Company:            pair.Company,
				CandidateText:      pair.CandidateText,
				PreExtractedSkills: pair.PreExtractedSkills,
				IncludeAdvice:      includeAdvice,
			})
			if err != nil {
				p.logger().Warn("pairing failed",
					zap.String("pair_id", pair.ID),
					zap.Error(err))
			}
			results[i] = PairResult{ID: pair.ID, Result: res, Err: err}
			return nil
		})
	}

	// Workers only return nil; Wait is for pool draining.
	_ = g.Wait()

	return results
}
