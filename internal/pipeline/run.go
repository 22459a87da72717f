// Package pipeline provides the high-level orchestration for the matching
// process: concurrent profile extraction, scoring, and advisory generation.
package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Denis172003/CV-Analyser/internal/advice"
	"github.com/Denis172003/CV-Analyser/internal/config"
	"github.com/Denis172003/CV-Analyser/internal/extract"
	"github.com/Denis172003/CV-Analyser/internal/inference"
	"github.com/Denis172003/CV-Analyser/internal/lexicon"
	"github.com/Denis172003/CV-Analyser/internal/profile"
	"github.com/Denis172003/CV-Analyser/internal/scoring"
	"github.com/Denis172003/CV-Analyser/internal/types"
)

// AnalyzeOptions holds the inputs for one (job, candidate) analysis.
type AnalyzeOptions struct {
	JobText       string
	JobTitle      string
	Company       string
	CandidateText string
	// PreExtractedSkills is an optional skills list from an upstream
	// collaborator, merged with dictionary matches.
	PreExtractedSkills []string
	// IncludeAdvice nests OptimizationAdvice into the report.
	IncludeAdvice bool
}

// Result bundles the two profiles with the report computed from them.
type Result struct {
	Job       *types.JobRequirementProfile `json:"job_profile"`
	Candidate *types.CandidateProfile      `json:"candidate_profile"`
	Report    *types.CompatibilityReport   `json:"report"`
}

// Pipeline wires the engine components together. All fields are read-only
// after construction; one Pipeline may serve many concurrent Analyze calls.
type Pipeline struct {
	Lexicon *lexicon.Lexicon
	Config  *config.Config
	Logger  *zap.Logger
	// Collaborator is the optional inference service. Nil disables it.
	Collaborator inference.Collaborator
}

// Analyze runs the full pipeline for one pairing. The requirement extractor
// and candidate profiler are independent and run concurrently; scoring and
// advice generation are synchronous over the finished profiles.
func (p *Pipeline) Analyze(ctx context.Context, opts AnalyzeOptions) (*Result, error) {
	runID := uuid.NewString()
	log := p.logger().With(zap.String("run_id", runID))
	log.Debug("starting analysis")

	var job *types.JobRequirementProfile
	var cand *types.CandidateProfile

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		job, err = p.extractJob(gctx, opts.JobText, opts.JobTitle, opts.Company, log)
		return err
	})
	g.Go(func() error {
		var err error
		cand, err = p.profileCandidate(gctx, opts.CandidateText, opts.PreExtractedSkills, log)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report, err := scoring.Score(job, cand, p.Config.ScoringWeights())
	if err != nil {
		return nil, err
	}

	if opts.IncludeAdvice {
		report.Advice = advice.Generate(report, job, cand, p.Lexicon)
	}

	log.Info("analysis complete",
		zap.Int("overall_score", report.OverallScore),
		zap.Int("missing_required", len(report.MissingRequiredSkills)),
	)

	return &Result{Job: job, Candidate: cand, Report: report}, nil
}

// ExtractJob runs the requirement extractor alone, with optional inference
// enrichment.
func (p *Pipeline) ExtractJob(ctx context.Context, text, title, company string) (*types.JobRequirementProfile, error) {
	return p.extractJob(ctx, text, title, company, p.logger())
}

// ProfileCandidate runs the candidate profiler alone, with optional inference
// enrichment.
func (p *Pipeline) ProfileCandidate(ctx context.Context, text string, preExtracted []string) (*types.CandidateProfile, error) {
	return p.profileCandidate(ctx, text, preExtracted, p.logger())
}

func (p *Pipeline) extractJob(ctx context.Context, text, title, company string, log *zap.Logger) (*types.JobRequirementProfile, error) {
	jobProfile, err := extract.JobProfile(text, title, company, p.Lexicon, p.Config.ExtractOptions())
	if err != nil {
		return nil, err
	}

	suggested, degraded := p.suggest(ctx, text, log)
	if degraded {
		jobProfile.InferenceDegraded = true
	}
	if len(suggested) > 0 {
		jobProfile.RequiredSkills = mergeJobSkills(jobProfile, suggested, p.Lexicon)
	}
	return jobProfile, nil
}

func (p *Pipeline) profileCandidate(ctx context.Context, text string, preExtracted []string, log *zap.Logger) (*types.CandidateProfile, error) {
	candProfile, err := profile.Candidate(text, preExtracted, p.Lexicon, p.Config.ExtractOptions())
	if err != nil {
		return nil, err
	}

	suggested, degraded := p.suggest(ctx, text, log)
	if degraded {
		candProfile.InferenceDegraded = true
	}
	if len(suggested) > 0 {
		candProfile.Skills = profile.MergeSkills(candProfile.Skills, suggested, p.Lexicon)
	}
	return candProfile, nil
}

// suggest calls the inference collaborator when configured. Failures are
// downgraded to dictionary-only extraction after the bounded retry; the
// second return value reports that downgrade so callers can flag the profile.
func (p *Pipeline) suggest(ctx context.Context, text string, log *zap.Logger) ([]string, bool) {
	if p.Collaborator == nil {
		return nil, false
	}

	backoff := time.Duration(p.Config.InferenceBackoffMillis) * time.Millisecond
	timeout := time.Duration(p.Config.InferenceTimeoutSeconds) * time.Second

	suggested, err := inference.SuggestWithRetry(ctx, p.Collaborator, text, backoff, timeout)
	if err != nil {
		log.Warn("inference collaborator unavailable, falling back to dictionary extraction",
			zap.Error(err))
		return nil, true
	}
	return suggested, false
}

// mergeJobSkills unions collaborator-suggested skills into the required set,
// skipping anything already captured as required or preferred.
func mergeJobSkills(job *types.JobRequirementProfile, suggested []string, lex *lexicon.Lexicon) []types.Skill {
	preferredSet := types.SkillSet(job.PreferredSkills)
	kept := make([]string, 0, len(suggested))
	for _, term := range suggested {
		if skill, _ := lex.CanonicalSkill(term); skill.Name != "" && !preferredSet[skill.Name] {
			kept = append(kept, term)
		}
	}
	return profile.MergeSkills(job.RequiredSkills, kept, lex)
}

func (p *Pipeline) logger() *zap.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return zap.NewNop()
}
