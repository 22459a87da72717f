// Package scoring computes weighted compatibility reports from a job
// requirement profile and a candidate profile. Scoring is a pure function:
// identical inputs always yield an identical report.
package scoring

import (
	"math"
	"sort"

	"github.com/go-playground/validator/v10"

	"github.com/Denis172003/CV-Analyser/internal/lexicon"
	"github.com/Denis172003/CV-Analyser/internal/types"
)

// Weights holds the factor weights of the overall score. The documented
// defaults are fixed; overrides come only from configuration, never per call.
type Weights struct {
	SkillMatch              float64 `json:"skill_match" validate:"gte=0,lte=1"`
	ExperienceAlignment     float64 `json:"experience_alignment" validate:"gte=0,lte=1"`
	KeywordCoverage         float64 `json:"keyword_coverage" validate:"gte=0,lte=1"`
	ResponsibilityAlignment float64 `json:"responsibility_alignment" validate:"gte=0,lte=1"`
}

// DefaultWeights returns the documented factor weighting.
func DefaultWeights() Weights {
	return Weights{
		SkillMatch:              0.40,
		ExperienceAlignment:     0.25,
		KeywordCoverage:         0.20,
		ResponsibilityAlignment: 0.15,
	}
}

// preferredBonusCap is the maximum partial-credit bonus added to the skill
// match score for matched preferred skills.
const preferredBonusCap = 10.0

var validate = validator.New()

// Score computes a CompatibilityReport for one (job, candidate) pair. The
// report is produced fresh and never mutated afterwards; a new pairing
// produces a new report.
func Score(job *types.JobRequirementProfile, cand *types.CandidateProfile, weights Weights) (*types.CompatibilityReport, error) {
	if job == nil {
		return nil, &ScoringError{Profile: "job", Message: "is missing"}
	}
	if cand == nil {
		return nil, &ScoringError{Profile: "candidate", Message: "is missing"}
	}
	if !job.ExperienceLevel.Valid() {
		return nil, &ScoringError{Profile: "job", Message: "has an invalid experience level"}
	}
	if !cand.ExperienceLevel.Valid() {
		return nil, &ScoringError{Profile: "candidate", Message: "has an invalid experience level"}
	}
	if err := validate.Struct(job); err != nil {
		return nil, &ScoringError{Profile: "job", Message: "is malformed", Cause: err}
	}
	if err := validate.Struct(cand); err != nil {
		return nil, &ScoringError{Profile: "candidate", Message: "is malformed", Cause: err}
	}

	candidateSkills := types.SkillSet(cand.Skills)

	factors := types.FactorScores{
		SkillMatch:              skillMatchScore(job, candidateSkills),
		ExperienceAlignment:     experienceAlignmentScore(job.ExperienceLevel, cand.ExperienceLevel),
		KeywordCoverage:         keywordCoverageScore(job.IndustryKeywords, cand.TextTerms),
		ResponsibilityAlignment: responsibilityAlignmentScore(job.Responsibilities, cand.ExperienceBullets),
	}

	matched, missingRequired, missingPreferred := partitionSkills(job, candidateSkills)

	return &types.CompatibilityReport{
		OverallScore:           overall(factors, weights),
		FactorScores:           factors,
		MatchedSkills:          matched,
		MissingRequiredSkills:  missingRequired,
		MissingPreferredSkills: missingPreferred,
		MissingKeywords:        missingKeywords(job.IndustryKeywords, cand.TextTerms),
	}, nil
}

// skillMatchScore is the fraction of required skills the candidate has, on a
// 0-100 scale, plus a partial-credit bonus of up to 10 points proportional to
// the fraction of preferred skills matched. Capped at 100.
func skillMatchScore(job *types.JobRequirementProfile, candidateSkills map[string]bool) int {
	matchedRequired := 0
	for _, s := range job.RequiredSkills {
		if candidateSkills[s.Name] {
			matchedRequired++
		}
	}
	score := 100.0 * float64(matchedRequired) / math.Max(1, float64(len(job.RequiredSkills)))

	if len(job.PreferredSkills) > 0 {
		matchedPreferred := 0
		for _, s := range job.PreferredSkills {
			if candidateSkills[s.Name] {
				matchedPreferred++
			}
		}
		score += preferredBonusCap * float64(matchedPreferred) / float64(len(job.PreferredSkills))
	}

	return clamp(int(math.Round(score)))
}

// experienceAlignmentScore compares seniority bands: equal 100, one band
// apart 70, two bands apart 40. Unspecified on either side is non-penalizing.
func experienceAlignmentScore(job, cand types.ExperienceLevel) int {
	if job == types.LevelUnspecified || cand == types.LevelUnspecified {
		return 100
	}
	switch distance := abs(job.Band() - cand.Band()); distance {
	case 0:
		return 100
	case 1:
		return 70
	default:
		return 40
	}
}

// keywordCoverageScore is the fraction of the job's industry keywords present
// in the candidate's text terms, on a 0-100 scale.
func keywordCoverageScore(keywords, candidateTerms []string) int {
	termSet := make(map[string]bool, len(candidateTerms))
	for _, t := range candidateTerms {
		termSet[lexicon.NormalizeTerm(t)] = true
	}
	covered := 0
	for _, kw := range keywords {
		if termSet[lexicon.NormalizeTerm(kw)] {
			covered++
		}
	}
	score := 100.0 * float64(covered) / math.Max(1, float64(len(keywords)))
	return clamp(int(math.Round(score)))
}

// responsibilityAlignmentScore averages, over each responsibility line, the
// best Jaccard token overlap against any single candidate experience bullet.
// Zero when there are no responsibility lines.
func responsibilityAlignmentScore(responsibilities, bullets []string) int {
	if len(responsibilities) == 0 {
		return 0
	}
	total := 0.0
	for _, resp := range responsibilities {
		best, _ := BestBulletOverlap(resp, bullets)
		total += best
	}
	avg := total / float64(len(responsibilities))
	return clamp(int(math.Round(avg * 100)))
}

// BestBulletOverlap returns the highest Jaccard overlap between a
// responsibility line and any candidate bullet, along with the index of the
// best bullet (-1 when there are no bullets).
func BestBulletOverlap(responsibility string, bullets []string) (float64, int) {
	respSet := lexicon.TokenSet(responsibility)
	best := 0.0
	bestIdx := -1
	for i, bullet := range bullets {
		j := jaccard(respSet, lexicon.TokenSet(bullet))
		if j > best {
			best = j
			bestIdx = i
		}
	}
	return best, bestIdx
}

// jaccard computes |a ∩ b| / |a ∪ b| over token sets.
func jaccard(a, b map[string]bool) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inter := 0
	for tok := range a {
		if b[tok] {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

// partitionSkills splits the union of required and preferred skills into the
// three report buckets. Every referenced skill lands in exactly one bucket.
func partitionSkills(job *types.JobRequirementProfile, candidateSkills map[string]bool) (matched, missingRequired, missingPreferred []types.Skill) {
	matched = []types.Skill{}
	missingRequired = []types.Skill{}
	missingPreferred = []types.Skill{}

	for _, s := range job.RequiredSkills {
		if candidateSkills[s.Name] {
			matched = append(matched, s)
		} else {
			missingRequired = append(missingRequired, s)
		}
	}
	for _, s := range job.PreferredSkills {
		if candidateSkills[s.Name] {
			matched = append(matched, s)
		} else {
			missingPreferred = append(missingPreferred, s)
		}
	}

	// Missing lists keep the profile's extraction order, with descending name
	// length then name as the stable tie-break for entries sharing a first
	// occurrence position (possible when a profile was merged from several
	// sources).
	orderMissing(missingRequired, positionIndex(job.RequiredSkills))
	orderMissing(missingPreferred, positionIndex(job.PreferredSkills))
	return matched, missingRequired, missingPreferred
}

// positionIndex maps each skill name to its extraction position. A name that
// appears twice keeps its first position, so the later duplicate ties with it
// and falls through to the length tie-break.
func positionIndex(skills []types.Skill) map[string]int {
	pos := make(map[string]int, len(skills))
	for i, s := range skills {
		if _, seen := pos[s.Name]; !seen {
			pos[s.Name] = i
		}
	}
	return pos
}

func orderMissing(skills []types.Skill, pos map[string]int) {
	sort.SliceStable(skills, func(i, j int) bool {
		pi, pj := pos[skills[i].Name], pos[skills[j].Name]
		if pi != pj {
			return pi < pj
		}
		if len(skills[i].Name) != len(skills[j].Name) {
			return len(skills[i].Name) > len(skills[j].Name)
		}
		return skills[i].Name < skills[j].Name
	})
}

// missingKeywords returns the industry keywords absent from the candidate's
// text terms, in the job profile's order.
func missingKeywords(keywords, candidateTerms []string) []string {
	termSet := make(map[string]bool, len(candidateTerms))
	for _, t := range candidateTerms {
		termSet[lexicon.NormalizeTerm(t)] = true
	}
	missing := []string{}
	for _, kw := range keywords {
		if !termSet[lexicon.NormalizeTerm(kw)] {
			missing = append(missing, kw)
		}
	}
	return missing
}

// overall is the rounded weighted sum of the factor scores, clamped to
// [0, 100].
func overall(f types.FactorScores, w Weights) int {
	sum := w.SkillMatch*float64(f.SkillMatch) +
		w.ExperienceAlignment*float64(f.ExperienceAlignment) +
		w.KeywordCoverage*float64(f.KeywordCoverage) +
		w.ResponsibilityAlignment*float64(f.ResponsibilityAlignment)
	return clamp(int(math.Round(sum)))
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
