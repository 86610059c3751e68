package recommend

import (
	"context"
	"log"
	"sort"
	"strings"

	"mingus/internal/domain/catalog"
	"mingus/internal/domain/profile"
	"mingus/internal/domain/scoring"

	"github.com/google/uuid"
)

const (
	DefaultLimitPerTier = 10
	MaxLimitPerTier     = 50

	// A posting has to beat the current salary by at least 5% at the top of
	// its range to be worth scoring at all.
	salaryFloorRatio = 1.05
)

// ScoredJob is the per-request scoring result for one posting. Instances are
// built fresh for every request and never persisted here.
type ScoredJob struct {
	Job                catalog.Posting
	Factors            scoring.FactorScores
	OverallScore       float64
	SalaryIncreasePct  float64
	SuccessProbability float64
	Tier               scoring.Tier
}

type TieredResult struct {
	Conservative []ScoredJob
	Optimal      []ScoredJob
	Stretch      []ScoredJob
}

// Options tune one Assemble call. Zero values fall back to defaults, so the
// common caller passes Options{Alignments: ...} and nothing else.
type Options struct {
	LimitPerTier   int
	Workers        int
	Weights        scoring.Weights
	CompanyWeights scoring.CompanyWeights

	// Alignments carries the optional per-posting problem-solution alignment
	// signal in [0,1]. Missing entries degrade to a neutral estimate.
	Alignments map[uuid.UUID]float64
}

// Assembler turns a profile plus a posting catalog into tiered
// recommendations. Stateless apart from the warning logger; safe for
// concurrent use.
type Assembler struct {
	logger *log.Logger
}

func NewAssembler(logger *log.Logger) *Assembler {
	if logger == nil {
		logger = log.Default()
	}
	return &Assembler{logger: logger}
}

// Assemble filters the catalog by the salary floor, scores the survivors
// concurrently, classifies them into tiers, collapses duplicate roles keeping
// the highest overall score, and returns each bucket sorted by overall score
// descending and truncated to the per-tier limit. Deterministic for fixed
// inputs.
func (a *Assembler) Assemble(ctx context.Context, p profile.Profile, postings []catalog.Posting, opts Options) (TieredResult, error) {
	if err := p.Validate(); err != nil {
		return TieredResult{}, err
	}

	limit := opts.LimitPerTier
	if limit <= 0 {
		limit = DefaultLimitPerTier
	}
	if limit > MaxLimitPerTier {
		limit = MaxLimitPerTier
	}
	if opts.Weights == (scoring.Weights{}) {
		opts.Weights = scoring.DefaultWeights()
	}
	if opts.CompanyWeights == (scoring.CompanyWeights{}) {
		opts.CompanyWeights = scoring.DefaultCompanyWeights()
	}

	floor := p.CurrentSalary * salaryFloorRatio
	candidates := make([]catalog.Posting, 0, len(postings))
	for _, j := range postings {
		if j.SalaryRange.Max < floor {
			continue
		}
		candidates = append(candidates, j)
	}

	scored, err := a.scoreAll(ctx, p, candidates, opts)
	if err != nil {
		return TieredResult{}, err
	}

	scored = dedupe(scored)

	out := TieredResult{
		Conservative: make([]ScoredJob, 0, limit),
		Optimal:      make([]ScoredJob, 0, limit),
		Stretch:      make([]ScoredJob, 0, limit),
	}
	for _, sj := range scored {
		switch sj.Tier {
		case scoring.TierConservative:
			out.Conservative = append(out.Conservative, sj)
		case scoring.TierOptimal:
			out.Optimal = append(out.Optimal, sj)
		case scoring.TierStretch:
			out.Stretch = append(out.Stretch, sj)
		}
	}

	out.Conservative = truncate(out.Conservative, limit)
	out.Optimal = truncate(out.Optimal, limit)
	out.Stretch = truncate(out.Stretch, limit)

	return out, nil
}

func (a *Assembler) scoreOne(p profile.Profile, j catalog.Posting, opts Options) (ScoredJob, bool) {
	if err := j.Validate(); err != nil {
		a.logger.Printf("[Recommend] Skipping malformed posting id=%s company=%q err=%v", j.ID, j.Company, err)
		return ScoredJob{}, false
	}

	factors := scoring.ScoreFactors(p, j, opts.CompanyWeights)
	overall := scoring.Overall(factors, opts.Weights)
	increasePct := (j.SalaryRange.Midpoint() - p.CurrentSalary) / p.CurrentSalary * 100

	var alignment *float64
	if v, ok := opts.Alignments[j.ID]; ok {
		alignment = &v
	}
	success := scoring.SuccessProbability(overall, scoring.SkillReadiness(p, j), alignment)

	tier, _ := scoring.ClassifyTier(increasePct, success)

	return ScoredJob{
		Job:                j,
		Factors:            factors,
		OverallScore:       overall,
		SalaryIncreasePct:  increasePct,
		SuccessProbability: success,
		Tier:               tier,
	}, true
}

// dedupe collapses postings sharing a normalized (company, title) key, keeping
// the highest overall score. Input must already be in deterministic order.
func dedupe(scored []ScoredJob) []ScoredJob {
	seen := make(map[string]struct{}, len(scored))
	out := make([]ScoredJob, 0, len(scored))
	for _, sj := range scored {
		key := sj.Job.DedupeKey()
		if key == "|" {
			out = append(out, sj)
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, sj)
	}
	return out
}

// sortScored orders by overall score descending with stable tie-breaks so a
// fixed input always produces the identical output regardless of worker
// interleaving.
func sortScored(scored []ScoredJob) {
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].OverallScore != scored[j].OverallScore {
			return scored[i].OverallScore > scored[j].OverallScore
		}
		if scored[i].SuccessProbability != scored[j].SuccessProbability {
			return scored[i].SuccessProbability > scored[j].SuccessProbability
		}
		return strings.Compare(scored[i].Job.ID.String(), scored[j].Job.ID.String()) < 0
	})
}

func truncate(items []ScoredJob, limit int) []ScoredJob {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}
