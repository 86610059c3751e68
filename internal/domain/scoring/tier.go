package scoring

type Tier string

const (
	TierConservative Tier = "conservative"
	TierOptimal      Tier = "optimal"
	TierStretch      Tier = "stretch"
	TierExcluded     Tier = "excluded"
)

// Tier thresholds on (salary increase pct, success probability).
const (
	conservativeMinIncreasePct = 5.0
	optimalMinIncreasePct      = 15.0
	stretchMinIncreasePct      = 30.0

	stretchMaxSuccess      = 0.5
	optimalMinSuccess      = 0.5
	conservativeMinSuccess = 0.7
)

// ClassifyTier buckets a scored job by upside versus achievability. Rules are
// evaluated stretch first, then optimal, then conservative, so a job whose
// numbers satisfy more than one tier lands in the higher-upside bucket. Jobs
// matching no rule are simply not recommendable right now: TierExcluded with
// ok=false, never an error.
func ClassifyTier(salaryIncreasePct, successProbability float64) (Tier, bool) {
	switch {
	case salaryIncreasePct >= stretchMinIncreasePct && successProbability < stretchMaxSuccess:
		return TierStretch, true
	case salaryIncreasePct >= optimalMinIncreasePct && successProbability >= optimalMinSuccess:
		return TierOptimal, true
	case salaryIncreasePct >= conservativeMinIncreasePct &&
		salaryIncreasePct < optimalMinIncreasePct &&
		successProbability > conservativeMinSuccess:
		return TierConservative, true
	default:
		return TierExcluded, false
	}
}
