package scoring

// Overall blends the six factors using w, normalized by the weight sum so
// overridden weights need not add up to exactly 1. Clamped to [0,100].
func Overall(f FactorScores, w Weights) float64 {
	total := w.sum()
	if total <= 0 {
		return 0
	}
	blended := f.Salary*w.Salary +
		f.Skills*w.Skills +
		f.Career*w.Career +
		f.Company*w.Company +
		f.Location*w.Location +
		f.Growth*w.Growth
	return clamp(blended/total, 0, 100)
}
