package scoring

const neutralAlignment = 0.5

// SuccessProbability blends the normalized overall score, the external
// problem-solution alignment signal, and skill readiness into a [0,1]
// estimate. alignment is nil when the upstream signal is unavailable; the
// estimate then degrades to a neutral 0.5 instead of failing.
func SuccessProbability(overall, skillReadiness float64, alignment *float64) float64 {
	a := neutralAlignment
	if alignment != nil {
		a = clamp(*alignment, 0, 1)
	}

	p := 0.4*(clamp(overall, 0, 100)/100) +
		0.3*a +
		0.3*clamp(skillReadiness, 0, 1)
	return clamp(p, 0, 1)
}
