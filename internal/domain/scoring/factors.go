package scoring

import (
	"strings"

	"mingus/internal/domain/catalog"
	"mingus/internal/domain/profile"
)

// FactorScores are the six independent sub-scores, each in [0,100].
type FactorScores struct {
	Salary   float64
	Skills   float64
	Career   float64
	Company  float64
	Location float64
	Growth   float64
}

const (
	locationBase          = 60.0
	remoteMatchBonus      = 20.0
	preferredMSABonus     = 15.0
	commutePenaltyPerMile = 0.5
)

// ScoreFactors computes all six factors for one profile/posting pair. Pure,
// no side effects; safe to call from concurrent workers.
func ScoreFactors(p profile.Profile, j catalog.Posting, cw CompanyWeights) FactorScores {
	return FactorScores{
		Salary:   SalaryScore(p, j),
		Skills:   SkillsScore(p, j),
		Career:   CareerScore(j),
		Company:  CompanyScore(j, cw),
		Location: LocationScore(p, j),
		Growth:   GrowthScore(j),
	}
}

// SalaryScore is a piecewise step on the midpoint-to-current ratio. Steps
// rather than a linear scale: the product rewards step-changes in pay.
func SalaryScore(p profile.Profile, j catalog.Posting) float64 {
	if p.CurrentSalary <= 0 {
		return 0
	}
	ratio := j.SalaryRange.Midpoint() / p.CurrentSalary
	switch {
	case ratio >= 1.45:
		return 100
	case ratio >= 1.30:
		return 90
	case ratio >= 1.15:
		return 80
	case ratio >= 1.05:
		return 60
	default:
		return 30
	}
}

// SkillsScore gives full credit for each required skill met at or above the
// required level and proportional credit (level/required) below it.
func SkillsScore(p profile.Profile, j catalog.Posting) float64 {
	reqs := j.RequiredSkills
	if len(reqs) == 0 {
		return 0
	}

	levels := p.SkillLevels()
	credit := 0.0
	for _, r := range reqs {
		lvl, ok := levels[profile.NormalizeSkillName(r.Name)]
		if !ok || lvl <= 0 {
			continue
		}
		req := clampInt(r.RequiredLevel, 1, 5)
		if lvl >= req {
			credit++
			continue
		}
		credit += float64(lvl) / float64(req)
	}

	return clamp(100*credit/float64(len(reqs)), 0, 100)
}

// SkillReadiness is the fraction of required skills fully met. It feeds the
// success estimate, not the overall score.
func SkillReadiness(p profile.Profile, j catalog.Posting) float64 {
	reqs := j.RequiredSkills
	if len(reqs) == 0 {
		return 0
	}

	levels := p.SkillLevels()
	met := 0
	for _, r := range reqs {
		lvl, ok := levels[profile.NormalizeSkillName(r.Name)]
		if !ok {
			continue
		}
		if lvl >= clampInt(r.RequiredLevel, 1, 5) {
			met++
		}
	}
	return float64(met) / float64(len(reqs))
}

func CareerScore(j catalog.Posting) float64 {
	desc := strings.ToLower(j.Description)

	score := careerBase
	if containsAny(desc, advancementKeywords) {
		score += advancementBonus
	}
	if containsAny(desc, growthLanguageKeywords) {
		score += growthLanguageBonus
	}
	if j.EquityOffered || containsAny(desc, equityKeywords) {
		score += equityBonus
	}
	if j.BonusPotential > 0 || containsAny(desc, bonusKeywords) {
		score += bonusPotentialBonus
	}
	return clamp(score, 0, 100)
}

func CompanyScore(j catalog.Posting, w CompanyWeights) float64 {
	total := w.sum()
	if total <= 0 {
		return 0
	}
	blended := j.Attributes.DiversityScore*w.Diversity +
		j.Attributes.GrowthScore*w.Growth +
		j.Attributes.CultureScore*w.Culture
	return clamp(blended/total, 0, 100)
}

// LocationScore starts neutral and moves on location fit: remote match beats
// a preferred metro, anything else pays a commute penalty.
func LocationScore(p profile.Profile, j catalog.Posting) float64 {
	score := locationBase
	switch {
	case j.Remote && p.RemotePreference:
		score += remoteMatchBonus
	case p.PrefersLocation(j.MSA):
		score += preferredMSABonus
	default:
		score -= commutePenaltyPerMile * j.CommuteMiles
	}
	return clamp(score, 0, 100)
}

// GrowthScore passes the external industry/company trend signal through,
// clamped to the factor range.
func GrowthScore(j catalog.Posting) float64 {
	return clamp(j.GrowthTrend, 0, 100)
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

func clamp(v, minV, maxV float64) float64 {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}

func clampInt(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}
