package scoring

import "testing"

func TestClassifyTier(t *testing.T) {
	cases := []struct {
		name     string
		increase float64
		success  float64
		want     Tier
		ok       bool
	}{
		{"high increase low success", 42.9, 0.45, TierStretch, true},
		{"high increase decent success", 42.9, 0.78, TierOptimal, true},
		{"stretch boundary", 30, 0.4999, TierStretch, true},
		{"optimal mid range", 20, 0.6, TierOptimal, true},
		{"optimal lower boundary", 15, 0.5, TierOptimal, true},
		{"conservative", 10, 0.75, TierConservative, true},
		{"conservative lower boundary", 5, 0.71, TierConservative, true},
		{"conservative upper edge", 14.999, 0.9, TierConservative, true},
		{"modest increase modest success", 10, 0.6, TierExcluded, false},
		{"below conservative floor", 4, 0.9, TierExcluded, false},
		{"pay cut", -3, 0.9, TierExcluded, false},
		{"risky without upside", 20, 0.4, TierExcluded, false},
	}

	for _, c := range cases {
		got, ok := ClassifyTier(c.increase, c.success)
		if got != c.want || ok != c.ok {
			t.Fatalf("%s: ClassifyTier(%v, %v) = (%v, %v), expected (%v, %v)",
				c.name, c.increase, c.success, got, ok, c.want, c.ok)
		}
	}
}

// A job whose numbers satisfy more than one tier must land in the
// higher-upside bucket: stretch over optimal over conservative.
func TestClassifyTier_OverlapPrecedence(t *testing.T) {
	// At exactly success=0.5 and increase>=30 both the stretch ceiling and the
	// optimal floor touch; optimal wins because stretch demands success < 0.5.
	if got, _ := ClassifyTier(35, 0.5); got != TierOptimal {
		t.Fatalf("expected optimal, got %v", got)
	}
	// Just below the stretch success ceiling the job is stretch even though the
	// increase would also clear the optimal floor.
	if got, _ := ClassifyTier(35, 0.4999); got != TierStretch {
		t.Fatalf("expected stretch, got %v", got)
	}
	// At increase=15 the conservative band has ended; optimal takes it.
	if got, _ := ClassifyTier(15, 0.72); got != TierOptimal {
		t.Fatalf("expected optimal, got %v", got)
	}
}

func TestClassifyTier_PartitionIsExclusive(t *testing.T) {
	for increase := -10.0; increase <= 60; increase += 2.5 {
		for success := 0.0; success <= 1.0; success += 0.05 {
			tier, ok := ClassifyTier(increase, success)
			if !ok {
				if tier != TierExcluded {
					t.Fatalf("increase=%v success=%v: excluded but tier=%v", increase, success, tier)
				}
				continue
			}
			switch tier {
			case TierConservative, TierOptimal, TierStretch:
			default:
				t.Fatalf("increase=%v success=%v: unexpected tier %v", increase, success, tier)
			}
		}
	}
}
