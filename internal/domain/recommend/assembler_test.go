package recommend

import (
	"bytes"
	"context"
	"errors"
	"log"
	"math"
	"reflect"
	"strings"
	"testing"

	"mingus/internal/domain/catalog"
	"mingus/internal/domain/profile"
	"mingus/internal/domain/scoring"

	"github.com/google/uuid"
)

func scenarioProfile() profile.Profile {
	return profile.Profile{
		UserID:           uuid.New(),
		CurrentSalary:    70000,
		Skills:           []profile.Skill{{Name: "Python", Proficiency: 4}},
		Experience:       profile.ExperienceMid,
		RemotePreference: true,
	}
}

func scenarioPosting() catalog.Posting {
	return catalog.Posting{
		ID:             uuid.MustParse("7b8a1f0e-4a9c-4a53-9a55-0d6c8b7b3f01"),
		Title:          "Data Engineer",
		Company:        "Northstar",
		SalaryRange:    catalog.SalaryRange{Min: 95000, Max: 105000},
		RequiredSkills: []catalog.RequiredSkill{{Name: "Python", RequiredLevel: 3}},
		Remote:         true,
		Attributes:     catalog.CompanyAttributes{DiversityScore: 80, GrowthScore: 70, CultureScore: 90},
		Description:    "Own the billing pipeline and its monthly close.",
		GrowthTrend:    75,
	}
}

func TestAssemble_Scenario(t *testing.T) {
	a := NewAssembler(log.New(&bytes.Buffer{}, "", 0))

	res, err := a.Assemble(context.Background(), scenarioProfile(), []catalog.Posting{scenarioPosting()}, Options{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if len(res.Conservative) != 0 || len(res.Stretch) != 0 {
		t.Fatalf("expected only the optimal bucket populated: %+v", res)
	}
	if len(res.Optimal) != 1 {
		t.Fatalf("expected 1 optimal job, got %d", len(res.Optimal))
	}
	sj := res.Optimal[0]

	if sj.Factors.Salary != 90 {
		t.Fatalf("expected salary factor 90, got %v", sj.Factors.Salary)
	}

	wantIncrease := (100000.0 - 70000.0) / 70000.0 * 100
	if math.Abs(sj.SalaryIncreasePct-wantIncrease) > 1e-9 {
		t.Fatalf("expected increase %v, got %v", wantIncrease, sj.SalaryIncreasePct)
	}

	// overall = .35*90 + .25*100 + .20*50 + .10*80 + .05*80 + .05*75
	wantOverall := 82.25
	if math.Abs(sj.OverallScore-wantOverall) > 1e-9 {
		t.Fatalf("expected overall %v, got %v", wantOverall, sj.OverallScore)
	}

	// success = .4*(82.25/100) + .3*0.5 + .3*1.0 with the neutral alignment.
	wantSuccess := 0.4*0.8225 + 0.3*0.5 + 0.3*1.0
	if math.Abs(sj.SuccessProbability-wantSuccess) > 1e-9 {
		t.Fatalf("expected success %v, got %v", wantSuccess, sj.SuccessProbability)
	}

	if sj.Tier != scoring.TierOptimal {
		t.Fatalf("expected optimal tier, got %v", sj.Tier)
	}
}

func TestAssemble_InvalidProfileRejected(t *testing.T) {
	a := NewAssembler(log.New(&bytes.Buffer{}, "", 0))

	p := scenarioProfile()
	p.CurrentSalary = 0
	_, err := a.Assemble(context.Background(), p, []catalog.Posting{scenarioPosting()}, Options{})
	if !errors.Is(err, profile.ErrInvalidSalary) {
		t.Fatalf("expected ErrInvalidSalary, got %v", err)
	}
}

func TestAssemble_SalaryFloorFilter(t *testing.T) {
	a := NewAssembler(log.New(&bytes.Buffer{}, "", 0))
	p := scenarioProfile() // floor = 70000 * 1.05 = 73500

	below := scenarioPosting()
	below.ID = uuid.New()
	below.Company = "Lowball"
	below.SalaryRange = catalog.SalaryRange{Min: 60000, Max: 73499}

	res, err := a.Assemble(context.Background(), p, []catalog.Posting{below, scenarioPosting()}, Options{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	for _, bucket := range [][]ScoredJob{res.Conservative, res.Optimal, res.Stretch} {
		for _, sj := range bucket {
			if sj.Job.ID == below.ID {
				t.Fatalf("posting below the salary floor leaked into the result")
			}
		}
	}
	if len(res.Optimal) != 1 {
		t.Fatalf("expected the surviving posting in optimal, got %+v", res)
	}
}

func TestAssemble_MalformedEntryResilience(t *testing.T) {
	var buf bytes.Buffer
	a := NewAssembler(log.New(&buf, "", 0))
	p := scenarioProfile()

	malformed := scenarioPosting()
	malformed.ID = uuid.New()
	malformed.Company = "Broken"
	malformed.RequiredSkills = nil

	clean, err := a.Assemble(context.Background(), p, []catalog.Posting{scenarioPosting()}, Options{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	withBad, err := a.Assemble(context.Background(), p, []catalog.Posting{scenarioPosting(), malformed}, Options{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if !reflect.DeepEqual(clean, withBad) {
		t.Fatalf("malformed entry changed the result:\nclean: %+v\nwith bad: %+v", clean, withBad)
	}
	if !strings.Contains(buf.String(), "Skipping malformed posting") {
		t.Fatalf("expected a logged warning, got %q", buf.String())
	}
}

func TestAssemble_Deterministic(t *testing.T) {
	a := NewAssembler(log.New(&bytes.Buffer{}, "", 0))
	p := scenarioProfile()

	postings := make([]catalog.Posting, 0, 60)
	for i := 0; i < 60; i++ {
		j := scenarioPosting()
		j.ID = uuid.NewSHA1(uuid.NameSpaceOID, []byte{byte(i)})
		j.Company = "Company"
		j.Title = "Role " + string(rune('A'+i%26)) + string(rune('a'+i/26))
		j.SalaryRange = catalog.SalaryRange{Min: 80000 + float64(i)*1000, Max: 90000 + float64(i)*1000}
		postings = append(postings, j)
	}

	first, err := a.Assemble(context.Background(), p, postings, Options{Workers: 8, LimitPerTier: 20})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := a.Assemble(context.Background(), p, postings, Options{Workers: 8, LimitPerTier: 20})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d diverged from the first result", i)
		}
	}
}

func TestAssemble_DedupeKeepsHighestOverall(t *testing.T) {
	a := NewAssembler(log.New(&bytes.Buffer{}, "", 0))
	p := scenarioProfile()

	lower := scenarioPosting()
	lower.ID = uuid.New()
	lower.Attributes = catalog.CompanyAttributes{DiversityScore: 10, GrowthScore: 10, CultureScore: 10}

	higher := scenarioPosting()

	res, err := a.Assemble(context.Background(), p, []catalog.Posting{lower, higher}, Options{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	total := len(res.Conservative) + len(res.Optimal) + len(res.Stretch)
	if total != 1 {
		t.Fatalf("expected duplicates collapsed to 1 job, got %d", total)
	}
	if len(res.Optimal) != 1 || res.Optimal[0].Job.ID != higher.ID {
		t.Fatalf("expected the higher-scoring duplicate to survive, got %+v", res)
	}
}

func TestAssemble_BucketsSortedAndTruncated(t *testing.T) {
	a := NewAssembler(log.New(&bytes.Buffer{}, "", 0))
	p := scenarioProfile()

	postings := make([]catalog.Posting, 0, 8)
	for i := 0; i < 8; i++ {
		j := scenarioPosting()
		j.ID = uuid.New()
		j.Company = "Employer"
		j.Title = "Engineer " + string(rune('A'+i))
		j.Attributes = catalog.CompanyAttributes{
			DiversityScore: float64(10 * i), GrowthScore: float64(10 * i), CultureScore: float64(10 * i),
		}
		postings = append(postings, j)
	}

	res, err := a.Assemble(context.Background(), p, postings, Options{LimitPerTier: 3})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(res.Optimal) != 3 {
		t.Fatalf("expected truncation to 3, got %d", len(res.Optimal))
	}
	for i := 1; i < len(res.Optimal); i++ {
		if res.Optimal[i].OverallScore > res.Optimal[i-1].OverallScore {
			t.Fatalf("bucket not sorted descending at idx=%d", i)
		}
	}
}

func TestAssemble_EmptyCatalog(t *testing.T) {
	a := NewAssembler(log.New(&bytes.Buffer{}, "", 0))

	res, err := a.Assemble(context.Background(), scenarioProfile(), nil, Options{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(res.Conservative) != 0 || len(res.Optimal) != 0 || len(res.Stretch) != 0 {
		t.Fatalf("expected empty buckets, got %+v", res)
	}
}

func TestAssemble_AlignmentSignalShiftsTier(t *testing.T) {
	a := NewAssembler(log.New(&bytes.Buffer{}, "", 0))
	p := scenarioProfile()
	j := scenarioPosting()

	// Drag the success probability under the stretch ceiling: zero out the
	// alignment signal and leave readiness low by demanding an unmet skill.
	j.RequiredSkills = []catalog.RequiredSkill{
		{Name: "Python", RequiredLevel: 5},
		{Name: "Scala", RequiredLevel: 4},
	}
	res, err := a.Assemble(context.Background(), p, []catalog.Posting{j}, Options{
		Alignments: map[uuid.UUID]float64{j.ID: 0.0},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(res.Stretch) != 1 {
		t.Fatalf("expected the job in stretch, got %+v", res)
	}
	if got := res.Stretch[0].SuccessProbability; got >= 0.5 {
		t.Fatalf("expected success probability < 0.5, got %v", got)
	}
}
