package seeder

import (
	"context"
	"fmt"

	"mingus/internal/database"
)

// PostingsSeeder inserts a small development catalog spanning all three
// recommendation tiers for a mid-career engineer profile.
type PostingsSeeder struct{}

func (PostingsSeeder) Name() string { return "postings" }

type seedPosting struct {
	Title          string
	Company        string
	SalaryMin      float64
	SalaryMax      float64
	MSA            string
	Remote         bool
	CommuteMiles   float64
	Diversity      float64
	Growth         float64
	Culture        float64
	Description    string
	EquityOffered  bool
	BonusPotential float64
	GrowthTrend    float64
	Skills         []seedSkill
}

type seedSkill struct {
	Name  string
	Level int
}

func (PostingsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "postings",
		"id", "title", "company", "salary_min", "salary_max", "is_active", "posted_at"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "posting_skills",
		"posting_id", "skill_name", "required_level"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	items := []seedPosting{
		{
			Title: "Data Engineer", Company: "Northwind Analytics",
			SalaryMin: 78000, SalaryMax: 86000, MSA: "atlanta-msa", Remote: false, CommuteMiles: 12,
			Diversity: 72, Growth: 55, Culture: 70,
			Description:    "Maintain our warehouse ingestion jobs and reporting marts.",
			BonusPotential: 5000, GrowthTrend: 45,
			Skills: []seedSkill{{"python", 3}, {"sql", 3}},
		},
		{
			Title: "Senior Data Engineer", Company: "Acme Logistics",
			SalaryMin: 95000, SalaryMax: 105000, Remote: true,
			Diversity: 80, Growth: 70, Culture: 90,
			Description:   "Own the billing pipeline and drive career advancement through mentorship.",
			EquityOffered: true, GrowthTrend: 75,
			Skills: []seedSkill{{"python", 3}, {"airflow", 2}},
		},
		{
			Title: "Staff Platform Engineer", Company: "Helios Robotics",
			SalaryMin: 125000, SalaryMax: 145000, MSA: "austin-msa", Remote: false, CommuteMiles: 28,
			Diversity: 65, Growth: 85, Culture: 75,
			Description:   "Lead the platform group building our next generation fleet scheduler.",
			EquityOffered: true, BonusPotential: 20000, GrowthTrend: 88,
			Skills: []seedSkill{{"go", 4}, {"kubernetes", 4}, {"python", 3}},
		},
	}

	for _, it := range items {
		var id string
		err := tx.QueryRow(
			ctx,
			`INSERT INTO postings
			   (id, title, company, salary_min, salary_max, msa_code, is_remote, commute_miles,
			    diversity_score, growth_score, culture_score, description,
			    equity_offered, bonus_potential, growth_trend, is_active)
			 VALUES (gen_random_uuid(), $1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $9, $10, $11, $12, $13, $14, true)
			 ON CONFLICT (company, title) DO UPDATE SET is_active = true
			 RETURNING id`,
			it.Title, it.Company, it.SalaryMin, it.SalaryMax, it.MSA, it.Remote, it.CommuteMiles,
			it.Diversity, it.Growth, it.Culture, it.Description,
			it.EquityOffered, it.BonusPotential, it.GrowthTrend,
		).Scan(&id)
		if err != nil {
			return err
		}

		for _, s := range it.Skills {
			_, err := tx.Exec(
				ctx,
				`INSERT INTO posting_skills (posting_id, skill_name, required_level)
				 VALUES ($1, $2, $3)
				 ON CONFLICT (posting_id, skill_name) DO UPDATE SET required_level = EXCLUDED.required_level`,
				id, s.Name, s.Level,
			)
			if err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
