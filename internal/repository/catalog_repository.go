package repository

import (
	"context"

	"mingus/internal/database"
	"mingus/internal/domain/catalog"

	"github.com/google/uuid"
)

type CatalogRepository interface {
	ListActivePostings(ctx context.Context, limit, offset int) ([]catalog.Posting, error)
}

type PostgresCatalogRepository struct {
	db database.DB
}

func NewPostgresCatalogRepository(db database.DB) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{db: db}
}

func (r *PostgresCatalogRepository) ListActivePostings(ctx context.Context, limit, offset int) ([]catalog.Posting, error) {
	if limit <= 0 {
		limit = 500
	}
	if limit > 5000 {
		limit = 5000
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, title, company, salary_min, salary_max,
		        COALESCE(msa_code, ''), is_remote, COALESCE(commute_miles, 0),
		        COALESCE(diversity_score, 0), COALESCE(growth_score, 0), COALESCE(culture_score, 0),
		        COALESCE(description, ''), equity_offered, COALESCE(bonus_potential, 0),
		        COALESCE(growth_trend, 0)
		 FROM postings
		 WHERE is_active = true
		 ORDER BY posted_at DESC, id ASC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]catalog.Posting, 0)
	for rows.Next() {
		var j catalog.Posting
		if err := rows.Scan(
			&j.ID, &j.Title, &j.Company, &j.SalaryRange.Min, &j.SalaryRange.Max,
			&j.MSA, &j.Remote, &j.CommuteMiles,
			&j.Attributes.DiversityScore, &j.Attributes.GrowthScore, &j.Attributes.CultureScore,
			&j.Description, &j.EquityOffered, &j.BonusPotential,
			&j.GrowthTrend,
		); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachRequiredSkills(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCatalogRepository) attachRequiredSkills(ctx context.Context, postings []catalog.Posting) error {
	if len(postings) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(postings))
	for _, j := range postings {
		if j.ID == uuid.Nil {
			continue
		}
		ids = append(ids, j.ID)
	}

	rows, err := r.db.Query(ctx,
		`SELECT posting_id, skill_name, required_level
		 FROM posting_skills
		 WHERE posting_id = ANY($1)
		 ORDER BY skill_name ASC`,
		ids,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	byPosting := make(map[uuid.UUID][]catalog.RequiredSkill, len(postings))
	for rows.Next() {
		var postingID uuid.UUID
		var rs catalog.RequiredSkill
		if err := rows.Scan(&postingID, &rs.Name, &rs.RequiredLevel); err != nil {
			return err
		}
		byPosting[postingID] = append(byPosting[postingID], rs)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range postings {
		postings[i].RequiredSkills = byPosting[postings[i].ID]
	}
	return nil
}
