package repository

import (
	"context"
	"errors"

	"mingus/internal/database"
	"mingus/internal/domain/profile"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrNotFound = errors.New("not found")

type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (profile.Profile, error)
}

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (profile.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT user_id, current_salary, experience_level, remote_preference,
		        COALESCE(preferred_msas, '{}'), COALESCE(preferred_company_sizes, '{}')
		 FROM career_profiles
		 WHERE user_id = $1`,
		userID,
	)

	var p profile.Profile
	var experience string
	var companySizes []string
	if err := row.Scan(
		&p.UserID, &p.CurrentSalary, &experience, &p.RemotePreference,
		&p.PreferredLocations, &companySizes,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profile.Profile{}, ErrNotFound
		}
		return profile.Profile{}, err
	}

	p.Experience = profile.ExperienceLevel(experience)
	p.PreferredCompanySizes = make([]profile.CompanySize, 0, len(companySizes))
	for _, it := range companySizes {
		p.PreferredCompanySizes = append(p.PreferredCompanySizes, profile.CompanySize(it))
	}

	skills, err := r.findSkills(ctx, userID)
	if err != nil {
		return profile.Profile{}, err
	}
	p.Skills = skills

	return p, nil
}

func (r *PostgresProfileRepository) findSkills(ctx context.Context, userID uuid.UUID) ([]profile.Skill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT skill_name, proficiency_level
		 FROM profile_skills
		 WHERE user_id = $1
		 ORDER BY skill_name ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]profile.Skill, 0)
	for rows.Next() {
		var s profile.Skill
		if err := rows.Scan(&s.Name, &s.Proficiency); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
