package repository

import (
	"context"

	"mingus/internal/database"

	"github.com/google/uuid"
)

// AlignmentRepository exposes the optional per-posting problem-solution
// alignment signal written by an upstream analysis job. Postings without a
// row simply have no signal.
type AlignmentRepository interface {
	FindByPostingIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]float64, error)
}

type PostgresAlignmentRepository struct {
	db database.DB
}

func NewPostgresAlignmentRepository(db database.DB) *PostgresAlignmentRepository {
	return &PostgresAlignmentRepository{db: db}
}

func (r *PostgresAlignmentRepository) FindByPostingIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]float64, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]float64{}, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT posting_id, alignment
		 FROM alignment_signals
		 WHERE posting_id = ANY($1)`,
		ids,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[uuid.UUID]float64, len(ids))
	for rows.Next() {
		var id uuid.UUID
		var v float64
		if err := rows.Scan(&id, &v); err != nil {
			return nil, err
		}
		out[id] = v
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
