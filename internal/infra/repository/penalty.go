package repository

import (
	"context"
	"time"

	"dungji-market/internal/domain/penalty"
	"dungji-market/internal/infra/db"
	"dungji-market/internal/usecase/shared"

	"github.com/google/uuid"
)

type PenaltyRepository struct {
	db db.DBTX
}

func NewPenaltyRepository(d db.DBTX) shared.PenaltyRepository {
	return &PenaltyRepository{db: d}
}

const insertPenalty = `
INSERT INTO penalties (id, user_id, reason, count, start_at, end_at, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

func (r *PenaltyRepository) Create(ctx context.Context, p *penalty.Penalty) error {
	_, err := r.db.Exec(ctx, insertPenalty,
		p.ID, p.UserID, p.Reason, p.Count, p.StartAt, p.EndAt, p.CreatedAt,
	)
	if err != nil {
		return wrapErr("failed to insert penalty", err)
	}
	return nil
}

func (r *PenaltyRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM penalties WHERE user_id = $1`, userID,
	).Scan(&count)
	if err != nil {
		return 0, wrapErr("failed to count penalties", err)
	}
	return count, nil
}

const selectActivePenalty = `
SELECT id, user_id, reason, count, start_at, end_at, created_at
FROM penalties
WHERE user_id = $1 AND start_at <= $2 AND end_at > $2
ORDER BY end_at DESC
LIMIT 1`

func (r *PenaltyRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID, now time.Time) (*penalty.Penalty, error) {
	var p penalty.Penalty
	err := r.db.QueryRow(ctx, selectActivePenalty, userID, now).Scan(
		&p.ID, &p.UserID, &p.Reason, &p.Count, &p.StartAt, &p.EndAt, &p.CreatedAt,
	)
	if err != nil {
		return nil, wrapErr("failed to find active penalty", err)
	}
	return &p, nil
}
