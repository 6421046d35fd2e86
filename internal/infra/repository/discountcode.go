package repository

import (
	"context"

	"dungji-market/internal/infra/db"
	"dungji-market/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type DiscountCodeRepository struct {
	db db.DBTX
}

func NewDiscountCodeRepository(d db.DBTX) shared.DiscountCodeRepository {
	return &DiscountCodeRepository{db: d}
}

const insertDiscountCode = `
INSERT INTO discount_codes (id, deal_id, code, assigned_to)
VALUES ($1, $2, $3, NULL)`

func (r *DiscountCodeRepository) CreateBatch(ctx context.Context, dealID uuid.UUID, codes []string) error {
	batch := &pgx.Batch{}
	for _, code := range codes {
		batch.Queue(insertDiscountCode, uuid.New(), dealID, code)
	}
	if err := r.db.SendBatch(ctx, batch).Close(); err != nil {
		return wrapErr("failed to insert discount codes", err)
	}
	return nil
}

// claimDiscountCode assigns one free code to the participant. SKIP LOCKED
// keeps concurrent joins from fighting over the same row.
const claimDiscountCode = `
UPDATE discount_codes
SET assigned_to = $2
WHERE id = (
	SELECT id FROM discount_codes
	WHERE deal_id = $1 AND assigned_to IS NULL
	ORDER BY id
	LIMIT 1
	FOR UPDATE SKIP LOCKED
)
RETURNING code`

func (r *DiscountCodeRepository) ClaimUnassigned(ctx context.Context, dealID, participantID uuid.UUID) (string, error) {
	var code string
	err := r.db.QueryRow(ctx, claimDiscountCode, dealID, participantID).Scan(&code)
	if err != nil {
		return "", wrapErr("failed to claim discount code", err)
	}
	return code, nil
}
