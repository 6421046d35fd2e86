package repository

import (
	"context"
	"time"

	"dungji-market/internal/infra/db"
	"dungji-market/internal/usecase/shared"

	"github.com/google/uuid"
)

type CustomParticipantRepository struct {
	db db.DBTX
}

func NewCustomParticipantRepository(d db.DBTX) shared.CustomParticipantRepository {
	return &CustomParticipantRepository{db: d}
}

const insertCustomParticipant = `
INSERT INTO custom_participants (id, deal_id, buyer_id, status, code, discount_link, discount_code, joined_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

func (r *CustomParticipantRepository) Create(ctx context.Context, p *shared.CustomParticipant) error {
	_, err := r.db.Exec(ctx, insertCustomParticipant,
		p.ID, p.DealID, p.BuyerID, p.Status, p.Code, p.DiscountLink, p.DiscountCode, p.JoinedAt,
	)
	if err != nil {
		return wrapErr("failed to insert custom participant", err)
	}
	return nil
}

const selectCustomParticipantsByDeal = `
SELECT id, deal_id, buyer_id, status, code, discount_link, discount_code, discount_valid_until, joined_at, redeemed_at
FROM custom_participants
WHERE deal_id = $1
ORDER BY joined_at`

func (r *CustomParticipantRepository) FindByDeal(ctx context.Context, dealID uuid.UUID) ([]*shared.CustomParticipant, error) {
	rows, err := r.db.Query(ctx, selectCustomParticipantsByDeal, dealID)
	if err != nil {
		return nil, wrapErr("failed to list custom participants", err)
	}
	defer rows.Close()

	var parts []*shared.CustomParticipant
	for rows.Next() {
		var p shared.CustomParticipant
		err := rows.Scan(&p.ID, &p.DealID, &p.BuyerID, &p.Status, &p.Code, &p.DiscountLink, &p.DiscountCode, &p.DiscountValidUntil, &p.JoinedAt, &p.RedeemedAt)
		if err != nil {
			return nil, wrapErr("failed to scan custom participant", err)
		}
		parts = append(parts, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("failed to iterate custom participants", err)
	}
	return parts, nil
}

func (r *CustomParticipantRepository) Exists(ctx context.Context, dealID, buyerID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM custom_participants WHERE deal_id = $1 AND buyer_id = $2)`,
		dealID, buyerID,
	).Scan(&exists)
	if err != nil {
		return false, wrapErr("failed to check custom participant", err)
	}
	return exists, nil
}

func (r *CustomParticipantRepository) AttachDiscount(ctx context.Context, participantID uuid.UUID, link, code string, validUntil *time.Time) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE custom_participants SET discount_link = $2, discount_code = $3, discount_valid_until = $4 WHERE id = $1`,
		participantID, link, code, validUntil,
	)
	if err != nil {
		return wrapErr("failed to attach discount", err)
	}
	if tag.RowsAffected() == 0 {
		return notFound("custom participant not found for discount")
	}
	return nil
}

const cancelCustomParticipants = `
UPDATE custom_participants SET status = 'cancelled'
WHERE deal_id = $1 AND status = 'confirmed'`

func (r *CustomParticipantRepository) CancelByDeal(ctx context.Context, dealID uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, cancelCustomParticipants, dealID)
	if err != nil {
		return 0, wrapErr("failed to cancel custom participants", err)
	}
	return tag.RowsAffected(), nil
}

const markSeatRedeemed = `
UPDATE custom_participants SET redeemed_at = $3
WHERE deal_id = $1 AND code = $2 AND redeemed_at IS NULL`

func (r *CustomParticipantRepository) MarkRedeemed(ctx context.Context, dealID uuid.UUID, code string, now time.Time) error {
	tag, err := r.db.Exec(ctx, markSeatRedeemed, dealID, code, now)
	if err != nil {
		return wrapErr("failed to redeem participation code", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	err = r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM custom_participants WHERE deal_id = $1 AND code = $2)`,
		dealID, code,
	).Scan(&exists)
	if err != nil {
		return wrapErr("failed to check participation code", err)
	}
	if exists {
		return duplicate("participation code already redeemed")
	}
	return notFound("participation code not found")
}
