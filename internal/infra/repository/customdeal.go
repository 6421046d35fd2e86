package repository

import (
	"context"
	"time"

	"dungji-market/internal/domain/customdeal"
	"dungji-market/internal/infra/db"
	"dungji-market/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CustomDealRepository struct {
	db db.DBTX
}

func NewCustomDealRepository(d db.DBTX) shared.CustomDealRepository {
	return &CustomDealRepository{db: d}
}

const insertCustomDeal = `
INSERT INTO custom_deals (
	id, seller_id, title, description, kind, discount_type, discount_link,
	discount_valid_days, target_participants, current_participants,
	allow_partial_sale, expires_at, seller_deadline, status, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $15)`

func (r *CustomDealRepository) Create(ctx context.Context, d *customdeal.CustomDeal) error {
	_, err := r.db.Exec(ctx, insertCustomDeal,
		d.ID(), d.SellerID(), d.Title(), d.Description(),
		string(d.Kind()), string(d.DiscountType()), d.DiscountLink(),
		d.DiscountValidDays(), d.TargetParticipants(), d.CurrentParticipants(),
		d.AllowPartialSale(), d.ExpiresAt(), d.SellerDeadline(), string(d.Status()), d.CreatedAt(),
	)
	if err != nil {
		return wrapErr("failed to insert custom deal", err)
	}
	return nil
}

const selectCustomDealForUpdate = `
SELECT id, seller_id, title, description, kind, discount_type, discount_link,
       discount_valid_days, target_participants, current_participants,
       allow_partial_sale, expires_at, seller_deadline, status, created_at, updated_at
FROM custom_deals
WHERE id = $1
FOR UPDATE`

func (r *CustomDealRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*customdeal.CustomDeal, error) {
	d, err := scanCustomDeal(r.db.QueryRow(ctx, selectCustomDealForUpdate, id))
	if err != nil {
		return nil, wrapErr("failed to find custom deal", err)
	}
	return d, nil
}

func scanCustomDeal(row pgx.Row) (*customdeal.CustomDeal, error) {
	var (
		p                        customdeal.ReconstructParams
		kind, discountType, stat string
	)
	err := row.Scan(
		&p.ID, &p.SellerID, &p.Title, &p.Description, &kind, &discountType,
		&p.DiscountLink, &p.DiscountValidDays, &p.TargetParticipants,
		&p.CurrentParticipants, &p.AllowPartialSale,
		&p.ExpiresAt, &p.SellerDeadline, &stat, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Kind = customdeal.Kind(kind)
	p.DiscountType = customdeal.DiscountType(discountType)
	p.Status = customdeal.Status(stat)
	return customdeal.Reconstruct(p), nil
}

const updateCustomDeal = `
UPDATE custom_deals
SET current_participants = $2, seller_deadline = $3, status = $4, updated_at = now()
WHERE id = $1`

func (r *CustomDealRepository) Save(ctx context.Context, d *customdeal.CustomDeal) error {
	tag, err := r.db.Exec(ctx, updateCustomDeal,
		d.ID(), d.CurrentParticipants(), d.SellerDeadline(), string(d.Status()),
	)
	if err != nil {
		return wrapErr("failed to update custom deal", err)
	}
	if tag.RowsAffected() == 0 {
		return notFound("custom deal not found for update")
	}
	return nil
}

// selectDueCustomDeals finds deals whose recruiting window or seller
// decision window has lapsed.
const selectDueCustomDeals = `
SELECT id
FROM custom_deals
WHERE (status = 'recruiting' AND expires_at <= $1)
   OR (status = 'pending_seller' AND seller_deadline IS NOT NULL AND seller_deadline <= $1)
ORDER BY expires_at
LIMIT $2`

func (r *CustomDealRepository) DueForExpiry(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, selectDueCustomDeals, now, limit)
	if err != nil {
		return nil, wrapErr("failed to list due custom deals", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, wrapErr("failed to scan custom deal id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("failed to iterate due custom deals", err)
	}
	return ids, nil
}
