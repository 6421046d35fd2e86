package repository

import (
	"context"
	"time"

	"dungji-market/internal/domain/groupbuy"
	"dungji-market/internal/infra/db"
	"dungji-market/internal/pkg/pgconv"
	"dungji-market/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type GroupBuyRepository struct {
	db db.DBTX
}

func NewGroupBuyRepository(d db.DBTX) shared.GroupBuyRepository {
	return &GroupBuyRepository{db: d}
}

const insertGroupBuy = `
INSERT INTO group_buys (
	id, creator_id, title, description, product_name, product_type,
	starting_amount, min_participants, max_participants, current_participants,
	region, status, start_time, end_time, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, now(), now())`

func (r *GroupBuyRepository) Create(ctx context.Context, g *groupbuy.GroupBuy) error {
	_, err := r.db.Exec(ctx, insertGroupBuy,
		g.ID(), g.CreatorID(), g.Title(), g.Description(), g.ProductName(),
		string(g.ProductType()), g.StartingAmount(), g.MinParticipants(),
		g.MaxParticipants(), g.CurrentParticipants(), g.Region(),
		string(g.Status()), g.StartTime(), g.EndTime(),
	)
	if err != nil {
		return wrapErr("failed to insert groupbuy", err)
	}
	return nil
}

const selectGroupBuyForUpdate = `
SELECT id, creator_id, title, description, product_name, product_type,
	starting_amount, min_participants, max_participants, current_participants,
	region, status, start_time, end_time, final_selection_end,
	seller_selection_end, selected_bid_id, cancel_reason, created_at, updated_at
FROM group_buys
WHERE id = $1
FOR UPDATE`

func (r *GroupBuyRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*groupbuy.GroupBuy, error) {
	row := r.db.QueryRow(ctx, selectGroupBuyForUpdate, id)
	gb, err := scanGroupBuy(row)
	if err != nil {
		return nil, wrapErr("failed to lock groupbuy", err)
	}
	return gb, nil
}

func scanGroupBuy(row pgx.Row) (*groupbuy.GroupBuy, error) {
	var (
		p           groupbuy.ReconstructParams
		productType string
		status      string
		cancel      *string
	)
	err := row.Scan(
		&p.ID, &p.CreatorID, &p.Title, &p.Description, &p.ProductName,
		&productType, &p.StartingAmount, &p.MinParticipants, &p.MaxParticipants,
		&p.CurrentParticipants, &p.Region, &status, &p.StartTime, &p.EndTime,
		&p.FinalSelectionEnd, &p.SellerSelectionEnd, &p.SelectedBidID,
		&cancel, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.ProductType = groupbuy.ProductType(productType)
	p.Status = groupbuy.NormalizeStatus(status)
	if cancel != nil {
		p.CancelReason = *cancel
	}
	return groupbuy.Reconstruct(p), nil
}

const updateGroupBuyEffect = `
UPDATE group_buys
SET status = $2,
	final_selection_end = COALESCE($3, final_selection_end),
	seller_selection_end = COALESCE($4, seller_selection_end),
	selected_bid_id = COALESCE($5, selected_bid_id),
	cancel_reason = COALESCE(NULLIF($6, ''), cancel_reason),
	updated_at = $7
WHERE id = $1`

func (r *GroupBuyRepository) ApplyEffect(ctx context.Context, id uuid.UUID, eff *groupbuy.Effect, now time.Time) error {
	tag, err := r.db.Exec(ctx, updateGroupBuyEffect,
		id, string(eff.Status),
		pgconv.TimePtrToPgtype(eff.FinalSelectionEnd),
		pgconv.TimePtrToPgtype(eff.SellerSelectionEnd),
		pgconv.UUIDPtrToPgtype(eff.SelectedBidID),
		eff.CancelReason, now,
	)
	if err != nil {
		return wrapErr("failed to apply groupbuy effect", err)
	}
	if tag.RowsAffected() == 0 {
		return notFound("groupbuy not found for effect")
	}
	return nil
}

func (r *GroupBuyRepository) SetParticipantCount(ctx context.Context, id uuid.UUID, count int) error {
	_, err := r.db.Exec(ctx,
		`UPDATE group_buys SET current_participants = $2, updated_at = now() WHERE id = $1`,
		id, count,
	)
	if err != nil {
		return wrapErr("failed to set participant count", err)
	}
	return nil
}

func (r *GroupBuyRepository) IncrementParticipants(ctx context.Context, id uuid.UUID, delta int) error {
	_, err := r.db.Exec(ctx,
		`UPDATE group_buys SET current_participants = current_participants + $2, updated_at = now() WHERE id = $1`,
		id, delta,
	)
	if err != nil {
		return wrapErr("failed to adjust participant count", err)
	}
	return nil
}

// DueForEvaluation lists open deals whose next deadline is in the past:
// recruiting past end_time, buyer selection past final_selection_end, or
// seller selection past seller_selection_end.
const selectDueGroupBuys = `
SELECT id
FROM group_buys
WHERE (status = 'recruiting' AND end_time <= $1)
	OR (status = 'final_selection_buyers' AND final_selection_end <= $1)
	OR (status = 'final_selection_seller' AND seller_selection_end <= $1)
ORDER BY end_time
LIMIT $2`

func (r *GroupBuyRepository) DueForEvaluation(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, selectDueGroupBuys, now, limit)
	if err != nil {
		return nil, wrapErr("failed to list due groupbuys", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, wrapErr("failed to scan due groupbuy id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("failed to iterate due groupbuys", err)
	}
	return ids, nil
}

// ReconcileParticipantCounts recomputes cached counters from the source of
// truth in one statement.
const reconcileCountsSQL = `
UPDATE group_buys g
SET current_participants = c.actual, updated_at = now()
FROM (
	SELECT gb.id, COUNT(p.id) AS actual
	FROM group_buys gb
	LEFT JOIN participations p ON p.group_buy_id = gb.id AND p.status = 'active'
	WHERE gb.status IN ('recruiting', 'final_selection_buyers', 'final_selection_seller')
	GROUP BY gb.id
) c
WHERE g.id = c.id AND g.current_participants <> c.actual`

func (r *GroupBuyRepository) ReconcileParticipantCounts(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, reconcileCountsSQL)
	if err != nil {
		return 0, wrapErr("failed to reconcile participant counts", err)
	}
	return tag.RowsAffected(), nil
}
