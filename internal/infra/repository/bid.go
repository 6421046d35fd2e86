package repository

import (
	"context"
	"time"

	"dungji-market/internal/domain/bid"
	"dungji-market/internal/infra/db"
	"dungji-market/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BidRepository struct {
	db db.DBTX
}

func NewBidRepository(d db.DBTX) shared.BidRepository {
	return &BidRepository{db: d}
}

const insertBid = `
INSERT INTO bids (id, group_buy_id, seller_id, amount, message, status, token_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)`

func (r *BidRepository) Create(ctx context.Context, b *bid.Bid) error {
	_, err := r.db.Exec(ctx, insertBid,
		b.ID(), b.GroupBuyID(), b.SellerID(), b.Amount(), b.Message(),
		string(b.Status()), b.TokenID(), b.CreatedAt(),
	)
	if err != nil {
		return wrapErr("failed to insert bid", err)
	}
	return nil
}

const selectBid = `
SELECT id, group_buy_id, seller_id, amount, message, status, token_id, created_at, updated_at
FROM bids
WHERE id = $1`

func (r *BidRepository) FindByID(ctx context.Context, id uuid.UUID) (*bid.Bid, error) {
	b, err := scanBid(r.db.QueryRow(ctx, selectBid, id))
	if err != nil {
		return nil, wrapErr("failed to find bid", err)
	}
	return b, nil
}

const selectBidsByGroupBuy = `
SELECT id, group_buy_id, seller_id, amount, message, status, token_id, created_at, updated_at
FROM bids
WHERE group_buy_id = $1
ORDER BY created_at`

func (r *BidRepository) FindByGroupBuy(ctx context.Context, groupBuyID uuid.UUID) ([]*bid.Bid, error) {
	rows, err := r.db.Query(ctx, selectBidsByGroupBuy, groupBuyID)
	if err != nil {
		return nil, wrapErr("failed to list bids", err)
	}
	defer rows.Close()

	var bids []*bid.Bid
	for rows.Next() {
		b, err := scanBid(rows)
		if err != nil {
			return nil, wrapErr("failed to scan bid", err)
		}
		bids = append(bids, b)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("failed to iterate bids", err)
	}
	return bids, nil
}

const selectPendingBidBySeller = `
SELECT id, group_buy_id, seller_id, amount, message, status, token_id, created_at, updated_at
FROM bids
WHERE group_buy_id = $1 AND seller_id = $2 AND status = 'pending'
FOR UPDATE`

func (r *BidRepository) FindPendingBySeller(ctx context.Context, groupBuyID, sellerID uuid.UUID) (*bid.Bid, error) {
	b, err := scanBid(r.db.QueryRow(ctx, selectPendingBidBySeller, groupBuyID, sellerID))
	if err != nil {
		return nil, wrapErr("failed to find pending bid", err)
	}
	return b, nil
}

const updateBid = `
UPDATE bids SET amount = $2, message = $3, token_id = $4, updated_at = $5
WHERE id = $1`

func (r *BidRepository) Save(ctx context.Context, b *bid.Bid) error {
	tag, err := r.db.Exec(ctx, updateBid,
		b.ID(), b.Amount(), b.Message(), b.TokenID(), b.UpdatedAt(),
	)
	if err != nil {
		return wrapErr("failed to update bid", err)
	}
	if tag.RowsAffected() == 0 {
		return notFound("bid not found for update")
	}
	return nil
}

func scanBid(row pgx.Row) (*bid.Bid, error) {
	var (
		id, groupBuyID, sellerID uuid.UUID
		amount                   int64
		message, status          string
		tokenID                  *uuid.UUID
		createdAt, updatedAt     time.Time
	)
	err := row.Scan(&id, &groupBuyID, &sellerID, &amount, &message, &status, &tokenID, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	return bid.Reconstruct(id, groupBuyID, sellerID, amount, message, bid.Status(status), tokenID, createdAt, updatedAt), nil
}

func (r *BidRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status bid.Status, now time.Time) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE bids SET status = $2, updated_at = $3 WHERE id = $1`,
		id, string(status), now,
	)
	if err != nil {
		return wrapErr("failed to update bid status", err)
	}
	if tag.RowsAffected() == 0 {
		return notFound("bid not found for status update")
	}
	return nil
}

func (r *BidRepository) UpdateStatusBatch(ctx context.Context, ids []uuid.UUID, status bid.Status, now time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.db.Exec(ctx,
		`UPDATE bids SET status = $2, updated_at = $3 WHERE id = ANY($1)`,
		ids, string(status), now,
	)
	if err != nil {
		return wrapErr("failed to batch update bid status", err)
	}
	return nil
}
