package repository

import (
	"context"
	"time"

	"dungji-market/internal/domain/token"
	"dungji-market/internal/infra/db"
	"dungji-market/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type TokenRepository struct {
	db db.DBTX
}

func NewTokenRepository(d db.DBTX) shared.TokenRepository {
	return &TokenRepository{db: d}
}

// claimActiveToken prefers unlimited passes so single-use tokens stay in
// reserve, and skips rows locked by a concurrent bid.
const claimActiveToken = `
SELECT id, seller_id, type, status, expires_at, used_at, used_for_bid, purchase_id, created_at
FROM bid_tokens
WHERE seller_id = $1 AND status = 'active' AND expires_at > $2
ORDER BY CASE WHEN type = 'unlimited' THEN 0 ELSE 1 END, expires_at
LIMIT 1
FOR UPDATE SKIP LOCKED`

func (r *TokenRepository) ClaimActive(ctx context.Context, sellerID uuid.UUID, now time.Time) (*token.BidToken, error) {
	t, err := scanToken(r.db.QueryRow(ctx, claimActiveToken, sellerID, now))
	if err != nil {
		return nil, wrapErr("failed to claim active token", err)
	}
	return t, nil
}

const insertToken = `
INSERT INTO bid_tokens (id, seller_id, type, status, expires_at, used_at, used_for_bid, purchase_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

func (r *TokenRepository) CreateBatch(ctx context.Context, tokens []*token.BidToken) error {
	batch := &pgx.Batch{}
	for _, t := range tokens {
		batch.Queue(insertToken,
			t.ID, t.SellerID, string(t.Type), string(t.Status),
			t.ExpiresAt, t.UsedAt, t.UsedForBid, t.PurchaseID, t.CreatedAt,
		)
	}
	if err := r.db.SendBatch(ctx, batch).Close(); err != nil {
		return wrapErr("failed to insert tokens", err)
	}
	return nil
}

const updateToken = `
UPDATE bid_tokens
SET status = $2, used_at = $3, used_for_bid = $4
WHERE id = $1`

func (r *TokenRepository) Save(ctx context.Context, t *token.BidToken) error {
	tag, err := r.db.Exec(ctx, updateToken, t.ID, string(t.Status), t.UsedAt, t.UsedForBid)
	if err != nil {
		return wrapErr("failed to update token", err)
	}
	if tag.RowsAffected() == 0 {
		return notFound("token not found for update")
	}
	return nil
}

const selectTokenUsedByBid = `
SELECT id, seller_id, type, status, expires_at, used_at, used_for_bid, purchase_id, created_at
FROM bid_tokens
WHERE used_for_bid = $1
FOR UPDATE`

func (r *TokenRepository) FindUsedByBid(ctx context.Context, bidID uuid.UUID) (*token.BidToken, error) {
	t, err := scanToken(r.db.QueryRow(ctx, selectTokenUsedByBid, bidID))
	if err != nil {
		return nil, wrapErr("failed to find token by bid", err)
	}
	return t, nil
}

const expireDueTokens = `
UPDATE bid_tokens
SET status = 'expired'
WHERE status = 'active' AND expires_at <= $1`

func (r *TokenRepository) ExpireDue(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, expireDueTokens, now)
	if err != nil {
		return 0, wrapErr("failed to expire tokens", err)
	}
	return tag.RowsAffected(), nil
}

func scanToken(row pgx.Row) (*token.BidToken, error) {
	var (
		t           token.BidToken
		typ, status string
	)
	err := row.Scan(&t.ID, &t.SellerID, &typ, &status, &t.ExpiresAt, &t.UsedAt, &t.UsedForBid, &t.PurchaseID, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	t.Type = token.Type(typ)
	t.Status = token.Status(status)
	return &t, nil
}
