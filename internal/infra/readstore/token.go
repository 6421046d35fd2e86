package readstore

import (
	"context"
	"time"

	"dungji-market/internal/infra/db"
	"dungji-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type TokenReadStore struct {
	db db.DBTX
}

func NewTokenReadStore(d db.DBTX) queries.TokenReadStore {
	return &TokenReadStore{db: d}
}

func (s *TokenReadStore) ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]queries.TokenView, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, type, status, expires_at, used_at, used_for_bid, created_at
		 FROM bid_tokens
		 WHERE seller_id = $1
		 ORDER BY created_at DESC`,
		sellerID,
	)
	if err != nil {
		return nil, wrapErr("failed to list tokens", err)
	}
	defer rows.Close()

	var out []queries.TokenView
	for rows.Next() {
		var v queries.TokenView
		if err := rows.Scan(&v.ID, &v.Type, &v.Status, &v.ExpiresAt, &v.UsedAt, &v.UsedForBid, &v.CreatedAt); err != nil {
			return nil, wrapErr("failed to scan token", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("failed to iterate tokens", err)
	}
	return out, nil
}

const selectTokenBalance = `
SELECT
	COUNT(*) FILTER (WHERE type = 'single' AND status = 'active' AND expires_at > $2),
	COUNT(*) FILTER (WHERE type = 'unlimited' AND status = 'active' AND expires_at > $2) > 0,
	COUNT(*) FILTER (WHERE status = 'used' AND used_at >= date_trunc('month', $2::timestamptz))
FROM bid_tokens
WHERE seller_id = $1`

func (s *TokenReadStore) Balance(ctx context.Context, sellerID uuid.UUID, now time.Time) (*queries.TokenBalance, error) {
	var b queries.TokenBalance
	err := s.db.QueryRow(ctx, selectTokenBalance, sellerID, now).
		Scan(&b.ActiveSingle, &b.HasUnlimited, &b.UsedThisMonth)
	if err != nil {
		return nil, wrapErr("failed to compute token balance", err)
	}
	return &b, nil
}
