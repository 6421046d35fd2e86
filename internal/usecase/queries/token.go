package queries

import (
	"context"
	"time"

	"dungji-market/internal/pkg/errs"

	"github.com/google/uuid"
)

type TokenView struct {
	ID         uuid.UUID  `json:"id"`
	Type       string     `json:"type"`
	Status     string     `json:"status"`
	ExpiresAt  time.Time  `json:"expires_at"`
	UsedAt     *time.Time `json:"used_at,omitempty"`
	UsedForBid *uuid.UUID `json:"used_for_bid,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

type TokenBalance struct {
	ActiveSingle  int  `json:"active_single"`
	HasUnlimited  bool `json:"has_unlimited"`
	UsedThisMonth int  `json:"used_this_month"`
}

type TokenReadStore interface {
	ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]TokenView, error)
	Balance(ctx context.Context, sellerID uuid.UUID, now time.Time) (*TokenBalance, error)
}

type TokenQueries interface {
	MyTokens(ctx context.Context, sellerID uuid.UUID) ([]TokenView, error)
	MyBalance(ctx context.Context, sellerID uuid.UUID, now time.Time) (*TokenBalance, error)
}

type tokenQueriesImpl struct {
	store TokenReadStore
}

func NewTokenQueries(store TokenReadStore) TokenQueries {
	return &tokenQueriesImpl{store: store}
}

func (q *tokenQueriesImpl) MyTokens(ctx context.Context, sellerID uuid.UUID) ([]TokenView, error) {
	tokens, err := q.store.ListBySeller(ctx, sellerID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return tokens, nil
}

func (q *tokenQueriesImpl) MyBalance(ctx context.Context, sellerID uuid.UUID, now time.Time) (*TokenBalance, error) {
	balance, err := q.store.Balance(ctx, sellerID, now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return balance, nil
}
