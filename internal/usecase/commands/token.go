package commands

import (
	"context"

	"dungji-market/internal/domain/token"
	"dungji-market/internal/pkg/clock"
	"dungji-market/internal/pkg/config"
	"dungji-market/internal/pkg/errs"
	"dungji-market/internal/usecase/shared"

	"github.com/google/uuid"
)

type PurchaseTokensInput struct {
	Plan      string // "single" or "unlimited"
	AmountKRW int64
}

type PurchaseTokensResult struct {
	PurchaseID uuid.UUID
	Granted    int
	TokenIDs   []uuid.UUID
}

type TokenCommands interface {
	Purchase(ctx context.Context, sellerID uuid.UUID, input PurchaseTokensInput) (PurchaseTokensResult, error)
}

type tokenCommandsImpl struct {
	uow   shared.UnitOfWork
	cfg   config.TokenConfig
	clock clock.Clock
}

func NewTokenCommands(uow shared.UnitOfWork, cfg config.TokenConfig, clk clock.Clock) TokenCommands {
	return &tokenCommandsImpl{uow: uow, cfg: cfg, clock: clk}
}

// Purchase converts a payment into bid tokens. The single plan grants one
// token per 10,000 KRW with volume bonuses; the unlimited plan grants one
// pass valid for its whole period.
func (c *tokenCommandsImpl) Purchase(ctx context.Context, sellerID uuid.UUID, input PurchaseTokensInput) (PurchaseTokensResult, error) {
	now := c.clock.Now()
	purchaseID := uuid.New()

	var tokens []*token.BidToken
	switch input.Plan {
	case string(token.TypeSingle):
		n := token.GrantForPurchase(input.AmountKRW)
		if n == 0 {
			return PurchaseTokensResult{}, errs.Mark(errs.ErrDomainValidation, errs.ErrInvalidTokenPlan)
		}
		expires := now.Add(c.cfg.SingleTTL)
		for i := 0; i < n; i++ {
			tokens = append(tokens, token.New(sellerID, token.TypeSingle, expires, &purchaseID, now))
		}
	case string(token.TypeUnlimited):
		tokens = append(tokens, token.New(sellerID, token.TypeUnlimited, now.Add(c.cfg.UnlimitedTTL), &purchaseID, now))
	default:
		return PurchaseTokensResult{}, errs.ErrInvalidTokenPlan
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Tokens().CreateBatch(ctx, tokens)
	})
	if err != nil {
		return PurchaseTokensResult{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	result := PurchaseTokensResult{PurchaseID: purchaseID, Granted: len(tokens)}
	for _, t := range tokens {
		result.TokenIDs = append(result.TokenIDs, t.ID)
	}
	return result, nil
}
