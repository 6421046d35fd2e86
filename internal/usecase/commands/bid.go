package commands

import (
	"context"

	"dungji-market/internal/domain/bid"
	"dungji-market/internal/domain/groupbuy"
	"dungji-market/internal/infra"
	"dungji-market/internal/pkg/clock"
	"dungji-market/internal/pkg/errs"
	"dungji-market/internal/usecase/shared"

	"github.com/google/uuid"
)

type PlaceBidInput struct {
	GroupBuyID uuid.UUID
	Amount     int64
	Message    string
}

type BidCommands interface {
	Place(ctx context.Context, sellerID uuid.UUID, input PlaceBidInput) (uuid.UUID, error)
	Cancel(ctx context.Context, bidID, sellerID uuid.UUID) error
}

type bidCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBidCommands(uow shared.UnitOfWork, clk clock.Clock) BidCommands {
	return &bidCommandsImpl{uow: uow, clock: clk}
}

// Place registers a seller's offer. Placing a bid consumes a bid token in
// the same transaction: if the insert fails the token claim rolls back too.
func (c *bidCommandsImpl) Place(ctx context.Context, sellerID uuid.UUID, input PlaceBidInput) (uuid.UUID, error) {
	now := c.clock.Now()
	var bidID uuid.UUID

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := ensureNotPenalized(ctx, tx, sellerID, now); err != nil {
			return err
		}

		gb, err := findGroupBuyForUpdate(ctx, tx, input.GroupBuyID)
		if err != nil {
			return err
		}
		if !gb.AcceptsBids(now) {
			return errs.Mark(groupbuy.ErrNotRecruiting, errs.ErrGroupBuyNotRecruiting)
		}
		// Support deals advertise a floor; undercutting it is meaningless.
		if gb.ProductType() == groupbuy.ProductTypeSupport && input.Amount < gb.StartingAmount() {
			return errs.ErrBelowStartingPrice
		}

		// A seller re-bidding while recruiting updates the open bid in
		// place. Each attempt consumes a token, updates included.
		existing, err := tx.Bids().FindPendingBySeller(ctx, input.GroupBuyID, sellerID)
		if err != nil && !infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		tok, err := tx.Tokens().ClaimActive(ctx, sellerID, now)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrNoActiveToken)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		tokenID := tok.ID

		if existing != nil {
			if err := existing.Rebid(input.Amount, input.Message, &tokenID, now); err != nil {
				return errs.Mark(err, errs.ErrDomainValidation)
			}
			if err := tok.Use(existing.ID(), now); err != nil {
				return errs.Mark(err, errs.ErrNoActiveToken)
			}
			if err := tx.Tokens().Save(ctx, tok); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
			if err := tx.Bids().Save(ctx, existing); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
			bidID = existing.ID()
			return nil
		}

		b, err := bid.New(input.GroupBuyID, sellerID, input.Amount, input.Message, &tokenID, now)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		if err := tok.Use(b.ID(), now); err != nil {
			return errs.Mark(err, errs.ErrNoActiveToken)
		}
		if err := tx.Tokens().Save(ctx, tok); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := tx.Bids().Create(ctx, b); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, errs.ErrDuplicateBid)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		bidID = b.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return bidID, nil
}

// Cancel withdraws a pending bid while recruiting is open and refunds the
// consumed single-use token.
func (c *bidCommandsImpl) Cancel(ctx context.Context, bidID, sellerID uuid.UUID) error {
	now := c.clock.Now()

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bids().FindByID(ctx, bidID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrBidNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if b.SellerID() != sellerID {
			return errs.ErrBidNotFound
		}
		if b.Status() != bid.StatusPending {
			return errs.Mark(bid.ErrNotPending, errs.ErrBidAlreadyDecided)
		}

		gb, err := findGroupBuyForUpdate(ctx, tx, b.GroupBuyID())
		if err != nil {
			return err
		}
		if gb.Status() != groupbuy.StatusRecruiting {
			return errs.Mark(groupbuy.ErrNotRecruiting, errs.ErrGroupBuyNotRecruiting)
		}

		if err := tx.Bids().UpdateStatus(ctx, bidID, bid.StatusCancelled, now); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return refundTokenForBid(ctx, tx, bidID)
	})
}
