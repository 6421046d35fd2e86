package commands

import (
	"context"

	"dungji-market/internal/domain/groupbuy"
	"dungji-market/internal/domain/penalty"
	"dungji-market/internal/infra"
	"dungji-market/internal/pkg/clock"
	"dungji-market/internal/pkg/errs"
	"dungji-market/internal/usecase/shared"

	"github.com/google/uuid"
)

// DecisionCommands covers the final selection phase: buyers answering for
// the winning bid and the winning seller accepting or declining.
type DecisionCommands interface {
	BuyerDecide(ctx context.Context, groupBuyID, buyerID uuid.UUID, confirmed bool) error
	SellerConfirm(ctx context.Context, groupBuyID, sellerID uuid.UUID) error
	SellerDecline(ctx context.Context, groupBuyID, sellerID uuid.UUID) error
}

type decisionCommandsImpl struct {
	uow      shared.UnitOfWork
	notifier Notifier
	policy   penalty.Policy
	clock    clock.Clock
}

func NewDecisionCommands(uow shared.UnitOfWork, notifier Notifier, policy penalty.Policy, clk clock.Clock) DecisionCommands {
	return &decisionCommandsImpl{uow: uow, notifier: notifier, policy: policy, clock: clk}
}

func (c *decisionCommandsImpl) BuyerDecide(ctx context.Context, groupBuyID, buyerID uuid.UUID, confirmed bool) error {
	now := c.clock.Now()
	var eff *groupbuy.Effect

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		gb, err := findGroupBuyForUpdate(ctx, tx, groupBuyID)
		if err != nil {
			return err
		}
		if gb.Status() != groupbuy.StatusFinalSelectionBuyers {
			return errs.Mark(errs.ErrInvalidTransition, errs.ErrDecisionWindowOver)
		}
		if gb.FinalSelectionEnd() != nil && !now.Before(*gb.FinalSelectionEnd()) {
			return errs.ErrDecisionWindowOver
		}

		p, err := tx.Participations().FindActiveByBuyer(ctx, groupBuyID, buyerID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrNotParticipant)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := p.Decide(confirmed, now); err != nil {
			return errs.Mark(err, errs.ErrAlreadyDecided)
		}
		if err := tx.Participations().Save(ctx, p); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		// When the last answer arrives the seller window opens early.
		parts, err := tx.Participations().FindByGroupBuy(ctx, groupBuyID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		eff = groupbuy.EvaluateBuyerConsensus(gb, parts, now)
		if eff == nil {
			return nil
		}
		return applyGroupBuyEffect(ctx, tx, gb, eff, c.policy, now)
	})
	if err != nil {
		return err
	}

	notifyEffect(ctx, c.notifier, groupBuyID, eff)
	return nil
}

func (c *decisionCommandsImpl) SellerConfirm(ctx context.Context, groupBuyID, sellerID uuid.UUID) error {
	now := c.clock.Now()
	var eff *groupbuy.Effect

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		gb, err := findGroupBuyForUpdate(ctx, tx, groupBuyID)
		if err != nil {
			return err
		}
		if err := c.ensureSelectedSeller(ctx, tx, gb, sellerID); err != nil {
			return err
		}

		eff, err = groupbuy.SellerConfirm(gb, now)
		if err != nil {
			return mapSellerWindowError(err)
		}
		return applyGroupBuyEffect(ctx, tx, gb, eff, c.policy, now)
	})
	if err != nil {
		return err
	}

	notifyEffect(ctx, c.notifier, groupBuyID, eff)
	return nil
}

func (c *decisionCommandsImpl) SellerDecline(ctx context.Context, groupBuyID, sellerID uuid.UUID) error {
	now := c.clock.Now()
	var eff *groupbuy.Effect

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		gb, err := findGroupBuyForUpdate(ctx, tx, groupBuyID)
		if err != nil {
			return err
		}
		if err := c.ensureSelectedSeller(ctx, tx, gb, sellerID); err != nil {
			return err
		}

		parts, err := tx.Participations().FindByGroupBuy(ctx, groupBuyID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		eff, err = groupbuy.SellerDecline(gb, parts, sellerID, now)
		if err != nil {
			return mapSellerWindowError(err)
		}
		return applyGroupBuyEffect(ctx, tx, gb, eff, c.policy, now)
	})
	if err != nil {
		return err
	}

	notifyEffect(ctx, c.notifier, groupBuyID, eff)
	return nil
}

func (c *decisionCommandsImpl) ensureSelectedSeller(ctx context.Context, tx shared.Tx, gb *groupbuy.GroupBuy, sellerID uuid.UUID) error {
	if gb.SelectedBidID() == nil {
		return errs.ErrBidNotSelected
	}
	b, err := tx.Bids().FindByID(ctx, *gb.SelectedBidID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrBidNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if b.SellerID() != sellerID {
		return errs.ErrBidNotSelected
	}
	return nil
}

func mapSellerWindowError(err error) error {
	switch err {
	case groupbuy.ErrNotAwaitingSeller:
		return errs.Mark(err, errs.ErrInvalidTransition)
	case groupbuy.ErrSellerWindowOver:
		return errs.Mark(err, errs.ErrSelectionWindowOver)
	default:
		return err
	}
}
