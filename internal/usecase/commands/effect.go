package commands

import (
	"context"
	"time"

	"dungji-market/internal/domain/bid"
	"dungji-market/internal/domain/groupbuy"
	"dungji-market/internal/domain/penalty"
	"dungji-market/internal/infra"
	"dungji-market/internal/pkg/errs"
	"dungji-market/internal/usecase/shared"

	"github.com/google/uuid"
)

// applyGroupBuyEffect persists a transition effect inside the caller's
// transaction: the groupbuy row itself, bid status changes, forced
// participant cancellations, token refunds and penalties.
func applyGroupBuyEffect(
	ctx context.Context,
	tx shared.Tx,
	gb *groupbuy.GroupBuy,
	eff *groupbuy.Effect,
	policy penalty.Policy,
	now time.Time,
) error {
	if err := tx.GroupBuys().ApplyEffect(ctx, gb.ID(), eff, now); err != nil {
		return err
	}

	if eff.SelectedBidID != nil {
		if err := tx.Bids().UpdateStatus(ctx, *eff.SelectedBidID, bid.StatusSelected, now); err != nil {
			return err
		}
	}
	if len(eff.RejectedBidIDs) > 0 {
		if err := tx.Bids().UpdateStatusBatch(ctx, eff.RejectedBidIDs, bid.StatusRejected, now); err != nil {
			return err
		}
	}

	selectedID := gb.SelectedBidID()
	if eff.SelectedBidID != nil {
		selectedID = eff.SelectedBidID
	}
	if eff.ConfirmSelectedBid && selectedID != nil {
		if err := tx.Bids().UpdateStatus(ctx, *selectedID, bid.StatusConfirmed, now); err != nil {
			return err
		}
	}
	if eff.ForfeitSelectedBid && selectedID != nil {
		if err := tx.Bids().UpdateStatus(ctx, *selectedID, bid.StatusForfeited, now); err != nil {
			return err
		}
	}

	if eff.ForceCancelPending {
		if _, err := tx.Participations().CancelPending(ctx, gb.ID(), now); err != nil {
			return err
		}
	}

	if eff.RefundBidToken && selectedID != nil {
		if err := refundTokenForBid(ctx, tx, *selectedID); err != nil {
			return err
		}
	}

	if eff.PenalizeSellerID != nil {
		if err := imposePenalty(ctx, tx, *eff.PenalizeSellerID, eff.PenaltyReason, policy, now); err != nil {
			return err
		}
	}

	return nil
}

// refundTokenForBid returns the single-use token a bid consumed. Bids placed
// with an unlimited token have nothing to refund.
func refundTokenForBid(ctx context.Context, tx shared.Tx, bidID uuid.UUID) error {
	tok, err := tx.Tokens().FindUsedByBid(ctx, bidID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		return err
	}
	if err := tok.Refund(); err != nil {
		return errs.Wrap(err, "refund bid token")
	}
	return tx.Tokens().Save(ctx, tok)
}

func imposePenalty(
	ctx context.Context,
	tx shared.Tx,
	userID uuid.UUID,
	reason string,
	policy penalty.Policy,
	now time.Time,
) error {
	prior, err := tx.Penalties().CountByUser(ctx, userID)
	if err != nil {
		return err
	}
	p := penalty.New(userID, reason, prior+1, policy.Duration(prior), now)
	return tx.Penalties().Create(ctx, p)
}

// notifyEffect dispatches notices once the transaction committed.
func notifyEffect(ctx context.Context, notifier Notifier, groupBuyID uuid.UUID, eff *groupbuy.Effect) {
	if eff == nil {
		return
	}
	for _, notice := range eff.Notices {
		notifier.GroupBuyEvent(ctx, groupBuyID, notice)
	}
}
