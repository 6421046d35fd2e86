package commands

import (
	"context"
	"time"

	"dungji-market/internal/domain/groupbuy"
	"dungji-market/internal/domain/noshow"
	"dungji-market/internal/domain/participation"
	"dungji-market/internal/domain/penalty"
	"dungji-market/internal/infra"
	"dungji-market/internal/pkg/clock"
	"dungji-market/internal/pkg/errs"
	"dungji-market/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReportNoShowInput struct {
	GroupBuyID uuid.UUID
	ReportedID uuid.UUID
	Type       string
	Content    string
}

type NoShowCommands interface {
	Report(ctx context.Context, reporterID uuid.UUID, input ReportNoShowInput) (uuid.UUID, error)
	Edit(ctx context.Context, reportID, editorID uuid.UUID, content string) error
	Withdraw(ctx context.Context, reportID, reporterID uuid.UUID) error
	AdminConfirm(ctx context.Context, reportID uuid.UUID, note string) error
	AdminHold(ctx context.Context, reportID uuid.UUID, note string) error
}

type noShowCommandsImpl struct {
	uow      shared.UnitOfWork
	notifier Notifier
	policy   penalty.Policy
	clock    clock.Clock
}

func NewNoShowCommands(uow shared.UnitOfWork, notifier Notifier, policy penalty.Policy, clk clock.Clock) NoShowCommands {
	return &noShowCommandsImpl{uow: uow, notifier: notifier, policy: policy, clock: clk}
}

// Report files a no-show complaint against the counterparty of a completed
// group purchase. Sellers report buyers, buyers report the selected seller.
func (c *noShowCommandsImpl) Report(ctx context.Context, reporterID uuid.UUID, input ReportNoShowInput) (uuid.UUID, error) {
	typ := noshow.ReportType(input.Type)
	r, err := noshow.NewReport(input.GroupBuyID, reporterID, input.ReportedID, typ, input.Content, c.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		gb, err := findGroupBuyForUpdate(ctx, tx, input.GroupBuyID)
		if err != nil {
			return err
		}
		if gb.Status() != groupbuy.StatusCompleted {
			return errs.Mark(errs.ErrInvalidTransition, errs.ErrGroupBuyClosed)
		}

		if err := c.checkReportingParty(ctx, tx, gb, reporterID, input.ReportedID, typ); err != nil {
			return err
		}

		exists, err := tx.NoShowReports().Exists(ctx, input.GroupBuyID, reporterID, input.ReportedID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if exists {
			return errs.ErrDuplicateNoShowReport
		}

		if err := tx.NoShowReports().Create(ctx, r); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, errs.ErrDuplicateNoShowReport)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return r.ID, nil
}

// checkReportingParty ensures the reporter and reported stand on opposite
// sides of the deal.
func (c *noShowCommandsImpl) checkReportingParty(
	ctx context.Context,
	tx shared.Tx,
	gb *groupbuy.GroupBuy,
	reporterID, reportedID uuid.UUID,
	typ noshow.ReportType,
) error {
	if gb.SelectedBidID() == nil {
		return errs.ErrBidNotSelected
	}
	winning, err := tx.Bids().FindByID(ctx, *gb.SelectedBidID())
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	switch typ {
	case noshow.TypeBuyerNoShow:
		if winning.SellerID() != reporterID {
			return errs.ErrInvalidRole
		}
		return c.ensureConfirmedBuyer(ctx, tx, gb.ID(), reportedID)
	case noshow.TypeSellerNoShow:
		if winning.SellerID() != reportedID {
			return errs.ErrInvalidRole
		}
		return c.ensureConfirmedBuyer(ctx, tx, gb.ID(), reporterID)
	default:
		return errs.ErrDomainValidation
	}
}

func (c *noShowCommandsImpl) ensureConfirmedBuyer(ctx context.Context, tx shared.Tx, groupBuyID, buyerID uuid.UUID) error {
	p, err := tx.Participations().FindActiveByBuyer(ctx, groupBuyID, buyerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrNotParticipant)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if p.Decision != participation.DecisionConfirmed {
		return errs.ErrNotParticipant
	}
	return nil
}

func (c *noShowCommandsImpl) Edit(ctx context.Context, reportID, editorID uuid.UUID, content string) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := findNoShowReport(ctx, tx, reportID)
		if err != nil {
			return err
		}
		if err := r.Edit(editorID, content); err != nil {
			return mapNoShowError(err)
		}
		return tx.NoShowReports().Save(ctx, r)
	})
}

func (c *noShowCommandsImpl) Withdraw(ctx context.Context, reportID, reporterID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := findNoShowReport(ctx, tx, reportID)
		if err != nil {
			return err
		}
		if r.ReporterID != reporterID {
			return errs.ErrNoShowReportNotFound
		}
		if err := r.Withdraw(); err != nil {
			return mapNoShowError(err)
		}
		return tx.NoShowReports().Save(ctx, r)
	})
}

// AdminConfirm validates a report, penalizes the offender and settles the
// group purchase: a confirmed seller no-show voids the whole deal, buyer
// no-shows void it only when every confirmed buyer was reported.
func (c *noShowCommandsImpl) AdminConfirm(ctx context.Context, reportID uuid.UUID, note string) error {
	now := c.clock.Now()
	var groupBuyID uuid.UUID
	var cancelled bool

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := findNoShowReport(ctx, tx, reportID)
		if err != nil {
			return err
		}
		if err := r.Confirm(note, now); err != nil {
			return mapNoShowError(err)
		}
		if err := tx.NoShowReports().Save(ctx, r); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := imposePenalty(ctx, tx, r.ReportedID, "confirmed no-show", c.policy, now); err != nil {
			return err
		}

		groupBuyID = r.GroupBuyID
		cancelled, err = c.settleGroupBuy(ctx, tx, r, now)
		return err
	})
	if err != nil {
		return err
	}

	if cancelled {
		c.notifier.GroupBuyEvent(ctx, groupBuyID, groupbuy.Notice{Kind: groupbuy.NoticeCancelled, Audience: groupbuy.AudienceParties})
	}
	return nil
}

// settleGroupBuy updates the deal after a confirmed report and reports
// whether it was voided.
func (c *noShowCommandsImpl) settleGroupBuy(ctx context.Context, tx shared.Tx, r *noshow.Report, now time.Time) (bool, error) {
	gb, err := findGroupBuyForUpdate(ctx, tx, r.GroupBuyID)
	if err != nil {
		return false, err
	}
	if gb.Status() != groupbuy.StatusCompleted {
		return false, nil
	}

	cancel := func(reason string) (bool, error) {
		eff := &groupbuy.Effect{
			Status:       groupbuy.StatusCancelled,
			CancelReason: reason,
			Notices:      []groupbuy.Notice{{Kind: groupbuy.NoticeCancelled, Audience: groupbuy.AudienceParties}},
		}
		return true, tx.GroupBuys().ApplyEffect(ctx, gb.ID(), eff, now)
	}

	switch r.Type {
	case noshow.TypeSellerNoShow:
		return cancel(groupbuy.CancelReasonSellerNoShow)
	case noshow.TypeBuyerNoShow:
		parts, err := tx.Participations().FindByGroupBuy(ctx, gb.ID())
		if err != nil {
			return false, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		_, confirmed, _ := participation.CountByDecision(parts)
		reported, err := tx.NoShowReports().CountConfirmedByGroupBuy(ctx, gb.ID(), noshow.TypeBuyerNoShow)
		if err != nil {
			return false, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if noshow.ResolveBuyerNoShow(confirmed, reported) == noshow.ResolutionCancelDeal {
			return cancel(groupbuy.CancelReasonAllBuyersNoShow)
		}
	}
	return false, nil
}

func (c *noShowCommandsImpl) AdminHold(ctx context.Context, reportID uuid.UUID, note string) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := findNoShowReport(ctx, tx, reportID)
		if err != nil {
			return err
		}
		if err := r.Hold(note); err != nil {
			return mapNoShowError(err)
		}
		return tx.NoShowReports().Save(ctx, r)
	})
}

func findNoShowReport(ctx context.Context, tx shared.Tx, id uuid.UUID) (*noshow.Report, error) {
	r, err := tx.NoShowReports().FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrNoShowReportNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return r, nil
}

func mapNoShowError(err error) error {
	switch err {
	case noshow.ErrNotPending:
		return errs.Mark(err, errs.ErrNoShowNotPending)
	case noshow.ErrEditExhausted:
		return errs.Mark(err, errs.ErrNoShowEditExhausted)
	case noshow.ErrNotReporter:
		return errs.Mark(err, errs.ErrNoShowReportNotFound)
	case noshow.ErrEmptyContent:
		return errs.Mark(err, errs.ErrDomainValidation)
	default:
		return err
	}
}
