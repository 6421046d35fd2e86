package commands

import (
	"context"
	"log/slog"

	"dungji-market/internal/domain/customdeal"
	"dungji-market/internal/domain/groupbuy"
	"dungji-market/internal/domain/penalty"
	"dungji-market/internal/pkg/clock"
	"dungji-market/internal/pkg/errs"
	"dungji-market/internal/usecase/shared"

	"github.com/google/uuid"
)

// sweepBatchSize bounds one sweep run so a backlog cannot hold a cron
// request open indefinitely; the next run picks up the rest.
const sweepBatchSize = 100

// SweepResult summarizes one sweep run.
type SweepResult struct {
	Scanned      int `json:"scanned"`
	Transitioned int `json:"transitioned"`
	Failed       int `json:"failed"`
}

// SweepCommands are the deadline jobs driven by the cron endpoints. Every
// job is idempotent: rerunning after a partial failure only touches rows
// still due.
type SweepCommands interface {
	EvaluateGroupBuyDeadlines(ctx context.Context) (SweepResult, error)
	ExpireCustomDeals(ctx context.Context) (SweepResult, error)
	ExpireTokens(ctx context.Context) (int64, error)
	ReconcileParticipantCounts(ctx context.Context) (int64, error)
}

type sweepCommandsImpl struct {
	uow      shared.UnitOfWork
	notifier Notifier
	policy   penalty.Policy
	clock    clock.Clock
}

func NewSweepCommands(uow shared.UnitOfWork, notifier Notifier, policy penalty.Policy, clk clock.Clock) SweepCommands {
	return &sweepCommandsImpl{uow: uow, notifier: notifier, policy: policy, clock: clk}
}

// EvaluateGroupBuyDeadlines advances every group purchase whose next
// deadline has passed. Each deal is processed in its own transaction so one
// poisoned row cannot block the rest of the sweep.
func (c *sweepCommandsImpl) EvaluateGroupBuyDeadlines(ctx context.Context) (SweepResult, error) {
	now := c.clock.Now()
	var result SweepResult

	var due []uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		due, err = tx.GroupBuys().DueForEvaluation(ctx, now, sweepBatchSize)
		return err
	})
	if err != nil {
		return result, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	result.Scanned = len(due)

	for _, id := range due {
		eff, err := c.evaluateOne(ctx, id)
		if err != nil {
			result.Failed++
			slog.Error("groupbuy deadline evaluation failed",
				"groupbuy_id", id.String(),
				"error", err.Error())
			continue
		}
		if eff != nil {
			result.Transitioned++
			notifyEffect(ctx, c.notifier, id, eff)
		}
	}
	return result, nil
}

func (c *sweepCommandsImpl) evaluateOne(ctx context.Context, id uuid.UUID) (*groupbuy.Effect, error) {
	now := c.clock.Now()
	var eff *groupbuy.Effect

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		gb, err := findGroupBuyForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		bids, err := tx.Bids().FindByGroupBuy(ctx, id)
		if err != nil {
			return err
		}
		parts, err := tx.Participations().FindByGroupBuy(ctx, id)
		if err != nil {
			return err
		}

		// Another sweep may have advanced the deal between listing and
		// locking; Evaluate returns nil in that case.
		eff = groupbuy.Evaluate(gb, bids, parts, now)
		if eff == nil {
			return nil
		}
		return applyGroupBuyEffect(ctx, tx, gb, eff, c.policy, now)
	})
	if err != nil {
		return nil, err
	}
	return eff, nil
}

func (c *sweepCommandsImpl) ExpireCustomDeals(ctx context.Context) (SweepResult, error) {
	now := c.clock.Now()
	var result SweepResult

	var due []uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		due, err = tx.CustomDeals().DueForExpiry(ctx, now, sweepBatchSize)
		return err
	})
	if err != nil {
		return result, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	result.Scanned = len(due)

	for _, id := range due {
		err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			deal, err := tx.CustomDeals().FindByIDForUpdate(ctx, id)
			if err != nil {
				return err
			}

			// Another sweep may have advanced the deal between listing
			// and locking.
			outcome := deal.EvaluateExpiry(now)
			if outcome == customdeal.OutcomeNone {
				return nil
			}
			if err := tx.CustomDeals().Save(ctx, deal); err != nil {
				return err
			}
			switch outcome {
			case customdeal.OutcomeCompleted:
				if err := issueDiscounts(ctx, tx, deal, now); err != nil {
					return err
				}
			case customdeal.OutcomeForceCancelled:
				if _, err := tx.CustomParticipants().CancelByDeal(ctx, id); err != nil {
					return err
				}
			}
			result.Transitioned++
			return nil
		})
		if err != nil {
			result.Failed++
			slog.Error("custom deal expiry failed",
				"deal_id", id.String(),
				"error", err.Error())
		}
	}
	return result, nil
}

func (c *sweepCommandsImpl) ExpireTokens(ctx context.Context) (int64, error) {
	now := c.clock.Now()
	var expired int64

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		expired, err = tx.Tokens().ExpireDue(ctx, now)
		return err
	})
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return expired, nil
}

// ReconcileParticipantCounts repairs cached participant counters that
// drifted from the participations table.
func (c *sweepCommandsImpl) ReconcileParticipantCounts(ctx context.Context) (int64, error) {
	var fixed int64

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		fixed, err = tx.GroupBuys().ReconcileParticipantCounts(ctx)
		return err
	})
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if fixed > 0 {
		slog.Warn("participant counters reconciled", "rows", fixed)
	}
	return fixed, nil
}
