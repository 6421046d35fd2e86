package commands

import (
	"context"
	"time"

	"dungji-market/internal/domain/groupbuy"
	"dungji-market/internal/domain/participation"
	"dungji-market/internal/infra"
	"dungji-market/internal/pkg/clock"
	"dungji-market/internal/pkg/errs"
	"dungji-market/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateGroupBuyInput struct {
	Title           string
	Description     string
	ProductName     string
	ProductType     string
	StartingAmount  int64
	MinParticipants int
	MaxParticipants int
	Region          string
	EndTime         time.Time
}

type GroupBuyCommands interface {
	Create(ctx context.Context, creatorID uuid.UUID, input CreateGroupBuyInput) (uuid.UUID, error)
	Join(ctx context.Context, groupBuyID, buyerID uuid.UUID) error
	Leave(ctx context.Context, groupBuyID, buyerID uuid.UUID) error
	CancelByCreator(ctx context.Context, groupBuyID, creatorID uuid.UUID) error
}

type groupBuyCommandsImpl struct {
	uow      shared.UnitOfWork
	notifier Notifier
	clock    clock.Clock
}

func NewGroupBuyCommands(uow shared.UnitOfWork, notifier Notifier, clk clock.Clock) GroupBuyCommands {
	return &groupBuyCommandsImpl{uow: uow, notifier: notifier, clock: clk}
}

func (c *groupBuyCommandsImpl) Create(ctx context.Context, creatorID uuid.UUID, input CreateGroupBuyInput) (uuid.UUID, error) {
	now := c.clock.Now()

	gb, err := groupbuy.New(groupbuy.NewParams{
		CreatorID:       creatorID,
		Title:           input.Title,
		Description:     input.Description,
		ProductName:     input.ProductName,
		ProductType:     groupbuy.ProductType(input.ProductType),
		StartingAmount:  input.StartingAmount,
		MinParticipants: input.MinParticipants,
		MaxParticipants: input.MaxParticipants,
		Region:          input.Region,
		StartTime:       now,
		EndTime:         input.EndTime,
	})
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := ensureNotPenalized(ctx, tx, creatorID, now); err != nil {
			return err
		}
		if err := ensureNoProductOverlap(ctx, tx, creatorID, gb.ProductName(), gb.ID()); err != nil {
			return err
		}
		if err := tx.GroupBuys().Create(ctx, gb); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		// The creator occupies the first seat.
		return tx.Participations().Create(ctx, participation.New(gb.ID(), creatorID, now))
	})
	if err != nil {
		return uuid.Nil, err
	}
	return gb.ID(), nil
}

func (c *groupBuyCommandsImpl) Join(ctx context.Context, groupBuyID, buyerID uuid.UUID) error {
	now := c.clock.Now()

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		gb, err := findGroupBuyForUpdate(ctx, tx, groupBuyID)
		if err != nil {
			return err
		}
		if err := gb.CanJoin(now); err != nil {
			return mapJoinError(err)
		}
		if err := ensureNotPenalized(ctx, tx, buyerID, now); err != nil {
			return err
		}
		if err := ensureNoProductOverlap(ctx, tx, buyerID, gb.ProductName(), groupBuyID); err != nil {
			return err
		}

		if err := tx.Participations().Create(ctx, participation.New(groupBuyID, buyerID, now)); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, errs.ErrAlreadyJoined)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return tx.GroupBuys().IncrementParticipants(ctx, groupBuyID, 1)
	})
}

func (c *groupBuyCommandsImpl) Leave(ctx context.Context, groupBuyID, buyerID uuid.UUID) error {
	now := c.clock.Now()

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		gb, err := findGroupBuyForUpdate(ctx, tx, groupBuyID)
		if err != nil {
			return err
		}
		if gb.Status() != groupbuy.StatusRecruiting {
			return errs.Mark(groupbuy.ErrNotRecruiting, errs.ErrGroupBuyNotRecruiting)
		}
		if gb.CreatorID() == buyerID {
			// Creators cancel the whole deal instead of leaving it.
			return errs.ErrNotParticipant
		}

		p, err := tx.Participations().FindActiveByBuyer(ctx, groupBuyID, buyerID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrNotParticipant)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		p.Status = participation.StatusCancelled
		p.Decision = participation.DecisionCancelled
		p.DecidedAt = &now
		if err := tx.Participations().Save(ctx, p); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return tx.GroupBuys().IncrementParticipants(ctx, groupBuyID, -1)
	})
}

func (c *groupBuyCommandsImpl) CancelByCreator(ctx context.Context, groupBuyID, creatorID uuid.UUID) error {
	now := c.clock.Now()
	var eff *groupbuy.Effect

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		gb, err := findGroupBuyForUpdate(ctx, tx, groupBuyID)
		if err != nil {
			return err
		}
		if gb.CreatorID() != creatorID {
			return errs.ErrNotGroupBuyCreator
		}
		if gb.Status() != groupbuy.StatusRecruiting {
			return errs.Mark(groupbuy.ErrNotRecruiting, errs.ErrGroupBuyClosed)
		}

		eff = &groupbuy.Effect{
			Status:       groupbuy.StatusCancelled,
			CancelReason: groupbuy.CancelReasonCreatorCancelled,
			Notices:      []groupbuy.Notice{{Kind: groupbuy.NoticeCancelled, Audience: groupbuy.AudienceBuyers}},
		}
		return tx.GroupBuys().ApplyEffect(ctx, groupBuyID, eff, now)
	})
	if err != nil {
		return err
	}

	notifyEffect(ctx, c.notifier, groupBuyID, eff)
	return nil
}

func findGroupBuyForUpdate(ctx context.Context, tx shared.Tx, id uuid.UUID) (*groupbuy.GroupBuy, error) {
	gb, err := tx.GroupBuys().FindByIDForUpdate(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrGroupBuyNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return gb, nil
}

// ensureNoProductOverlap enforces one live participation per product per
// buyer across all group purchases.
func ensureNoProductOverlap(ctx context.Context, tx shared.Tx, buyerID uuid.UUID, productName string, groupBuyID uuid.UUID) error {
	taken, err := tx.Participations().ExistsActiveForProduct(ctx, buyerID, productName, groupBuyID)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if taken {
		return errs.ErrProductConflict
	}
	return nil
}

func ensureNotPenalized(ctx context.Context, tx shared.Tx, userID uuid.UUID, now time.Time) error {
	active, err := tx.Penalties().FindActiveByUser(ctx, userID, now)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if active != nil {
		return errs.ErrPenaltyActive
	}
	return nil
}

func mapJoinError(err error) error {
	switch err {
	case nil:
		return nil
	case groupbuy.ErrNotRecruiting:
		return errs.Mark(err, errs.ErrGroupBuyNotRecruiting)
	case groupbuy.ErrFull:
		return errs.Mark(err, errs.ErrParticipantLimit)
	default:
		return err
	}
}
