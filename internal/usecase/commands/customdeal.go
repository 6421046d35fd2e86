package commands

import (
	"context"
	"time"

	"dungji-market/internal/domain/customdeal"
	"dungji-market/internal/infra"
	"dungji-market/internal/pkg/clock"
	"dungji-market/internal/pkg/errs"
	"dungji-market/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateCustomDealInput struct {
	Title             string
	Description       string
	Kind              string
	DiscountType      string
	DiscountLink      string
	DiscountValidDays int
	Target            int
	WaitHours         int
	AllowPartialSale  bool
	DiscountCodes     []string
}

type CustomDealCommands interface {
	Create(ctx context.Context, sellerID uuid.UUID, input CreateCustomDealInput) (uuid.UUID, error)
	Join(ctx context.Context, dealID, buyerID uuid.UUID) (string, error)
	EarlyClose(ctx context.Context, dealID, sellerID uuid.UUID) error
	SellerAccept(ctx context.Context, dealID, sellerID uuid.UUID) error
	SellerDecline(ctx context.Context, dealID, sellerID uuid.UUID) error
	VerifyCode(ctx context.Context, dealID, sellerID uuid.UUID, code string) error
}

type customDealCommandsImpl struct {
	uow      shared.UnitOfWork
	notifier Notifier
	clock    clock.Clock
}

func NewCustomDealCommands(uow shared.UnitOfWork, notifier Notifier, clk clock.Clock) CustomDealCommands {
	return &customDealCommandsImpl{uow: uow, notifier: notifier, clock: clk}
}

func (c *customDealCommandsImpl) Create(ctx context.Context, sellerID uuid.UUID, input CreateCustomDealInput) (uuid.UUID, error) {
	now := c.clock.Now()

	deal, err := customdeal.New(customdeal.NewParams{
		SellerID:           sellerID,
		Title:              input.Title,
		Description:        input.Description,
		Kind:               customdeal.Kind(input.Kind),
		DiscountType:       customdeal.DiscountType(input.DiscountType),
		DiscountLink:       input.DiscountLink,
		DiscountValidDays:  input.DiscountValidDays,
		TargetParticipants: input.Target,
		WaitHours:          input.WaitHours,
		AllowPartialSale:   input.AllowPartialSale,
	}, now)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := ensureNotPenalized(ctx, tx, sellerID, now); err != nil {
			return err
		}
		if err := tx.CustomDeals().Create(ctx, deal); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if deal.DiscountType().NeedsCodes() && len(input.DiscountCodes) > 0 {
			return tx.DiscountCodes().CreateBatch(ctx, deal.ID(), input.DiscountCodes)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return deal.ID(), nil
}

// Join seats one more buyer. The deal row is locked so the join that hits
// the target also completes the deal; discount issuance happens in the same
// transaction and an exhausted code pool rolls the whole join back.
func (c *customDealCommandsImpl) Join(ctx context.Context, dealID, buyerID uuid.UUID) (string, error) {
	now := c.clock.Now()
	var code string

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		deal, err := findCustomDealForUpdate(ctx, tx, dealID)
		if err != nil {
			return err
		}

		taken, err := tx.CustomParticipants().Exists(ctx, dealID, buyerID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if taken {
			return errs.ErrAlreadyJoined
		}

		completed, err := deal.Join(now)
		if err != nil {
			return mapCustomDealError(err)
		}

		code, err = customdeal.NewParticipationCode(now)
		if err != nil {
			return errs.Wrap(err, "mint participation code")
		}
		p := &shared.CustomParticipant{
			ID:       uuid.New(),
			DealID:   dealID,
			BuyerID:  buyerID,
			Code:     code,
			Status:   shared.CustomParticipantConfirmed,
			JoinedAt: now,
		}
		if err := tx.CustomParticipants().Create(ctx, p); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, errs.ErrAlreadyJoined)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := tx.CustomDeals().Save(ctx, deal); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if completed {
			return issueDiscounts(ctx, tx, deal, now)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return code, nil
}

func (c *customDealCommandsImpl) EarlyClose(ctx context.Context, dealID, sellerID uuid.UUID) error {
	now := c.clock.Now()

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		deal, err := findCustomDealForUpdate(ctx, tx, dealID)
		if err != nil {
			return err
		}
		if deal.SellerID() != sellerID {
			return errs.ErrNotCustomDealSeller
		}

		completed, err := deal.EarlyClose(now)
		if err != nil {
			return mapCustomDealError(err)
		}
		if err := tx.CustomDeals().Save(ctx, deal); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if completed {
			return issueDiscounts(ctx, tx, deal, now)
		}
		return nil
	})
}

func (c *customDealCommandsImpl) SellerAccept(ctx context.Context, dealID, sellerID uuid.UUID) error {
	now := c.clock.Now()

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		deal, err := findCustomDealForUpdate(ctx, tx, dealID)
		if err != nil {
			return err
		}
		if deal.SellerID() != sellerID {
			return errs.ErrNotCustomDealSeller
		}
		if err := deal.SellerAccept(now); err != nil {
			return mapCustomDealError(err)
		}
		if err := tx.CustomDeals().Save(ctx, deal); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return issueDiscounts(ctx, tx, deal, now)
	})
}

func (c *customDealCommandsImpl) SellerDecline(ctx context.Context, dealID, sellerID uuid.UUID) error {
	now := c.clock.Now()

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		deal, err := findCustomDealForUpdate(ctx, tx, dealID)
		if err != nil {
			return err
		}
		if deal.SellerID() != sellerID {
			return errs.ErrNotCustomDealSeller
		}
		if err := deal.SellerDecline(now); err != nil {
			return mapCustomDealError(err)
		}
		if _, err := tx.CustomParticipants().CancelByDeal(ctx, dealID); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return tx.CustomDeals().Save(ctx, deal)
	})
}

// VerifyCode redeems a participation code at the point of sale. Offline
// deals carry no link or code pool, so the participation code itself is
// the proof of purchase the seller checks off.
func (c *customDealCommandsImpl) VerifyCode(ctx context.Context, dealID, sellerID uuid.UUID, code string) error {
	now := c.clock.Now()

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		deal, err := findCustomDealForUpdate(ctx, tx, dealID)
		if err != nil {
			return err
		}
		if deal.SellerID() != sellerID {
			return errs.ErrNotCustomDealSeller
		}
		if deal.Status() != customdeal.StatusCompleted {
			return errs.ErrCustomDealNotDone
		}

		err = tx.CustomParticipants().MarkRedeemed(ctx, dealID, code, now)
		switch {
		case err == nil:
			return nil
		case infra.IsKind(err, infra.KindNotFound):
			return errs.Mark(err, errs.ErrSeatCodeInvalid)
		case infra.IsKind(err, infra.KindDuplicateKey):
			return errs.Mark(err, errs.ErrSeatCodeUsed)
		default:
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	})
}

// issueDiscounts hands every confirmed participant what the discount type
// promises. Runs inside the completing transaction: running out of codes
// aborts the completion entirely. Offline deals skip issuance; there the
// participation code itself is redeemed at the point of sale.
func issueDiscounts(ctx context.Context, tx shared.Tx, deal *customdeal.CustomDeal, now time.Time) error {
	if deal.Kind() != customdeal.KindOnline {
		return nil
	}

	var validUntil *time.Time
	if days := deal.DiscountValidDays(); days > 0 {
		until := now.AddDate(0, 0, days)
		validUntil = &until
	}

	parts, err := tx.CustomParticipants().FindByDeal(ctx, deal.ID())
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	for _, p := range parts {
		if p.Status != shared.CustomParticipantConfirmed {
			continue
		}
		var link, code string
		if deal.DiscountType().NeedsLink() {
			link = deal.DiscountLink()
		}
		if deal.DiscountType().NeedsCodes() {
			code, err = tx.DiscountCodes().ClaimUnassigned(ctx, deal.ID(), p.ID)
			if err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return errs.Mark(err, errs.ErrDiscountPoolExhausted)
				}
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}
		if err := tx.CustomParticipants().AttachDiscount(ctx, p.ID, link, code, validUntil); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}
	return nil
}

func findCustomDealForUpdate(ctx context.Context, tx shared.Tx, id uuid.UUID) (*customdeal.CustomDeal, error) {
	deal, err := tx.CustomDeals().FindByIDForUpdate(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrCustomDealNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return deal, nil
}

func mapCustomDealError(err error) error {
	switch err {
	case nil:
		return nil
	case customdeal.ErrNotRecruiting:
		return errs.Mark(err, errs.ErrCustomDealNotOpen)
	case customdeal.ErrFull:
		return errs.Mark(err, errs.ErrCustomDealFull)
	case customdeal.ErrNotPendingSeller:
		return errs.Mark(err, errs.ErrInvalidTransition)
	case customdeal.ErrDecisionWindowOver:
		return errs.Mark(err, errs.ErrDecisionDeadlinePast)
	case customdeal.ErrNoParticipants:
		return errs.Mark(err, errs.ErrDomainValidation)
	default:
		return err
	}
}
