//go:build unit

package commands

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"dungji-market/internal/domain/customdeal"
	"dungji-market/internal/infra"
	"dungji-market/internal/pkg/clock"
	"dungji-market/internal/pkg/errs"
	"dungji-market/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func recruitingDeal(kind customdeal.Kind, discountType customdeal.DiscountType, target, current int) *customdeal.CustomDeal {
	link := ""
	if discountType.NeedsLink() {
		link = "https://deal.example.com/offer"
	}
	return customdeal.Reconstruct(customdeal.ReconstructParams{
		ID:                  uuid.New(),
		SellerID:            uuid.New(),
		Title:               "Lunch set deal",
		Kind:                kind,
		DiscountType:        discountType,
		DiscountLink:        link,
		TargetParticipants:  target,
		CurrentParticipants: current,
		ExpiresAt:           testNow.Add(24 * time.Hour),
		Status:              customdeal.StatusRecruiting,
		CreatedAt:           testNow.Add(-time.Hour),
		UpdatedAt:           testNow.Add(-time.Hour),
	})
}

func pendingSellerDeal(discountValidDays int) *customdeal.CustomDeal {
	deadline := testNow.Add(12 * time.Hour)
	return customdeal.Reconstruct(customdeal.ReconstructParams{
		ID:                  uuid.New(),
		SellerID:            uuid.New(),
		Title:               "Partial sale deal",
		Kind:                customdeal.KindOnline,
		DiscountType:        customdeal.DiscountLinkOnly,
		DiscountLink:        "https://deal.example.com/offer",
		DiscountValidDays:   discountValidDays,
		TargetParticipants:  5,
		CurrentParticipants: 2,
		AllowPartialSale:    true,
		ExpiresAt:           testNow.Add(-12 * time.Hour),
		SellerDeadline:      &deadline,
		Status:              customdeal.StatusPendingSeller,
		CreatedAt:           testNow.Add(-48 * time.Hour),
		UpdatedAt:           testNow.Add(-12 * time.Hour),
	})
}

func notFoundErr(msg string) error {
	return infra.WrapRepoErr(slog.Default(), infra.KindNotFound, msg, pgx.ErrNoRows)
}

func TestCustomDealJoin(t *testing.T) {
	t.Run("exhausted code pool aborts the completing join", func(t *testing.T) {
		deal := recruitingDeal(customdeal.KindOnline, customdeal.DiscountCodeOnly, 2, 1)
		saved := false

		seats := []*shared.CustomParticipant{
			{ID: uuid.New(), DealID: deal.ID(), BuyerID: uuid.New(), Status: shared.CustomParticipantConfirmed},
		}
		tx := &fakeTx{
			customDeals: &fakeCustomDealRepo{
				findByIDForUpdate: func(_ context.Context, id uuid.UUID) (*customdeal.CustomDeal, error) {
					return deal, nil
				},
				save: func(_ context.Context, d *customdeal.CustomDeal) error {
					saved = true
					return nil
				},
			},
			customParticipants: &fakeCustomParticipantRepo{
				exists: func(context.Context, uuid.UUID, uuid.UUID) (bool, error) { return false, nil },
				create: func(_ context.Context, p *shared.CustomParticipant) error {
					seats = append(seats, p)
					return nil
				},
				findByDeal: func(context.Context, uuid.UUID) ([]*shared.CustomParticipant, error) {
					return seats, nil
				},
			},
			discountCodes: &fakeDiscountCodeRepo{
				claimUnassigned: func(context.Context, uuid.UUID, uuid.UUID) (string, error) {
					return "", notFoundErr("no unassigned codes")
				},
			},
		}

		cmds := NewCustomDealCommands(&fakeUOW{tx: tx}, &fakeNotifier{}, clock.NewMockClock(testNow))
		_, err := cmds.Join(context.Background(), deal.ID(), uuid.New())
		require.ErrorIs(t, err, errs.ErrDiscountPoolExhausted)
		assert.True(t, saved)
	})

	t.Run("second join by the same buyer rejected", func(t *testing.T) {
		deal := recruitingDeal(customdeal.KindOnline, customdeal.DiscountLinkOnly, 5, 1)

		tx := &fakeTx{
			customDeals: &fakeCustomDealRepo{
				findByIDForUpdate: func(context.Context, uuid.UUID) (*customdeal.CustomDeal, error) {
					return deal, nil
				},
			},
			customParticipants: &fakeCustomParticipantRepo{
				exists: func(context.Context, uuid.UUID, uuid.UUID) (bool, error) { return true, nil },
			},
		}

		cmds := NewCustomDealCommands(&fakeUOW{tx: tx}, &fakeNotifier{}, clock.NewMockClock(testNow))
		_, err := cmds.Join(context.Background(), deal.ID(), uuid.New())
		require.ErrorIs(t, err, errs.ErrAlreadyJoined)
		assert.Equal(t, 1, deal.CurrentParticipants())
	})

	t.Run("new seat starts confirmed", func(t *testing.T) {
		deal := recruitingDeal(customdeal.KindOnline, customdeal.DiscountLinkOnly, 5, 1)
		var created *shared.CustomParticipant

		tx := &fakeTx{
			customDeals: &fakeCustomDealRepo{
				findByIDForUpdate: func(context.Context, uuid.UUID) (*customdeal.CustomDeal, error) {
					return deal, nil
				},
				save: func(context.Context, *customdeal.CustomDeal) error { return nil },
			},
			customParticipants: &fakeCustomParticipantRepo{
				exists: func(context.Context, uuid.UUID, uuid.UUID) (bool, error) { return false, nil },
				create: func(_ context.Context, p *shared.CustomParticipant) error {
					created = p
					return nil
				},
			},
		}

		cmds := NewCustomDealCommands(&fakeUOW{tx: tx}, &fakeNotifier{}, clock.NewMockClock(testNow))
		code, err := cmds.Join(context.Background(), deal.ID(), uuid.New())
		require.NoError(t, err)
		assert.NotEmpty(t, code)
		require.NotNil(t, created)
		assert.Equal(t, shared.CustomParticipantConfirmed, created.Status)
	})
}

func TestSellerAccept(t *testing.T) {
	t.Run("completes and issues discounts with validity window", func(t *testing.T) {
		deal := pendingSellerDeal(30)
		seats := []*shared.CustomParticipant{
			{ID: uuid.New(), DealID: deal.ID(), Status: shared.CustomParticipantConfirmed},
			{ID: uuid.New(), DealID: deal.ID(), Status: shared.CustomParticipantConfirmed},
		}
		var attached []uuid.UUID
		var gotValidUntil *time.Time

		tx := &fakeTx{
			customDeals: &fakeCustomDealRepo{
				findByIDForUpdate: func(context.Context, uuid.UUID) (*customdeal.CustomDeal, error) {
					return deal, nil
				},
				save: func(context.Context, *customdeal.CustomDeal) error { return nil },
			},
			customParticipants: &fakeCustomParticipantRepo{
				findByDeal: func(context.Context, uuid.UUID) ([]*shared.CustomParticipant, error) {
					return seats, nil
				},
				attachDiscount: func(_ context.Context, participantID uuid.UUID, link, code string, validUntil *time.Time) error {
					attached = append(attached, participantID)
					gotValidUntil = validUntil
					assert.Equal(t, "https://deal.example.com/offer", link)
					return nil
				},
			},
		}

		cmds := NewCustomDealCommands(&fakeUOW{tx: tx}, &fakeNotifier{}, clock.NewMockClock(testNow))
		require.NoError(t, cmds.SellerAccept(context.Background(), deal.ID(), deal.SellerID()))
		assert.Equal(t, customdeal.StatusCompleted, deal.Status())
		assert.Len(t, attached, 2)
		require.NotNil(t, gotValidUntil)
		assert.Equal(t, testNow.AddDate(0, 0, 30), *gotValidUntil)
	})

	t.Run("cancelled seats get no discount", func(t *testing.T) {
		deal := pendingSellerDeal(0)
		seats := []*shared.CustomParticipant{
			{ID: uuid.New(), DealID: deal.ID(), Status: shared.CustomParticipantConfirmed},
			{ID: uuid.New(), DealID: deal.ID(), Status: shared.CustomParticipantCancelled},
		}
		var attached []uuid.UUID

		tx := &fakeTx{
			customDeals: &fakeCustomDealRepo{
				findByIDForUpdate: func(context.Context, uuid.UUID) (*customdeal.CustomDeal, error) {
					return deal, nil
				},
				save: func(context.Context, *customdeal.CustomDeal) error { return nil },
			},
			customParticipants: &fakeCustomParticipantRepo{
				findByDeal: func(context.Context, uuid.UUID) ([]*shared.CustomParticipant, error) {
					return seats, nil
				},
				attachDiscount: func(_ context.Context, participantID uuid.UUID, _, _ string, validUntil *time.Time) error {
					attached = append(attached, participantID)
					assert.Nil(t, validUntil)
					return nil
				},
			},
		}

		cmds := NewCustomDealCommands(&fakeUOW{tx: tx}, &fakeNotifier{}, clock.NewMockClock(testNow))
		require.NoError(t, cmds.SellerAccept(context.Background(), deal.ID(), deal.SellerID()))
		require.Len(t, attached, 1)
		assert.Equal(t, seats[0].ID, attached[0])
	})
}

func TestSellerDecline(t *testing.T) {
	t.Run("cancels every confirmed seat", func(t *testing.T) {
		deal := pendingSellerDeal(0)
		var cancelledDeal uuid.UUID
		var saved *customdeal.CustomDeal

		tx := &fakeTx{
			customDeals: &fakeCustomDealRepo{
				findByIDForUpdate: func(context.Context, uuid.UUID) (*customdeal.CustomDeal, error) {
					return deal, nil
				},
				save: func(_ context.Context, d *customdeal.CustomDeal) error {
					saved = d
					return nil
				},
			},
			customParticipants: &fakeCustomParticipantRepo{
				cancelByDeal: func(_ context.Context, dealID uuid.UUID) (int64, error) {
					cancelledDeal = dealID
					return 2, nil
				},
			},
		}

		cmds := NewCustomDealCommands(&fakeUOW{tx: tx}, &fakeNotifier{}, clock.NewMockClock(testNow))
		require.NoError(t, cmds.SellerDecline(context.Background(), deal.ID(), deal.SellerID()))
		assert.Equal(t, deal.ID(), cancelledDeal)
		require.NotNil(t, saved)
		assert.Equal(t, customdeal.StatusCancelled, saved.Status())
		assert.Equal(t, 0, saved.CurrentParticipants())
	})

	t.Run("only the seller may decline", func(t *testing.T) {
		deal := pendingSellerDeal(0)
		tx := &fakeTx{
			customDeals: &fakeCustomDealRepo{
				findByIDForUpdate: func(context.Context, uuid.UUID) (*customdeal.CustomDeal, error) {
					return deal, nil
				},
			},
		}

		cmds := NewCustomDealCommands(&fakeUOW{tx: tx}, &fakeNotifier{}, clock.NewMockClock(testNow))
		err := cmds.SellerDecline(context.Background(), deal.ID(), uuid.New())
		require.ErrorIs(t, err, errs.ErrNotCustomDealSeller)
	})
}
