//go:build unit

package commands

import (
	"context"
	"testing"
	"time"

	"dungji-market/internal/domain/groupbuy"
	"dungji-market/internal/domain/participation"
	"dungji-market/internal/domain/penalty"
	"dungji-market/internal/pkg/clock"
	"dungji-market/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recruitingGroupBuy() *groupbuy.GroupBuy {
	return groupbuy.Reconstruct(groupbuy.ReconstructParams{
		ID:                  uuid.New(),
		CreatorID:           uuid.New(),
		Title:               "Galaxy S25 group purchase",
		ProductName:         "Galaxy S25",
		ProductType:         groupbuy.ProductTypePrice,
		StartingAmount:      500000,
		MinParticipants:     2,
		MaxParticipants:     10,
		CurrentParticipants: 3,
		Region:              "Seoul",
		Status:              groupbuy.StatusRecruiting,
		StartTime:           testNow.Add(-time.Hour),
		EndTime:             testNow.Add(24 * time.Hour),
		CreatedAt:           testNow.Add(-time.Hour),
		UpdatedAt:           testNow.Add(-time.Hour),
	})
}

func TestGroupBuyJoin(t *testing.T) {
	noPenalty := &fakePenaltyRepo{
		findActiveByUser: func(context.Context, uuid.UUID, time.Time) (*penalty.Penalty, error) {
			return nil, notFoundErr("no active penalty")
		},
	}

	t.Run("rejected when buyer holds a seat for the same product elsewhere", func(t *testing.T) {
		gb := recruitingGroupBuy()
		buyerID := uuid.New()

		tx := &fakeTx{
			groupBuys: &fakeGroupBuyRepo{
				findByIDForUpdate: func(context.Context, uuid.UUID) (*groupbuy.GroupBuy, error) {
					return gb, nil
				},
			},
			penalties: noPenalty,
			participations: &fakeParticipationRepo{
				existsActiveForProduct: func(_ context.Context, gotBuyer uuid.UUID, productName string, exclude uuid.UUID) (bool, error) {
					assert.Equal(t, buyerID, gotBuyer)
					assert.Equal(t, "Galaxy S25", productName)
					assert.Equal(t, gb.ID(), exclude)
					return true, nil
				},
			},
		}

		cmds := NewGroupBuyCommands(&fakeUOW{tx: tx}, &fakeNotifier{}, clock.NewMockClock(testNow))
		err := cmds.Join(context.Background(), gb.ID(), buyerID)
		require.ErrorIs(t, err, errs.ErrProductConflict)
	})

	t.Run("joins when no other seat holds the product", func(t *testing.T) {
		gb := recruitingGroupBuy()
		var createdSeat *participation.Participation
		incremented := 0

		tx := &fakeTx{
			groupBuys: &fakeGroupBuyRepo{
				findByIDForUpdate: func(context.Context, uuid.UUID) (*groupbuy.GroupBuy, error) {
					return gb, nil
				},
				incrementParticipants: func(_ context.Context, _ uuid.UUID, delta int) error {
					incremented += delta
					return nil
				},
			},
			penalties: noPenalty,
			participations: &fakeParticipationRepo{
				existsActiveForProduct: func(context.Context, uuid.UUID, string, uuid.UUID) (bool, error) {
					return false, nil
				},
				create: func(_ context.Context, p *participation.Participation) error {
					createdSeat = p
					return nil
				},
			},
		}

		cmds := NewGroupBuyCommands(&fakeUOW{tx: tx}, &fakeNotifier{}, clock.NewMockClock(testNow))
		require.NoError(t, cmds.Join(context.Background(), gb.ID(), uuid.New()))
		require.NotNil(t, createdSeat)
		assert.Equal(t, gb.ID(), createdSeat.GroupBuyID)
		assert.Equal(t, 1, incremented)
	})
}
