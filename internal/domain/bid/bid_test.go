//go:build unit

package bid_test

import (
	"testing"
	"time"

	"dungji-market/internal/domain/bid"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func pendingBid(t *testing.T, amount int64, createdAt time.Time) *bid.Bid {
	t.Helper()
	b, err := bid.New(uuid.New(), uuid.New(), amount, "", nil, createdAt)
	require.NoError(t, err)
	return b
}

func TestNew(t *testing.T) {
	t.Run("starts pending", func(t *testing.T) {
		b := pendingBid(t, 550000, baseTime)
		assert.Equal(t, bid.StatusPending, b.Status())
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		_, err := bid.New(uuid.New(), uuid.New(), 0, "", nil, baseTime)
		require.ErrorIs(t, err, bid.ErrNonPositiveAmount)
	})
}

func TestRebid(t *testing.T) {
	t.Run("updates amount and token while pending", func(t *testing.T) {
		b := pendingBid(t, 550000, baseTime)
		newToken := uuid.New()

		err := b.Rebid(500000, "최종가입니다", &newToken, baseTime.Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, int64(500000), b.Amount())
		assert.Equal(t, &newToken, b.TokenID())
		assert.Equal(t, baseTime.Add(time.Hour), b.UpdatedAt())
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		b := pendingBid(t, 550000, baseTime)
		err := b.Rebid(0, "", nil, baseTime)
		require.ErrorIs(t, err, bid.ErrNonPositiveAmount)
	})
}

func TestBest(t *testing.T) {
	t.Run("lowest amount wins price deals", func(t *testing.T) {
		cheap := pendingBid(t, 500000, baseTime)
		expensive := pendingBid(t, 600000, baseTime)

		got := bid.Best([]*bid.Bid{expensive, cheap}, bid.RankLowestAmount)
		assert.Equal(t, cheap.ID(), got.ID())
	})

	t.Run("highest amount wins support deals", func(t *testing.T) {
		small := pendingBid(t, 100000, baseTime)
		big := pendingBid(t, 300000, baseTime)

		got := bid.Best([]*bid.Bid{small, big}, bid.RankHighestAmount)
		assert.Equal(t, big.ID(), got.ID())
	})

	t.Run("tie broken by earliest placement", func(t *testing.T) {
		first := pendingBid(t, 500000, baseTime)
		second := pendingBid(t, 500000, baseTime.Add(time.Minute))

		got := bid.Best([]*bid.Bid{second, first}, bid.RankLowestAmount)
		assert.Equal(t, first.ID(), got.ID())
	})

	t.Run("ignores non-pending bids", func(t *testing.T) {
		cancelled := bid.Reconstruct(
			uuid.New(), uuid.New(), uuid.New(),
			400000, "", bid.StatusCancelled, nil, baseTime, baseTime,
		)
		pending := pendingBid(t, 500000, baseTime)

		got := bid.Best([]*bid.Bid{cancelled, pending}, bid.RankLowestAmount)
		assert.Equal(t, pending.ID(), got.ID())
	})

	t.Run("nil when nothing pending", func(t *testing.T) {
		assert.Nil(t, bid.Best(nil, bid.RankLowestAmount))
	})
}

func TestMaskAmount(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{600000, "6*****"},
		{1250000, "1******"},
		{9, "9"},
		{10, "1*"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, bid.MaskAmount(c.amount))
	}
}
