//go:build unit

package token_test

import (
	"testing"
	"time"

	"dungji-market/internal/domain/token"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestBidToken_UseAndRefund(t *testing.T) {
	t.Run("single token is consumed once and refundable", func(t *testing.T) {
		tok := token.New(uuid.New(), token.TypeSingle, now.Add(90*24*time.Hour), nil, now)
		bidID := uuid.New()

		require.NoError(t, tok.Use(bidID, now))
		assert.Equal(t, token.StatusUsed, tok.Status)
		require.NotNil(t, tok.UsedForBid)
		assert.Equal(t, bidID, *tok.UsedForBid)

		// Using it again must fail.
		require.ErrorIs(t, tok.Use(uuid.New(), now), token.ErrNotActive)

		require.NoError(t, tok.Refund())
		assert.Equal(t, token.StatusActive, tok.Status)
		assert.Nil(t, tok.UsedForBid)
		assert.Nil(t, tok.UsedAt)
	})

	t.Run("unlimited token stays active on use", func(t *testing.T) {
		tok := token.New(uuid.New(), token.TypeUnlimited, now.Add(30*24*time.Hour), nil, now)

		require.NoError(t, tok.Use(uuid.New(), now))
		require.NoError(t, tok.Use(uuid.New(), now))
		assert.Equal(t, token.StatusActive, tok.Status)

		require.ErrorIs(t, tok.Refund(), token.ErrTypeMismatch)
	})

	t.Run("expired token is unusable", func(t *testing.T) {
		tok := token.New(uuid.New(), token.TypeSingle, now, nil, now)
		require.ErrorIs(t, tok.Use(uuid.New(), now), token.ErrNotActive)
	})

	t.Run("refund requires used state", func(t *testing.T) {
		tok := token.New(uuid.New(), token.TypeSingle, now.Add(time.Hour), nil, now)
		require.ErrorIs(t, tok.Refund(), token.ErrNotUsed)
	})
}

func TestGrantForPurchase(t *testing.T) {
	cases := []struct {
		amount int64
		want   int
	}{
		{9999, 0},
		{10000, 1},
		{30000, 3},
		{50000, 5 + 0}, // 10% of 5 rounds down to 0
		{60000, 6 + 0},
		{100000, 10 + 2},
		{250000, 25 + 5},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, token.GrantForPurchase(c.amount), "amount %d", c.amount)
	}
}
