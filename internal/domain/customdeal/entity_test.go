//go:build unit

package customdeal_test

import (
	"regexp"
	"testing"
	"time"

	"dungji-market/internal/domain/customdeal"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func onlineDeal(t *testing.T, target int) *customdeal.CustomDeal {
	t.Helper()
	d, err := customdeal.New(customdeal.NewParams{
		SellerID:           uuid.New(),
		Title:              "Chicken set 30% off",
		Kind:               customdeal.KindOnline,
		DiscountType:       customdeal.DiscountLinkOnly,
		DiscountLink:       "https://deal.example.com/chicken",
		TargetParticipants: target,
		WaitHours:          48,
	}, now)
	require.NoError(t, err)
	return d
}

func partialSaleDeal(t *testing.T, target int) *customdeal.CustomDeal {
	t.Helper()
	d, err := customdeal.New(customdeal.NewParams{
		SellerID:           uuid.New(),
		Title:              "Salon visit discount",
		Kind:               customdeal.KindOffline,
		DiscountType:       customdeal.DiscountCodeOnly,
		TargetParticipants: target,
		WaitHours:          48,
		AllowPartialSale:   true,
	}, now)
	require.NoError(t, err)
	return d
}

func TestNew(t *testing.T) {
	t.Run("target out of range", func(t *testing.T) {
		_, err := customdeal.New(customdeal.NewParams{
			SellerID:           uuid.New(),
			Kind:               customdeal.KindOnline,
			DiscountType:       customdeal.DiscountLinkOnly,
			DiscountLink:       "https://x",
			TargetParticipants: 1,
			WaitHours:          48,
		}, now)
		require.ErrorIs(t, err, customdeal.ErrInvalidTarget)
	})

	t.Run("wait hours out of range", func(t *testing.T) {
		_, err := customdeal.New(customdeal.NewParams{
			SellerID:           uuid.New(),
			Kind:               customdeal.KindOnline,
			DiscountType:       customdeal.DiscountLinkOnly,
			DiscountLink:       "https://x",
			TargetParticipants: 3,
			WaitHours:          12,
		}, now)
		require.ErrorIs(t, err, customdeal.ErrInvalidWaitHours)
	})

	t.Run("link required for link discounts", func(t *testing.T) {
		_, err := customdeal.New(customdeal.NewParams{
			SellerID:           uuid.New(),
			Kind:               customdeal.KindOnline,
			DiscountType:       customdeal.DiscountBoth,
			TargetParticipants: 3,
			WaitHours:          48,
		}, now)
		require.ErrorIs(t, err, customdeal.ErrMissingLink)
	})
}

func TestJoin(t *testing.T) {
	t.Run("completes when target reached", func(t *testing.T) {
		d := onlineDeal(t, 2)

		completed, err := d.Join(now)
		require.NoError(t, err)
		assert.False(t, completed)

		completed, err = d.Join(now.Add(time.Minute))
		require.NoError(t, err)
		assert.True(t, completed)
		assert.Equal(t, customdeal.StatusCompleted, d.Status())
	})

	t.Run("offline deal completes at target too", func(t *testing.T) {
		d := partialSaleDeal(t, 2)

		_, err := d.Join(now)
		require.NoError(t, err)
		completed, err := d.Join(now.Add(time.Minute))
		require.NoError(t, err)
		assert.True(t, completed)
		assert.Equal(t, customdeal.StatusCompleted, d.Status())
		assert.Nil(t, d.SellerDeadline())
	})

	t.Run("join after expiry rejected", func(t *testing.T) {
		d := onlineDeal(t, 5)
		_, err := d.Join(now.Add(49 * time.Hour))
		require.ErrorIs(t, err, customdeal.ErrNotRecruiting)
	})

	t.Run("join after completion rejected", func(t *testing.T) {
		d := onlineDeal(t, 2)
		_, _ = d.Join(now)
		_, _ = d.Join(now)
		_, err := d.Join(now)
		require.ErrorIs(t, err, customdeal.ErrNotRecruiting)
	})
}

func TestEarlyClose(t *testing.T) {
	t.Run("completes at current headcount", func(t *testing.T) {
		d := onlineDeal(t, 5)
		_, err := d.Join(now)
		require.NoError(t, err)

		completed, err := d.EarlyClose(now.Add(time.Hour))
		require.NoError(t, err)
		assert.True(t, completed)
		assert.Equal(t, customdeal.StatusCompleted, d.Status())
	})

	t.Run("offline deal completes immediately, not pending seller", func(t *testing.T) {
		d := partialSaleDeal(t, 5)
		_, err := d.Join(now)
		require.NoError(t, err)

		completed, err := d.EarlyClose(now.Add(time.Hour))
		require.NoError(t, err)
		assert.True(t, completed)
		assert.Equal(t, customdeal.StatusCompleted, d.Status())
		assert.Nil(t, d.SellerDeadline())
	})

	t.Run("requires at least one participant", func(t *testing.T) {
		d := onlineDeal(t, 5)
		_, err := d.EarlyClose(now)
		require.ErrorIs(t, err, customdeal.ErrNoParticipants)
	})
}

func TestEvaluateExpiry(t *testing.T) {
	t.Run("no participants expires", func(t *testing.T) {
		d := partialSaleDeal(t, 5)
		assert.Equal(t, customdeal.OutcomeNone, d.EvaluateExpiry(now.Add(47*time.Hour)))
		assert.Equal(t, customdeal.OutcomeExpired, d.EvaluateExpiry(now.Add(48*time.Hour)))
		assert.Equal(t, customdeal.StatusExpired, d.Status())
	})

	t.Run("partial sale allowed opens seller window", func(t *testing.T) {
		d := partialSaleDeal(t, 5)
		_, err := d.Join(now)
		require.NoError(t, err)

		deadline := now.Add(48 * time.Hour)
		assert.Equal(t, customdeal.OutcomePendingSeller, d.EvaluateExpiry(deadline))
		assert.Equal(t, customdeal.StatusPendingSeller, d.Status())
		require.NotNil(t, d.SellerDeadline())
		assert.Equal(t, deadline.Add(customdeal.SellerDecisionWindow), *d.SellerDeadline())
	})

	t.Run("partial sale not allowed expires with participants", func(t *testing.T) {
		d := onlineDeal(t, 5)
		_, err := d.Join(now)
		require.NoError(t, err)

		assert.Equal(t, customdeal.OutcomeExpired, d.EvaluateExpiry(now.Add(48*time.Hour)))
		assert.Equal(t, customdeal.StatusExpired, d.Status())
	})

	t.Run("pending seller past deadline force-cancels", func(t *testing.T) {
		d := partialSaleDeal(t, 5)
		_, _ = d.Join(now)
		_, _ = d.Join(now)
		require.Equal(t, customdeal.OutcomePendingSeller, d.EvaluateExpiry(now.Add(48*time.Hour)))

		assert.Equal(t, customdeal.OutcomeForceCancelled, d.EvaluateExpiry(now.Add(73*time.Hour)))
		assert.Equal(t, customdeal.StatusCancelled, d.Status())
		assert.Equal(t, 0, d.CurrentParticipants())
	})

	t.Run("closed deals never change", func(t *testing.T) {
		d := onlineDeal(t, 2)
		_, _ = d.Join(now)
		_, _ = d.Join(now)
		assert.Equal(t, customdeal.OutcomeNone, d.EvaluateExpiry(now.Add(1000*time.Hour)))
	})
}

func TestSellerDecision(t *testing.T) {
	pending := func(t *testing.T) *customdeal.CustomDeal {
		d := partialSaleDeal(t, 5)
		_, _ = d.Join(now)
		_, _ = d.Join(now)
		require.Equal(t, customdeal.OutcomePendingSeller, d.EvaluateExpiry(now.Add(48*time.Hour)))
		return d
	}

	t.Run("accept completes", func(t *testing.T) {
		d := pending(t)
		require.NoError(t, d.SellerAccept(now.Add(49*time.Hour)))
		assert.Equal(t, customdeal.StatusCompleted, d.Status())
		assert.Equal(t, 2, d.CurrentParticipants())
	})

	t.Run("decline cancels and resets headcount", func(t *testing.T) {
		d := pending(t)
		require.NoError(t, d.SellerDecline(now.Add(49*time.Hour)))
		assert.Equal(t, customdeal.StatusCancelled, d.Status())
		assert.Equal(t, 0, d.CurrentParticipants())
	})

	t.Run("decision after deadline rejected", func(t *testing.T) {
		d := pending(t)
		err := d.SellerAccept(now.Add(73 * time.Hour))
		require.ErrorIs(t, err, customdeal.ErrDecisionWindowOver)
	})

	t.Run("accept while recruiting rejected", func(t *testing.T) {
		d := partialSaleDeal(t, 5)
		_, _ = d.Join(now)
		err := d.SellerAccept(now.Add(time.Hour))
		require.ErrorIs(t, err, customdeal.ErrNotPendingSeller)
	})
}

func TestNewParticipationCode(t *testing.T) {
	code, err := customdeal.NewParticipationCode(now)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^DJM-2025-[0-9A-HJKMNP-TV-Z]{8}$`), code)
}
