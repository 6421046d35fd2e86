//go:build unit

package groupbuy_test

import (
	"testing"
	"time"

	"dungji-market/internal/domain/bid"
	"dungji-market/internal/domain/groupbuy"
	"dungji-market/internal/domain/participation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	start = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	end   = time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC)
)

func recruitingDeal(t *testing.T, participants int) *groupbuy.GroupBuy {
	t.Helper()
	return groupbuy.Reconstruct(groupbuy.ReconstructParams{
		ID:                  uuid.New(),
		CreatorID:           uuid.New(),
		Title:               "Galaxy S25 group purchase",
		ProductType:         groupbuy.ProductTypePrice,
		MinParticipants:     3,
		MaxParticipants:     10,
		CurrentParticipants: participants,
		Status:              groupbuy.StatusRecruiting,
		StartTime:           start,
		EndTime:             end,
	})
}

func newBid(t *testing.T, gb *groupbuy.GroupBuy, amount int64, at time.Time) *bid.Bid {
	t.Helper()
	b, err := bid.New(gb.ID(), uuid.New(), amount, "", nil, at)
	require.NoError(t, err)
	return b
}

func TestEvaluate_Recruiting(t *testing.T) {
	t.Run("no effect before deadline", func(t *testing.T) {
		gb := recruitingDeal(t, 5)
		eff := groupbuy.Evaluate(gb, nil, nil, end.Add(-time.Minute))
		assert.Nil(t, eff)
	})

	t.Run("below minimum cancels", func(t *testing.T) {
		gb := recruitingDeal(t, 2)
		eff := groupbuy.Evaluate(gb, nil, nil, end)
		require.NotNil(t, eff)
		assert.Equal(t, groupbuy.StatusCancelled, eff.Status)
		assert.Equal(t, groupbuy.CancelReasonBelowMinimum, eff.CancelReason)
	})

	t.Run("no bids cancels", func(t *testing.T) {
		gb := recruitingDeal(t, 5)
		eff := groupbuy.Evaluate(gb, nil, nil, end)
		require.NotNil(t, eff)
		assert.Equal(t, groupbuy.StatusCancelled, eff.Status)
		assert.Equal(t, groupbuy.CancelReasonNoBids, eff.CancelReason)
	})

	t.Run("selects single winner and opens 12h buyer window", func(t *testing.T) {
		gb := recruitingDeal(t, 5)
		cheap := newBid(t, gb, 500000, start.Add(time.Hour))
		mid := newBid(t, gb, 550000, start.Add(2*time.Hour))
		costly := newBid(t, gb, 600000, start.Add(3*time.Hour))

		eff := groupbuy.Evaluate(gb, []*bid.Bid{mid, costly, cheap}, nil, end)
		require.NotNil(t, eff)
		assert.Equal(t, groupbuy.StatusFinalSelectionBuyers, eff.Status)
		require.NotNil(t, eff.SelectedBidID)
		assert.Equal(t, cheap.ID(), *eff.SelectedBidID)
		assert.ElementsMatch(t, []uuid.UUID{mid.ID(), costly.ID()}, eff.RejectedBidIDs)
		require.NotNil(t, eff.FinalSelectionEnd)
		assert.Equal(t, end.Add(12*time.Hour), *eff.FinalSelectionEnd)
	})
}

func buyerWindowDeal(t *testing.T, selected uuid.UUID) *groupbuy.GroupBuy {
	t.Helper()
	deadline := end.Add(12 * time.Hour)
	return groupbuy.Reconstruct(groupbuy.ReconstructParams{
		ID:                  uuid.New(),
		CreatorID:           uuid.New(),
		Title:               "Galaxy S25 group purchase",
		ProductType:         groupbuy.ProductTypePrice,
		MinParticipants:     3,
		MaxParticipants:     10,
		CurrentParticipants: 5,
		Status:              groupbuy.StatusFinalSelectionBuyers,
		StartTime:           start,
		EndTime:             end,
		FinalSelectionEnd:   &deadline,
		SelectedBidID:       &selected,
	})
}

func decidedParticipation(gb uuid.UUID, d participation.Decision) *participation.Participation {
	p := participation.New(gb, uuid.New(), start)
	switch d {
	case participation.DecisionConfirmed:
		_ = p.Decide(true, start.Add(time.Hour))
	case participation.DecisionCancelled:
		_ = p.Decide(false, start.Add(time.Hour))
	}
	return p
}

func TestEvaluate_BuyerWindowEnd(t *testing.T) {
	selected := uuid.New()
	deadline := end.Add(12 * time.Hour)

	t.Run("some confirmed opens 6h seller window and cancels pending", func(t *testing.T) {
		gb := buyerWindowDeal(t, selected)
		parts := []*participation.Participation{
			decidedParticipation(gb.ID(), participation.DecisionConfirmed),
			decidedParticipation(gb.ID(), participation.DecisionPending),
		}

		eff := groupbuy.Evaluate(gb, nil, parts, deadline)
		require.NotNil(t, eff)
		assert.Equal(t, groupbuy.StatusFinalSelectionSeller, eff.Status)
		assert.True(t, eff.ForceCancelPending)
		require.NotNil(t, eff.SellerSelectionEnd)
		assert.Equal(t, deadline.Add(6*time.Hour), *eff.SellerSelectionEnd)
	})

	t.Run("nobody confirmed cancels and refunds bid token", func(t *testing.T) {
		gb := buyerWindowDeal(t, selected)
		parts := []*participation.Participation{
			decidedParticipation(gb.ID(), participation.DecisionPending),
			decidedParticipation(gb.ID(), participation.DecisionCancelled),
		}

		eff := groupbuy.Evaluate(gb, nil, parts, deadline)
		require.NotNil(t, eff)
		assert.Equal(t, groupbuy.StatusCancelled, eff.Status)
		assert.True(t, eff.RefundBidToken)
		assert.True(t, eff.ForfeitSelectedBid)
		assert.Equal(t, groupbuy.CancelReasonNoBuyerConfirmed, eff.CancelReason)
	})
}

func TestEvaluate_SellerTimeout(t *testing.T) {
	gb := recruitingDeal(t, 5)
	winning := newBid(t, gb, 500000, start.Add(time.Hour))
	winningID := winning.ID()
	sellerDeadline := end.Add(18 * time.Hour)

	deal := groupbuy.Reconstruct(groupbuy.ReconstructParams{
		ID:                  gb.ID(),
		CreatorID:           gb.CreatorID(),
		Title:               gb.Title(),
		ProductType:         gb.ProductType(),
		MinParticipants:     3,
		MaxParticipants:     10,
		CurrentParticipants: 5,
		Status:              groupbuy.StatusFinalSelectionSeller,
		StartTime:           start,
		EndTime:             end,
		SellerSelectionEnd:  &sellerDeadline,
		SelectedBidID:       &winningID,
	})

	eff := groupbuy.Evaluate(deal, []*bid.Bid{winning}, nil, sellerDeadline)
	require.NotNil(t, eff)
	assert.Equal(t, groupbuy.StatusCancelled, eff.Status)
	assert.True(t, eff.ForfeitSelectedBid)
	assert.False(t, eff.RefundBidToken)
	require.NotNil(t, eff.PenalizeSellerID)
	assert.Equal(t, winning.SellerID(), *eff.PenalizeSellerID)
}

func TestEvaluate_ClosedIsIdempotent(t *testing.T) {
	for _, status := range []groupbuy.Status{groupbuy.StatusCompleted, groupbuy.StatusCancelled} {
		gb := groupbuy.Reconstruct(groupbuy.ReconstructParams{
			ID:        uuid.New(),
			Status:    status,
			StartTime: start,
			EndTime:   end,
		})
		assert.Nil(t, groupbuy.Evaluate(gb, nil, nil, end.Add(100*time.Hour)))
	}
}

func TestEvaluateBuyerConsensus(t *testing.T) {
	selected := uuid.New()
	now := end.Add(time.Hour)

	t.Run("waits while answers outstanding", func(t *testing.T) {
		gb := buyerWindowDeal(t, selected)
		parts := []*participation.Participation{
			decidedParticipation(gb.ID(), participation.DecisionConfirmed),
			decidedParticipation(gb.ID(), participation.DecisionPending),
		}
		assert.Nil(t, groupbuy.EvaluateBuyerConsensus(gb, parts, now))
	})

	t.Run("all answered opens seller window early", func(t *testing.T) {
		gb := buyerWindowDeal(t, selected)
		parts := []*participation.Participation{
			decidedParticipation(gb.ID(), participation.DecisionConfirmed),
			decidedParticipation(gb.ID(), participation.DecisionCancelled),
		}
		eff := groupbuy.EvaluateBuyerConsensus(gb, parts, now)
		require.NotNil(t, eff)
		assert.Equal(t, groupbuy.StatusFinalSelectionSeller, eff.Status)
		require.NotNil(t, eff.SellerSelectionEnd)
		assert.Equal(t, now.Add(6*time.Hour), *eff.SellerSelectionEnd)
	})

	t.Run("all declined cancels with refund", func(t *testing.T) {
		gb := buyerWindowDeal(t, selected)
		parts := []*participation.Participation{
			decidedParticipation(gb.ID(), participation.DecisionCancelled),
		}
		eff := groupbuy.EvaluateBuyerConsensus(gb, parts, now)
		require.NotNil(t, eff)
		assert.Equal(t, groupbuy.StatusCancelled, eff.Status)
		assert.True(t, eff.RefundBidToken)
	})
}

func sellerWindowDeal(selected uuid.UUID, deadline time.Time) *groupbuy.GroupBuy {
	return groupbuy.Reconstruct(groupbuy.ReconstructParams{
		ID:                 uuid.New(),
		Status:             groupbuy.StatusFinalSelectionSeller,
		StartTime:          start,
		EndTime:            end,
		SellerSelectionEnd: &deadline,
		SelectedBidID:      &selected,
	})
}

func TestSellerConfirm(t *testing.T) {
	selected := uuid.New()
	deadline := end.Add(18 * time.Hour)

	t.Run("completes inside window", func(t *testing.T) {
		gb := sellerWindowDeal(selected, deadline)
		eff, err := groupbuy.SellerConfirm(gb, deadline.Add(-time.Hour))
		require.NoError(t, err)
		assert.Equal(t, groupbuy.StatusCompleted, eff.Status)
		assert.True(t, eff.ConfirmSelectedBid)
	})

	t.Run("rejected after window", func(t *testing.T) {
		gb := sellerWindowDeal(selected, deadline)
		_, err := groupbuy.SellerConfirm(gb, deadline)
		require.ErrorIs(t, err, groupbuy.ErrSellerWindowOver)
	})

	t.Run("rejected in wrong status", func(t *testing.T) {
		gb := recruitingDeal(t, 5)
		_, err := groupbuy.SellerConfirm(gb, end)
		require.ErrorIs(t, err, groupbuy.ErrNotAwaitingSeller)
	})
}

func TestSellerDecline(t *testing.T) {
	selected := uuid.New()
	sellerID := uuid.New()
	deadline := end.Add(18 * time.Hour)
	now := deadline.Add(-time.Hour)

	t.Run("majority confirmed draws penalty", func(t *testing.T) {
		gb := sellerWindowDeal(selected, deadline)
		parts := []*participation.Participation{
			decidedParticipation(gb.ID(), participation.DecisionConfirmed),
			decidedParticipation(gb.ID(), participation.DecisionConfirmed),
			decidedParticipation(gb.ID(), participation.DecisionCancelled),
		}
		eff, err := groupbuy.SellerDecline(gb, parts, sellerID, now)
		require.NoError(t, err)
		require.NotNil(t, eff.PenalizeSellerID)
		assert.Equal(t, sellerID, *eff.PenalizeSellerID)
		assert.False(t, eff.RefundBidToken)
	})

	t.Run("half or less confirmed waives penalty and refunds", func(t *testing.T) {
		gb := sellerWindowDeal(selected, deadline)
		parts := []*participation.Participation{
			decidedParticipation(gb.ID(), participation.DecisionConfirmed),
			decidedParticipation(gb.ID(), participation.DecisionCancelled),
		}
		eff, err := groupbuy.SellerDecline(gb, parts, sellerID, now)
		require.NoError(t, err)
		assert.Nil(t, eff.PenalizeSellerID)
		assert.True(t, eff.RefundBidToken)
	})
}

func TestNormalizeStatus(t *testing.T) {
	cases := map[string]groupbuy.Status{
		"bidding":             groupbuy.StatusRecruiting,
		"voting":              groupbuy.StatusFinalSelectionBuyers,
		"seller_confirmation": groupbuy.StatusFinalSelectionSeller,
		"recruiting":          groupbuy.StatusRecruiting,
		"completed":           groupbuy.StatusCompleted,
	}
	for raw, want := range cases {
		assert.Equal(t, want, groupbuy.NormalizeStatus(raw))
	}
}

func TestNoticeAudiences(t *testing.T) {
	t.Run("recruiting end routes each notice to its own audience", func(t *testing.T) {
		gb := recruitingDeal(t, 5)
		winner := newBid(t, gb, 500000, start.Add(time.Hour))
		loser := newBid(t, gb, 600000, start.Add(2*time.Hour))

		eff := groupbuy.Evaluate(gb, []*bid.Bid{winner, loser}, nil, end)
		require.NotNil(t, eff)
		assert.ElementsMatch(t, []groupbuy.Notice{
			{Kind: groupbuy.NoticeBidSelected, Audience: groupbuy.AudienceWinner},
			{Kind: groupbuy.NoticeBidRejected, Audience: groupbuy.AudienceLosers},
			{Kind: groupbuy.NoticeBuyerDecisionOpen, Audience: groupbuy.AudienceBuyers},
		}, eff.Notices)
	})

	t.Run("cancel before a winner exists stays with buyers", func(t *testing.T) {
		gb := recruitingDeal(t, 2)
		eff := groupbuy.Evaluate(gb, nil, nil, end)
		require.NotNil(t, eff)
		assert.Equal(t, []groupbuy.Notice{
			{Kind: groupbuy.NoticeCancelled, Audience: groupbuy.AudienceBuyers},
		}, eff.Notices)
	})

	t.Run("seller window opening goes to the winner only", func(t *testing.T) {
		selected := uuid.New()
		gb := buyerWindowDeal(t, selected)
		parts := []*participation.Participation{
			decidedParticipation(gb.ID(), participation.DecisionConfirmed),
		}
		eff := groupbuy.Evaluate(gb, nil, parts, end.Add(12*time.Hour))
		require.NotNil(t, eff)
		assert.Equal(t, []groupbuy.Notice{
			{Kind: groupbuy.NoticeSellerDecisionOpen, Audience: groupbuy.AudienceWinner},
		}, eff.Notices)
	})

	t.Run("completion reaches buyers and the winner", func(t *testing.T) {
		selected := uuid.New()
		deadline := end.Add(18 * time.Hour)
		gb := sellerWindowDeal(selected, deadline)
		eff, err := groupbuy.SellerConfirm(gb, deadline.Add(-time.Hour))
		require.NoError(t, err)
		assert.Equal(t, []groupbuy.Notice{
			{Kind: groupbuy.NoticeCompleted, Audience: groupbuy.AudienceParties},
		}, eff.Notices)
	})
}
