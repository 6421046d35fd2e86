package groupbuy

import (
	"time"

	"dungji-market/internal/domain/bid"
	"dungji-market/internal/domain/participation"

	"github.com/google/uuid"
)

// SellerPenaltyWaiverRate: a declining seller is not penalized when at most
// this share of buyers had confirmed. Above it the decline burns real buyer
// commitment and draws a penalty.
const SellerPenaltyWaiverRate = 0.5

// Cancel reasons persisted on the groupbuy row.
const (
	CancelReasonNoBids           = "no_bids"
	CancelReasonBelowMinimum     = "below_min_participants"
	CancelReasonNoBuyerConfirmed = "no_buyer_confirmed"
	CancelReasonSellerDeclined   = "seller_declined"
	CancelReasonSellerTimeout    = "seller_timeout"
	CancelReasonCreatorCancelled = "creator_cancelled"
	CancelReasonSellerNoShow     = "seller_noshow"
	CancelReasonAllBuyersNoShow  = "all_buyers_noshow"
)

// NoticeKind identifies the notification fanned out after a transition commits.
type NoticeKind string

const (
	NoticeBidSelected        NoticeKind = "bid_selected"
	NoticeBidRejected        NoticeKind = "bid_rejected"
	NoticeBuyerDecisionOpen  NoticeKind = "buyer_decision_open"
	NoticeSellerDecisionOpen NoticeKind = "seller_decision_open"
	NoticeCompleted          NoticeKind = "completed"
	NoticeCancelled          NoticeKind = "cancelled"
)

// Audience selects who receives a notice. Winning and losing sellers learn
// different things from the same transition, so each notice carries its own
// audience instead of broadcasting.
type Audience string

const (
	// AudienceBuyers: the creator plus every active participant.
	AudienceBuyers Audience = "buyers"
	// AudienceWinner: the seller behind the selected bid.
	AudienceWinner Audience = "winner"
	// AudienceLosers: sellers whose bids were rejected.
	AudienceLosers Audience = "losers"
	// AudienceParties: buyers plus the winning seller.
	AudienceParties Audience = "parties"
)

// Notice pairs a notification kind with the audience it goes to.
type Notice struct {
	Kind     NoticeKind
	Audience Audience
}

// Effect describes the state changes a transition requires. Commands apply
// it inside a single transaction; the evaluation itself touches no storage.
type Effect struct {
	Status             Status
	FinalSelectionEnd  *time.Time
	SellerSelectionEnd *time.Time
	SelectedBidID      *uuid.UUID
	RejectedBidIDs     []uuid.UUID
	// ForceCancelPending cancels participants that never answered during the
	// buyer selection window.
	ForceCancelPending bool
	// ConfirmSelectedBid moves the selected bid to confirmed.
	ConfirmSelectedBid bool
	// ForfeitSelectedBid moves the selected bid to forfeited.
	ForfeitSelectedBid bool
	// RefundBidToken returns the single-use token consumed by the selected bid.
	RefundBidToken bool
	// PenalizeSellerID receives a penalty when set.
	PenalizeSellerID *uuid.UUID
	PenaltyReason    string
	CancelReason     string
	Notices          []Notice
}

// Evaluate decides the deadline-driven transition for a group purchase.
// It returns nil when no deadline has passed. Callers load the row with a
// lock, apply the returned effect in the same transaction, and dispatch
// notices only after commit.
func Evaluate(g *GroupBuy, bids []*bid.Bid, parts []*participation.Participation, now time.Time) *Effect {
	switch g.status {
	case StatusRecruiting:
		if now.Before(g.endTime) {
			return nil
		}
		return evaluateRecruitingEnd(g, bids)
	case StatusFinalSelectionBuyers:
		if g.finalSelectionEnd == nil || now.Before(*g.finalSelectionEnd) {
			return nil
		}
		return evaluateBuyerWindowEnd(g, parts, now)
	case StatusFinalSelectionSeller:
		if g.sellerSelectionEnd == nil || now.Before(*g.sellerSelectionEnd) {
			return nil
		}
		return evaluateSellerTimeout(g, bids)
	default:
		return nil
	}
}

func evaluateRecruitingEnd(g *GroupBuy, bids []*bid.Bid) *Effect {
	if g.currentParticipants < g.minParticipants {
		return &Effect{
			Status:       StatusCancelled,
			CancelReason: CancelReasonBelowMinimum,
			Notices:      []Notice{{NoticeCancelled, AudienceBuyers}},
		}
	}

	winner := bid.Best(bids, g.Ranking())
	if winner == nil {
		return &Effect{
			Status:       StatusCancelled,
			CancelReason: CancelReasonNoBids,
			Notices:      []Notice{{NoticeCancelled, AudienceBuyers}},
		}
	}

	winnerID := winner.ID()
	var rejected []uuid.UUID
	for _, b := range bids {
		if b.Status() == bid.StatusPending && b.ID() != winnerID {
			rejected = append(rejected, b.ID())
		}
	}

	deadline := g.endTime.Add(BuyerSelectionWindow)
	return &Effect{
		Status:            StatusFinalSelectionBuyers,
		FinalSelectionEnd: &deadline,
		SelectedBidID:     &winnerID,
		RejectedBidIDs:    rejected,
		Notices: []Notice{
			{NoticeBidSelected, AudienceWinner},
			{NoticeBidRejected, AudienceLosers},
			{NoticeBuyerDecisionOpen, AudienceBuyers},
		},
	}
}

func evaluateBuyerWindowEnd(g *GroupBuy, parts []*participation.Participation, now time.Time) *Effect {
	_, confirmed, _ := participation.CountByDecision(parts)
	if confirmed == 0 {
		return &Effect{
			Status:             StatusCancelled,
			ForceCancelPending: true,
			ForfeitSelectedBid: true,
			RefundBidToken:     true,
			CancelReason:       CancelReasonNoBuyerConfirmed,
			Notices:            []Notice{{NoticeCancelled, AudienceParties}},
		}
	}

	deadline := now.Add(SellerSelectionWindow)
	return &Effect{
		Status:             StatusFinalSelectionSeller,
		SellerSelectionEnd: &deadline,
		ForceCancelPending: true,
		Notices:            []Notice{{NoticeSellerDecisionOpen, AudienceWinner}},
	}
}

func evaluateSellerTimeout(g *GroupBuy, bids []*bid.Bid) *Effect {
	eff := &Effect{
		Status:             StatusCancelled,
		ForfeitSelectedBid: true,
		CancelReason:       CancelReasonSellerTimeout,
		PenaltyReason:      "seller selection timeout",
		Notices:            []Notice{{NoticeCancelled, AudienceParties}},
	}
	// Letting the window lapse always draws a penalty; waiver applies to
	// explicit declines only.
	if g.selectedBidID != nil {
		for _, b := range bids {
			if b.ID() == *g.selectedBidID {
				sellerID := b.SellerID()
				eff.PenalizeSellerID = &sellerID
				break
			}
		}
	}
	return eff
}

// EvaluateBuyerConsensus checks whether every buyer has answered before the
// window closed, allowing the seller window to open early. Returns nil while
// answers are still outstanding.
func EvaluateBuyerConsensus(g *GroupBuy, parts []*participation.Participation, now time.Time) *Effect {
	if g.status != StatusFinalSelectionBuyers {
		return nil
	}
	pending, confirmed, _ := participation.CountByDecision(parts)
	if pending > 0 {
		return nil
	}
	if confirmed == 0 {
		return &Effect{
			Status:             StatusCancelled,
			ForfeitSelectedBid: true,
			RefundBidToken:     true,
			CancelReason:       CancelReasonNoBuyerConfirmed,
			Notices:            []Notice{{NoticeCancelled, AudienceParties}},
		}
	}
	deadline := now.Add(SellerSelectionWindow)
	return &Effect{
		Status:             StatusFinalSelectionSeller,
		SellerSelectionEnd: &deadline,
		Notices:            []Notice{{NoticeSellerDecisionOpen, AudienceWinner}},
	}
}

// SellerConfirm is the winning seller accepting inside their window.
func SellerConfirm(g *GroupBuy, now time.Time) (*Effect, error) {
	if g.status != StatusFinalSelectionSeller {
		return nil, ErrNotAwaitingSeller
	}
	if g.sellerSelectionEnd != nil && !now.Before(*g.sellerSelectionEnd) {
		return nil, ErrSellerWindowOver
	}
	return &Effect{
		Status:             StatusCompleted,
		ConfirmSelectedBid: true,
		Notices:            []Notice{{NoticeCompleted, AudienceParties}},
	}, nil
}

// SellerDecline is the winning seller backing out. The penalty is waived and
// the bid token refunded when buyer commitment stayed at or below the waiver
// rate.
func SellerDecline(g *GroupBuy, parts []*participation.Participation, sellerID uuid.UUID, now time.Time) (*Effect, error) {
	if g.status != StatusFinalSelectionSeller {
		return nil, ErrNotAwaitingSeller
	}
	if g.sellerSelectionEnd != nil && !now.Before(*g.sellerSelectionEnd) {
		return nil, ErrSellerWindowOver
	}

	eff := &Effect{
		Status:             StatusCancelled,
		ForfeitSelectedBid: true,
		CancelReason:       CancelReasonSellerDeclined,
		Notices:            []Notice{{NoticeCancelled, AudienceParties}},
	}
	if participation.ConfirmationRate(parts) > SellerPenaltyWaiverRate {
		eff.PenalizeSellerID = &sellerID
		eff.PenaltyReason = "seller declined after majority buyer confirmation"
	} else {
		eff.RefundBidToken = true
	}
	return eff, nil
}
