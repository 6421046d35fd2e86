package participation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
)

// Decision is the buyer's final answer once a winning bid is posted.
type Decision string

const (
	DecisionPending   Decision = "pending"
	DecisionConfirmed Decision = "confirmed"
	DecisionCancelled Decision = "cancelled"
)

var (
	ErrAlreadyDecided = errors.New("final decision already recorded")
	ErrNotActive      = errors.New("participation is not active")
)

// Participation links a buyer to a group purchase.
type Participation struct {
	ID         uuid.UUID
	GroupBuyID uuid.UUID
	BuyerID    uuid.UUID
	Status     Status
	Decision   Decision
	DecidedAt  *time.Time
	JoinedAt   time.Time
}

func New(groupBuyID, buyerID uuid.UUID, now time.Time) *Participation {
	return &Participation{
		ID:         uuid.New(),
		GroupBuyID: groupBuyID,
		BuyerID:    buyerID,
		Status:     StatusActive,
		Decision:   DecisionPending,
		JoinedAt:   now,
	}
}

// Decide records the buyer's confirm/cancel answer. A decision can be made
// once; the deadline sweep handles buyers who never answer.
func (p *Participation) Decide(confirmed bool, now time.Time) error {
	if p.Status != StatusActive {
		return ErrNotActive
	}
	if p.Decision != DecisionPending {
		return ErrAlreadyDecided
	}
	if confirmed {
		p.Decision = DecisionConfirmed
	} else {
		p.Decision = DecisionCancelled
		p.Status = StatusCancelled
	}
	p.DecidedAt = &now
	return nil
}

// ConfirmationRate returns the share of active participants that confirmed.
// Participants that cancelled before the selection phase are excluded.
func ConfirmationRate(parts []*Participation) float64 {
	var total, confirmed int
	for _, p := range parts {
		if p.Decision == DecisionPending && p.Status != StatusActive {
			continue
		}
		total++
		if p.Decision == DecisionConfirmed {
			confirmed++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(confirmed) / float64(total)
}

// CountByDecision tallies active-phase participants by decision.
func CountByDecision(parts []*Participation) (pending, confirmed, cancelled int) {
	for _, p := range parts {
		switch p.Decision {
		case DecisionPending:
			if p.Status == StatusActive {
				pending++
			}
		case DecisionConfirmed:
			confirmed++
		case DecisionCancelled:
			cancelled++
		}
	}
	return
}
