package penalty

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrUnknownScheme = errors.New("unknown penalty scheme")

// Penalty blocks a user from bidding or joining deals until EndAt.
type Penalty struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Reason    string
	Count     int // the user's cumulative penalty number, 1-based
	StartAt   time.Time
	EndAt     time.Time
	CreatedAt time.Time
}

func New(userID uuid.UUID, reason string, count int, duration time.Duration, now time.Time) *Penalty {
	return &Penalty{
		ID:        uuid.New(),
		UserID:    userID,
		Reason:    reason,
		Count:     count,
		StartAt:   now,
		EndAt:     now.Add(duration),
		CreatedAt: now,
	}
}

func (p *Penalty) ActiveAt(now time.Time) bool {
	return !now.Before(p.StartAt) && now.Before(p.EndAt)
}

// Policy decides how long a penalty lasts given how many the user already has.
type Policy interface {
	Duration(priorCount int) time.Duration
}

// TieredPolicy escalates with repeat offenses.
type TieredPolicy struct{}

var tiers = []time.Duration{
	48 * time.Hour,
	72 * time.Hour,
	168 * time.Hour, // one week
	720 * time.Hour, // thirty days
}

func (TieredPolicy) Duration(priorCount int) time.Duration {
	if priorCount < 0 {
		priorCount = 0
	}
	if priorCount >= len(tiers) {
		return tiers[len(tiers)-1]
	}
	return tiers[priorCount]
}

// FlatPolicy applies the same duration regardless of history.
type FlatPolicy struct {
	Hours int
}

func (p FlatPolicy) Duration(int) time.Duration {
	return time.Duration(p.Hours) * time.Hour
}

// NewPolicy builds the configured policy. Scheme is "tiered" or "flat".
func NewPolicy(scheme string, flatHours int) (Policy, error) {
	switch scheme {
	case "tiered":
		return TieredPolicy{}, nil
	case "flat":
		return FlatPolicy{Hours: flatHours}, nil
	default:
		return nil, ErrUnknownScheme
	}
}
