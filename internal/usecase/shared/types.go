package shared

import (
	"time"

	"github.com/google/uuid"
)

// Seat states: confirmed on join, cancelled when the deal is declined or
// force-cancelled.
const (
	CustomParticipantConfirmed = "confirmed"
	CustomParticipantCancelled = "cancelled"
)

// CustomParticipant is a buyer's seat in a custom deal, identified by a
// human-readable participation code shown at redemption.
type CustomParticipant struct {
	ID                 uuid.UUID
	DealID             uuid.UUID
	BuyerID            uuid.UUID
	Status             string
	Code               string
	DiscountLink       string
	DiscountCode       string
	DiscountValidUntil *time.Time
	JoinedAt           time.Time
	RedeemedAt         *time.Time
}

// Notification is an in-app message row written alongside state transitions.
type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Kind      string
	Title     string
	Body      string
	Read      bool
	CreatedAt time.Time
}
