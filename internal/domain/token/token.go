package token

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	// TypeSingle is consumed by exactly one bid and can be refunded while the
	// bid is still live.
	TypeSingle Type = "single"
	// TypeUnlimited allows any number of bids until it expires.
	TypeUnlimited Type = "unlimited"
)

type Status string

const (
	StatusActive  Status = "active"
	StatusUsed    Status = "used"
	StatusExpired Status = "expired"
)

var (
	ErrNotActive    = errors.New("token is not active")
	ErrNotUsed      = errors.New("token is not used")
	ErrTypeMismatch = errors.New("operation only valid for single-use tokens")
)

// BidToken entitles a seller to place bids.
type BidToken struct {
	ID         uuid.UUID
	SellerID   uuid.UUID
	Type       Type
	Status     Status
	ExpiresAt  time.Time
	UsedAt     *time.Time
	UsedForBid *uuid.UUID
	PurchaseID *uuid.UUID
	CreatedAt  time.Time
}

func New(sellerID uuid.UUID, typ Type, expiresAt time.Time, purchaseID *uuid.UUID, now time.Time) *BidToken {
	return &BidToken{
		ID:         uuid.New(),
		SellerID:   sellerID,
		Type:       typ,
		Status:     StatusActive,
		ExpiresAt:  expiresAt,
		PurchaseID: purchaseID,
		CreatedAt:  now,
	}
}

func (t *BidToken) Usable(now time.Time) bool {
	return t.Status == StatusActive && now.Before(t.ExpiresAt)
}

// Use consumes a single-use token for a bid. Unlimited tokens stay active.
func (t *BidToken) Use(bidID uuid.UUID, now time.Time) error {
	if !t.Usable(now) {
		return ErrNotActive
	}
	if t.Type == TypeUnlimited {
		return nil
	}
	t.Status = StatusUsed
	t.UsedAt = &now
	t.UsedForBid = &bidID
	return nil
}

// Refund returns a consumed single-use token to the active pool, e.g. when
// the deal it was spent on collapses through no fault of the seller.
func (t *BidToken) Refund() error {
	if t.Type != TypeSingle {
		return ErrTypeMismatch
	}
	if t.Status != StatusUsed {
		return ErrNotUsed
	}
	t.Status = StatusActive
	t.UsedAt = nil
	t.UsedForBid = nil
	return nil
}

const (
	krwPerToken    = 10_000
	bonusTier1Min  = 50_000
	bonusTier2Min  = 100_000
	bonusTier1Rate = 10 // percent
	bonusTier2Rate = 20
)

// GrantForPurchase converts a KRW payment into a token count: one token per
// 10,000 KRW, plus a 10% bonus from 50,000 and 20% from 100,000.
func GrantForPurchase(amountKRW int64) int {
	if amountKRW < krwPerToken {
		return 0
	}
	base := int(amountKRW / krwPerToken)
	switch {
	case amountKRW >= bonusTier2Min:
		return base + base*bonusTier2Rate/100
	case amountKRW >= bonusTier1Min:
		return base + base*bonusTier1Rate/100
	default:
		return base
	}
}
