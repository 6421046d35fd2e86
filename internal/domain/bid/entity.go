package bid

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNonPositiveAmount = errors.New("bid amount must be positive")
	ErrNotPending        = errors.New("bid is not pending")
	ErrNotSelected       = errors.New("bid is not selected")
)

// Bid is a seller's offer on a group purchase. Amounts are KRW.
type Bid struct {
	id         uuid.UUID
	groupBuyID uuid.UUID
	sellerID   uuid.UUID
	amount     int64
	message    string
	status     Status
	tokenID    *uuid.UUID
	createdAt  time.Time
	updatedAt  time.Time
}

func New(groupBuyID, sellerID uuid.UUID, amount int64, message string, tokenID *uuid.UUID, now time.Time) (*Bid, error) {
	if amount <= 0 {
		return nil, ErrNonPositiveAmount
	}
	return &Bid{
		id:         uuid.New(),
		groupBuyID: groupBuyID,
		sellerID:   sellerID,
		amount:     amount,
		message:    message,
		status:     StatusPending,
		tokenID:    tokenID,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// Rebid replaces the offer while recruiting is still open. The new token
// backs the updated bid; the previously consumed one stays spent.
func (b *Bid) Rebid(amount int64, message string, tokenID *uuid.UUID, now time.Time) error {
	if b.status != StatusPending {
		return ErrNotPending
	}
	if amount <= 0 {
		return ErrNonPositiveAmount
	}
	b.amount = amount
	b.message = message
	b.tokenID = tokenID
	b.updatedAt = now
	return nil
}

func Reconstruct(
	id, groupBuyID, sellerID uuid.UUID,
	amount int64,
	message string,
	status Status,
	tokenID *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Bid {
	return &Bid{
		id:         id,
		groupBuyID: groupBuyID,
		sellerID:   sellerID,
		amount:     amount,
		message:    message,
		status:     status,
		tokenID:    tokenID,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (b *Bid) ID() uuid.UUID         { return b.id }
func (b *Bid) GroupBuyID() uuid.UUID { return b.groupBuyID }
func (b *Bid) SellerID() uuid.UUID   { return b.sellerID }
func (b *Bid) Amount() int64         { return b.amount }
func (b *Bid) Message() string       { return b.message }
func (b *Bid) Status() Status        { return b.status }
func (b *Bid) TokenID() *uuid.UUID   { return b.tokenID }
func (b *Bid) CreatedAt() time.Time  { return b.createdAt }
func (b *Bid) UpdatedAt() time.Time  { return b.updatedAt }

// Best picks the winner among competing bids: best amount by rank, ties
// broken by earliest placement. Non-pending bids are ignored.
func Best(bids []*Bid, rank Ranking) *Bid {
	var best *Bid
	for _, b := range bids {
		if b.status != StatusPending {
			continue
		}
		if best == nil || better(b, best, rank) {
			best = b
		}
	}
	return best
}

func better(a, b *Bid, rank Ranking) bool {
	if a.amount != b.amount {
		if rank == RankLowestAmount {
			return a.amount < b.amount
		}
		return a.amount > b.amount
	}
	return a.createdAt.Before(b.createdAt)
}
