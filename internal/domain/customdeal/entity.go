package customdeal

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	MinTargetParticipants = 2
	MaxTargetParticipants = 10
	MinWaitHours          = 24
	MaxWaitHours          = 720

	// SellerDecisionWindow is how long the seller gets to accept or
	// decline a partial sale after the wait window lapses.
	SellerDecisionWindow = 24 * time.Hour
)

var (
	ErrInvalidTarget      = errors.New("target participants out of range")
	ErrInvalidWaitHours   = errors.New("wait hours out of range")
	ErrMissingLink        = errors.New("discount link required for this discount type")
	ErrNotRecruiting      = errors.New("custom deal is not recruiting")
	ErrFull               = errors.New("custom deal target already reached")
	ErrNoParticipants     = errors.New("cannot close without participants")
	ErrNotPendingSeller   = errors.New("custom deal is not awaiting seller approval")
	ErrDecisionWindowOver = errors.New("seller decision window has ended")
)

// CustomDeal is a seller-initiated flash deal that completes once enough
// buyers commit.
type CustomDeal struct {
	id                  uuid.UUID
	sellerID            uuid.UUID
	title               string
	description         string
	kind                Kind
	discountType        DiscountType
	discountLink        string
	discountValidDays   int
	targetParticipants  int
	currentParticipants int
	allowPartialSale    bool
	expiresAt           time.Time
	sellerDeadline      *time.Time
	status              Status
	createdAt           time.Time
	updatedAt           time.Time
}

type NewParams struct {
	SellerID           uuid.UUID
	Title              string
	Description        string
	Kind               Kind
	DiscountType       DiscountType
	DiscountLink       string
	DiscountValidDays  int
	TargetParticipants int
	WaitHours          int
	AllowPartialSale   bool
}

func New(p NewParams, now time.Time) (*CustomDeal, error) {
	if p.TargetParticipants < MinTargetParticipants || p.TargetParticipants > MaxTargetParticipants {
		return nil, ErrInvalidTarget
	}
	if p.WaitHours < MinWaitHours || p.WaitHours > MaxWaitHours {
		return nil, ErrInvalidWaitHours
	}
	if p.Kind == KindOnline && p.DiscountType.NeedsLink() && p.DiscountLink == "" {
		return nil, ErrMissingLink
	}
	return &CustomDeal{
		id:                 uuid.New(),
		sellerID:           p.SellerID,
		title:              p.Title,
		description:        p.Description,
		kind:               p.Kind,
		discountType:       p.DiscountType,
		discountLink:       p.DiscountLink,
		discountValidDays:  p.DiscountValidDays,
		targetParticipants: p.TargetParticipants,
		allowPartialSale:   p.AllowPartialSale,
		expiresAt:          now.Add(time.Duration(p.WaitHours) * time.Hour),
		status:             StatusRecruiting,
		createdAt:          now,
		updatedAt:          now,
	}, nil
}

type ReconstructParams struct {
	ID                  uuid.UUID
	SellerID            uuid.UUID
	Title               string
	Description         string
	Kind                Kind
	DiscountType        DiscountType
	DiscountLink        string
	DiscountValidDays   int
	TargetParticipants  int
	CurrentParticipants int
	AllowPartialSale    bool
	ExpiresAt           time.Time
	SellerDeadline      *time.Time
	Status              Status
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func Reconstruct(p ReconstructParams) *CustomDeal {
	return &CustomDeal{
		id:                  p.ID,
		sellerID:            p.SellerID,
		title:               p.Title,
		description:         p.Description,
		kind:                p.Kind,
		discountType:        p.DiscountType,
		discountLink:        p.DiscountLink,
		discountValidDays:   p.DiscountValidDays,
		targetParticipants:  p.TargetParticipants,
		currentParticipants: p.CurrentParticipants,
		allowPartialSale:    p.AllowPartialSale,
		expiresAt:           p.ExpiresAt,
		sellerDeadline:      p.SellerDeadline,
		status:              p.Status,
		createdAt:           p.CreatedAt,
		updatedAt:           p.UpdatedAt,
	}
}

func (d *CustomDeal) ID() uuid.UUID              { return d.id }
func (d *CustomDeal) SellerID() uuid.UUID        { return d.sellerID }
func (d *CustomDeal) Title() string              { return d.title }
func (d *CustomDeal) Description() string        { return d.description }
func (d *CustomDeal) Kind() Kind                 { return d.kind }
func (d *CustomDeal) DiscountType() DiscountType { return d.discountType }
func (d *CustomDeal) DiscountLink() string       { return d.discountLink }
func (d *CustomDeal) DiscountValidDays() int     { return d.discountValidDays }
func (d *CustomDeal) TargetParticipants() int    { return d.targetParticipants }
func (d *CustomDeal) CurrentParticipants() int   { return d.currentParticipants }
func (d *CustomDeal) AllowPartialSale() bool     { return d.allowPartialSale }
func (d *CustomDeal) ExpiresAt() time.Time       { return d.expiresAt }
func (d *CustomDeal) SellerDeadline() *time.Time { return d.sellerDeadline }
func (d *CustomDeal) Status() Status             { return d.status }
func (d *CustomDeal) CreatedAt() time.Time       { return d.createdAt }
func (d *CustomDeal) UpdatedAt() time.Time       { return d.updatedAt }

// Join admits one more buyer. The join that reaches the target completes
// the deal immediately; the returned flag tells the caller discounts must
// be issued in the same transaction.
func (d *CustomDeal) Join(now time.Time) (completed bool, err error) {
	if d.status != StatusRecruiting {
		return false, ErrNotRecruiting
	}
	if !now.Before(d.expiresAt) {
		return false, ErrNotRecruiting
	}
	if d.currentParticipants >= d.targetParticipants {
		return false, ErrFull
	}

	d.currentParticipants++
	if d.currentParticipants < d.targetParticipants {
		return false, nil
	}
	d.status = StatusCompleted
	return true, nil
}

// EarlyClose lets the seller finish recruiting at the current headcount,
// running the same completion path as a target-reached join.
func (d *CustomDeal) EarlyClose(now time.Time) (completed bool, err error) {
	if d.status != StatusRecruiting {
		return false, ErrNotRecruiting
	}
	if d.currentParticipants < 1 {
		return false, ErrNoParticipants
	}
	d.status = StatusCompleted
	return true, nil
}

// SellerAccept approves a partial sale; the caller issues discounts in the
// same transaction, exactly as on a target-reached completion.
func (d *CustomDeal) SellerAccept(now time.Time) error {
	if d.status != StatusPendingSeller {
		return ErrNotPendingSeller
	}
	if d.sellerDeadline != nil && !now.Before(*d.sellerDeadline) {
		return ErrDecisionWindowOver
	}
	d.status = StatusCompleted
	return nil
}

// SellerDecline rejects the partial sale. Every confirmed participant is
// off the deal, so the counter resets; the caller cancels the rows.
func (d *CustomDeal) SellerDecline(now time.Time) error {
	if d.status != StatusPendingSeller {
		return ErrNotPendingSeller
	}
	if d.sellerDeadline != nil && !now.Before(*d.sellerDeadline) {
		return ErrDecisionWindowOver
	}
	d.forceCancel()
	return nil
}

func (d *CustomDeal) forceCancel() {
	d.status = StatusCancelled
	d.currentParticipants = 0
}

// EvaluateExpiry applies deadline rules. A recruiting deal past its wait
// window completes when the target was met, opens the 24h partial-sale
// window when at least one buyer joined and the seller allows it, and
// expires otherwise. A pending deal past the seller deadline is
// force-cancelled.
func (d *CustomDeal) EvaluateExpiry(now time.Time) ExpiryOutcome {
	switch d.status {
	case StatusRecruiting:
		if now.Before(d.expiresAt) {
			return OutcomeNone
		}
		switch {
		case d.currentParticipants >= d.targetParticipants:
			d.status = StatusCompleted
			return OutcomeCompleted
		case d.currentParticipants >= 1 && d.allowPartialSale:
			deadline := now.Add(SellerDecisionWindow)
			d.sellerDeadline = &deadline
			d.status = StatusPendingSeller
			return OutcomePendingSeller
		default:
			d.status = StatusExpired
			return OutcomeExpired
		}
	case StatusPendingSeller:
		if d.sellerDeadline != nil && !now.Before(*d.sellerDeadline) {
			d.forceCancel()
			return OutcomeForceCancelled
		}
	}
	return OutcomeNone
}
