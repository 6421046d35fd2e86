package queries

import (
	"context"
	"time"

	"dungji-market/internal/infra"
	"dungji-market/internal/pkg/errs"

	"github.com/google/uuid"
)

type CustomDealView struct {
	ID                  uuid.UUID  `json:"id"`
	SellerID            uuid.UUID  `json:"seller_id"`
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	Kind                string     `json:"kind"`
	DiscountType        string     `json:"discount_type"`
	DiscountValidDays   int        `json:"discount_valid_days,omitempty"`
	TargetParticipants  int        `json:"target_participants"`
	CurrentParticipants int        `json:"current_participants"`
	AllowPartialSale    bool       `json:"allow_partial_sale"`
	ExpiresAt           time.Time  `json:"expires_at"`
	SellerDeadline      *time.Time `json:"seller_deadline,omitempty"`
	Status              string     `json:"status"`
	CreatedAt           time.Time  `json:"created_at"`
}

// CustomSeatView is what a participant sees of their own seat; the discount
// fields fill in once the deal completes.
type CustomSeatView struct {
	DealID             uuid.UUID  `json:"deal_id"`
	Code               string     `json:"code"`
	Status             string     `json:"status"`
	DiscountLink       string     `json:"discount_link,omitempty"`
	DiscountCode       string     `json:"discount_code,omitempty"`
	DiscountValidUntil *time.Time `json:"discount_valid_until,omitempty"`
	JoinedAt           time.Time  `json:"joined_at"`
	RedeemedAt         *time.Time `json:"redeemed_at,omitempty"`
}

type CustomDealFilter struct {
	Status string
	Limit  int
	Offset int
}

type CustomDealReadStore interface {
	List(ctx context.Context, f CustomDealFilter) ([]CustomDealView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*CustomDealView, error)
	SeatsByBuyer(ctx context.Context, buyerID uuid.UUID) ([]CustomSeatView, error)
	SeatByDealAndBuyer(ctx context.Context, dealID, buyerID uuid.UUID) (*CustomSeatView, error)
	ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]CustomDealView, error)
}

type CustomDealQueries interface {
	List(ctx context.Context, f CustomDealFilter) ([]CustomDealView, error)
	Get(ctx context.Context, id uuid.UUID) (*CustomDealView, error)
	MySeat(ctx context.Context, dealID, buyerID uuid.UUID) (*CustomSeatView, error)
	MySeats(ctx context.Context, buyerID uuid.UUID) ([]CustomSeatView, error)
	MyDeals(ctx context.Context, sellerID uuid.UUID) ([]CustomDealView, error)
}

type customDealQueriesImpl struct {
	store CustomDealReadStore
}

func NewCustomDealQueries(store CustomDealReadStore) CustomDealQueries {
	return &customDealQueriesImpl{store: store}
}

func (q *customDealQueriesImpl) List(ctx context.Context, f CustomDealFilter) ([]CustomDealView, error) {
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}
	deals, err := q.store.List(ctx, f)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return deals, nil
}

func (q *customDealQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*CustomDealView, error) {
	deal, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrCustomDealNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return deal, nil
}

func (q *customDealQueriesImpl) MySeat(ctx context.Context, dealID, buyerID uuid.UUID) (*CustomSeatView, error) {
	seat, err := q.store.SeatByDealAndBuyer(ctx, dealID, buyerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrNotParticipant)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return seat, nil
}

func (q *customDealQueriesImpl) MySeats(ctx context.Context, buyerID uuid.UUID) ([]CustomSeatView, error) {
	seats, err := q.store.SeatsByBuyer(ctx, buyerID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return seats, nil
}

func (q *customDealQueriesImpl) MyDeals(ctx context.Context, sellerID uuid.UUID) ([]CustomDealView, error) {
	deals, err := q.store.ListBySeller(ctx, sellerID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return deals, nil
}
