package queries

import (
	"context"
	"time"

	"dungji-market/internal/domain/bid"
	"dungji-market/internal/domain/groupbuy"
	"dungji-market/internal/infra"
	"dungji-market/internal/pkg/errs"

	"github.com/google/uuid"
)

type GroupBuyView struct {
	ID                  uuid.UUID  `json:"id"`
	CreatorID           uuid.UUID  `json:"creator_id"`
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	ProductName         string     `json:"product_name"`
	ProductType         string     `json:"product_type"`
	StartingAmount      int64      `json:"starting_amount"`
	MinParticipants     int        `json:"min_participants"`
	MaxParticipants     int        `json:"max_participants"`
	CurrentParticipants int        `json:"current_participants"`
	Region              string     `json:"region"`
	Status              string     `json:"status"`
	EndTime             time.Time  `json:"end_time"`
	FinalSelectionEnd   *time.Time `json:"final_selection_end,omitempty"`
	SellerSelectionEnd  *time.Time `json:"seller_selection_end,omitempty"`
	SelectedBidID       *uuid.UUID `json:"selected_bid_id,omitempty"`
	CancelReason        string     `json:"cancel_reason,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
}

// BidView exposes a bid with its amount possibly masked for the viewer.
type BidView struct {
	ID        uuid.UUID `json:"id"`
	SellerID  uuid.UUID `json:"seller_id"`
	Amount    string    `json:"amount"`
	Masked    bool      `json:"masked"`
	Message   string    `json:"message,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// BidRow is the unmasked storage row; the query layer decides visibility.
type BidRow struct {
	ID        uuid.UUID
	SellerID  uuid.UUID
	Amount    int64
	Message   string
	Status    string
	CreatedAt time.Time
}

type GroupBuyDetailView struct {
	GroupBuyView
	Bids []BidView `json:"bids"`
}

type GroupBuyFilter struct {
	Status string
	Region string
	Limit  int
	Offset int
}

type GroupBuyReadStore interface {
	List(ctx context.Context, f GroupBuyFilter) ([]GroupBuyView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*GroupBuyView, error)
	BidsByGroupBuy(ctx context.Context, groupBuyID uuid.UUID) ([]BidRow, error)
	ListByParticipant(ctx context.Context, buyerID uuid.UUID) ([]GroupBuyView, error)
	ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]GroupBuyView, error)
}

type GroupBuyQueries interface {
	List(ctx context.Context, f GroupBuyFilter) ([]GroupBuyView, error)
	Get(ctx context.Context, id, viewerID uuid.UUID) (*GroupBuyDetailView, error)
	ListJoined(ctx context.Context, buyerID uuid.UUID) ([]GroupBuyView, error)
	ListBidOn(ctx context.Context, sellerID uuid.UUID) ([]GroupBuyView, error)
}

type groupBuyQueriesImpl struct {
	store GroupBuyReadStore
}

func NewGroupBuyQueries(store GroupBuyReadStore) GroupBuyQueries {
	return &groupBuyQueriesImpl{store: store}
}

func (q *groupBuyQueriesImpl) List(ctx context.Context, f GroupBuyFilter) ([]GroupBuyView, error) {
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}
	views, err := q.store.List(ctx, f)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *groupBuyQueriesImpl) Get(ctx context.Context, id, viewerID uuid.UUID) (*GroupBuyDetailView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrGroupBuyNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	rows, err := q.store.BidsByGroupBuy(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	detail := &GroupBuyDetailView{GroupBuyView: *view}
	status := groupbuy.NormalizeStatus(view.Status)
	for _, row := range rows {
		detail.Bids = append(detail.Bids, renderBid(row, viewerID, view.CreatorID, status))
	}
	return detail, nil
}

// renderBid hides competing amounts while recruiting runs: only the bidding
// seller and the creator see real figures. Once recruiting closes the
// amounts are public.
func renderBid(row BidRow, viewerID, creatorID uuid.UUID, status groupbuy.Status) BidView {
	visible := status != groupbuy.StatusRecruiting ||
		row.SellerID == viewerID ||
		(viewerID != uuid.Nil && viewerID == creatorID)

	v := BidView{
		ID:        row.ID,
		SellerID:  row.SellerID,
		Message:   row.Message,
		Status:    row.Status,
		CreatedAt: row.CreatedAt,
	}
	if visible {
		v.Amount = formatAmount(row.Amount)
	} else {
		v.Amount = bid.MaskAmount(row.Amount)
		v.Masked = true
	}
	return v
}

func (q *groupBuyQueriesImpl) ListJoined(ctx context.Context, buyerID uuid.UUID) ([]GroupBuyView, error) {
	views, err := q.store.ListByParticipant(ctx, buyerID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *groupBuyQueriesImpl) ListBidOn(ctx context.Context, sellerID uuid.UUID) ([]GroupBuyView, error) {
	views, err := q.store.ListBySeller(ctx, sellerID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
