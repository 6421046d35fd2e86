package groupbuy

import (
	"errors"
	"time"

	"dungji-market/internal/domain/bid"

	"github.com/google/uuid"
)

var (
	ErrInvalidProductType  = errors.New("invalid product type")
	ErrInvalidParticipants = errors.New("participant bounds must satisfy 1 <= min <= max")
	ErrEndBeforeStart      = errors.New("end time must be after start time")
	ErrEmptyTitle          = errors.New("title must not be empty")
	ErrNotRecruiting       = errors.New("groupbuy is not recruiting")
	ErrFull                = errors.New("participant limit reached")
	ErrNotAwaitingSeller   = errors.New("groupbuy is not awaiting seller confirmation")
	ErrSellerWindowOver    = errors.New("seller selection window has ended")
)

// GroupBuy is a buyer-initiated group purchase that sellers bid on.
type GroupBuy struct {
	id                  uuid.UUID
	creatorID           uuid.UUID
	title               string
	description         string
	productName         string
	productType         ProductType
	startingAmount      int64
	minParticipants     int
	maxParticipants     int
	currentParticipants int
	region              string
	status              Status
	startTime           time.Time
	endTime             time.Time
	finalSelectionEnd   *time.Time
	sellerSelectionEnd  *time.Time
	selectedBidID       *uuid.UUID
	cancelReason        string
	createdAt           time.Time
	updatedAt           time.Time
}

type NewParams struct {
	CreatorID       uuid.UUID
	Title           string
	Description     string
	ProductName     string
	ProductType     ProductType
	StartingAmount  int64
	MinParticipants int
	MaxParticipants int
	Region          string
	StartTime       time.Time
	EndTime         time.Time
}

func New(p NewParams) (*GroupBuy, error) {
	if p.Title == "" {
		return nil, ErrEmptyTitle
	}
	if !p.ProductType.IsValid() {
		return nil, ErrInvalidProductType
	}
	if p.MinParticipants < 1 || p.MinParticipants > p.MaxParticipants {
		return nil, ErrInvalidParticipants
	}
	if !p.EndTime.After(p.StartTime) {
		return nil, ErrEndBeforeStart
	}
	return &GroupBuy{
		id:                  uuid.New(),
		creatorID:           p.CreatorID,
		title:               p.Title,
		description:         p.Description,
		productName:         p.ProductName,
		productType:         p.ProductType,
		startingAmount:      p.StartingAmount,
		minParticipants:     p.MinParticipants,
		maxParticipants:     p.MaxParticipants,
		currentParticipants: 1, // creator joins their own deal
		region:              p.Region,
		status:              StatusRecruiting,
		startTime:           p.StartTime,
		endTime:             p.EndTime,
	}, nil
}

type ReconstructParams struct {
	ID                  uuid.UUID
	CreatorID           uuid.UUID
	Title               string
	Description         string
	ProductName         string
	ProductType         ProductType
	StartingAmount      int64
	MinParticipants     int
	MaxParticipants     int
	CurrentParticipants int
	Region              string
	Status              Status
	StartTime           time.Time
	EndTime             time.Time
	FinalSelectionEnd   *time.Time
	SellerSelectionEnd  *time.Time
	SelectedBidID       *uuid.UUID
	CancelReason        string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func Reconstruct(p ReconstructParams) *GroupBuy {
	return &GroupBuy{
		id:                  p.ID,
		creatorID:           p.CreatorID,
		title:               p.Title,
		description:         p.Description,
		productName:         p.ProductName,
		productType:         p.ProductType,
		startingAmount:      p.StartingAmount,
		minParticipants:     p.MinParticipants,
		maxParticipants:     p.MaxParticipants,
		currentParticipants: p.CurrentParticipants,
		region:              p.Region,
		status:              p.Status,
		startTime:           p.StartTime,
		endTime:             p.EndTime,
		finalSelectionEnd:   p.FinalSelectionEnd,
		sellerSelectionEnd:  p.SellerSelectionEnd,
		selectedBidID:       p.SelectedBidID,
		cancelReason:        p.CancelReason,
		createdAt:           p.CreatedAt,
		updatedAt:           p.UpdatedAt,
	}
}

func (g *GroupBuy) ID() uuid.UUID                  { return g.id }
func (g *GroupBuy) CreatorID() uuid.UUID           { return g.creatorID }
func (g *GroupBuy) Title() string                  { return g.title }
func (g *GroupBuy) Description() string            { return g.description }
func (g *GroupBuy) ProductName() string            { return g.productName }
func (g *GroupBuy) ProductType() ProductType       { return g.productType }
func (g *GroupBuy) StartingAmount() int64          { return g.startingAmount }
func (g *GroupBuy) MinParticipants() int           { return g.minParticipants }
func (g *GroupBuy) MaxParticipants() int           { return g.maxParticipants }
func (g *GroupBuy) CurrentParticipants() int       { return g.currentParticipants }
func (g *GroupBuy) Region() string                 { return g.region }
func (g *GroupBuy) Status() Status                 { return g.status }
func (g *GroupBuy) StartTime() time.Time           { return g.startTime }
func (g *GroupBuy) EndTime() time.Time             { return g.endTime }
func (g *GroupBuy) FinalSelectionEnd() *time.Time  { return g.finalSelectionEnd }
func (g *GroupBuy) SellerSelectionEnd() *time.Time { return g.sellerSelectionEnd }
func (g *GroupBuy) SelectedBidID() *uuid.UUID      { return g.selectedBidID }
func (g *GroupBuy) CancelReason() string           { return g.cancelReason }
func (g *GroupBuy) CreatedAt() time.Time           { return g.createdAt }
func (g *GroupBuy) UpdatedAt() time.Time           { return g.updatedAt }

// Ranking maps the product type to how bids compete.
func (g *GroupBuy) Ranking() bid.Ranking {
	if g.productType == ProductTypeSupport {
		return bid.RankHighestAmount
	}
	return bid.RankLowestAmount
}

// CanJoin checks whether a new buyer may join right now.
func (g *GroupBuy) CanJoin(now time.Time) error {
	if g.status != StatusRecruiting {
		return ErrNotRecruiting
	}
	if !now.Before(g.endTime) {
		return ErrNotRecruiting
	}
	if g.currentParticipants >= g.maxParticipants {
		return ErrFull
	}
	return nil
}

// AcceptsBids reports whether sellers may still place bids.
func (g *GroupBuy) AcceptsBids(now time.Time) bool {
	return g.status == StatusRecruiting && now.Before(g.endTime)
}
