//go:build unit || e2e

package builder

import (
	"time"

	"dungji-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type GroupBuyBuilder struct {
	ID                  uuid.UUID
	CreatorID           uuid.UUID
	Title               string
	ProductName         string
	ProductType         string
	StartingAmount      int64
	MinParticipants     int
	MaxParticipants     int
	CurrentParticipants int
	Region              string
	Status              string
	EndTime             time.Time
}

func NewGroupBuyBuilder() *GroupBuyBuilder {
	return &GroupBuyBuilder{
		ID:                  uuid.New(),
		CreatorID:           uuid.New(),
		Title:               "갤럭시 S25 공동구매",
		ProductName:         "Galaxy S25",
		ProductType:         "device",
		StartingAmount:      100000,
		MinParticipants:     2,
		MaxParticipants:     10,
		CurrentParticipants: 3,
		Region:              "서울",
		Status:              "recruiting",
		EndTime:             time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC),
	}
}

func (b *GroupBuyBuilder) WithID(id uuid.UUID) *GroupBuyBuilder {
	b.ID = id
	return b
}

func (b *GroupBuyBuilder) WithStatus(status string) *GroupBuyBuilder {
	b.Status = status
	return b
}

func (b *GroupBuyBuilder) WithRegion(region string) *GroupBuyBuilder {
	b.Region = region
	return b
}

func (b *GroupBuyBuilder) BuildView() queries.GroupBuyView {
	return queries.GroupBuyView{
		ID:                  b.ID,
		CreatorID:           b.CreatorID,
		Title:               b.Title,
		ProductName:         b.ProductName,
		ProductType:         b.ProductType,
		StartingAmount:      b.StartingAmount,
		MinParticipants:     b.MinParticipants,
		MaxParticipants:     b.MaxParticipants,
		CurrentParticipants: b.CurrentParticipants,
		Region:              b.Region,
		Status:              b.Status,
		EndTime:             b.EndTime,
		CreatedAt:           time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *GroupBuyBuilder) BuildDetailView(bids ...queries.BidView) *queries.GroupBuyDetailView {
	return &queries.GroupBuyDetailView{
		GroupBuyView: b.BuildView(),
		Bids:         bids,
	}
}
