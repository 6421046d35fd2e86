package request

import (
	"time"

	"dungji-market/internal/usecase/commands"
)

type CreateGroupBuyRequest struct {
	Title           string    `json:"title" binding:"required,max=100"`
	Description     string    `json:"description" binding:"max=2000"`
	ProductName     string    `json:"product_name" binding:"required,max=100"`
	ProductType     string    `json:"product_type" binding:"required,oneof=price support"`
	StartingAmount  int64     `json:"starting_amount" binding:"required,gt=0"`
	MinParticipants int       `json:"min_participants" binding:"required,min=1"`
	MaxParticipants int       `json:"max_participants" binding:"required,min=1"`
	Region          string    `json:"region" binding:"required,max=50"`
	EndTime         time.Time `json:"end_time" binding:"required"`
}

func (r *CreateGroupBuyRequest) ToInput() commands.CreateGroupBuyInput {
	return commands.CreateGroupBuyInput{
		Title:           r.Title,
		Description:     r.Description,
		ProductName:     r.ProductName,
		ProductType:     r.ProductType,
		StartingAmount:  r.StartingAmount,
		MinParticipants: r.MinParticipants,
		MaxParticipants: r.MaxParticipants,
		Region:          r.Region,
		EndTime:         r.EndTime,
	}
}

// BuyerDecisionRequest carries the buyer's final confirm/cancel choice.
// The pointer distinguishes an explicit false from a missing field.
type BuyerDecisionRequest struct {
	Confirmed *bool `json:"confirmed" binding:"required"`
}
