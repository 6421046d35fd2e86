package request

import (
	"dungji-market/internal/usecase/commands"

	"github.com/google/uuid"
)

type PlaceBidRequest struct {
	GroupBuyID uuid.UUID `json:"groupbuy_id" binding:"required"`
	Amount     int64     `json:"amount" binding:"required,gt=0"`
	Message    string    `json:"message" binding:"max=500"`
}

func (r *PlaceBidRequest) ToInput() commands.PlaceBidInput {
	return commands.PlaceBidInput{
		GroupBuyID: r.GroupBuyID,
		Amount:     r.Amount,
		Message:    r.Message,
	}
}
