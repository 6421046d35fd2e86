package response

import (
	"dungji-market/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

type JoinCustomDealResponse struct {
	ParticipationCode string `json:"participation_code"`
}

type PurchaseTokensResponse struct {
	PurchaseID uuid.UUID   `json:"purchase_id"`
	Granted    int         `json:"granted"`
	TokenIDs   []uuid.UUID `json:"token_ids"`
}

func FromPurchaseResult(r commands.PurchaseTokensResult) PurchaseTokensResponse {
	return PurchaseTokensResponse{
		PurchaseID: r.PurchaseID,
		Granted:    r.Granted,
		TokenIDs:   r.TokenIDs,
	}
}
