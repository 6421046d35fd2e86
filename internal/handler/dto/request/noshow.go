package request

import (
	"dungji-market/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateNoShowReportRequest struct {
	GroupBuyID uuid.UUID `json:"groupbuy_id" binding:"required"`
	ReportedID uuid.UUID `json:"reported_id" binding:"required"`
	Type       string    `json:"type" binding:"required,oneof=buyer_noshow seller_noshow"`
	Content    string    `json:"content" binding:"required,max=2000"`
}

func (r *CreateNoShowReportRequest) ToInput() commands.ReportNoShowInput {
	return commands.ReportNoShowInput{
		GroupBuyID: r.GroupBuyID,
		ReportedID: r.ReportedID,
		Type:       r.Type,
		Content:    r.Content,
	}
}

type EditNoShowReportRequest struct {
	Content string `json:"content" binding:"required,max=2000"`
}

// AdminNoteRequest accompanies an admin confirm or hold decision.
type AdminNoteRequest struct {
	Note string `json:"note" binding:"max=1000"`
}
