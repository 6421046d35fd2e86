package request

import (
	"dungji-market/internal/usecase/commands"
)

type CreateCustomDealRequest struct {
	Title             string   `json:"title" binding:"required,max=100"`
	Description       string   `json:"description" binding:"max=2000"`
	Kind              string   `json:"kind" binding:"required,oneof=online offline"`
	DiscountType      string   `json:"discount_type" binding:"required,oneof=link_only code_only both"`
	DiscountLink      string   `json:"discount_link" binding:"omitempty,url"`
	DiscountValidDays int      `json:"discount_valid_days" binding:"omitempty,min=1,max=365"`
	Target            int      `json:"target_participants" binding:"required,min=2,max=10"`
	WaitHours         int      `json:"wait_hours" binding:"required,min=24,max=720"`
	AllowPartialSale  bool     `json:"allow_partial_sale"`
	DiscountCodes     []string `json:"discount_codes" binding:"omitempty,dive,min=1"`
}

type VerifyCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

func (r *CreateCustomDealRequest) ToInput() commands.CreateCustomDealInput {
	return commands.CreateCustomDealInput{
		Title:             r.Title,
		Description:       r.Description,
		Kind:              r.Kind,
		DiscountType:      r.DiscountType,
		DiscountLink:      r.DiscountLink,
		DiscountValidDays: r.DiscountValidDays,
		Target:            r.Target,
		WaitHours:         r.WaitHours,
		AllowPartialSale:  r.AllowPartialSale,
		DiscountCodes:     r.DiscountCodes,
	}
}
