package request

type PurchaseTokensRequest struct {
	Plan      string `json:"plan" binding:"required,oneof=single unlimited"`
	AmountKRW int64  `json:"amount_krw" binding:"required,gt=0"`
}
