package groupbuy

import "time"

type Status string

const (
	StatusRecruiting           Status = "recruiting"
	StatusFinalSelectionBuyers Status = "final_selection_buyers"
	StatusFinalSelectionSeller Status = "final_selection_seller"
	// StatusInProgress exists only on historical rows; no transition produces it.
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusRecruiting, StatusFinalSelectionBuyers, StatusFinalSelectionSeller,
		StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// Closed reports whether the group purchase reached a terminal state.
func (s Status) Closed() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// NormalizeStatus maps legacy status values still present in old rows onto
// the current vocabulary. It is applied on read only; legacy values are
// never written back.
func NormalizeStatus(raw string) Status {
	switch raw {
	case "bidding":
		return StatusRecruiting
	case "voting":
		return StatusFinalSelectionBuyers
	case "seller_confirmation":
		return StatusFinalSelectionSeller
	default:
		return Status(raw)
	}
}

// ProductType decides how competing bids are ranked.
type ProductType string

const (
	// ProductTypePrice ranks bids by lowest selling price.
	ProductTypePrice ProductType = "price"
	// ProductTypeSupport ranks bids by highest subsidy (telecom-style deals).
	ProductTypeSupport ProductType = "support"
)

func (p ProductType) IsValid() bool {
	return p == ProductTypePrice || p == ProductTypeSupport
}

const (
	// BuyerSelectionWindow is how long buyers get to confirm after a winning
	// bid is posted.
	BuyerSelectionWindow = 12 * time.Hour
	// SellerSelectionWindow is how long the winning seller gets to accept.
	SellerSelectionWindow = 6 * time.Hour
)
