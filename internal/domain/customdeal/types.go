package customdeal

type Status string

const (
	StatusRecruiting Status = "recruiting"
	// StatusPendingSeller waits for the seller to decide on a partial
	// sale after the wait window lapsed short of the target.
	StatusPendingSeller Status = "pending_seller"
	StatusCompleted     Status = "completed"
	// StatusExpired means the wait window lapsed before the target was met.
	StatusExpired   Status = "expired"
	StatusCancelled Status = "cancelled"
)

func (s Status) Closed() bool {
	switch s {
	case StatusCompleted, StatusExpired, StatusCancelled:
		return true
	default:
		return false
	}
}

// Kind distinguishes deals redeemed online from in-store ones.
type Kind string

const (
	KindOnline  Kind = "online"
	KindOffline Kind = "offline"
)

// DiscountType controls what each participant receives when an online deal
// completes.
type DiscountType string

const (
	DiscountLinkOnly DiscountType = "link_only"
	DiscountCodeOnly DiscountType = "code_only"
	DiscountBoth     DiscountType = "both"
)

func (d DiscountType) NeedsCodes() bool {
	return d == DiscountCodeOnly || d == DiscountBoth
}

func (d DiscountType) NeedsLink() bool {
	return d == DiscountLinkOnly || d == DiscountBoth
}

// ExpiryOutcome reports what a deadline evaluation did to the deal, so the
// caller can run the matching side effects in the same transaction.
type ExpiryOutcome int

const (
	OutcomeNone ExpiryOutcome = iota
	// OutcomeCompleted means the target was met; discounts must be issued.
	OutcomeCompleted
	OutcomeExpired
	// OutcomePendingSeller opened the partial-sale decision window.
	OutcomePendingSeller
	// OutcomeForceCancelled means the seller never decided; every
	// confirmed participant must be cancelled.
	OutcomeForceCancelled
)
