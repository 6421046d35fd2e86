package bid

type Status string

const (
	// StatusPending is the initial state while recruiting is open.
	StatusPending Status = "pending"
	// StatusSelected marks the single winning bid after the recruiting deadline.
	StatusSelected Status = "selected"
	StatusRejected Status = "rejected"
	// StatusConfirmed means the seller accepted the win inside their window.
	StatusConfirmed Status = "confirmed"
	// StatusForfeited means the seller declined or let the window lapse.
	StatusForfeited Status = "forfeited"
	StatusCancelled Status = "cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusSelected, StatusRejected, StatusConfirmed, StatusForfeited, StatusCancelled:
		return true
	default:
		return false
	}
}

// Final reports whether the bid can no longer change state.
func (s Status) Final() bool {
	switch s {
	case StatusConfirmed, StatusForfeited, StatusCancelled, StatusRejected:
		return true
	default:
		return false
	}
}

// Ranking orders competing bids. Price deals want the cheapest offer,
// support deals want the largest subsidy.
type Ranking int

const (
	RankLowestAmount Ranking = iota
	RankHighestAmount
)
