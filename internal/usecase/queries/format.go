package queries

import "strconv"

func formatAmount(amount int64) string {
	return strconv.FormatInt(amount, 10)
}
