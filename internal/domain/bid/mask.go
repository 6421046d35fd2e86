package bid

import (
	"strconv"
	"strings"
)

// MaskAmount hides a bid amount from non-participants while keeping its
// magnitude readable: 600000 becomes "6*****".
func MaskAmount(amount int64) string {
	s := strconv.FormatInt(amount, 10)
	if amount < 0 {
		// Negative amounts never occur in practice; mask everything after the sign.
		return "-" + maskDigits(s[1:])
	}
	return maskDigits(s)
}

func maskDigits(s string) string {
	if len(s) <= 1 {
		return s
	}
	return s[:1] + strings.Repeat("*", len(s)-1)
}
