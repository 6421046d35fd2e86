package customdeal

import (
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const codeAlphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// NewParticipationCode mints a human-readable participation code like
// "DJM-2025-4R7KQ2M9". The ambiguous characters I, L, O and U are excluded.
func NewParticipationCode(now time.Time) (string, error) {
	id, err := gonanoid.Generate(codeAlphabet, 8)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("DJM-%d-%s", now.Year(), id), nil
}
