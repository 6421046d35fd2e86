//go:build unit

package penalty_test

import (
	"testing"
	"time"

	"dungji-market/internal/domain/penalty"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTieredPolicy(t *testing.T) {
	p := penalty.TieredPolicy{}
	cases := []struct {
		prior int
		want  time.Duration
	}{
		{0, 48 * time.Hour},
		{1, 72 * time.Hour},
		{2, 168 * time.Hour},
		{3, 720 * time.Hour},
		{10, 720 * time.Hour}, // capped at the top tier
	}
	for _, c := range cases {
		assert.Equal(t, c.want, p.Duration(c.prior))
	}
}

func TestFlatPolicy(t *testing.T) {
	p := penalty.FlatPolicy{Hours: 24}
	assert.Equal(t, 24*time.Hour, p.Duration(0))
	assert.Equal(t, 24*time.Hour, p.Duration(5))
}

func TestNewPolicy(t *testing.T) {
	_, err := penalty.NewPolicy("tiered", 0)
	require.NoError(t, err)

	_, err = penalty.NewPolicy("flat", 12)
	require.NoError(t, err)

	_, err = penalty.NewPolicy("exponential", 0)
	require.ErrorIs(t, err, penalty.ErrUnknownScheme)
}

func TestPenalty_ActiveAt(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	p := penalty.New(uuid.New(), "seller selection timeout", 1, 48*time.Hour, now)

	assert.True(t, p.ActiveAt(now))
	assert.True(t, p.ActiveAt(now.Add(47*time.Hour)))
	assert.False(t, p.ActiveAt(now.Add(48*time.Hour)))
	assert.False(t, p.ActiveAt(now.Add(-time.Minute)))
}
