//go:build unit

package queries

import (
	"testing"
	"time"

	"dungji-market/internal/domain/groupbuy"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRenderBid(t *testing.T) {
	sellerID := uuid.New()
	creatorID := uuid.New()
	row := BidRow{
		ID:        uuid.New(),
		SellerID:  sellerID,
		Amount:    600000,
		Status:    "pending",
		CreatedAt: time.Now(),
	}

	t.Run("own bid always visible", func(t *testing.T) {
		v := renderBid(row, sellerID, creatorID, groupbuy.StatusRecruiting)
		assert.Equal(t, "600000", v.Amount)
		assert.False(t, v.Masked)
	})

	t.Run("visible to the creator while recruiting", func(t *testing.T) {
		v := renderBid(row, creatorID, creatorID, groupbuy.StatusRecruiting)
		assert.Equal(t, "600000", v.Amount)
		assert.False(t, v.Masked)
	})

	t.Run("masked for everyone else while recruiting", func(t *testing.T) {
		v := renderBid(row, uuid.New(), creatorID, groupbuy.StatusRecruiting)
		assert.Equal(t, "6*****", v.Amount)
		assert.True(t, v.Masked)
	})

	t.Run("masked for anonymous viewers while recruiting", func(t *testing.T) {
		v := renderBid(row, uuid.Nil, creatorID, groupbuy.StatusRecruiting)
		assert.True(t, v.Masked)
	})

	t.Run("visible to everyone after recruiting closes", func(t *testing.T) {
		v := renderBid(row, uuid.New(), creatorID, groupbuy.StatusFinalSelectionBuyers)
		assert.Equal(t, "600000", v.Amount)
		assert.False(t, v.Masked)
	})
}
