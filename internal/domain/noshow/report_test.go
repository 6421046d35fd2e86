//go:build unit

package noshow_test

import (
	"testing"
	"time"

	"dungji-market/internal/domain/noshow"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func pendingReport(t *testing.T) *noshow.Report {
	t.Helper()
	r, err := noshow.NewReport(uuid.New(), uuid.New(), uuid.New(), noshow.TypeBuyerNoShow, "buyer never picked up", now)
	require.NoError(t, err)
	return r
}

func TestNewReport(t *testing.T) {
	t.Run("starts pending", func(t *testing.T) {
		r := pendingReport(t)
		assert.Equal(t, noshow.StatusPending, r.Status)
		assert.Zero(t, r.EditCount)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		_, err := noshow.NewReport(uuid.New(), uuid.New(), uuid.New(), "ghosting", "x", now)
		require.ErrorIs(t, err, noshow.ErrInvalidType)
	})

	t.Run("rejects empty content", func(t *testing.T) {
		_, err := noshow.NewReport(uuid.New(), uuid.New(), uuid.New(), noshow.TypeSellerNoShow, "", now)
		require.ErrorIs(t, err, noshow.ErrEmptyContent)
	})
}

func TestReport_Edit(t *testing.T) {
	t.Run("single edit allowed", func(t *testing.T) {
		r := pendingReport(t)
		require.NoError(t, r.Edit(r.ReporterID, "buyer never picked up, no reply for 3 days"))
		assert.Equal(t, 1, r.EditCount)

		err := r.Edit(r.ReporterID, "third version")
		require.ErrorIs(t, err, noshow.ErrEditExhausted)
	})

	t.Run("only the reporter may edit", func(t *testing.T) {
		r := pendingReport(t)
		err := r.Edit(uuid.New(), "hijacked")
		require.ErrorIs(t, err, noshow.ErrNotReporter)
	})

	t.Run("processed reports are immutable", func(t *testing.T) {
		r := pendingReport(t)
		require.NoError(t, r.Confirm("verified", time.Now()))
		err := r.Edit(r.ReporterID, "late edit")
		require.ErrorIs(t, err, noshow.ErrNotPending)
	})
}

func TestReport_AdminFlow(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("confirm from pending", func(t *testing.T) {
		r := pendingReport(t)
		require.NoError(t, r.Confirm("verified with chat logs", now))
		assert.Equal(t, noshow.StatusCompleted, r.Status)
		require.NotNil(t, r.ProcessedAt)
	})

	t.Run("confirm from hold", func(t *testing.T) {
		r := pendingReport(t)
		require.NoError(t, r.Hold("waiting for evidence"))
		require.NoError(t, r.Confirm("evidence arrived", now))
		assert.Equal(t, noshow.StatusCompleted, r.Status)
	})

	t.Run("withdraw only while pending", func(t *testing.T) {
		r := pendingReport(t)
		require.NoError(t, r.Withdraw())
		assert.Equal(t, noshow.StatusCancelled, r.Status)

		require.ErrorIs(t, r.Withdraw(), noshow.ErrNotPending)
	})
}

func TestResolveBuyerNoShow(t *testing.T) {
	assert.Equal(t, noshow.ResolutionCancelDeal, noshow.ResolveBuyerNoShow(3, 3))
	assert.Equal(t, noshow.ResolutionKeepDeal, noshow.ResolveBuyerNoShow(3, 2))
	assert.Equal(t, noshow.ResolutionCancelDeal, noshow.ResolveBuyerNoShow(1, 1))
}
