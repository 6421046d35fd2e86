package api

import (
	"net/http"

	"dungji-market/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// CronHandler exposes the deadline sweeps to an external scheduler. The
// routes sit behind the cron-secret middleware, not user auth.
type CronHandler struct {
	sweeps commands.SweepCommands
}

func NewCronHandler(sweeps commands.SweepCommands) *CronHandler {
	return &CronHandler{sweeps: sweeps}
}

// @Summary Evaluate group buy deadlines
// @Description Advance every group purchase whose deadline passed
// @Tags cron
// @Produce json
// @Success 200 {object} commands.SweepResult
// @Failure 401 {object} map[string]string
// @Router /cron/groupbuys/evaluate [post]
func (h *CronHandler) EvaluateGroupBuys(c *gin.Context) {
	result, err := h.sweeps.EvaluateGroupBuyDeadlines(c.Request.Context())
	if err != nil {
		abortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Expire custom deals
// @Description Expire lapsed recruiting windows and timed-out seller decisions
// @Tags cron
// @Produce json
// @Success 200 {object} commands.SweepResult
// @Failure 401 {object} map[string]string
// @Router /cron/customdeals/expire [post]
func (h *CronHandler) ExpireCustomDeals(c *gin.Context) {
	result, err := h.sweeps.ExpireCustomDeals(c.Request.Context())
	if err != nil {
		abortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Expire tokens
// @Tags cron
// @Produce json
// @Success 200 {object} map[string]int64
// @Failure 401 {object} map[string]string
// @Router /cron/tokens/expire [post]
func (h *CronHandler) ExpireTokens(c *gin.Context) {
	n, err := h.sweeps.ExpireTokens(c.Request.Context())
	if err != nil {
		abortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"expired": n})
}

// @Summary Reconcile participant counters
// @Description Recompute cached participant counts from the participations table
// @Tags cron
// @Produce json
// @Success 200 {object} map[string]int64
// @Failure 401 {object} map[string]string
// @Router /cron/groupbuys/reconcile [post]
func (h *CronHandler) ReconcileCounts(c *gin.Context) {
	n, err := h.sweeps.ReconcileParticipantCounts(c.Request.Context())
	if err != nil {
		abortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"corrected": n})
}
