package api

import (
	"context"
	"net/http"
	"strconv"

	"dungji-market/internal/domain/user"
	reqdto "dungji-market/internal/handler/dto/request"
	resdto "dungji-market/internal/handler/dto/response"
	"dungji-market/internal/handler/httperr"
	"dungji-market/internal/handler/middleware"
	"dungji-market/internal/usecase/commands"
	"dungji-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type NoShowHandler struct {
	cmds commands.NoShowCommands
	q    queries.NoShowQueries
}

func NewNoShowHandler(cmds commands.NoShowCommands, q queries.NoShowQueries) *NoShowHandler {
	return &NoShowHandler{cmds: cmds, q: q}
}

// @Summary File no-show report
// @Description Report the counterparty of a completed deal for not showing up
// @Tags noshow
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateNoShowReportRequest true "Report"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /noshow-reports [post]
func (h *NoShowHandler) Report(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Unauthorized", nil)
		return
	}

	var req reqdto.CreateNoShowReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.cmds.Report(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		abortWithMappedError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Get report
// @Description Visible to the report's parties and to admins
// @Tags noshow
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Success 200 {object} queries.NoShowReportView
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /noshow-reports/{id} [get]
func (h *NoShowHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	role, _ := middleware.GetUserRole(c)
	view, err := h.q.Get(c.Request.Context(), id, userID, role == user.RoleAdmin)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Edit report
// @Description Reporter's single allowed edit while the report is pending
// @Tags noshow
// @Accept json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Param request body reqdto.EditNoShowReportRequest true "New content"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /noshow-reports/{id} [patch]
func (h *NoShowHandler) Edit(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	var req reqdto.EditNoShowReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.cmds.Edit(c.Request.Context(), id, userID, req.Content); err != nil {
		abortWithMappedError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Withdraw report
// @Tags noshow
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /noshow-reports/{id} [delete]
func (h *NoShowHandler) Withdraw(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	if err := h.cmds.Withdraw(c.Request.Context(), id, userID); err != nil {
		abortWithMappedError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary My reports
// @Tags noshow
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.NoShowReportView
// @Failure 401 {object} map[string]string
// @Router /noshow-reports/mine [get]
func (h *NoShowHandler) MyReports(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Unauthorized", nil)
		return
	}

	reports, err := h.q.MyReports(c.Request.Context(), userID)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

// @Summary Pending reports
// @Description Admin queue of reports awaiting a decision
// @Tags noshow
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 50)"
// @Success 200 {array} queries.NoShowReportView
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/noshow-reports [get]
func (h *NoShowHandler) Pending(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		limit, _ = strconv.Atoi(v)
	}

	reports, err := h.q.PendingReports(c.Request.Context(), limit)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

// @Summary Confirm report
// @Description Admin validates the report; penalizes the offender and settles the deal
// @Tags noshow
// @Accept json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Param request body reqdto.AdminNoteRequest false "Admin note"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/noshow-reports/{id}/confirm [post]
func (h *NoShowHandler) AdminConfirm(c *gin.Context) {
	h.adminDecision(c, h.cmds.AdminConfirm)
}

// @Summary Hold report
// @Description Admin parks the report for later review
// @Tags noshow
// @Accept json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Param request body reqdto.AdminNoteRequest false "Admin note"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/noshow-reports/{id}/hold [post]
func (h *NoShowHandler) AdminHold(c *gin.Context) {
	h.adminDecision(c, h.cmds.AdminHold)
}

func (h *NoShowHandler) adminDecision(c *gin.Context, fn func(ctx context.Context, reportID uuid.UUID, note string) error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	var req reqdto.AdminNoteRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
			return
		}
	}

	if err := fn(c.Request.Context(), id, req.Note); err != nil {
		abortWithMappedError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
