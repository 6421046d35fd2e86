package api

import (
	"context"
	"net/http"
	"strconv"

	reqdto "dungji-market/internal/handler/dto/request"
	resdto "dungji-market/internal/handler/dto/response"
	"dungji-market/internal/handler/httperr"
	"dungji-market/internal/handler/middleware"
	"dungji-market/internal/usecase/commands"
	"dungji-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type GroupBuyHandler struct {
	cmds      commands.GroupBuyCommands
	decisions commands.DecisionCommands
	q         queries.GroupBuyQueries
}

func NewGroupBuyHandler(cmds commands.GroupBuyCommands, decisions commands.DecisionCommands, q queries.GroupBuyQueries) *GroupBuyHandler {
	return &GroupBuyHandler{cmds: cmds, decisions: decisions, q: q}
}

// @Summary Create group buy
// @Description Open a new group purchase; the creator joins automatically
// @Tags groupbuys
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateGroupBuyRequest true "Create request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /groupbuys [post]
func (h *GroupBuyHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Unauthorized", nil)
		return
	}

	var req reqdto.CreateGroupBuyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		abortWithMappedError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary List group buys
// @Description Browse open group purchases with optional status and region filters
// @Tags groupbuys
// @Produce json
// @Param status query string false "Status filter"
// @Param region query string false "Region filter"
// @Param limit query int false "Max items (default 20)"
// @Param offset query int false "Offset"
// @Success 200 {array} queries.GroupBuyView
// @Router /groupbuys [get]
func (h *GroupBuyHandler) List(c *gin.Context) {
	f := queries.GroupBuyFilter{
		Status: c.Query("status"),
		Region: c.Query("region"),
	}
	if v := c.Query("limit"); v != "" {
		f.Limit, _ = strconv.Atoi(v)
	}
	if v := c.Query("offset"); v != "" {
		f.Offset, _ = strconv.Atoi(v)
	}

	views, err := h.q.List(c.Request.Context(), f)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"groupbuys": views})
}

// @Summary Get group buy
// @Description Group purchase detail with bids, amounts masked per viewer
// @Tags groupbuys
// @Produce json
// @Param id path string true "Group buy ID"
// @Success 200 {object} queries.GroupBuyDetailView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /groupbuys/{id} [get]
func (h *GroupBuyHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	// Anonymous viewers get uuid.Nil and see every amount masked.
	viewerID, _ := middleware.GetUserID(c)

	detail, err := h.q.Get(c.Request.Context(), id, viewerID)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// @Summary Join group buy
// @Tags groupbuys
// @Security BearerAuth
// @Param id path string true "Group buy ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /groupbuys/{id}/join [post]
func (h *GroupBuyHandler) Join(c *gin.Context) {
	h.memberAction(c, h.cmds.Join)
}

// @Summary Leave group buy
// @Description Leave while the deal is still recruiting
// @Tags groupbuys
// @Security BearerAuth
// @Param id path string true "Group buy ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /groupbuys/{id}/leave [post]
func (h *GroupBuyHandler) Leave(c *gin.Context) {
	h.memberAction(c, h.cmds.Leave)
}

// @Summary Cancel group buy
// @Description Creator cancels a recruiting deal with no bids
// @Tags groupbuys
// @Security BearerAuth
// @Param id path string true "Group buy ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /groupbuys/{id}/cancel [post]
func (h *GroupBuyHandler) Cancel(c *gin.Context) {
	h.memberAction(c, h.cmds.CancelByCreator)
}

func (h *GroupBuyHandler) memberAction(c *gin.Context, fn func(ctx context.Context, groupBuyID, userID uuid.UUID) error) {
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
	if err := fn(c.Request.Context(), id, userID); err != nil {
		abortWithMappedError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Buyer final decision
// @Description Confirm or back out during the 12h final selection window
// @Tags groupbuys
// @Accept json
// @Security BearerAuth
// @Param id path string true "Group buy ID"
// @Param request body reqdto.BuyerDecisionRequest true "Decision"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /groupbuys/{id}/decision [post]
func (h *GroupBuyHandler) BuyerDecide(c *gin.Context) {
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

	var req reqdto.BuyerDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.decisions.BuyerDecide(c.Request.Context(), id, userID, *req.Confirmed); err != nil {
		abortWithMappedError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Seller confirm
// @Description Winning seller confirms the deal within the 6h window
// @Tags groupbuys
// @Security BearerAuth
// @Param id path string true "Group buy ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /groupbuys/{id}/seller-confirm [post]
func (h *GroupBuyHandler) SellerConfirm(c *gin.Context) {
	h.memberAction(c, h.decisions.SellerConfirm)
}

// @Summary Seller decline
// @Description Winning seller declines; a penalty applies when enough buyers confirmed
// @Tags groupbuys
// @Security BearerAuth
// @Param id path string true "Group buy ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /groupbuys/{id}/seller-decline [post]
func (h *GroupBuyHandler) SellerDecline(c *gin.Context) {
	h.memberAction(c, h.decisions.SellerDecline)
}

// @Summary My joined group buys
// @Tags groupbuys
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.GroupBuyView
// @Failure 401 {object} map[string]string
// @Router /groupbuys/joined [get]
func (h *GroupBuyHandler) ListJoined(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Unauthorized", nil)
		return
	}

	views, err := h.q.ListJoined(c.Request.Context(), userID)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"groupbuys": views})
}
