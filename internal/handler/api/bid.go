package api

import (
	"net/http"

	reqdto "dungji-market/internal/handler/dto/request"
	resdto "dungji-market/internal/handler/dto/response"
	"dungji-market/internal/handler/httperr"
	"dungji-market/internal/handler/middleware"
	"dungji-market/internal/usecase/commands"
	"dungji-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BidHandler struct {
	cmds commands.BidCommands
	q    queries.GroupBuyQueries
}

func NewBidHandler(cmds commands.BidCommands, q queries.GroupBuyQueries) *BidHandler {
	return &BidHandler{cmds: cmds, q: q}
}

// @Summary Place bid
// @Description Place a bid on a recruiting group buy; consumes a bid token
// @Tags bids
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PlaceBidRequest true "Bid request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bids [post]
func (h *BidHandler) Place(c *gin.Context) {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Unauthorized", nil)
		return
	}

	var req reqdto.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.cmds.Place(c.Request.Context(), sellerID, req.ToInput())
	if err != nil {
		abortWithMappedError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Cancel bid
// @Description Withdraw a pending bid; a consumed single-use token is refunded
// @Tags bids
// @Security BearerAuth
// @Param id path string true "Bid ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bids/{id} [delete]
func (h *BidHandler) Cancel(c *gin.Context) {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Unauthorized", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	if err := h.cmds.Cancel(c.Request.Context(), id, sellerID); err != nil {
		abortWithMappedError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Group buys I bid on
// @Tags bids
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.GroupBuyView
// @Failure 401 {object} map[string]string
// @Router /bids/groupbuys [get]
func (h *BidHandler) ListBidOn(c *gin.Context) {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Unauthorized", nil)
		return
	}

	views, err := h.q.ListBidOn(c.Request.Context(), sellerID)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"groupbuys": views})
}
