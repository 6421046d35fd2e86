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

type CustomDealHandler struct {
	cmds commands.CustomDealCommands
	q    queries.CustomDealQueries
}

func NewCustomDealHandler(cmds commands.CustomDealCommands, q queries.CustomDealQueries) *CustomDealHandler {
	return &CustomDealHandler{cmds: cmds, q: q}
}

// @Summary Create custom deal
// @Description Seller opens a flash deal with a participant target and wait window
// @Tags customdeals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCustomDealRequest true "Create request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /customdeals [post]
func (h *CustomDealHandler) Create(c *gin.Context) {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Unauthorized", nil)
		return
	}

	var req reqdto.CreateCustomDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), sellerID, req.ToInput())
	if err != nil {
		abortWithMappedError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary List custom deals
// @Tags customdeals
// @Produce json
// @Param status query string false "Status filter"
// @Param limit query int false "Max items (default 20)"
// @Param offset query int false "Offset"
// @Success 200 {array} queries.CustomDealView
// @Router /customdeals [get]
func (h *CustomDealHandler) List(c *gin.Context) {
	f := queries.CustomDealFilter{Status: c.Query("status")}
	if v := c.Query("limit"); v != "" {
		f.Limit, _ = strconv.Atoi(v)
	}
	if v := c.Query("offset"); v != "" {
		f.Offset, _ = strconv.Atoi(v)
	}

	deals, err := h.q.List(c.Request.Context(), f)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deals": deals})
}

// @Summary Get custom deal
// @Tags customdeals
// @Produce json
// @Param id path string true "Deal ID"
// @Success 200 {object} queries.CustomDealView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /customdeals/{id} [get]
func (h *CustomDealHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	deal, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}

	c.JSON(http.StatusOK, deal)
}

// @Summary Join custom deal
// @Description Take a seat; returns the participation code to show at redemption
// @Tags customdeals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Deal ID"
// @Success 201 {object} resdto.JoinCustomDealResponse
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /customdeals/{id}/join [post]
func (h *CustomDealHandler) Join(c *gin.Context) {
	buyerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	code, err := h.cmds.Join(c.Request.Context(), id, buyerID)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.JoinCustomDealResponse{ParticipationCode: code})
}

// @Summary Close early
// @Description Seller finishes recruiting at the current headcount
// @Tags customdeals
// @Security BearerAuth
// @Param id path string true "Deal ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /customdeals/{id}/close [post]
func (h *CustomDealHandler) EarlyClose(c *gin.Context) {
	h.sellerAction(c, h.cmds.EarlyClose)
}

// @Summary Seller accept
// @Description Approve a pending offline deal within the 24h window
// @Tags customdeals
// @Security BearerAuth
// @Param id path string true "Deal ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /customdeals/{id}/accept [post]
func (h *CustomDealHandler) SellerAccept(c *gin.Context) {
	h.sellerAction(c, h.cmds.SellerAccept)
}

// @Summary Seller decline
// @Description Cancel a pending offline deal
// @Tags customdeals
// @Security BearerAuth
// @Param id path string true "Deal ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /customdeals/{id}/decline [post]
func (h *CustomDealHandler) SellerDecline(c *gin.Context) {
	h.sellerAction(c, h.cmds.SellerDecline)
}

// @Summary Redeem participation code
// @Description Seller checks off a buyer's code at the point of sale
// @Tags customdeals
// @Accept json
// @Security BearerAuth
// @Param id path string true "Deal ID"
// @Param request body reqdto.VerifyCodeRequest true "Participation code"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /customdeals/{id}/verify [post]
func (h *CustomDealHandler) VerifyCode(c *gin.Context) {
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
	var req reqdto.VerifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.VerifyCode(c.Request.Context(), id, sellerID, req.Code); err != nil {
		abortWithMappedError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CustomDealHandler) sellerAction(c *gin.Context, fn func(ctx context.Context, dealID, sellerID uuid.UUID) error) {
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
	if err := fn(c.Request.Context(), id, sellerID); err != nil {
		abortWithMappedError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary My seat in a deal
// @Description Participation code plus discount link/code once issued
// @Tags customdeals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Deal ID"
// @Success 200 {object} queries.CustomSeatView
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /customdeals/{id}/seat [get]
func (h *CustomDealHandler) MySeat(c *gin.Context) {
	buyerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	seat, err := h.q.MySeat(c.Request.Context(), id, buyerID)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}

	c.JSON(http.StatusOK, seat)
}

// @Summary My seats
// @Tags customdeals
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.CustomSeatView
// @Failure 401 {object} map[string]string
// @Router /customdeals/seats [get]
func (h *CustomDealHandler) MySeats(c *gin.Context) {
	buyerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Unauthorized", nil)
		return
	}

	seats, err := h.q.MySeats(c.Request.Context(), buyerID)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"seats": seats})
}

// @Summary My custom deals
// @Description Deals created by the current seller
// @Tags customdeals
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.CustomDealView
// @Failure 401 {object} map[string]string
// @Router /customdeals/mine [get]
func (h *CustomDealHandler) MyDeals(c *gin.Context) {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Unauthorized", nil)
		return
	}

	deals, err := h.q.MyDeals(c.Request.Context(), sellerID)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deals": deals})
}
