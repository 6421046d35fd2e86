package api

import (
	"net/http"

	reqdto "dungji-market/internal/handler/dto/request"
	resdto "dungji-market/internal/handler/dto/response"
	"dungji-market/internal/handler/httperr"
	"dungji-market/internal/handler/middleware"
	"dungji-market/internal/pkg/clock"
	"dungji-market/internal/usecase/commands"
	"dungji-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TokenHandler struct {
	cmds  commands.TokenCommands
	q     queries.TokenQueries
	clock clock.Clock
}

func NewTokenHandler(cmds commands.TokenCommands, q queries.TokenQueries, clk clock.Clock) *TokenHandler {
	return &TokenHandler{cmds: cmds, q: q, clock: clk}
}

// @Summary Purchase bid tokens
// @Description Convert a payment into single-use tokens or an unlimited pass
// @Tags tokens
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PurchaseTokensRequest true "Purchase request"
// @Success 201 {object} resdto.PurchaseTokensResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /tokens/purchase [post]
func (h *TokenHandler) Purchase(c *gin.Context) {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Unauthorized", nil)
		return
	}

	var req reqdto.PurchaseTokensRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Purchase(c.Request.Context(), sellerID, commands.PurchaseTokensInput{
		Plan:      req.Plan,
		AmountKRW: req.AmountKRW,
	})
	if err != nil {
		abortWithMappedError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromPurchaseResult(result))
}

// @Summary My tokens
// @Tags tokens
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.TokenView
// @Failure 401 {object} map[string]string
// @Router /tokens [get]
func (h *TokenHandler) MyTokens(c *gin.Context) {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Unauthorized", nil)
		return
	}

	tokens, err := h.q.MyTokens(c.Request.Context(), sellerID)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tokens": tokens})
}

// @Summary My token balance
// @Tags tokens
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.TokenBalance
// @Failure 401 {object} map[string]string
// @Router /tokens/balance [get]
func (h *TokenHandler) MyBalance(c *gin.Context) {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Unauthorized", nil)
		return
	}

	balance, err := h.q.MyBalance(c.Request.Context(), sellerID, h.clock.Now())
	if err != nil {
		abortWithMappedError(c, err)
		return
	}

	c.JSON(http.StatusOK, balance)
}
