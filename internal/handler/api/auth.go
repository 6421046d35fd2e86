package api

import (
	"net/http"
	"strconv"

	reqdto "dungji-market/internal/handler/dto/request"
	resdto "dungji-market/internal/handler/dto/response"
	"dungji-market/internal/handler/httperr"
	"dungji-market/internal/handler/middleware"
	"dungji-market/internal/pkg/clock"
	"dungji-market/internal/usecase/commands"
	"dungji-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds  commands.AuthCommands
	users queries.UserQueries
	clock clock.Clock
}

func NewAuthHandler(cmds commands.AuthCommands, users queries.UserQueries, clk clock.Clock) *AuthHandler {
	return &AuthHandler{cmds: cmds, users: users, clock: clk}
}

// @Summary Register
// @Description Register a new buyer or seller account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Registration request"
// @Success 201 {object} resdto.RegisterResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	userID, err := h.cmds.Register(c.Request.Context(), commands.RegisterInput{
		Email:    req.Email,
		Nickname: req.Nickname,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		abortWithMappedError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.RegisterResponse{UserID: userID})
}

// @Summary Login
// @Description Authenticate and receive an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromLoginResult(result))
}

// @Summary Me
// @Description Current user's profile including any active penalty
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.UserView
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Unauthorized", nil)
		return
	}

	view, err := h.users.Me(c.Request.Context(), userID, h.clock.Now())
	if err != nil {
		abortWithMappedError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary My notifications
// @Description Recent in-app notifications for the current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 30)"
// @Success 200 {array} queries.NotificationView
// @Failure 401 {object} map[string]string
// @Router /auth/notifications [get]
func (h *AuthHandler) MyNotifications(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Unauthorized", nil)
		return
	}

	limit := 0
	if v := c.Query("limit"); v != "" {
		limit, _ = strconv.Atoi(v)
	}

	items, err := h.users.MyNotifications(c.Request.Context(), userID, limit)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": items})
}
