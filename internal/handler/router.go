package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"dungji-market/internal/domain/user"
	"dungji-market/internal/handler/api"
	"dungji-market/internal/handler/middleware"
	"dungji-market/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers bundles every API handler the router wires up.
type Handlers struct {
	Auth       *api.AuthHandler
	GroupBuy   *api.GroupBuyHandler
	Bid        *api.BidHandler
	Token      *api.TokenHandler
	CustomDeal *api.CustomDealHandler
	NoShow     *api.NoShowHandler
	Cron       *api.CronHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, am *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(am.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
				{Method: http.MethodGet, Path: "/notifications", Handler: h.Auth.MyNotifications},
			})
		}

		groupbuys := apiGroup.Group("/groupbuys")
		{
			// Listing and detail stay public; OptionalAuth feeds the
			// per-viewer bid amount masking.
			addRoutes(groupbuys, []route{
				{Method: http.MethodGet, Path: "", Handler: h.GroupBuy.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.GroupBuy.Get, Mw: []gin.HandlerFunc{am.OptionalAuth()}},
			})

			member := groupbuys.Group("")
			member.Use(am.RequireAuth())
			addRoutes(member, []route{
				{Method: http.MethodGet, Path: "/joined", Handler: h.GroupBuy.ListJoined},
				{Method: http.MethodPost, Path: "", Handler: h.GroupBuy.Create, Mw: []gin.HandlerFunc{am.RequireRole(user.RoleBuyer)}},
				{Method: http.MethodPost, Path: "/:id/join", Handler: h.GroupBuy.Join, Mw: []gin.HandlerFunc{am.RequireRole(user.RoleBuyer)}},
				{Method: http.MethodPost, Path: "/:id/leave", Handler: h.GroupBuy.Leave},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.GroupBuy.Cancel},
				{Method: http.MethodPost, Path: "/:id/decision", Handler: h.GroupBuy.BuyerDecide},
				{Method: http.MethodPost, Path: "/:id/seller-confirm", Handler: h.GroupBuy.SellerConfirm, Mw: []gin.HandlerFunc{am.RequireRole(user.RoleSeller)}},
				{Method: http.MethodPost, Path: "/:id/seller-decline", Handler: h.GroupBuy.SellerDecline, Mw: []gin.HandlerFunc{am.RequireRole(user.RoleSeller)}},
			})
		}

		bids := apiGroup.Group("/bids")
		bids.Use(am.RequireAuth(), am.RequireRole(user.RoleSeller))
		{
			addRoutes(bids, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Bid.Place},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Bid.Cancel},
				{Method: http.MethodGet, Path: "/groupbuys", Handler: h.Bid.ListBidOn},
			})
		}

		tokens := apiGroup.Group("/tokens")
		tokens.Use(am.RequireAuth(), am.RequireRole(user.RoleSeller))
		{
			addRoutes(tokens, []route{
				{Method: http.MethodPost, Path: "/purchase", Handler: h.Token.Purchase},
				{Method: http.MethodGet, Path: "", Handler: h.Token.MyTokens},
				{Method: http.MethodGet, Path: "/balance", Handler: h.Token.MyBalance},
			})
		}

		customdeals := apiGroup.Group("/customdeals")
		{
			addRoutes(customdeals, []route{
				{Method: http.MethodGet, Path: "", Handler: h.CustomDeal.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.CustomDeal.Get},
			})

			member := customdeals.Group("")
			member.Use(am.RequireAuth())
			addRoutes(member, []route{
				{Method: http.MethodPost, Path: "", Handler: h.CustomDeal.Create, Mw: []gin.HandlerFunc{am.RequireRole(user.RoleSeller)}},
				{Method: http.MethodGet, Path: "/mine", Handler: h.CustomDeal.MyDeals, Mw: []gin.HandlerFunc{am.RequireRole(user.RoleSeller)}},
				{Method: http.MethodGet, Path: "/seats", Handler: h.CustomDeal.MySeats},
				{Method: http.MethodPost, Path: "/:id/join", Handler: h.CustomDeal.Join, Mw: []gin.HandlerFunc{am.RequireRole(user.RoleBuyer)}},
				{Method: http.MethodGet, Path: "/:id/seat", Handler: h.CustomDeal.MySeat},
				{Method: http.MethodPost, Path: "/:id/close", Handler: h.CustomDeal.EarlyClose, Mw: []gin.HandlerFunc{am.RequireRole(user.RoleSeller)}},
				{Method: http.MethodPost, Path: "/:id/accept", Handler: h.CustomDeal.SellerAccept, Mw: []gin.HandlerFunc{am.RequireRole(user.RoleSeller)}},
				{Method: http.MethodPost, Path: "/:id/decline", Handler: h.CustomDeal.SellerDecline, Mw: []gin.HandlerFunc{am.RequireRole(user.RoleSeller)}},
				{Method: http.MethodPost, Path: "/:id/verify", Handler: h.CustomDeal.VerifyCode, Mw: []gin.HandlerFunc{am.RequireRole(user.RoleSeller)}},
			})
		}

		noshow := apiGroup.Group("/noshow-reports")
		noshow.Use(am.RequireAuth())
		{
			addRoutes(noshow, []route{
				{Method: http.MethodPost, Path: "", Handler: h.NoShow.Report},
				{Method: http.MethodGet, Path: "/mine", Handler: h.NoShow.MyReports},
				{Method: http.MethodGet, Path: "/:id", Handler: h.NoShow.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.NoShow.Edit},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.NoShow.Withdraw},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(am.RequireAuth(), am.RequireRole(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/noshow-reports", Handler: h.NoShow.Pending},
				{Method: http.MethodPost, Path: "/noshow-reports/:id/confirm", Handler: h.NoShow.AdminConfirm},
				{Method: http.MethodPost, Path: "/noshow-reports/:id/hold", Handler: h.NoShow.AdminHold},
			})
		}

		cron := apiGroup.Group("/cron")
		cron.Use(middleware.CronAuth(cfg.Cron.Secret))
		{
			addRoutes(cron, []route{
				{Method: http.MethodPost, Path: "/groupbuys/evaluate", Handler: h.Cron.EvaluateGroupBuys},
				{Method: http.MethodPost, Path: "/groupbuys/reconcile", Handler: h.Cron.ReconcileCounts},
				{Method: http.MethodPost, Path: "/customdeals/expire", Handler: h.Cron.ExpireCustomDeals},
				{Method: http.MethodPost, Path: "/tokens/expire", Handler: h.Cron.ExpireTokens},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
