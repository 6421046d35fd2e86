package components

import (
	"dungji-market/internal/handler"
	"dungji-market/internal/handler/api"
	"dungji-market/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewGroupBuyHandler,
		api.NewBidHandler,
		api.NewTokenHandler,
		api.NewCustomDealHandler,
		api.NewNoShowHandler,
		api.NewCronHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	groupBuy *api.GroupBuyHandler,
	bid *api.BidHandler,
	token *api.TokenHandler,
	customDeal *api.CustomDealHandler,
	noShow *api.NoShowHandler,
	cron *api.CronHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:       auth,
		GroupBuy:   groupBuy,
		Bid:        bid,
		Token:      token,
		CustomDeal: customDeal,
		NoShow:     noShow,
		Cron:       cron,
	}
}
