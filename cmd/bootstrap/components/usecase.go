package components

import (
	"dungji-market/internal/domain/penalty"
	"dungji-market/internal/pkg/clock"
	"dungji-market/internal/pkg/config"
	"dungji-market/internal/usecase"
	"dungji-market/internal/usecase/commands"
	"dungji-market/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewPenaltyPolicy,
	NewTokenConfig,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewGroupBuyCommands,
		commands.NewBidCommands,
		commands.NewDecisionCommands,
		commands.NewTokenCommands,
		commands.NewCustomDealCommands,
		commands.NewNoShowCommands,
		commands.NewSweepCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewGroupBuyQueries,
		queries.NewCustomDealQueries,
		queries.NewTokenQueries,
		queries.NewNoShowQueries,
		queries.NewUserQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewPenaltyPolicy(cfg config.Config) (penalty.Policy, error) {
	return penalty.NewPolicy(cfg.Penalty.Scheme, cfg.Penalty.FlatHours)
}

func NewTokenConfig(cfg config.Config) config.TokenConfig {
	return cfg.Token
}
