package components

import (
	"grocery-admin/internal/pkg/clock"
	"grocery-admin/internal/pkg/config"
	"grocery-admin/internal/usecase"
	"grocery-admin/internal/usecase/commands"
	"grocery-admin/internal/usecase/queries"
	"grocery-admin/internal/usecase/shared"

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
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewOfferCommands,
		NewPayoutCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewOfferQueries,
		queries.NewPayoutQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewPayoutCommands(uow shared.UnitOfWork, locker shared.Locker, clk clock.Clock, cfg config.Config) commands.PayoutCommands {
	return commands.NewPayoutCommands(uow, locker, clk, cfg.Payout.ReviewLockTTL)
}
