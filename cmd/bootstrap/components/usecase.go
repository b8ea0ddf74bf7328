package components

import (
	"rentaldesk/internal/domain/selection"
	"rentaldesk/internal/pkg/clock"
	"rentaldesk/internal/pkg/config"
	"rentaldesk/internal/usecase"
	"rentaldesk/internal/usecase/commands"
	"rentaldesk/internal/usecase/queries"

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
	func(cfg config.BookingConfig) *selection.Validator {
		return selection.NewValidator(cfg.MaxSlots)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewProductCommands,
		commands.NewEquipmentCommands,
		commands.NewReservationCommands,
		commands.NewDraftCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewProductQueries,
		queries.NewAvailabilityQueries,
		queries.NewEquipmentQueries,
		queries.NewReservationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
