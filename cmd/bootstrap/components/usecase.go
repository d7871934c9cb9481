package components

import (
	"hostel-admin/internal/domain/reservation"
	"hostel-admin/internal/pkg/clock"
	"hostel-admin/internal/usecase/commands"
	"hostel-admin/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		reservation.NewNightlyRateCalculator,
		fx.As(new(reservation.PriceCalculator)),
	),
	reservation.NewFactory,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewUserCommands,
		commands.NewRoomCommands,
		commands.NewGuestCommands,
		commands.NewCompanyCommands,
		commands.NewReservationCommands,
		commands.NewPaymentCommands,
		commands.NewHousekeepingCommands,
		commands.NewVoucherCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewRoomQueries,
		queries.NewGuestQueries,
		queries.NewCompanyQueries,
		queries.NewReservationQueries,
		queries.NewPaymentQueries,
		queries.NewHousekeepingQueries,
		queries.NewCalendarQueries,
		queries.NewReportQueries,
		queries.NewVoucherQueries,
	),
)
