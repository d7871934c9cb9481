package components

import (
	"hostel-admin/internal/handler"
	"hostel-admin/internal/handler/api"
	"hostel-admin/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewHostelToday,
		api.NewAuthHandler,
		api.NewUserHandler,
		api.NewRoomHandler,
		api.NewGuestHandler,
		api.NewCompanyHandler,
		api.NewReservationHandler,
		api.NewPaymentHandler,
		api.NewHousekeepingHandler,
		api.NewCalendarHandler,
		api.NewReportHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
