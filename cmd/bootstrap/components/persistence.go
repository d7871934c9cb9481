package components

import (
	"hostel-admin/internal/infra/db"
	"hostel-admin/internal/infra/readstore"
	"hostel-admin/internal/infra/uow"
	"hostel-admin/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
)

var baseOption = fx.Provide(
	NewDBTX,
	// write repositories are built per transaction inside the unit of work
	uow.NewPostgresUoW,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewRoomReadStore,
			fx.As(new(queries.RoomReadStore)),
		),
		fx.Annotate(
			readstore.NewGuestReadStore,
			fx.As(new(queries.GuestReadStore)),
		),
		fx.Annotate(
			readstore.NewCompanyReadStore,
			fx.As(new(queries.CompanyReadStore)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		fx.Annotate(
			readstore.NewPaymentReadStore,
			fx.As(new(queries.PaymentReadStore)),
		),
		// snapshot stores take their connection per call
		fx.Annotate(
			readstore.NewHousekeepingReadStore,
			fx.As(new(queries.HousekeepingReadStore)),
		),
		fx.Annotate(
			readstore.NewReportReadStore,
			fx.As(new(queries.ReportReadStore)),
			fx.As(new(queries.CalendarReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
