package queries

import (
	"context"
	"time"

	"hostel-admin/internal/domain/report"
	"hostel-admin/internal/infra/db"
	"hostel-admin/internal/pkg/config"
	"hostel-admin/internal/pkg/dates"
	"hostel-admin/internal/usecase/shared"

	"github.com/google/uuid"
)

const DefaultTopCompanies = 5

type ReportReadStore interface {
	// ReportRooms is the inventory a report counts: every room that is not archived.
	ReportRooms(ctx context.Context, db db.DBTX) ([]report.RoomInfo, error)
	// ReportStays returns non-cancelled stays overlapping span.
	ReportStays(ctx context.Context, db db.DBTX, span dates.Range) ([]report.Stay, error)
	// ReportPayments returns payments with from <= paid_at < to, PaidOn taken in loc.
	ReportPayments(ctx context.Context, db db.DBTX, from, to time.Time, loc *time.Location) ([]report.PaymentInfo, error)
	CompanyNames(ctx context.Context, db db.DBTX) (map[uuid.UUID]string, error)
}

// DashboardExporter renders a dashboard as a downloadable workbook.
type DashboardExporter interface {
	Export(d report.Dashboard, currency string) ([]byte, error)
}

type ReportQueries interface {
	Dashboard(ctx context.Context, window dates.Window, f report.Filter, top int) (*report.Dashboard, error)
	ExportDashboard(ctx context.Context, window dates.Window, f report.Filter, top int) ([]byte, error)
}

type reportQueriesImpl struct {
	uow      shared.UnitOfWork
	store    ReportReadStore
	exporter DashboardExporter
	hostel   config.HostelConfig
}

func NewReportQueries(
	uow shared.UnitOfWork,
	store ReportReadStore,
	exporter DashboardExporter,
	hostel config.HostelConfig,
) ReportQueries {
	return &reportQueriesImpl{uow: uow, store: store, exporter: exporter, hostel: hostel}
}

// Dashboard reads every input inside one snapshot so the occupancy, income and company
// sections agree with each other.
func (q *reportQueriesImpl) Dashboard(ctx context.Context, window dates.Window, f report.Filter, top int) (*report.Dashboard, error) {
	if top <= 0 {
		top = DefaultTopCompanies
	}

	loc := q.hostel.Location()
	span := window.HalfOpen()

	var in report.Inputs
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db db.DBTX) error {
		var err error
		if in.Rooms, err = q.store.ReportRooms(ctx, db); err != nil {
			return err
		}
		if in.Stays, err = q.store.ReportStays(ctx, db, span); err != nil {
			return err
		}
		if in.Payments, err = q.store.ReportPayments(ctx, db, span.Start.At(loc), span.End.At(loc), loc); err != nil {
			return err
		}
		in.CompanyNames, err = q.store.CompanyNames(ctx, db)
		return err
	})
	if err != nil {
		return nil, err
	}

	d := report.BuildDashboard(window, f, in, top)
	return &d, nil
}

func (q *reportQueriesImpl) ExportDashboard(ctx context.Context, window dates.Window, f report.Filter, top int) ([]byte, error) {
	d, err := q.Dashboard(ctx, window, f, top)
	if err != nil {
		return nil, err
	}
	return q.exporter.Export(*d, q.hostel.Currency)
}
