package queries

import (
	"context"

	"hostel-admin/internal/domain/report"
	"hostel-admin/internal/infra/db"
	"hostel-admin/internal/pkg/dates"
	"hostel-admin/internal/pkg/errs"
	"hostel-admin/internal/usecase/shared"
)

type CalendarReadStore interface {
	CalendarRooms(ctx context.Context, db db.DBTX) ([]report.CalendarRoom, error)
	CalendarEntries(ctx context.Context, db db.DBTX, window dates.Range) ([]report.CalendarEntry, error)
}

type CalendarQueries interface {
	Calendar(ctx context.Context, view report.View, anchor dates.Date) (*report.Calendar, error)
}

type calendarQueriesImpl struct {
	uow   shared.UnitOfWork
	store CalendarReadStore
}

func NewCalendarQueries(uow shared.UnitOfWork, store CalendarReadStore) CalendarQueries {
	return &calendarQueriesImpl{uow: uow, store: store}
}

func (q *calendarQueriesImpl) Calendar(ctx context.Context, view report.View, anchor dates.Date) (*report.Calendar, error) {
	window, err := report.ViewWindow(view, anchor)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	var (
		rooms   []report.CalendarRoom
		entries []report.CalendarEntry
	)
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, db db.DBTX) error {
		var err error
		if rooms, err = q.store.CalendarRooms(ctx, db); err != nil {
			return err
		}
		entries, err = q.store.CalendarEntries(ctx, db, window)
		return err
	})
	if err != nil {
		return nil, err
	}

	cal := report.Project(view, window, rooms, entries)
	return &cal, nil
}
