package queries

import (
	"context"

	"hostel-admin/internal/domain/housekeeping"
	"hostel-admin/internal/infra/db"
	"hostel-admin/internal/pkg/dates"
	"hostel-admin/internal/usecase/shared"
)

type HousekeepingReadStore interface {
	BoardRooms(ctx context.Context, db db.DBTX) ([]housekeeping.RoomRef, error)
	Entries(ctx context.Context, db db.DBTX, day dates.Date) ([]*housekeeping.Entry, error)
	// Movements returns non-cancelled stays that hold, start or end on day.
	Movements(ctx context.Context, db db.DBTX, day dates.Date) ([]housekeeping.Movement, error)
}

type HousekeepingBoard struct {
	Date dates.Date
	Rows []housekeeping.BoardRow
}

type HousekeepingQueries interface {
	Board(ctx context.Context, day dates.Date) (*HousekeepingBoard, error)
}

type housekeepingQueriesImpl struct {
	uow   shared.UnitOfWork
	store HousekeepingReadStore
}

func NewHousekeepingQueries(uow shared.UnitOfWork, store HousekeepingReadStore) HousekeepingQueries {
	return &housekeepingQueriesImpl{uow: uow, store: store}
}

func (q *housekeepingQueriesImpl) Board(ctx context.Context, day dates.Date) (*HousekeepingBoard, error) {
	var (
		rooms     []housekeeping.RoomRef
		entries   []*housekeeping.Entry
		movements []housekeeping.Movement
	)
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db db.DBTX) error {
		var err error
		if rooms, err = q.store.BoardRooms(ctx, db); err != nil {
			return err
		}
		if entries, err = q.store.Entries(ctx, db, day); err != nil {
			return err
		}
		movements, err = q.store.Movements(ctx, db, day)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &HousekeepingBoard{Date: day, Rows: housekeeping.BuildBoard(day, rooms, entries, movements)}, nil
}
