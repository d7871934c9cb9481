package readstore

import (
	"context"
	"time"

	"hostel-admin/internal/domain/housekeeping"
	"hostel-admin/internal/domain/reservation"
	"hostel-admin/internal/domain/room"
	"hostel-admin/internal/infra"
	"hostel-admin/internal/infra/db"
	"hostel-admin/internal/pkg/dates"
	"hostel-admin/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type HousekeepingReadStore struct{}

func NewHousekeepingReadStore() *HousekeepingReadStore {
	return &HousekeepingReadStore{}
}

func (s *HousekeepingReadStore) BoardRooms(ctx context.Context, db db.DBTX) ([]housekeeping.RoomRef, error) {
	rows, err := db.Query(ctx, `
		SELECT id, code, name, room_type, sort_order FROM rooms
		WHERE status <> $1
		ORDER BY sort_order, code`, string(room.StatusArchived))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load board rooms", err)
	}
	defer rows.Close()

	var out []housekeeping.RoomRef
	for rows.Next() {
		var r housekeeping.RoomRef
		if err := rows.Scan(&r.ID, &r.Code, &r.Name, &r.RoomType, &r.SortOrder); err != nil {
			return nil, infra.WrapRepoErr("failed to scan board room", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate board rooms", err)
	}
	return out, nil
}

func (s *HousekeepingReadStore) Entries(ctx context.Context, db db.DBTX, day dates.Date) ([]*housekeeping.Entry, error) {
	rows, err := db.Query(ctx, `
		SELECT id, room_id, status, notes, updated_by, updated_at
		FROM housekeeping_entries
		WHERE date = $1`, pgconv.DateToPgtype(day))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load housekeeping entries", err)
	}
	defer rows.Close()

	var out []*housekeeping.Entry
	for rows.Next() {
		var (
			id, roomID    uuid.UUID
			status, notes string
			updatedBy     pgtype.UUID
			updatedAt     time.Time
		)
		if err := rows.Scan(&id, &roomID, &status, &notes, &updatedBy, &updatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan housekeeping entry", err)
		}
		key := housekeeping.Key{RoomID: roomID, Date: day}
		out = append(out, housekeeping.ReconstructEntry(id, key, housekeeping.Status(status), notes,
			pgconv.UUIDPtrFromPgtype(updatedBy), updatedAt))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate housekeeping entries", err)
	}
	return out, nil
}

func (s *HousekeepingReadStore) Movements(ctx context.Context, db db.DBTX, day dates.Date) ([]housekeeping.Movement, error) {
	rows, err := db.Query(ctx, `
		SELECT room_id, check_in, check_out
		FROM reservations
		WHERE check_in <= $1 AND check_out >= $1 AND status <> $2`,
		pgconv.DateToPgtype(day), string(reservation.StatusCancelled))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load room movements", err)
	}
	defer rows.Close()

	var out []housekeeping.Movement
	for rows.Next() {
		var (
			m                 housekeeping.Movement
			checkIn, checkOut pgtype.Date
		)
		if err := rows.Scan(&m.RoomID, &checkIn, &checkOut); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room movement", err)
		}
		m.Stay = dates.Range{Start: pgconv.DateFromPgtype(checkIn), End: pgconv.DateFromPgtype(checkOut)}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room movements", err)
	}
	return out, nil
}
