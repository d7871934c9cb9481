package repository

import (
	"context"
	"time"

	"hostel-admin/internal/domain/housekeeping"
	"hostel-admin/internal/infra"
	"hostel-admin/internal/infra/db"
	"hostel-admin/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type HousekeepingRepository struct {
	db db.DBTX
}

func NewHousekeepingRepository(db db.DBTX) *HousekeepingRepository {
	return &HousekeepingRepository{db: db}
}

// Upsert keeps the id of an existing (room, date) row and returns the stored state.
func (r *HousekeepingRepository) Upsert(ctx context.Context, e *housekeeping.Entry) (*housekeeping.Entry, error) {
	var (
		id        uuid.UUID
		status    string
		notes     string
		updatedBy pgtype.UUID
		updatedAt time.Time
	)
	err := r.db.QueryRow(ctx, `
		INSERT INTO housekeeping_entries (id, room_id, date, status, notes, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT ON CONSTRAINT housekeeping_entries_room_date_key
		DO UPDATE SET status = EXCLUDED.status, notes = EXCLUDED.notes,
			updated_by = EXCLUDED.updated_by, updated_at = now()
		RETURNING id, status, notes, updated_by, updated_at`,
		e.ID(), e.RoomID(), pgconv.DateToPgtype(e.Date()), string(e.Status()), e.Notes(),
		pgconv.UUIDPtrToPgtype(e.UpdatedBy()),
	).Scan(&id, &status, &notes, &updatedBy, &updatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to upsert housekeeping entry", err)
	}
	return housekeeping.ReconstructEntry(id, e.Key(), housekeeping.Status(status), notes,
		pgconv.UUIDPtrFromPgtype(updatedBy), updatedAt), nil
}
