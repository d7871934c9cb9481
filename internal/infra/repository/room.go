package repository

import (
	"context"
	"time"

	"hostel-admin/internal/domain/room"
	"hostel-admin/internal/infra"
	"hostel-admin/internal/infra/db"
	"hostel-admin/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const roomColumns = `id, code, name, room_type, capacity_adults, capacity_children, status,
	base_rate, currency, sort_order, created_at, updated_at`

type RoomRepository struct {
	db db.DBTX
}

func NewRoomRepository(db db.DBTX) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	row := r.db.QueryRow(ctx, `SELECT `+roomColumns+` FROM rooms WHERE id = $1`, id)
	rm, err := scanRoom(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find room", err)
	}
	return rm, nil
}

func (r *RoomRepository) Create(ctx context.Context, rm *room.Room) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO rooms (id, code, name, room_type, capacity_adults, capacity_children, status,
			base_rate, currency, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		rm.ID(), rm.Code(), rm.Name(), rm.RoomType(), rm.CapacityAdults(), rm.CapacityChildren(),
		string(rm.Status()), pgconv.DecimalToPgtype(rm.BaseRate()), rm.Currency(), rm.SortOrder(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create room", err)
	}
	return nil
}

func (r *RoomRepository) Update(ctx context.Context, rm *room.Room) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE rooms SET code = $2, name = $3, room_type = $4, capacity_adults = $5,
			capacity_children = $6, status = $7, base_rate = $8, currency = $9, sort_order = $10,
			updated_at = now()
		WHERE id = $1`,
		rm.ID(), rm.Code(), rm.Name(), rm.RoomType(), rm.CapacityAdults(), rm.CapacityChildren(),
		string(rm.Status()), pgconv.DecimalToPgtype(rm.BaseRate()), rm.Currency(), rm.SortOrder(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanRoom(row pgx.Row) (*room.Room, error) {
	var (
		id                   uuid.UUID
		attrs                room.Attributes
		status               string
		rate                 pgtype.Numeric
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &attrs.Code, &attrs.Name, &attrs.RoomType, &attrs.CapacityAdults,
		&attrs.CapacityChildren, &status, &rate, &attrs.Currency, &attrs.SortOrder,
		&createdAt, &updatedAt); err != nil {
		return nil, err
	}
	baseRate, err := pgconv.DecimalFromPgtype(rate)
	if err != nil {
		return nil, err
	}
	attrs.BaseRate = baseRate
	return room.ReconstructRoom(id, attrs, room.Status(status), createdAt, updatedAt), nil
}
