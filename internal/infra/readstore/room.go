package readstore

import (
	"context"

	"hostel-admin/internal/domain/room"
	"hostel-admin/internal/infra"
	"hostel-admin/internal/infra/db"
	"hostel-admin/internal/pkg/pgconv"
	"hostel-admin/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const roomViewColumns = `id, code, name, room_type, capacity_adults, capacity_children, status,
	base_rate, currency, sort_order, created_at, updated_at`

type RoomReadStore struct {
	db db.DBTX
}

func NewRoomReadStore(db db.DBTX) *RoomReadStore {
	return &RoomReadStore{db: db}
}

func (s *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	v, err := scanRoomView(s.db.QueryRow(ctx, `SELECT `+roomViewColumns+` FROM rooms WHERE id = $1`, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find room", err)
	}
	return v, nil
}

func (s *RoomReadStore) List(ctx context.Context, f queries.RoomFilter) ([]*queries.RoomView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+roomViewColumns+`
		FROM rooms
		WHERE ($1 = '' OR status = $1)
		  AND ($2 = '' OR room_type = $2)
		  AND ($3 OR status <> $4)
		ORDER BY sort_order, code`,
		f.Status, f.RoomType, f.IncludeArchived || f.Status == string(room.StatusArchived), string(room.StatusArchived),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	var out []*queries.RoomView
	for rows.Next() {
		v, err := scanRoomView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan room", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate rooms", err)
	}
	return out, nil
}

func scanRoomView(row pgx.Row) (*queries.RoomView, error) {
	var (
		v    queries.RoomView
		rate pgtype.Numeric
	)
	if err := row.Scan(&v.ID, &v.Code, &v.Name, &v.RoomType, &v.CapacityAdults, &v.CapacityChildren,
		&v.Status, &rate, &v.Currency, &v.SortOrder, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, err
	}
	baseRate, err := pgconv.DecimalFromPgtype(rate)
	if err != nil {
		return nil, err
	}
	v.BaseRate = baseRate
	return &v, nil
}
