package readstore

import (
	"context"

	"hostel-admin/internal/infra"
	"hostel-admin/internal/infra/db"
	"hostel-admin/internal/pkg/pgconv"
	"hostel-admin/internal/pkg/ptr"
	"hostel-admin/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const guestViewColumns = `id, full_name, document_id, email, phone, nationality, is_active, created_at, updated_at`

type GuestReadStore struct {
	db db.DBTX
}

func NewGuestReadStore(db db.DBTX) *GuestReadStore {
	return &GuestReadStore{db: db}
}

func (s *GuestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.GuestView, error) {
	v, err := scanGuestView(s.db.QueryRow(ctx, `SELECT `+guestViewColumns+` FROM guests WHERE id = $1`, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find guest", err)
	}
	return v, nil
}

func (s *GuestReadStore) Search(ctx context.Context, term string, after *queries.GuestKey, limit int32) ([]*queries.GuestView, error) {
	var (
		afterName string
		afterID   = uuid.Nil
	)
	if after != nil {
		afterName, afterID = after.FullName, after.ID
	}

	rows, err := s.db.Query(ctx, `
		SELECT `+guestViewColumns+`
		FROM guests
		WHERE ($1 = '' OR full_name ILIKE '%' || $1 || '%' OR document_id ILIKE $1 || '%' OR email ILIKE $1 || '%')
		  AND ($2::uuid IS NULL OR (full_name, id) > ($3, $2::uuid))
		ORDER BY full_name, id
		LIMIT $4`,
		escapeLike(term), pgconv.UUIDPtrToPgtype(ptr.NilIfZero(afterID)), afterName, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search guests", err)
	}
	defer rows.Close()

	var out []*queries.GuestView
	for rows.Next() {
		v, err := scanGuestView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan guest", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate guests", err)
	}
	return out, nil
}

func scanGuestView(row pgx.Row) (*queries.GuestView, error) {
	var v queries.GuestView
	if err := row.Scan(&v.ID, &v.FullName, &v.DocumentID, &v.Email, &v.Phone, &v.Nationality,
		&v.IsActive, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, err
	}
	return &v, nil
}
