package readstore

import (
	"context"

	"hostel-admin/internal/infra"
	"hostel-admin/internal/infra/db"
	"hostel-admin/internal/pkg/pgconv"
	"hostel-admin/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(db db.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var (
		v         queries.AuthorizedUserView
		lastLogin pgtype.Timestamptz
	)
	err := s.db.QueryRow(ctx, `
		SELECT id, email, role, full_name, last_login_at, is_active
		FROM staff_users WHERE id = $1`, id,
	).Scan(&v.ID, &v.Email, &v.Role, &v.FullName, &lastLogin, &v.IsActive)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	v.LastLogin = pgconv.TimePtrFromPgtype(lastLogin)
	return &v, nil
}
