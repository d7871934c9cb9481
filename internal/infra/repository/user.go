package repository

import (
	"context"
	"time"

	"hostel-admin/internal/domain/user"
	"hostel-admin/internal/infra"
	"hostel-admin/internal/infra/db"
	"hostel-admin/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(db db.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*user.User, error) {
	var (
		id                   uuid.UUID
		rawEmail, hash, role string
		fullName             string
		lastLogin            pgtype.Timestamptz
		isActive             bool
		createdAt, updatedAt time.Time
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, email, password_hash, role, full_name, last_login_at, is_active, created_at, updated_at
		FROM staff_users WHERE email = $1`, email.Value(),
	).Scan(&id, &rawEmail, &hash, &role, &fullName, &lastLogin, &isActive, &createdAt, &updatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}

	stored, err := user.NewEmail(rawEmail)
	if err != nil {
		return nil, infra.WrapRepoErr("stored user email is invalid", err)
	}
	return user.ReconstructUser(id, stored, hash, user.Role(role), fullName,
		pgconv.TimePtrFromPgtype(lastLogin), isActive, createdAt, updatedAt), nil
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO staff_users (id, email, password_hash, role, full_name, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		u.ID(), u.Email().Value(), u.PasswordHash(), string(u.Role()), u.FullName(), u.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `UPDATE staff_users SET last_login_at = now() WHERE id = $1`, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}
