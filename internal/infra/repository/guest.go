package repository

import (
	"context"
	"time"

	"hostel-admin/internal/domain/guest"
	"hostel-admin/internal/infra"
	"hostel-admin/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const guestColumns = `id, full_name, document_id, email, phone, nationality, is_active, created_at, updated_at`

type GuestRepository struct {
	db db.DBTX
}

func NewGuestRepository(db db.DBTX) *GuestRepository {
	return &GuestRepository{db: db}
}

func (r *GuestRepository) FindByID(ctx context.Context, id uuid.UUID) (*guest.Guest, error) {
	g, err := scanGuest(r.db.QueryRow(ctx, `SELECT `+guestColumns+` FROM guests WHERE id = $1`, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find guest", err)
	}
	return g, nil
}

func (r *GuestRepository) Create(ctx context.Context, g *guest.Guest) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO guests (id, full_name, document_id, email, phone, nationality, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		g.ID(), g.FullName(), g.DocumentID(), g.Email(), g.Phone(), g.Nationality(), g.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create guest", err)
	}
	return nil
}

func (r *GuestRepository) Update(ctx context.Context, g *guest.Guest) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE guests SET full_name = $2, document_id = $3, email = $4, phone = $5,
			nationality = $6, is_active = $7, updated_at = now()
		WHERE id = $1`,
		g.ID(), g.FullName(), g.DocumentID(), g.Email(), g.Phone(), g.Nationality(), g.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update guest", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("guest not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanGuest(row pgx.Row) (*guest.Guest, error) {
	var (
		id                   uuid.UUID
		p                    guest.Profile
		isActive             bool
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &p.FullName, &p.DocumentID, &p.Email, &p.Phone, &p.Nationality,
		&isActive, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return guest.ReconstructGuest(id, p, isActive, createdAt, updatedAt), nil
}
