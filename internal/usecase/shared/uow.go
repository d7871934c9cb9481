package shared

import (
	"context"

	"hostel-admin/internal/domain/company"
	"hostel-admin/internal/domain/guest"
	"hostel-admin/internal/domain/housekeeping"
	"hostel-admin/internal/domain/payment"
	"hostel-admin/internal/domain/reservation"
	"hostel-admin/internal/domain/room"
	"hostel-admin/internal/domain/user"
	"hostel-admin/internal/infra/db"
	"hostel-admin/internal/pkg/dates"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: ReadCommitted transaction for plain writes, retried on serialization failures
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinSerializable: check-then-write sequences such as the availability check
	WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

type Tx interface {
	Rooms() RoomRepository
	Guests() GuestRepository
	Companies() CompanyRepository
	Reservations() ReservationRepository
	Payments() PaymentRepository
	Housekeeping() HousekeepingRepository
	Users() UserRepository
	DB() db.DBTX
}

type RoomRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error)
	Create(ctx context.Context, r *room.Room) error
	Update(ctx context.Context, r *room.Room) error
}

type GuestRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*guest.Guest, error)
	Create(ctx context.Context, g *guest.Guest) error
	Update(ctx context.Context, g *guest.Guest) error
}

type CompanyRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*company.Company, error)
	Create(ctx context.Context, c *company.Company) error
	Update(ctx context.Context, c *company.Company) error
}

type ReservationRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	// LockRoom takes a row lock on the room so writers for the same room queue up.
	LockRoom(ctx context.Context, roomID uuid.UUID) error
	// FindOverlapping is the storage superset filter: check_in < stay.End AND check_out > stay.Start.
	FindOverlapping(ctx context.Context, roomID uuid.UUID, stay dates.Range, statuses []reservation.Status) ([]reservation.Occupant, error)
	NextCode(ctx context.Context) (string, error)
	Create(ctx context.Context, r *reservation.Reservation) error
	Update(ctx context.Context, r *reservation.Reservation) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status reservation.Status) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PaymentRepository interface {
	Create(ctx context.Context, p *payment.Payment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type HousekeepingRepository interface {
	// Upsert writes the entry for its (room, date) key, replacing any earlier one.
	Upsert(ctx context.Context, e *housekeeping.Entry) (*housekeeping.Entry, error)
}

type UserRepository interface {
	FindByEmail(ctx context.Context, email user.Email) (*user.User, error)
	Create(ctx context.Context, u *user.User) error
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}
