package readstore

import (
	"context"

	"hostel-admin/internal/domain/reservation"
	"hostel-admin/internal/infra"
	"hostel-admin/internal/infra/db"
	"hostel-admin/internal/pkg/dates"
	"hostel-admin/internal/pkg/pgconv"
	"hostel-admin/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(db db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

func (s *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	var (
		v                 queries.ReservationView
		companyID         pgtype.UUID
		companyName       pgtype.Text
		checkIn, checkOut pgtype.Date
		invoiceDate       pgtype.Date
		total             pgtype.Numeric
	)
	err := s.db.QueryRow(ctx, `
		SELECT r.id, r.code, r.room_id, rm.code, rm.name, r.guest_id, g.full_name, g.email,
			r.company_id, c.name, r.check_in, r.check_out, r.status, r.adults, r.children,
			r.total_price, rm.currency, r.invoice_status, r.invoice_number, r.invoice_date,
			r.notes, r.source, r.arrival_time, r.breakfast_time, r.created_at, r.updated_at
		FROM reservations r
		JOIN rooms rm ON rm.id = r.room_id
		JOIN guests g ON g.id = r.guest_id
		LEFT JOIN companies c ON c.id = r.company_id
		WHERE r.id = $1`, id,
	).Scan(&v.ID, &v.Code, &v.RoomID, &v.RoomCode, &v.RoomName, &v.GuestID, &v.GuestName, &v.GuestEmail,
		&companyID, &companyName, &checkIn, &checkOut, &v.Status, &v.Adults, &v.Children,
		&total, &v.Currency, &v.InvoiceStatus, &v.InvoiceNumber, &invoiceDate,
		&v.Notes, &v.Source, &v.ArrivalTime, &v.BreakfastTime, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}

	price, err := pgconv.DecimalFromPgtype(total)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode reservation price", err)
	}
	v.TotalPrice = price
	v.CompanyID = pgconv.UUIDPtrFromPgtype(companyID)
	v.CompanyName = pgconv.StringPtrFromPgtype(companyName)
	v.CheckIn = pgconv.DateFromPgtype(checkIn)
	v.CheckOut = pgconv.DateFromPgtype(checkOut)
	v.Nights = v.CheckIn.DaysUntil(v.CheckOut)
	v.InvoiceDate = pgconv.DatePtrFromPgtype(invoiceDate)

	companions, err := s.companions(ctx, id)
	if err != nil {
		return nil, err
	}
	v.Companions = companions
	return &v, nil
}

func (s *ReservationReadStore) companions(ctx context.Context, id uuid.UUID) ([]queries.CompanionView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT full_name, document_id, nationality
		FROM reservation_companions
		WHERE reservation_id = $1
		ORDER BY position`, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load companions", err)
	}
	defer rows.Close()

	out := []queries.CompanionView{}
	for rows.Next() {
		var c queries.CompanionView
		if err := rows.Scan(&c.FullName, &c.DocumentID, &c.Nationality); err != nil {
			return nil, infra.WrapRepoErr("failed to scan companion", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate companions", err)
	}
	return out, nil
}

// ListOverlapping uses the same half-open test as the availability check, applied to the
// window's [From, To+1) span.
func (s *ReservationReadStore) ListOverlapping(ctx context.Context, f queries.ReservationFilter) ([]*queries.ReservationListItem, error) {
	span := f.Window.HalfOpen()
	var statuses []string
	for _, st := range f.Status {
		statuses = append(statuses, string(st))
	}

	rows, err := s.db.Query(ctx, `
		SELECT r.id, r.code, r.room_id, rm.code, r.guest_id, g.full_name, r.company_id, c.name,
			r.check_in, r.check_out, r.status, r.total_price
		FROM reservations r
		JOIN rooms rm ON rm.id = r.room_id
		JOIN guests g ON g.id = r.guest_id
		LEFT JOIN companies c ON c.id = r.company_id
		WHERE r.check_in < $2 AND r.check_out > $1
		  AND ($3::uuid IS NULL OR r.room_id = $3)
		  AND ($4::uuid IS NULL OR r.company_id = $4)
		  AND (cardinality($5::text[]) = 0 OR r.status = ANY($5))
		ORDER BY r.check_in, rm.sort_order, rm.code`,
		pgconv.DateToPgtype(span.Start), pgconv.DateToPgtype(span.End),
		pgconv.UUIDPtrToPgtype(f.RoomID), pgconv.UUIDPtrToPgtype(f.CompanyID), statuses,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	out := []*queries.ReservationListItem{}
	for rows.Next() {
		var (
			v                 queries.ReservationListItem
			companyID         pgtype.UUID
			companyName       pgtype.Text
			checkIn, checkOut pgtype.Date
			total             pgtype.Numeric
		)
		if err := rows.Scan(&v.ID, &v.Code, &v.RoomID, &v.RoomCode, &v.GuestID, &v.GuestName,
			&companyID, &companyName, &checkIn, &checkOut, &v.Status, &total); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation", err)
		}
		price, err := pgconv.DecimalFromPgtype(total)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode reservation price", err)
		}
		v.TotalPrice = price
		v.CompanyID = pgconv.UUIDPtrFromPgtype(companyID)
		v.CompanyName = pgconv.StringPtrFromPgtype(companyName)
		v.CheckIn = pgconv.DateFromPgtype(checkIn)
		v.CheckOut = pgconv.DateFromPgtype(checkOut)
		out = append(out, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservations", err)
	}
	return out, nil
}

func (s *ReservationReadStore) Occupants(ctx context.Context, roomID uuid.UUID, stay dates.Range) ([]reservation.Occupant, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, code, status, check_in, check_out
		FROM reservations
		WHERE room_id = $1 AND check_in < $3 AND check_out > $2
		ORDER BY check_in`,
		roomID, pgconv.DateToPgtype(stay.Start), pgconv.DateToPgtype(stay.End),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query room occupants", err)
	}
	defer rows.Close()

	var out []reservation.Occupant
	for rows.Next() {
		var (
			o                 reservation.Occupant
			status            string
			checkIn, checkOut pgtype.Date
		)
		if err := rows.Scan(&o.ID, &o.Code, &status, &checkIn, &checkOut); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room occupant", err)
		}
		o.Status = reservation.Status(status)
		o.Stay = dates.Range{Start: pgconv.DateFromPgtype(checkIn), End: pgconv.DateFromPgtype(checkOut)}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room occupants", err)
	}
	return out, nil
}
