package repository

import (
	"context"
	"time"

	"hostel-admin/internal/domain/reservation"
	"hostel-admin/internal/infra"
	"hostel-admin/internal/infra/db"
	"hostel-admin/internal/pkg/dates"
	"hostel-admin/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const reservationColumns = `id, code, room_id, guest_id, company_id, check_in, check_out, status,
	adults, children, total_price, invoice_status, invoice_number, invoice_date, notes, source,
	arrival_time, breakfast_time, created_at, updated_at`

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(db db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row := r.db.QueryRow(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE id = $1`, id)
	res, err := scanReservation(row, func(d *reservation.Details) error {
		companions, err := r.companions(ctx, id)
		d.Companions = companions
		return err
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	return res, nil
}

func (r *ReservationRepository) LockRoom(ctx context.Context, roomID uuid.UUID) error {
	var locked uuid.UUID
	err := r.db.QueryRow(ctx, `SELECT id FROM rooms WHERE id = $1 FOR UPDATE`, roomID).Scan(&locked)
	if err != nil {
		return infra.WrapRepoErr("failed to lock room", err)
	}
	return nil
}

func (r *ReservationRepository) FindOverlapping(
	ctx context.Context,
	roomID uuid.UUID,
	stay dates.Range,
	statuses []reservation.Status,
) ([]reservation.Occupant, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, code, status, check_in, check_out
		FROM reservations
		WHERE room_id = $1 AND check_in < $3 AND check_out > $2 AND status = ANY($4)
		ORDER BY check_in`,
		roomID, pgconv.DateToPgtype(stay.Start), pgconv.DateToPgtype(stay.End), statusStrings(statuses),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query overlapping reservations", err)
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
			return nil, infra.WrapRepoErr("failed to scan overlapping reservation", err)
		}
		o.Status = reservation.Status(status)
		o.Stay = dates.Range{Start: pgconv.DateFromPgtype(checkIn), End: pgconv.DateFromPgtype(checkOut)}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate overlapping reservations", err)
	}
	return out, nil
}

func (r *ReservationRepository) NextCode(ctx context.Context) (string, error) {
	var seq int64
	if err := r.db.QueryRow(ctx, `SELECT nextval('reservation_code_seq')`).Scan(&seq); err != nil {
		return "", infra.WrapRepoErr("failed to allocate reservation code", err)
	}
	return reservation.FormatCode(seq), nil
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	d := res.Details()
	_, err := r.db.Exec(ctx, `
		INSERT INTO reservations (id, code, room_id, guest_id, company_id, check_in, check_out, status,
			adults, children, total_price, invoice_status, invoice_number, invoice_date, notes, source,
			arrival_time, breakfast_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`,
		res.ID(), res.Code(), d.RoomID, d.GuestID, pgconv.UUIDPtrToPgtype(d.CompanyID),
		pgconv.DateToPgtype(d.Stay.Start), pgconv.DateToPgtype(d.Stay.End), string(res.Status()),
		d.Adults, d.Children, pgconv.DecimalToPgtype(d.TotalPrice), string(d.InvoiceStatus),
		d.InvoiceNumber, pgconv.DatePtrToPgtype(d.InvoiceDate), d.Notes, d.Source,
		d.ArrivalTime, d.BreakfastTime,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return r.replaceCompanions(ctx, res.ID(), d.Companions)
}

func (r *ReservationRepository) Update(ctx context.Context, res *reservation.Reservation) error {
	d := res.Details()
	tag, err := r.db.Exec(ctx, `
		UPDATE reservations SET room_id = $2, guest_id = $3, company_id = $4, check_in = $5, check_out = $6,
			status = $7, adults = $8, children = $9, total_price = $10, invoice_status = $11,
			invoice_number = $12, invoice_date = $13, notes = $14, source = $15, arrival_time = $16,
			breakfast_time = $17, updated_at = now()
		WHERE id = $1`,
		res.ID(), d.RoomID, d.GuestID, pgconv.UUIDPtrToPgtype(d.CompanyID),
		pgconv.DateToPgtype(d.Stay.Start), pgconv.DateToPgtype(d.Stay.End), string(res.Status()),
		d.Adults, d.Children, pgconv.DecimalToPgtype(d.TotalPrice), string(d.InvoiceStatus),
		d.InvoiceNumber, pgconv.DatePtrToPgtype(d.InvoiceDate), d.Notes, d.Source,
		d.ArrivalTime, d.BreakfastTime,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return r.replaceCompanions(ctx, res.ID(), d.Companions)
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status reservation.Status) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE reservations SET status = $2, updated_at = now() WHERE id = $1`, id, string(status))
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) companions(ctx context.Context, reservationID uuid.UUID) ([]reservation.Companion, error) {
	rows, err := r.db.Query(ctx, `
		SELECT full_name, document_id, nationality
		FROM reservation_companions
		WHERE reservation_id = $1
		ORDER BY position`, reservationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []reservation.Companion
	for rows.Next() {
		var c reservation.Companion
		if err := rows.Scan(&c.FullName, &c.DocumentID, &c.Nationality); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// replaceCompanions rewrites the whole list so positions always run 0..n-1.
func (r *ReservationRepository) replaceCompanions(ctx context.Context, reservationID uuid.UUID, companions []reservation.Companion) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM reservation_companions WHERE reservation_id = $1`, reservationID); err != nil {
		return infra.WrapRepoErr("failed to clear companions", err)
	}
	for i, c := range companions {
		_, err := r.db.Exec(ctx, `
			INSERT INTO reservation_companions (id, reservation_id, position, full_name, document_id, nationality)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			uuid.New(), reservationID, i, c.FullName, c.DocumentID, c.Nationality,
		)
		if err != nil {
			return infra.WrapRepoErr("failed to insert companion", err)
		}
	}
	return nil
}

func scanReservation(row pgx.Row, loadCompanions func(*reservation.Details) error) (*reservation.Reservation, error) {
	var (
		id                   uuid.UUID
		code, status         string
		d                    reservation.Details
		companyID            pgtype.UUID
		checkIn, checkOut    pgtype.Date
		invoiceDate          pgtype.Date
		invoiceStatus        string
		total                pgtype.Numeric
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &code, &d.RoomID, &d.GuestID, &companyID, &checkIn, &checkOut, &status,
		&d.Adults, &d.Children, &total, &invoiceStatus, &d.InvoiceNumber, &invoiceDate, &d.Notes,
		&d.Source, &d.ArrivalTime, &d.BreakfastTime, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	price, err := pgconv.DecimalFromPgtype(total)
	if err != nil {
		return nil, err
	}
	d.TotalPrice = price
	d.CompanyID = pgconv.UUIDPtrFromPgtype(companyID)
	d.Stay = dates.Range{Start: pgconv.DateFromPgtype(checkIn), End: pgconv.DateFromPgtype(checkOut)}
	d.InvoiceStatus = reservation.InvoiceStatus(invoiceStatus)
	d.InvoiceDate = pgconv.DatePtrFromPgtype(invoiceDate)
	if loadCompanions != nil {
		if err := loadCompanions(&d); err != nil {
			return nil, err
		}
	}
	return reservation.ReconstructReservation(id, code, d, reservation.Status(status), createdAt, updatedAt), nil
}

func statusStrings(statuses []reservation.Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
