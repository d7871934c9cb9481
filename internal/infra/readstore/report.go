package readstore

import (
	"context"
	"time"

	"hostel-admin/internal/domain/payment"
	"hostel-admin/internal/domain/report"
	"hostel-admin/internal/domain/reservation"
	"hostel-admin/internal/domain/room"
	"hostel-admin/internal/infra"
	"hostel-admin/internal/infra/db"
	"hostel-admin/internal/pkg/dates"
	"hostel-admin/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// ReportReadStore runs inside the caller's read-only snapshot, so it holds no connection.
type ReportReadStore struct{}

func NewReportReadStore() *ReportReadStore {
	return &ReportReadStore{}
}

func (s *ReportReadStore) ReportRooms(ctx context.Context, db db.DBTX) ([]report.RoomInfo, error) {
	rows, err := db.Query(ctx, `
		SELECT id, code, room_type, status FROM rooms
		WHERE status <> $1
		ORDER BY sort_order, code`, string(room.StatusArchived))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load report rooms", err)
	}
	defer rows.Close()

	var out []report.RoomInfo
	for rows.Next() {
		var r report.RoomInfo
		if err := rows.Scan(&r.ID, &r.Code, &r.RoomType, &r.Status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan report room", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate report rooms", err)
	}
	return out, nil
}

func (s *ReportReadStore) ReportStays(ctx context.Context, db db.DBTX, span dates.Range) ([]report.Stay, error) {
	rows, err := db.Query(ctx, `
		SELECT id, room_id, company_id, status, check_in, check_out, total_price
		FROM reservations
		WHERE check_in < $2 AND check_out > $1 AND status <> $3`,
		pgconv.DateToPgtype(span.Start), pgconv.DateToPgtype(span.End), string(reservation.StatusCancelled),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load report stays", err)
	}
	defer rows.Close()

	var out []report.Stay
	for rows.Next() {
		var (
			st                report.Stay
			companyID         pgtype.UUID
			status            string
			checkIn, checkOut pgtype.Date
			total             pgtype.Numeric
		)
		if err := rows.Scan(&st.ReservationID, &st.RoomID, &companyID, &status, &checkIn, &checkOut, &total); err != nil {
			return nil, infra.WrapRepoErr("failed to scan report stay", err)
		}
		price, err := pgconv.DecimalFromPgtype(total)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode stay price", err)
		}
		st.CompanyID = pgconv.UUIDPtrFromPgtype(companyID)
		st.Status = reservation.Status(status)
		st.Stay = dates.Range{Start: pgconv.DateFromPgtype(checkIn), End: pgconv.DateFromPgtype(checkOut)}
		st.TotalPrice = price
		out = append(out, st)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate report stays", err)
	}
	return out, nil
}

func (s *ReportReadStore) ReportPayments(
	ctx context.Context,
	db db.DBTX,
	from, to time.Time,
	loc *time.Location,
) ([]report.PaymentInfo, error) {
	rows, err := db.Query(ctx, `
		SELECT amount, method, document_type, payment_date, company_id
		FROM payments
		WHERE payment_date >= $1 AND payment_date < $2`, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load report payments", err)
	}
	defer rows.Close()

	var out []report.PaymentInfo
	for rows.Next() {
		var (
			p           report.PaymentInfo
			amount      pgtype.Numeric
			method, doc string
			paidAt      time.Time
			companyID   pgtype.UUID
		)
		if err := rows.Scan(&amount, &method, &doc, &paidAt, &companyID); err != nil {
			return nil, infra.WrapRepoErr("failed to scan report payment", err)
		}
		a, err := pgconv.DecimalFromPgtype(amount)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode payment amount", err)
		}
		p.Amount = a
		p.Method = payment.Method(method)
		p.DocumentType = payment.DocumentType(doc)
		p.PaidOn = dates.Of(paidAt.In(loc))
		p.CompanyID = pgconv.UUIDPtrFromPgtype(companyID)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate report payments", err)
	}
	return out, nil
}

func (s *ReportReadStore) CompanyNames(ctx context.Context, db db.DBTX) (map[uuid.UUID]string, error) {
	rows, err := db.Query(ctx, `SELECT id, name FROM companies`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load company names", err)
	}
	defer rows.Close()

	out := make(map[uuid.UUID]string)
	for rows.Next() {
		var (
			id   uuid.UUID
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			return nil, infra.WrapRepoErr("failed to scan company name", err)
		}
		out[id] = name
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate company names", err)
	}
	return out, nil
}

func (s *ReportReadStore) CalendarRooms(ctx context.Context, db db.DBTX) ([]report.CalendarRoom, error) {
	rows, err := db.Query(ctx, `
		SELECT id, code, name, room_type FROM rooms
		WHERE status <> $1
		ORDER BY sort_order, code`, string(room.StatusArchived))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load calendar rooms", err)
	}
	defer rows.Close()

	var out []report.CalendarRoom
	for rows.Next() {
		var r report.CalendarRoom
		if err := rows.Scan(&r.ID, &r.Code, &r.Name, &r.RoomType); err != nil {
			return nil, infra.WrapRepoErr("failed to scan calendar room", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate calendar rooms", err)
	}
	return out, nil
}

func (s *ReportReadStore) CalendarEntries(ctx context.Context, db db.DBTX, window dates.Range) ([]report.CalendarEntry, error) {
	rows, err := db.Query(ctx, `
		SELECT r.id, r.code, r.room_id, g.full_name, r.status, r.check_in, r.check_out
		FROM reservations r
		JOIN guests g ON g.id = r.guest_id
		WHERE r.check_in < $2 AND r.check_out > $1 AND r.status <> $3
		ORDER BY r.check_in`,
		pgconv.DateToPgtype(window.Start), pgconv.DateToPgtype(window.End), string(reservation.StatusCancelled),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load calendar entries", err)
	}
	defer rows.Close()

	var out []report.CalendarEntry
	for rows.Next() {
		var (
			e                 report.CalendarEntry
			status            string
			checkIn, checkOut pgtype.Date
		)
		if err := rows.Scan(&e.ReservationID, &e.Code, &e.RoomID, &e.GuestName, &status, &checkIn, &checkOut); err != nil {
			return nil, infra.WrapRepoErr("failed to scan calendar entry", err)
		}
		e.Status = reservation.Status(status)
		e.Stay = dates.Range{Start: pgconv.DateFromPgtype(checkIn), End: pgconv.DateFromPgtype(checkOut)}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate calendar entries", err)
	}
	return out, nil
}
