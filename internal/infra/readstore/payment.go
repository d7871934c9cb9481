package readstore

import (
	"context"
	"time"

	"hostel-admin/internal/infra"
	"hostel-admin/internal/infra/db"
	"hostel-admin/internal/pkg/pgconv"
	"hostel-admin/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type PaymentReadStore struct {
	db db.DBTX
}

func NewPaymentReadStore(db db.DBTX) *PaymentReadStore {
	return &PaymentReadStore{db: db}
}

func (s *PaymentReadStore) ListBetween(ctx context.Context, from, to time.Time, f queries.PaymentFilter) ([]*queries.PaymentView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT p.id, p.amount, p.method, p.document_type, p.document_number, p.payment_date,
			p.reservation_id, r.code, p.guest_id, g.full_name, p.company_id, c.name, p.notes, p.created_at
		FROM payments p
		LEFT JOIN reservations r ON r.id = p.reservation_id
		LEFT JOIN guests g ON g.id = p.guest_id
		LEFT JOIN companies c ON c.id = p.company_id
		WHERE p.payment_date >= $1 AND p.payment_date < $2
		  AND ($3 = '' OR p.method = $3)
		  AND ($4::uuid IS NULL OR p.company_id = $4)
		  AND ($5::uuid IS NULL OR p.reservation_id = $5)
		ORDER BY p.payment_date DESC, p.id`,
		from, to, f.Method, pgconv.UUIDPtrToPgtype(f.CompanyID), pgconv.UUIDPtrToPgtype(f.ReservationID),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payments", err)
	}
	defer rows.Close()

	out := []*queries.PaymentView{}
	for rows.Next() {
		var (
			v                                queries.PaymentView
			amount                           pgtype.Numeric
			reservationID, guestID, company  pgtype.UUID
			reservationCode, guestName, name pgtype.Text
		)
		if err := rows.Scan(&v.ID, &amount, &v.Method, &v.DocumentType, &v.DocumentNumber, &v.PaidAt,
			&reservationID, &reservationCode, &guestID, &guestName, &company, &name, &v.Notes, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan payment", err)
		}
		a, err := pgconv.DecimalFromPgtype(amount)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode payment amount", err)
		}
		v.Amount = a
		v.ReservationID = pgconv.UUIDPtrFromPgtype(reservationID)
		v.ReservationCode = pgconv.StringPtrFromPgtype(reservationCode)
		v.GuestID = pgconv.UUIDPtrFromPgtype(guestID)
		v.GuestName = pgconv.StringPtrFromPgtype(guestName)
		v.CompanyID = pgconv.UUIDPtrFromPgtype(company)
		v.CompanyName = pgconv.StringPtrFromPgtype(name)
		out = append(out, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate payments", err)
	}
	return out, nil
}
