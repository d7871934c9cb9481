package repository

import (
	"context"

	"hostel-admin/internal/domain/payment"
	"hostel-admin/internal/infra"
	"hostel-admin/internal/infra/db"
	"hostel-admin/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PaymentRepository struct {
	db db.DBTX
}

func NewPaymentRepository(db db.DBTX) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO payments (id, amount, method, document_type, document_number, payment_date,
			reservation_id, guest_id, company_id, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		p.ID(), pgconv.DecimalToPgtype(p.Amount()), string(p.Method()), string(p.DocumentType()),
		p.DocumentNumber(), p.PaidAt(), pgconv.UUIDPtrToPgtype(p.ReservationID()),
		pgconv.UUIDPtrToPgtype(p.GuestID()), pgconv.UUIDPtrToPgtype(p.CompanyID()), p.Notes(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create payment", err)
	}
	return nil
}

func (r *PaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete payment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)
	}
	return nil
}
