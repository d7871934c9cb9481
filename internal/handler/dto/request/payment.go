package request

import (
	"time"

	"hostel-admin/internal/domain/payment"
	"hostel-admin/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentRequest struct {
	Amount         decimal.Decimal `json:"amount"`
	Method         string          `json:"method" binding:"required,oneof=cash transfer card gateway other"`
	DocumentType   string          `json:"document_type" binding:"omitempty,oneof=receipt invoice waybill none"`
	DocumentNumber string          `json:"document_number" binding:"max=50"`
	PaidAt         *time.Time      `json:"paid_at"`
	ReservationID  *uuid.UUID      `json:"reservation_id"`
	GuestID        *uuid.UUID      `json:"guest_id"`
	CompanyID      *uuid.UUID      `json:"company_id"`
	Notes          string          `json:"notes" binding:"max=500"`
}

// ToDomain stamps the payment with now when the caller does not say when it was made.
func (r *PaymentRequest) ToDomain(now time.Time) payment.Record {
	return payment.Record{
		Amount:         r.Amount,
		Method:         payment.Method(r.Method),
		DocumentType:   payment.DocumentType(r.DocumentType),
		DocumentNumber: r.DocumentNumber,
		PaidAt:         ptr.Deref(r.PaidAt, now),
		ReservationID:  r.ReservationID,
		GuestID:        r.GuestID,
		CompanyID:      r.CompanyID,
		Notes:          r.Notes,
	}
}
