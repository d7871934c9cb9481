package payment

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNonPositiveAmount = errors.New("payment amount must be greater than zero")
	ErrInvalidMethod     = errors.New("invalid payment method")
	ErrInvalidDocument   = errors.New("invalid document type")
	ErrMissingDocNumber  = errors.New("receipts, invoices and waybills need a document number")
	ErrMissingPaidAt     = errors.New("payment date is required")
)

type Payment struct {
	id             uuid.UUID
	amount         decimal.Decimal
	method         Method
	documentType   DocumentType
	documentNumber string
	paidAt         time.Time
	reservationID  *uuid.UUID
	guestID        *uuid.UUID
	companyID      *uuid.UUID
	notes          string
}

type Record struct {
	Amount         decimal.Decimal
	Method         Method
	DocumentType   DocumentType
	DocumentNumber string
	PaidAt         time.Time
	ReservationID  *uuid.UUID
	GuestID        *uuid.UUID
	CompanyID      *uuid.UUID
	Notes          string
}

func NewPayment(r Record) (*Payment, error) {
	if !r.Amount.IsPositive() {
		return nil, ErrNonPositiveAmount
	}
	if !r.Method.IsValid() {
		return nil, ErrInvalidMethod
	}
	if r.DocumentType == "" {
		r.DocumentType = DocumentNone
	}
	if !r.DocumentType.IsValid() {
		return nil, ErrInvalidDocument
	}
	number := strings.TrimSpace(r.DocumentNumber)
	if r.DocumentType != DocumentNone && number == "" {
		return nil, ErrMissingDocNumber
	}
	if r.PaidAt.IsZero() {
		return nil, ErrMissingPaidAt
	}

	return &Payment{
		id:             uuid.New(),
		amount:         r.Amount.Round(2),
		method:         r.Method,
		documentType:   r.DocumentType,
		documentNumber: number,
		paidAt:         r.PaidAt,
		reservationID:  r.ReservationID,
		guestID:        r.GuestID,
		companyID:      r.CompanyID,
		notes:          strings.TrimSpace(r.Notes),
	}, nil
}

func (p *Payment) ID() uuid.UUID              { return p.id }
func (p *Payment) Amount() decimal.Decimal    { return p.amount }
func (p *Payment) Method() Method             { return p.method }
func (p *Payment) DocumentType() DocumentType { return p.documentType }
func (p *Payment) DocumentNumber() string     { return p.documentNumber }
func (p *Payment) PaidAt() time.Time          { return p.paidAt }
func (p *Payment) ReservationID() *uuid.UUID  { return p.reservationID }
func (p *Payment) GuestID() *uuid.UUID        { return p.guestID }
func (p *Payment) CompanyID() *uuid.UUID      { return p.companyID }
func (p *Payment) Notes() string              { return p.notes }
