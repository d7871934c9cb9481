package reservation

import (
	"errors"
	"strings"
	"time"

	"hostel-admin/internal/pkg/dates"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNegativePrice = errors.New("total price cannot be negative")
	ErrMissingRoom   = errors.New("reservation needs a room")
	ErrMissingGuest  = errors.New("reservation needs a guest")
	ErrClosed        = errors.New("reservation is checked out or cancelled and can no longer be edited")
	ErrCodeAssigned  = errors.New("reservation code is already assigned")
)

const DefaultSource = "direct"

// Details is the editable part of a reservation as entered by staff.
type Details struct {
	RoomID        uuid.UUID
	GuestID       uuid.UUID
	CompanyID     *uuid.UUID
	Stay          dates.Range
	Adults        int
	Children      int
	TotalPrice    decimal.Decimal
	InvoiceStatus InvoiceStatus
	InvoiceNumber string
	InvoiceDate   *dates.Date
	Notes         string
	Source        string
	ArrivalTime   string
	BreakfastTime string
	Companions    []Companion
}

type Reservation struct {
	id            uuid.UUID
	code          string
	roomID        uuid.UUID
	guestID       uuid.UUID
	companyID     *uuid.UUID
	stay          dates.Range
	status        Status
	party         Party
	totalPrice    decimal.Decimal
	invoice       Invoice
	notes         Note
	source        string
	arrivalTime   TimeHint
	breakfastTime TimeHint
	companions    []Companion
	createdAt     time.Time
	updatedAt     time.Time
}

func NewReservation(d Details, status Status) (*Reservation, error) {
	if status == "" {
		status = StatusPending
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if !status.isInitial() {
		return nil, ErrInvalidInitial
	}

	r := &Reservation{id: uuid.New(), status: status}
	if err := r.apply(d); err != nil {
		return nil, err
	}
	return r, nil
}

func ReconstructReservation(
	id uuid.UUID,
	code string,
	d Details,
	status Status,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:            id,
		code:          code,
		roomID:        d.RoomID,
		guestID:       d.GuestID,
		companyID:     d.CompanyID,
		stay:          d.Stay,
		status:        status,
		party:         Party{adults: d.Adults, children: d.Children},
		totalPrice:    d.TotalPrice,
		invoice:       Invoice{status: d.InvoiceStatus, number: d.InvoiceNumber, date: d.InvoiceDate},
		notes:         Note{value: d.Notes},
		source:        d.Source,
		arrivalTime:   TimeHint{value: d.ArrivalTime},
		breakfastTime: TimeHint{value: d.BreakfastTime},
		companions:    d.Companions,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Update replaces the editable details. Closed reservations are read-only.
func (r *Reservation) Update(d Details) error {
	if r.status.IsTerminal() {
		return ErrClosed
	}
	return r.apply(d)
}

// ChangeStatus moves the reservation along the status graph.
func (r *Reservation) ChangeStatus(to Status) error {
	if !to.IsValid() {
		return ErrInvalidStatus
	}
	if !CanTransition(r.status, to) {
		return &TransitionError{From: r.status, To: to}
	}
	r.status = to
	return nil
}

func (r *Reservation) AssignCode(code string) error {
	if r.code != "" {
		return ErrCodeAssigned
	}
	r.code = code
	return nil
}

// Occupant is the view of the reservation the availability check works on.
func (r *Reservation) Occupant() Occupant {
	return Occupant{ID: r.id, Code: r.code, Status: r.status, Stay: r.stay}
}

func (r *Reservation) apply(d Details) error {
	if d.RoomID == uuid.Nil {
		return ErrMissingRoom
	}
	if d.GuestID == uuid.Nil {
		return ErrMissingGuest
	}
	if _, err := dates.NewRange(d.Stay.Start, d.Stay.End); err != nil {
		return err
	}
	party, err := NewParty(d.Adults, d.Children)
	if err != nil {
		return err
	}
	if d.TotalPrice.IsNegative() {
		return ErrNegativePrice
	}
	invoice, err := NewInvoice(d.InvoiceStatus, d.InvoiceNumber, d.InvoiceDate)
	if err != nil {
		return err
	}
	notes, err := NewNote(d.Notes)
	if err != nil {
		return err
	}
	arrival, err := NewTimeHint(d.ArrivalTime)
	if err != nil {
		return err
	}
	breakfast, err := NewTimeHint(d.BreakfastTime)
	if err != nil {
		return err
	}
	companions, err := NewCompanions(d.Companions, party)
	if err != nil {
		return err
	}

	source := strings.ToLower(strings.TrimSpace(d.Source))
	if source == "" {
		source = DefaultSource
	}

	r.roomID = d.RoomID
	r.guestID = d.GuestID
	r.companyID = d.CompanyID
	r.stay = d.Stay
	r.party = party
	r.totalPrice = d.TotalPrice.Round(2)
	r.invoice = invoice
	r.notes = notes
	r.source = source
	r.arrivalTime = arrival
	r.breakfastTime = breakfast
	r.companions = companions
	return nil
}

func (r *Reservation) ID() uuid.UUID               { return r.id }
func (r *Reservation) Code() string                { return r.code }
func (r *Reservation) RoomID() uuid.UUID           { return r.roomID }
func (r *Reservation) GuestID() uuid.UUID          { return r.guestID }
func (r *Reservation) CompanyID() *uuid.UUID       { return r.companyID }
func (r *Reservation) Stay() dates.Range           { return r.stay }
func (r *Reservation) Status() Status              { return r.status }
func (r *Reservation) Party() Party                { return r.party }
func (r *Reservation) TotalPrice() decimal.Decimal { return r.totalPrice }
func (r *Reservation) Invoice() Invoice            { return r.invoice }
func (r *Reservation) Notes() Note                 { return r.notes }
func (r *Reservation) Source() string              { return r.source }
func (r *Reservation) ArrivalTime() TimeHint       { return r.arrivalTime }
func (r *Reservation) BreakfastTime() TimeHint     { return r.breakfastTime }
func (r *Reservation) Companions() []Companion     { return r.companions }
func (r *Reservation) CreatedAt() time.Time        { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time        { return r.updatedAt }

func (r *Reservation) Details() Details {
	return Details{
		RoomID:        r.roomID,
		GuestID:       r.guestID,
		CompanyID:     r.companyID,
		Stay:          r.stay,
		Adults:        r.party.adults,
		Children:      r.party.children,
		TotalPrice:    r.totalPrice,
		InvoiceStatus: r.invoice.status,
		InvoiceNumber: r.invoice.number,
		InvoiceDate:   r.invoice.date,
		Notes:         r.notes.value,
		Source:        r.source,
		ArrivalTime:   r.arrivalTime.value,
		BreakfastTime: r.breakfastTime.value,
		Companions:    r.companions,
	}
}
