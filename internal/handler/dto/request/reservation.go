package request

import (
	"hostel-admin/internal/domain/reservation"
	"hostel-admin/internal/pkg/dates"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CompanionRequest struct {
	FullName    string `json:"full_name" binding:"required,max=150"`
	DocumentID  string `json:"document_id" binding:"max=40"`
	Nationality string `json:"nationality" binding:"max=60"`
}

type ReservationRequest struct {
	RoomID        uuid.UUID          `json:"room_id" binding:"required"`
	GuestID       uuid.UUID          `json:"guest_id" binding:"required"`
	CompanyID     *uuid.UUID         `json:"company_id"`
	CheckIn       string             `json:"check_in" binding:"required,date"`
	CheckOut      string             `json:"check_out" binding:"required,date"`
	Status        string             `json:"status" binding:"omitempty,oneof=pending confirmed checked_in blocked"`
	Adults        int                `json:"adults" binding:"required,min=1"`
	Children      int                `json:"children" binding:"min=0"`
	TotalPrice    *decimal.Decimal   `json:"total_price"`
	InvoiceStatus string             `json:"invoice_status" binding:"omitempty,oneof=none pending issued"`
	InvoiceNumber string             `json:"invoice_number" binding:"max=50"`
	InvoiceDate   string             `json:"invoice_date" binding:"omitempty,date"`
	Notes         string             `json:"notes" binding:"max=2000"`
	Source        string             `json:"source" binding:"max=40"`
	ArrivalTime   string             `json:"arrival_time" binding:"omitempty,len=5"`
	BreakfastTime string             `json:"breakfast_time" binding:"omitempty,len=5"`
	Companions    []CompanionRequest `json:"companions" binding:"omitempty,dive"`
}

// ToDomain leaves TotalPrice nil when the caller wants the room rate quoted.
func (r *ReservationRequest) ToDomain() (reservation.Input, error) {
	stay, err := dates.ParseRange(r.CheckIn, r.CheckOut)
	if err != nil {
		return reservation.Input{}, err
	}

	var invoiceDate *dates.Date
	if r.InvoiceDate != "" {
		d, err := dates.Parse(r.InvoiceDate)
		if err != nil {
			return reservation.Input{}, err
		}
		invoiceDate = &d
	}

	companions := make([]reservation.Companion, len(r.Companions))
	for i, c := range r.Companions {
		companions[i] = reservation.Companion{
			FullName:    c.FullName,
			DocumentID:  c.DocumentID,
			Nationality: c.Nationality,
		}
	}

	return reservation.Input{
		Details: reservation.Details{
			RoomID:        r.RoomID,
			GuestID:       r.GuestID,
			CompanyID:     r.CompanyID,
			Stay:          stay,
			Adults:        r.Adults,
			Children:      r.Children,
			InvoiceStatus: reservation.InvoiceStatus(r.InvoiceStatus),
			InvoiceNumber: r.InvoiceNumber,
			InvoiceDate:   invoiceDate,
			Notes:         r.Notes,
			Source:        r.Source,
			ArrivalTime:   r.ArrivalTime,
			BreakfastTime: r.BreakfastTime,
			Companions:    companions,
		},
		Status:     reservation.Status(r.Status),
		TotalPrice: r.TotalPrice,
	}, nil
}

type ReservationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r *ReservationStatusRequest) ToDomain() (reservation.Status, error) {
	return reservation.ParseStatus(r.Status)
}

type SendVoucherRequest struct {
	// To overrides the guest's email address.
	To string `json:"to" binding:"omitempty,email"`
}
