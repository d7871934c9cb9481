//go:build unit || e2e

package builder

import (
	"time"

	domres "hostel-admin/internal/domain/reservation"
	reqdto "hostel-admin/internal/handler/dto/request"
	"hostel-admin/internal/pkg/dates"
	"hostel-admin/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReservationBuilder struct {
	ID            uuid.UUID
	Code          string
	RoomID        uuid.UUID
	RoomCode      string
	GuestID       uuid.UUID
	GuestName     string
	CompanyID     *uuid.UUID
	CheckIn       string
	CheckOut      string
	Status        domres.Status
	Adults        int
	Children      int
	TotalPrice    decimal.Decimal
	Notes         string
	Source        string
	ArrivalTime   string
	BreakfastTime string
	Companions    []domres.Companion
	CreatedAt     time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:         uuid.New(),
		Code:       "R-000001",
		RoomID:     uuid.New(),
		RoomCode:   "101",
		GuestID:    uuid.New(),
		GuestName:  "Ana Quispe",
		CheckIn:    "2024-07-10",
		CheckOut:   "2024-07-15",
		Status:     domres.StatusConfirmed,
		Adults:     2,
		Children:   0,
		TotalPrice: decimal.RequireFromString("450.00"),
		Source:     "direct",
		CreatedAt:  time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithStay(checkIn, checkOut string) *ReservationBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *ReservationBuilder) WithStatus(s domres.Status) *ReservationBuilder {
	b.Status = s
	return b
}

func (b *ReservationBuilder) WithParty(adults, children int) *ReservationBuilder {
	b.Adults = adults
	b.Children = children
	return b
}

func (b *ReservationBuilder) Stay() dates.Range {
	return dates.Range{Start: dates.MustParse(b.CheckIn), End: dates.MustParse(b.CheckOut)}
}

func (b *ReservationBuilder) Details() domres.Details {
	return domres.Details{
		RoomID:        b.RoomID,
		GuestID:       b.GuestID,
		CompanyID:     b.CompanyID,
		Stay:          b.Stay(),
		Adults:        b.Adults,
		Children:      b.Children,
		TotalPrice:    b.TotalPrice,
		Notes:         b.Notes,
		Source:        b.Source,
		ArrivalTime:   b.ArrivalTime,
		BreakfastTime: b.BreakfastTime,
		Companions:    b.Companions,
	}
}

// BuildDomain validates through NewReservation, so it fails the way a create request would.
func (b *ReservationBuilder) BuildDomain() (*domres.Reservation, error) {
	return domres.NewReservation(b.Details(), b.Status)
}

// BuildStored skips validation, as loading a row from the store does.
func (b *ReservationBuilder) BuildStored() *domres.Reservation {
	return domres.ReconstructReservation(b.ID, b.Code, b.Details(), b.Status, b.CreatedAt, b.CreatedAt)
}

func (b *ReservationBuilder) BuildOccupant() domres.Occupant {
	return domres.Occupant{ID: b.ID, Code: b.Code, Status: b.Status, Stay: b.Stay()}
}

// BuildRequest leaves total_price empty so the nightly rate is quoted.
func (b *ReservationBuilder) BuildRequest() reqdto.ReservationRequest {
	companions := make([]reqdto.CompanionRequest, len(b.Companions))
	for i, c := range b.Companions {
		companions[i] = reqdto.CompanionRequest{FullName: c.FullName, DocumentID: c.DocumentID, Nationality: c.Nationality}
	}
	return reqdto.ReservationRequest{
		RoomID:        b.RoomID,
		GuestID:       b.GuestID,
		CompanyID:     b.CompanyID,
		CheckIn:       b.CheckIn,
		CheckOut:      b.CheckOut,
		Status:        string(b.Status),
		Adults:        b.Adults,
		Children:      b.Children,
		Notes:         b.Notes,
		Source:        b.Source,
		ArrivalTime:   b.ArrivalTime,
		BreakfastTime: b.BreakfastTime,
		Companions:    companions,
	}
}

func (b *ReservationBuilder) BuildListItem() *queries.ReservationListItem {
	return &queries.ReservationListItem{
		ID:         b.ID,
		Code:       b.Code,
		RoomID:     b.RoomID,
		RoomCode:   b.RoomCode,
		GuestID:    b.GuestID,
		GuestName:  b.GuestName,
		CompanyID:  b.CompanyID,
		CheckIn:    dates.MustParse(b.CheckIn),
		CheckOut:   dates.MustParse(b.CheckOut),
		Status:     string(b.Status),
		TotalPrice: b.TotalPrice,
	}
}
