//go:build unit || e2e

package builder

import (
	"time"

	"hostel-admin/internal/domain/company"
	"hostel-admin/internal/domain/guest"
	"hostel-admin/internal/domain/room"
	reqdto "hostel-admin/internal/handler/dto/request"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var fixedTime = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

type RoomBuilder struct {
	ID     uuid.UUID
	Attrs  room.Attributes
	Status room.Status
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID: uuid.New(),
		Attrs: room.Attributes{
			Code:             "101",
			Name:             "Matrimonial 101",
			RoomType:         "matrimonial",
			CapacityAdults:   2,
			CapacityChildren: 1,
			BaseRate:         decimal.RequireFromString("90.00"),
			Currency:         "PEN",
			SortOrder:        1,
		},
		Status: room.StatusAvailable,
	}
}

func (b *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(b)
	return b
}

func (b *RoomBuilder) WithStatus(s room.Status) *RoomBuilder {
	b.Status = s
	return b
}

func (b *RoomBuilder) BuildStored() *room.Room {
	return room.ReconstructRoom(b.ID, b.Attrs, b.Status, fixedTime, fixedTime)
}

func (b *RoomBuilder) BuildRequest() reqdto.RoomRequest {
	return reqdto.RoomRequest{
		Code:             b.Attrs.Code,
		Name:             b.Attrs.Name,
		RoomType:         b.Attrs.RoomType,
		CapacityAdults:   b.Attrs.CapacityAdults,
		CapacityChildren: b.Attrs.CapacityChildren,
		BaseRate:         b.Attrs.BaseRate,
		Currency:         b.Attrs.Currency,
		SortOrder:        b.Attrs.SortOrder,
	}
}

type GuestBuilder struct {
	ID      uuid.UUID
	Profile guest.Profile
	Active  bool
}

func NewGuestBuilder() *GuestBuilder {
	return &GuestBuilder{
		ID: uuid.New(),
		Profile: guest.Profile{
			FullName:    "Ana Quispe",
			DocumentID:  "45879812",
			Email:       "ana.quispe@example.com",
			Phone:       "+51 984 112 233",
			Nationality: "PE",
		},
		Active: true,
	}
}

func (b *GuestBuilder) With(mutate func(*GuestBuilder)) *GuestBuilder {
	mutate(b)
	return b
}

func (b *GuestBuilder) BuildStored() *guest.Guest {
	return guest.ReconstructGuest(b.ID, b.Profile, b.Active, fixedTime, fixedTime)
}

func (b *GuestBuilder) BuildRequest() reqdto.GuestRequest {
	return reqdto.GuestRequest{
		FullName:    b.Profile.FullName,
		DocumentID:  b.Profile.DocumentID,
		Email:       b.Profile.Email,
		Phone:       b.Profile.Phone,
		Nationality: b.Profile.Nationality,
	}
}

type CompanyBuilder struct {
	ID      uuid.UUID
	Profile company.Profile
	Active  bool
}

func NewCompanyBuilder() *CompanyBuilder {
	return &CompanyBuilder{
		ID: uuid.New(),
		Profile: company.Profile{
			Name:  "Andes Mining SAC",
			TaxID: "20601234567",
			Email: "reservas@andesmining.pe",
			Terms: company.Terms{
				DiscountPercent:  decimal.NewFromInt(10),
				PaymentTermsDays: 30,
			},
		},
		Active: true,
	}
}

func (b *CompanyBuilder) BuildStored() *company.Company {
	return company.ReconstructCompany(b.ID, b.Profile, b.Active, fixedTime, fixedTime)
}
