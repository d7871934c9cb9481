//go:build unit

package reservation_test

import (
	"testing"

	"hostel-admin/internal/domain/company"
	"hostel-admin/internal/domain/guest"
	"hostel-admin/internal/domain/reservation"
	"hostel-admin/internal/domain/room"
	"hostel-admin/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoom(t *testing.T, rate string) *room.Room {
	t.Helper()
	r, err := room.NewRoom(room.Attributes{
		Code:             "101",
		Name:             "Doble 101",
		RoomType:         "double",
		CapacityAdults:   2,
		CapacityChildren: 1,
		BaseRate:         decimal.RequireFromString(rate),
		Currency:         "PEN",
	})
	require.NoError(t, err)
	return r
}

func newGuest(t *testing.T) *guest.Guest {
	t.Helper()
	g, err := guest.NewGuest(guest.Profile{FullName: "Ana Quispe"})
	require.NoError(t, err)
	return g
}

func TestQuoteTotal(t *testing.T) {
	testCases := []struct {
		name     string
		rate     string
		nights   int
		discount string
		expect   string
	}{
		{name: "no discount", rate: "90.00", nights: 3, discount: "0", expect: "270"},
		{name: "ten percent", rate: "90.00", nights: 3, discount: "10", expect: "243"},
		{name: "rounded to cents", rate: "33.33", nights: 1, discount: "12.5", expect: "29.16"},
		{name: "full discount", rate: "90.00", nights: 2, discount: "100", expect: "0"},
		{name: "no nights", rate: "90.00", nights: 0, discount: "0", expect: "0"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := reservation.QuoteTotal(decimal.RequireFromString(tc.rate), tc.nights, decimal.RequireFromString(tc.discount))
			assert.Equal(t, tc.expect, got.String())
		})
	}
}

func TestFactory(t *testing.T) {
	f := reservation.NewFactory(reservation.NewNightlyRateCalculator())

	t.Run("price is quoted when omitted", func(t *testing.T) {
		rm := newRoom(t, "100.00")
		c, err := company.NewCompany(company.Profile{
			Name:  "Andes Tours",
			Terms: company.Terms{DiscountPercent: decimal.NewFromInt(15)},
		})
		require.NoError(t, err)

		b := builder.NewReservationBuilder().WithStay("2024-07-10", "2024-07-13")
		r, err := f.CreateReservation(rm, newGuest(t), c, reservation.Input{Details: b.Details(), Status: reservation.StatusConfirmed})
		require.NoError(t, err)

		assert.Equal(t, "255", r.TotalPrice().String())
		require.NotNil(t, r.CompanyID())
		assert.Equal(t, c.ID(), *r.CompanyID())
		assert.Equal(t, rm.ID(), r.RoomID())
	})

	t.Run("explicit price wins", func(t *testing.T) {
		price := decimal.RequireFromString("199.90")
		b := builder.NewReservationBuilder()
		r, err := f.CreateReservation(newRoom(t, "100"), newGuest(t), nil, reservation.Input{Details: b.Details(), TotalPrice: &price})
		require.NoError(t, err)
		assert.Equal(t, "199.9", r.TotalPrice().String())
		assert.Equal(t, reservation.StatusPending, r.Status())
	})

	t.Run("archived room is rejected", func(t *testing.T) {
		rm := newRoom(t, "100")
		rm.Archive()
		_, err := f.CreateReservation(rm, newGuest(t), nil, reservation.Input{Details: builder.NewReservationBuilder().Details()})
		assert.ErrorIs(t, err, reservation.ErrRoomNotBookable)
	})

	t.Run("party larger than the room", func(t *testing.T) {
		b := builder.NewReservationBuilder().WithParty(3, 0)
		_, err := f.CreateReservation(newRoom(t, "100"), newGuest(t), nil, reservation.Input{Details: b.Details()})
		assert.ErrorIs(t, err, reservation.ErrCapacityExceeded)
	})

	t.Run("inactive guest", func(t *testing.T) {
		g := newGuest(t)
		g.Deactivate()
		_, err := f.CreateReservation(newRoom(t, "100"), g, nil, reservation.Input{Details: builder.NewReservationBuilder().Details()})
		assert.ErrorIs(t, err, reservation.ErrGuestInactive)
	})

	t.Run("update keeps the price when nothing priced changed", func(t *testing.T) {
		rm := newRoom(t, "100")
		g := newGuest(t)
		b := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.RoomID = rm.ID()
			b.GuestID = g.ID()
		})
		r := b.BuildStored()

		d := b.Details()
		d.Notes = "late arrival"
		require.NoError(t, f.UpdateReservation(r, rm, g, nil, reservation.Input{Details: d}))
		assert.Equal(t, "450", r.TotalPrice().String())
		assert.Equal(t, "late arrival", r.Notes().String())

		d.Stay = stay(t, "2024-07-10", "2024-07-12")
		require.NoError(t, f.UpdateReservation(r, rm, g, nil, reservation.Input{Details: d}))
		assert.Equal(t, "200", r.TotalPrice().String())
	})
}
