package reservation

import (
	"errors"

	"hostel-admin/internal/domain/company"
	"hostel-admin/internal/domain/guest"
	"hostel-admin/internal/domain/room"

	"github.com/shopspring/decimal"
)

var (
	ErrRoomNotBookable  = errors.New("room is archived and cannot be booked")
	ErrGuestInactive    = errors.New("guest is inactive")
	ErrCompanyInactive  = errors.New("company is inactive")
	ErrCapacityExceeded = errors.New("party does not fit the room")
)

// Factory builds reservations against the room, guest and company they refer to.
type Factory struct {
	PriceCalculator PriceCalculator
}

func NewFactory(priceCalculator PriceCalculator) *Factory {
	return &Factory{PriceCalculator: priceCalculator}
}

// Input is Details with an optional price; a nil TotalPrice is quoted from the room rate.
type Input struct {
	Details
	Status     Status
	TotalPrice *decimal.Decimal
}

func (f *Factory) CreateReservation(rm *room.Room, g *guest.Guest, c *company.Company, in Input) (*Reservation, error) {
	d, err := f.resolve(rm, g, c, in)
	if err != nil {
		return nil, err
	}
	return NewReservation(d, in.Status)
}

// UpdateReservation applies in to r. The price is re-quoted only when the caller leaves it
// empty and the room or the stay changed.
func (f *Factory) UpdateReservation(r *Reservation, rm *room.Room, g *guest.Guest, c *company.Company, in Input) error {
	if r.Status().IsTerminal() {
		return ErrClosed
	}
	if in.TotalPrice == nil && r.RoomID() == rm.ID() && r.Stay().Equal(in.Stay) {
		keep := r.TotalPrice()
		in.TotalPrice = &keep
	}
	d, err := f.resolve(rm, g, c, in)
	if err != nil {
		return err
	}
	return r.Update(d)
}

func (f *Factory) resolve(rm *room.Room, g *guest.Guest, c *company.Company, in Input) (Details, error) {
	d := in.Details
	if !rm.IsBookable() {
		return Details{}, ErrRoomNotBookable
	}
	if !g.IsActive() {
		return Details{}, ErrGuestInactive
	}
	if c != nil && !c.IsActive() {
		return Details{}, ErrCompanyInactive
	}
	if !rm.Fits(d.Adults, d.Children) {
		return Details{}, ErrCapacityExceeded
	}

	d.RoomID = rm.ID()
	d.GuestID = g.ID()
	d.CompanyID = nil
	discount := decimal.Zero
	if c != nil {
		id := c.ID()
		d.CompanyID = &id
		discount = c.DiscountPercent()
	}

	if in.TotalPrice != nil {
		d.TotalPrice = *in.TotalPrice
	} else {
		d.TotalPrice = f.PriceCalculator.Quote(rm.BaseRate(), d.Stay, discount)
	}
	return d, nil
}
