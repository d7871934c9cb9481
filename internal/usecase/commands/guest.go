package commands

import (
	"context"

	"hostel-admin/internal/domain/guest"
	reqdto "hostel-admin/internal/handler/dto/request"
	"hostel-admin/internal/usecase/queries"
	"hostel-admin/internal/usecase/shared"

	"github.com/google/uuid"
)

type GuestCommands interface {
	Create(ctx context.Context, req reqdto.GuestRequest) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.GuestRequest) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type guestCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewGuestCommands(uow shared.UnitOfWork) GuestCommands {
	return &guestCommandsImpl{uow: uow}
}

func (g *guestCommandsImpl) Create(ctx context.Context, req reqdto.GuestRequest) (uuid.UUID, error) {
	profile, err := req.ToDomain()
	if err != nil {
		return uuid.Nil, invalid(err)
	}
	gst, err := guest.NewGuest(profile)
	if err != nil {
		return uuid.Nil, invalid(err)
	}

	err = g.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Guests().Create(ctx, gst)
	})
	if err != nil {
		return uuid.Nil, storeErr(err, nil)
	}
	return gst.ID(), nil
}

func (g *guestCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.GuestRequest) error {
	profile, err := req.ToDomain()
	if err != nil {
		return invalid(err)
	}
	return g.modify(ctx, id, func(gst *guest.Guest) error {
		return gst.Update(profile)
	})
}

// Deactivate hides the guest from new bookings; past stays keep pointing at them.
func (g *guestCommandsImpl) Deactivate(ctx context.Context, id uuid.UUID) error {
	return g.modify(ctx, id, func(gst *guest.Guest) error {
		gst.Deactivate()
		return nil
	})
}

func (g *guestCommandsImpl) modify(ctx context.Context, id uuid.UUID, change func(gst *guest.Guest) error) error {
	err := g.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		gst, err := tx.Guests().FindByID(ctx, id)
		if err != nil {
			return notFoundAs(err, queries.ErrGuestNotFound)
		}
		if err := change(gst); err != nil {
			return invalid(err)
		}
		return tx.Guests().Update(ctx, gst)
	})
	return storeErr(err, nil)
}
