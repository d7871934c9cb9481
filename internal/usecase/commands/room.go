package commands

import (
	"context"
	"log/slog"

	"hostel-admin/internal/domain/room"
	reqdto "hostel-admin/internal/handler/dto/request"
	"hostel-admin/internal/pkg/config"
	"hostel-admin/internal/usecase/queries"
	"hostel-admin/internal/usecase/shared"

	"github.com/google/uuid"
)

type RoomCommands interface {
	Create(ctx context.Context, req reqdto.RoomRequest) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.RoomRequest) error
	ChangeStatus(ctx context.Context, id uuid.UUID, req reqdto.RoomStatusRequest) error
	Archive(ctx context.Context, id uuid.UUID) error
}

type roomCommandsImpl struct {
	uow             shared.UnitOfWork
	defaultCurrency string
}

func NewRoomCommands(uow shared.UnitOfWork, hostel config.HostelConfig) RoomCommands {
	return &roomCommandsImpl{uow: uow, defaultCurrency: hostel.Currency}
}

func (r *roomCommandsImpl) Create(ctx context.Context, req reqdto.RoomRequest) (uuid.UUID, error) {
	attrs, err := req.ToDomain(r.defaultCurrency)
	if err != nil {
		return uuid.Nil, invalid(err)
	}
	rm, err := room.NewRoom(attrs)
	if err != nil {
		return uuid.Nil, invalid(err)
	}

	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Rooms().Create(ctx, rm)
	})
	if err != nil {
		return uuid.Nil, storeErr(err, ErrRoomCodeTaken)
	}

	slog.Info("room created", "room_id", rm.ID(), "code", rm.Code())
	return rm.ID(), nil
}

func (r *roomCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.RoomRequest) error {
	attrs, err := req.ToDomain(r.defaultCurrency)
	if err != nil {
		return invalid(err)
	}
	return r.modify(ctx, id, func(rm *room.Room) error {
		return rm.Update(attrs)
	})
}

func (r *roomCommandsImpl) ChangeStatus(ctx context.Context, id uuid.UUID, req reqdto.RoomStatusRequest) error {
	status, err := req.ToDomain()
	if err != nil {
		return invalid(err)
	}
	return r.modify(ctx, id, func(rm *room.Room) error {
		return rm.ChangeStatus(status)
	})
}

// Archive retires the room; its reservations and history stay in place.
func (r *roomCommandsImpl) Archive(ctx context.Context, id uuid.UUID) error {
	err := r.modify(ctx, id, func(rm *room.Room) error {
		rm.Archive()
		return nil
	})
	if err == nil {
		slog.Info("room archived", "room_id", id)
	}
	return err
}

func (r *roomCommandsImpl) modify(ctx context.Context, id uuid.UUID, change func(rm *room.Room) error) error {
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rm, err := tx.Rooms().FindByID(ctx, id)
		if err != nil {
			return notFoundAs(err, queries.ErrRoomNotFound)
		}
		if err := change(rm); err != nil {
			return invalid(err)
		}
		return tx.Rooms().Update(ctx, rm)
	})
	return storeErr(err, ErrRoomCodeTaken)
}
