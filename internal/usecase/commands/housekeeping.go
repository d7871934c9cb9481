package commands

import (
	"context"

	"hostel-admin/internal/domain/housekeeping"
	"hostel-admin/internal/domain/room"
	reqdto "hostel-admin/internal/handler/dto/request"
	"hostel-admin/internal/pkg/dates"
	"hostel-admin/internal/usecase/queries"
	"hostel-admin/internal/usecase/shared"

	"github.com/google/uuid"
)

type HousekeepingCommands interface {
	// Upsert sets the room's status for day, replacing whatever was recorded before.
	Upsert(ctx context.Context, roomID uuid.UUID, day dates.Date, req reqdto.HousekeepingRequest, actorID uuid.UUID) (*housekeeping.Entry, error)
}

type housekeepingCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewHousekeepingCommands(uow shared.UnitOfWork) HousekeepingCommands {
	return &housekeepingCommandsImpl{uow: uow}
}

func (h *housekeepingCommandsImpl) Upsert(
	ctx context.Context,
	roomID uuid.UUID,
	day dates.Date,
	req reqdto.HousekeepingRequest,
	actorID uuid.UUID,
) (*housekeeping.Entry, error) {
	var actor *uuid.UUID
	if actorID != uuid.Nil {
		actor = &actorID
	}
	entry, err := housekeeping.NewEntry(housekeeping.Key{RoomID: roomID, Date: day}, housekeeping.Status(req.Status), req.Notes, actor)
	if err != nil {
		return nil, invalid(err)
	}

	var saved *housekeeping.Entry
	err = h.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rm, err := tx.Rooms().FindByID(ctx, roomID)
		if err != nil {
			return notFoundAs(err, queries.ErrRoomNotFound)
		}
		if !rm.IsBookable() {
			return invalid(room.ErrArchived)
		}
		saved, err = tx.Housekeeping().Upsert(ctx, entry)
		return err
	})
	if err != nil {
		return nil, storeErr(err, nil)
	}
	return saved, nil
}
