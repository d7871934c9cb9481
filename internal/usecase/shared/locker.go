package shared

import (
	"context"

	"hostel-admin/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrRoomBusy = errs.New("another booking for this room is in progress")

// RoomLocker serializes booking writes per room across application instances.
// Release must be called once the write has committed or failed.
type RoomLocker interface {
	LockRoom(ctx context.Context, roomID uuid.UUID) (release func(context.Context), err error)
}

// NoopLocker is used when no distributed lock backend is configured; the database
// still rejects overlapping stays on its own.
type NoopLocker struct{}

func (NoopLocker) LockRoom(context.Context, uuid.UUID) (func(context.Context), error) {
	return func(context.Context) {}, nil
}
