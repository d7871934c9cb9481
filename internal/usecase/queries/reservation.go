package queries

import (
	"context"

	"hostel-admin/internal/domain/reservation"
	"hostel-admin/internal/domain/room"
	"hostel-admin/internal/pkg/dates"

	"github.com/google/uuid"
)

// ReservationFilter selects reservations whose stay overlaps Window.
type ReservationFilter struct {
	Window    dates.Window
	RoomID    *uuid.UUID
	CompanyID *uuid.UUID
	Status    []reservation.Status
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListOverlapping(ctx context.Context, f ReservationFilter) ([]*ReservationListItem, error)
	// Occupants returns the stays on roomID whose storage range overlaps stay, any status.
	Occupants(ctx context.Context, roomID uuid.UUID, stay dates.Range) ([]reservation.Occupant, error)
}

type ConflictView struct {
	ReservationID uuid.UUID  `json:"reservation_id"`
	Code          string     `json:"code"`
	CheckIn       dates.Date `json:"check_in"`
	CheckOut      dates.Date `json:"check_out"`
}

type AvailabilityView struct {
	RoomID    uuid.UUID     `json:"room_id"`
	CheckIn   dates.Date    `json:"check_in"`
	CheckOut  dates.Date    `json:"check_out"`
	Nights    int           `json:"nights"`
	Available bool          `json:"available"`
	Conflict  *ConflictView `json:"conflict,omitempty"`
	// Reason is set when the room itself cannot take bookings.
	Reason string `json:"reason,omitempty"`
}

const ReasonRoomArchived = "room_archived"

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context, f ReservationFilter) ([]*ReservationListItem, error)
	CheckAvailability(ctx context.Context, roomID uuid.UUID, stay dates.Range, excludeID *uuid.UUID) (*AvailabilityView, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
	rooms RoomReadStore
}

func NewReservationQueries(store ReservationReadStore, rooms RoomReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store, rooms: rooms}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrReservationNotFound)
	}
	return v, nil
}

func (q *reservationQueriesImpl) List(ctx context.Context, f ReservationFilter) ([]*ReservationListItem, error) {
	return q.store.ListOverlapping(ctx, f)
}

func (q *reservationQueriesImpl) CheckAvailability(
	ctx context.Context,
	roomID uuid.UUID,
	stay dates.Range,
	excludeID *uuid.UUID,
) (*AvailabilityView, error) {
	rm, err := q.rooms.FindByID(ctx, roomID)
	if err != nil {
		return nil, notFoundAs(err, ErrRoomNotFound)
	}

	view := &AvailabilityView{
		RoomID:    roomID,
		CheckIn:   stay.Start,
		CheckOut:  stay.End,
		Nights:    stay.Nights(),
		Available: true,
	}
	if rm.Status == string(room.StatusArchived) {
		view.Available = false
		view.Reason = ReasonRoomArchived
		return view, nil
	}

	occupants, err := q.store.Occupants(ctx, roomID, stay)
	if err != nil {
		return nil, err
	}
	if c := reservation.FindConflict(occupants, stay, excludeID, nil); c != nil {
		view.Available = false
		view.Conflict = &ConflictView{
			ReservationID: c.ID,
			Code:          c.Code,
			CheckIn:       c.Stay.Start,
			CheckOut:      c.Stay.End,
		}
	}
	return view, nil
}
