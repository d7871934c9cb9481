package reservation

import (
	"errors"
	"fmt"

	"hostel-admin/internal/pkg/dates"

	"github.com/google/uuid"
)

var ErrOverlap = errors.New("room is already booked for these dates")

// Occupant is a reservation as seen by the availability check.
type Occupant struct {
	ID     uuid.UUID
	Code   string
	Status Status
	Stay   dates.Range
}

type StatusSet map[Status]struct{}

func NewStatusSet(statuses ...Status) StatusSet {
	s := make(StatusSet, len(statuses))
	for _, st := range statuses {
		s[st] = struct{}{}
	}
	return s
}

// DefaultBlocking holds every status except cancelled.
func DefaultBlocking() StatusSet {
	s := make(StatusSet, len(AllStatuses))
	for _, st := range AllStatuses {
		if st != StatusCancelled {
			s[st] = struct{}{}
		}
	}
	return s
}

func (s StatusSet) Has(st Status) bool {
	_, ok := s[st]
	return ok
}

func (s StatusSet) Slice() []Status {
	out := make([]Status, 0, len(s))
	for _, st := range AllStatuses {
		if s.Has(st) {
			out = append(out, st)
		}
	}
	return out
}

type Conflict struct {
	ID   uuid.UUID
	Code string
	Stay dates.Range
}

// ConflictError names the reservation that already holds the room.
type ConflictError struct {
	Conflict Conflict
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("room is already booked by reservation %s from %s to %s",
		e.Conflict.Code, e.Conflict.Stay.Start, e.Conflict.Stay.End)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrOverlap
}

// FindConflict returns the first occupant whose stay shares a night with stay.
// Occupants are expected to come from a superset filter on the same room; the exact
// half-open test is applied here. exclude skips the reservation being edited and a nil
// blocking set falls back to DefaultBlocking.
func FindConflict(occupants []Occupant, stay dates.Range, exclude *uuid.UUID, blocking StatusSet) *Conflict {
	if blocking == nil {
		blocking = DefaultBlocking()
	}
	for _, o := range occupants {
		if exclude != nil && o.ID == *exclude {
			continue
		}
		if !blocking.Has(o.Status) {
			continue
		}
		if o.Stay.Overlaps(stay) {
			return &Conflict{ID: o.ID, Code: o.Code, Stay: o.Stay}
		}
	}
	return nil
}

// CheckAvailability is FindConflict reported as an error.
func CheckAvailability(occupants []Occupant, stay dates.Range, exclude *uuid.UUID, blocking StatusSet) error {
	if c := FindConflict(occupants, stay, exclude, blocking); c != nil {
		return &ConflictError{Conflict: *c}
	}
	return nil
}
