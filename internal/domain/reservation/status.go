package reservation

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidStatus     = errors.New("invalid reservation status")
	ErrInvalidTransition = errors.New("invalid reservation status transition")
	ErrInvalidInitial    = errors.New("reservations must start as pending, confirmed, checked_in or blocked")
)

var transitions = map[Status][]Status{
	StatusPending:    {StatusConfirmed, StatusCheckedIn, StatusCancelled},
	StatusConfirmed:  {StatusPending, StatusCheckedIn, StatusCancelled},
	StatusCheckedIn:  {StatusCheckedOut},
	StatusBlocked:    {StatusCancelled},
	StatusCheckedOut: nil,
	StatusCancelled:  nil,
}

// TransitionError names both ends of a rejected status change.
type TransitionError struct {
	From Status
	To   Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot move reservation from %s to %s", e.From, e.To)
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// CanTransition reports whether a reservation in from may move to to.
// Staying in the same status is always allowed.
func CanTransition(from, to Status) bool {
	if from == to {
		return true
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// NextStatuses lists the statuses reachable from s in one step.
func NextStatuses(s Status) []Status {
	out := make([]Status, len(transitions[s]))
	copy(out, transitions[s])
	return out
}

func (s Status) IsTerminal() bool {
	return s == StatusCheckedOut || s == StatusCancelled
}

func (s Status) isInitial() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCheckedIn, StatusBlocked:
		return true
	default:
		return false
	}
}
