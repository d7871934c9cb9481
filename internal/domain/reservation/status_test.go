//go:build unit

package reservation_test

import (
	"testing"

	"hostel-admin/internal/domain/reservation"
	"hostel-admin/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	allowed := map[reservation.Status][]reservation.Status{
		reservation.StatusPending:   {reservation.StatusConfirmed, reservation.StatusCheckedIn, reservation.StatusCancelled},
		reservation.StatusConfirmed: {reservation.StatusPending, reservation.StatusCheckedIn, reservation.StatusCancelled},
		reservation.StatusCheckedIn: {reservation.StatusCheckedOut},
		reservation.StatusBlocked:   {reservation.StatusCancelled},
	}

	for _, from := range reservation.AllStatuses {
		for _, to := range reservation.AllStatuses {
			expect := from == to
			for _, next := range allowed[from] {
				if next == to {
					expect = true
				}
			}
			assert.Equal(t, expect, reservation.CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestTerminalStatusesNeverReenterBlocking(t *testing.T) {
	blocking := reservation.DefaultBlocking()
	for _, from := range reservation.AllStatuses {
		if blocking.Has(from) {
			continue
		}
		for _, to := range reservation.NextStatuses(from) {
			assert.False(t, blocking.Has(to), "%s may not move to blocking %s", from, to)
		}
	}
}

func TestChangeStatus(t *testing.T) {
	t.Run("confirmed to checked_in", func(t *testing.T) {
		r := builder.NewReservationBuilder().BuildStored()
		require.NoError(t, r.ChangeStatus(reservation.StatusCheckedIn))
		assert.Equal(t, reservation.StatusCheckedIn, r.Status())
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		r := builder.NewReservationBuilder().WithStatus(reservation.StatusCancelled).BuildStored()
		require.NoError(t, r.ChangeStatus(reservation.StatusCancelled))
	})

	t.Run("cancelled cannot be checked in", func(t *testing.T) {
		r := builder.NewReservationBuilder().WithStatus(reservation.StatusCancelled).BuildStored()

		err := r.ChangeStatus(reservation.StatusCheckedIn)
		require.ErrorIs(t, err, reservation.ErrInvalidTransition)

		var terr *reservation.TransitionError
		require.ErrorAs(t, err, &terr)
		assert.Equal(t, reservation.StatusCancelled, terr.From)
		assert.Equal(t, reservation.StatusCancelled, r.Status())
	})

	t.Run("unknown status", func(t *testing.T) {
		r := builder.NewReservationBuilder().BuildStored()
		assert.ErrorIs(t, r.ChangeStatus("lost"), reservation.ErrInvalidStatus)
	})
}
