//go:build unit

package reservation_test

import (
	"testing"

	"hostel-admin/internal/domain/reservation"
	"hostel-admin/internal/pkg/dates"
	"hostel-admin/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stay(t *testing.T, in, out string) dates.Range {
	t.Helper()
	r, err := dates.ParseRange(in, out)
	require.NoError(t, err)
	return r
}

func TestFindConflict(t *testing.T) {
	existing := builder.NewReservationBuilder().
		WithStay("2024-07-10", "2024-07-15").
		With(func(b *builder.ReservationBuilder) { b.Code = "R-000007" }).
		BuildOccupant()
	occupants := []reservation.Occupant{existing}

	t.Run("adjacent stay is accepted", func(t *testing.T) {
		c := reservation.FindConflict(occupants, stay(t, "2024-07-15", "2024-07-18"), nil, nil)
		assert.Nil(t, c)
	})

	t.Run("overlapping stay names the existing reservation", func(t *testing.T) {
		err := reservation.CheckAvailability(occupants, stay(t, "2024-07-14", "2024-07-20"), nil, nil)
		require.ErrorIs(t, err, reservation.ErrOverlap)

		var cerr *reservation.ConflictError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, existing.ID, cerr.Conflict.ID)
		assert.Contains(t, err.Error(), "R-000007")
	})

	t.Run("editing in place does not conflict with itself", func(t *testing.T) {
		self := existing.ID
		c := reservation.FindConflict(occupants, existing.Stay, &self, nil)
		assert.Nil(t, c)
	})

	t.Run("cancelled reservations do not block", func(t *testing.T) {
		cancelled := existing
		cancelled.Status = reservation.StatusCancelled
		c := reservation.FindConflict([]reservation.Occupant{cancelled}, existing.Stay, nil, nil)
		assert.Nil(t, c)
	})

	t.Run("custom blocking set", func(t *testing.T) {
		onlyCheckedIn := reservation.NewStatusSet(reservation.StatusCheckedIn)
		assert.Nil(t, reservation.FindConflict(occupants, existing.Stay, nil, onlyCheckedIn))
	})

	t.Run("superset rows are confirmed exactly", func(t *testing.T) {
		before := reservation.Occupant{
			ID:     uuid.New(),
			Code:   "R-000001",
			Status: reservation.StatusConfirmed,
			Stay:   stay(t, "2024-07-01", "2024-07-10"),
		}
		c := reservation.FindConflict([]reservation.Occupant{before}, stay(t, "2024-07-10", "2024-07-12"), nil, nil)
		assert.Nil(t, c)
	})
}

func TestDefaultBlocking(t *testing.T) {
	s := reservation.DefaultBlocking()
	assert.False(t, s.Has(reservation.StatusCancelled))
	assert.Len(t, s.Slice(), len(reservation.AllStatuses)-1)
}
