//go:build unit

package housekeeping_test

import (
	"strings"
	"testing"

	"hostel-admin/internal/domain/housekeeping"
	"hostel-admin/internal/pkg/dates"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntry(t *testing.T) {
	key := housekeeping.Key{RoomID: uuid.New(), Date: dates.MustParse("2024-09-01")}

	t.Run("valid", func(t *testing.T) {
		e, err := housekeeping.NewEntry(key, housekeeping.StatusCleaning, "  towels  ", nil)
		require.NoError(t, err)
		assert.Equal(t, "towels", e.Notes())
		assert.Equal(t, key, e.Key())
	})

	testCases := []struct {
		name   string
		key    housekeeping.Key
		status housekeeping.Status
		notes  string
		errIs  error
	}{
		{name: "unknown status", key: key, status: "sparkling", errIs: housekeeping.ErrInvalidStatus},
		{name: "no room", key: housekeeping.Key{Date: key.Date}, status: housekeeping.StatusReady, errIs: housekeeping.ErrMissingRoom},
		{name: "no date", key: housekeeping.Key{RoomID: key.RoomID}, status: housekeeping.StatusReady, errIs: housekeeping.ErrMissingDate},
		{name: "notes too long", key: key, status: housekeeping.StatusReady, notes: strings.Repeat("x", housekeeping.MaxNotesLength+1), errIs: housekeeping.ErrNotesTooLong},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := housekeeping.NewEntry(tc.key, tc.status, tc.notes, nil)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestBuildBoard(t *testing.T) {
	day := dates.MustParse("2024-09-04")
	a := housekeeping.RoomRef{ID: uuid.New(), Code: "A"}
	b := housekeeping.RoomRef{ID: uuid.New(), Code: "B"}
	c := housekeeping.RoomRef{ID: uuid.New(), Code: "C"}

	recorded, err := housekeeping.NewEntry(housekeeping.Key{RoomID: c.ID, Date: day}, housekeeping.StatusMaintenance, "leak", nil)
	require.NoError(t, err)

	rows := housekeeping.BuildBoard(day,
		[]housekeeping.RoomRef{a, b, c},
		[]*housekeeping.Entry{recorded},
		[]housekeeping.Movement{
			{RoomID: a.ID, Stay: dates.Range{Start: dates.MustParse("2024-09-01"), End: day}},
			{RoomID: a.ID, Stay: dates.Range{Start: day, End: dates.MustParse("2024-09-06")}},
		},
	)
	require.Len(t, rows, 3)

	assert.Equal(t, housekeeping.StatusDirty, rows[0].Status)
	assert.True(t, rows[0].DepartsToday)
	assert.True(t, rows[0].ArrivesToday)
	assert.True(t, rows[0].Occupied)
	assert.False(t, rows[0].Recorded)

	assert.Equal(t, housekeeping.StatusReady, rows[1].Status)
	assert.False(t, rows[1].Occupied)

	assert.Equal(t, housekeeping.StatusMaintenance, rows[2].Status)
	assert.Equal(t, "leak", rows[2].Notes)
	assert.True(t, rows[2].Recorded)
}
