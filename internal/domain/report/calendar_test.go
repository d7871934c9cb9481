//go:build unit

package report_test

import (
	"testing"

	"hostel-admin/internal/domain/report"
	"hostel-admin/internal/domain/reservation"
	"hostel-admin/internal/pkg/dates"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewWindow(t *testing.T) {
	testCases := []struct {
		view       report.View
		anchor     string
		start, end string
	}{
		{view: report.ViewDay, anchor: "2024-09-04", start: "2024-09-04", end: "2024-09-05"},
		{view: report.ViewWeek, anchor: "2024-09-04", start: "2024-09-02", end: "2024-09-09"},
		{view: report.ViewWeek, anchor: "2024-09-08", start: "2024-09-02", end: "2024-09-09"},
		{view: report.ViewWeek, anchor: "2024-09-02", start: "2024-09-02", end: "2024-09-09"},
		{view: report.ViewMonth, anchor: "2024-02-15", start: "2024-02-01", end: "2024-03-01"},
		{view: report.ViewMonth, anchor: "2024-12-31", start: "2024-12-01", end: "2025-01-01"},
	}
	for _, tc := range testCases {
		t.Run(string(tc.view)+" "+tc.anchor, func(t *testing.T) {
			w, err := report.ViewWindow(tc.view, dates.MustParse(tc.anchor))
			require.NoError(t, err)
			assert.Equal(t, tc.start, w.Start.String())
			assert.Equal(t, tc.end, w.End.String())
		})
	}

	_, err := report.ParseView("year")
	assert.ErrorIs(t, err, report.ErrInvalidView)
}

func TestProject(t *testing.T) {
	roomA := report.CalendarRoom{ID: uuid.New(), Code: "A"}
	roomB := report.CalendarRoom{ID: uuid.New(), Code: "B"}
	window, err := report.ViewWindow(report.ViewWeek, dates.MustParse("2024-09-04"))
	require.NoError(t, err)

	entry := func(room uuid.UUID, in, out string, status reservation.Status) report.CalendarEntry {
		return report.CalendarEntry{
			ReservationID: uuid.New(),
			RoomID:        room,
			Status:        status,
			Stay:          dates.Range{Start: dates.MustParse(in), End: dates.MustParse(out)},
		}
	}

	cal := report.Project(report.ViewWeek, window, []report.CalendarRoom{roomA, roomB}, []report.CalendarEntry{
		entry(roomA.ID, "2024-09-05", "2024-09-07", reservation.StatusConfirmed),
		entry(roomA.ID, "2024-08-30", "2024-09-03", reservation.StatusCheckedIn),
		entry(roomB.ID, "2024-09-08", "2024-09-12", reservation.StatusPending),
		entry(roomB.ID, "2024-09-03", "2024-09-05", reservation.StatusCancelled),
		entry(roomB.ID, "2024-09-09", "2024-09-10", reservation.StatusConfirmed),
	})

	require.Len(t, cal.Days, 7)
	require.Len(t, cal.Rows, 2)

	a := cal.Rows[0].Blocks
	require.Len(t, a, 2)
	assert.Equal(t, "2024-09-02", a[0].Start.String())
	assert.True(t, a[0].ClippedStart)
	assert.Equal(t, 0, a[0].OffsetDays)
	assert.Equal(t, 1, a[0].SpanDays)
	assert.InDelta(t, 14.29, a[0].WidthPercent, 0.001)

	assert.Equal(t, 3, a[1].OffsetDays)
	assert.Equal(t, 2, a[1].SpanDays)
	assert.InDelta(t, 42.86, a[1].LeftPercent, 0.001)
	assert.InDelta(t, 28.57, a[1].WidthPercent, 0.001)

	b := cal.Rows[1].Blocks
	require.Len(t, b, 1)
	assert.Equal(t, 6, b[0].OffsetDays)
	assert.Equal(t, 1, b[0].SpanDays)
	assert.True(t, b[0].ClippedEnd)
	assert.InDelta(t, 100.0, b[0].LeftPercent+b[0].WidthPercent, 0.02)
}
