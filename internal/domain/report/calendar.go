package report

import (
	"errors"
	"sort"

	"hostel-admin/internal/domain/reservation"
	"hostel-admin/internal/pkg/dates"

	"github.com/google/uuid"
)

type View string

const (
	ViewDay   View = "day"
	ViewWeek  View = "week"
	ViewMonth View = "month"
)

var ErrInvalidView = errors.New("calendar view must be day, week or month")

func ParseView(s string) (View, error) {
	switch v := View(s); v {
	case ViewDay, ViewWeek, ViewMonth:
		return v, nil
	case "":
		return ViewWeek, nil
	default:
		return "", ErrInvalidView
	}
}

// ViewWindow is the half-open range a view shows around anchor. Weeks start on Monday.
func ViewWindow(view View, anchor dates.Date) (dates.Range, error) {
	switch view {
	case ViewDay:
		return dates.Range{Start: anchor, End: anchor.AddDays(1)}, nil
	case ViewWeek:
		back := (int(anchor.Weekday()) + 6) % 7
		start := anchor.AddDays(-back)
		return dates.Range{Start: start, End: start.AddDays(7)}, nil
	case ViewMonth:
		t := anchor.Time()
		start := dates.New(t.Year(), t.Month(), 1)
		return dates.Range{Start: start, End: dates.New(t.Year(), t.Month()+1, 1)}, nil
	default:
		return dates.Range{}, ErrInvalidView
	}
}

type CalendarRoom struct {
	ID       uuid.UUID
	Code     string
	Name     string
	RoomType string
}

type CalendarEntry struct {
	ReservationID uuid.UUID
	Code          string
	RoomID        uuid.UUID
	GuestName     string
	Status        reservation.Status
	Stay          dates.Range
}

// Block is an entry positioned on the grid. Percentages are relative to the whole window.
type Block struct {
	Entry        CalendarEntry
	Start        dates.Date
	End          dates.Date
	OffsetDays   int
	SpanDays     int
	LeftPercent  float64
	WidthPercent float64
	ClippedStart bool
	ClippedEnd   bool
}

type CalendarRow struct {
	Room   CalendarRoom
	Blocks []Block
}

type Calendar struct {
	View   View
	Window dates.Range
	Days   []dates.Date
	Rows   []CalendarRow
}

// Project places every non-cancelled entry intersecting window onto its room's row,
// clipped to the window. Overlapping blocks in a row are not reflowed into lanes.
func Project(view View, window dates.Range, rooms []CalendarRoom, entries []CalendarEntry) Calendar {
	total := window.Nights()
	cal := Calendar{View: view, Window: window}
	for d := window.Start; d.Before(window.End); d = d.AddDays(1) {
		cal.Days = append(cal.Days, d)
	}

	index := make(map[uuid.UUID]int, len(rooms))
	cal.Rows = make([]CalendarRow, len(rooms))
	for i, rm := range rooms {
		index[rm.ID] = i
		cal.Rows[i] = CalendarRow{Room: rm, Blocks: []Block{}}
	}

	for _, e := range entries {
		if e.Status == reservation.StatusCancelled {
			continue
		}
		i, ok := index[e.RoomID]
		if !ok {
			continue
		}
		clipped, ok := e.Stay.Clip(window)
		if !ok {
			continue
		}
		offset := window.Start.DaysUntil(clipped.Start)
		span := clipped.Nights()
		cal.Rows[i].Blocks = append(cal.Rows[i].Blocks, Block{
			Entry:        e,
			Start:        clipped.Start,
			End:          clipped.End,
			OffsetDays:   offset,
			SpanDays:     span,
			LeftPercent:  percent(offset, total),
			WidthPercent: percent(span, total),
			ClippedStart: e.Stay.Start.Before(window.Start),
			ClippedEnd:   e.Stay.End.After(window.End),
		})
	}

	for i := range cal.Rows {
		blocks := cal.Rows[i].Blocks
		sort.SliceStable(blocks, func(a, b int) bool {
			return blocks[a].Entry.Stay.Start.Before(blocks[b].Entry.Stay.Start)
		})
	}
	return cal
}
