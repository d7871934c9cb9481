package response

import (
	"hostel-admin/internal/domain/report"
	"hostel-admin/internal/pkg/dates"

	"github.com/google/uuid"
)

type CalendarBlockResponse struct {
	ReservationID uuid.UUID  `json:"reservation_id"`
	Code          string     `json:"code"`
	GuestName     string     `json:"guest_name"`
	Status        string     `json:"status"`
	CheckIn       dates.Date `json:"check_in"`
	CheckOut      dates.Date `json:"check_out"`
	Start         dates.Date `json:"start"`
	End           dates.Date `json:"end"`
	OffsetDays    int        `json:"offset_days"`
	SpanDays      int        `json:"span_days"`
	LeftPercent   float64    `json:"left_percent"`
	WidthPercent  float64    `json:"width_percent"`
	ClippedStart  bool       `json:"clipped_start"`
	ClippedEnd    bool       `json:"clipped_end"`
}

type CalendarRowResponse struct {
	RoomID   uuid.UUID                `json:"room_id"`
	RoomCode string                   `json:"room_code"`
	RoomName string                   `json:"room_name"`
	RoomType string                   `json:"room_type"`
	Blocks   []*CalendarBlockResponse `json:"blocks"`
}

type CalendarResponse struct {
	View  string                 `json:"view"`
	Start dates.Date             `json:"start"`
	End   dates.Date             `json:"end"`
	Days  []dates.Date           `json:"days"`
	Rows  []*CalendarRowResponse `json:"rows"`
}

func FromCalendar(cal *report.Calendar) *CalendarResponse {
	res := &CalendarResponse{
		View:  string(cal.View),
		Start: cal.Window.Start,
		End:   cal.Window.End,
		Days:  cal.Days,
		Rows:  make([]*CalendarRowResponse, len(cal.Rows)),
	}
	for i, row := range cal.Rows {
		r := &CalendarRowResponse{
			RoomID:   row.Room.ID,
			RoomCode: row.Room.Code,
			RoomName: row.Room.Name,
			RoomType: row.Room.RoomType,
			Blocks:   make([]*CalendarBlockResponse, len(row.Blocks)),
		}
		for j, b := range row.Blocks {
			r.Blocks[j] = &CalendarBlockResponse{
				ReservationID: b.Entry.ReservationID,
				Code:          b.Entry.Code,
				GuestName:     b.Entry.GuestName,
				Status:        string(b.Entry.Status),
				CheckIn:       b.Entry.Stay.Start,
				CheckOut:      b.Entry.Stay.End,
				Start:         b.Start,
				End:           b.End,
				OffsetDays:    b.OffsetDays,
				SpanDays:      b.SpanDays,
				LeftPercent:   b.LeftPercent,
				WidthPercent:  b.WidthPercent,
				ClippedStart:  b.ClippedStart,
				ClippedEnd:    b.ClippedEnd,
			}
		}
		res.Rows[i] = r
	}
	return res
}
