package response

import (
	"time"

	"hostel-admin/internal/domain/housekeeping"
	"hostel-admin/internal/pkg/dates"
	"hostel-admin/internal/usecase/queries"

	"github.com/google/uuid"
)

type BoardRowResponse struct {
	RoomID       uuid.UUID  `json:"room_id"`
	RoomCode     string     `json:"room_code"`
	RoomName     string     `json:"room_name"`
	RoomType     string     `json:"room_type"`
	Status       string     `json:"status"`
	Notes        string     `json:"notes"`
	Recorded     bool       `json:"recorded"`
	Occupied     bool       `json:"occupied"`
	ArrivesToday bool       `json:"arrives_today"`
	DepartsToday bool       `json:"departs_today"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

type BoardResponse struct {
	Date dates.Date          `json:"date"`
	Rows []*BoardRowResponse `json:"rows"`
}

func FromBoard(b *queries.HousekeepingBoard) *BoardResponse {
	res := &BoardResponse{Date: b.Date, Rows: make([]*BoardRowResponse, len(b.Rows))}
	for i, r := range b.Rows {
		row := &BoardRowResponse{
			RoomID:       r.Room.ID,
			RoomCode:     r.Room.Code,
			RoomName:     r.Room.Name,
			RoomType:     r.Room.RoomType,
			Status:       string(r.Status),
			Notes:        r.Notes,
			Recorded:     r.Recorded,
			Occupied:     r.Occupied,
			ArrivesToday: r.ArrivesToday,
			DepartsToday: r.DepartsToday,
		}
		if r.Recorded {
			updatedAt := r.UpdatedAt
			row.UpdatedAt = &updatedAt
		}
		res.Rows[i] = row
	}
	return res
}

type EntryResponse struct {
	ID        uuid.UUID  `json:"id"`
	RoomID    uuid.UUID  `json:"room_id"`
	Date      dates.Date `json:"date"`
	Status    string     `json:"status"`
	Notes     string     `json:"notes"`
	UpdatedBy *uuid.UUID `json:"updated_by,omitempty"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func FromEntry(e *housekeeping.Entry) *EntryResponse {
	return &EntryResponse{
		ID:        e.ID(),
		RoomID:    e.RoomID(),
		Date:      e.Date(),
		Status:    string(e.Status()),
		Notes:     e.Notes(),
		UpdatedBy: e.UpdatedBy(),
		UpdatedAt: e.UpdatedAt(),
	}
}
