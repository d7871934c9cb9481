package housekeeping

import (
	"errors"
	"strings"
	"time"

	"hostel-admin/internal/pkg/dates"

	"github.com/google/uuid"
)

type Status string

const (
	StatusDirty       Status = "dirty"
	StatusCleaning    Status = "cleaning"
	StatusReady       Status = "ready"
	StatusMaintenance Status = "maintenance"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusDirty, StatusCleaning, StatusReady, StatusMaintenance:
		return true
	default:
		return false
	}
}

var (
	ErrInvalidStatus = errors.New("invalid housekeeping status")
	ErrMissingRoom   = errors.New("housekeeping entry needs a room")
	ErrMissingDate   = errors.New("housekeeping entry needs a date")
	ErrNotesTooLong  = errors.New("housekeeping notes are too long (max 500 characters)")
)

const MaxNotesLength = 500

// Key identifies the single entry a room may have on a given day.
type Key struct {
	RoomID uuid.UUID
	Date   dates.Date
}

type Entry struct {
	id        uuid.UUID
	key       Key
	status    Status
	notes     string
	updatedBy *uuid.UUID
	updatedAt time.Time
}

func NewEntry(key Key, status Status, notes string, updatedBy *uuid.UUID) (*Entry, error) {
	if key.RoomID == uuid.Nil {
		return nil, ErrMissingRoom
	}
	if key.Date.IsZero() {
		return nil, ErrMissingDate
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	notes = strings.TrimSpace(notes)
	if len(notes) > MaxNotesLength {
		return nil, ErrNotesTooLong
	}
	return &Entry{
		id:        uuid.New(),
		key:       key,
		status:    status,
		notes:     notes,
		updatedBy: updatedBy,
	}, nil
}

func ReconstructEntry(id uuid.UUID, key Key, status Status, notes string, updatedBy *uuid.UUID, updatedAt time.Time) *Entry {
	return &Entry{id: id, key: key, status: status, notes: notes, updatedBy: updatedBy, updatedAt: updatedAt}
}

func (e *Entry) ID() uuid.UUID         { return e.id }
func (e *Entry) Key() Key              { return e.key }
func (e *Entry) RoomID() uuid.UUID     { return e.key.RoomID }
func (e *Entry) Date() dates.Date      { return e.key.Date }
func (e *Entry) Status() Status        { return e.status }
func (e *Entry) Notes() string         { return e.notes }
func (e *Entry) UpdatedBy() *uuid.UUID { return e.updatedBy }
func (e *Entry) UpdatedAt() time.Time  { return e.updatedAt }

// RoomRef is the slice of a room the board needs.
type RoomRef struct {
	ID        uuid.UUID
	Code      string
	Name      string
	RoomType  string
	SortOrder int
}

// Movement is a stay touching the board's day.
type Movement struct {
	RoomID uuid.UUID
	Stay   dates.Range
}

type BoardRow struct {
	Room         RoomRef
	Status       Status
	Notes        string
	Recorded     bool
	Occupied     bool
	ArrivesToday bool
	DepartsToday bool
	UpdatedAt    time.Time
}

// BuildBoard lays out one row per room for day. A room with no recorded entry is dirty
// when a guest departed that day and ready otherwise.
func BuildBoard(day dates.Date, rooms []RoomRef, entries []*Entry, movements []Movement) []BoardRow {
	byRoom := make(map[uuid.UUID]*Entry, len(entries))
	for _, e := range entries {
		if e.Date().Equal(day) {
			byRoom[e.RoomID()] = e
		}
	}

	type flags struct{ occupied, arrives, departs bool }
	moves := make(map[uuid.UUID]flags, len(rooms))
	for _, m := range movements {
		f := moves[m.RoomID]
		if m.Stay.Contains(day) {
			f.occupied = true
		}
		if m.Stay.Start.Equal(day) {
			f.arrives = true
		}
		if m.Stay.End.Equal(day) {
			f.departs = true
		}
		moves[m.RoomID] = f
	}

	rows := make([]BoardRow, 0, len(rooms))
	for _, rm := range rooms {
		f := moves[rm.ID]
		row := BoardRow{
			Room:         rm,
			Status:       StatusReady,
			Occupied:     f.occupied,
			ArrivesToday: f.arrives,
			DepartsToday: f.departs,
		}
		if e, ok := byRoom[rm.ID]; ok {
			row.Status = e.Status()
			row.Notes = e.Notes()
			row.Recorded = true
			row.UpdatedAt = e.UpdatedAt()
		} else if f.departs {
			row.Status = StatusDirty
		}
		rows = append(rows, row)
	}
	return rows
}
