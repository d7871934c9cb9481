package reservation

import (
	"errors"
	"strings"
	"time"

	"hostel-admin/internal/pkg/dates"
)

var (
	ErrInvalidParty         = errors.New("a reservation needs at least one adult and children cannot be negative")
	ErrTooManyCompanions    = errors.New("companions cannot outnumber the party")
	ErrEmptyCompanionName   = errors.New("companion full name cannot be empty")
	ErrInvalidInvoiceStatus = errors.New("invalid invoice status")
	ErrMissingInvoiceNumber = errors.New("an issued invoice needs a number and a date")
	ErrInvalidTimeHint      = errors.New("time hints must use HH:MM")
	ErrNoteTooLong          = errors.New("notes are too long (max 2000 characters)")
)

const MaxNoteLength = 2000

type Party struct {
	adults   int
	children int
}

func NewParty(adults, children int) (Party, error) {
	if adults < 1 || children < 0 {
		return Party{}, ErrInvalidParty
	}
	return Party{adults: adults, children: children}, nil
}

func (p Party) Adults() int   { return p.adults }
func (p Party) Children() int { return p.children }
func (p Party) Size() int     { return p.adults + p.children }

// Companion is a person staying with the lead guest.
type Companion struct {
	FullName    string
	DocumentID  string
	Nationality string
}

func NewCompanions(raw []Companion, party Party) ([]Companion, error) {
	if len(raw) > party.Size()-1 {
		return nil, ErrTooManyCompanions
	}
	out := make([]Companion, 0, len(raw))
	for _, c := range raw {
		name := strings.TrimSpace(c.FullName)
		if name == "" {
			return nil, ErrEmptyCompanionName
		}
		out = append(out, Companion{
			FullName:    name,
			DocumentID:  strings.TrimSpace(c.DocumentID),
			Nationality: strings.TrimSpace(c.Nationality),
		})
	}
	return out, nil
}

type Invoice struct {
	status InvoiceStatus
	number string
	date   *dates.Date
}

func NewInvoice(status InvoiceStatus, number string, date *dates.Date) (Invoice, error) {
	if status == "" {
		status = InvoiceNone
	}
	if !status.IsValid() {
		return Invoice{}, ErrInvalidInvoiceStatus
	}
	number = strings.TrimSpace(number)
	if status == InvoiceIssued && (number == "" || date == nil) {
		return Invoice{}, ErrMissingInvoiceNumber
	}
	return Invoice{status: status, number: number, date: date}, nil
}

func (i Invoice) Status() InvoiceStatus { return i.status }
func (i Invoice) Number() string        { return i.number }
func (i Invoice) Date() *dates.Date     { return i.date }

type Note struct {
	value string
}

func NewNote(value string) (Note, error) {
	value = strings.TrimSpace(value)
	if len(value) > MaxNoteLength {
		return Note{}, ErrNoteTooLong
	}
	return Note{value: value}, nil
}

func (n Note) String() string {
	return n.value
}

// TimeHint is an optional wall-clock hint such as expected arrival or breakfast time.
type TimeHint struct {
	value string
}

func NewTimeHint(value string) (TimeHint, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return TimeHint{}, nil
	}
	if _, err := time.Parse("15:04", value); err != nil {
		return TimeHint{}, ErrInvalidTimeHint
	}
	return TimeHint{value: value}, nil
}

func (h TimeHint) String() string { return h.value }
func (h TimeHint) IsZero() bool   { return h.value == "" }
