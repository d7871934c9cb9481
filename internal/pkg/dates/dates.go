package dates

import (
	"errors"
	"strings"
	"time"
)

const (
	Layout        = "2006-01-02"
	secondsPerDay = 24 * 60 * 60
)

var (
	ErrInvalidDate  = errors.New("invalid date, expected YYYY-MM-DD")
	ErrEmptyRange   = errors.New("end date must be after start date")
	ErrInvertWindow = errors.New("window end must not be before window start")
)

// Date is a calendar day without time-of-day or zone. The zero value is not a valid date.
// Internally it is anchored at 00:00 UTC so that comparisons never drift across a day boundary.
type Date struct {
	t time.Time
}

func Parse(s string) (Date, error) {
	t, err := time.ParseInLocation(Layout, strings.TrimSpace(s), time.UTC)
	if err != nil || t.IsZero() {
		return Date{}, ErrInvalidDate
	}
	return Date{t: t}, nil
}

func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Of drops the time-of-day of t as observed in t's own location.
func Of(t time.Time) Date {
	y, m, d := t.Date()
	return New(y, m, d)
}

func New(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) IsZero() bool          { return d.t.IsZero() }
func (d Date) Time() time.Time       { return d.t }
func (d Date) String() string        { return d.t.Format(Layout) }
func (d Date) Before(o Date) bool    { return d.t.Before(o.t) }
func (d Date) After(o Date) bool     { return d.t.After(o.t) }
func (d Date) Equal(o Date) bool     { return d.t.Equal(o.t) }
func (d Date) AddDays(n int) Date    { return Date{t: d.t.AddDate(0, 0, n)} }
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }

// At returns midnight of d in loc, used to bound timestamp columns by calendar day.
func (d Date) At(loc *time.Location) time.Time {
	y, m, day := d.t.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, loc)
}

// DaysUntil returns the number of calendar days from d to o (negative when o is earlier).
func (d Date) DaysUntil(o Date) int {
	return int((o.t.Unix() - d.t.Unix()) / secondsPerDay)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func Min(a, b Date) Date {
	if a.Before(b) {
		return a
	}
	return b
}

func Max(a, b Date) Date {
	if a.After(b) {
		return a
	}
	return b
}

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) share at least one day.
func Overlaps(aStart, aEnd, bStart, bEnd Date) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// OccupiesDay reports whether a stay of [checkIn, checkOut) holds the room on day.
// The check-out day itself is free.
func OccupiesDay(checkIn, checkOut, day Date) bool {
	return !day.Before(checkIn) && day.Before(checkOut)
}
