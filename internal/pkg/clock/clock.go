package clock

import (
	"time"

	"hostel-admin/internal/pkg/dates"
)

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

type MockClock struct {
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	return c.currentTime
}

func (c *MockClock) Set(t time.Time) {
	c.currentTime = t
}

func (c *MockClock) Add(d time.Duration) {
	c.currentTime = c.currentTime.Add(d)
}

// Today is the calendar day the hostel is living in, which is not the UTC day late in the evening.
func Today(c Clock, loc *time.Location) dates.Date {
	if loc == nil {
		loc = time.UTC
	}
	return dates.Of(c.Now().In(loc))
}
