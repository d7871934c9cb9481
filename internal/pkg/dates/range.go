package dates

// Range is a half-open stay interval [Start, End).
type Range struct {
	Start Date
	End   Date
}

func NewRange(start, end Date) (Range, error) {
	if start.IsZero() || end.IsZero() {
		return Range{}, ErrInvalidDate
	}
	if !start.Before(end) {
		return Range{}, ErrEmptyRange
	}
	return Range{Start: start, End: end}, nil
}

func ParseRange(start, end string) (Range, error) {
	s, err := Parse(start)
	if err != nil {
		return Range{}, err
	}
	e, err := Parse(end)
	if err != nil {
		return Range{}, err
	}
	return NewRange(s, e)
}

func (r Range) Nights() int { return r.Start.DaysUntil(r.End) }

func (r Range) Contains(day Date) bool { return OccupiesDay(r.Start, r.End, day) }

func (r Range) Overlaps(o Range) bool { return Overlaps(r.Start, r.End, o.Start, o.End) }

func (r Range) Equal(o Range) bool { return r.Start.Equal(o.Start) && r.End.Equal(o.End) }

// Clip intersects r with w. ok is false when they do not overlap.
func (r Range) Clip(w Range) (clipped Range, ok bool) {
	if !r.Overlaps(w) {
		return Range{}, false
	}
	return Range{Start: Max(r.Start, w.Start), End: Min(r.End, w.End)}, true
}

// Window is an inclusive reporting window [From, To].
type Window struct {
	From Date
	To   Date
}

func NewWindow(from, to Date) (Window, error) {
	if from.IsZero() || to.IsZero() {
		return Window{}, ErrInvalidDate
	}
	if to.Before(from) {
		return Window{}, ErrInvertWindow
	}
	return Window{From: from, To: to}, nil
}

func ParseWindow(from, to string) (Window, error) {
	f, err := Parse(from)
	if err != nil {
		return Window{}, err
	}
	t, err := Parse(to)
	if err != nil {
		return Window{}, err
	}
	return NewWindow(f, t)
}

func (w Window) DayCount() int { return w.From.DaysUntil(w.To) + 1 }

// HalfOpen returns [From, To+1), the form every store-level window filter uses.
func (w Window) HalfOpen() Range {
	return Range{Start: w.From, End: w.To.AddDays(1)}
}

func (w Window) Days() []Date {
	out := make([]Date, 0, w.DayCount())
	for d := w.From; !d.After(w.To); d = d.AddDays(1) {
		out = append(out, d)
	}
	return out
}
