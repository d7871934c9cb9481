//go:build unit

package dates_test

import (
	"encoding/json"
	"testing"
	"time"

	"hostel-admin/internal/pkg/dates"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) dates.Date { return dates.MustParse(s) }

func TestParse(t *testing.T) {
	t.Run("valid date is anchored at midnight UTC", func(t *testing.T) {
		got, err := dates.Parse("2024-06-01")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), got.Time())
		assert.Equal(t, "2024-06-01", got.String())
	})

	for _, in := range []string{"", "2024-13-01", "01/06/2024", "2024-06-01T10:00:00Z", "0001-01-01"} {
		t.Run("rejects "+in, func(t *testing.T) {
			_, err := dates.Parse(in)
			assert.ErrorIs(t, err, dates.ErrInvalidDate)
		})
	}

	t.Run("Of drops time of day in the value's own zone", func(t *testing.T) {
		lima := time.FixedZone("PET", -5*3600)
		late := time.Date(2024, 6, 1, 23, 30, 0, 0, lima)
		assert.Equal(t, "2024-06-01", dates.Of(late).String())
	})
}

func TestDaysUntil(t *testing.T) {
	testCases := []struct {
		from, to string
		expect   int
	}{
		{from: "2024-06-01", to: "2024-06-01", expect: 0},
		{from: "2024-02-28", to: "2024-03-01", expect: 2},
		{from: "2024-06-05", to: "2024-06-01", expect: -4},
		{from: "1700-01-01", to: "2100-01-01", expect: 146097},
		{from: "2100-01-01", to: "1700-01-01", expect: -146097},
	}

	for _, tc := range testCases {
		t.Run(tc.from+" to "+tc.to, func(t *testing.T) {
			assert.Equal(t, tc.expect, d(tc.from).DaysUntil(d(tc.to)))
		})
	}

	t.Run("day count agrees with the listed days over centuries", func(t *testing.T) {
		w, err := dates.NewWindow(d("1700-01-01"), d("2100-01-01"))
		require.NoError(t, err)
		assert.Equal(t, 146098, w.DayCount())
		assert.Len(t, w.Days(), w.DayCount())

		r, err := dates.NewRange(d("1700-01-01"), d("2100-01-01"))
		require.NoError(t, err)
		assert.Equal(t, 146097, r.Nights())
	})
}

func TestOverlaps(t *testing.T) {
	testCases := []struct {
		name   string
		a, b   [2]string
		expect bool
	}{
		{name: "checkout day is free", a: [2]string{"2024-06-01", "2024-06-05"}, b: [2]string{"2024-06-05", "2024-06-08"}, expect: false},
		{name: "one shared night", a: [2]string{"2024-06-01", "2024-06-05"}, b: [2]string{"2024-06-04", "2024-06-08"}, expect: true},
		{name: "contained", a: [2]string{"2024-06-01", "2024-06-10"}, b: [2]string{"2024-06-03", "2024-06-04"}, expect: true},
		{name: "identical", a: [2]string{"2024-06-01", "2024-06-02"}, b: [2]string{"2024-06-01", "2024-06-02"}, expect: true},
		{name: "disjoint before", a: [2]string{"2024-05-01", "2024-05-03"}, b: [2]string{"2024-06-01", "2024-06-02"}, expect: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := dates.Overlaps(d(tc.a[0]), d(tc.a[1]), d(tc.b[0]), d(tc.b[1]))
			assert.Equal(t, tc.expect, got)
			// symmetric
			assert.Equal(t, tc.expect, dates.Overlaps(d(tc.b[0]), d(tc.b[1]), d(tc.a[0]), d(tc.a[1])))
		})
	}
}

func TestOccupiesDay(t *testing.T) {
	in, out := d("2024-07-10"), d("2024-07-13")

	assert.False(t, dates.OccupiesDay(in, out, d("2024-07-09")))
	assert.True(t, dates.OccupiesDay(in, out, d("2024-07-10")))
	assert.True(t, dates.OccupiesDay(in, out, d("2024-07-12")))
	assert.False(t, dates.OccupiesDay(in, out, d("2024-07-13")))
}

func TestRange(t *testing.T) {
	t.Run("zero-night stays are rejected", func(t *testing.T) {
		_, err := dates.NewRange(d("2024-07-10"), d("2024-07-10"))
		assert.ErrorIs(t, err, dates.ErrEmptyRange)
	})

	t.Run("inverted stays are rejected", func(t *testing.T) {
		_, err := dates.ParseRange("2024-07-10", "2024-07-09")
		assert.ErrorIs(t, err, dates.ErrEmptyRange)
	})

	t.Run("nights across a month boundary", func(t *testing.T) {
		r, err := dates.ParseRange("2024-01-30", "2024-02-02")
		require.NoError(t, err)
		assert.Equal(t, 3, r.Nights())
	})

	t.Run("clip to window", func(t *testing.T) {
		r, _ := dates.ParseRange("2024-09-28", "2024-10-03")
		w, _ := dates.ParseRange("2024-10-01", "2024-11-01")

		clipped, ok := r.Clip(w)
		require.True(t, ok)
		assert.Equal(t, "2024-10-01", clipped.Start.String())
		assert.Equal(t, "2024-10-03", clipped.End.String())

		outside, _ := dates.ParseRange("2024-11-01", "2024-11-02")
		_, ok = outside.Clip(w)
		assert.False(t, ok)
	})
}

func TestWindow(t *testing.T) {
	w, err := dates.ParseWindow("2024-09-01", "2024-09-06")
	require.NoError(t, err)

	assert.Equal(t, 6, w.DayCount())
	assert.Len(t, w.Days(), 6)
	assert.Equal(t, "2024-09-07", w.HalfOpen().End.String())

	single, err := dates.ParseWindow("2024-02-29", "2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, 1, single.DayCount())

	_, err = dates.ParseWindow("2024-09-06", "2024-09-01")
	assert.ErrorIs(t, err, dates.ErrInvertWindow)
}

func TestDateJSON(t *testing.T) {
	var payload struct {
		Day dates.Date `json:"day"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"day":"2024-06-01"}`), &payload))
	assert.Equal(t, "2024-06-01", payload.Day.String())

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"day":"2024-06-01"}`, string(out))
}
