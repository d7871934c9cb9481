package api

import (
	"fmt"
	"net/http"
	"strconv"

	"hostel-admin/internal/handler/httperr"
	"hostel-admin/internal/pkg/clock"
	"hostel-admin/internal/pkg/config"
	"hostel-admin/internal/pkg/dates"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// defaultWindowDays is the span listed when a request names no end date.
	defaultWindowDays = 30
	// maxWindowDays is the longest from/to span any listing or report accepts.
	maxWindowDays = 366
)

// TodayFunc yields the current date at the hostel.
type TodayFunc func() dates.Date

func NewHostelToday(clk clock.Clock, hostel config.HostelConfig) TodayFunc {
	loc := hostel.Location()
	return func() dates.Date { return clock.Today(clk, loc) }
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}

// optionalUUID reads a query parameter; absent means nil, malformed aborts.
func optionalUUID(c *gin.Context, name string) (*uuid.UUID, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return nil, false
	}
	return &id, true
}

func queryDate(c *gin.Context, name string, fallback dates.Date) (dates.Date, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}
	d, err := dates.Parse(raw)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name+", expected YYYY-MM-DD", nil)
		return dates.Date{}, false
	}
	return d, true
}

// queryWindow reads the inclusive from/to pair. from defaults to today and to to the
// end of a defaultWindowDays span starting at from.
func queryWindow(c *gin.Context, today dates.Date) (dates.Window, bool) {
	from, ok := queryDate(c, "from", today)
	if !ok {
		return dates.Window{}, false
	}
	to, ok := queryDate(c, "to", from.AddDays(defaultWindowDays-1))
	if !ok {
		return dates.Window{}, false
	}
	w, err := dates.NewWindow(from, to)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return dates.Window{}, false
	}
	if w.DayCount() > maxWindowDays {
		httperr.AbortWithError(c, http.StatusBadRequest, errWindowTooLong,
			fmt.Sprintf("Window too long, at most %d days", maxWindowDays), nil)
		return dates.Window{}, false
	}
	return w, true
}

func queryInt(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidNumber, "Invalid "+name, nil)
		return 0, false
	}
	return n, true
}

func queryBool(c *gin.Context, name string) bool {
	v, _ := strconv.ParseBool(c.Query(name))
	return v
}
