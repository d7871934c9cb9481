package api

import (
	"net/http"

	"hostel-admin/internal/domain/report"
	resdto "hostel-admin/internal/handler/dto/response"
	"hostel-admin/internal/handler/httperr"
	"hostel-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CalendarHandler struct {
	q     queries.CalendarQueries
	today TodayFunc
}

func NewCalendarHandler(q queries.CalendarQueries, today TodayFunc) *CalendarHandler {
	return &CalendarHandler{q: q, today: today}
}

// @Summary Reservation calendar
// @Description Rooms by days, with each stay clipped to the visible window
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Param view query string false "day, week or month" default(week)
// @Param date query string false "Anchor day (YYYY-MM-DD), defaults to today"
// @Success 200 {object} resdto.CalendarResponse
// @Failure 400 {object} httperr.Response
// @Router /calendar [get]
func (h *CalendarHandler) Get(c *gin.Context) {
	view, err := report.ParseView(c.Query("view"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}
	anchor, ok := queryDate(c, "date", h.today())
	if !ok {
		return
	}

	cal, err := h.q.Calendar(c.Request.Context(), view, anchor)
	if err != nil {
		abortWithUseCaseError(c, err, "Room not found")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCalendar(cal))
}
