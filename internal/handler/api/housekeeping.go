package api

import (
	"net/http"

	reqdto "hostel-admin/internal/handler/dto/request"
	resdto "hostel-admin/internal/handler/dto/response"
	"hostel-admin/internal/handler/httperr"
	"hostel-admin/internal/handler/middleware"
	"hostel-admin/internal/pkg/dates"
	"hostel-admin/internal/usecase/commands"
	"hostel-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type HousekeepingHandler struct {
	cmds  commands.HousekeepingCommands
	q     queries.HousekeepingQueries
	today TodayFunc
}

func NewHousekeepingHandler(cmds commands.HousekeepingCommands, q queries.HousekeepingQueries, today TodayFunc) *HousekeepingHandler {
	return &HousekeepingHandler{cmds: cmds, q: q, today: today}
}

// @Summary Housekeeping board
// @Description Every active room with its cleaning status and the day's arrivals and departures
// @Tags housekeeping
// @Produce json
// @Security BearerAuth
// @Param date query string false "Day (YYYY-MM-DD), defaults to today"
// @Success 200 {object} resdto.BoardResponse
// @Failure 400 {object} httperr.Response
// @Router /housekeeping [get]
func (h *HousekeepingHandler) Board(c *gin.Context) {
	day, ok := queryDate(c, "date", h.today())
	if !ok {
		return
	}
	board, err := h.q.Board(c.Request.Context(), day)
	if err != nil {
		abortWithUseCaseError(c, err, "Room not found")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBoard(board))
}

// @Summary Set housekeeping status
// @Description Creates or replaces the entry for one room and day
// @Tags housekeeping
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param room_id path string true "Room ID"
// @Param date path string true "Day (YYYY-MM-DD)"
// @Param request body reqdto.HousekeepingRequest true "Status"
// @Success 200 {object} resdto.EntryResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /housekeeping/{room_id}/{date} [put]
func (h *HousekeepingHandler) Upsert(c *gin.Context) {
	roomID, ok := pathID(c, "room_id")
	if !ok {
		return
	}
	day, err := dates.Parse(c.Param("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date, expected YYYY-MM-DD", nil)
		return
	}
	var req reqdto.HousekeepingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoUserContext, "User not authenticated", nil)
		return
	}

	entry, err := h.cmds.Upsert(c.Request.Context(), roomID, day, req, actorID)
	if err != nil {
		abortWithUseCaseError(c, err, "Room not found")
		return
	}
	c.JSON(http.StatusOK, resdto.FromEntry(entry))
}
