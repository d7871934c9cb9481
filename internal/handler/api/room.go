package api

import (
	"net/http"

	reqdto "hostel-admin/internal/handler/dto/request"
	resdto "hostel-admin/internal/handler/dto/response"
	"hostel-admin/internal/usecase/commands"
	"hostel-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	cmds commands.RoomCommands
	q    queries.RoomQueries
}

func NewRoomHandler(cmds commands.RoomCommands, q queries.RoomQueries) *RoomHandler {
	return &RoomHandler{cmds: cmds, q: q}
}

// @Summary List rooms
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param status query string false "Room status"
// @Param room_type query string false "Room type"
// @Param include_archived query bool false "Include archived rooms"
// @Success 200 {array} resdto.RoomResponse
// @Router /rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	rooms, err := h.q.List(c.Request.Context(), queries.RoomFilter{
		Status:          c.Query("status"),
		RoomType:        c.Query("room_type"),
		IncludeArchived: queryBool(c, "include_archived"),
	})
	if err != nil {
		abortWithUseCaseError(c, err, "Room not found")
		return
	}
	res, err := resdto.FromRoomViews(rooms)
	if err != nil {
		abortWithUseCaseError(c, err, "Room not found")
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get room
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	v, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err, "Room not found")
		return
	}
	res, err := resdto.FromRoomView(v)
	if err != nil {
		abortWithUseCaseError(c, err, "Room not found")
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Create room
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RoomRequest true "Room"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /rooms [post]
func (h *RoomHandler) Create(c *gin.Context) {
	var req reqdto.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), req)
	if err != nil {
		abortWithUseCaseError(c, err, "Room not found")
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id.String()})
}

// @Summary Update room
// @Tags rooms
// @Accept json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.RoomRequest true "Room"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /rooms/{id} [put]
func (h *RoomHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	if err := h.cmds.Update(c.Request.Context(), id, req); err != nil {
		abortWithUseCaseError(c, err, "Room not found")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Change room status
// @Tags rooms
// @Accept json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.RoomStatusRequest true "Status"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /rooms/{id}/status [patch]
func (h *RoomHandler) ChangeStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.RoomStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	if err := h.cmds.ChangeStatus(c.Request.Context(), id, req); err != nil {
		abortWithUseCaseError(c, err, "Room not found")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Archive room
// @Description Rooms are never hard-deleted; archived rooms leave reports and boards
// @Tags rooms
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id} [delete]
func (h *RoomHandler) Archive(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Archive(c.Request.Context(), id); err != nil {
		abortWithUseCaseError(c, err, "Room not found")
		return
	}
	c.Status(http.StatusNoContent)
}
