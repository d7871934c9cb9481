package api

import (
	"net/http"

	reqdto "hostel-admin/internal/handler/dto/request"
	resdto "hostel-admin/internal/handler/dto/response"
	"hostel-admin/internal/usecase/commands"
	"hostel-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type GuestHandler struct {
	cmds commands.GuestCommands
	q    queries.GuestQueries
}

func NewGuestHandler(cmds commands.GuestCommands, q queries.GuestQueries) *GuestHandler {
	return &GuestHandler{cmds: cmds, q: q}
}

// @Summary Search guests
// @Description Guests ordered by name, matched on name, document or email
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search term"
// @Param cursor query string false "Pagination cursor"
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} resdto.GuestPageResponse
// @Failure 422 {object} httperr.Response
// @Router /guests [get]
func (h *GuestHandler) Search(c *gin.Context) {
	limit, ok := queryInt(c, "limit")
	if !ok {
		return
	}
	var cursor *queries.Cursor
	if after := c.Query("cursor"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	items, next, err := h.q.Search(c.Request.Context(), c.Query("q"), cursor, limit)
	if err != nil {
		abortWithUseCaseError(c, err, "Guest not found")
		return
	}
	c.JSON(http.StatusOK, resdto.FromGuestPage(items, next))
}

// @Summary Get guest
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Guest ID"
// @Success 200 {object} queries.GuestView
// @Failure 404 {object} httperr.Response
// @Router /guests/{id} [get]
func (h *GuestHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	v, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err, "Guest not found")
		return
	}
	c.JSON(http.StatusOK, v)
}

// @Summary Create guest
// @Tags guests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.GuestRequest true "Guest"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /guests [post]
func (h *GuestHandler) Create(c *gin.Context) {
	var req reqdto.GuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), req)
	if err != nil {
		abortWithUseCaseError(c, err, "Guest not found")
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id.String()})
}

// @Summary Update guest
// @Tags guests
// @Accept json
// @Security BearerAuth
// @Param id path string true "Guest ID"
// @Param request body reqdto.GuestRequest true "Guest"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /guests/{id} [put]
func (h *GuestHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.GuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	if err := h.cmds.Update(c.Request.Context(), id, req); err != nil {
		abortWithUseCaseError(c, err, "Guest not found")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Deactivate guest
// @Tags guests
// @Security BearerAuth
// @Param id path string true "Guest ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /guests/{id} [delete]
func (h *GuestHandler) Deactivate(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Deactivate(c.Request.Context(), id); err != nil {
		abortWithUseCaseError(c, err, "Guest not found")
		return
	}
	c.Status(http.StatusNoContent)
}
