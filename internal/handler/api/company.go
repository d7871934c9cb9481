package api

import (
	"net/http"

	reqdto "hostel-admin/internal/handler/dto/request"
	resdto "hostel-admin/internal/handler/dto/response"
	"hostel-admin/internal/usecase/commands"
	"hostel-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	cmds commands.CompanyCommands
	q    queries.CompanyQueries
}

func NewCompanyHandler(cmds commands.CompanyCommands, q queries.CompanyQueries) *CompanyHandler {
	return &CompanyHandler{cmds: cmds, q: q}
}

// @Summary List companies
// @Tags companies
// @Produce json
// @Security BearerAuth
// @Param q query string false "Name filter"
// @Param active query bool false "Only active companies"
// @Success 200 {array} queries.CompanyView
// @Router /companies [get]
func (h *CompanyHandler) List(c *gin.Context) {
	items, err := h.q.List(c.Request.Context(), c.Query("q"), queryBool(c, "active"))
	if err != nil {
		abortWithUseCaseError(c, err, "Company not found")
		return
	}
	if items == nil {
		items = []*queries.CompanyView{}
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Get company
// @Tags companies
// @Produce json
// @Security BearerAuth
// @Param id path string true "Company ID"
// @Success 200 {object} queries.CompanyView
// @Failure 404 {object} httperr.Response
// @Router /companies/{id} [get]
func (h *CompanyHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	v, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err, "Company not found")
		return
	}
	c.JSON(http.StatusOK, v)
}

// @Summary Create company
// @Tags companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CompanyRequest true "Company"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /companies [post]
func (h *CompanyHandler) Create(c *gin.Context) {
	var req reqdto.CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), req)
	if err != nil {
		abortWithUseCaseError(c, err, "Company not found")
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id.String()})
}

// @Summary Update company
// @Tags companies
// @Accept json
// @Security BearerAuth
// @Param id path string true "Company ID"
// @Param request body reqdto.CompanyRequest true "Company"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /companies/{id} [put]
func (h *CompanyHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	if err := h.cmds.Update(c.Request.Context(), id, req); err != nil {
		abortWithUseCaseError(c, err, "Company not found")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Deactivate company
// @Tags companies
// @Security BearerAuth
// @Param id path string true "Company ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /companies/{id} [delete]
func (h *CompanyHandler) Deactivate(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Deactivate(c.Request.Context(), id); err != nil {
		abortWithUseCaseError(c, err, "Company not found")
		return
	}
	c.Status(http.StatusNoContent)
}
