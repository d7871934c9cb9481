package api

import (
	"net/http"

	reqdto "hostel-admin/internal/handler/dto/request"
	resdto "hostel-admin/internal/handler/dto/response"
	"hostel-admin/internal/usecase/commands"
	"hostel-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	cmds  commands.PaymentCommands
	q     queries.PaymentQueries
	today TodayFunc
}

func NewPaymentHandler(cmds commands.PaymentCommands, q queries.PaymentQueries, today TodayFunc) *PaymentHandler {
	return &PaymentHandler{cmds: cmds, q: q, today: today}
}

// @Summary List payments
// @Description Payments received on the inclusive range of hostel-local days, newest first
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param from query string false "First day (YYYY-MM-DD), defaults to today"
// @Param to query string false "Last day (YYYY-MM-DD)"
// @Param method query string false "Payment method"
// @Param company_id query string false "Company ID"
// @Param reservation_id query string false "Reservation ID"
// @Success 200 {object} resdto.PaymentListResponse
// @Failure 400 {object} httperr.Response
// @Router /payments [get]
func (h *PaymentHandler) List(c *gin.Context) {
	window, ok := queryWindow(c, h.today())
	if !ok {
		return
	}
	companyID, ok := optionalUUID(c, "company_id")
	if !ok {
		return
	}
	reservationID, ok := optionalUUID(c, "reservation_id")
	if !ok {
		return
	}

	items, err := h.q.List(c.Request.Context(), queries.PaymentFilter{
		Window:        window,
		Method:        c.Query("method"),
		CompanyID:     companyID,
		ReservationID: reservationID,
	})
	if err != nil {
		abortWithUseCaseError(c, err, "Payment not found")
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentList(window, items))
}

// @Summary Record payment
// @Description A payment tied to a reservation inherits its guest and company
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PaymentRequest true "Payment"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /payments [post]
func (h *PaymentHandler) Record(c *gin.Context) {
	var req reqdto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	id, err := h.cmds.Record(c.Request.Context(), req)
	if err != nil {
		abortWithUseCaseError(c, err, "Reservation not found")
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id.String()})
}

// @Summary Delete payment
// @Tags payments
// @Security BearerAuth
// @Param id path string true "Payment ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /payments/{id} [delete]
func (h *PaymentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		abortWithUseCaseError(c, err, "Payment not found")
		return
	}
	c.Status(http.StatusNoContent)
}
