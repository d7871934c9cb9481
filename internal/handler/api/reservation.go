package api

import (
	"net/http"
	"strings"

	"hostel-admin/internal/domain/reservation"
	reqdto "hostel-admin/internal/handler/dto/request"
	resdto "hostel-admin/internal/handler/dto/response"
	"hostel-admin/internal/handler/httperr"
	"hostel-admin/internal/pkg/dates"
	"hostel-admin/internal/usecase/commands"
	"hostel-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	cmds     commands.ReservationCommands
	vouchers commands.VoucherCommands
	q        queries.ReservationQueries
	pdf      queries.VoucherQueries
	today    TodayFunc
}

func NewReservationHandler(
	cmds commands.ReservationCommands,
	vouchers commands.VoucherCommands,
	q queries.ReservationQueries,
	pdf queries.VoucherQueries,
	today TodayFunc,
) *ReservationHandler {
	return &ReservationHandler{
		cmds:     cmds,
		vouchers: vouchers,
		q:        q,
		pdf:      pdf,
		today:    today,
	}
}

// @Summary List reservations
// @Description Reservations whose stay overlaps the inclusive window
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param from query string false "First day (YYYY-MM-DD), defaults to today"
// @Param to query string false "Last day (YYYY-MM-DD)"
// @Param room_id query string false "Room ID"
// @Param company_id query string false "Company ID"
// @Param status query string false "Comma separated statuses"
// @Success 200 {object} resdto.ReservationListResponse
// @Failure 400 {object} httperr.Response
// @Router /reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	window, ok := queryWindow(c, h.today())
	if !ok {
		return
	}
	roomID, ok := optionalUUID(c, "room_id")
	if !ok {
		return
	}
	companyID, ok := optionalUUID(c, "company_id")
	if !ok {
		return
	}
	statuses, ok := queryStatuses(c)
	if !ok {
		return
	}

	items, err := h.q.List(c.Request.Context(), queries.ReservationFilter{
		Window:    window,
		RoomID:    roomID,
		CompanyID: companyID,
		Status:    statuses,
	})
	if err != nil {
		abortWithUseCaseError(c, err, "Reservation not found")
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationList(items))
}

func queryStatuses(c *gin.Context) ([]reservation.Status, bool) {
	raw := c.Query("status")
	if raw == "" {
		return nil, true
	}
	var out []reservation.Status
	for _, part := range strings.Split(raw, ",") {
		s, err := reservation.ParseStatus(strings.TrimSpace(part))
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} queries.ReservationView
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	v, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err, "Reservation not found")
		return
	}
	c.JSON(http.StatusOK, v)
}

// @Summary Check room availability
// @Description Reports whether the room is free for [check_in, check_out)
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param room_id query string true "Room ID"
// @Param check_in query string true "Arrival date (YYYY-MM-DD)"
// @Param check_out query string true "Departure date (YYYY-MM-DD)"
// @Param exclude_id query string false "Reservation to ignore, for edits"
// @Success 200 {object} queries.AvailabilityView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /availability [get]
func (h *ReservationHandler) Availability(c *gin.Context) {
	roomID, ok := optionalUUID(c, "room_id")
	if !ok {
		return
	}
	if roomID == nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errMissingParam, "room_id is required", nil)
		return
	}
	stay, err := dates.ParseRange(c.Query("check_in"), c.Query("check_out"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}
	excludeID, ok := optionalUUID(c, "exclude_id")
	if !ok {
		return
	}

	view, err := h.q.CheckAvailability(c.Request.Context(), *roomID, stay, excludeID)
	if err != nil {
		abortWithUseCaseError(c, err, "Room not found")
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Create reservation
// @Description Rejected with 409 when the room is taken for any night of the stay
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ReservationRequest true "Reservation"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	var req reqdto.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), req)
	if err != nil {
		abortWithUseCaseError(c, err, "Reservation not found")
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id.String()})
}

// @Summary Update reservation
// @Tags reservations
// @Accept json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.ReservationRequest true "Reservation"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations/{id} [put]
func (h *ReservationHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	if err := h.cmds.Update(c.Request.Context(), id, req); err != nil {
		abortWithUseCaseError(c, err, "Reservation not found")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Change reservation status
// @Tags reservations
// @Accept json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.ReservationStatusRequest true "Status"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations/{id}/status [patch]
func (h *ReservationHandler) ChangeStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.ReservationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	if err := h.cmds.ChangeStatus(c.Request.Context(), id, req); err != nil {
		abortWithUseCaseError(c, err, "Reservation not found")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete reservation
// @Tags reservations
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		abortWithUseCaseError(c, err, "Reservation not found")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Download voucher
// @Tags reservations
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {file} file
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id}/voucher [get]
func (h *ReservationHandler) Voucher(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	pdf, filename, err := h.pdf.RenderPDF(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err, "Reservation not found")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// @Summary Email voucher
// @Description Sends the voucher to the given address or to the guest's email
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.SendVoucherRequest false "Recipient override"
// @Success 200 {object} resdto.VoucherSentResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /reservations/{id}/voucher/send [post]
func (h *ReservationHandler) SendVoucher(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.SendVoucherRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithBindError(c, err)
			return
		}
	}
	sentTo, err := h.vouchers.Send(c.Request.Context(), id, req)
	if err != nil {
		abortWithUseCaseError(c, err, "Reservation not found")
		return
	}
	c.JSON(http.StatusOK, resdto.VoucherSentResponse{ReservationID: id.String(), SentTo: sentTo})
}
