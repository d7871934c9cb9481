package api

import (
	"net/http"

	"hostel-admin/internal/domain/report"
	resdto "hostel-admin/internal/handler/dto/response"
	"hostel-admin/internal/pkg/config"
	"hostel-admin/internal/pkg/dates"
	"hostel-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportHandler struct {
	q        queries.ReportQueries
	currency string
	today    TodayFunc
}

func NewReportHandler(q queries.ReportQueries, hostel config.HostelConfig, today TodayFunc) *ReportHandler {
	return &ReportHandler{q: q, currency: hostel.Currency, today: today}
}

type dashboardParams struct {
	window dates.Window
	filter report.Filter
	top    int
}

func (h *ReportHandler) params(c *gin.Context) (dashboardParams, bool) {
	window, ok := queryWindow(c, h.today())
	if !ok {
		return dashboardParams{}, false
	}
	companyID, ok := optionalUUID(c, "company_id")
	if !ok {
		return dashboardParams{}, false
	}
	top, ok := queryInt(c, "top")
	if !ok {
		return dashboardParams{}, false
	}
	return dashboardParams{
		window: window,
		filter: report.Filter{
			RoomType:   c.Query("room_type"),
			RoomStatus: c.Query("room_status"),
			CompanyID:  companyID,
		},
		top: top,
	}, true
}

// @Summary Dashboard
// @Description Occupancy, income and company figures for the inclusive window
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param from query string false "First day (YYYY-MM-DD), defaults to today"
// @Param to query string false "Last day (YYYY-MM-DD)"
// @Param room_type query string false "Room type"
// @Param room_status query string false "Room status"
// @Param company_id query string false "Company ID"
// @Param top query int false "Companies in the ranking" default(5)
// @Success 200 {object} resdto.DashboardResponse
// @Failure 400 {object} httperr.Response
// @Router /reports/dashboard [get]
func (h *ReportHandler) Dashboard(c *gin.Context) {
	p, ok := h.params(c)
	if !ok {
		return
	}
	d, err := h.q.Dashboard(c.Request.Context(), p.window, p.filter, p.top)
	if err != nil {
		abortWithUseCaseError(c, err, "Company not found")
		return
	}
	c.JSON(http.StatusOK, resdto.FromDashboard(d, h.currency))
}

// @Summary Export dashboard
// @Description The dashboard as an Excel workbook, one sheet per section
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param from query string false "First day (YYYY-MM-DD), defaults to today"
// @Param to query string false "Last day (YYYY-MM-DD)"
// @Param room_type query string false "Room type"
// @Param room_status query string false "Room status"
// @Param company_id query string false "Company ID"
// @Param top query int false "Companies in the ranking" default(5)
// @Success 200 {file} file
// @Failure 400 {object} httperr.Response
// @Router /reports/dashboard.xlsx [get]
func (h *ReportHandler) Export(c *gin.Context) {
	p, ok := h.params(c)
	if !ok {
		return
	}
	data, err := h.q.ExportDashboard(c.Request.Context(), p.window, p.filter, p.top)
	if err != nil {
		abortWithUseCaseError(c, err, "Company not found")
		return
	}
	filename := "dashboard-" + p.window.From.String() + "-" + p.window.To.String() + ".xlsx"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}
