//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"hostel-admin/internal/domain/report"
	"hostel-admin/internal/handler/api"
	"hostel-admin/internal/pkg/config"
	"hostel-admin/internal/pkg/dates"
	"hostel-admin/tests/common/httptest"
	queriesmock "hostel-admin/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReportHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockReportQueries
}

func TestReportHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReportHandlerTestSuite))
}

func (s *ReportHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockReportQueries(s.mockCtrl)
	today := dates.MustParse("2024-07-01")
	h := api.NewReportHandler(s.mockQueries, config.NewTestConfig().Hostel, func() dates.Date { return today })

	s.router.GET("/reports/dashboard", h.Dashboard)
	s.router.GET("/reports/dashboard.xlsx", h.Export)
}

func (s *ReportHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *ReportHandlerTestSuite) TestExport() {
	window := dates.Window{From: dates.MustParse("2024-07-01"), To: dates.MustParse("2024-07-07")}

	s.Run("success: workbook download named after the window", func() {
		companyID := uuid.New()
		workbook := []byte("PK\x03\x04")
		s.mockQueries.EXPECT().
			ExportDashboard(gomock.Any(), window, report.Filter{RoomType: "dorm", CompanyID: &companyID}, 3).
			Return(workbook, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/reports/dashboard.xlsx?from=2024-07-01&to=2024-07-07&room_type=dorm&top=3&company_id="+companyID.String(), nil, "")

		s.Equal(http.StatusOK, rec.Code)
		httptest.AssertDownload(s.T(), rec,
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "dashboard-2024-07-01-2024-07-07.xlsx")
		s.Equal(workbook, rec.Body.Bytes())
	})

	s.Run("error: 400 on negative top", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reports/dashboard.xlsx?top=-2", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid top")
	})
}

func (s *ReportHandlerTestSuite) TestDashboard() {
	s.Run("success: default window is thirty days", func() {
		window := dates.Window{From: dates.MustParse("2024-07-01"), To: dates.MustParse("2024-07-30")}
		s.mockQueries.EXPECT().Dashboard(gomock.Any(), window, report.Filter{}, 0).Return(&report.Dashboard{Window: window}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reports/dashboard", nil, "")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	})

	s.Run("success: a full leap year is accepted", func() {
		window := dates.Window{From: dates.MustParse("2024-01-01"), To: dates.MustParse("2024-12-31")}
		s.mockQueries.EXPECT().Dashboard(gomock.Any(), window, report.Filter{}, 0).Return(&report.Dashboard{Window: window}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reports/dashboard?from=2024-01-01&to=2024-12-31", nil, "")
		s.Equal(http.StatusOK, rec.Code, rec.Body.String())
	})

	s.Run("error: 400 when the window is too long", func() {
		for _, url := range []string{
			"/reports/dashboard?from=2024-01-01&to=2025-01-01",
			"/reports/dashboard?from=1000-01-01&to=9999-12-31",
			"/reports/dashboard.xlsx?from=1000-01-01&to=9999-12-31",
		} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Window too long, at most 366 days")
		}
	})
}
