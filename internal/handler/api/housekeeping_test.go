//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"hostel-admin/internal/domain/housekeeping"
	"hostel-admin/internal/handler/api"
	reqdto "hostel-admin/internal/handler/dto/request"
	resdto "hostel-admin/internal/handler/dto/response"
	"hostel-admin/internal/handler/middleware"
	"hostel-admin/internal/pkg/dates"
	"hostel-admin/internal/pkg/errs"
	"hostel-admin/internal/usecase/queries"
	"hostel-admin/tests/common/httptest"
	commandsmock "hostel-admin/tests/mock/commands"
	queriesmock "hostel-admin/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HousekeepingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockHousekeepingCommands
	mockQueries  *queriesmock.MockHousekeepingQueries
	actorID      uuid.UUID
	today        dates.Date
}

func TestHousekeepingHandlerSuite(t *testing.T) {
	suite.Run(t, new(HousekeepingHandlerTestSuite))
}

func (s *HousekeepingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockHousekeepingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockHousekeepingQueries(s.mockCtrl)
	s.actorID = uuid.New()
	s.today = dates.MustParse("2024-07-10")

	h := api.NewHousekeepingHandler(s.mockCommands, s.mockQueries, func() dates.Date { return s.today })

	s.router.GET("/housekeeping", h.Board)
	s.router.PUT("/housekeeping/:room_id/:date", func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.actorID)
		}
		h.Upsert(c)
	})
}

func (s *HousekeepingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *HousekeepingHandlerTestSuite) TestBoard() {
	ref := housekeeping.RoomRef{ID: uuid.New(), Code: "101", Name: "Matrimonial", RoomType: "matrimonial"}

	s.Run("success: defaults to today", func() {
		s.mockQueries.EXPECT().Board(gomock.Any(), s.today).Return(&queries.HousekeepingBoard{
			Date: s.today,
			Rows: []housekeeping.BoardRow{{Room: ref, Status: housekeeping.StatusDirty, DepartsToday: true}},
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/housekeeping", nil, "")

		var response resdto.BoardResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("2024-07-10", response.Date.String())
		s.Require().Len(response.Rows, 1)
		s.Equal("dirty", response.Rows[0].Status)
		s.True(response.Rows[0].DepartsToday)
		s.False(response.Rows[0].Recorded)
		s.Nil(response.Rows[0].UpdatedAt)
	})

	s.Run("success: explicit date", func() {
		day := dates.MustParse("2024-07-12")
		s.mockQueries.EXPECT().Board(gomock.Any(), day).Return(&queries.HousekeepingBoard{Date: day}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/housekeeping?date=2024-07-12", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 on malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/housekeeping?date=12-07-2024", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *HousekeepingHandlerTestSuite) TestUpsert() {
	roomID := uuid.New()
	day := dates.MustParse("2024-07-10")
	url := "/housekeeping/" + roomID.String() + "/2024-07-10"
	req := reqdto.HousekeepingRequest{Status: "cleaning", Notes: "towels"}

	s.Run("success: records the acting user", func() {
		actor := s.actorID
		entry := housekeeping.ReconstructEntry(uuid.New(), housekeeping.Key{RoomID: roomID, Date: day},
			housekeeping.StatusCleaning, "towels", &actor, time.Date(2024, 7, 10, 9, 0, 0, 0, time.UTC))
		s.mockCommands.EXPECT().Upsert(gomock.Any(), roomID, day, req, s.actorID).Return(entry, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, req, "token")

		var response resdto.EntryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("cleaning", response.Status)
		s.Equal(roomID, response.RoomID)
		s.Require().NotNil(response.UpdatedBy)
		s.Equal(s.actorID, *response.UpdatedBy)
	})

	s.Run("error: 400 on status outside the board set", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			reqdto.HousekeepingRequest{Status: "sparkling"}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 on malformed path date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut,
			"/housekeeping/"+roomID.String()+"/tomorrow", req, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date")
	})

	s.Run("error: 401 without an authenticated user", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, req, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	s.Run("error: 404 for unknown room", func() {
		s.mockCommands.EXPECT().Upsert(gomock.Any(), roomID, day, req, s.actorID).
			Return(nil, errs.Mark(errors.New("room not found"), errs.ErrNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, req, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found")
	})
}
