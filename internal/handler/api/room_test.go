//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"hostel-admin/internal/domain/room"
	"hostel-admin/internal/handler/api"
	reqdto "hostel-admin/internal/handler/dto/request"
	resdto "hostel-admin/internal/handler/dto/response"
	"hostel-admin/internal/handler/middleware"
	"hostel-admin/internal/pkg/errs"
	"hostel-admin/internal/usecase/commands"
	"hostel-admin/internal/usecase/queries"
	"hostel-admin/tests/common/builder"
	"hostel-admin/tests/common/httptest"
	"hostel-admin/tests/common/testutil"
	commandsmock "hostel-admin/tests/mock/commands"
	queriesmock "hostel-admin/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RoomHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRoomCommands
	mockQueries  *queriesmock.MockRoomQueries
}

func TestRoomHandlerSuite(t *testing.T) {
	suite.Run(t, new(RoomHandlerTestSuite))
}

func (s *RoomHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRoomCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRoomQueries(s.mockCtrl)
	h := api.NewRoomHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/rooms", h.List)
	s.router.GET("/rooms/:id", h.Get)
	s.router.POST("/rooms", h.Create)
	s.router.PATCH("/rooms/:id/status", h.ChangeStatus)
	s.router.DELETE("/rooms/:id", h.Archive)
}

func (s *RoomHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *RoomHandlerTestSuite) TestList() {
	s.Run("success: forwards filters", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), queries.RoomFilter{RoomType: "dorm", IncludeArchived: true}).
			Return([]*queries.RoomView{{ID: uuid.New(), Code: "D1", RoomType: "dorm", Status: "available"}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms?room_type=dorm&include_archived=true", nil, "")

		var response []resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal("D1", response[0].Code)
	})
}

func (s *RoomHandlerTestSuite) TestGet() {
	id := uuid.New()

	s.Run("success: every view field reaches the response", func() {
		created := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
		v := &queries.RoomView{
			ID: id, Code: "P2", Name: "Private twin", RoomType: "private",
			CapacityAdults: 2, CapacityChildren: 1, Status: "available",
			BaseRate: decimal.RequireFromString("72.50"), Currency: "PEN", SortOrder: 4,
			CreatedAt: created, UpdatedAt: created.Add(time.Hour),
		}
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(v, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/"+id.String(), nil, "")

		var response resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		want := resdto.RoomResponse(*v)
		decimalEqual := cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })
		if diff := cmp.Diff(want, response, decimalEqual, cmpopts.EquateApproxTime(0)); diff != "" {
			s.Failf("room response mismatch", "(-want +got):\n%s", diff)
		}
	})

	s.Run("error: 500 when the view cannot be mapped", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})

	s.Run("error: 404 for unknown room", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(nil, errs.Mark(queries.ErrRoomNotFound, errs.ErrNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found")
	})
}

func (s *RoomHandlerTestSuite) TestCreate() {
	b := builder.NewRoomBuilder()
	reqBody := b.BuildRequest()

	s.Run("success: returns 201", func() {
		newID := uuid.New()
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req reqdto.RoomRequest) (uuid.UUID, error) {
				s.Equal(reqBody.Code, req.Code)
				s.True(reqBody.BaseRate.Equal(req.BaseRate), "base rate %s", req.BaseRate)
				return newID, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rooms", reqBody, "")

		var response resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(newID.String(), response.ID)
	})

	s.Run("error: 400 Bad Request on binding errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing code", mutate: testutil.Field("code", nil)},
			{name: "zero adult capacity", mutate: testutil.Field("capacity_adults", 0)},
			{name: "negative children", mutate: testutil.Field("capacity_children", -1)},
			{name: "currency not ISO length", mutate: testutil.Field("currency", "SOLES")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rooms", body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 409 when the code is taken", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, errs.Mark(commands.ErrRoomCodeTaken, errs.ErrConflict))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rooms", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "a room with this code already exists")
	})

	s.Run("error: 422 on a negative rate", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, errs.Mark(room.ErrNegativeRate, errs.ErrValidation))

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("base_rate", "-1"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rooms", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})
}

func (s *RoomHandlerTestSuite) TestStatusAndArchive() {
	id := uuid.New()

	s.Run("status: 204 on success", func() {
		req := reqdto.RoomStatusRequest{Status: string(room.StatusMaintenance)}
		s.mockCommands.EXPECT().ChangeStatus(gomock.Any(), id, req).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/rooms/"+id.String()+"/status", req, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("archive: 204 on success", func() {
		s.mockCommands.EXPECT().Archive(gomock.Any(), id).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/rooms/"+id.String(), nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})
}
