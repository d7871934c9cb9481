//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	domres "hostel-admin/internal/domain/reservation"
	"hostel-admin/internal/handler/api"
	reqdto "hostel-admin/internal/handler/dto/request"
	resdto "hostel-admin/internal/handler/dto/response"
	"hostel-admin/internal/handler/middleware"
	"hostel-admin/internal/pkg/dates"
	"hostel-admin/internal/pkg/errs"
	"hostel-admin/internal/usecase/commands"
	"hostel-admin/internal/usecase/queries"
	"hostel-admin/tests/common/builder"
	"hostel-admin/tests/common/httptest"
	"hostel-admin/tests/common/testutil"
	commandsmock "hostel-admin/tests/mock/commands"
	queriesmock "hostel-admin/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockVouchers *commandsmock.MockVoucherCommands
	mockQueries  *queriesmock.MockReservationQueries
	mockPDF      *queriesmock.MockVoucherQueries
	today        dates.Date
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockVouchers = commandsmock.NewMockVoucherCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.mockPDF = queriesmock.NewMockVoucherQueries(s.mockCtrl)
	s.today = dates.MustParse("2024-07-01")

	h := api.NewReservationHandler(s.mockCommands, s.mockVouchers, s.mockQueries, s.mockPDF,
		func() dates.Date { return s.today })

	s.router.GET("/reservations", h.List)
	s.router.GET("/reservations/:id", h.Get)
	s.router.POST("/reservations", h.Create)
	s.router.PUT("/reservations/:id", h.Update)
	s.router.PATCH("/reservations/:id/status", h.ChangeStatus)
	s.router.DELETE("/reservations/:id", h.Delete)
	s.router.GET("/reservations/:id/voucher", h.Voucher)
	s.router.POST("/reservations/:id/voucher/send", h.SendVoucher)
	s.router.GET("/availability", h.Availability)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *ReservationHandlerTestSuite) conflictErr(holder *builder.ReservationBuilder) error {
	cerr := domres.CheckAvailability([]domres.Occupant{holder.BuildOccupant()}, holder.Stay(), nil, nil)
	s.Require().Error(cerr)
	return errs.Categorize(cerr, commands.ErrReservationConflict, errs.ErrConflict)
}

func (s *ReservationHandlerTestSuite) TestList() {
	item := builder.NewReservationBuilder().BuildListItem()

	s.Run("success: window defaults to thirty days from today", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), queries.ReservationFilter{
			Window: dates.Window{From: s.today, To: s.today.AddDays(29)},
		}).Return([]*queries.ReservationListItem{item}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, "")

		var response resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(1, response.Count)
		s.Equal(item.Code, response.Items[0].Code)
	})

	s.Run("success: passes filters through", func() {
		roomID := uuid.New()
		s.mockQueries.EXPECT().List(gomock.Any(), queries.ReservationFilter{
			Window: dates.Window{From: dates.MustParse("2024-08-01"), To: dates.MustParse("2024-08-31")},
			RoomID: &roomID,
			Status: []domres.Status{domres.StatusConfirmed, domres.StatusCheckedIn},
		}).Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/reservations?from=2024-08-01&to=2024-08-31&room_id="+roomID.String()+"&status=confirmed,checked_in", nil, "")

		var response resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(0, response.Count)
		s.NotNil(response.Items)
	})

	s.Run("error: 400 on bad query parameters", func() {
		cases := map[string]string{
			"unknown status":  "/reservations?status=lost",
			"window reversed": "/reservations?from=2024-08-10&to=2024-08-01",
			"window too long": "/reservations?from=1000-01-01&to=9999-12-31",
			"bad date":        "/reservations?from=2024-13-01",
			"bad room id":     "/reservations?room_id=nope",
		}
		for name, url := range cases {
			s.Run(name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestCreate() {
	b := builder.NewReservationBuilder()
	reqBody := b.BuildRequest()

	s.Run("success: returns 201 with the new id", func() {
		newID := uuid.New()
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody).Return(newID, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", reqBody, "")

		var response resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(newID.String(), response.ID)
	})

	s.Run("error: 400 Bad Request on binding errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing room", mutate: testutil.Field("room_id", nil)},
			{name: "malformed check_in", mutate: testutil.Field("check_in", "10/07/2024")},
			{name: "missing check_out", mutate: testutil.Field("check_out", nil)},
			{name: "zero adults", mutate: testutil.Field("adults", 0)},
			{name: "terminal status on create", mutate: testutil.Field("status", "checked_out")},
			{name: "invoice status outside enum", mutate: testutil.Field("invoice_status", "paid")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 409 names the reservation holding the room", func() {
		holder := builder.NewReservationBuilder().With(func(h *builder.ReservationBuilder) {
			h.Code = "R-000042"
			h.RoomID = b.RoomID
		})
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody).Return(uuid.Nil, s.conflictErr(holder))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "R-000042")
		var detail queries.ConflictView
		httptest.ErrorDetail(s.T(), rec, &detail)
		s.Equal(holder.ID, detail.ReservationID)
		s.Equal("R-000042", detail.Code)
		s.Equal(holder.CheckIn, detail.CheckIn.String())
		s.Equal(holder.CheckOut, detail.CheckOut.String())
	})

	s.Run("error: 422 on domain validation", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody).
			Return(uuid.Nil, errs.Mark(errors.New("party exceeds room capacity"), errs.ErrValidation))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "party exceeds room capacity")
	})

	s.Run("error: 500 hides store failures", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody).Return(uuid.Nil, errors.New("connection reset"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
		s.NotContains(rec.Body.String(), "connection reset")
	})
}

func (s *ReservationHandlerTestSuite) TestUpdateAndStatus() {
	b := builder.NewReservationBuilder()
	url := "/reservations/" + b.ID.String()

	s.Run("update: 204 on success", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), b.ID, b.BuildRequest()).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, b.BuildRequest(), "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("update: 404 when the reservation is gone", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), b.ID, gomock.Any()).
			Return(errs.Categorize(errors.New("no rows"), queries.ErrReservationNotFound, errs.ErrNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, b.BuildRequest(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})

	s.Run("status: illegal transition is 422", func() {
		req := reqdto.ReservationStatusRequest{Status: "pending"}
		s.mockCommands.EXPECT().ChangeStatus(gomock.Any(), b.ID, req).
			Return(errs.Mark(domres.ErrInvalidTransition, errs.ErrValidation))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url+"/status", req, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})

	s.Run("delete: 204 on success", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), b.ID).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *ReservationHandlerTestSuite) TestAvailability() {
	roomID := uuid.New()
	stay := dates.Range{Start: dates.MustParse("2024-07-10"), End: dates.MustParse("2024-07-12")}
	base := "/availability?room_id=" + roomID.String() + "&check_in=2024-07-10&check_out=2024-07-12"

	s.Run("success: available room", func() {
		s.mockQueries.EXPECT().CheckAvailability(gomock.Any(), roomID, stay, (*uuid.UUID)(nil)).
			Return(&queries.AvailabilityView{RoomID: roomID, CheckIn: stay.Start, CheckOut: stay.End, Nights: 2, Available: true}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base, nil, "")

		var view queries.AvailabilityView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &view)
		s.True(view.Available)
		s.Equal(2, view.Nights)
		s.Nil(view.Conflict)
	})

	s.Run("success: exclude_id is forwarded for edits", func() {
		self := uuid.New()
		s.mockQueries.EXPECT().CheckAvailability(gomock.Any(), roomID, stay, &self).
			Return(&queries.AvailabilityView{RoomID: roomID, Available: true}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"&exclude_id="+self.String(), nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 when inputs are unusable", func() {
		cases := map[string]string{
			"missing room":      "/availability?check_in=2024-07-10&check_out=2024-07-12",
			"zero nights":       "/availability?room_id=" + roomID.String() + "&check_in=2024-07-10&check_out=2024-07-10",
			"reversed stay":     "/availability?room_id=" + roomID.String() + "&check_in=2024-07-12&check_out=2024-07-10",
			"missing check_out": "/availability?room_id=" + roomID.String() + "&check_in=2024-07-10",
		}
		for name, url := range cases {
			s.Run(name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 404 for an unknown room", func() {
		s.mockQueries.EXPECT().CheckAvailability(gomock.Any(), roomID, stay, gomock.Any()).
			Return(nil, errs.Categorize(errors.New("no rows"), queries.ErrRoomNotFound, errs.ErrNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found")
	})
}

func (s *ReservationHandlerTestSuite) TestVoucher() {
	id := uuid.New()
	url := "/reservations/" + id.String() + "/voucher"

	s.Run("download: returns the PDF as an attachment", func() {
		pdf := []byte("%PDF-1.4 test")
		s.mockPDF.EXPECT().RenderPDF(gomock.Any(), id).Return(pdf, "voucher-R-000001.pdf", nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		s.Equal(http.StatusOK, rec.Code)
		httptest.AssertDownload(s.T(), rec, "application/pdf", "voucher-R-000001.pdf")
		s.Equal(pdf, rec.Body.Bytes())
	})

	s.Run("send: without a body goes to the guest", func() {
		s.mockVouchers.EXPECT().Send(gomock.Any(), id, reqdto.SendVoucherRequest{}).Return("ana@example.com", nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url+"/send", nil, "")

		var response resdto.VoucherSentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("ana@example.com", response.SentTo)
		s.Equal(id.String(), response.ReservationID)
	})

	s.Run("send: override recipient", func() {
		req := reqdto.SendVoucherRequest{To: "agency@example.com"}
		s.mockVouchers.EXPECT().Send(gomock.Any(), id, req).Return(req.To, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url+"/send", req, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("send: 400 on a malformed override", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url+"/send",
			map[string]any{"to": "not-an-email"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("send: 502 when delivery fails", func() {
		s.mockVouchers.EXPECT().Send(gomock.Any(), id, gomock.Any()).
			Return("", errs.Mark(errors.New("dial tcp: refused"), commands.ErrVoucherNotSent))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url+"/send", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Voucher could not be rendered or sent")
	})
}
