//go:build unit

package commands_test

import (
	"context"
	"testing"

	"hostel-admin/internal/domain/reservation"
	reqdto "hostel-admin/internal/handler/dto/request"
	"hostel-admin/internal/infra"
	"hostel-admin/internal/pkg/dates"
	"hostel-admin/internal/pkg/errs"
	"hostel-admin/internal/usecase/commands"
	"hostel-admin/internal/usecase/shared"
	"hostel-admin/tests/common/builder"
	queriesmock "hostel-admin/tests/mock/queries"
	sharedmock "hostel-admin/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationCommandsTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	uow       *sharedmock.MockUnitOfWork
	tx        *sharedmock.MockTx
	rooms     *sharedmock.MockRoomRepository
	guests    *sharedmock.MockGuestRepository
	companies *sharedmock.MockCompanyRepository
	repo      *sharedmock.MockReservationRepository
	locker    *sharedmock.MockRoomLocker
	occupants *queriesmock.MockReservationReadStore
	cmds      commands.ReservationCommands

	room  *builder.RoomBuilder
	guest *builder.GuestBuilder
}

func TestReservationCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReservationCommandsTestSuite))
}

func (s *ReservationCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.rooms = sharedmock.NewMockRoomRepository(s.ctrl)
	s.guests = sharedmock.NewMockGuestRepository(s.ctrl)
	s.companies = sharedmock.NewMockCompanyRepository(s.ctrl)
	s.repo = sharedmock.NewMockReservationRepository(s.ctrl)
	s.locker = sharedmock.NewMockRoomLocker(s.ctrl)
	s.occupants = queriesmock.NewMockReservationReadStore(s.ctrl)

	s.tx.EXPECT().Rooms().Return(s.rooms).AnyTimes()
	s.tx.EXPECT().Guests().Return(s.guests).AnyTimes()
	s.tx.EXPECT().Companies().Return(s.companies).AnyTimes()
	s.tx.EXPECT().Reservations().Return(s.repo).AnyTimes()

	factory := reservation.NewFactory(reservation.NewNightlyRateCalculator())
	s.cmds = commands.NewReservationCommands(s.uow, s.locker, factory, s.occupants)

	s.room = builder.NewRoomBuilder()
	s.guest = builder.NewGuestBuilder()
}

func (s *ReservationCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ReservationCommandsTestSuite) runSerializable() {
	s.uow.EXPECT().WithinSerializable(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		})
}

func (s *ReservationCommandsTestSuite) lockAndLoad() {
	s.locker.EXPECT().LockRoom(gomock.Any(), s.room.ID).Return(func(context.Context) {}, nil)
	s.repo.EXPECT().LockRoom(gomock.Any(), s.room.ID).Return(nil)
	s.rooms.EXPECT().FindByID(gomock.Any(), s.room.ID).Return(s.room.BuildStored(), nil)
	s.guests.EXPECT().FindByID(gomock.Any(), s.guest.ID).Return(s.guest.BuildStored(), nil)
}

func (s *ReservationCommandsTestSuite) request() *builder.ReservationBuilder {
	return builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.RoomID = s.room.ID
		b.GuestID = s.guest.ID
	})
}

func (s *ReservationCommandsTestSuite) TestCreate() {
	s.Run("success: quotes the nightly rate and assigns a code", func() {
		b := s.request()
		s.runSerializable()
		s.lockAndLoad()
		s.repo.EXPECT().FindOverlapping(gomock.Any(), s.room.ID, b.Stay(), gomock.Any()).Return(nil, nil)
		s.repo.EXPECT().NextCode(gomock.Any()).Return("R-000010", nil)

		var stored *reservation.Reservation
		s.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *reservation.Reservation) error {
				stored = r
				return nil
			})

		id, err := s.cmds.Create(s.T().Context(), b.BuildRequest())

		s.Require().NoError(err)
		s.Require().NotNil(stored)
		s.Equal(stored.ID(), id)
		s.Equal("R-000010", stored.Code())
		s.True(decimal.RequireFromString("450").Equal(stored.TotalPrice()), "5 nights at 90, got %s", stored.TotalPrice())
	})

	s.Run("success: company discount applies to the quote", func() {
		company := builder.NewCompanyBuilder()
		b := s.request().With(func(b *builder.ReservationBuilder) { b.CompanyID = &company.ID })
		s.runSerializable()
		s.lockAndLoad()
		s.companies.EXPECT().FindByID(gomock.Any(), company.ID).Return(company.BuildStored(), nil)
		s.repo.EXPECT().FindOverlapping(gomock.Any(), s.room.ID, b.Stay(), gomock.Any()).Return(nil, nil)
		s.repo.EXPECT().NextCode(gomock.Any()).Return("R-000011", nil)

		var stored *reservation.Reservation
		s.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *reservation.Reservation) error {
				stored = r
				return nil
			})

		_, err := s.cmds.Create(s.T().Context(), b.BuildRequest())

		s.Require().NoError(err)
		s.True(decimal.RequireFromString("405").Equal(stored.TotalPrice()), "got %s", stored.TotalPrice())
		s.Require().NotNil(stored.CompanyID())
		s.Equal(company.ID, *stored.CompanyID())
	})

	s.Run("error: overlapping stay is a conflict naming the holder", func() {
		b := s.request()
		holder := builder.NewReservationBuilder().With(func(h *builder.ReservationBuilder) {
			h.Code = "R-000003"
			h.RoomID = s.room.ID
		}).WithStay("2024-07-14", "2024-07-16")

		s.runSerializable()
		s.lockAndLoad()
		s.repo.EXPECT().FindOverlapping(gomock.Any(), s.room.ID, b.Stay(), gomock.Any()).
			Return([]reservation.Occupant{holder.BuildOccupant()}, nil)

		_, err := s.cmds.Create(s.T().Context(), b.BuildRequest())

		s.Require().Error(err)
		s.True(errs.Is(err, errs.ErrConflict))
		s.True(errs.Is(err, commands.ErrReservationConflict))
		var cerr *reservation.ConflictError
		s.Require().True(errs.As(err, &cerr))
		s.Equal(holder.ID, cerr.Conflict.ID)
		s.Contains(err.Error(), "R-000003")
	})

	s.Run("success: back-to-back stays do not conflict", func() {
		b := s.request()
		s.runSerializable()
		s.lockAndLoad()
		// departs on our check-in day
		departing := builder.NewReservationBuilder().WithStay("2024-07-05", "2024-07-10").BuildOccupant()
		s.repo.EXPECT().FindOverlapping(gomock.Any(), s.room.ID, b.Stay(), gomock.Any()).
			Return([]reservation.Occupant{departing}, nil)
		s.repo.EXPECT().NextCode(gomock.Any()).Return("R-000012", nil)
		s.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		_, err := s.cmds.Create(s.T().Context(), b.BuildRequest())
		s.NoError(err)
	})

	s.Run("error: exclusion constraint is reported as the same conflict", func() {
		b := s.request()
		winner := builder.NewReservationBuilder().With(func(h *builder.ReservationBuilder) {
			h.Code = "R-000099"
			h.RoomID = s.room.ID
		})

		s.runSerializable()
		s.lockAndLoad()
		s.repo.EXPECT().FindOverlapping(gomock.Any(), s.room.ID, b.Stay(), gomock.Any()).Return(nil, nil)
		s.repo.EXPECT().NextCode(gomock.Any()).Return("R-000013", nil)
		s.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("failed to create reservation",
				&pgconn.PgError{Code: "23P01", ConstraintName: "reservations_no_overlap"}))
		s.occupants.EXPECT().Occupants(gomock.Any(), s.room.ID, b.Stay()).
			Return([]reservation.Occupant{winner.BuildOccupant()}, nil)

		_, err := s.cmds.Create(s.T().Context(), b.BuildRequest())

		s.Require().Error(err)
		s.True(errs.Is(err, errs.ErrConflict))
		s.Contains(err.Error(), "R-000099")
	})

	s.Run("error: room busy in the distributed lock", func() {
		b := s.request()
		s.locker.EXPECT().LockRoom(gomock.Any(), s.room.ID).Return(nil, shared.ErrRoomBusy)

		_, err := s.cmds.Create(s.T().Context(), b.BuildRequest())

		s.Require().Error(err)
		s.True(errs.Is(err, errs.ErrConflict))
	})

	s.Run("error: party larger than the room is a validation error", func() {
		b := s.request().WithParty(4, 0)
		s.runSerializable()
		s.lockAndLoad()

		_, err := s.cmds.Create(s.T().Context(), b.BuildRequest())

		s.Require().Error(err)
		s.True(errs.Is(err, errs.ErrValidation))
		s.True(errs.Is(err, reservation.ErrCapacityExceeded))
	})

	s.Run("error: zero-night stay never reaches the store", func() {
		b := s.request().WithStay("2024-07-10", "2024-07-10")

		_, err := s.cmds.Create(s.T().Context(), b.BuildRequest())

		s.Require().Error(err)
		s.True(errs.Is(err, errs.ErrValidation))
	})
}

func statusRequest(status string) reqdto.ReservationStatusRequest {
	return reqdto.ReservationStatusRequest{Status: status}
}

func (s *ReservationCommandsTestSuite) TestChangeStatus() {
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).AnyTimes()

	s.Run("success: confirmed to checked_in", func() {
		stored := builder.NewReservationBuilder().BuildStored()
		s.repo.EXPECT().FindByID(gomock.Any(), stored.ID()).Return(stored, nil)
		s.repo.EXPECT().UpdateStatus(gomock.Any(), stored.ID(), reservation.StatusCheckedIn).Return(nil)

		err := s.cmds.ChangeStatus(s.T().Context(), stored.ID(), statusRequest("checked_in"))
		s.NoError(err)
	})

	s.Run("success: same status is a no-op", func() {
		stored := builder.NewReservationBuilder().BuildStored()
		s.repo.EXPECT().FindByID(gomock.Any(), stored.ID()).Return(stored, nil)

		err := s.cmds.ChangeStatus(s.T().Context(), stored.ID(), statusRequest("confirmed"))
		s.NoError(err)
	})

	s.Run("error: cancelled is terminal", func() {
		stored := builder.NewReservationBuilder().WithStatus(reservation.StatusCancelled).BuildStored()
		s.repo.EXPECT().FindByID(gomock.Any(), stored.ID()).Return(stored, nil)

		err := s.cmds.ChangeStatus(s.T().Context(), stored.ID(), statusRequest("confirmed"))

		s.Require().Error(err)
		s.True(errs.Is(err, errs.ErrValidation))
		s.True(errs.Is(err, reservation.ErrInvalidTransition))
	})

	s.Run("error: unknown reservation", func() {
		id := uuid.New()
		s.repo.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound))

		err := s.cmds.ChangeStatus(s.T().Context(), id, statusRequest("cancelled"))

		s.Require().Error(err)
		s.True(errs.Is(err, errs.ErrNotFound))
	})
}

func (s *ReservationCommandsTestSuite) TestUpdateExcludesItself() {
	b := s.request()
	stored := b.BuildStored()
	s.runSerializable()
	s.locker.EXPECT().LockRoom(gomock.Any(), s.room.ID).Return(func(context.Context) {}, nil)
	s.repo.EXPECT().FindByID(gomock.Any(), b.ID).Return(stored, nil)
	s.repo.EXPECT().LockRoom(gomock.Any(), s.room.ID).Return(nil)
	s.rooms.EXPECT().FindByID(gomock.Any(), s.room.ID).Return(s.room.BuildStored(), nil)
	s.guests.EXPECT().FindByID(gomock.Any(), s.guest.ID).Return(s.guest.BuildStored(), nil)

	extended := dates.Range{Start: dates.MustParse("2024-07-10"), End: dates.MustParse("2024-07-17")}
	s.repo.EXPECT().FindOverlapping(gomock.Any(), s.room.ID, extended, gomock.Any()).
		Return([]reservation.Occupant{stored.Occupant()}, nil)
	s.repo.EXPECT().Update(gomock.Any(), stored).Return(nil)

	req := b.WithStay("2024-07-10", "2024-07-17").BuildRequest()
	s.NoError(s.cmds.Update(s.T().Context(), b.ID, req))
	s.Equal(7, stored.Stay().Nights())
}
