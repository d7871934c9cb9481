package commands

import (
	"context"
	"log/slog"

	"hostel-admin/internal/domain/company"
	"hostel-admin/internal/domain/guest"
	"hostel-admin/internal/domain/reservation"
	"hostel-admin/internal/domain/room"
	reqdto "hostel-admin/internal/handler/dto/request"
	"hostel-admin/internal/infra"
	"hostel-admin/internal/pkg/dates"
	"hostel-admin/internal/pkg/errs"
	"hostel-admin/internal/usecase/queries"
	"hostel-admin/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationCommands interface {
	Create(ctx context.Context, req reqdto.ReservationRequest) (uuid.UUID, error)
	// Update edits the stay and its details; the status only moves through ChangeStatus.
	Update(ctx context.Context, id uuid.UUID, req reqdto.ReservationRequest) error
	ChangeStatus(ctx context.Context, id uuid.UUID, req reqdto.ReservationStatusRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type reservationCommandsImpl struct {
	uow       shared.UnitOfWork
	locker    shared.RoomLocker
	factory   *reservation.Factory
	occupants queries.ReservationReadStore
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	locker shared.RoomLocker,
	factory *reservation.Factory,
	occupants queries.ReservationReadStore,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:       uow,
		locker:    locker,
		factory:   factory,
		occupants: occupants,
	}
}

// refs are the rows a reservation points at, loaded inside the writing transaction.
type refs struct {
	room    *room.Room
	guest   *guest.Guest
	company *company.Company
}

func (r *reservationCommandsImpl) Create(ctx context.Context, req reqdto.ReservationRequest) (uuid.UUID, error) {
	in, err := req.ToDomain()
	if err != nil {
		return uuid.Nil, invalid(err)
	}

	release, err := r.lockRoom(ctx, in.RoomID)
	if err != nil {
		return uuid.Nil, err
	}
	defer release(context.WithoutCancel(ctx))

	var created *reservation.Reservation
	err = r.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := r.holdRoom(ctx, tx, in.RoomID); err != nil {
			return err
		}
		refs, err := r.loadRefs(ctx, tx, in.Details)
		if err != nil {
			return err
		}

		res, err := r.factory.CreateReservation(refs.room, refs.guest, refs.company, in)
		if err != nil {
			return invalid(err)
		}
		if err := r.ensureAvailable(ctx, tx, res, nil); err != nil {
			return err
		}

		code, err := tx.Reservations().NextCode(ctx)
		if err != nil {
			return err
		}
		if err := res.AssignCode(code); err != nil {
			return err
		}
		if err := tx.Reservations().Create(ctx, res); err != nil {
			return err
		}
		created = res
		return nil
	})
	if err != nil {
		return uuid.Nil, r.writeErr(ctx, err, in.RoomID, in.Stay, nil)
	}

	slog.Info("reservation created",
		"reservation_id", created.ID(),
		"code", created.Code(),
		"room_id", created.RoomID(),
		"check_in", created.Stay().Start.String(),
		"check_out", created.Stay().End.String(),
	)
	return created.ID(), nil
}

func (r *reservationCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.ReservationRequest) error {
	in, err := req.ToDomain()
	if err != nil {
		return invalid(err)
	}

	release, err := r.lockRoom(ctx, in.RoomID)
	if err != nil {
		return err
	}
	defer release(context.WithoutCancel(ctx))

	err = r.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByID(ctx, id)
		if err != nil {
			return notFoundAs(err, queries.ErrReservationNotFound)
		}
		if err := r.holdRoom(ctx, tx, in.RoomID); err != nil {
			return err
		}
		refs, err := r.loadRefs(ctx, tx, in.Details)
		if err != nil {
			return err
		}

		if err := r.factory.UpdateReservation(res, refs.room, refs.guest, refs.company, in); err != nil {
			return invalid(err)
		}
		if err := r.ensureAvailable(ctx, tx, res, &id); err != nil {
			return err
		}
		return tx.Reservations().Update(ctx, res)
	})
	if err != nil {
		return r.writeErr(ctx, err, in.RoomID, in.Stay, &id)
	}
	return nil
}

// ChangeStatus never re-checks availability: no transition turns a cancelled stay back
// into a blocking one.
func (r *reservationCommandsImpl) ChangeStatus(ctx context.Context, id uuid.UUID, req reqdto.ReservationStatusRequest) error {
	to, err := req.ToDomain()
	if err != nil {
		return invalid(err)
	}

	var from reservation.Status
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByID(ctx, id)
		if err != nil {
			return notFoundAs(err, queries.ErrReservationNotFound)
		}
		from = res.Status()
		if err := res.ChangeStatus(to); err != nil {
			return invalid(err)
		}
		if from == to {
			return nil
		}
		return tx.Reservations().UpdateStatus(ctx, id, to)
	})
	if err != nil {
		return storeErr(err, nil)
	}

	if from != to {
		slog.Info("reservation status changed", "reservation_id", id, "from", from.String(), "to", to.String())
	}
	return nil
}

func (r *reservationCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Reservations().Delete(ctx, id); err != nil {
			return notFoundAs(err, queries.ErrReservationNotFound)
		}
		return nil
	})
	if err != nil {
		return err
	}
	slog.Info("reservation deleted", "reservation_id", id)
	return nil
}

func (r *reservationCommandsImpl) lockRoom(ctx context.Context, roomID uuid.UUID) (func(context.Context), error) {
	release, err := r.locker.LockRoom(ctx, roomID)
	if err != nil {
		if errs.Is(err, shared.ErrRoomBusy) {
			return nil, errs.Mark(err, errs.ErrConflict)
		}
		return nil, err
	}
	return release, nil
}

// holdRoom row-locks the room so concurrent writers for it queue inside the database too.
func (r *reservationCommandsImpl) holdRoom(ctx context.Context, tx shared.Tx, roomID uuid.UUID) error {
	if err := tx.Reservations().LockRoom(ctx, roomID); err != nil {
		return notFoundAs(err, queries.ErrRoomNotFound)
	}
	return nil
}

func (r *reservationCommandsImpl) loadRefs(ctx context.Context, tx shared.Tx, d reservation.Details) (refs, error) {
	var out refs
	var err error

	if out.room, err = tx.Rooms().FindByID(ctx, d.RoomID); err != nil {
		return refs{}, notFoundAs(err, queries.ErrRoomNotFound)
	}
	if out.guest, err = tx.Guests().FindByID(ctx, d.GuestID); err != nil {
		return refs{}, notFoundAs(err, queries.ErrGuestNotFound)
	}
	if d.CompanyID != nil {
		if out.company, err = tx.Companies().FindByID(ctx, *d.CompanyID); err != nil {
			return refs{}, notFoundAs(err, queries.ErrCompanyNotFound)
		}
	}
	return out, nil
}

func (r *reservationCommandsImpl) ensureAvailable(ctx context.Context, tx shared.Tx, res *reservation.Reservation, exclude *uuid.UUID) error {
	blocking := reservation.DefaultBlocking()
	if !blocking.Has(res.Status()) {
		return nil
	}
	occupants, err := tx.Reservations().FindOverlapping(ctx, res.RoomID(), res.Stay(), blocking.Slice())
	if err != nil {
		return err
	}
	if err := reservation.CheckAvailability(occupants, res.Stay(), exclude, blocking); err != nil {
		return errs.Categorize(err, ErrReservationConflict, errs.ErrConflict)
	}
	return nil
}

// writeErr maps a failed booking write. When the exclusion constraint fired, the stay
// that won is looked up again so the caller learns which reservation holds the room.
func (r *reservationCommandsImpl) writeErr(ctx context.Context, err error, roomID uuid.UUID, stay dates.Range, exclude *uuid.UUID) error {
	if !infra.IsKind(err, infra.KindConflict) {
		return storeErr(err, nil)
	}

	occupants, lookupErr := r.occupants.Occupants(ctx, roomID, stay)
	if lookupErr != nil {
		slog.Warn("failed to look up conflicting reservation", "room_id", roomID, "error", lookupErr.Error())
		return errs.Categorize(reservation.ErrOverlap, ErrReservationConflict, errs.ErrConflict)
	}
	if conflict := reservation.CheckAvailability(occupants, stay, exclude, nil); conflict != nil {
		return errs.Categorize(conflict, ErrReservationConflict, errs.ErrConflict)
	}
	return errs.Categorize(reservation.ErrOverlap, ErrReservationConflict, errs.ErrConflict)
}
