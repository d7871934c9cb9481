package commands

import (
	"context"
	"log/slog"

	"hostel-admin/internal/domain/payment"
	reqdto "hostel-admin/internal/handler/dto/request"
	"hostel-admin/internal/pkg/clock"
	"hostel-admin/internal/pkg/ptr"
	"hostel-admin/internal/usecase/queries"
	"hostel-admin/internal/usecase/shared"

	"github.com/google/uuid"
)

type PaymentCommands interface {
	Record(ctx context.Context, req reqdto.PaymentRequest) (uuid.UUID, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type paymentCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPaymentCommands(uow shared.UnitOfWork, clock clock.Clock) PaymentCommands {
	return &paymentCommandsImpl{uow: uow, clock: clock}
}

// Record stores a payment. A payment against a reservation is attributed to the
// reservation's guest and company unless the request names others.
func (p *paymentCommandsImpl) Record(ctx context.Context, req reqdto.PaymentRequest) (uuid.UUID, error) {
	rec := req.ToDomain(p.clock.Now())

	var paid *payment.Payment
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if rec.ReservationID != nil {
			res, err := tx.Reservations().FindByID(ctx, *rec.ReservationID)
			if err != nil {
				return notFoundAs(err, queries.ErrReservationNotFound)
			}
			if rec.GuestID == nil {
				rec.GuestID = ptr.Of(res.GuestID())
			}
			if rec.CompanyID == nil {
				rec.CompanyID = res.CompanyID()
			}
		}

		pay, err := payment.NewPayment(rec)
		if err != nil {
			return invalid(err)
		}
		if err := tx.Payments().Create(ctx, pay); err != nil {
			return err
		}
		paid = pay
		return nil
	})
	if err != nil {
		return uuid.Nil, storeErr(err, nil)
	}

	slog.Info("payment recorded",
		"payment_id", paid.ID(),
		"amount", paid.Amount().StringFixed(2),
		"method", string(paid.Method()),
	)
	return paid.ID(), nil
}

func (p *paymentCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Payments().Delete(ctx, id); err != nil {
			return notFoundAs(err, ErrPaymentNotFound)
		}
		return nil
	})
}
