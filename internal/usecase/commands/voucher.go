package commands

import (
	"context"
	"fmt"
	"log/slog"

	reqdto "hostel-admin/internal/handler/dto/request"
	"hostel-admin/internal/pkg/errs"
	"hostel-admin/internal/usecase/queries"

	"github.com/google/uuid"
)

type VoucherCommands interface {
	// Send mails the reservation voucher as a PDF and returns the address it went to.
	Send(ctx context.Context, reservationID uuid.UUID, req reqdto.SendVoucherRequest) (string, error)
}

type voucherCommandsImpl struct {
	vouchers queries.VoucherQueries
	renderer queries.VoucherRenderer
	mailer   Mailer
}

func NewVoucherCommands(vouchers queries.VoucherQueries, renderer queries.VoucherRenderer, mailer Mailer) VoucherCommands {
	return &voucherCommandsImpl{vouchers: vouchers, renderer: renderer, mailer: mailer}
}

func (v *voucherCommandsImpl) Send(ctx context.Context, reservationID uuid.UUID, req reqdto.SendVoucherRequest) (string, error) {
	doc, err := v.vouchers.Document(ctx, reservationID)
	if err != nil {
		return "", err
	}

	to := req.To
	if to == "" {
		to = doc.Reservation.GuestEmail
	}
	if to == "" {
		return "", errs.Mark(ErrNoRecipient, errs.ErrValidation)
	}

	pdf, err := v.renderer.RenderPDF(ctx, *doc)
	if err != nil {
		return "", errs.Mark(err, ErrVoucherNotSent)
	}

	res := doc.Reservation
	mail := Mail{
		To:      to,
		Subject: fmt.Sprintf("Confirmación de reserva %s - %s", res.Code, doc.Hostel.Name),
		Text: fmt.Sprintf(
			"Hola %s,\n\nAdjuntamos el voucher de su reserva %s (%s al %s, habitación %s).\n\n%s",
			res.GuestName, res.Code, res.CheckIn, res.CheckOut, res.RoomName, doc.Hostel.Name,
		),
		Attachments: []Attachment{{
			Filename:    queries.VoucherFileName(res.Code),
			ContentType: "application/pdf",
			Data:        pdf,
		}},
	}
	if err := v.mailer.Send(ctx, mail); err != nil {
		return "", errs.Mark(err, ErrVoucherNotSent)
	}

	slog.Info("voucher sent", "reservation_id", reservationID, "code", res.Code, "to", to)
	return to, nil
}
