package queries

import (
	"context"

	"hostel-admin/internal/pkg/config"

	"github.com/google/uuid"
)

// VoucherDocument is everything a confirmation voucher prints.
type VoucherDocument struct {
	Hostel      config.HostelConfig
	Reservation *ReservationView
}

type VoucherRenderer interface {
	RenderPDF(ctx context.Context, doc VoucherDocument) ([]byte, error)
}

type VoucherQueries interface {
	Document(ctx context.Context, reservationID uuid.UUID) (*VoucherDocument, error)
	RenderPDF(ctx context.Context, reservationID uuid.UUID) ([]byte, string, error)
}

type voucherQueriesImpl struct {
	reservations ReservationQueries
	renderer     VoucherRenderer
	hostel       config.HostelConfig
}

func NewVoucherQueries(reservations ReservationQueries, renderer VoucherRenderer, hostel config.HostelConfig) VoucherQueries {
	return &voucherQueriesImpl{reservations: reservations, renderer: renderer, hostel: hostel}
}

func (q *voucherQueriesImpl) Document(ctx context.Context, reservationID uuid.UUID) (*VoucherDocument, error) {
	res, err := q.reservations.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	return &VoucherDocument{Hostel: q.hostel, Reservation: res}, nil
}

// RenderPDF returns the voucher bytes and the file name to offer them under.
func (q *voucherQueriesImpl) RenderPDF(ctx context.Context, reservationID uuid.UUID) ([]byte, string, error) {
	doc, err := q.Document(ctx, reservationID)
	if err != nil {
		return nil, "", err
	}
	pdf, err := q.renderer.RenderPDF(ctx, *doc)
	if err != nil {
		return nil, "", err
	}
	return pdf, VoucherFileName(doc.Reservation.Code), nil
}

func VoucherFileName(code string) string {
	return "voucher-" + code + ".pdf"
}
