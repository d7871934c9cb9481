package queries

import (
	"context"
	"time"

	"hostel-admin/internal/pkg/config"
	"hostel-admin/internal/pkg/dates"

	"github.com/google/uuid"
)

type PaymentFilter struct {
	Window        dates.Window
	Method        string
	CompanyID     *uuid.UUID
	ReservationID *uuid.UUID
}

type PaymentReadStore interface {
	// ListBetween returns payments with from <= paid_at < to, newest first.
	ListBetween(ctx context.Context, from, to time.Time, f PaymentFilter) ([]*PaymentView, error)
}

type PaymentQueries interface {
	List(ctx context.Context, f PaymentFilter) ([]*PaymentView, error)
}

type paymentQueriesImpl struct {
	store PaymentReadStore
	loc   *time.Location
}

func NewPaymentQueries(store PaymentReadStore, hostel config.HostelConfig) PaymentQueries {
	return &paymentQueriesImpl{store: store, loc: hostel.Location()}
}

// List bounds the window by the hostel's local midnights so a late-evening payment
// lands on the day staff saw it.
func (q *paymentQueriesImpl) List(ctx context.Context, f PaymentFilter) ([]*PaymentView, error) {
	span := f.Window.HalfOpen()
	return q.store.ListBetween(ctx, span.Start.At(q.loc), span.End.At(q.loc), f)
}
