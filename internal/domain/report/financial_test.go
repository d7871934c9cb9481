//go:build unit

package report_test

import (
	"testing"

	"hostel-admin/internal/domain/payment"
	"hostel-admin/internal/domain/report"
	"hostel-admin/internal/domain/reservation"
	"hostel-admin/internal/pkg/dates"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pay(amount, day string, m payment.Method, d payment.DocumentType) report.PaymentInfo {
	return report.PaymentInfo{
		Amount:       decimal.RequireFromString(amount),
		Method:       m,
		DocumentType: d,
		PaidOn:       dates.MustParse(day),
	}
}

func sumBuckets(bs []report.Bucket) decimal.Decimal {
	total := decimal.Zero
	for _, b := range bs {
		total = total.Add(b.Amount)
	}
	return total
}

func TestComputeFinancial(t *testing.T) {
	w := window(t, "2024-09-01", "2024-09-03")
	payments := []report.PaymentInfo{
		pay("120.50", "2024-09-01", payment.MethodCash, payment.DocumentReceipt),
		pay("80.00", "2024-09-01", payment.MethodCard, payment.DocumentInvoice),
		pay("45.25", "2024-09-03", payment.MethodTransfer, payment.DocumentNone),
		pay("300.00", "2024-09-04", payment.MethodCash, payment.DocumentReceipt),
		pay("10.00", "2024-08-31", payment.MethodCash, payment.DocumentReceipt),
	}

	got := report.ComputeFinancial(w, 2, payments)

	assert.Equal(t, "245.75", got.Total.String())
	assert.Equal(t, 3, got.Count)

	t.Run("groupings add up to the total", func(t *testing.T) {
		assert.True(t, got.Total.Equal(sumBuckets(got.ByMethod)))
		assert.True(t, got.Total.Equal(sumBuckets(got.ByDocumentType)))

		daily := decimal.Zero
		for _, d := range got.ByDay {
			daily = daily.Add(d.Amount)
		}
		assert.True(t, got.Total.Equal(daily))
	})

	t.Run("every day and method is present", func(t *testing.T) {
		require.Len(t, got.ByDay, 3)
		assert.Equal(t, "200.5", got.ByDay[0].Amount.String())
		assert.True(t, got.ByDay[1].Amount.IsZero())
		assert.Len(t, got.ByMethod, len(payment.Methods))
		assert.Len(t, got.ByDocumentType, len(payment.DocumentTypes))
	})

	t.Run("revpar over room-nights", func(t *testing.T) {
		assert.Equal(t, "40.96", got.RevPAR.String())
	})
}

func TestComputeFinancialAcrossCenturies(t *testing.T) {
	w := window(t, "1700-01-01", "2100-01-01")
	got := report.ComputeFinancial(w, 1, []report.PaymentInfo{
		pay("50.00", "2099-12-31", payment.MethodCash, payment.DocumentReceipt),
	})

	require.Len(t, got.ByDay, w.DayCount())
	last := got.ByDay[len(got.ByDay)-2]
	assert.Equal(t, "2099-12-31", last.Date.String())
	assert.Equal(t, 1, last.Count)
	assert.Equal(t, "50", last.Amount.String())
}

func TestRevPARWithoutRooms(t *testing.T) {
	assert.True(t, report.RevPAR(decimal.NewFromInt(500), 0, 30).IsZero())
}

func TestRankCompanies(t *testing.T) {
	andes, inca, lima := uuid.New(), uuid.New(), uuid.New()
	names := map[uuid.UUID]string{andes: "Andes Tours", inca: "Inca Travel", lima: "Lima Corp"}
	room := uuid.New()

	billed := func(company uuid.UUID, price string, status reservation.Status) report.Stay {
		s := stayOf(room, "2024-06-01", "2024-06-02", status)
		s.CompanyID = &company
		s.TotalPrice = decimal.RequireFromString(price)
		return s
	}
	stays := []report.Stay{
		billed(andes, "100", reservation.StatusConfirmed),
		billed(andes, "150", reservation.StatusCheckedOut),
		billed(inca, "400", reservation.StatusConfirmed),
		billed(lima, "999", reservation.StatusCancelled),
		stayOf(room, "2024-06-01", "2024-06-02", reservation.StatusConfirmed),
	}

	all := report.RankCompanies(stays, names, 0)
	require.Len(t, all, 2)
	assert.Equal(t, "Inca Travel", all[0].Name)
	assert.Equal(t, "250", all[1].Revenue.String())
	assert.Equal(t, 2, all[1].Reservations)

	top := report.RankCompanies(stays, names, 1)
	require.Len(t, top, 1)
	assert.Equal(t, inca, top[0].CompanyID)
}
