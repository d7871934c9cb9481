package report

import (
	"hostel-admin/internal/domain/payment"
	"hostel-admin/internal/pkg/dates"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentInfo is a payment reduced to what the rollup groups by. PaidOn is the calendar
// day of the payment in the hostel's own zone.
type PaymentInfo struct {
	Amount       decimal.Decimal
	Method       payment.Method
	DocumentType payment.DocumentType
	PaidOn       dates.Date
	CompanyID    *uuid.UUID
}

type Bucket struct {
	Key    string
	Amount decimal.Decimal
	Count  int
}

type DayIncome struct {
	Date   dates.Date
	Amount decimal.Decimal
	Count  int
}

type Financial struct {
	Window         dates.Window
	Total          decimal.Decimal
	Count          int
	ByMethod       []Bucket
	ByDocumentType []Bucket
	ByDay          []DayIncome
	RevPAR         decimal.Decimal
}

// ComputeFinancial sums payments falling inside window. Every method, document type and
// day of the window is present in the output, zero when nothing was paid.
func ComputeFinancial(window dates.Window, totalRooms int, payments []PaymentInfo) Financial {
	days := window.Days()
	out := Financial{Window: window, Total: decimal.Zero, RevPAR: decimal.Zero}

	for _, m := range payment.Methods {
		out.ByMethod = append(out.ByMethod, Bucket{Key: string(m), Amount: decimal.Zero})
	}
	for _, d := range payment.DocumentTypes {
		out.ByDocumentType = append(out.ByDocumentType, Bucket{Key: string(d), Amount: decimal.Zero})
	}
	out.ByDay = make([]DayIncome, len(days))
	for i, d := range days {
		out.ByDay[i] = DayIncome{Date: d, Amount: decimal.Zero}
	}

	span := window.HalfOpen()
	for _, p := range payments {
		if !span.Contains(p.PaidOn) {
			continue
		}
		out.Total = out.Total.Add(p.Amount)
		out.Count++
		out.ByMethod = addTo(out.ByMethod, string(p.Method), p.Amount)
		out.ByDocumentType = addTo(out.ByDocumentType, string(p.DocumentType), p.Amount)

		day := &out.ByDay[window.From.DaysUntil(p.PaidOn)]
		day.Amount = day.Amount.Add(p.Amount)
		day.Count++
	}

	out.RevPAR = RevPAR(out.Total, totalRooms, len(days))
	return out
}

// RevPAR is income per available room-night, zero when there are no room-nights.
func RevPAR(total decimal.Decimal, rooms, days int) decimal.Decimal {
	roomNights := rooms * days
	if roomNights <= 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(roomNights))).Round(2)
}

func addTo(buckets []Bucket, key string, amount decimal.Decimal) []Bucket {
	for i := range buckets {
		if buckets[i].Key == key {
			buckets[i].Amount = buckets[i].Amount.Add(amount)
			buckets[i].Count++
			return buckets
		}
	}
	return append(buckets, Bucket{Key: key, Amount: amount, Count: 1})
}
