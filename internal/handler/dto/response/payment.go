package response

import (
	"hostel-admin/internal/pkg/dates"
	"hostel-admin/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type PaymentListResponse struct {
	From  dates.Date             `json:"from"`
	To    dates.Date             `json:"to"`
	Items []*queries.PaymentView `json:"items"`
	Count int                    `json:"count"`
	Total decimal.Decimal        `json:"total"`
}

func FromPaymentList(window dates.Window, items []*queries.PaymentView) *PaymentListResponse {
	if items == nil {
		items = []*queries.PaymentView{}
	}
	total := decimal.Zero
	for _, p := range items {
		total = total.Add(p.Amount)
	}
	return &PaymentListResponse{
		From:  window.From,
		To:    window.To,
		Items: items,
		Count: len(items),
		Total: total,
	}
}
