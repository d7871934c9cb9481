package request

import (
	"hostel-admin/internal/domain/company"

	"github.com/shopspring/decimal"
)

type CompanyRequest struct {
	Name             string          `json:"name" binding:"required,max=150"`
	TaxID            string          `json:"tax_id" binding:"max=20"`
	Email            string          `json:"email" binding:"omitempty,email"`
	Phone            string          `json:"phone" binding:"max=40"`
	DiscountPercent  decimal.Decimal `json:"discount_percent"`
	PaymentTermsDays int             `json:"payment_terms_days" binding:"min=0"`
}

func (r *CompanyRequest) ToDomain() company.Profile {
	return company.Profile{
		Name:  r.Name,
		TaxID: r.TaxID,
		Email: r.Email,
		Phone: r.Phone,
		Terms: company.Terms{
			DiscountPercent:  r.DiscountPercent,
			PaymentTermsDays: r.PaymentTermsDays,
		},
	}
}
