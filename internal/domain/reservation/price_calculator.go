package reservation

import (
	"hostel-admin/internal/pkg/dates"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type PriceCalculator interface {
	Quote(baseRate decimal.Decimal, stay dates.Range, discountPercent decimal.Decimal) decimal.Decimal
}

// NightlyRateCalculator charges the room's base rate per night less the company discount.
type NightlyRateCalculator struct{}

func NewNightlyRateCalculator() *NightlyRateCalculator {
	return &NightlyRateCalculator{}
}

func (NightlyRateCalculator) Quote(baseRate decimal.Decimal, stay dates.Range, discountPercent decimal.Decimal) decimal.Decimal {
	return QuoteTotal(baseRate, stay.Nights(), discountPercent)
}

// QuoteTotal is baseRate * nights reduced by discountPercent, rounded to cents.
func QuoteTotal(baseRate decimal.Decimal, nights int, discountPercent decimal.Decimal) decimal.Decimal {
	if nights <= 0 {
		return decimal.Zero
	}
	gross := baseRate.Mul(decimal.NewFromInt(int64(nights)))
	if discountPercent.IsPositive() {
		gross = gross.Mul(hundred.Sub(discountPercent)).Div(hundred)
	}
	if gross.IsNegative() {
		return decimal.Zero
	}
	return gross.Round(2)
}
