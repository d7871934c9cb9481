package report

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CompanyRevenue struct {
	CompanyID    uuid.UUID
	Name         string
	Revenue      decimal.Decimal
	Reservations int
}

// RankCompanies totals the price of non-cancelled stays billed to a company, highest
// revenue first. top <= 0 returns every company.
func RankCompanies(stays []Stay, names map[uuid.UUID]string, top int) []CompanyRevenue {
	byID := make(map[uuid.UUID]*CompanyRevenue)
	for _, s := range stays {
		if s.CompanyID == nil || !s.counts() {
			continue
		}
		cr, ok := byID[*s.CompanyID]
		if !ok {
			cr = &CompanyRevenue{CompanyID: *s.CompanyID, Name: names[*s.CompanyID], Revenue: decimal.Zero}
			byID[*s.CompanyID] = cr
		}
		cr.Revenue = cr.Revenue.Add(s.TotalPrice)
		cr.Reservations++
	}

	out := make([]CompanyRevenue, 0, len(byID))
	for _, cr := range byID {
		out = append(out, *cr)
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Revenue.Cmp(out[j].Revenue); c != 0 {
			return c > 0
		}
		return out[i].Name < out[j].Name
	})
	if top > 0 && len(out) > top {
		out = out[:top]
	}
	return out
}
