//go:build unit

package voucher

import (
	"testing"

	"hostel-admin/internal/pkg/config"
	"hostel-admin/internal/pkg/dates"
	"hostel-admin/internal/usecase/queries"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderHTML(t *testing.T) {
	r, err := NewRenderer(config.VoucherConfig{ChromeURL: "ws://127.0.0.1:9222"})
	require.NoError(t, err)
	defer r.Close()

	company := "Acme <SAC>"
	doc := queries.VoucherDocument{
		Hostel: config.HostelConfig{Name: "Casa Andina", Phone: "+51 1 555"},
		Reservation: &queries.ReservationView{
			Code:        "R-000042",
			GuestName:   "Ana Quispe",
			CompanyName: &company,
			RoomCode:    "D01",
			RoomName:    "Dorm 6",
			CheckIn:     dates.MustParse("2024-07-10"),
			CheckOut:    dates.MustParse("2024-07-13"),
			Nights:      3,
			Adults:      2,
			TotalPrice:  decimal.RequireFromString("270"),
			Currency:    "PEN",
			Companions:  []queries.CompanionView{{FullName: "Luis Quispe"}},
		},
	}

	html, err := r.RenderHTML(doc)
	require.NoError(t, err)

	assert.Contains(t, html, "R-000042")
	assert.Contains(t, html, "2024-07-10")
	assert.Contains(t, html, "PEN 270.00")
	assert.Contains(t, html, "Luis Quispe")
	// html/template escapes user input
	assert.Contains(t, html, "Acme &lt;SAC&gt;")
}
