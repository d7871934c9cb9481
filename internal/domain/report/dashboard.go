package report

import (
	"hostel-admin/internal/pkg/dates"

	"github.com/google/uuid"
)

type Dashboard struct {
	Window       dates.Window
	Filter       Filter
	Occupancy    Occupancy
	Financial    Financial
	TopCompanies []CompanyRevenue
}

// Inputs are the raw rows of one dashboard, each fetched once for the window.
type Inputs struct {
	Rooms        []RoomInfo
	Stays        []Stay
	Payments     []PaymentInfo
	CompanyNames map[uuid.UUID]string
}

func BuildDashboard(window dates.Window, f Filter, in Inputs, top int) Dashboard {
	rooms := f.Rooms(in.Rooms)
	stays := f.Stays(in.Stays)
	return Dashboard{
		Window:       window,
		Filter:       f,
		Occupancy:    ComputeOccupancy(window, rooms, stays),
		Financial:    ComputeFinancial(window, len(rooms), f.Payments(in.Payments)),
		TopCompanies: RankCompanies(stays, in.CompanyNames, top),
	}
}
