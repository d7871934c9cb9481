package response

import (
	"hostel-admin/internal/domain/report"
	"hostel-admin/internal/pkg/dates"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DayOccupancyResponse struct {
	Date     dates.Date `json:"date"`
	Occupied int        `json:"occupied"`
	Total    int        `json:"total"`
	Rate     float64    `json:"rate"`
}

type TypeOccupancyResponse struct {
	RoomType        string  `json:"room_type"`
	Rooms           int     `json:"rooms"`
	AvailableNights int     `json:"available_nights"`
	OccupiedNights  int     `json:"occupied_nights"`
	Rate            float64 `json:"rate"`
}

type OccupancyResponse struct {
	TotalRooms  int                     `json:"total_rooms"`
	AverageRate float64                 `json:"average_rate"`
	Days        []DayOccupancyResponse  `json:"days"`
	ByRoomType  []TypeOccupancyResponse `json:"by_room_type"`
}

type BucketResponse struct {
	Key    string          `json:"key"`
	Amount decimal.Decimal `json:"amount"`
	Count  int             `json:"count"`
}

type DayIncomeResponse struct {
	Date   dates.Date      `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	Count  int             `json:"count"`
}

type FinancialResponse struct {
	Total          decimal.Decimal     `json:"total"`
	Count          int                 `json:"count"`
	RevPAR         decimal.Decimal     `json:"revpar"`
	ByMethod       []BucketResponse    `json:"by_method"`
	ByDocumentType []BucketResponse    `json:"by_document_type"`
	ByDay          []DayIncomeResponse `json:"by_day"`
}

type CompanyRevenueResponse struct {
	CompanyID    uuid.UUID       `json:"company_id"`
	Name         string          `json:"name"`
	Revenue      decimal.Decimal `json:"revenue"`
	Reservations int             `json:"reservations"`
}

type DashboardResponse struct {
	From         dates.Date               `json:"from"`
	To           dates.Date               `json:"to"`
	Currency     string                   `json:"currency"`
	Occupancy    OccupancyResponse        `json:"occupancy"`
	Financial    FinancialResponse        `json:"financial"`
	TopCompanies []CompanyRevenueResponse `json:"top_companies"`
}

func FromDashboard(d *report.Dashboard, currency string) *DashboardResponse {
	res := &DashboardResponse{
		From:     d.Window.From,
		To:       d.Window.To,
		Currency: currency,
		Occupancy: OccupancyResponse{
			TotalRooms:  d.Occupancy.TotalRooms,
			AverageRate: d.Occupancy.AverageRate,
			Days:        make([]DayOccupancyResponse, len(d.Occupancy.Days)),
			ByRoomType:  make([]TypeOccupancyResponse, len(d.Occupancy.ByRoomType)),
		},
		Financial: FinancialResponse{
			Total:          d.Financial.Total,
			Count:          d.Financial.Count,
			RevPAR:         d.Financial.RevPAR,
			ByMethod:       fromBuckets(d.Financial.ByMethod),
			ByDocumentType: fromBuckets(d.Financial.ByDocumentType),
			ByDay:          make([]DayIncomeResponse, len(d.Financial.ByDay)),
		},
		TopCompanies: make([]CompanyRevenueResponse, len(d.TopCompanies)),
	}
	for i, day := range d.Occupancy.Days {
		res.Occupancy.Days[i] = DayOccupancyResponse(day)
	}
	for i, t := range d.Occupancy.ByRoomType {
		res.Occupancy.ByRoomType[i] = TypeOccupancyResponse(t)
	}
	for i, day := range d.Financial.ByDay {
		res.Financial.ByDay[i] = DayIncomeResponse(day)
	}
	for i, c := range d.TopCompanies {
		res.TopCompanies[i] = CompanyRevenueResponse(c)
	}
	return res
}

func fromBuckets(bs []report.Bucket) []BucketResponse {
	out := make([]BucketResponse, len(bs))
	for i, b := range bs {
		out[i] = BucketResponse(b)
	}
	return out
}
