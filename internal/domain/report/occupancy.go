package report

import (
	"math"
	"sort"

	"hostel-admin/internal/domain/reservation"
	"hostel-admin/internal/pkg/dates"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RoomInfo is a room counted in the inventory of a report.
type RoomInfo struct {
	ID       uuid.UUID
	Code     string
	RoomType string
	Status   string
}

// Stay is a reservation as the aggregations see it.
type Stay struct {
	ReservationID uuid.UUID
	RoomID        uuid.UUID
	CompanyID     *uuid.UUID
	Status        reservation.Status
	Stay          dates.Range
	TotalPrice    decimal.Decimal
}

func (s Stay) counts() bool {
	return s.Status != reservation.StatusCancelled
}

type DayOccupancy struct {
	Date     dates.Date
	Occupied int
	Total    int
	Rate     float64
}

type TypeOccupancy struct {
	RoomType        string
	Rooms           int
	AvailableNights int
	OccupiedNights  int
	Rate            float64
}

type Occupancy struct {
	Window      dates.Window
	TotalRooms  int
	Days        []DayOccupancy
	AverageRate float64
	ByRoomType  []TypeOccupancy
}

// ComputeOccupancy counts, for every day of window, the distinct rooms held by a
// non-cancelled stay. Stays on rooms outside rooms are ignored.
func ComputeOccupancy(window dates.Window, rooms []RoomInfo, stays []Stay) Occupancy {
	roomType := make(map[uuid.UUID]string, len(rooms))
	typeRooms := make(map[string]int)
	for _, r := range rooms {
		roomType[r.ID] = r.RoomType
		typeRooms[r.RoomType]++
	}

	days := window.Days()
	out := Occupancy{
		Window:     window,
		TotalRooms: len(rooms),
		Days:       make([]DayOccupancy, 0, len(days)),
	}

	occupiedByType := make(map[string]int)
	var rateSum float64
	for _, day := range days {
		held := make(map[uuid.UUID]struct{})
		for _, s := range stays {
			if !s.counts() {
				continue
			}
			if _, ok := roomType[s.RoomID]; !ok {
				continue
			}
			if s.Stay.Contains(day) {
				held[s.RoomID] = struct{}{}
			}
		}
		for id := range held {
			occupiedByType[roomType[id]]++
		}

		rate := percent(len(held), len(rooms))
		rateSum += rate
		out.Days = append(out.Days, DayOccupancy{
			Date:     day,
			Occupied: len(held),
			Total:    len(rooms),
			Rate:     rate,
		})
	}
	if len(days) > 0 {
		out.AverageRate = round2(rateSum / float64(len(days)))
	}

	types := make([]string, 0, len(typeRooms))
	for t := range typeRooms {
		types = append(types, t)
	}
	sort.Strings(types)
	for _, t := range types {
		available := typeRooms[t] * len(days)
		out.ByRoomType = append(out.ByRoomType, TypeOccupancy{
			RoomType:        t,
			Rooms:           typeRooms[t],
			AvailableNights: available,
			OccupiedNights:  occupiedByType[t],
			Rate:            percent(occupiedByType[t], available),
		})
	}
	return out
}

func percent(part, whole int) float64 {
	if whole <= 0 {
		return 0
	}
	return round2(float64(part) / float64(whole) * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
