package report

import "github.com/google/uuid"

// Filter narrows the inventory and the stays a dashboard is computed over.
// Zero fields do not filter.
type Filter struct {
	RoomType   string
	RoomStatus string
	CompanyID  *uuid.UUID
}

func (f Filter) Rooms(rooms []RoomInfo) []RoomInfo {
	if f.RoomType == "" && f.RoomStatus == "" {
		return rooms
	}
	out := make([]RoomInfo, 0, len(rooms))
	for _, r := range rooms {
		if f.RoomType != "" && r.RoomType != f.RoomType {
			continue
		}
		if f.RoomStatus != "" && r.Status != f.RoomStatus {
			continue
		}
		out = append(out, r)
	}
	return out
}

func (f Filter) Stays(stays []Stay) []Stay {
	if f.CompanyID == nil {
		return stays
	}
	out := make([]Stay, 0, len(stays))
	for _, s := range stays {
		if s.CompanyID != nil && *s.CompanyID == *f.CompanyID {
			out = append(out, s)
		}
	}
	return out
}

func (f Filter) Payments(payments []PaymentInfo) []PaymentInfo {
	if f.CompanyID == nil {
		return payments
	}
	out := make([]PaymentInfo, 0, len(payments))
	for _, p := range payments {
		if p.CompanyID != nil && *p.CompanyID == *f.CompanyID {
			out = append(out, p)
		}
	}
	return out
}
