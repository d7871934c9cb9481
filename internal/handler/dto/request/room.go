package request

import (
	"hostel-admin/internal/domain/room"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type RoomRequest struct {
	Code             string          `json:"code" binding:"required,max=20"`
	Name             string          `json:"name" binding:"required,max=100"`
	RoomType         string          `json:"room_type" binding:"required,max=40"`
	CapacityAdults   int             `json:"capacity_adults" binding:"required,min=1"`
	CapacityChildren int             `json:"capacity_children" binding:"min=0"`
	BaseRate         decimal.Decimal `json:"base_rate"`
	Currency         string          `json:"currency" binding:"omitempty,len=3"`
	SortOrder        int             `json:"sort_order"`
}

// ToDomain fills an empty currency with the hostel default.
func (r *RoomRequest) ToDomain(defaultCurrency string) (room.Attributes, error) {
	var attrs room.Attributes
	if err := copier.Copy(&attrs, r); err != nil {
		return room.Attributes{}, err
	}
	if attrs.Currency == "" {
		attrs.Currency = defaultCurrency
	}
	return attrs, nil
}

type RoomStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r *RoomStatusRequest) ToDomain() (room.Status, error) {
	return room.ParseStatus(r.Status)
}
