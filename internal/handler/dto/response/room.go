package response

import (
	"time"

	"hostel-admin/internal/pkg/errs"
	"hostel-admin/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type RoomResponse struct {
	ID               uuid.UUID       `json:"id"`
	Code             string          `json:"code"`
	Name             string          `json:"name"`
	RoomType         string          `json:"room_type"`
	CapacityAdults   int             `json:"capacity_adults"`
	CapacityChildren int             `json:"capacity_children"`
	Status           string          `json:"status"`
	BaseRate         decimal.Decimal `json:"base_rate"`
	Currency         string          `json:"currency"`
	SortOrder        int             `json:"sort_order"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func FromRoomView(v *queries.RoomView) (*RoomResponse, error) {
	res := &RoomResponse{}
	if err := copier.Copy(res, v); err != nil {
		return nil, errs.Wrap(err, "failed to map room view")
	}
	return res, nil
}

func FromRoomViews(vs []*queries.RoomView) ([]*RoomResponse, error) {
	out := make([]*RoomResponse, len(vs))
	for i, v := range vs {
		res, err := FromRoomView(v)
		if err != nil {
			return nil, err
		}
		out[i] = res
	}
	return out, nil
}
