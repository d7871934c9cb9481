package response

import (
	"hostel-admin/internal/usecase/queries"
)

type ReservationListResponse struct {
	Items []*queries.ReservationListItem `json:"items"`
	Count int                            `json:"count"`
}

func FromReservationList(items []*queries.ReservationListItem) *ReservationListResponse {
	if items == nil {
		items = []*queries.ReservationListItem{}
	}
	return &ReservationListResponse{Items: items, Count: len(items)}
}

type VoucherSentResponse struct {
	ReservationID string `json:"reservation_id"`
	SentTo        string `json:"sent_to"`
}
