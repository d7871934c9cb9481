package response

import (
	"hostel-admin/internal/usecase/queries"
)

type GuestPageResponse struct {
	Items      []*queries.GuestView `json:"items"`
	NextCursor string               `json:"next_cursor,omitempty"`
}

func FromGuestPage(items []*queries.GuestView, next *queries.Cursor) *GuestPageResponse {
	if items == nil {
		items = []*queries.GuestView{}
	}
	res := &GuestPageResponse{Items: items}
	if next != nil {
		res.NextCursor = next.After
	}
	return res
}
