package response

import "hostel-admin/internal/usecase/queries"

type LoginResponse struct {
	AccessToken string                      `json:"access_token"`
	ExpiresIn   int64                       `json:"expires_in"`
	User        *queries.AuthorizedUserView `json:"user"`
}

type CreatedResponse struct {
	ID string `json:"id"`
}
