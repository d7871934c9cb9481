package request

import (
	"hostel-admin/internal/domain/guest"

	"github.com/jinzhu/copier"
)

type GuestRequest struct {
	FullName    string `json:"full_name" binding:"required,max=150"`
	DocumentID  string `json:"document_id" binding:"max=40"`
	Email       string `json:"email" binding:"omitempty,email"`
	Phone       string `json:"phone" binding:"max=40"`
	Nationality string `json:"nationality" binding:"max=60"`
}

func (r *GuestRequest) ToDomain() (guest.Profile, error) {
	var p guest.Profile
	err := copier.Copy(&p, r)
	return p, err
}
