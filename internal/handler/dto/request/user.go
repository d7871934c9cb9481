package request

import (
	"hostel-admin/internal/domain/user"
)

type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=viewer housekeeping recepcion admin superadmin"`
	FullName string `json:"full_name" binding:"required,max=100"`
}

// NewUserInput is a validated staff account before its password is hashed.
type NewUserInput struct {
	Email    user.Email
	Password user.Password
	Role     user.Role
	FullName string
}

func (r *CreateUserRequest) ToDomain() (NewUserInput, error) {
	email, err := user.NewEmail(r.Email)
	if err != nil {
		return NewUserInput{}, err
	}
	pw, err := user.NewPassword(r.Password)
	if err != nil {
		return NewUserInput{}, err
	}
	role, err := user.NewRole(r.Role)
	if err != nil {
		return NewUserInput{}, err
	}
	return NewUserInput{Email: email, Password: pw, Role: role, FullName: r.FullName}, nil
}
