package auth

import (
	"errors"

	"hostel-admin/internal/domain/user"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type Credentials struct {
	email    user.Email
	password string
}

// NewCredentials collapses every shape error into ErrInvalidCredentials so a
// malformed login looks the same as a wrong password.
func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil || passwordStr == "" {
		return Credentials{}, ErrInvalidCredentials
	}

	return Credentials{
		email:    email,
		password: passwordStr,
	}, nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

func (c Credentials) Password() string {
	return c.password
}
