//go:build unit || e2e

package builder

import (
	"time"

	"hostel-admin/internal/domain/user"
	reqdto "hostel-admin/internal/handler/dto/request"
	"hostel-admin/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	FullName     string
	IsActive     bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Email:        "recepcion@hostel.test",
		PasswordHash: "hashed_password",
		Role:         string(user.RoleRecepcion),
		FullName:     "Rosa Huaman",
		IsActive:     true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}
	return user.NewUser(email, u.PasswordHash, role, u.FullName)
}

// BuildStored returns the user as the repository would load it.
func (u *UserBuilder) BuildStored() *user.User {
	email, _ := user.NewEmail(u.Email)
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	return user.ReconstructUser(u.ID, email, u.PasswordHash, user.Role(u.Role), u.FullName, nil, u.IsActive, now, now)
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       u.ID,
		Email:    u.Email,
		Role:     u.Role,
		FullName: u.FullName,
		IsActive: u.IsActive,
	}
}

func (u *UserBuilder) BuildCreateRequest(password string) reqdto.CreateUserRequest {
	return reqdto.CreateUserRequest{
		Email:    u.Email,
		Password: password,
		Role:     u.Role,
		FullName: u.FullName,
	}
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role user.Role) *UserBuilder {
	u.Role = string(role)
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
