package guest

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyFullName = errors.New("guest full name cannot be empty")
	ErrInvalidEmail  = errors.New("invalid guest email")
	ErrInactive      = errors.New("guest is inactive")
)

type Guest struct {
	id          uuid.UUID
	fullName    string
	documentID  string
	email       string
	phone       string
	nationality string
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
}

type Profile struct {
	FullName    string
	DocumentID  string
	Email       string
	Phone       string
	Nationality string
}

func NewGuest(p Profile) (*Guest, error) {
	g := &Guest{id: uuid.New(), isActive: true}
	if err := g.apply(p); err != nil {
		return nil, err
	}
	return g, nil
}

func ReconstructGuest(id uuid.UUID, p Profile, isActive bool, createdAt, updatedAt time.Time) *Guest {
	return &Guest{
		id:          id,
		fullName:    p.FullName,
		documentID:  p.DocumentID,
		email:       p.Email,
		phone:       p.Phone,
		nationality: p.Nationality,
		isActive:    isActive,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (g *Guest) Update(p Profile) error {
	return g.apply(p)
}

func (g *Guest) Deactivate() { g.isActive = false }

func (g *Guest) apply(p Profile) error {
	name := strings.TrimSpace(p.FullName)
	if name == "" {
		return ErrEmptyFullName
	}
	email := strings.ToLower(strings.TrimSpace(p.Email))
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return ErrInvalidEmail
		}
	}
	g.fullName = name
	g.documentID = strings.TrimSpace(p.DocumentID)
	g.email = email
	g.phone = strings.TrimSpace(p.Phone)
	g.nationality = strings.TrimSpace(p.Nationality)
	return nil
}

func (g *Guest) ID() uuid.UUID        { return g.id }
func (g *Guest) FullName() string     { return g.fullName }
func (g *Guest) DocumentID() string   { return g.documentID }
func (g *Guest) Email() string        { return g.email }
func (g *Guest) Phone() string        { return g.phone }
func (g *Guest) Nationality() string  { return g.nationality }
func (g *Guest) IsActive() bool       { return g.isActive }
func (g *Guest) CreatedAt() time.Time { return g.createdAt }
func (g *Guest) UpdatedAt() time.Time { return g.updatedAt }

func (g *Guest) Profile() Profile {
	return Profile{
		FullName:    g.fullName,
		DocumentID:  g.documentID,
		Email:       g.email,
		Phone:       g.phone,
		Nationality: g.nationality,
	}
}
