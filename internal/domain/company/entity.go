package company

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName       = errors.New("company name cannot be empty")
	ErrInvalidEmail    = errors.New("invalid company email")
	ErrInvalidDiscount = errors.New("discount percent must be between 0 and 100")
	ErrNegativeTerms   = errors.New("payment terms cannot be negative")
	ErrInactive        = errors.New("company is inactive")
	maxDiscountPercent = decimal.NewFromInt(100)
)

// Terms are the corporate billing conditions negotiated with a company.
type Terms struct {
	DiscountPercent  decimal.Decimal
	PaymentTermsDays int
}

type Company struct {
	id        uuid.UUID
	name      string
	taxID     string
	email     string
	phone     string
	terms     Terms
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

type Profile struct {
	Name  string
	TaxID string
	Email string
	Phone string
	Terms Terms
}

func NewCompany(p Profile) (*Company, error) {
	c := &Company{id: uuid.New(), isActive: true}
	if err := c.apply(p); err != nil {
		return nil, err
	}
	return c, nil
}

func ReconstructCompany(id uuid.UUID, p Profile, isActive bool, createdAt, updatedAt time.Time) *Company {
	return &Company{
		id:        id,
		name:      p.Name,
		taxID:     p.TaxID,
		email:     p.Email,
		phone:     p.Phone,
		terms:     p.Terms,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (c *Company) Update(p Profile) error {
	return c.apply(p)
}

func (c *Company) Deactivate() { c.isActive = false }

func (c *Company) apply(p Profile) error {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return ErrEmptyName
	}
	email := strings.ToLower(strings.TrimSpace(p.Email))
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return ErrInvalidEmail
		}
	}
	if p.Terms.DiscountPercent.IsNegative() || p.Terms.DiscountPercent.GreaterThan(maxDiscountPercent) {
		return ErrInvalidDiscount
	}
	if p.Terms.PaymentTermsDays < 0 {
		return ErrNegativeTerms
	}
	c.name = name
	c.taxID = strings.TrimSpace(p.TaxID)
	c.email = email
	c.phone = strings.TrimSpace(p.Phone)
	c.terms = Terms{
		DiscountPercent:  p.Terms.DiscountPercent.Round(2),
		PaymentTermsDays: p.Terms.PaymentTermsDays,
	}
	return nil
}

func (c *Company) ID() uuid.UUID        { return c.id }
func (c *Company) Name() string         { return c.name }
func (c *Company) TaxID() string        { return c.taxID }
func (c *Company) Email() string        { return c.email }
func (c *Company) Phone() string        { return c.phone }
func (c *Company) Terms() Terms         { return c.terms }
func (c *Company) IsActive() bool       { return c.isActive }
func (c *Company) CreatedAt() time.Time { return c.createdAt }
func (c *Company) UpdatedAt() time.Time { return c.updatedAt }

func (c *Company) DiscountPercent() decimal.Decimal { return c.terms.DiscountPercent }

func (c *Company) Profile() Profile {
	return Profile{Name: c.name, TaxID: c.taxID, Email: c.email, Phone: c.phone, Terms: c.terms}
}
