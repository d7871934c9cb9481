package queries

import (
	"time"

	"hostel-admin/internal/pkg/dates"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RoomView struct {
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

type GuestView struct {
	ID          uuid.UUID `json:"id"`
	FullName    string    `json:"full_name"`
	DocumentID  string    `json:"document_id"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Nationality string    `json:"nationality"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CompanyView struct {
	ID               uuid.UUID       `json:"id"`
	Name             string          `json:"name"`
	TaxID            string          `json:"tax_id"`
	Email            string          `json:"email"`
	Phone            string          `json:"phone"`
	DiscountPercent  decimal.Decimal `json:"discount_percent"`
	PaymentTermsDays int             `json:"payment_terms_days"`
	IsActive         bool            `json:"is_active"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

type CompanionView struct {
	FullName    string `json:"full_name"`
	DocumentID  string `json:"document_id"`
	Nationality string `json:"nationality"`
}

// ReservationView is a reservation joined with the names staff read it by.
type ReservationView struct {
	ID            uuid.UUID       `json:"id"`
	Code          string          `json:"code"`
	RoomID        uuid.UUID       `json:"room_id"`
	RoomCode      string          `json:"room_code"`
	RoomName      string          `json:"room_name"`
	GuestID       uuid.UUID       `json:"guest_id"`
	GuestName     string          `json:"guest_name"`
	GuestEmail    string          `json:"guest_email"`
	CompanyID     *uuid.UUID      `json:"company_id,omitempty"`
	CompanyName   *string         `json:"company_name,omitempty"`
	CheckIn       dates.Date      `json:"check_in"`
	CheckOut      dates.Date      `json:"check_out"`
	Nights        int             `json:"nights"`
	Status        string          `json:"status"`
	Adults        int             `json:"adults"`
	Children      int             `json:"children"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	Currency      string          `json:"currency"`
	InvoiceStatus string          `json:"invoice_status"`
	InvoiceNumber string          `json:"invoice_number"`
	InvoiceDate   *dates.Date     `json:"invoice_date,omitempty"`
	Notes         string          `json:"notes"`
	Source        string          `json:"source"`
	ArrivalTime   string          `json:"arrival_time"`
	BreakfastTime string          `json:"breakfast_time"`
	Companions    []CompanionView `json:"companions"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type ReservationListItem struct {
	ID          uuid.UUID       `json:"id"`
	Code        string          `json:"code"`
	RoomID      uuid.UUID       `json:"room_id"`
	RoomCode    string          `json:"room_code"`
	GuestID     uuid.UUID       `json:"guest_id"`
	GuestName   string          `json:"guest_name"`
	CompanyID   *uuid.UUID      `json:"company_id,omitempty"`
	CompanyName *string         `json:"company_name,omitempty"`
	CheckIn     dates.Date      `json:"check_in"`
	CheckOut    dates.Date      `json:"check_out"`
	Status      string          `json:"status"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

type PaymentView struct {
	ID              uuid.UUID       `json:"id"`
	Amount          decimal.Decimal `json:"amount"`
	Method          string          `json:"method"`
	DocumentType    string          `json:"document_type"`
	DocumentNumber  string          `json:"document_number"`
	PaidAt          time.Time       `json:"paid_at"`
	ReservationID   *uuid.UUID      `json:"reservation_id,omitempty"`
	ReservationCode *string         `json:"reservation_code,omitempty"`
	GuestID         *uuid.UUID      `json:"guest_id,omitempty"`
	GuestName       *string         `json:"guest_name,omitempty"`
	CompanyID       *uuid.UUID      `json:"company_id,omitempty"`
	CompanyName     *string         `json:"company_name,omitempty"`
	Notes           string          `json:"notes"`
	CreatedAt       time.Time       `json:"created_at"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	FullName  string     `json:"full_name"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	IsActive  bool       `json:"is_active"`
}
