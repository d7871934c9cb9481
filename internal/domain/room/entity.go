package room

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	MaxCodeLength = 20
	MaxNameLength = 100
)

var (
	ErrEmptyCode       = errors.New("room code cannot be empty")
	ErrCodeTooLong     = errors.New("room code is too long (max 20 characters)")
	ErrEmptyName       = errors.New("room name cannot be empty")
	ErrNameTooLong     = errors.New("room name is too long (max 100 characters)")
	ErrEmptyType       = errors.New("room type cannot be empty")
	ErrInvalidCapacity = errors.New("room must fit at least one adult and children cannot be negative")
	ErrNegativeRate    = errors.New("base rate cannot be negative")
	ErrInvalidCurrency = errors.New("currency must be a 3-letter code")
	ErrInvalidStatus   = errors.New("invalid room status")
	ErrArchived        = errors.New("room is archived")
	ErrUseArchive      = errors.New("use archive to retire a room")
)

type Room struct {
	id               uuid.UUID
	code             string
	name             string
	roomType         string
	capacityAdults   int
	capacityChildren int
	status           Status
	baseRate         decimal.Decimal
	currency         string
	sortOrder        int
	createdAt        time.Time
	updatedAt        time.Time
}

type Attributes struct {
	Code             string
	Name             string
	RoomType         string
	CapacityAdults   int
	CapacityChildren int
	BaseRate         decimal.Decimal
	Currency         string
	SortOrder        int
}

func NewRoom(attrs Attributes) (*Room, error) {
	r := &Room{
		id:     uuid.New(),
		status: StatusAvailable,
	}
	if err := r.apply(attrs); err != nil {
		return nil, err
	}
	return r, nil
}

func ReconstructRoom(
	id uuid.UUID,
	attrs Attributes,
	status Status,
	createdAt, updatedAt time.Time,
) *Room {
	return &Room{
		id:               id,
		code:             attrs.Code,
		name:             attrs.Name,
		roomType:         attrs.RoomType,
		capacityAdults:   attrs.CapacityAdults,
		capacityChildren: attrs.CapacityChildren,
		status:           status,
		baseRate:         attrs.BaseRate,
		currency:         attrs.Currency,
		sortOrder:        attrs.SortOrder,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// Update replaces the editable attributes. Archived rooms are read-only.
func (r *Room) Update(attrs Attributes) error {
	if r.status == StatusArchived {
		return ErrArchived
	}
	return r.apply(attrs)
}

func (r *Room) ChangeStatus(s Status) error {
	if !s.IsValid() {
		return ErrInvalidStatus
	}
	if r.status == StatusArchived {
		return ErrArchived
	}
	if s == StatusArchived {
		return ErrUseArchive
	}
	r.status = s
	return nil
}

// Archive is the only way a room leaves the inventory; rows referenced by reservations are never deleted.
func (r *Room) Archive() {
	r.status = StatusArchived
}

// IsBookable reports whether new stays may be placed in the room.
func (r *Room) IsBookable() bool {
	return r.status != StatusArchived
}

func (r *Room) apply(attrs Attributes) error {
	code := strings.ToUpper(strings.TrimSpace(attrs.Code))
	name := strings.TrimSpace(attrs.Name)
	roomType := strings.ToLower(strings.TrimSpace(attrs.RoomType))
	currency := strings.ToUpper(strings.TrimSpace(attrs.Currency))

	switch {
	case code == "":
		return ErrEmptyCode
	case len(code) > MaxCodeLength:
		return ErrCodeTooLong
	case name == "":
		return ErrEmptyName
	case len(name) > MaxNameLength:
		return ErrNameTooLong
	case roomType == "":
		return ErrEmptyType
	case attrs.CapacityAdults < 1 || attrs.CapacityChildren < 0:
		return ErrInvalidCapacity
	case attrs.BaseRate.IsNegative():
		return ErrNegativeRate
	case len(currency) != 3:
		return ErrInvalidCurrency
	}

	r.code = code
	r.name = name
	r.roomType = roomType
	r.capacityAdults = attrs.CapacityAdults
	r.capacityChildren = attrs.CapacityChildren
	r.baseRate = attrs.BaseRate.Round(2)
	r.currency = currency
	r.sortOrder = attrs.SortOrder
	return nil
}

func (r *Room) ID() uuid.UUID             { return r.id }
func (r *Room) Code() string              { return r.code }
func (r *Room) Name() string              { return r.name }
func (r *Room) RoomType() string          { return r.roomType }
func (r *Room) CapacityAdults() int       { return r.capacityAdults }
func (r *Room) CapacityChildren() int     { return r.capacityChildren }
func (r *Room) Status() Status            { return r.status }
func (r *Room) BaseRate() decimal.Decimal { return r.baseRate }
func (r *Room) Currency() string          { return r.currency }
func (r *Room) SortOrder() int            { return r.sortOrder }
func (r *Room) CreatedAt() time.Time      { return r.createdAt }
func (r *Room) UpdatedAt() time.Time      { return r.updatedAt }

func (r *Room) Attributes() Attributes {
	return Attributes{
		Code:             r.code,
		Name:             r.name,
		RoomType:         r.roomType,
		CapacityAdults:   r.capacityAdults,
		CapacityChildren: r.capacityChildren,
		BaseRate:         r.baseRate,
		Currency:         r.currency,
		SortOrder:        r.sortOrder,
	}
}

// Fits reports whether a party of the given size fits the room.
func (r *Room) Fits(adults, children int) bool {
	return adults <= r.capacityAdults && children <= r.capacityChildren
}
