package room

type Status string

const (
	StatusAvailable    Status = "available"
	StatusOccupied     Status = "occupied"
	StatusMaintenance  Status = "maintenance"
	StatusCleaning     Status = "cleaning"
	StatusOutOfService Status = "out_of_service"
	StatusArchived     Status = "archived"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusOccupied, StatusMaintenance, StatusCleaning, StatusOutOfService, StatusArchived:
		return true
	default:
		return false
	}
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}
