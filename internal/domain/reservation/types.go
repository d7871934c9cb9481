package reservation

import "fmt"

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusCheckedIn  Status = "checked_in"
	StatusCheckedOut Status = "checked_out"
	StatusCancelled  Status = "cancelled"
	StatusBlocked    Status = "blocked"
)

var AllStatuses = []Status{
	StatusPending, StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled, StatusBlocked,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled, StatusBlocked:
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

type InvoiceStatus string

const (
	InvoiceNone    InvoiceStatus = "none"
	InvoicePending InvoiceStatus = "pending"
	InvoiceIssued  InvoiceStatus = "issued"
)

func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceNone, InvoicePending, InvoiceIssued:
		return true
	default:
		return false
	}
}

const codePrefix = "R-"

// FormatCode renders a sequence value as the human-facing reservation code, e.g. R-000042.
func FormatCode(seq int64) string {
	return fmt.Sprintf("%s%06d", codePrefix, seq)
}
