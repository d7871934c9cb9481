package queries

import (
	"hostel-admin/internal/infra"
	"hostel-admin/internal/pkg/errs"
)

var (
	ErrRoomNotFound        = errs.New("room not found")
	ErrGuestNotFound       = errs.New("guest not found")
	ErrCompanyNotFound     = errs.New("company not found")
	ErrReservationNotFound = errs.New("reservation not found")
	ErrUserNotFound        = errs.New("user not found")
	ErrUserInactive        = errs.New("user inactive")
	ErrInvalidCursor       = errs.New("invalid cursor")
)

// notFoundAs tags a repository NOT_FOUND with the query-level sentinel.
func notFoundAs(err error, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Categorize(err, sentinel, errs.ErrNotFound)
	}
	return err
}
