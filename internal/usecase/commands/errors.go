package commands

import (
	"hostel-admin/internal/infra"
	"hostel-admin/internal/pkg/errs"
)

var (
	ErrInvalidCredentials  = errs.New("invalid email or password")
	ErrUserInactive        = errs.New("user account is inactive")
	ErrTokenGeneration     = errs.New("token generation failed")
	ErrEmailTaken          = errs.New("a user with this email already exists")
	ErrRoomCodeTaken       = errs.New("a room with this code already exists")
	ErrCompanyNameTaken    = errs.New("a company with this name already exists")
	ErrReservationConflict = errs.New("reservation conflict")
	ErrMissingReference    = errs.New("a referenced record does not exist")
	ErrPaymentNotFound     = errs.New("payment not found")
	ErrNoRecipient         = errs.New("no email address to send the voucher to")
	ErrVoucherNotSent      = errs.New("voucher could not be sent")
)

func invalid(err error) error {
	return errs.Mark(err, errs.ErrValidation)
}

func notFoundAs(err, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Categorize(err, sentinel, errs.ErrNotFound)
	}
	return err
}

// storeErr turns the constraint violations a write can trip into caller-facing errors.
// duplicate is reported when a unique key is violated.
func storeErr(err, duplicate error) error {
	switch {
	case err == nil:
		return nil
	case duplicate != nil && infra.IsKind(err, infra.KindDuplicateKey):
		return errs.Mark(duplicate, errs.ErrConflict)
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.Mark(ErrMissingReference, errs.ErrValidation)
	case infra.IsKind(err, infra.KindCheckViolated):
		return invalid(err)
	default:
		return err
	}
}
