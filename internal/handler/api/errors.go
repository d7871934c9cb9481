package api

import (
	"errors"
	"net/http"

	"hostel-admin/internal/domain/reservation"
	"hostel-admin/internal/handler/httperr"
	"hostel-admin/internal/handler/middleware"
	"hostel-admin/internal/pkg/errs"
	"hostel-admin/internal/usecase/commands"
	"hostel-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidNumber = errors.New("invalid number")
	errNoUserContext = errors.New("user missing from auth context")
	errMissingParam  = errors.New("missing query parameter")
	errWindowTooLong = errors.New("date window too long")
)

// abortWithUseCaseError picks the status from the error category. Validation and conflict
// messages are written for staff and pass through; notFoundMsg names what was missing.
func abortWithUseCaseError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errs.Is(err, errs.ErrValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, err.Error(), nil)
	case errs.Is(err, errs.ErrNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, notFoundMsg, nil)
	case errs.Is(err, errs.ErrConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, err.Error(), conflictDetail(err))
	case errs.Is(err, errs.ErrUnauthorized):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, err.Error(), nil)
	case errs.Is(err, errs.ErrForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, err.Error(), nil)
	case errs.Is(err, commands.ErrVoucherNotSent):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Voucher could not be rendered or sent", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func conflictDetail(err error) any {
	var conflict *reservation.ConflictError
	if !errs.As(err, &conflict) {
		return nil
	}
	return queries.ConflictView{
		ReservationID: conflict.Conflict.ID,
		Code:          conflict.Conflict.Code,
		CheckIn:       conflict.Conflict.Stay.Start,
		CheckOut:      conflict.Conflict.Stay.End,
	}
}

// abortWithBindError answers a request the binder rejected.
func abortWithBindError(c *gin.Context, err error) {
	details := middleware.ValidationDetails(err)
	if details == nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Request validation failed", details)
}
