package http

import (
	"errors"
	"net/http"

	"github.com/belenfg/restaurant-chatbot/internal/reservation"
	pkgErrors "github.com/belenfg/restaurant-chatbot/pkg/errors"
)

var (
	errInvalidDate = pkgErrors.NewHTTPError(http.StatusBadRequest, "date must be YYYY-MM-DD or DD/MM/YYYY")
	errInvalidTime = pkgErrors.NewHTTPError(http.StatusBadRequest, "time must be HH:MM")
)

// mapError translates reservation usecase errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, reservation.ErrCustomerNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, reservation.ErrInvalidInput):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
