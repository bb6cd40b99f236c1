package http

import (
	"errors"
	"net/http"

	"github.com/belenfg/restaurant-chatbot/internal/chat"
	pkgErrors "github.com/belenfg/restaurant-chatbot/pkg/errors"
)

var errMissingSessionID = pkgErrors.NewHTTPError(http.StatusBadRequest, "session id is required")

// mapError translates chat usecase errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, chat.ErrSessionNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, chat.ErrRateLimited):
		return pkgErrors.NewHTTPError(http.StatusTooManyRequests, err.Error())
	case errors.Is(err, chat.ErrEmptyMessage), errors.Is(err, chat.ErrInvalidSession):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
