package api

import (
	"errors"
	"net/http"

	"github.com/luachlab/luach-api/internal/domain"
	"github.com/luachlab/luach-api/internal/hebcal"
	"github.com/luachlab/luach-api/internal/service/auth"
	"github.com/luachlab/luach-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes without
// leaking internal error details to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrWrongTokenType):
		return http.StatusUnauthorized

	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrInvalidCivilDate),
		errors.Is(err, domain.ErrEventDateEmpty),
		errors.Is(err, domain.ErrEventDateInvalid),
		errors.Is(err, domain.ErrEventTimeInvalid),
		errors.Is(err, domain.ErrEventTitleEmpty):
		return http.StatusBadRequest

	case errors.Is(err, hebcal.ErrCalendarUnsupported):
		return http.StatusServiceUnavailable

	default:
		// Includes hebcal.ErrBoundaryScan: an internal invariant defect.
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-facing message for the
// error, hiding internal details.
func GetSafeErrorMessage(err error) string {
	switch {
	case err == nil:
		return "An unexpected error occurred"

	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrWrongTokenType):
		return "Invalid token"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrEventNotFound):
		return "Event not found"

	case errors.Is(err, store.ErrEmailExists):
		return "Email already exists"

	case errors.Is(err, domain.ErrEventDateEmpty),
		errors.Is(err, domain.ErrEventDateInvalid),
		errors.Is(err, domain.ErrInvalidCivilDate):
		return "Invalid date"

	case errors.Is(err, domain.ErrEventTimeInvalid):
		return "Invalid time"

	case errors.Is(err, domain.ErrEventTitleEmpty):
		return "Event title is required"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	case errors.Is(err, hebcal.ErrCalendarUnsupported):
		return "Hebrew calendar is not supported on this server"

	default:
		return "An unexpected error occurred"
	}
}
