package http

import (
	"errors"
	"net/http"

	"voice-scheduler/internal/event"
	pkgErrors "voice-scheduler/pkg/errors"
)

var (
	errMissingID      = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
	errInvalidDate    = pkgErrors.NewHTTPError(http.StatusBadRequest, "date must be YYYY-MM-DD")
	errInvalidTime    = pkgErrors.NewHTTPError(http.StatusBadRequest, "time must be HH:MM")
	errInvalidRefTime = pkgErrors.NewHTTPError(http.StatusBadRequest, "reference_time must be RFC3339")

	errInvalidRangeBound = pkgErrors.NewHTTPError(http.StatusBadRequest,
		"from and to must be YYYY-MM-DD, today, tomorrow, yesterday, next <weekday> or in <n> days|weeks|months")
)

// mapError translates domain errors into HTTP errors from pkg/errors.
// Anything unrecognised is an internal error.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, event.ErrEventNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, event.ErrInvalidScope):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, event.ErrInvalidTitle),
		errors.Is(err, event.ErrInvalidDate),
		errors.Is(err, event.ErrInvalidTime),
		errors.Is(err, event.ErrInvalidTimeRange),
		errors.Is(err, event.ErrInvalidType),
		errors.Is(err, event.ErrInvalidPriority),
		errors.Is(err, event.ErrInvalidDateRange):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
