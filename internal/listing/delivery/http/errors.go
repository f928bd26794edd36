package http

import (
	"errors"
	"net/http"

	"agenda-bff/internal/listing"
	pkgErrors "agenda-bff/pkg/errors"
)

var (
	errSessionNotFound = pkgErrors.NewHTTPError(
		http.StatusNotFound, "Session not found",
	)
	errUnknownEntity = pkgErrors.NewHTTPError(
		http.StatusNotFound, "Unknown list",
	)
	errInvalidFilter = pkgErrors.NewHTTPError(
		http.StatusBadRequest, "Invalid filter",
	)
	errInvalidPage = pkgErrors.NewHTTPError(
		http.StatusBadRequest, "Page must be a positive integer",
	)
	errWrongBody = pkgErrors.NewHTTPError(
		http.StatusBadRequest, "Wrong body",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, listing.ErrSessionNotFound):
		return errSessionNotFound
	case errors.Is(err, listing.ErrUnknownEntity):
		return errUnknownEntity
	case errors.Is(err, listing.ErrInvalidFilter):
		return errInvalidFilter
	case errors.Is(err, listing.ErrInvalidPage):
		return errInvalidPage
	default:
		return err
	}
}
