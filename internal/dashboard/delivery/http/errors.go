package http

import (
	"errors"
	"net/http"

	"agenda-bff/internal/dashboard"
	pkgErrors "agenda-bff/pkg/errors"
)

var (
	errUpstream = pkgErrors.NewHTTPError(
		http.StatusBadGateway, "Não foi possível carregar o resumo",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, dashboard.ErrUpstream):
		return errUpstream
	default:
		return err
	}
}
