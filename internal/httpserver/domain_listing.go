package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"agenda-bff/internal/agendamento"
	"agenda-bff/internal/cadastro"
	listingHTTP "agenda-bff/internal/listing/delivery/http"
	listingMemory "agenda-bff/internal/listing/repository/memory"
	listingUsecase "agenda-bff/internal/listing/usecase"
	"agenda-bff/internal/middleware"
)

func (srv *HTTPServer) setupListingDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	lc := srv.config.Listing
	cfg := listingUsecase.Config{
		WindowSize: lc.WindowSize,
		Debounce:   lc.Debounce(),
	}

	sessions := listingMemory.New(lc.MaxSessions, lc.TTL(), srv.l, srv.metrics)
	srv.sessions = sessions

	uc := listingUsecase.New(sessions, srv.l,
		cadastro.NewFactory(srv.agenda, srv.l, srv.metrics, lc.PageSize, cfg),
		agendamento.NewFactory(srv.agenda, srv.l, srv.metrics, lc.PageSize, cfg),
	)

	handler := listingHTTP.New(srv.l, uc)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Listing domain registered (page size %d, session ttl %s)", lc.PageSize, lc.TTL())
	return nil
}
