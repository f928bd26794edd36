// Package cadastro lists person registrations. The filter is free text
// matched by the backend.
package cadastro

import (
	"agenda-bff/internal/listing"
	"agenda-bff/internal/listing/usecase"
	"agenda-bff/internal/model"
	"agenda-bff/pkg/agendasrv"
	"agenda-bff/pkg/log"
	"agenda-bff/pkg/metrics"
)

const (
	Entity      = "cadastros"
	ResponseKey = "cadastros"
)

// NewDescriptor returns the cadastro collection descriptor with limit items per page.
func NewDescriptor(limit int) listing.Descriptor {
	return listing.Descriptor{
		Entity:      Entity,
		Path:        agendasrv.PathCadastros,
		ResponseKey: ResponseKey,
		Limit:       limit,
	}
}

// NewController returns a typed controller over cadastros.
func NewController(agenda agendasrv.IAgenda, l log.Logger, m metrics.IMetrics, limit int, cfg usecase.Config) listing.Controller[model.Cadastro] {
	return usecase.NewController[model.Cadastro](agenda, l, m, NewDescriptor(limit), cfg)
}

// NewFactory registers cadastros with the listing use case.
func NewFactory(agenda agendasrv.IAgenda, l log.Logger, m metrics.IMetrics, limit int, cfg usecase.Config) listing.Factory {
	return usecase.NewFactory[model.Cadastro](agenda, l, m, NewDescriptor(limit), cfg)
}
