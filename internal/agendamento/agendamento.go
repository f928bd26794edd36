package agendamento

import (
	"agenda-bff/internal/listing"
	"agenda-bff/internal/listing/usecase"
	"agenda-bff/internal/model"
	"agenda-bff/pkg/agendasrv"
	"agenda-bff/pkg/log"
	"agenda-bff/pkg/metrics"
)

const (
	Entity      = "agendamentos"
	ResponseKey = "agendamentos"
)

// Filter tokens understood by the backend.
const (
	FilterTodos       = "todos"
	FilterHoje        = "hoje"
	FilterSemana      = "semana"
	FilterMes         = "mes"
	FilterReuniao     = model.TipoReuniao
	FilterConsulta    = model.TipoConsulta
	FilterEvento      = model.TipoEvento
	FilterCompromisso = model.TipoCompromisso
	FilterOutros      = model.TipoOutros
	FilterPendente    = "pendente"
	FilterConcluido   = "concluido"
)

// Filters in display order. Period first, then tipo de sessão, then status.
var Filters = []listing.FilterOption{
	{Value: FilterTodos, Label: "Todos"},
	{Value: FilterHoje, Label: "Hoje"},
	{Value: FilterSemana, Label: "Esta Semana"},
	{Value: FilterMes, Label: "Este Mês"},
	{Value: FilterReuniao, Label: "Reuniões"},
	{Value: FilterConsulta, Label: "Consultas"},
	{Value: FilterEvento, Label: "Eventos"},
	{Value: FilterCompromisso, Label: "Compromissos"},
	{Value: FilterOutros, Label: "Outros"},
	{Value: FilterPendente, Label: "Pendentes"},
	{Value: FilterConcluido, Label: "Concluídos"},
}

// NewDescriptor returns the agendamento collection descriptor with limit items per page.
// "todos" is the default and is never sent upstream.
func NewDescriptor(limit int) listing.Descriptor {
	filters := make([]listing.FilterOption, len(Filters))
	copy(filters, Filters)
	return listing.Descriptor{
		Entity:        Entity,
		Path:          agendasrv.PathAgendamentos,
		ResponseKey:   ResponseKey,
		DefaultFilter: FilterTodos,
		Limit:         limit,
		Filters:       filters,
	}
}

// NewController returns a typed controller over agendamentos.
func NewController(agenda agendasrv.IAgenda, l log.Logger, m metrics.IMetrics, limit int, cfg usecase.Config) listing.Controller[model.Agendamento] {
	return usecase.NewController[model.Agendamento](agenda, l, m, NewDescriptor(limit), cfg)
}

// NewFactory registers agendamentos with the listing use case.
func NewFactory(agenda agendasrv.IAgenda, l log.Logger, m metrics.IMetrics, limit int, cfg usecase.Config) listing.Factory {
	return usecase.NewFactory[model.Agendamento](agenda, l, m, NewDescriptor(limit), cfg)
}
