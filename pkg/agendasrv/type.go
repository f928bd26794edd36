package agendasrv

import pkghttp "agenda-bff/pkg/http"

// AgendaConfig holds configuration for the agenda backend client.
type AgendaConfig struct {
	HTTPClient pkghttp.IClient
}

// ListQuery is one page request against a collection endpoint.
type ListQuery struct {
	Limit  int
	Skip   int
	Filter string // sent as filtro, omitted when empty
}

// DashboardSummary is the record count summary.
type DashboardSummary struct {
	Cadastros    int  `json:"cadastros"`
	Agendamentos int  `json:"agendamentos"`
	Funcionarios *int `json:"funcionarios,omitempty"`
}

// DashboardActivity counts agendamentos by period.
type DashboardActivity struct {
	Hoje      int `json:"hoje"`
	Semana    int `json:"semana"`
	AtivosMes int `json:"ativos_mes"`
}

// agendaImpl implements IAgenda.
type agendaImpl struct {
	httpClient pkghttp.IClient
}
