package agendasrv

import "time"

const (
	// DefaultTimeout is the default HTTP client timeout for the agenda backend.
	DefaultTimeout = 5 * time.Second
	// DefaultRetries is the default number of retries.
	DefaultRetries = 1
	// DefaultRetryWait is the default wait between retries.
	DefaultRetryWait = 500 * time.Millisecond
)

// API paths. The trailing slash on collections matches the backend routes.
const (
	PathCadastros          = "/api/cadastros/"
	PathAgendamentos       = "/api/agendamentos/"
	PathDashboardSummary   = "/api/dashboard/summary"
	PathDashboardAtividade = "/api/dashboard/atividade"
)

// Query parameter names.
const (
	ParamLimit  = "limit"
	ParamSkip   = "skip"
	ParamFilter = "filtro"
)
