package metrics

const namespace = "agenda_bff"

// List fetch outcomes.
const (
	OutcomeOK               = "ok"
	OutcomeError            = "error"
	OutcomeUnexpectedFormat = "unexpected_format"
	OutcomeStale            = "stale"
)

// StatusTransport labels upstream calls that never got an HTTP status.
const StatusTransport = 0
