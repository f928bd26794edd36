package http

import "time"

const (
	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 5 * time.Second
	// DefaultRetries is the default number of retries for idempotent requests.
	DefaultRetries = 1
	// DefaultRetryWait is the default wait between retries.
	DefaultRetryWait = 500 * time.Millisecond
	// DefaultBaseURL is used when the config leaves the base URL empty.
	DefaultBaseURL = "http://localhost:8000"

	headerContentType = "Content-Type"
	headerAccept      = "Accept"
	headerRequestID   = "X-Request-ID"
	contentTypeJSON   = "application/json"

	// maxErrorBody caps how much of an error body is kept on RequestError.
	maxErrorBody = 4 << 10
)

// DefaultConfig returns default ClientConfig.
func DefaultConfig() ClientConfig {
	return ClientConfig{
		BaseURL:   DefaultBaseURL,
		Timeout:   DefaultTimeout,
		Retries:   DefaultRetries,
		RetryWait: DefaultRetryWait,
	}
}
