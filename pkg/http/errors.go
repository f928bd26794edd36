package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// RequestError is returned for transport failures (StatusCode 0) and non-2xx responses.
type RequestError struct {
	Method     string
	Path       string
	StatusCode int
	// Detail is the server supplied message: the body's "detail", else its "message".
	Detail string
	Body   []byte
	Err    error
}

func (e *RequestError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
	}
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Message())
}

func (e *RequestError) Unwrap() error { return e.Err }

// Message is the text to show a user: server detail, then the underlying error, then the status text.
func (e *RequestError) Message() string {
	switch {
	case e.Detail != "":
		return e.Detail
	case e.Err != nil:
		return e.Err.Error()
	case e.StatusCode != 0:
		return http.StatusText(e.StatusCode)
	default:
		return "unknown API error"
	}
}

// IsTransport reports whether no HTTP response was received.
func (e *RequestError) IsTransport() bool { return e.StatusCode == 0 }

// IsValidation reports a 422 from the backend.
func (e *RequestError) IsValidation() bool { return e.StatusCode == http.StatusUnprocessableEntity }

// IsNotFound reports a 404 from the backend.
func (e *RequestError) IsNotFound() bool { return e.StatusCode == http.StatusNotFound }

// IsServer reports a 5xx from the backend.
func (e *RequestError) IsServer() bool { return e.StatusCode >= http.StatusInternalServerError }

// AsRequestError unwraps err into a *RequestError.
func AsRequestError(err error) (*RequestError, bool) {
	var reqErr *RequestError
	ok := errors.As(err, &reqErr)
	return reqErr, ok
}

// extractDetail pulls a readable message out of an error body.
// "detail" may be a string or a list of validation entries carrying "msg".
func extractDetail(body []byte) string {
	var payload struct {
		Detail  json.RawMessage `json:"detail"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}

	if len(payload.Detail) > 0 && string(payload.Detail) != "null" {
		var s string
		if err := json.Unmarshal(payload.Detail, &s); err == nil {
			if s != "" {
				return s
			}
		} else {
			var entries []struct {
				Msg string `json:"msg"`
			}
			if err := json.Unmarshal(payload.Detail, &entries); err == nil && len(entries) > 0 {
				msgs := make([]string, 0, len(entries))
				for _, e := range entries {
					if e.Msg != "" {
						msgs = append(msgs, e.Msg)
					}
				}
				if len(msgs) > 0 {
					return strings.Join(msgs, "; ")
				}
			}
			return string(payload.Detail)
		}
	}
	return payload.Message
}
