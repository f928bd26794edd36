package dashboard

import "errors"

var (
	ErrUpstream = errors.New("dashboard summary unavailable")
)
