package upstream

import (
	"errors"
	"fmt"
)

// Sentinel errors for upstream calls.
var (
	ErrDecode        = errors.New("failed to decode upstream response")
	ErrEmptyResponse = errors.New("upstream returned an empty response")
	ErrUnavailable   = errors.New("upstream temporarily unavailable")
)

// StatusError is returned when an upstream answers with a non-2xx status.
type StatusError struct {
	Upstream   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: unexpected status %d", e.Upstream, e.StatusCode)
	}
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Upstream, e.StatusCode, e.Body)
}

// IsStatus reports whether err is a StatusError.
func IsStatus(err error) bool {
	var se *StatusError
	return errors.As(err, &se)
}
