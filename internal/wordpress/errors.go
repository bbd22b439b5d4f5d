package wordpress

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport marks requests that did not produce an HTTP response.
	ErrTransport = errors.New("request failed")

	// ErrUnexpectedResponse marks success responses whose body does not match
	// the expected schema.
	ErrUnexpectedResponse = errors.New("unexpected response shape")
)

// APIError is returned when WordPress answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("wordpress returned status %d: %s", e.StatusCode, e.Body)
}

func unexpected(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUnexpectedResponse, fmt.Sprintf(format, args...))
}
