package upstream

import (
	"errors"
	"fmt"
)

// ErrMissingCredential is returned when a credential-aware client is
// asked to call a protected endpoint with no bearer token configured.
// Failing fast here keeps unauthenticated requests from ever reaching
// the upstream service.
var ErrMissingCredential = errors.New("bearer credential not configured")

// APIError is the normalized error for a failed upstream call. Status
// carries the upstream HTTP status code; a Status of zero marks a
// transport failure, where the call never completed and Unwrap exposes
// the underlying network error.
type APIError struct {
	Status  int
	Message string
	cause   error
}

// NewTransportError wraps a transport-level failure (network, DNS,
// timeout) as an APIError with no status code.
func NewTransportError(err error) *APIError {
	return &APIError{Message: err.Error(), cause: err}
}

func (e *APIError) Error() string {
	if e.Transport() {
		return fmt.Sprintf("upstream call failed: %s", e.Message)
	}
	return fmt.Sprintf("upstream returned %d: %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.cause
}

// Transport reports whether the error is a transport failure rather
// than a completed non-success response.
func (e *APIError) Transport() bool {
	return e.Status == 0
}

// AsAPIError unwraps err into an APIError when it carries one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
