package util

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/spec-kit/gym-portal/internal/upstream"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError("VALIDATION_FAILED", message, http.StatusBadRequest, details)
}

func NewNotFound(resource string, details map[string]any) error {
	if details == nil {
		details = map[string]any{}
	}
	return &DomainError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
		Details:    details,
	}
}

func NewUnauthorized(message string) error {
	return NewDomainError("UNAUTHORIZED", message, http.StatusUnauthorized, nil)
}

func NewUpstreamRejected(status int, message string) error {
	return &DomainError{
		Code:       "UPSTREAM_REJECTED",
		Message:    message,
		HTTPStatus: status,
	}
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError. Upstream errors
// keep their taxonomy: a rejection carries its original status through,
// a transport failure maps to 502, a missing credential to 401.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	if errors.Is(err, upstream.ErrMissingCredential) {
		return &DomainError{
			Code:       "UNAUTHORIZED",
			Message:    err.Error(),
			HTTPStatus: http.StatusUnauthorized,
			Err:        err,
		}
	}
	if apiErr, ok := upstream.AsAPIError(err); ok {
		if apiErr.Transport() {
			return &DomainError{
				Code:       "UPSTREAM_UNAVAILABLE",
				Message:    apiErr.Message,
				HTTPStatus: http.StatusBadGateway,
				Err:        err,
			}
		}
		return &DomainError{
			Code:       "UPSTREAM_REJECTED",
			Message:    apiErr.Message,
			HTTPStatus: apiErr.Status,
			Err:        err,
		}
	}
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func MapError(err error) error {
	return ToDomainError(err)
}
