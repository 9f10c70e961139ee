package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/feral-file/ff-economy/internal/domain"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeBadRequest       ErrorCode = "bad_request"
	ErrCodeNotFound         ErrorCode = "not_found"
	ErrCodeValidationFailed ErrorCode = "validation_failed"
	ErrCodeUnauthorized     ErrorCode = "unauthorized"
	ErrCodeForbidden        ErrorCode = "forbidden"
	ErrCodeRateLimited      ErrorCode = "rate_limited"

	// Server errors (5xx)
	ErrCodeInternalError ErrorCode = "internal_error"
	ErrCodeServiceError  ErrorCode = "service_error"
)

// APIError represents a structured API error that carries error code and details
type APIError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Retryable bool      `json:"retryable"`
	// Inconsistencies are the journal entries opened for an operation that failed after
	// an irreversible step
	Inconsistencies []int64 `json:"inconsistencies,omitempty"`
}

func (e *APIError) Error() string {
	jsonErr, _ := json.Marshal(e)
	return string(jsonErr)
}

// Response is the error body of every endpoint
type Response struct {
	Error *APIError `json:"error"`
}

func newError(code ErrorCode, message string, details []string) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewBadRequestError(message string, details ...string) *APIError {
	return newError(ErrCodeBadRequest, message, details)
}

func NewNotFoundError(message string, details ...string) *APIError {
	return newError(ErrCodeNotFound, message, details)
}

func NewValidationError(details ...string) *APIError {
	return newError(ErrCodeValidationFailed, "Validation failed", details)
}

func NewUnauthorizedError(message string, details ...string) *APIError {
	return newError(ErrCodeUnauthorized, message, details)
}

func NewForbiddenError(message string, details ...string) *APIError {
	return newError(ErrCodeForbidden, message, details)
}

func NewRateLimitedError(message string, details ...string) *APIError {
	e := newError(ErrCodeRateLimited, message, details)
	e.Retryable = true
	return e
}

func NewInternalError(message string, details ...string) *APIError {
	return newError(ErrCodeInternalError, message, details)
}

// statusByKind maps an engine error kind to its HTTP status
var statusByKind = map[domain.Kind]int{
	domain.KindNotFound:               http.StatusNotFound,
	domain.KindValidation:             http.StatusUnprocessableEntity,
	domain.KindInvalidState:           http.StatusConflict,
	domain.KindInsufficientResource:   http.StatusBadRequest,
	domain.KindConflict:               http.StatusConflict,
	domain.KindForbidden:              http.StatusForbidden,
	domain.KindExternalServiceFailure: http.StatusBadGateway,
}

// FromError converts an engine error into its HTTP status and body.
// Errors that are not domain errors become an opaque internal error.
func FromError(err error) (int, *APIError) {
	var inconsistencies []int64
	var je *domain.JournaledError
	if errors.As(err, &je) && je.InconsistencyID > 0 {
		inconsistencies = []int64{je.InconsistencyID}
	}

	var de *domain.Error
	if !errors.As(err, &de) {
		e := NewInternalError("Internal server error")
		e.Inconsistencies = inconsistencies
		return http.StatusInternalServerError, e
	}

	status, ok := statusByKind[de.Kind]
	if !ok {
		status = http.StatusInternalServerError
	}

	e := &APIError{
		Code:            ErrorCode(de.Code),
		Message:         de.Message,
		Retryable:       de.Retryable,
		Inconsistencies: inconsistencies,
	}
	if de.Err != nil && de.Kind == domain.KindExternalServiceFailure {
		e.Details = de.Err.Error()
	}
	return status, e
}
