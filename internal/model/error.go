// internal/model/error.go
package model

import "errors"

// Application level sentinel errors. Every error returned from the service
// layer wraps exactly one of these.
var (
	ErrNotFound            = errors.New("resource not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrTransactionFailure  = errors.New("transaction failure")
	ErrInternalServer      = errors.New("internal server error")
	ErrForbidden           = errors.New("forbidden")
	ErrUnauthorized        = errors.New("unauthorized")
)

// ErrorDetail is the client-facing part of an error.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// APIErrorResponse is the JSON body written for every failed request.
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// AppError pairs a sentinel error with a message that is safe to show to the user.
type AppError struct {
	Detail ErrorDetail
	Err    error
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{
		Detail: ErrorDetail{Code: code, Message: message, Field: field},
		Err:    err,
	}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Detail.Message
	}
	return e.Detail.Message + ": " + e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// IsRetryable reports whether the caller may retry the operation that produced err.
// Only transaction failures are transient; validation and constraint errors are not.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrTransactionFailure)
}
