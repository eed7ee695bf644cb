// Package errors defines the application error hierarchy shared by the
// planning engine, the usecases and the HTTP delivery.
package errors

import (
	"net/http"

	"plow/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Validation errors
	ErrInvalidCoordinate = NewBaseError(
		http.StatusBadRequest,
		"INVALID_COORDINATE",
		"Coordinate is outside valid bounds",
		"",
	)

	ErrInvalidPriorityWeight = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PRIORITY_WEIGHT",
		"Priority weight must be between 0 and 1",
		"",
	)

	ErrInvalidETAInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ETA_INPUT",
		"ETA inputs must be non-negative and finite",
		"",
	)

	// Reorder errors
	ErrReorderIndexOutOfRange = NewBaseError(
		http.StatusBadRequest,
		"REORDER_INDEX_OUT_OF_RANGE",
		"Reorder index is outside the reorderable stops",
		"",
	)

	// Lookup errors
	ErrOperatorNotFound = NewBaseError(
		http.StatusNotFound,
		"OPERATOR_NOT_FOUND",
		"Operator not found",
		"",
	)

	ErrJobNotFound = NewBaseError(
		http.StatusNotFound,
		"JOB_NOT_FOUND",
		"Job not found",
		"",
	)

	ErrJobUnassigned = NewBaseError(
		http.StatusConflict,
		"JOB_UNASSIGNED",
		"Job has no assigned operator yet",
		"",
	)

	ErrPricingTierNotFound = NewBaseError(
		http.StatusNotFound,
		"PRICING_TIER_NOT_FOUND",
		"Pricing tier not found",
		"",
	)

	// Planning errors
	ErrRouteSuperseded = NewBaseError(
		http.StatusConflict,
		"ROUTE_SUPERSEDED",
		"Route computation was superseded by a newer request",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
