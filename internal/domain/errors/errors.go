// Package errors defines the application-level error kinds the business
// layer returns. Business-rule violations are expected outcomes reported to
// the caller; only persistence failures are treated as system faults.
package errors

import (
	"fmt"
	"net/http"

	"storefront/internal/errors"
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

// Predefined error kinds
var (
	// ErrAuthFailed is returned when login credentials do not match any user.
	ErrAuthFailed = NewBaseError(
		http.StatusUnauthorized,
		"AUTH_FAILED",
		"invalid name or credential",
		"",
	)

	// ErrForbidden is returned when the principal's role does not permit the operation.
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"your role does not permit this operation",
		"",
	)

	// ErrNotStoreOwner is returned when a manager targets a store they do not own.
	// Distinct from ErrForbidden: the role is right, the store is not.
	ErrNotStoreOwner = NewBaseError(
		http.StatusForbidden,
		"NOT_STORE_OWNER",
		"you do not manage this store",
		"",
	)

	// ErrLocationUnavailable is returned when a proximity-scoped operation is
	// attempted by a principal with no recorded location.
	ErrLocationUnavailable = NewBaseError(
		http.StatusUnprocessableEntity,
		"LOCATION_UNAVAILABLE",
		"no recorded location for this user",
		"",
	)

	// ErrStoreTooFar is returned when the target store is outside the visibility radius.
	ErrStoreTooFar = NewBaseError(
		http.StatusUnprocessableEntity,
		"STORE_TOO_FAR",
		"store is outside your ordering radius",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"no such user",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"this name is already registered",
		"",
	)

	ErrStoreNotFound = NewBaseError(
		http.StatusNotFound,
		"STORE_NOT_FOUND",
		"no such store",
		"",
	)

	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"no such product at this store",
		"",
	)

	ErrWarehouseNotFound = NewBaseError(
		http.StatusNotFound,
		"WAREHOUSE_NOT_FOUND",
		"no such warehouse",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)
)

// InsufficientStockError reports that an order asked for more units than the
// store has. It is an expected outcome, not a fault, and carries the quantity
// actually available so the caller can inform the user.
type InsufficientStockError struct {
	Available int
}

// NewInsufficientStock creates an InsufficientStockError for the given availability.
func NewInsufficientStock(available int) *InsufficientStockError {
	return &InsufficientStockError{Available: available}
}

// Error implements the error interface
func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: only %d units available", e.Available)
}

// HTTPCode returns the HTTP status code
func (e *InsufficientStockError) HTTPCode() int {
	return http.StatusConflict
}

// ErrorCode returns the business error code
func (e *InsufficientStockError) ErrorCode() string {
	return "INSUFFICIENT_STOCK"
}

// Message returns the user-friendly error message
func (e *InsufficientStockError) Message() string {
	return e.Error()
}

// Details returns detailed error information
func (e *InsufficientStockError) Details() string {
	return fmt.Sprintf("available=%d", e.Available)
}

// DatabaseExecuteError represents a persistence-layer failure, the only error
// kind that aborts an in-progress multi-step sequence.
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
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// Unwrap exposes the wrapped persistence error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}
