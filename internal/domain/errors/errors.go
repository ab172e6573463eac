package errors

import (
	"maps"
	"net/http"

	"sellerhub/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int                  // HTTP status code
	StatusCode() int                // Envelope status code (200/220/230 or the HTTP code)
	ErrorCode() string              // Business error code
	Message() string                // User-friendly error message
	Details() string                // Detailed error information (optional)
	FieldErrors() map[string]string // First message per invalid field (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode   int
	statusCode int
	errorCode  string
	message    string
	details    string
	fields     map[string]string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode, statusCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:   httpCode,
		statusCode: statusCode,
		errorCode:  errorCode,
		message:    message,
		details:    details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// Is matches errors derived from the same predefined error by their business code.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// StatusCode returns the envelope status code
func (e *BaseError) StatusCode() int {
	return e.statusCode
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

// FieldErrors returns the per-field messages, nil when the error is not field specific.
func (e *BaseError) FieldErrors() map[string]string {
	return e.fields
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	clone := e.clone()
	clone.details = details

	return clone
}

// WithMessage replaces the user-friendly message
func (e *BaseError) WithMessage(message string) *BaseError {
	clone := e.clone()
	clone.message = message

	return clone
}

// WithFields attaches per-field messages
func (e *BaseError) WithFields(fields map[string]string) *BaseError {
	clone := e.clone()
	clone.fields = maps.Clone(fields)

	return clone
}

func (e *BaseError) clone() *BaseError {
	return &BaseError{
		httpCode:   e.httpCode,
		statusCode: e.statusCode,
		errorCode:  e.errorCode,
		message:    e.message,
		details:    e.details,
		fields:     e.fields,
	}
}

// Predefined error types
var (
	// Validation errors are reported with HTTP 200 and a failed envelope.
	ErrValidationFailed = NewBaseError(
		http.StatusOK,
		StatusValidationFailed,
		"VALIDATION_FAILED",
		"Invalid input.",
		"",
	)

	ErrOTPMismatch = NewBaseError(
		http.StatusOK,
		StatusValidationFailed,
		"OTP_MISMATCH",
		"Enter correct otp.",
		"",
	)

	// Precondition errors
	ErrBusinessProfileRequired = NewBaseError(
		http.StatusOK,
		StatusPreconditionFailed,
		"BUSINESS_PROFILE_REQUIRED",
		"First create your business profile.",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		StatusPreconditionFailed,
		"INVALID_CREDENTIALS",
		"Username or Password is not Valid",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication credentials were not provided or are invalid.",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"Token is invalid or expired",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed.",
		"",
	)

	// Not found errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found.",
		"",
	)

	ErrSellerGSTNotFound = NewBaseError(
		http.StatusNotFound,
		http.StatusNotFound,
		"SELLER_GST_NOT_FOUND",
		"Not found.",
		"",
	)

	ErrBusinessNotFound = NewBaseError(
		http.StatusNotFound,
		http.StatusNotFound,
		"BUSINESS_NOT_FOUND",
		"Not found.",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		http.StatusNotFound,
		"NOT_FOUND",
		"Not found.",
		"",
	)

	// Persistence and infrastructure errors
	ErrUserCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		http.StatusInternalServerError,
		"USER_CREATION_FAILED",
		"Failed to create user.",
		"",
	)

	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed.",
		"",
	)

	ErrStorageFailed = NewBaseError(
		http.StatusInternalServerError,
		http.StatusInternalServerError,
		"STORAGE_FAILED",
		"Failed to store the uploaded file.",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error, please try again later",
		"",
	)
)

// NewValidationError builds a validation error carrying per-field messages.
// An empty message keeps the generic validation message.
func NewValidationError(message string, fields map[string]string) *BaseError {
	err := ErrValidationFailed.WithFields(fields)
	if message != "" {
		err.message = message
	}

	return err
}

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

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// StatusCode returns the envelope status code
func (e *DatabaseExecuteError) StatusCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed."
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// FieldErrors returns nil, database errors are never field specific
func (e *DatabaseExecuteError) FieldErrors() map[string]string {
	return nil
}
