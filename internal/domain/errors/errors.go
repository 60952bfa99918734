// Package errors defines the errors the use cases surface to clients. Each
// carries the HTTP status and the stable code written into the error envelope.
package errors

import (
	"net/http"

	"lifelink/internal/errors"
)

// AppError is an error that knows how it should be reported to a client.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
	Details() string
}

type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{httpCode: httpCode, errorCode: errorCode, message: message, details: details}
}

func (e *BaseError) Error() string     { return e.message }
func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// Is matches on the business code, so copies made by WithDetails still
// satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// WrapMessage adds internal context that is logged but never shown to clients.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// WithDetails returns a copy whose details are shown on 4xx answers.
func (e *BaseError) WithDetails(details string) *BaseError {
	cp := *e
	cp.details = details

	return &cp
}

func predefined(status int, code, message string) *BaseError {
	return NewBaseError(status, code, message, "")
}

// Accounts and sessions.
var (
	ErrUserNotFound        = predefined(http.StatusNotFound, "USER_NOT_FOUND", "User not found")
	ErrUserAlreadyExists   = predefined(http.StatusConflict, "USER_ALREADY_EXISTS", "This email is already registered")
	ErrUserCreationFailed  = predefined(http.StatusInternalServerError, "USER_CREATION_FAILED", "Failed to create user")
	ErrInvalidCredentials  = predefined(http.StatusUnauthorized, "INVALID_CREDENTIALS", "Incorrect email or password")
	ErrRefreshTokenInvalid = predefined(http.StatusUnauthorized, "REFRESH_TOKEN_INVALID", "Invalid or expired refresh token")
	ErrUnauthorized        = predefined(http.StatusUnauthorized, "UNAUTHORIZED", "Missing or invalid access token")
	ErrPasswordHashFailed  = predefined(http.StatusInternalServerError, "PASSWORD_HASH_FAILED", "Password processing error")
	ErrPasswordStrength    = predefined(http.StatusBadRequest, "PASSWORD_STRENGTH", "Password is too weak")
)

// Codes and profiles. ErrProfileNotFound keeps the PROFILE_NOT_LINKED code
// clients already know from the scan page.
var (
	ErrQRCodeNotFound    = predefined(http.StatusNotFound, "QR_CODE_NOT_FOUND", "QR code not found")
	ErrQRCodeNotLinkable = predefined(http.StatusConflict, "QR_CODE_NOT_LINKABLE", "This QR code cannot be linked")
	ErrQRCodeIssueFailed = predefined(http.StatusInternalServerError, "QR_CODE_ISSUE_FAILED", "Failed to issue a unique QR code")
	ErrProfileNotFound   = predefined(http.StatusNotFound, "PROFILE_NOT_LINKED", "This QR code is not linked to any emergency information yet")
	ErrSnapshotInvalid   = predefined(http.StatusBadRequest, "SNAPSHOT_INVALID", "Snapshot could not be read")
)

// Generic.
var (
	ErrValidationFailed = predefined(http.StatusBadRequest, "VALIDATION_FAILED", "Input validation failed")
	ErrInternalError    = predefined(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	ErrForbidden        = predefined(http.StatusForbidden, "FORBIDDEN", "Access denied")
	ErrRateLimited      = predefined(http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests, please slow down")
)

// DatabaseExecuteError reports a failed statement as a 500 while keeping the
// driver error reachable through errors.Unwrap.
type DatabaseExecuteError struct {
	err     error
	details string
}

func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{err: err, details: details}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

func (e *DatabaseExecuteError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseExecuteError) Message() string   { return "Database execution failed" }
func (e *DatabaseExecuteError) Details() string   { return e.details }
func (e *DatabaseExecuteError) Unwrap() error     { return e.err }
