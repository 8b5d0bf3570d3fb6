package utils

import "errors"

// AppError is the error type the services raise for invariant violations.
// Code identifies the class of failure, Message is safe to show to users,
// and Origin carries the underlying cause when there is one.
type AppError struct {
	Code    string
	Message string
	Origin  error
}

func (appErr *AppError) Error() string {
	if appErr.Origin != nil {
		return appErr.Message + ": " + appErr.Origin.Error()
	}
	return appErr.Message
}

func (appErr *AppError) Unwrap() error {
	return appErr.Origin
}

// Standard error codes for the application
const (
	ErrValidation = "INVALID_INPUT"
	ErrNotFound   = "NOT_FOUND"

	// Authenticated but not permitted
	ErrForbidden = "FORBIDDEN"
	// No or invalid session
	ErrUnauthenticated = "UNAUTHENTICATED"

	ErrDuplicateLike      = "DUPLICATE_LIKE"
	ErrUserExists         = "USER_ALREADY_EXISTS"
	ErrInvalidCredentials = "INVALID_CREDENTIALS"

	ErrDatabase = "DATABASE_ERROR"
)

func NewAppError(code string, message string, originalErr error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Origin:  originalErr,
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{Code: ErrValidation, Message: message}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{Code: ErrForbidden, Message: message}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Code: ErrNotFound, Message: message}
}

func NewDatabaseError(originalErr error) *AppError {
	return &AppError{Code: ErrDatabase, Message: "database error", Origin: originalErr}
}

// IsErrorCode reports whether err is an AppError with the given code.
func IsErrorCode(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// AppErrorToHTTPStatus converts an AppError code to an HTTP status code.
func AppErrorToHTTPStatus(errorCode string) int {
	switch errorCode {
	case ErrNotFound:
		return 404
	case ErrValidation, ErrInvalidCredentials:
		return 400
	case ErrUnauthenticated:
		return 401
	case ErrForbidden, ErrDuplicateLike:
		return 403
	case ErrUserExists:
		return 409
	default:
		return 500
	}
}
