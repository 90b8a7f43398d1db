package authenticating

import (
	"errors"
	"fmt"
)

// Authentication error types
var (
	// Authentication errors
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrUserDisabled          = errors.New("user disabled")
	ErrUserNotFound          = errors.New("user not found")
	ErrUserLocked            = errors.New("user temporarily locked")
	ErrPasswordExpired       = errors.New("password expired")
	ErrInvalidToken          = errors.New("invalid token")
	ErrExpiredToken          = errors.New("expired token")
	ErrInsufficientPrivilege = errors.New("insufficient privileges")
	ErrUserAlreadyExists     = errors.New("user already exists")

	// Validation errors
	ErrInvalidRequest      = errors.New("invalid request")
	ErrMissingRequiredData = errors.New("required data missing")
	ErrInvalidFormat       = errors.New("invalid data format")

	// Password errors
	ErrWeakPassword      = errors.New("weak password")
	ErrPasswordMismatch  = errors.New("passwords do not match")
	ErrSamePassword      = errors.New("the new password must differ from the current one")
	ErrNoAdminPrivileges = errors.New("only administrators can perform this action")

	// Database errors
	ErrDatabaseOperation = errors.New("database operation error")
)

// AuthError is an error with additional authentication context
type AuthError struct {
	Err     error  // Base error
	Code    string // API error code
	UserID  int    // User involved, when applicable
	Details string // Additional details
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error
func (e *AuthError) Unwrap() error {
	return e.Err
}

// IsCredentialsError reports whether the error is about invalid credentials
func IsCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrUserDisabled) ||
		errors.Is(err, ErrUserLocked) ||
		errors.Is(err, ErrPasswordExpired)
}

// IsAuthorizationError reports whether the error is about authorization
func IsAuthorizationError(err error) bool {
	return errors.Is(err, ErrInsufficientPrivilege) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrExpiredToken) ||
		errors.Is(err, ErrNoAdminPrivileges)
}

func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

func NewUserAuthError(baseErr error, code string, userID int, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		UserID:  userID,
		Details: details,
	}
}
