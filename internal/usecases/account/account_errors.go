package account

import (
	"errors"
	"fmt"
)

// Errors specific to the account context
var (
	// Validation errors
	ErrAccountIDRequired = errors.New("account ID is required")
	ErrAccountNotFound   = errors.New("account not found")
	ErrOwnerNotFound     = errors.New("owner user not found")

	// External service errors
	ErrMetaIntegration = errors.New("error fetching accounts from Meta")

	// Database errors
	ErrDatabaseOperation = errors.New("database operation error")
	ErrUpdateAccount     = errors.New("error updating account")
	ErrFetchAccounts     = errors.New("error fetching accounts from database")

	// Sync errors
	ErrGenerateID = errors.New("error generating account ID")
)

// AccountError is an error with additional account context
type AccountError struct {
	Err       error  // Base error
	Code      string // API error code
	AccountID string // Account involved, when applicable
	Details   string // Additional details
}

func (e *AccountError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error
func (e *AccountError) Unwrap() error {
	return e.Err
}

func NewAccountError(err error, code string, details string) *AccountError {
	return &AccountError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewAccountErrorWithID(err error, code string, accountID string, details string) *AccountError {
	return &AccountError{
		Err:       err,
		Code:      code,
		AccountID: accountID,
		Details:   details,
	}
}
