package recommending

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrTextRequired         = errors.New("recommendation text is required")
	ErrUnclassified         = errors.New("recommendation matches no tracked type")
	ErrNotSpecific          = errors.New("recommendation is too generic to track")
	ErrOutcomeNotFound      = errors.New("outcome record not found")
	ErrAlreadyResolved      = errors.New("outcome already resolved")
	ErrNotFollowed          = errors.New("outcome was never followed")
	ErrDatabaseOperation    = errors.New("database operation error")
	ErrGenerateID           = errors.New("error generating outcome ID")
	ErrRecommendationsGated = errors.New("recommendations are gated for this ad")
	ErrBaselineUnavailable  = errors.New("baseline CPA unavailable for outcome")
)

// RecommendingError carries the API error code alongside the base error, in
// the same shape the account service uses.
type RecommendingError struct {
	Err     error
	Code    string
	Details string
}

func (e *RecommendingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *RecommendingError) Unwrap() error {
	return e.Err
}

func NewRecommendingError(err error, code string, details string) *RecommendingError {
	return &RecommendingError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
