package learning

import (
	"time"

	"github.com/adlens/ad-confidence-api/internal/domain"
)

// PrivacyGate supplies the account eligibility snapshot for cross-account
// aggregation. Implemented by the privacy usecase.
type PrivacyGate interface {
	// EligibleAccountIDs returns, in one consistent read, the accounts whose
	// owners currently share aggregates.
	EligibleAccountIDs() (map[string]struct{}, error)
}

// Learner is the learning surface the API layer consumes.
type Learner interface {
	// GetAccountPatterns aggregates an account's outcome history into one
	// pattern per recommendation type. With actionableOnly, the significance
	// filter is applied before returning.
	GetAccountPatterns(accountID string, actionableOnly bool) ([]*domain.AccountPattern, error)

	// GetMonthlySummary returns the account's summary for an mm-yyyy period,
	// preferring the cached row and building from outcomes when absent.
	GetMonthlySummary(accountID string, period string) (*domain.MonthlySummary, error)

	// BuildAndStoreMonthlySummary recomputes a month's summary from outcomes
	// and upserts the cache row. Used by the monthly scheduler.
	BuildAndStoreMonthlySummary(accountID string, month time.Time) (*domain.MonthlySummary, error)

	// GetAvailablePeriods lists the months with stored summaries.
	GetAvailablePeriods() (*domain.AvailablePeriods, error)

	// GetCrossAccountPatterns recomputes the anonymous cross-account view
	// from scratch: a fresh eligibility snapshot, then current patterns.
	GetCrossAccountPatterns() ([]*domain.CrossAccountPattern, error)
}
