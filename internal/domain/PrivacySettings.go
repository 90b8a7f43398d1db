package domain

import "time"

// PrivacySettings is the per-user aggregate-sharing policy. A user without a
// stored row is treated as opted in: the record is created implicitly with
// the default on first read, mutated only through an explicit update, and
// never deleted on its own (it follows the owning user's lifecycle).
type PrivacySettings struct {
	UserID          int       `json:"user_id"`
	ShareAggregates bool      `json:"share_aggregates"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// DefaultPrivacySettings returns the implicit opted-in state for a user with
// no stored settings.
func DefaultPrivacySettings(userID int) *PrivacySettings {
	return &PrivacySettings{
		UserID:          userID,
		ShareAggregates: true,
		UpdatedAt:       time.Now().UTC(),
	}
}
