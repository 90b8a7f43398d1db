package domain

import (
	"fmt"
	"time"
)

// MonthlySummary rolls one account's recommendation outcomes for a calendar
// month into counts, aggregate rates and rule-generated insight strings.
type MonthlySummary struct {
	AccountID string `json:"account_id"`

	// Period identifies the month in the mm-yyyy format used across the
	// insight tables.
	Period string `json:"period"`

	GeneratedCount int `json:"generated_count"`
	FollowedCount  int `json:"followed_count"`
	ResolvedCount  int `json:"resolved_count"`

	// SuccessRate and AvgCpaImprovement are computed over followed-and-resolved
	// outcomes only; pending outcomes never enter the means.
	SuccessRate       float64 `json:"success_rate"`
	AvgCpaImprovement float64 `json:"avg_cpa_improvement"`

	// TopPerformingTypes is the month's per-type aggregates ranked by success
	// rate, truncated to the top 3.
	TopPerformingTypes []*AccountPattern `json:"top_performing_types"`

	// Insights is a small set of template-generated strings selected by
	// computed conditions, not free text from a model.
	Insights []string `json:"insights"`
}

// FormatPeriod renders a time as an mm-yyyy period string.
func FormatPeriod(t time.Time) string {
	return fmt.Sprintf("%02d-%04d", int(t.Month()), t.Year())
}

// ParsePeriod parses an mm-yyyy period string into the first instant of that
// month in UTC.
func ParsePeriod(period string) (time.Time, error) {
	t, err := time.Parse("01-2006", period)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid period %q, expected mm-yyyy", ErrInvalidInput, period)
	}
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC), nil
}
