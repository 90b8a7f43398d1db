package domain

import "time"

// InsightFilters bounds an insights query to a date range.
type InsightFilters struct {
	StartDate time.Time
	EndDate   time.Time
}
