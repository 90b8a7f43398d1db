package domain

// AccountPattern is the aggregate of one account's resolved recommendation
// outcomes for a single recommendation type. A type with zero outcomes
// produces no pattern at all: absence means "not yet tested", which is a
// different signal from "tested and unsuccessful".
type AccountPattern struct {
	AccountID          string             `json:"account_id"`
	RecommendationType RecommendationType `json:"recommendation_type"`

	// SampleSize is the count of resolved outcomes, always >= 1 for a
	// materialized pattern.
	SampleSize int `json:"sample_size"`

	// SuccessRate is 100 * successes / SampleSize, in [0,100].
	SuccessRate float64 `json:"success_rate"`

	// AvgCpaImprovement is the arithmetic mean of signed CPA deltas,
	// positive = improvement.
	AvgCpaImprovement float64 `json:"avg_cpa_improvement"`

	// RecencyDays is the whole days elapsed since the newest contributing
	// outcome was resolved.
	RecencyDays int `json:"recency_days"`
}

// Actionable applies the significance filter consumers use before treating a
// pattern as trustworthy. The raw fields stay exposed so callers can vary the
// filter.
func (p *AccountPattern) Actionable(minSampleSize, maxRecencyDays int) bool {
	return p.SampleSize >= minSampleSize && p.RecencyDays < maxRecencyDays
}
