package domain

// CrossAccountPattern is the anonymous aggregate of one recommendation type
// across opted-in accounts. It carries no account identifiers, is only
// materialized when AccountCount clears the anonymity floor, and is always
// recomputed on demand — never persisted.
type CrossAccountPattern struct {
	RecommendationType RecommendationType `json:"recommendation_type"`

	// AccountCount is the number of distinct opted-in accounts contributing.
	AccountCount int `json:"account_count"`

	// TotalSampleSize is the sum of contributing per-account sample sizes.
	TotalSampleSize int `json:"total_sample_size"`

	// AvgSuccessRate is the sample-size-weighted mean success rate, so
	// larger-sample accounts weigh more.
	AvgSuccessRate float64 `json:"avg_success_rate"`
}
