package domain

// Thresholds carries every configurable boundary of the gating and learning
// rules. Defaults come from DefaultThresholds and may be overridden through
// the application config.
type Thresholds struct {
	// MinAgeHours is the minimum delivery window before any scoring.
	MinAgeHours float64

	// ImpressionMediumFloor and ImpressionHighFloor are the level breakpoints
	// for the impressions gate (low < medium floor <= medium < high floor <= high).
	ImpressionMediumFloor int
	ImpressionHighFloor   int

	// ConversionLowFloor, ConversionMediumFloor and ConversionHighFloor are
	// the level breakpoints for the conversions gate.
	ConversionLowFloor    int
	ConversionMediumFloor int
	ConversionHighFloor   int

	// IOSPenaltyThreshold is the iOS traffic share above which attribution is
	// considered unreliable.
	IOSPenaltyThreshold float64

	// MinSpend is the lifetime spend floor required for recommendations.
	MinSpend float64

	// SuccessNoiseFloorPct is the minimum signed CPA improvement (in percent)
	// for an outcome to count as a success. Deltas inside the floor are noise.
	SuccessNoiseFloorPct float64

	// MinCohort is the anonymity floor for cross-account aggregation. The
	// aggregator never honors a value below HardMinCohort.
	MinCohort int

	// ActionableMinSampleSize and ActionableMaxRecencyDays define the default
	// significance filter applied by consumers of account patterns.
	ActionableMinSampleSize  int
	ActionableMaxRecencyDays int
}

// HardMinCohort is the non-negotiable anonymity floor for cross-account
// aggregation. Configuration can raise the cohort minimum, never lower it.
const HardMinCohort = 10

// DefaultThresholds returns the documented default rule boundaries.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinAgeHours:              24,
		ImpressionMediumFloor:    1000,
		ImpressionHighFloor:      10000,
		ConversionLowFloor:       1,
		ConversionMediumFloor:    10,
		ConversionHighFloor:      30,
		IOSPenaltyThreshold:      0.30,
		MinSpend:                 100,
		SuccessNoiseFloorPct:     2.0,
		MinCohort:                HardMinCohort,
		ActionableMinSampleSize:  3,
		ActionableMaxRecencyDays: 60,
	}
}
