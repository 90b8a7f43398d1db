package domain

// ImpressionLevel classifies the lifetime impression volume of an ad. The set
// is closed and ordered; use ImpressionLevelRank for comparisons.
type ImpressionLevel string

const (
	ImpressionLow    ImpressionLevel = "low"
	ImpressionMedium ImpressionLevel = "medium"
	ImpressionHigh   ImpressionLevel = "high"
)

// ImpressionLevelRank gives the explicit ordering of impression levels, so
// monotonicity over increasing volume can be asserted.
var ImpressionLevelRank = map[ImpressionLevel]int{
	ImpressionLow:    0,
	ImpressionMedium: 1,
	ImpressionHigh:   2,
}

// ConversionLevel classifies the lifetime conversion volume of an ad.
type ConversionLevel string

const (
	ConversionInsufficient ConversionLevel = "insufficient"
	ConversionLow          ConversionLevel = "low"
	ConversionMedium       ConversionLevel = "medium"
	ConversionHigh         ConversionLevel = "high"
)

// ConversionLevelRank gives the explicit ordering of conversion levels.
var ConversionLevelRank = map[ConversionLevel]int{
	ConversionInsufficient: 0,
	ConversionLow:          1,
	ConversionMedium:       2,
	ConversionHigh:         3,
}

// AgeGate reports whether the ad has accumulated the minimum delivery window.
type AgeGate struct {
	Passed bool `json:"passed"`
	// HoursRemaining is MIN_AGE_HOURS minus the ad age, zero when passed.
	HoursRemaining float64 `json:"hours_remaining"`
}

// ImpressionsGate reports the leveled impression sufficiency rather than a
// boolean pass/fail.
type ImpressionsGate struct {
	Level ImpressionLevel `json:"level"`
	Count int             `json:"count"`
	// NextThreshold is the floor of the next level up, zero at the top level.
	NextThreshold int `json:"next_threshold,omitempty"`
}

// ConversionsGate reports the leveled conversion sufficiency.
type ConversionsGate struct {
	Level ConversionLevel `json:"level"`
	Count int             `json:"count"`
	// NextThreshold is the floor of the next level up, zero at the top level.
	NextThreshold int `json:"next_threshold,omitempty"`
}

// IOSTrafficGate flags attribution unreliability from a high iOS share. It is
// a caveat, never a blocker: no can* boolean depends on it.
type IOSTrafficGate struct {
	Penalized bool    `json:"penalized"`
	Share     float64 `json:"share"`
}

// AttributionMismatchGate blocks conversion scoring when pixel and platform
// conversion counts disagree beyond tolerance. A trust failure overrides
// volume sufficiency.
type AttributionMismatchGate struct {
	Blocked bool `json:"blocked"`
}

// SpendGate reports whether the ad cleared the minimum spend floor required
// for recommendations.
type SpendGate struct {
	Passed          bool    `json:"passed"`
	AmountRemaining float64 `json:"amount_remaining"`
}

// GateStatus is the result of one confidence evaluation over a MetricSnapshot.
//
// Invariants:
//   - CanScoreDelivery = Age.Passed && Impressions.Level != low
//   - CanScoreConversion = Conversions.Level != insufficient && !AttributionMismatch.Blocked
//   - CanShowRecommendations = Age.Passed && Spend.Passed
//   - Messages is non-empty iff at least one of the three booleans is false,
//     assembled in fixed priority order (age, impressions, conversions, spend).
type GateStatus struct {
	AdID string `json:"ad_id"`

	Age                 AgeGate                 `json:"age"`
	Impressions         ImpressionsGate         `json:"impressions"`
	Conversions         ConversionsGate         `json:"conversions"`
	IOSTraffic          IOSTrafficGate          `json:"ios_traffic"`
	AttributionMismatch AttributionMismatchGate `json:"attribution_mismatch"`
	Spend               SpendGate               `json:"spend"`

	CanScoreDelivery       bool `json:"can_score_delivery"`
	CanScoreConversion     bool `json:"can_score_conversion"`
	CanShowRecommendations bool `json:"can_show_recommendations"`

	// Messages explains, in presentation order, why a capability is blocked.
	Messages []string `json:"messages"`
	// Caveats carries non-blocking warnings such as the iOS penalty notice.
	Caveats []string `json:"caveats,omitempty"`
}
