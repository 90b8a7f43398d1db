package domain

import "time"

// RecommendationType is one entry in the fixed taxonomy of actionable
// creative/funnel changes tracked for outcome learning. The set is closed;
// free-form recommendation text that matches none of the types classifies as
// RecommendationUnclassified and is never tracked.
type RecommendationType string

const (
	RecMotionTiming      RecommendationType = "motion_timing"
	RecCutDensity        RecommendationType = "cut_density"
	RecTextAppearance    RecommendationType = "text_appearance"
	RecValueTiming       RecommendationType = "value_timing"
	RecOfferTiming       RecommendationType = "offer_timing"
	RecCTAClarity        RecommendationType = "cta_clarity"
	RecProofAddition     RecommendationType = "proof_addition"
	RecPricingVisibility RecommendationType = "pricing_visibility"
	RecLandingPage       RecommendationType = "landing_page"
	RecCheckoutFlow      RecommendationType = "checkout_flow"
	RecAudienceRefresh   RecommendationType = "audience_refresh"

	RecommendationUnclassified RecommendationType = "unclassified"
)

// RecommendationTypes lists the trackable taxonomy in stable order.
var RecommendationTypes = []RecommendationType{
	RecMotionTiming,
	RecCutDensity,
	RecTextAppearance,
	RecValueTiming,
	RecOfferTiming,
	RecCTAClarity,
	RecProofAddition,
	RecPricingVisibility,
	RecLandingPage,
	RecCheckoutFlow,
	RecAudienceRefresh,
}

// OutcomeRecord is one tracked recommendation instance for an account: what
// was recommended, whether the user followed it and, once a measurement
// window elapsed, the signed CPA delta it produced (positive = improvement).
type OutcomeRecord struct {
	ID                 string             `json:"id"`
	AccountID          string             `json:"account_id"`
	AdID               string             `json:"ad_id,omitempty"`
	RecommendationType RecommendationType `json:"recommendation_type"`
	RecommendationText string             `json:"recommendation_text"`
	GeneratedAt        time.Time          `json:"generated_at"`
	Followed           bool               `json:"followed"`
	FollowedAt         *time.Time         `json:"followed_at,omitempty"`

	// BaselineCPA is the account CPA captured when the recommendation was
	// followed, used by the resolution sync to measure the delta.
	BaselineCPA *float64 `json:"baseline_cpa,omitempty"`

	// CPADeltaPct is the signed percentage change measured after the window,
	// positive meaning the CPA improved (went down). Nil while unresolved.
	CPADeltaPct *float64   `json:"cpa_delta_pct,omitempty"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Resolved reports whether the outcome carries a measured CPA delta.
func (o *OutcomeRecord) Resolved() bool {
	return o.ResolvedAt != nil && o.CPADeltaPct != nil
}

// Success reports whether the resolved delta clears the noise floor in the
// improvement direction. Unresolved outcomes are never successes.
func (o *OutcomeRecord) Success(noiseFloorPct float64) bool {
	return o.Resolved() && *o.CPADeltaPct >= noiseFloorPct
}
