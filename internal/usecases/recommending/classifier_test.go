package recommending

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adlens/ad-confidence-api/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected domain.RecommendationType
	}{
		{
			name:     "motion keyword",
			text:     "Add motion to the first frame",
			expected: domain.RecMotionTiming,
		},
		{
			name:     "cut density keyword",
			text:     "Increase the number of cuts in the opening",
			expected: domain.RecCutDensity,
		},
		{
			name:     "cta keyword is case insensitive",
			text:     "Make the CTA clearer",
			expected: domain.RecCTAClarity,
		},
		{
			name:     "social proof phrase",
			text:     "Add social proof near the end",
			expected: domain.RecProofAddition,
		},
		{
			name:     "checkout keyword",
			text:     "Simplify the checkout to fewer steps",
			expected: domain.RecCheckoutFlow,
		},
		{
			name:     "audience fatigue keyword",
			text:     "Rotate in a fresh audience, ad fatigue is setting in",
			expected: domain.RecAudienceRefresh,
		},
		{
			name: "taxonomy order decides when text touches two types",
			// Mentions both motion (motion_timing) and price
			// (pricing_visibility); motion_timing comes first in the taxonomy.
			text:     "Show the price earlier and add motion",
			expected: domain.RecMotionTiming,
		},
		{
			name:     "generic advice matches nothing",
			text:     "Improve the ad performance overall",
			expected: domain.RecommendationUnclassified,
		},
		{
			name:     "empty text matches nothing",
			text:     "",
			expected: domain.RecommendationUnclassified,
		},
		{
			name: "substring inside a word does not match",
			// "scta" must not trip the \bcta\b rule.
			text:     "Redesign the scta banner",
			expected: domain.RecommendationUnclassified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.text))
		})
	}
}

func TestIsSpecific(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		specific bool
	}{
		{
			name:     "motion with a time offset",
			text:     "Add motion within the first 2 seconds",
			specific: true,
		},
		{
			name:     "motion without a concrete target",
			text:     "The ad needs more motion",
			specific: false,
		},
		{
			name:     "cta naming the copy",
			text:     `Change the CTA to "Get your quote"`,
			specific: true,
		},
		{
			name:     "cta without a named change",
			text:     "The call to action should be stronger",
			specific: false,
		},
		{
			name:     "offer with a percentage",
			text:     "Lead with the 20% discount in the opening",
			specific: true,
		},
		{
			name:     "checkout naming a step count",
			text:     "Reduce the checkout to 2 steps",
			specific: true,
		},
		{
			name:     "pricing above the fold",
			text:     "Move pricing above the fold on mobile",
			specific: true,
		},
		{
			name:     "unclassified text is never specific",
			text:     "Try harder within the first 3 seconds",
			specific: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.specific, IsSpecific(tt.text))
		})
	}
}
