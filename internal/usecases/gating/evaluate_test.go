package gating

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adlens/ad-confidence-api/internal/domain"
)

func TestEvaluate_AllGatesPass(t *testing.T) {
	th := domain.DefaultThresholds()

	status := Evaluate(domain.MetricSnapshot{
		AdID:            "AD001",
		AgeHours:        48,
		Impressions:     15000,
		Conversions:     12,
		IOSTrafficShare: 0.1,
		Spend:           500,
	}, th)

	assert.True(t, status.CanScoreDelivery)
	assert.True(t, status.CanScoreConversion)
	assert.True(t, status.CanShowRecommendations)
	assert.Empty(t, status.Messages)
	assert.Empty(t, status.Caveats)
	assert.Equal(t, domain.ImpressionHigh, status.Impressions.Level)
	assert.Equal(t, domain.ConversionMedium, status.Conversions.Level)
	assert.Equal(t, 30, status.Conversions.NextThreshold)
}

func TestEvaluate_YoungAdFailsClosed(t *testing.T) {
	th := domain.DefaultThresholds()

	status := Evaluate(domain.MetricSnapshot{
		AdID:        "AD002",
		AgeHours:    10,
		Impressions: 200,
		Conversions: 0,
		Spend:       0,
	}, th)

	assert.False(t, status.CanScoreDelivery)
	assert.False(t, status.CanScoreConversion)
	assert.False(t, status.CanShowRecommendations)
	assert.False(t, status.Age.Passed)
	assert.Equal(t, 14.0, status.Age.HoursRemaining)

	// Age notice first, impressions second, per fixed priority.
	assert.GreaterOrEqual(t, len(status.Messages), 2)
	assert.Equal(t, "Ad needs 14 more hours of delivery data.", status.Messages[0])
	assert.Equal(t, "Ad needs at least 1000 impressions before delivery can be scored.", status.Messages[1])
}

func TestEvaluate_AttributionMismatchOverridesVolume(t *testing.T) {
	th := domain.DefaultThresholds()

	// Even at conversion level "high" a trust failure blocks scoring.
	status := Evaluate(domain.MetricSnapshot{
		AdID:                "AD003",
		AgeHours:            72,
		Impressions:         50000,
		Conversions:         100,
		AttributionMismatch: true,
		Spend:               1000,
	}, th)

	assert.Equal(t, domain.ConversionHigh, status.Conversions.Level)
	assert.False(t, status.CanScoreConversion)
	assert.True(t, status.CanScoreDelivery)
	assert.True(t, status.CanShowRecommendations)
	assert.Contains(t, status.Messages, msgAttributionMismatch)
}

func TestEvaluate_ImpressionLevelMonotonicity(t *testing.T) {
	th := domain.DefaultThresholds()

	counts := []int{0, 500, 999, 1000, 5000, 9999, 10000, 250000}
	prevRank := -1

	for _, count := range counts {
		status := Evaluate(domain.MetricSnapshot{
			AdID:        "AD004",
			AgeHours:    48,
			Impressions: count,
			Spend:       500,
		}, th)

		rank := domain.ImpressionLevelRank[status.Impressions.Level]
		assert.GreaterOrEqual(t, rank, prevRank,
			"impressions level must never move down as volume grows (count=%d)", count)
		prevRank = rank
	}
}

func TestEvaluate_ConversionLevels(t *testing.T) {
	th := domain.DefaultThresholds()

	tests := []struct {
		name          string
		conversions   int
		level         domain.ConversionLevel
		nextThreshold int
	}{
		{"zero conversions is insufficient", 0, domain.ConversionInsufficient, 1},
		{"single conversion is low", 1, domain.ConversionLow, 10},
		{"nine conversions still low", 9, domain.ConversionLow, 10},
		{"ten conversions is medium", 10, domain.ConversionMedium, 30},
		{"thirty conversions is high", 30, domain.ConversionHigh, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := Evaluate(domain.MetricSnapshot{
				AdID:        "AD005",
				AgeHours:    48,
				Impressions: 2000,
				Conversions: tt.conversions,
				Spend:       500,
			}, th)

			assert.Equal(t, tt.level, status.Conversions.Level)
			assert.Equal(t, tt.nextThreshold, status.Conversions.NextThreshold)
			assert.Equal(t, tt.level != domain.ConversionInsufficient, status.CanScoreConversion)
		})
	}
}

func TestEvaluate_IOSTrafficIsCaveatOnly(t *testing.T) {
	th := domain.DefaultThresholds()

	status := Evaluate(domain.MetricSnapshot{
		AdID:            "AD006",
		AgeHours:        48,
		Impressions:     15000,
		Conversions:     12,
		IOSTrafficShare: 0.45,
		Spend:           500,
	}, th)

	assert.True(t, status.IOSTraffic.Penalized)
	assert.True(t, status.CanScoreDelivery)
	assert.True(t, status.CanScoreConversion)
	assert.True(t, status.CanShowRecommendations)
	assert.Empty(t, status.Messages)
	assert.Len(t, status.Caveats, 1)
}

func TestEvaluate_SpendGateBlocksRecommendationsIndependently(t *testing.T) {
	th := domain.DefaultThresholds()

	status := Evaluate(domain.MetricSnapshot{
		AdID:        "AD007",
		AgeHours:    48,
		Impressions: 15000,
		Conversions: 12,
		Spend:       40,
	}, th)

	assert.True(t, status.CanScoreDelivery)
	assert.True(t, status.CanScoreConversion)
	assert.False(t, status.CanShowRecommendations)
	assert.Equal(t, 60.0, status.Spend.AmountRemaining)
	assert.Len(t, status.Messages, 1)
	assert.Equal(t, "Ad needs 60.00 more in spend before recommendations are available.", status.Messages[0])
}

func TestEvaluate_MessagesEmptyIffAllCapabilitiesOn(t *testing.T) {
	th := domain.DefaultThresholds()

	tests := []struct {
		name     string
		snapshot domain.MetricSnapshot
	}{
		{"fresh ad", domain.MetricSnapshot{AgeHours: 1}},
		{"mismatch only", domain.MetricSnapshot{AgeHours: 48, Impressions: 20000, Conversions: 40, AttributionMismatch: true, Spend: 500}},
		{"low spend only", domain.MetricSnapshot{AgeHours: 48, Impressions: 20000, Conversions: 40, Spend: 1}},
		{"everything on", domain.MetricSnapshot{AgeHours: 48, Impressions: 20000, Conversions: 40, Spend: 500}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := Evaluate(tt.snapshot, th)
			allOn := status.CanScoreDelivery && status.CanScoreConversion && status.CanShowRecommendations
			assert.Equal(t, allOn, len(status.Messages) == 0)
		})
	}
}

func TestValidateSnapshot_RejectsNegativeCounts(t *testing.T) {
	tests := []struct {
		name     string
		snapshot domain.MetricSnapshot
	}{
		{"negative age", domain.MetricSnapshot{AgeHours: -1}},
		{"negative impressions", domain.MetricSnapshot{Impressions: -10}},
		{"negative conversions", domain.MetricSnapshot{Conversions: -1}},
		{"negative spend", domain.MetricSnapshot{Spend: -0.01}},
		{"ios share above one", domain.MetricSnapshot{IOSTrafficShare: 1.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.snapshot.Validate()
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}
