package learning

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/adlens/ad-confidence-api/internal/domain"
)

func resolvedOutcome(accountID string, recType domain.RecommendationType, deltaPct float64, resolvedAt time.Time) *domain.OutcomeRecord {
	followedAt := resolvedAt.AddDate(0, 0, -14)
	return &domain.OutcomeRecord{
		ID:                 "OUT-" + string(recType),
		AccountID:          accountID,
		RecommendationType: recType,
		GeneratedAt:        followedAt.AddDate(0, 0, -1),
		Followed:           true,
		FollowedAt:         &followedAt,
		CPADeltaPct:        &deltaPct,
		ResolvedAt:         &resolvedAt,
	}
}

func pendingOutcome(accountID string, recType domain.RecommendationType, generatedAt time.Time) *domain.OutcomeRecord {
	return &domain.OutcomeRecord{
		ID:                 "PEND-" + string(recType),
		AccountID:          accountID,
		RecommendationType: recType,
		GeneratedAt:        generatedAt,
		Followed:           true,
	}
}

func TestAggregatePatterns(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	th := domain.DefaultThresholds()

	tests := []struct {
		name     string
		outcomes []*domain.OutcomeRecord
		verify   func(t *testing.T, patterns []*domain.AccountPattern)
	}{
		{
			name:     "no outcomes produces no patterns",
			outcomes: nil,
			verify: func(t *testing.T, patterns []*domain.AccountPattern) {
				assert.Empty(t, patterns)
			},
		},
		{
			name: "unresolved outcomes never contribute",
			outcomes: []*domain.OutcomeRecord{
				pendingOutcome("ACC001", domain.RecCTAClarity, now.AddDate(0, 0, -3)),
				pendingOutcome("ACC001", domain.RecOfferTiming, now.AddDate(0, 0, -5)),
			},
			verify: func(t *testing.T, patterns []*domain.AccountPattern) {
				assert.Empty(t, patterns)
			},
		},
		{
			name: "success rate and mean delta per type",
			outcomes: []*domain.OutcomeRecord{
				resolvedOutcome("ACC001", domain.RecCTAClarity, 10.0, now.AddDate(0, 0, -10)),
				resolvedOutcome("ACC001", domain.RecCTAClarity, 4.0, now.AddDate(0, 0, -5)),
				// Inside the 2% noise floor: counted in the mean, not a success.
				resolvedOutcome("ACC001", domain.RecCTAClarity, 1.0, now.AddDate(0, 0, -2)),
				resolvedOutcome("ACC001", domain.RecCTAClarity, -7.0, now.AddDate(0, 0, -1)),
			},
			verify: func(t *testing.T, patterns []*domain.AccountPattern) {
				assert.Len(t, patterns, 1)
				p := patterns[0]
				assert.Equal(t, domain.RecCTAClarity, p.RecommendationType)
				assert.Equal(t, "ACC001", p.AccountID)
				assert.Equal(t, 4, p.SampleSize)
				assert.Equal(t, 50.0, p.SuccessRate)
				assert.Equal(t, 2.0, p.AvgCpaImprovement)
			},
		},
		{
			name: "recency counts from the newest resolution",
			outcomes: []*domain.OutcomeRecord{
				resolvedOutcome("ACC001", domain.RecLandingPage, 5.0, now.AddDate(0, 0, -40)),
				resolvedOutcome("ACC001", domain.RecLandingPage, 3.0, now.AddDate(0, 0, -8)),
			},
			verify: func(t *testing.T, patterns []*domain.AccountPattern) {
				assert.Len(t, patterns, 1)
				assert.Equal(t, 8, patterns[0].RecencyDays)
			},
		},
		{
			name: "patterns come back sorted by type",
			outcomes: []*domain.OutcomeRecord{
				resolvedOutcome("ACC001", domain.RecValueTiming, 3.0, now.AddDate(0, 0, -1)),
				resolvedOutcome("ACC001", domain.RecCTAClarity, 3.0, now.AddDate(0, 0, -1)),
				resolvedOutcome("ACC001", domain.RecAudienceRefresh, 3.0, now.AddDate(0, 0, -1)),
			},
			verify: func(t *testing.T, patterns []*domain.AccountPattern) {
				assert.Len(t, patterns, 3)
				assert.Equal(t, domain.RecAudienceRefresh, patterns[0].RecommendationType)
				assert.Equal(t, domain.RecCTAClarity, patterns[1].RecommendationType)
				assert.Equal(t, domain.RecValueTiming, patterns[2].RecommendationType)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.verify(t, AggregatePatterns(tt.outcomes, now, th))
		})
	}
}

func TestAccountPattern_Actionable(t *testing.T) {
	pattern := &domain.AccountPattern{SampleSize: 3, RecencyDays: 59}
	assert.True(t, pattern.Actionable(3, 60))

	assert.False(t, (&domain.AccountPattern{SampleSize: 2, RecencyDays: 10}).Actionable(3, 60))
	assert.False(t, (&domain.AccountPattern{SampleSize: 5, RecencyDays: 60}).Actionable(3, 60))
}
