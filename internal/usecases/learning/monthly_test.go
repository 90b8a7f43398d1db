package learning

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/adlens/ad-confidence-api/internal/domain"
)

func monthOutcome(recType domain.RecommendationType, generatedAt time.Time, followed bool, deltaPct *float64) *domain.OutcomeRecord {
	outcome := &domain.OutcomeRecord{
		ID:                 "OUT-" + string(recType) + generatedAt.Format("02"),
		AccountID:          "ACC001",
		RecommendationType: recType,
		GeneratedAt:        generatedAt,
		Followed:           followed,
	}
	if followed {
		followedAt := generatedAt.AddDate(0, 0, 1)
		outcome.FollowedAt = &followedAt
	}
	if deltaPct != nil {
		resolvedAt := generatedAt.AddDate(0, 0, 15)
		outcome.CPADeltaPct = deltaPct
		outcome.ResolvedAt = &resolvedAt
	}
	return outcome
}

func deltaPtr(v float64) *float64 { return &v }

func TestBuildMonthlySummary_FiltersByGenerationMonth(t *testing.T) {
	month := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	th := domain.DefaultThresholds()

	outcomes := []*domain.OutcomeRecord{
		// Generated in June, resolved in July: belongs to June's summary.
		monthOutcome(domain.RecCTAClarity, time.Date(2026, 6, 25, 0, 0, 0, 0, time.UTC), true, deltaPtr(8)),
		monthOutcome(domain.RecCTAClarity, time.Date(2026, 7, 3, 0, 0, 0, 0, time.UTC), true, deltaPtr(6)),
		// Generated in August: out of range.
		monthOutcome(domain.RecCTAClarity, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), true, deltaPtr(4)),
	}

	summary := BuildMonthlySummary("ACC001", outcomes, month, th)

	assert.Equal(t, "07-2026", summary.Period)
	assert.Equal(t, 1, summary.GeneratedCount)
	assert.Equal(t, 1, summary.FollowedCount)
	assert.Equal(t, 1, summary.ResolvedCount)
	assert.Equal(t, 6.0, summary.AvgCpaImprovement)
}

func TestBuildMonthlySummary_RatesCoverResolvedOnly(t *testing.T) {
	month := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	th := domain.DefaultThresholds()
	inJuly := time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)

	outcomes := []*domain.OutcomeRecord{
		monthOutcome(domain.RecOfferTiming, inJuly, true, deltaPtr(10)),
		monthOutcome(domain.RecOfferTiming, inJuly, true, deltaPtr(-4)),
		// Followed but still inside the measurement window.
		monthOutcome(domain.RecOfferTiming, inJuly, true, nil),
		// Generated only, never followed.
		monthOutcome(domain.RecOfferTiming, inJuly, false, nil),
	}

	summary := BuildMonthlySummary("ACC001", outcomes, month, th)

	assert.Equal(t, 4, summary.GeneratedCount)
	assert.Equal(t, 3, summary.FollowedCount)
	assert.Equal(t, 2, summary.ResolvedCount)
	assert.Equal(t, 50.0, summary.SuccessRate)
	assert.Equal(t, 3.0, summary.AvgCpaImprovement)

	// The pending outcome triggers the measurement-window insight.
	assert.Contains(t, summary.Insights, "1 followed recommendations are still inside their measurement window.")
}

func TestBuildMonthlySummary_EmptyMonth(t *testing.T) {
	month := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	summary := BuildMonthlySummary("ACC001", nil, month, domain.DefaultThresholds())

	assert.Equal(t, 0, summary.GeneratedCount)
	assert.Equal(t, 0.0, summary.SuccessRate)
	assert.Empty(t, summary.TopPerformingTypes)
	assert.Empty(t, summary.Insights)
}

func TestBuildMonthlySummary_RanksTopTypes(t *testing.T) {
	month := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	th := domain.DefaultThresholds()
	inJuly := time.Date(2026, 7, 5, 0, 0, 0, 0, time.UTC)

	outcomes := []*domain.OutcomeRecord{
		// cta_clarity: 2/2 successes.
		monthOutcome(domain.RecCTAClarity, inJuly, true, deltaPtr(12)),
		monthOutcome(domain.RecCTAClarity, inJuly, true, deltaPtr(9)),
		// offer_timing: 1/1 success, smaller sample loses the tie.
		monthOutcome(domain.RecOfferTiming, inJuly, true, deltaPtr(7)),
		// landing_page and audience_refresh both at 0/1: an exact tie on rate
		// and sample, broken alphabetically.
		monthOutcome(domain.RecLandingPage, inJuly, true, deltaPtr(-3)),
		monthOutcome(domain.RecAudienceRefresh, inJuly, true, deltaPtr(-5)),
	}

	summary := BuildMonthlySummary("ACC001", outcomes, month, th)

	assert.Len(t, summary.TopPerformingTypes, 3)
	assert.Equal(t, domain.RecCTAClarity, summary.TopPerformingTypes[0].RecommendationType)
	assert.Equal(t, domain.RecOfferTiming, summary.TopPerformingTypes[1].RecommendationType)
	assert.Equal(t, domain.RecAudienceRefresh, summary.TopPerformingTypes[2].RecommendationType)
}

func TestBuildMonthlySummary_LowFollowThroughInsight(t *testing.T) {
	month := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	th := domain.DefaultThresholds()
	inJuly := time.Date(2026, 7, 8, 0, 0, 0, 0, time.UTC)

	outcomes := []*domain.OutcomeRecord{
		monthOutcome(domain.RecCTAClarity, inJuly, true, deltaPtr(5)),
		monthOutcome(domain.RecCTAClarity, inJuly, false, nil),
		monthOutcome(domain.RecOfferTiming, inJuly, false, nil),
		monthOutcome(domain.RecLandingPage, inJuly, false, nil),
	}

	summary := BuildMonthlySummary("ACC001", outcomes, month, th)

	assert.Contains(t, summary.Insights,
		"Only 1 of 4 recommendations were followed this month; untracked changes can't feed your patterns.")
}
