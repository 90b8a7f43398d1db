package learning

import (
	"fmt"
	"sort"
	"time"

	"github.com/adlens/ad-confidence-api/internal/domain"
	"github.com/adlens/ad-confidence-api/pkg/utils"
)

// Insight templates. The builder fills these with computed numbers; the set
// is closed so summaries stay deterministic and testable.
const (
	insightTopType      = "%s outperformed your monthly average by %.0f points."
	insightStrongMonth  = "%d of %d followed recommendations improved CPA beyond the noise floor."
	insightLowFollow    = "Only %d of %d recommendations were followed this month; untracked changes can't feed your patterns."
	insightPendingHeavy = "%d followed recommendations are still inside their measurement window."
)

// topTypesLimit caps the ranked type list in a monthly summary.
const topTypesLimit = 3

// BuildMonthlySummary rolls one account's outcomes for a calendar month into
// a summary. Outcomes are filtered by their generation date: one generated
// outside the month never contributes, even if it resolved inside it.
// Success rate and mean improvement cover followed-and-resolved outcomes
// only, so pending outcomes never bias the means.
func BuildMonthlySummary(accountID string, outcomes []*domain.OutcomeRecord, month time.Time, th domain.Thresholds) *domain.MonthlySummary {
	summary := &domain.MonthlySummary{
		AccountID:          accountID,
		Period:             domain.FormatPeriod(month),
		TopPerformingTypes: []*domain.AccountPattern{},
		Insights:           []string{},
	}

	monthStart := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	nextMonth := monthStart.AddDate(0, 1, 0)

	var (
		inMonth   []*domain.OutcomeRecord
		resolved  int
		successes int
		deltaSum  float64
		pending   int
	)

	for _, outcome := range outcomes {
		if outcome.GeneratedAt.Before(monthStart) || !outcome.GeneratedAt.Before(nextMonth) {
			continue
		}

		inMonth = append(inMonth, outcome)
		summary.GeneratedCount++

		if !outcome.Followed {
			continue
		}
		summary.FollowedCount++

		if !outcome.Resolved() {
			pending++
			continue
		}

		resolved++
		deltaSum += *outcome.CPADeltaPct
		if outcome.Success(th.SuccessNoiseFloorPct) {
			successes++
		}
	}

	summary.ResolvedCount = resolved
	if resolved > 0 {
		summary.SuccessRate = utils.RoundWithTwoDecimalPlace(100 * float64(successes) / float64(resolved))
		summary.AvgCpaImprovement = utils.RoundWithTwoDecimalPlace(deltaSum / float64(resolved))
	}

	summary.TopPerformingTypes = rankMonthlyTypes(inMonth, nextMonth, th)
	summary.Insights = buildInsights(summary, pending)

	return summary
}

// rankMonthlyTypes aggregates the month's resolved outcomes per type and
// ranks them by success rate, ties broken by larger sample size then
// alphabetically, truncated to the top 3.
func rankMonthlyTypes(outcomes []*domain.OutcomeRecord, now time.Time, th domain.Thresholds) []*domain.AccountPattern {
	patterns := AggregatePatterns(outcomes, now, th)

	sort.Slice(patterns, func(i, j int) bool {
		if patterns[i].SuccessRate != patterns[j].SuccessRate {
			return patterns[i].SuccessRate > patterns[j].SuccessRate
		}
		if patterns[i].SampleSize != patterns[j].SampleSize {
			return patterns[i].SampleSize > patterns[j].SampleSize
		}
		return patterns[i].RecommendationType < patterns[j].RecommendationType
	})

	if len(patterns) > topTypesLimit {
		patterns = patterns[:topTypesLimit]
	}

	return patterns
}

// buildInsights selects rule-triggered template strings from the computed
// summary. No free text: every insight is a fixed template plus numbers.
func buildInsights(summary *domain.MonthlySummary, pending int) []string {
	insights := []string{}

	if len(summary.TopPerformingTypes) > 0 && summary.ResolvedCount > 0 {
		top := summary.TopPerformingTypes[0]
		if lead := top.SuccessRate - summary.SuccessRate; lead > 0 {
			insights = append(insights,
				fmt.Sprintf(insightTopType, top.RecommendationType, lead))
		}
	}

	if summary.ResolvedCount > 0 {
		successes := int(summary.SuccessRate*float64(summary.ResolvedCount)/100 + 0.5)
		insights = append(insights,
			fmt.Sprintf(insightStrongMonth, successes, summary.ResolvedCount))
	}

	if summary.GeneratedCount >= 4 && summary.FollowedCount*2 < summary.GeneratedCount {
		insights = append(insights,
			fmt.Sprintf(insightLowFollow, summary.FollowedCount, summary.GeneratedCount))
	}

	if pending > 0 {
		insights = append(insights, fmt.Sprintf(insightPendingHeavy, pending))
	}

	return insights
}
