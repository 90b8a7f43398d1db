package learning

import (
	"sort"
	"time"

	"github.com/adlens/ad-confidence-api/internal/domain"
)

// AggregatePatterns folds an account's outcome history into one pattern per
// recommendation type observed. Pure: everything derives from the outcome
// slice, the reference time and the thresholds.
//
// Only resolved outcomes contribute. A type with zero resolved outcomes
// produces no pattern — absence means "not yet tested", which consumers must
// distinguish from "tested and unsuccessful". The significance filter is the
// consumer's job; the raw fields always come back.
func AggregatePatterns(outcomes []*domain.OutcomeRecord, now time.Time, th domain.Thresholds) []*domain.AccountPattern {
	type bucket struct {
		accountID    string
		samples      int
		successes    int
		deltaSum     float64
		lastResolved time.Time
	}

	buckets := make(map[domain.RecommendationType]*bucket)

	for _, outcome := range outcomes {
		if !outcome.Resolved() {
			continue
		}

		b, ok := buckets[outcome.RecommendationType]
		if !ok {
			b = &bucket{accountID: outcome.AccountID}
			buckets[outcome.RecommendationType] = b
		}

		b.samples++
		b.deltaSum += *outcome.CPADeltaPct
		if outcome.Success(th.SuccessNoiseFloorPct) {
			b.successes++
		}
		if outcome.ResolvedAt.After(b.lastResolved) {
			b.lastResolved = *outcome.ResolvedAt
		}
	}

	patterns := make([]*domain.AccountPattern, 0, len(buckets))
	for recType, b := range buckets {
		patterns = append(patterns, &domain.AccountPattern{
			AccountID:          b.accountID,
			RecommendationType: recType,
			SampleSize:         b.samples,
			SuccessRate:        100 * float64(b.successes) / float64(b.samples),
			AvgCpaImprovement:  b.deltaSum / float64(b.samples),
			RecencyDays:        int(now.Sub(b.lastResolved).Hours() / 24),
		})
	}

	// Map iteration order is random; sort by type for a stable output.
	sort.Slice(patterns, func(i, j int) bool {
		return patterns[i].RecommendationType < patterns[j].RecommendationType
	})

	return patterns
}
