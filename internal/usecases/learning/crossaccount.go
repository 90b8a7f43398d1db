package learning

import (
	"sort"

	"github.com/adlens/ad-confidence-api/internal/domain"
	"github.com/adlens/ad-confidence-api/pkg/utils"
)

// AggregateCrossAccount merges per-account patterns into anonymous
// cross-account patterns. The eligible set is a single consistent snapshot
// computed by the caller before any pattern data is read, and is the only
// place account identity participates: from the grouping step on, no account
// identifier survives into the output.
//
// minCohort is clamped to domain.HardMinCohort from below. A caller asking
// for a smaller cohort still gets the hard anonymity floor; types observed by
// fewer eligible accounts are suppressed by omission.
func AggregateCrossAccount(
	patternsByAccount map[string][]*domain.AccountPattern,
	eligible map[string]struct{},
	minCohort int,
) []*domain.CrossAccountPattern {
	if minCohort < domain.HardMinCohort {
		minCohort = domain.HardMinCohort
	}

	type bucket struct {
		accounts    int
		totalSample int
		weightedSum float64
	}

	buckets := make(map[domain.RecommendationType]*bucket)

	for accountID, patterns := range patternsByAccount {
		if _, ok := eligible[accountID]; !ok {
			continue
		}

		for _, pattern := range patterns {
			if pattern.SampleSize <= 0 {
				continue
			}

			b, ok := buckets[pattern.RecommendationType]
			if !ok {
				b = &bucket{}
				buckets[pattern.RecommendationType] = b
			}

			b.accounts++
			b.totalSample += pattern.SampleSize
			b.weightedSum += pattern.SuccessRate * float64(pattern.SampleSize)
		}
	}

	results := make([]*domain.CrossAccountPattern, 0, len(buckets))
	for recType, b := range buckets {
		if b.accounts < minCohort {
			continue
		}

		results = append(results, &domain.CrossAccountPattern{
			RecommendationType: recType,
			AccountCount:       b.accounts,
			TotalSampleSize:    b.totalSample,
			AvgSuccessRate:     utils.RoundWithTwoDecimalPlace(b.weightedSum / float64(b.totalSample)),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].RecommendationType < results[j].RecommendationType
	})

	return results
}
