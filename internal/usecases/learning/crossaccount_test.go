package learning

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adlens/ad-confidence-api/internal/domain"
)

func accountPattern(accountID string, recType domain.RecommendationType, sampleSize int, successRate float64) *domain.AccountPattern {
	return &domain.AccountPattern{
		AccountID:          accountID,
		RecommendationType: recType,
		SampleSize:         sampleSize,
		SuccessRate:        successRate,
	}
}

// cohort builds n accounts that each observed recType, all marked eligible.
func cohort(n int, recType domain.RecommendationType, sampleSize int, successRate float64) (map[string][]*domain.AccountPattern, map[string]struct{}) {
	patterns := make(map[string][]*domain.AccountPattern, n)
	eligible := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		accountID := fmt.Sprintf("ACC%03d", i)
		patterns[accountID] = []*domain.AccountPattern{
			accountPattern(accountID, recType, sampleSize, successRate),
		}
		eligible[accountID] = struct{}{}
	}
	return patterns, eligible
}

func TestAggregateCrossAccount_CohortFloor(t *testing.T) {
	// Nine accounts observing a type is one short of the anonymity floor.
	patterns, eligible := cohort(domain.HardMinCohort-1, domain.RecCTAClarity, 5, 80)
	assert.Empty(t, AggregateCrossAccount(patterns, eligible, domain.HardMinCohort))

	// The tenth account flips the type from suppressed to visible.
	patterns, eligible = cohort(domain.HardMinCohort, domain.RecCTAClarity, 5, 80)
	results := AggregateCrossAccount(patterns, eligible, domain.HardMinCohort)
	assert.Len(t, results, 1)
	assert.Equal(t, domain.RecCTAClarity, results[0].RecommendationType)
	assert.Equal(t, domain.HardMinCohort, results[0].AccountCount)
	assert.Equal(t, domain.HardMinCohort*5, results[0].TotalSampleSize)
}

func TestAggregateCrossAccount_ClampsCohortFromBelow(t *testing.T) {
	// Asking for a cohort of 2 must not bypass the hard floor.
	patterns, eligible := cohort(domain.HardMinCohort-1, domain.RecOfferTiming, 3, 50)
	assert.Empty(t, AggregateCrossAccount(patterns, eligible, 2))
}

func TestAggregateCrossAccount_ExcludesOptedOutAccounts(t *testing.T) {
	patterns, eligible := cohort(domain.HardMinCohort, domain.RecLandingPage, 4, 75)

	// An opted-out account with history must not appear anywhere in the
	// aggregate, so the cohort drops below the floor without it.
	delete(eligible, "ACC000")

	assert.Empty(t, AggregateCrossAccount(patterns, eligible, domain.HardMinCohort))
}

func TestAggregateCrossAccount_WeightedSuccessRate(t *testing.T) {
	patterns, eligible := cohort(domain.HardMinCohort-1, domain.RecCTAClarity, 11, 0)

	// One account with a perfect rate over a single sample barely moves the
	// weighted mean: (100*1 + 0*99) / 100 = 1%.
	patterns["ACC999"] = []*domain.AccountPattern{
		accountPattern("ACC999", domain.RecCTAClarity, 1, 100),
	}
	eligible["ACC999"] = struct{}{}

	results := AggregateCrossAccount(patterns, eligible, domain.HardMinCohort)
	assert.Len(t, results, 1)
	assert.Equal(t, 100, results[0].TotalSampleSize)
	assert.Equal(t, 1.0, results[0].AvgSuccessRate)
}

func TestAggregateCrossAccount_SkipsEmptyPatterns(t *testing.T) {
	patterns, eligible := cohort(domain.HardMinCohort, domain.RecCheckoutFlow, 2, 50)
	patterns["ACC000"] = []*domain.AccountPattern{
		accountPattern("ACC000", domain.RecCheckoutFlow, 0, 0),
	}

	// The zero-sample pattern leaves its account out of the cohort count.
	assert.Empty(t, AggregateCrossAccount(patterns, eligible, domain.HardMinCohort))
}
