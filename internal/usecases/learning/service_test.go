package learning

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	repomocks "github.com/adlens/ad-confidence-api/infrastructure/repository/mocks"
	"github.com/adlens/ad-confidence-api/internal/domain"
	"github.com/adlens/ad-confidence-api/internal/usecases/learning/mocks"
)

func newTestService(
	outcomeRepo *repomocks.MockOutcomeRepository,
	summaryRepo *repomocks.MockMonthlySummaryRepository,
	privacyGate *mocks.MockPrivacyGate,
) *Service {
	return &Service{
		thresholds:        domain.DefaultThresholds(),
		outcomeRepository: outcomeRepo,
		summaryRepository: summaryRepo,
		privacyGate:       privacyGate,
	}
}

func TestService_GetAccountPatterns(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name           string
		accountID      string
		actionableOnly bool
		setup          func(outcomeRepo *repomocks.MockOutcomeRepository)
		verify         func(t *testing.T, patterns []*domain.AccountPattern, err error)
	}{
		{
			name:      "missing account ID is rejected before any read",
			accountID: "",
			setup:     func(outcomeRepo *repomocks.MockOutcomeRepository) {},
			verify: func(t *testing.T, patterns []*domain.AccountPattern, err error) {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				assert.Nil(t, patterns)
			},
		},
		{
			name:      "repository failure propagates",
			accountID: "ACC001",
			setup: func(outcomeRepo *repomocks.MockOutcomeRepository) {
				outcomeRepo.EXPECT().GetByAccountID("ACC001").Return(nil, errors.New("connection refused"))
			},
			verify: func(t *testing.T, patterns []*domain.AccountPattern, err error) {
				assert.Error(t, err)
				assert.Nil(t, patterns)
			},
		},
		{
			name:      "no history yields an empty pattern list",
			accountID: "ACC001",
			setup: func(outcomeRepo *repomocks.MockOutcomeRepository) {
				outcomeRepo.EXPECT().GetByAccountID("ACC001").Return([]*domain.OutcomeRecord{}, nil)
			},
			verify: func(t *testing.T, patterns []*domain.AccountPattern, err error) {
				assert.NoError(t, err)
				assert.Empty(t, patterns)
			},
		},
		{
			name:           "actionable filter drops small and stale samples",
			accountID:      "ACC001",
			actionableOnly: true,
			setup: func(outcomeRepo *repomocks.MockOutcomeRepository) {
				outcomes := []*domain.OutcomeRecord{
					// cta_clarity: three fresh samples, passes the filter.
					resolvedOutcome("ACC001", domain.RecCTAClarity, 8, now.AddDate(0, 0, -10)),
					resolvedOutcome("ACC001", domain.RecCTAClarity, 5, now.AddDate(0, 0, -9)),
					resolvedOutcome("ACC001", domain.RecCTAClarity, 3, now.AddDate(0, 0, -8)),
					// offer_timing: only one sample.
					resolvedOutcome("ACC001", domain.RecOfferTiming, 6, now.AddDate(0, 0, -4)),
					// landing_page: enough samples but all stale.
					resolvedOutcome("ACC001", domain.RecLandingPage, 4, now.AddDate(0, 0, -90)),
					resolvedOutcome("ACC001", domain.RecLandingPage, 4, now.AddDate(0, 0, -85)),
					resolvedOutcome("ACC001", domain.RecLandingPage, 4, now.AddDate(0, 0, -80)),
				}
				outcomeRepo.EXPECT().GetByAccountID("ACC001").Return(outcomes, nil)
			},
			verify: func(t *testing.T, patterns []*domain.AccountPattern, err error) {
				assert.NoError(t, err)
				assert.Len(t, patterns, 1)
				assert.Equal(t, domain.RecCTAClarity, patterns[0].RecommendationType)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			outcomeRepo := repomocks.NewMockOutcomeRepository(ctrl)
			tt.setup(outcomeRepo)

			service := newTestService(outcomeRepo, repomocks.NewMockMonthlySummaryRepository(ctrl), mocks.NewMockPrivacyGate(ctrl))

			patterns, err := service.GetAccountPatterns(tt.accountID, tt.actionableOnly)
			tt.verify(t, patterns, err)
		})
	}
}

func TestService_GetMonthlySummary(t *testing.T) {
	july := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	t.Run("invalid period is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := newTestService(
			repomocks.NewMockOutcomeRepository(ctrl),
			repomocks.NewMockMonthlySummaryRepository(ctrl),
			mocks.NewMockPrivacyGate(ctrl),
		)

		summary, err := service.GetMonthlySummary("ACC001", "2026-07")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Nil(t, summary)
	})

	t.Run("cached summary wins without touching outcomes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cached := &domain.MonthlySummary{AccountID: "ACC001", Period: "07-2026", GeneratedCount: 9}

		summaryRepo := repomocks.NewMockMonthlySummaryRepository(ctrl)
		summaryRepo.EXPECT().GetByAccountIDAndPeriod("ACC001", "07-2026").Return(cached, nil)

		service := newTestService(repomocks.NewMockOutcomeRepository(ctrl), summaryRepo, mocks.NewMockPrivacyGate(ctrl))

		summary, err := service.GetMonthlySummary("ACC001", "07-2026")
		assert.NoError(t, err)
		assert.Same(t, cached, summary)
	})

	t.Run("cache miss rebuilds from outcomes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		summaryRepo := repomocks.NewMockMonthlySummaryRepository(ctrl)
		summaryRepo.EXPECT().GetByAccountIDAndPeriod("ACC001", "07-2026").Return(nil, nil)

		outcomeRepo := repomocks.NewMockOutcomeRepository(ctrl)
		outcomeRepo.EXPECT().GetByAccountIDAndMonth("ACC001", july).Return([]*domain.OutcomeRecord{
			monthOutcome(domain.RecCTAClarity, july.AddDate(0, 0, 5), true, deltaPtr(8)),
		}, nil)

		service := newTestService(outcomeRepo, summaryRepo, mocks.NewMockPrivacyGate(ctrl))

		summary, err := service.GetMonthlySummary("ACC001", "07-2026")
		assert.NoError(t, err)
		assert.Equal(t, "07-2026", summary.Period)
		assert.Equal(t, 1, summary.ResolvedCount)
	})
}

func TestService_BuildAndStoreMonthlySummary(t *testing.T) {
	july := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	t.Run("builds and upserts the summary row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		outcomeRepo := repomocks.NewMockOutcomeRepository(ctrl)
		outcomeRepo.EXPECT().GetByAccountIDAndMonth("ACC001", july).Return(nil, nil)

		summaryRepo := repomocks.NewMockMonthlySummaryRepository(ctrl)
		summaryRepo.EXPECT().SaveOrUpdate(gomock.Any()).DoAndReturn(func(summary *domain.MonthlySummary) error {
			assert.Equal(t, "ACC001", summary.AccountID)
			assert.Equal(t, "07-2026", summary.Period)
			return nil
		})

		service := newTestService(outcomeRepo, summaryRepo, mocks.NewMockPrivacyGate(ctrl))

		summary, err := service.BuildAndStoreMonthlySummary("ACC001", july)
		assert.NoError(t, err)
		assert.Equal(t, "07-2026", summary.Period)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		outcomeRepo := repomocks.NewMockOutcomeRepository(ctrl)
		outcomeRepo.EXPECT().GetByAccountIDAndMonth("ACC001", july).Return(nil, nil)

		summaryRepo := repomocks.NewMockMonthlySummaryRepository(ctrl)
		summaryRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(errors.New("disk full"))

		service := newTestService(outcomeRepo, summaryRepo, mocks.NewMockPrivacyGate(ctrl))

		summary, err := service.BuildAndStoreMonthlySummary("ACC001", july)
		assert.Error(t, err)
		assert.Nil(t, summary)
	})
}

func TestService_GetAvailablePeriods(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	summaryRepo := repomocks.NewMockMonthlySummaryRepository(ctrl)
	summaryRepo.EXPECT().GetAllPeriods().Return([]string{"07-2026", "06-2026", "12-2025"}, nil)

	service := newTestService(repomocks.NewMockOutcomeRepository(ctrl), summaryRepo, mocks.NewMockPrivacyGate(ctrl))

	available, err := service.GetAvailablePeriods()
	assert.NoError(t, err)
	assert.Equal(t, []string{"07-2026", "06-2026", "12-2025"}, available.Periods)
	assert.Equal(t, []string{"2025", "2026"}, available.Years)
	assert.Equal(t, []string{"06", "07", "12"}, available.Months)
}

func TestService_GetCrossAccountPatterns(t *testing.T) {
	t.Run("eligibility snapshot failure aborts the aggregation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		privacyGate := mocks.NewMockPrivacyGate(ctrl)
		privacyGate.EXPECT().EligibleAccountIDs().Return(nil, errors.New("connection refused"))

		service := newTestService(repomocks.NewMockOutcomeRepository(ctrl), repomocks.NewMockMonthlySummaryRepository(ctrl), privacyGate)

		patterns, err := service.GetCrossAccountPatterns()
		assert.Error(t, err)
		assert.Nil(t, patterns)
	})

	t.Run("opted-out history never reaches the aggregate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		now := time.Now().UTC()

		grouped := make(map[string][]*domain.OutcomeRecord)
		eligible := make(map[string]struct{})
		for i := 0; i < domain.HardMinCohort; i++ {
			accountID := string(rune('A'+i)) + "CC"
			grouped[accountID] = []*domain.OutcomeRecord{
				resolvedOutcome(accountID, domain.RecCTAClarity, 6, now.AddDate(0, 0, -3)),
			}
			eligible[accountID] = struct{}{}
		}

		// One opted-out account with history on the same type.
		grouped["OPTOUT"] = []*domain.OutcomeRecord{
			resolvedOutcome("OPTOUT", domain.RecCTAClarity, 50, now.AddDate(0, 0, -1)),
		}

		outcomeRepo := repomocks.NewMockOutcomeRepository(ctrl)
		outcomeRepo.EXPECT().GetAllGroupedByAccount().Return(grouped, nil)

		privacyGate := mocks.NewMockPrivacyGate(ctrl)
		privacyGate.EXPECT().EligibleAccountIDs().Return(eligible, nil)

		service := newTestService(outcomeRepo, repomocks.NewMockMonthlySummaryRepository(ctrl), privacyGate)

		patterns, err := service.GetCrossAccountPatterns()
		assert.NoError(t, err)
		assert.Len(t, patterns, 1)
		assert.Equal(t, domain.HardMinCohort, patterns[0].AccountCount)
		assert.Equal(t, domain.HardMinCohort, patterns[0].TotalSampleSize)
		assert.Equal(t, 100.0, patterns[0].AvgSuccessRate)
	})
}
