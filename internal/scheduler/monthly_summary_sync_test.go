package scheduler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/adlens/ad-confidence-api/infrastructure/repository/mocks"
	"github.com/adlens/ad-confidence-api/internal/domain"
	learningmocks "github.com/adlens/ad-confidence-api/internal/usecases/learning/mocks"
)

func TestMonthlySummarySyncService_syncMonthlySummaries(t *testing.T) {
	activeAccounts := []*domain.AdAccount{
		{ID: "ACC001", Name: "Store A", Status: domain.AdAccountStatusActive},
		{ID: "ACC002", Name: "Store B", Status: domain.AdAccountStatusActive},
	}

	tests := []struct {
		name          string
		monthLookBack int
		setup         func(accountRepo *mocks.MockAccountRepository, summaryRepo *mocks.MockMonthlySummaryRepository, learner *learningmocks.MockLearner)
	}{
		{
			name:          "builds one summary per active account per look-back month",
			monthLookBack: 2,
			setup: func(accountRepo *mocks.MockAccountRepository, summaryRepo *mocks.MockMonthlySummaryRepository, learner *learningmocks.MockLearner) {
				accountRepo.EXPECT().
					ListAccounts([]domain.AdAccountStatus{domain.AdAccountStatusActive}).
					Return(activeAccounts, nil)

				// 2 months * 2 accounts
				learner.EXPECT().
					BuildAndStoreMonthlySummary("ACC001", gomock.Any()).
					Return(&domain.MonthlySummary{AccountID: "ACC001"}, nil).
					Times(2)
				learner.EXPECT().
					BuildAndStoreMonthlySummary("ACC002", gomock.Any()).
					Return(&domain.MonthlySummary{AccountID: "ACC002"}, nil).
					Times(2)

				summaryRepo.EXPECT().
					DeleteOlderThan(24).
					Return(int64(3), nil)
			},
		},
		{
			name:          "a failed account does not stop the remaining accounts",
			monthLookBack: 1,
			setup: func(accountRepo *mocks.MockAccountRepository, summaryRepo *mocks.MockMonthlySummaryRepository, learner *learningmocks.MockLearner) {
				accountRepo.EXPECT().
					ListAccounts([]domain.AdAccountStatus{domain.AdAccountStatusActive}).
					Return(activeAccounts, nil)

				learner.EXPECT().
					BuildAndStoreMonthlySummary("ACC001", gomock.Any()).
					Return(nil, errors.New("database error"))
				learner.EXPECT().
					BuildAndStoreMonthlySummary("ACC002", gomock.Any()).
					Return(&domain.MonthlySummary{AccountID: "ACC002"}, nil)

				summaryRepo.EXPECT().
					DeleteOlderThan(24).
					Return(int64(0), nil)
			},
		},
		{
			name:          "listing failure aborts the run before building or pruning",
			monthLookBack: 1,
			setup: func(accountRepo *mocks.MockAccountRepository, summaryRepo *mocks.MockMonthlySummaryRepository, learner *learningmocks.MockLearner) {
				accountRepo.EXPECT().
					ListAccounts([]domain.AdAccountStatus{domain.AdAccountStatusActive}).
					Return(nil, errors.New("connection refused"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			accountRepo := mocks.NewMockAccountRepository(ctrl)
			summaryRepo := mocks.NewMockMonthlySummaryRepository(ctrl)
			learner := learningmocks.NewMockLearner(ctrl)

			tt.setup(accountRepo, summaryRepo, learner)

			service := &MonthlySummarySyncService{
				config: MonthlySummarySyncConfig{
					MonthLookBack:       tt.monthLookBack,
					RetentionMonths:     24,
					RequestDelaySeconds: 0,
				},
				accountRepo: accountRepo,
				summaryRepo: summaryRepo,
				learner:     learner,
			}

			service.syncMonthlySummaries()

			assert.False(t, service.syncRunning)
		})
	}
}
