package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/adlens/ad-confidence-api/infrastructure/repository/mocks"
	"github.com/adlens/ad-confidence-api/internal/domain"
	recommendingmocks "github.com/adlens/ad-confidence-api/internal/usecases/recommending"
)

func TestOutcomeResolutionSyncService_syncOutcomeResolutions(t *testing.T) {
	followedAt := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		setup func(outcomeRepo *mocks.MockOutcomeRepository, tracker *recommendingmocks.MockTracker)
	}{
		{
			name: "resolves every outcome past the measurement window",
			setup: func(outcomeRepo *mocks.MockOutcomeRepository, tracker *recommendingmocks.MockTracker) {
				due := []*domain.OutcomeRecord{
					{ID: "OUT001", AccountID: "ACC001", Followed: true, FollowedAt: &followedAt},
					{ID: "OUT002", AccountID: "ACC001", Followed: true, FollowedAt: &followedAt},
				}

				outcomeRepo.EXPECT().
					GetFollowedUnresolved(gomock.Any()).
					Return(due, nil)

				tracker.EXPECT().Resolve("OUT001").Return(due[0], nil)
				tracker.EXPECT().Resolve("OUT002").Return(due[1], nil)
			},
		},
		{
			name: "a failed resolution does not stop the remaining outcomes",
			setup: func(outcomeRepo *mocks.MockOutcomeRepository, tracker *recommendingmocks.MockTracker) {
				due := []*domain.OutcomeRecord{
					{ID: "OUT001", AccountID: "ACC001", Followed: true, FollowedAt: &followedAt},
					{ID: "OUT002", AccountID: "ACC002", Followed: true, FollowedAt: &followedAt},
				}

				outcomeRepo.EXPECT().
					GetFollowedUnresolved(gomock.Any()).
					Return(due, nil)

				tracker.EXPECT().Resolve("OUT001").Return(nil, errors.New("account has no purchases in the last 30 days, CPA is undefined"))
				tracker.EXPECT().Resolve("OUT002").Return(due[1], nil)
			},
		},
		{
			name: "no outcomes due is a no-op",
			setup: func(outcomeRepo *mocks.MockOutcomeRepository, tracker *recommendingmocks.MockTracker) {
				outcomeRepo.EXPECT().
					GetFollowedUnresolved(gomock.Any()).
					Return([]*domain.OutcomeRecord{}, nil)
			},
		},
		{
			name: "listing failure aborts the run without resolving anything",
			setup: func(outcomeRepo *mocks.MockOutcomeRepository, tracker *recommendingmocks.MockTracker) {
				outcomeRepo.EXPECT().
					GetFollowedUnresolved(gomock.Any()).
					Return(nil, errors.New("connection refused"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			outcomeRepo := mocks.NewMockOutcomeRepository(ctrl)
			tracker := recommendingmocks.NewMockTracker(ctrl)

			tt.setup(outcomeRepo, tracker)

			service := &OutcomeResolutionSyncService{
				config: OutcomeResolutionSyncConfig{
					MeasurementWindowDays: 14,
					RequestDelaySeconds:   0,
				},
				outcomeRepo: outcomeRepo,
				tracker:     tracker,
			}

			service.syncOutcomeResolutions()

			assert.False(t, service.syncRunning)
		})
	}
}

func TestOutcomeResolutionSyncService_measurementWindowCutoff(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	outcomeRepo := mocks.NewMockOutcomeRepository(ctrl)
	tracker := recommendingmocks.NewMockTracker(ctrl)

	windowDays := 14
	var captured time.Time
	outcomeRepo.EXPECT().
		GetFollowedUnresolved(gomock.Any()).
		DoAndReturn(func(olderThan time.Time) ([]*domain.OutcomeRecord, error) {
			captured = olderThan
			return nil, nil
		})

	service := &OutcomeResolutionSyncService{
		config: OutcomeResolutionSyncConfig{
			MeasurementWindowDays: windowDays,
			RequestDelaySeconds:   0,
		},
		outcomeRepo: outcomeRepo,
		tracker:     tracker,
	}

	service.syncOutcomeResolutions()

	expected := time.Now().UTC().AddDate(0, 0, -windowDays)
	assert.WithinDuration(t, expected, captured, time.Minute)
}
