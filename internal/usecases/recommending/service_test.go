package recommending

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	repomocks "github.com/adlens/ad-confidence-api/infrastructure/repository/mocks"
	"github.com/adlens/ad-confidence-api/internal/domain"
	gatingmocks "github.com/adlens/ad-confidence-api/internal/usecases/gating/mocks"
)

type serviceMocks struct {
	outcomeRepo *repomocks.MockOutcomeRepository
	gater       *gatingmocks.MockGater
	cpaProvider *MockCPAProvider
}

func newTestService(ctrl *gomock.Controller) (*Service, *serviceMocks) {
	m := &serviceMocks{
		outcomeRepo: repomocks.NewMockOutcomeRepository(ctrl),
		gater:       gatingmocks.NewMockGater(ctrl),
		cpaProvider: NewMockCPAProvider(ctrl),
	}

	service := &Service{
		thresholds:        domain.DefaultThresholds(),
		outcomeRepository: m.outcomeRepo,
		gater:             m.gater,
		cpaProvider:       m.cpaProvider,
	}

	return service, m
}

func openGate() *domain.GateStatus {
	return &domain.GateStatus{
		CanScoreDelivery:       true,
		CanScoreConversion:     true,
		CanShowRecommendations: true,
	}
}

func closedGate() *domain.GateStatus {
	return &domain.GateStatus{
		Messages: []string{"Ad needs at least 1000 impressions before delivery can be scored."},
	}
}

func TestService_Track(t *testing.T) {
	tests := []struct {
		name   string
		req    TrackRequest
		setup  func(m *serviceMocks)
		verify func(t *testing.T, outcome *domain.OutcomeRecord, err error)
	}{
		{
			name:  "empty text is rejected",
			req:   TrackRequest{AccountID: "ACC001", AdID: "AD001"},
			setup: func(m *serviceMocks) {},
			verify: func(t *testing.T, outcome *domain.OutcomeRecord, err error) {
				assert.ErrorIs(t, err, ErrTextRequired)
				assert.Nil(t, outcome)
			},
		},
		{
			name:  "missing identifiers are rejected",
			req:   TrackRequest{Text: "Add motion in the first 2 seconds"},
			setup: func(m *serviceMocks) {},
			verify: func(t *testing.T, outcome *domain.OutcomeRecord, err error) {
				assert.Error(t, err)
				assert.Nil(t, outcome)
			},
		},
		{
			name: "gated ad rejects tracking before classification",
			req:  TrackRequest{AccountID: "ACC001", AdID: "AD001", Text: "Add motion in the first 2 seconds"},
			setup: func(m *serviceMocks) {
				m.gater.EXPECT().GateAd("ACC001", "AD001").Return(closedGate(), nil)
			},
			verify: func(t *testing.T, outcome *domain.OutcomeRecord, err error) {
				assert.ErrorIs(t, err, ErrRecommendationsGated)
				assert.Nil(t, outcome)
			},
		},
		{
			name: "gate evaluation failure propagates",
			req:  TrackRequest{AccountID: "ACC001", AdID: "AD001", Text: "Add motion in the first 2 seconds"},
			setup: func(m *serviceMocks) {
				m.gater.EXPECT().GateAd("ACC001", "AD001").Return(nil, errors.New("meta api unavailable"))
			},
			verify: func(t *testing.T, outcome *domain.OutcomeRecord, err error) {
				var recErr *RecommendingError
				assert.ErrorAs(t, err, &recErr)
				assert.Nil(t, outcome)
			},
		},
		{
			name: "unclassifiable text is rejected",
			req:  TrackRequest{AccountID: "ACC001", AdID: "AD001", Text: "Make the ad better"},
			setup: func(m *serviceMocks) {
				m.gater.EXPECT().GateAd("ACC001", "AD001").Return(openGate(), nil)
			},
			verify: func(t *testing.T, outcome *domain.OutcomeRecord, err error) {
				assert.ErrorIs(t, err, ErrUnclassified)
				assert.Nil(t, outcome)
			},
		},
		{
			name: "generic text without a concrete change is rejected",
			req:  TrackRequest{AccountID: "ACC001", AdID: "AD001", Text: "The ad could use more motion"},
			setup: func(m *serviceMocks) {
				m.gater.EXPECT().GateAd("ACC001", "AD001").Return(openGate(), nil)
			},
			verify: func(t *testing.T, outcome *domain.OutcomeRecord, err error) {
				assert.ErrorIs(t, err, ErrNotSpecific)
				assert.Nil(t, outcome)
			},
		},
		{
			name: "valid recommendation is classified and persisted",
			req:  TrackRequest{AccountID: "ACC001", AdID: "AD001", Text: "Add motion in the first 2 seconds"},
			setup: func(m *serviceMocks) {
				m.gater.EXPECT().GateAd("ACC001", "AD001").Return(openGate(), nil)
				m.outcomeRepo.EXPECT().Save(gomock.Any()).DoAndReturn(func(outcome *domain.OutcomeRecord) error {
					assert.NotEmpty(t, outcome.ID)
					assert.Equal(t, domain.RecMotionTiming, outcome.RecommendationType)
					assert.False(t, outcome.Followed)
					assert.Nil(t, outcome.CPADeltaPct)
					return nil
				})
			},
			verify: func(t *testing.T, outcome *domain.OutcomeRecord, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "ACC001", outcome.AccountID)
				assert.Equal(t, "AD001", outcome.AdID)
				assert.Equal(t, domain.RecMotionTiming, outcome.RecommendationType)
			},
		},
		{
			name: "save failure surfaces as a database error",
			req:  TrackRequest{AccountID: "ACC001", AdID: "AD001", Text: "Add motion in the first 2 seconds"},
			setup: func(m *serviceMocks) {
				m.gater.EXPECT().GateAd("ACC001", "AD001").Return(openGate(), nil)
				m.outcomeRepo.EXPECT().Save(gomock.Any()).Return(errors.New("connection refused"))
			},
			verify: func(t *testing.T, outcome *domain.OutcomeRecord, err error) {
				assert.ErrorIs(t, err, ErrDatabaseOperation)
				assert.Nil(t, outcome)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, m := newTestService(ctrl)
			tt.setup(m)

			outcome, err := service.Track(tt.req)
			tt.verify(t, outcome, err)
		})
	}
}

func TestService_MarkFollowed(t *testing.T) {
	t.Run("unknown outcome is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newTestService(ctrl)
		m.outcomeRepo.EXPECT().GetByID("OUT404").Return(nil, nil)

		outcome, err := service.MarkFollowed("OUT404")
		assert.ErrorIs(t, err, ErrOutcomeNotFound)
		assert.Nil(t, outcome)
	})

	t.Run("captures the baseline CPA at follow time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newTestService(ctrl)

		stored := &domain.OutcomeRecord{ID: "OUT001", AccountID: "ACC001"}
		m.outcomeRepo.EXPECT().GetByID("OUT001").Return(stored, nil)
		m.cpaProvider.EXPECT().GetAccountCPA("ACC001").Return(42.5, nil)
		m.outcomeRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(outcome *domain.OutcomeRecord) error {
			assert.True(t, outcome.Followed)
			assert.NotNil(t, outcome.FollowedAt)
			assert.Equal(t, 42.5, *outcome.BaselineCPA)
			return nil
		})

		outcome, err := service.MarkFollowed("OUT001")
		assert.NoError(t, err)
		assert.True(t, outcome.Followed)
	})

	t.Run("marking twice keeps the original baseline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newTestService(ctrl)

		baseline := 42.5
		followedAt := time.Now().UTC().AddDate(0, 0, -2)
		stored := &domain.OutcomeRecord{
			ID:          "OUT001",
			AccountID:   "ACC001",
			Followed:    true,
			FollowedAt:  &followedAt,
			BaselineCPA: &baseline,
		}

		// No CPA read, no update: the call is a pure no-op.
		m.outcomeRepo.EXPECT().GetByID("OUT001").Return(stored, nil)

		outcome, err := service.MarkFollowed("OUT001")
		assert.NoError(t, err)
		assert.Equal(t, 42.5, *outcome.BaselineCPA)
		assert.Equal(t, followedAt, *outcome.FollowedAt)
	})

	t.Run("baseline capture failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newTestService(ctrl)

		m.outcomeRepo.EXPECT().GetByID("OUT001").Return(&domain.OutcomeRecord{ID: "OUT001", AccountID: "ACC001"}, nil)
		m.cpaProvider.EXPECT().GetAccountCPA("ACC001").Return(0.0, errors.New("meta api unavailable"))

		outcome, err := service.MarkFollowed("OUT001")
		assert.Error(t, err)
		assert.Nil(t, outcome)
	})
}

func TestService_Resolve(t *testing.T) {
	baseline := 100.0
	followedAt := time.Now().UTC().AddDate(0, 0, -14)

	followedOutcome := func() *domain.OutcomeRecord {
		return &domain.OutcomeRecord{
			ID:          "OUT001",
			AccountID:   "ACC001",
			Followed:    true,
			FollowedAt:  &followedAt,
			BaselineCPA: &baseline,
		}
	}

	t.Run("never-followed outcome cannot resolve", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newTestService(ctrl)
		m.outcomeRepo.EXPECT().GetByID("OUT001").Return(&domain.OutcomeRecord{ID: "OUT001"}, nil)

		outcome, err := service.Resolve("OUT001")
		assert.ErrorIs(t, err, ErrNotFollowed)
		assert.Nil(t, outcome)
	})

	t.Run("already-resolved outcome is immutable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newTestService(ctrl)

		stored := followedOutcome()
		delta := 12.0
		resolvedAt := time.Now().UTC()
		stored.CPADeltaPct = &delta
		stored.ResolvedAt = &resolvedAt
		m.outcomeRepo.EXPECT().GetByID("OUT001").Return(stored, nil)

		outcome, err := service.Resolve("OUT001")
		assert.ErrorIs(t, err, ErrAlreadyResolved)
		assert.Nil(t, outcome)
	})

	t.Run("missing baseline blocks resolution", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newTestService(ctrl)

		stored := followedOutcome()
		stored.BaselineCPA = nil
		m.outcomeRepo.EXPECT().GetByID("OUT001").Return(stored, nil)

		outcome, err := service.Resolve("OUT001")
		assert.ErrorIs(t, err, ErrBaselineUnavailable)
		assert.Nil(t, outcome)
	})

	t.Run("a CPA drop resolves as a positive improvement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newTestService(ctrl)

		m.outcomeRepo.EXPECT().GetByID("OUT001").Return(followedOutcome(), nil)
		// Baseline 100, current 80: the CPA improved by 20%.
		m.cpaProvider.EXPECT().GetAccountCPA("ACC001").Return(80.0, nil)
		m.outcomeRepo.EXPECT().Update(gomock.Any()).Return(nil)

		outcome, err := service.Resolve("OUT001")
		assert.NoError(t, err)
		assert.Equal(t, 20.0, *outcome.CPADeltaPct)
		assert.NotNil(t, outcome.ResolvedAt)
		assert.True(t, outcome.Resolved())
	})

	t.Run("a CPA rise resolves as a negative delta", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newTestService(ctrl)

		m.outcomeRepo.EXPECT().GetByID("OUT001").Return(followedOutcome(), nil)
		m.cpaProvider.EXPECT().GetAccountCPA("ACC001").Return(125.0, nil)
		m.outcomeRepo.EXPECT().Update(gomock.Any()).Return(nil)

		outcome, err := service.Resolve("OUT001")
		assert.NoError(t, err)
		assert.Equal(t, -25.0, *outcome.CPADeltaPct)
		assert.False(t, outcome.Success(service.thresholds.SuccessNoiseFloorPct))
	})

	t.Run("current CPA read failure leaves the outcome pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newTestService(ctrl)

		m.outcomeRepo.EXPECT().GetByID("OUT001").Return(followedOutcome(), nil)
		m.cpaProvider.EXPECT().GetAccountCPA("ACC001").Return(0.0, errors.New("meta api unavailable"))

		outcome, err := service.Resolve("OUT001")
		assert.Error(t, err)
		assert.Nil(t, outcome)
	})
}

func TestService_ListByAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	stored := []*domain.OutcomeRecord{{ID: "OUT001", AccountID: "ACC001"}}
	m.outcomeRepo.EXPECT().GetByAccountID("ACC001").Return(stored, nil)

	outcomes, err := service.ListByAccount("ACC001")
	assert.NoError(t, err)
	assert.Equal(t, stored, outcomes)
}
