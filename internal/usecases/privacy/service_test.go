package privacy

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	repomocks "github.com/adlens/ad-confidence-api/infrastructure/repository/mocks"
	"github.com/adlens/ad-confidence-api/internal/domain"
)

func TestService_GetSettings(t *testing.T) {
	t.Run("missing row falls back to the opted-in default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		settingsRepo := repomocks.NewMockPrivacySettingsRepository(ctrl)
		settingsRepo.EXPECT().GetByUserID(7).Return(nil, nil)

		service := &Service{settingsRepository: settingsRepo}

		settings, err := service.GetSettings(7)
		assert.NoError(t, err)
		assert.Equal(t, 7, settings.UserID)
		assert.True(t, settings.ShareAggregates)
	})

	t.Run("stored row wins over the default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		stored := &domain.PrivacySettings{UserID: 7, ShareAggregates: false}

		settingsRepo := repomocks.NewMockPrivacySettingsRepository(ctrl)
		settingsRepo.EXPECT().GetByUserID(7).Return(stored, nil)

		service := &Service{settingsRepository: settingsRepo}

		settings, err := service.GetSettings(7)
		assert.NoError(t, err)
		assert.Same(t, stored, settings)
	})

	t.Run("repository failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		settingsRepo := repomocks.NewMockPrivacySettingsRepository(ctrl)
		settingsRepo.EXPECT().GetByUserID(7).Return(nil, errors.New("connection refused"))

		service := &Service{settingsRepository: settingsRepo}

		settings, err := service.GetSettings(7)
		assert.Error(t, err)
		assert.Nil(t, settings)
	})
}

func TestService_UpdateSettings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	settingsRepo := repomocks.NewMockPrivacySettingsRepository(ctrl)
	settingsRepo.EXPECT().SaveOrUpdate(gomock.Any()).DoAndReturn(func(settings *domain.PrivacySettings) error {
		assert.Equal(t, 7, settings.UserID)
		assert.False(t, settings.ShareAggregates)
		assert.False(t, settings.UpdatedAt.IsZero())
		return nil
	})

	service := &Service{settingsRepository: settingsRepo}

	settings, err := service.UpdateSettings(7, false)
	assert.NoError(t, err)
	assert.False(t, settings.ShareAggregates)
}

func TestService_EligibleAccountIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eligible := map[string]struct{}{"ACC001": {}, "ACC002": {}}

	settingsRepo := repomocks.NewMockPrivacySettingsRepository(ctrl)
	settingsRepo.EXPECT().ListSharingAccountIDs().Return(eligible, nil)

	service := &Service{settingsRepository: settingsRepo}

	got, err := service.EligibleAccountIDs()
	assert.NoError(t, err)
	assert.Equal(t, eligible, got)
}
