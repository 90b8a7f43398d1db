// Package privacy manages the per-user opt-in for anonymous cross-account
// aggregation and exposes the account eligibility snapshot the learning
// engine reads.
package privacy

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/adlens/ad-confidence-api/infrastructure/repository"
	"github.com/adlens/ad-confidence-api/internal/domain"
)

type Gate interface {
	GetSettings(userID int) (*domain.PrivacySettings, error)
	UpdateSettings(userID int, shareAggregates bool) (*domain.PrivacySettings, error)
	// EligibleAccountIDs returns the accounts whose owners currently share
	// aggregates. Taking effect is immediate: there is no cached copy.
	EligibleAccountIDs() (map[string]struct{}, error)
}

type Service struct {
	settingsRepository repository.PrivacySettingsRepository
}

func NewService(settingsRepo repository.PrivacySettingsRepository) Gate {
	return &Service{
		settingsRepository: settingsRepo,
	}
}

// GetSettings returns the stored settings, falling back to the opted-in
// default for users who never changed them. The default is not persisted on
// read; absence of a row already means opted-in everywhere else.
func (s *Service) GetSettings(userID int) (*domain.PrivacySettings, error) {
	settings, err := s.settingsRepository.GetByUserID(userID)
	if err != nil {
		logrus.WithField("user_id", userID).WithError(err).Error("privacy: failed to load settings")
		return nil, err
	}

	if settings == nil {
		return domain.DefaultPrivacySettings(userID), nil
	}

	return settings, nil
}

func (s *Service) UpdateSettings(userID int, shareAggregates bool) (*domain.PrivacySettings, error) {
	settings := &domain.PrivacySettings{
		UserID:          userID,
		ShareAggregates: shareAggregates,
		UpdatedAt:       time.Now().UTC(),
	}

	if err := s.settingsRepository.SaveOrUpdate(settings); err != nil {
		logrus.WithField("user_id", userID).WithError(err).Error("privacy: failed to update settings")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id":          userID,
		"share_aggregates": shareAggregates,
	}).Info("privacy: settings updated")

	return settings, nil
}

func (s *Service) EligibleAccountIDs() (map[string]struct{}, error) {
	return s.settingsRepository.ListSharingAccountIDs()
}
