// Package recommending tracks recommendations through their lifecycle:
// classification into the fixed taxonomy, follow-up by the user and outcome
// resolution against real CPA movement.
package recommending

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/adlens/ad-confidence-api/infrastructure/repository"
	"github.com/adlens/ad-confidence-api/internal/config"
	"github.com/adlens/ad-confidence-api/internal/domain"
	"github.com/adlens/ad-confidence-api/internal/usecases/gating"
	"github.com/adlens/ad-confidence-api/pkg/apiErrors"
	"github.com/adlens/ad-confidence-api/pkg/utils"
)

// CPAProvider supplies the account-level cost per acquisition used as the
// baseline at follow time and the comparison value at resolution time.
// Implemented by the Meta integrator.
type CPAProvider interface {
	GetAccountCPA(accountID string) (float64, error)
}

type TrackRequest struct {
	AccountID string `json:"account_id"`
	AdID      string `json:"ad_id"`
	Text      string `json:"text"`
}

// Tracker exposes the recommendation outcome lifecycle to the API layer and
// the resolution scheduler.
type Tracker interface {
	Track(req TrackRequest) (*domain.OutcomeRecord, error)
	MarkFollowed(outcomeID string) (*domain.OutcomeRecord, error)
	Resolve(outcomeID string) (*domain.OutcomeRecord, error)
	ListByAccount(accountID string) ([]*domain.OutcomeRecord, error)
}

type Service struct {
	cfg               *config.Config
	thresholds        domain.Thresholds
	outcomeRepository repository.OutcomeRepository
	gater             gating.Gater
	cpaProvider       CPAProvider
}

func NewService(
	cfg *config.Config,
	outcomeRepo repository.OutcomeRepository,
	gater gating.Gater,
	cpaProvider CPAProvider,
) Tracker {
	return &Service{
		cfg:               cfg,
		thresholds:        cfg.Thresholds(),
		outcomeRepository: outcomeRepo,
		gater:             gater,
		cpaProvider:       cpaProvider,
	}
}

// Track validates, classifies and persists a recommendation so its outcome
// can be learned from later. Only recommendations that pass the ad's gates,
// map onto the taxonomy and name a concrete change are tracked; everything
// else is rejected before persistence so the outcome history stays clean.
func (s *Service) Track(req TrackRequest) (*domain.OutcomeRecord, error) {
	if req.Text == "" {
		return nil, NewRecommendingError(ErrTextRequired, apiErrors.ErrMissingRequiredData, "")
	}
	if req.AccountID == "" || req.AdID == "" {
		return nil, NewRecommendingError(ErrTextRequired, apiErrors.ErrMissingRequiredData, "account_id and ad_id are required")
	}

	status, err := s.gater.GateAd(req.AccountID, req.AdID)
	if err != nil {
		return nil, NewRecommendingError(err, apiErrors.ErrExternalService, "gate evaluation failed")
	}
	if !status.CanShowRecommendations {
		return nil, NewRecommendingError(ErrRecommendationsGated, apiErrors.ErrInvalidRequest, "ad has not passed the data gates")
	}

	recType := Classify(req.Text)
	if recType == domain.RecommendationUnclassified {
		return nil, NewRecommendingError(ErrUnclassified, apiErrors.ErrInvalidRequest, "")
	}
	if !IsSpecific(req.Text) {
		return nil, NewRecommendingError(ErrNotSpecific, apiErrors.ErrInvalidRequest, "recommendation must name a concrete change")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewRecommendingError(ErrGenerateID, apiErrors.ErrInternalServer, "")
	}

	outcome := &domain.OutcomeRecord{
		ID:                 id,
		AccountID:          req.AccountID,
		AdID:               req.AdID,
		RecommendationType: recType,
		RecommendationText: req.Text,
		GeneratedAt:        time.Now().UTC(),
		Followed:           false,
	}

	if err := s.outcomeRepository.Save(outcome); err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": req.AccountID,
			"ad_id":      req.AdID,
		}).WithError(err).Error("recommending: failed to save outcome")
		return nil, NewRecommendingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "")
	}

	logrus.WithFields(logrus.Fields{
		"outcome_id": outcome.ID,
		"account_id": outcome.AccountID,
		"type":       outcome.RecommendationType,
	}).Info("recommending: outcome tracked")

	return outcome, nil
}

// MarkFollowed records that the user applied the recommendation and captures
// the account CPA at that instant as the baseline the resolution compares
// against. Marking an already-followed outcome again is a no-op that keeps
// the original baseline.
func (s *Service) MarkFollowed(outcomeID string) (*domain.OutcomeRecord, error) {
	outcome, err := s.outcomeRepository.GetByID(outcomeID)
	if err != nil {
		return nil, NewRecommendingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "")
	}
	if outcome == nil {
		return nil, NewRecommendingError(ErrOutcomeNotFound, apiErrors.ErrResourceNotFound, outcomeID)
	}
	if outcome.Followed {
		return outcome, nil
	}

	baseline, err := s.cpaProvider.GetAccountCPA(outcome.AccountID)
	if err != nil {
		logrus.WithField("outcome_id", outcomeID).WithError(err).Error("recommending: failed to capture baseline CPA")
		return nil, NewRecommendingError(err, apiErrors.ErrExternalService, "could not capture baseline CPA")
	}

	now := time.Now().UTC()
	outcome.Followed = true
	outcome.FollowedAt = &now
	outcome.BaselineCPA = &baseline

	if err := s.outcomeRepository.Update(outcome); err != nil {
		return nil, NewRecommendingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "")
	}

	logrus.WithFields(logrus.Fields{
		"outcome_id":   outcome.ID,
		"baseline_cpa": baseline,
	}).Info("recommending: outcome marked followed")

	return outcome, nil
}

// Resolve measures the CPA movement since the baseline and closes the
// outcome. The delta is stored as a signed improvement percentage: positive
// when the current CPA dropped below the baseline. An outcome with no
// baseline, or a zero baseline, cannot be resolved.
func (s *Service) Resolve(outcomeID string) (*domain.OutcomeRecord, error) {
	outcome, err := s.outcomeRepository.GetByID(outcomeID)
	if err != nil {
		return nil, NewRecommendingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "")
	}
	if outcome == nil {
		return nil, NewRecommendingError(ErrOutcomeNotFound, apiErrors.ErrResourceNotFound, outcomeID)
	}
	if !outcome.Followed {
		return nil, NewRecommendingError(ErrNotFollowed, apiErrors.ErrInvalidRequest, outcomeID)
	}
	if outcome.Resolved() {
		return nil, NewRecommendingError(ErrAlreadyResolved, apiErrors.ErrInvalidRequest, outcomeID)
	}
	if outcome.BaselineCPA == nil || *outcome.BaselineCPA <= 0 {
		return nil, NewRecommendingError(ErrBaselineUnavailable, apiErrors.ErrInvalidRequest, outcomeID)
	}

	currentCPA, err := s.cpaProvider.GetAccountCPA(outcome.AccountID)
	if err != nil {
		logrus.WithField("outcome_id", outcomeID).WithError(err).Error("recommending: failed to fetch current CPA")
		return nil, NewRecommendingError(err, apiErrors.ErrExternalService, "could not fetch current CPA")
	}

	delta := utils.RoundWithTwoDecimalPlace((*outcome.BaselineCPA - currentCPA) / *outcome.BaselineCPA * 100)

	now := time.Now().UTC()
	outcome.CPADeltaPct = &delta
	outcome.ResolvedAt = &now

	if err := s.outcomeRepository.Update(outcome); err != nil {
		return nil, NewRecommendingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "")
	}

	logrus.WithFields(logrus.Fields{
		"outcome_id":    outcome.ID,
		"cpa_delta_pct": delta,
		"success":       outcome.Success(s.thresholds.SuccessNoiseFloorPct),
	}).Info("recommending: outcome resolved")

	return outcome, nil
}

func (s *Service) ListByAccount(accountID string) ([]*domain.OutcomeRecord, error) {
	outcomes, err := s.outcomeRepository.GetByAccountID(accountID)
	if err != nil {
		return nil, NewRecommendingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "")
	}
	return outcomes, nil
}
