// Package learning turns historical recommendation outcomes into reusable
// statistical patterns, per account and anonymously across accounts.
package learning

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/adlens/ad-confidence-api/infrastructure/repository"
	"github.com/adlens/ad-confidence-api/internal/config"
	"github.com/adlens/ad-confidence-api/internal/domain"
)

type Service struct {
	cfg               *config.Config
	thresholds        domain.Thresholds
	outcomeRepository repository.OutcomeRepository
	summaryRepository repository.MonthlySummaryRepository
	privacyGate       PrivacyGate
}

func NewService(
	cfg *config.Config,
	outcomeRepo repository.OutcomeRepository,
	summaryRepo repository.MonthlySummaryRepository,
	privacyGate PrivacyGate,
) Learner {
	return &Service{
		cfg:               cfg,
		thresholds:        cfg.Thresholds(),
		outcomeRepository: outcomeRepo,
		summaryRepository: summaryRepo,
		privacyGate:       privacyGate,
	}
}

func (s *Service) GetAccountPatterns(accountID string, actionableOnly bool) ([]*domain.AccountPattern, error) {
	if accountID == "" {
		return nil, fmt.Errorf("%w: account ID is required", domain.ErrInvalidInput)
	}

	outcomes, err := s.outcomeRepository.GetByAccountID(accountID)
	if err != nil {
		logrus.WithField("account_id", accountID).WithError(err).Error("learning: failed to load outcomes")
		return nil, err
	}

	// Missing history is not an error: no outcomes, no patterns.
	patterns := AggregatePatterns(outcomes, time.Now().UTC(), s.thresholds)

	if actionableOnly {
		actionable := patterns[:0]
		for _, pattern := range patterns {
			if pattern.Actionable(s.thresholds.ActionableMinSampleSize, s.thresholds.ActionableMaxRecencyDays) {
				actionable = append(actionable, pattern)
			}
		}
		patterns = actionable
	}

	return patterns, nil
}

func (s *Service) GetMonthlySummary(accountID string, period string) (*domain.MonthlySummary, error) {
	month, err := domain.ParsePeriod(period)
	if err != nil {
		return nil, err
	}

	cached, err := s.summaryRepository.GetByAccountIDAndPeriod(accountID, period)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"period":     period,
		}).WithError(err).Warn("learning: summary cache read failed, rebuilding")
	}
	if cached != nil {
		return cached, nil
	}

	outcomes, err := s.outcomeRepository.GetByAccountIDAndMonth(accountID, month)
	if err != nil {
		return nil, err
	}

	return BuildMonthlySummary(accountID, outcomes, month, s.thresholds), nil
}

func (s *Service) BuildAndStoreMonthlySummary(accountID string, month time.Time) (*domain.MonthlySummary, error) {
	outcomes, err := s.outcomeRepository.GetByAccountIDAndMonth(accountID, month)
	if err != nil {
		return nil, err
	}

	summary := BuildMonthlySummary(accountID, outcomes, month, s.thresholds)

	if err := s.summaryRepository.SaveOrUpdate(summary); err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"period":     summary.Period,
		}).WithError(err).Error("learning: failed to store monthly summary")
		return nil, err
	}

	return summary, nil
}

func (s *Service) GetAvailablePeriods() (*domain.AvailablePeriods, error) {
	periods, err := s.summaryRepository.GetAllPeriods()
	if err != nil {
		return nil, err
	}

	available := &domain.AvailablePeriods{
		Periods: periods,
		Years:   []string{},
		Months:  []string{},
	}

	yearSet := make(map[string]struct{})
	monthSet := make(map[string]struct{})
	for _, period := range periods {
		parts := strings.Split(period, "-")
		if len(parts) != 2 {
			continue
		}
		monthSet[parts[0]] = struct{}{}
		yearSet[parts[1]] = struct{}{}
	}

	for year := range yearSet {
		available.Years = append(available.Years, year)
	}
	for month := range monthSet {
		available.Months = append(available.Months, month)
	}
	sort.Strings(available.Years)
	sort.Strings(available.Months)

	return available, nil
}

// GetCrossAccountPatterns rebuilds the anonymous cross-account view on every
// call. The eligibility snapshot is taken first and once, then pattern data
// is read, so an account opting out between the two reads can at worst still
// appear in the current call and never in the next — no cached cross-account
// state outlives an opt-out.
func (s *Service) GetCrossAccountPatterns() ([]*domain.CrossAccountPattern, error) {
	eligible, err := s.privacyGate.EligibleAccountIDs()
	if err != nil {
		logrus.WithError(err).Error("learning: failed to read eligibility snapshot")
		return nil, err
	}

	outcomesByAccount, err := s.outcomeRepository.GetAllGroupedByAccount()
	if err != nil {
		logrus.WithError(err).Error("learning: failed to load outcome history")
		return nil, err
	}

	now := time.Now().UTC()
	patternsByAccount := make(map[string][]*domain.AccountPattern, len(outcomesByAccount))
	for accountID, outcomes := range outcomesByAccount {
		patternsByAccount[accountID] = AggregatePatterns(outcomes, now, s.thresholds)
	}

	return AggregateCrossAccount(patternsByAccount, eligible, s.thresholds.MinCohort), nil
}
