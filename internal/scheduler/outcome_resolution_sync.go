package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/adlens/ad-confidence-api/infrastructure/repository"
	"github.com/adlens/ad-confidence-api/internal/config"
	"github.com/adlens/ad-confidence-api/internal/usecases/recommending"
)

// OutcomeResolutionSyncConfig holds the outcome resolution scheduler settings
type OutcomeResolutionSyncConfig struct {
	CronSchedule          string
	MeasurementWindowDays int
	RequestDelaySeconds   int
	SyncEnabled           bool
}

// OutcomeResolutionSyncService periodically resolves followed outcomes whose
// CPA measurement window has elapsed.
type OutcomeResolutionSyncService struct {
	scheduler           *gocron.Scheduler
	config              OutcomeResolutionSyncConfig
	appConfig           *config.Config
	outcomeRepo         repository.OutcomeRepository
	tracker             recommending.Tracker
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewOutcomeResolutionSyncService(
	outcomeRepo repository.OutcomeRepository,
	tracker recommending.Tracker,
	appConfig *config.Config,
) *OutcomeResolutionSyncService {
	syncConfig := OutcomeResolutionSyncConfig{
		CronSchedule:          appConfig.OutcomeResolution.CronSchedule,
		MeasurementWindowDays: appConfig.OutcomeResolution.MeasurementWindowDays,
		RequestDelaySeconds:   appConfig.OutcomeResolution.RequestDelaySeconds,
		SyncEnabled:           appConfig.OutcomeResolution.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":           syncConfig.CronSchedule,
		"measurement_window_days": syncConfig.MeasurementWindowDays,
		"request_delay_seconds":   syncConfig.RequestDelaySeconds,
		"sync_enabled":            syncConfig.SyncEnabled,
	}).Info("Outcome resolution scheduler configuration loaded")

	return &OutcomeResolutionSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		appConfig:   appConfig,
		outcomeRepo: outcomeRepo,
		tracker:     tracker,
		syncRunning: false,
	}
}

// Start starts the scheduler
func (s *OutcomeResolutionSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Outcome resolution sync disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Starting outcome resolution scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncOutcomeResolutions()
	})
	if err != nil {
		return fmt.Errorf("error scheduling outcome resolution sync: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Stopping outcome resolution scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// syncOutcomeResolutions resolves every followed outcome whose measurement
// window has elapsed.
func (s *OutcomeResolutionSyncService) syncOutcomeResolutions() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Outcome resolution sync already running, skipping")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	olderThan := time.Now().UTC().AddDate(0, 0, -s.config.MeasurementWindowDays)

	logrus.WithField("followed_before", olderThan.Format(time.DateOnly)).
		Info("Starting outcome resolution sync")

	outcomes, err := s.outcomeRepo.GetFollowedUnresolved(olderThan)
	if err != nil {
		logrus.WithError(err).Error("Error listing outcomes due for resolution")
		return
	}

	if len(outcomes) == 0 {
		logrus.Info("No outcomes due for resolution")
		return
	}

	resolved := 0
	for _, outcome := range outcomes {
		_, err := s.tracker.Resolve(outcome.ID)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"outcome_id": outcome.ID,
				"account_id": outcome.AccountID,
			}).Error("Error resolving outcome")
		} else {
			resolved++
		}

		// Pace account-level CPA reads against the Meta API
		time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"due":      len(outcomes),
		"resolved": resolved,
	}).Info("Outcome resolution sync completed")

	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync starts a resolution sync outside the schedule
func (s *OutcomeResolutionSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Outcome resolution sync already running, ignoring manual request")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Starting manual outcome resolution sync")
	go s.syncOutcomeResolutions()
}

// GetStatus returns the current sync status
func (s *OutcomeResolutionSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
