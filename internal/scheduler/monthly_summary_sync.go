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
	"github.com/adlens/ad-confidence-api/internal/domain"
	"github.com/adlens/ad-confidence-api/internal/usecases/learning"
)

// MonthlySummarySyncConfig holds the monthly summary scheduler settings
type MonthlySummarySyncConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	MonthLookBack       int
	RetentionMonths     int
	SyncEnabled         bool
}

// MonthlySummarySyncService rebuilds per-account monthly summaries and prunes
// summaries past the retention window.
type MonthlySummarySyncService struct {
	scheduler           *gocron.Scheduler
	config              MonthlySummarySyncConfig
	appConfig           *config.Config
	accountRepo         repository.AccountRepository
	summaryRepo         repository.MonthlySummaryRepository
	learner             learning.Learner
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewMonthlySummarySyncService(
	accountRepo repository.AccountRepository,
	summaryRepo repository.MonthlySummaryRepository,
	learner learning.Learner,
	appConfig *config.Config,
) *MonthlySummarySyncService {
	syncConfig := MonthlySummarySyncConfig{
		CronSchedule:        appConfig.MonthlySummarySync.CronSchedule,
		RequestDelaySeconds: appConfig.MonthlySummarySync.RequestDelaySeconds,
		MonthLookBack:       appConfig.MonthlySummarySync.MonthLookBack,
		RetentionMonths:     appConfig.MonthlySummarySync.RetentionMonths,
		SyncEnabled:         appConfig.MonthlySummarySync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"month_look_back":       syncConfig.MonthLookBack,
		"retention_months":      syncConfig.RetentionMonths,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Monthly summary scheduler configuration loaded")

	return &MonthlySummarySyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		appConfig:   appConfig,
		accountRepo: accountRepo,
		summaryRepo: summaryRepo,
		learner:     learner,
		syncRunning: false,
	}
}

// Start starts the scheduler
func (s *MonthlySummarySyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Monthly summary sync disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Starting monthly summary scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncMonthlySummaries()
	})
	if err != nil {
		return fmt.Errorf("error scheduling monthly summary sync: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Stopping monthly summary scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// syncMonthlySummaries rebuilds the last MonthLookBack months for every active
// account, then prunes summaries past the retention window.
func (s *MonthlySummarySyncService) syncMonthlySummaries() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Monthly summary sync already running, skipping")
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

	logrus.Info("Starting monthly summary sync")

	accounts, err := s.accountRepo.ListAccounts([]domain.AdAccountStatus{domain.AdAccountStatusActive})
	if err != nil {
		logrus.WithError(err).Error("Error listing active accounts for summary sync")
		return
	}

	built := 0
	failed := 0
	now := time.Now().UTC()
	for lookBack := 1; lookBack <= s.config.MonthLookBack; lookBack++ {
		month := now.AddDate(0, -lookBack, 0)

		for _, account := range accounts {
			_, err := s.learner.BuildAndStoreMonthlySummary(account.ID, month)
			if err != nil {
				failed++
				logrus.WithError(err).WithFields(logrus.Fields{
					"account_id": account.ID,
					"month":      month.Format("01-2006"),
				}).Error("Error building monthly summary")
			} else {
				built++
			}

			time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}
	}

	pruned, err := s.summaryRepo.DeleteOlderThan(s.config.RetentionMonths)
	if err != nil {
		logrus.WithError(err).Error("Error pruning expired monthly summaries")
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"accounts": len(accounts),
		"built":    built,
		"failed":   failed,
		"pruned":   pruned,
	}).Info("Monthly summary sync completed")

	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync starts a summary sync outside the schedule
func (s *MonthlySummarySyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Monthly summary sync already running, ignoring manual request")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Starting manual monthly summary sync")
	go s.syncMonthlySummaries()
}

// GetStatus returns the current sync status
func (s *MonthlySummarySyncService) GetStatus() map[string]any {
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
