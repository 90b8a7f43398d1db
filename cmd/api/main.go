package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/adlens/ad-confidence-api/infrastructure/database/postgres"
	"github.com/adlens/ad-confidence-api/infrastructure/integrator/meta"
	"github.com/adlens/ad-confidence-api/infrastructure/integrator/meta/metaclient"
	"github.com/adlens/ad-confidence-api/infrastructure/repository"
	"github.com/adlens/ad-confidence-api/internal/api"
	"github.com/adlens/ad-confidence-api/internal/config"
	"github.com/adlens/ad-confidence-api/internal/scheduler"
	"github.com/adlens/ad-confidence-api/internal/usecases/account"
	"github.com/adlens/ad-confidence-api/internal/usecases/authenticating"
	"github.com/adlens/ad-confidence-api/internal/usecases/gating"
	"github.com/adlens/ad-confidence-api/internal/usecases/learning"
	"github.com/adlens/ad-confidence-api/internal/usecases/privacy"
	"github.com/adlens/ad-confidence-api/internal/usecases/recommending"
	"github.com/sirupsen/logrus"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Invalid log level: %s, falling back to 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Log level set to: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	accountRepo := repository.NewAccountRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)
	outcomeRepo := repository.NewOutcomeRepository(pgConn)
	summaryRepo := repository.NewMonthlySummaryRepository(pgConn)
	privacySettingsRepo := repository.NewPrivacySettingsRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, accountRepo, cfg)

	tokenManager := metaclient.NewTokenManager(cfg)
	go tokenManager.StartAutoRefresh()
	defer tokenManager.StopAutoRefresh()

	metaClient := metaclient.NewClient(cfg, tokenManager)
	metaIntegrator := meta.New(cfg, metaClient)

	accountService := account.NewService(accountRepo, userRepo, metaIntegrator, cfg)

	gater := gating.NewService(metaIntegrator, cfg)
	privacyGate := privacy.NewService(privacySettingsRepo)
	learner := learning.NewService(cfg, outcomeRepo, summaryRepo, privacyGate)
	tracker := recommending.NewService(cfg, outcomeRepo, gater, metaIntegrator)

	outcomeResolutionSyncService := scheduler.NewOutcomeResolutionSyncService(
		outcomeRepo,
		tracker,
		cfg,
	)

	monthlySummarySyncService := scheduler.NewMonthlySummarySyncService(
		accountRepo,
		summaryRepo,
		learner,
		cfg,
	)

	if err := outcomeResolutionSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Failed to start the outcome resolution scheduler")
	} else {
		logrus.Info("Outcome resolution scheduler started successfully")
	}

	if err := monthlySummarySyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Failed to start the monthly summary scheduler")
	} else {
		logrus.Info("Monthly summary scheduler started successfully")
	}

	server, err := api.New(
		cfg,
		accountService,
		authenticator,
		gater,
		tracker,
		learner,
		privacyGate,
		outcomeResolutionSyncService,
		monthlySummarySyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger sets the log format and working directory
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn opens a database connection and verifies it is reachable
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to ping PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established successfully")
	return conn
}
