package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/adlens/ad-confidence-api/internal/api/handler"
	"github.com/adlens/ad-confidence-api/internal/api/handler/router"
	"github.com/adlens/ad-confidence-api/internal/config"
	"github.com/adlens/ad-confidence-api/internal/scheduler"
	"github.com/adlens/ad-confidence-api/internal/usecases/account"
	"github.com/adlens/ad-confidence-api/internal/usecases/authenticating"
	"github.com/adlens/ad-confidence-api/internal/usecases/gating"
	"github.com/adlens/ad-confidence-api/internal/usecases/learning"
	"github.com/adlens/ad-confidence-api/internal/usecases/privacy"
	"github.com/adlens/ad-confidence-api/internal/usecases/recommending"
	"github.com/adlens/ad-confidence-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	accountService account.AccountService,
	authenticator authenticating.Authenticator,
	gater gating.Gater,
	tracker recommending.Tracker,
	learner learning.Learner,
	privacyGate privacy.Gate,
	outcomeResolutionSyncService *scheduler.OutcomeResolutionSyncService,
	monthlySummarySyncService *scheduler.MonthlySummarySyncService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		OutcomeResolutionSyncService: outcomeResolutionSyncService,
		MonthlySummarySyncService:    monthlySummarySyncService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.User(authenticator)...),
		router.WithRoutes(handler.AdAccounts(accountService)...),
		router.WithRoutes(handler.UserAccounts(authenticator)...),
		router.WithRoutes(handler.Gating(gater)...),
		router.WithRoutes(handler.Recommendations(tracker)...),
		router.WithRoutes(handler.Learning(learner)...),
		router.WithRoutes(handler.Privacy(privacyGate)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Error while running the server")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Interrupt signal received")
	case <-ctx.Done():
		logrus.Info("Application context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Starting graceful server shutdown")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Error during server shutdown")
		return err
	}

	logrus.Info("Server shut down successfully")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("HTTP server shut down successfully")
	return nil
}
