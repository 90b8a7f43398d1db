package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/adlens/ad-confidence-api/internal/domain"
	"github.com/adlens/ad-confidence-api/internal/scheduler"
	"github.com/adlens/ad-confidence-api/pkg/apiErrors"
	"github.com/adlens/ad-confidence-api/pkg/middleware"
)

const (
	CronJobTypeOutcomeResolution = "outcome-resolution"
	CronJobTypeMonthlySummary    = "monthly-summary"
	CronJobTypeAll               = "all"
)

// CronJobServices holds the schedulers exposed for manual triggering
type CronJobServices struct {
	OutcomeResolutionSyncService *scheduler.OutcomeResolutionSyncService
	MonthlySummarySyncService    *scheduler.MonthlySummarySyncService
}

// RunCronJob manually triggers a specific cron job
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != 1 {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Only administrators can run cron jobs", nil)
			return
		}

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Cron job type not specified", nil)
			return
		}

		switch cronType {
		case CronJobTypeOutcomeResolution:
			if services.OutcomeResolutionSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Outcome resolution sync service unavailable", nil)
				return
			}
			services.OutcomeResolutionSyncService.TriggerManualSync()

		case CronJobTypeMonthlySummary:
			if services.MonthlySummarySyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Monthly summary sync service unavailable", nil)
				return
			}
			services.MonthlySummarySyncService.TriggerManualSync()

		case CronJobTypeAll:
			if services.OutcomeResolutionSyncService != nil {
				services.OutcomeResolutionSyncService.TriggerManualSync()
			}
			if services.MonthlySummarySyncService != nil {
				services.MonthlySummarySyncService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid cron job type. Accepted values: outcome-resolution, monthly-summary, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job started successfully",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus returns the status of the cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != 1 {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Only administrators can check cron job status", nil)
			return
		}

		status := map[string]any{
			"outcome-resolution": services.OutcomeResolutionSyncService.GetStatus(),
			"monthly-summary":    services.MonthlySummarySyncService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
