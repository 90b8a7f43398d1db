package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/adlens/ad-confidence-api/internal/domain"
	"github.com/adlens/ad-confidence-api/internal/usecases/learning"
	"github.com/adlens/ad-confidence-api/pkg/apiErrors"
	"github.com/adlens/ad-confidence-api/pkg/log"
)

// GetAccountPatterns returns the per-type patterns learned from an account's
// outcome history. With actionable_only=true, only patterns significant
// enough to act on are returned.
func GetAccountPatterns(service learning.Learner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if accountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Account ID is required", nil)
			return
		}

		actionableOnly := r.URL.Query().Get("actionable_only") == "true"

		logger.WithFields(log.Fields{
			"account_id":      accountID,
			"actionable_only": actionableOnly,
		}).Info("patterns: fetching account patterns")

		patterns, err := service.GetAccountPatterns(accountID, actionableOnly)
		if err != nil {
			logger.WithField("account_id", accountID).WithError(err).Error("patterns: failed to aggregate")

			if errors.Is(err, domain.ErrInvalidInput) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error aggregating account patterns", nil)
			return
		}

		logger.WithFields(log.Fields{
			"account_id": accountID,
			"patterns":   len(patterns),
		}).Info("patterns: aggregation completed")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(patterns); err != nil {
			logger.WithError(err).Error("patterns: failed to encode response")
		}
	})
}

// GetMonthlySummary returns an account's summary for a single month, taken
// from the cache when present and rebuilt from outcomes otherwise.
func GetMonthlySummary(service learning.Learner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if accountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Account ID is required", nil)
			return
		}

		month := r.URL.Query().Get("month")
		year := r.URL.Query().Get("year")

		if month == "" || year == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Month and year query parameters are required", nil)
			return
		}

		if len(month) != 2 || month < "01" || month > "12" {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid month. Use two digits (01-12)", nil)
			return
		}

		if len(year) != 4 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid year. Use four digits (e.g. 2025)", nil)
			return
		}

		period := fmt.Sprintf("%s-%s", month, year)

		logger.WithFields(log.Fields{
			"account_id": accountID,
			"period":     period,
		}).Info("summary: fetching monthly summary")

		summary, err := service.GetMonthlySummary(accountID, period)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": accountID,
				"period":     period,
			}).WithError(err).Error("summary: failed to fetch")

			if errors.Is(err, domain.ErrInvalidInput) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error fetching monthly summary", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logger.WithError(err).Error("summary: failed to encode response")
		}
	})
}

// GetAvailableSummaryPeriods returns the months and years with stored
// summaries.
func GetAvailableSummaryPeriods(service learning.Learner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("summary-periods: fetching available periods")

		availablePeriods, err := service.GetAvailablePeriods()
		if err != nil {
			logger.WithError(err).Error("summary-periods: failed to fetch")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error fetching available periods", nil)
			return
		}

		logger.WithFields(log.Fields{
			"total_periods": len(availablePeriods.Periods),
			"years":         availablePeriods.Years,
			"months":        availablePeriods.Months,
		}).Info("summary-periods: available periods retrieved")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(availablePeriods); err != nil {
			logger.WithError(err).Error("summary-periods: failed to encode response")
		}
	})
}

// GetCrossAccountBenchmarks returns the anonymous cross-account patterns.
// The response carries no account identifiers, only per-type aggregates over
// the accounts currently opted into sharing.
func GetCrossAccountBenchmarks(service learning.Learner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("benchmarks: fetching cross-account patterns")

		patterns, err := service.GetCrossAccountPatterns()
		if err != nil {
			logger.WithError(err).Error("benchmarks: failed to aggregate")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error aggregating cross-account patterns", nil)
			return
		}

		logger.WithField("patterns", len(patterns)).Info("benchmarks: aggregation completed")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(patterns); err != nil {
			logger.WithError(err).Error("benchmarks: failed to encode response")
		}
	})
}
