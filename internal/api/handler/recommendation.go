package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/adlens/ad-confidence-api/internal/usecases/recommending"
	"github.com/adlens/ad-confidence-api/pkg/apiErrors"
	"github.com/adlens/ad-confidence-api/pkg/log"
	"github.com/adlens/ad-confidence-api/pkg/utils"
)

// writeRecommendingError maps a recommending usecase error onto the API error
// taxonomy, falling back to an internal error for anything unrecognized.
func writeRecommendingError(w http.ResponseWriter, err error) {
	var recErr *recommending.RecommendingError
	if errors.As(err, &recErr) {
		apiErrors.WriteError(w, recErr.Code, recErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Internal error processing recommendation", nil)
}

// TrackRecommendation registers a recommendation for outcome tracking. The
// recommendation only gets in when the target ad passes its gates and the
// text maps onto a tracked type.
func TrackRecommendation(service recommending.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req recommending.TrackRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body: "+err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"account_id": req.AccountID,
			"ad_id":      req.AdID,
		}).Info("recommendation: tracking")

		outcome, err := service.Track(req)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": req.AccountID,
				"ad_id":      req.AdID,
			}).WithError(err).Warn("recommendation: tracking rejected")

			writeRecommendingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(outcome); err != nil {
			logger.WithError(err).Error("recommendation: failed to encode response")
		}
	})
}

// FollowRecommendation marks a tracked recommendation as applied by the user
// and captures the baseline CPA for later resolution.
func FollowRecommendation(service recommending.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Recommendation ID is required", nil)
			return
		}

		outcome, err := service.MarkFollowed(id)
		if err != nil {
			logger.WithField("outcome_id", id).WithError(err).Error("recommendation: failed to mark followed")
			writeRecommendingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(outcome); err != nil {
			logger.WithError(err).Error("recommendation: failed to encode response")
		}
	})
}

// ResolveRecommendation closes a followed recommendation by measuring the CPA
// movement since its baseline. Normally the resolution scheduler does this;
// the endpoint exists for resolving out of band.
func ResolveRecommendation(service recommending.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Recommendation ID is required", nil)
			return
		}

		outcome, err := service.Resolve(id)
		if err != nil {
			logger.WithField("outcome_id", id).WithError(err).Error("recommendation: failed to resolve")
			writeRecommendingError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"outcome_id":    outcome.ID,
			"cpa_delta_pct": outcome.CPADeltaPct,
		}).Info("recommendation: resolved")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(outcome); err != nil {
			logger.WithError(err).Error("recommendation: failed to encode response")
		}
	})
}

// ListAccountRecommendations returns an account's tracked recommendations in
// generation order, optionally restricted to a yyyy-mm-dd date range.
func ListAccountRecommendations(service recommending.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if accountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Account ID is required", nil)
			return
		}

		startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid start_date, expected yyyy-mm-dd", nil)
			return
		}

		endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid end_date, expected yyyy-mm-dd", nil)
			return
		}

		outcomes, err := service.ListByAccount(accountID)
		if err != nil {
			logger.WithField("account_id", accountID).WithError(err).Error("recommendation: failed to list")
			writeRecommendingError(w, err)
			return
		}

		if !startDate.IsZero() || !endDate.IsZero() {
			filtered := outcomes[:0]
			for _, outcome := range outcomes {
				if !startDate.IsZero() && outcome.GeneratedAt.Before(*startDate) {
					continue
				}
				if !endDate.IsZero() && !outcome.GeneratedAt.Before(endDate.AddDate(0, 0, 1)) {
					continue
				}
				filtered = append(filtered, outcome)
			}
			outcomes = filtered
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(outcomes); err != nil {
			logger.WithError(err).Error("recommendation: failed to encode response")
		}
	})
}
