package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/adlens/ad-confidence-api/internal/usecases/gating"
	"github.com/adlens/ad-confidence-api/pkg/apiErrors"
	"github.com/adlens/ad-confidence-api/pkg/log"
)

// GetAdGateStatus evaluates the data gates for a single ad and returns the
// full verdict: per-gate results, user-facing messages and display flags.
func GetAdGateStatus(service gating.Gater) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params := httprouter.ParamsFromContext(r.Context())
		accountID := params.ByName("id")
		adID := params.ByName("ad_id")

		if accountID == "" || adID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Account ID and ad ID are required", nil)
			return
		}

		logger.WithFields(log.Fields{
			"account_id": accountID,
			"ad_id":      adID,
		}).Info("gate: evaluating ad gates")

		status, err := service.GateAd(accountID, adID)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": accountID,
				"ad_id":      adID,
			}).WithError(err).Error("gate: evaluation failed")

			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Error evaluating ad gates", nil)
			return
		}

		logger.WithFields(log.Fields{
			"account_id":       accountID,
			"ad_id":            adID,
			"score_delivery":   status.CanScoreDelivery,
			"score_conversion": status.CanScoreConversion,
			"show_recs":        status.CanShowRecommendations,
		}).Info("gate: evaluation completed")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logger.WithError(err).Error("gate: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error encoding response", nil)
		}
	})
}
