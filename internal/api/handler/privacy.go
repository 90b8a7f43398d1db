package handler

import (
	"encoding/json"
	"net/http"

	"github.com/adlens/ad-confidence-api/internal/domain"
	"github.com/adlens/ad-confidence-api/internal/usecases/privacy"
	"github.com/adlens/ad-confidence-api/pkg/apiErrors"
	"github.com/adlens/ad-confidence-api/pkg/log"
	"github.com/adlens/ad-confidence-api/pkg/middleware"
)

type updatePrivacySettingsRequest struct {
	ShareAggregates *bool `json:"share_aggregates"`
}

// GetPrivacySettings returns the authenticated user's sharing settings,
// falling back to the opted-in default when nothing was ever stored.
func GetPrivacySettings(service privacy.Gate) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "User not authenticated", nil)
			return
		}

		settings, err := service.GetSettings(userClaims.UserID)
		if err != nil {
			logger.WithField("user_id", userClaims.UserID).WithError(err).Error("privacy: failed to load settings")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error loading privacy settings", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(settings); err != nil {
			logger.WithError(err).Error("privacy: failed to encode response")
		}
	})
}

// UpdatePrivacySettings sets the authenticated user's sharing opt-in. An
// opt-out takes effect on the next cross-account aggregation.
func UpdatePrivacySettings(service privacy.Gate) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "User not authenticated", nil)
			return
		}

		var req updatePrivacySettingsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body: "+err.Error(), nil)
			return
		}
		if req.ShareAggregates == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "share_aggregates is required", nil)
			return
		}

		settings, err := service.UpdateSettings(userClaims.UserID, *req.ShareAggregates)
		if err != nil {
			logger.WithField("user_id", userClaims.UserID).WithError(err).Error("privacy: failed to update settings")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error updating privacy settings", nil)
			return
		}

		logger.WithFields(log.Fields{
			"user_id":          userClaims.UserID,
			"share_aggregates": settings.ShareAggregates,
		}).Info("privacy: settings updated")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(settings); err != nil {
			logger.WithError(err).Error("privacy: failed to encode response")
		}
	})
}
