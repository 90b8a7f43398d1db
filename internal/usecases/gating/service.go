// Package gating decides whether enough delivery data exists to trust an ad's
// performance scores and recommendations.
package gating

import (
	"github.com/sirupsen/logrus"

	"github.com/adlens/ad-confidence-api/internal/config"
	"github.com/adlens/ad-confidence-api/internal/domain"
)

// SnapshotProvider supplies a fresh metric snapshot for an ad. Implemented by
// the Meta integrator.
type SnapshotProvider interface {
	GetAdMetricSnapshot(accountID, adID string) (*domain.MetricSnapshot, error)
}

// Gater exposes the gate evaluation to the API layer.
type Gater interface {
	GateAd(accountID, adID string) (*domain.GateStatus, error)
}

type Service struct {
	snapshots  SnapshotProvider
	thresholds domain.Thresholds
}

func NewService(snapshots SnapshotProvider, cfg *config.Config) Gater {
	return &Service{
		snapshots:  snapshots,
		thresholds: cfg.Thresholds(),
	}
}

// GateAd fetches a fresh snapshot for the ad and evaluates every gate.
// A failed or missing fetch is treated as insufficient data, never as a pass:
// the evaluation runs over a zero-valued snapshot so every gate fails closed.
func (s *Service) GateAd(accountID, adID string) (*domain.GateStatus, error) {
	snapshot, err := s.snapshots.GetAdMetricSnapshot(accountID, adID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"ad_id":      adID,
		}).WithError(err).Warn("gating: snapshot fetch failed, failing closed")
		snapshot = nil
	}

	if snapshot == nil {
		status := Evaluate(domain.MetricSnapshot{AdID: adID}, s.thresholds)
		return &status, nil
	}

	if err := snapshot.Validate(); err != nil {
		return nil, err
	}

	status := Evaluate(*snapshot, s.thresholds)
	return &status, nil
}
