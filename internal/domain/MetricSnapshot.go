package domain

import (
	"fmt"
	"time"
)

// MetricSnapshot is a read-only view of an ad's lifetime delivery and
// conversion metrics, produced fresh per evaluation by the Meta integrator.
// It is never cached across evaluations.
type MetricSnapshot struct {
	AdID string `json:"ad_id"`

	// AgeHours is the time elapsed since the ad was created, in hours.
	AgeHours float64 `json:"age_hours"`

	Impressions int `json:"impressions"`

	// Conversions is the platform-attributed conversion count.
	Conversions int `json:"conversions"`

	// PixelConversions is the pixel-attributed conversion count, used to
	// detect attribution mismatch against Conversions.
	PixelConversions int `json:"pixel_conversions"`

	// IOSTrafficShare is the fraction of impressions attributed to iOS
	// placements (0.0 to 1.0).
	IOSTrafficShare float64 `json:"ios_traffic_share"`

	// AttributionMismatch is set when platform and pixel conversion counts
	// diverge beyond the configured tolerance.
	AttributionMismatch bool `json:"attribution_mismatch"`

	Spend float64 `json:"spend"`

	CapturedAt time.Time `json:"captured_at"`
}

// Validate rejects malformed snapshots at the boundary. Negative counts are
// an input error and are never silently clamped to zero, since clamping would
// corrupt gate semantics.
func (s *MetricSnapshot) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: nil snapshot", ErrInvalidInput)
	}
	if s.AgeHours < 0 {
		return fmt.Errorf("%w: negative ad age (%f hours)", ErrInvalidInput, s.AgeHours)
	}
	if s.Impressions < 0 {
		return fmt.Errorf("%w: negative impressions (%d)", ErrInvalidInput, s.Impressions)
	}
	if s.Conversions < 0 {
		return fmt.Errorf("%w: negative conversions (%d)", ErrInvalidInput, s.Conversions)
	}
	if s.PixelConversions < 0 {
		return fmt.Errorf("%w: negative pixel conversions (%d)", ErrInvalidInput, s.PixelConversions)
	}
	if s.IOSTrafficShare < 0 || s.IOSTrafficShare > 1 {
		return fmt.Errorf("%w: iOS traffic share out of range (%f)", ErrInvalidInput, s.IOSTrafficShare)
	}
	if s.Spend < 0 {
		return fmt.Errorf("%w: negative spend (%f)", ErrInvalidInput, s.Spend)
	}
	return nil
}
