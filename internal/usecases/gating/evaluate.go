package gating

import (
	"fmt"
	"math"

	"github.com/adlens/ad-confidence-api/internal/domain"
)

// Gate message templates. The assembly order in Evaluate is fixed (age,
// impressions, conversions volume, attribution mismatch, spend) so the
// presentation ordering is deterministic.
const (
	msgAgeRemaining        = "Ad needs %d more hours of delivery data."
	msgImpressionsLow      = "Ad needs at least %d impressions before delivery can be scored."
	msgConversionsMissing  = "Ad needs at least %d conversion(s) before conversion performance can be scored."
	msgAttributionMismatch = "Pixel and platform conversion counts disagree; conversion scoring is paused until attribution stabilizes."
	msgSpendRemaining      = "Ad needs %.2f more in spend before recommendations are available."
	msgIOSCaveat           = "Over %.0f%% of traffic is iOS-attributed; conversion data may under-report."
)

// Evaluate turns a metric snapshot into a GateStatus. Pure and deterministic:
// no I/O, no clock reads, everything derives from the snapshot and thresholds.
// The snapshot must already be validated at the boundary.
func Evaluate(snapshot domain.MetricSnapshot, th domain.Thresholds) domain.GateStatus {
	status := domain.GateStatus{
		AdID:     snapshot.AdID,
		Messages: []string{},
	}

	status.Age = evaluateAge(snapshot.AgeHours, th)
	status.Impressions = evaluateImpressions(snapshot.Impressions, th)
	status.Conversions = evaluateConversions(snapshot.Conversions, th)
	status.IOSTraffic = domain.IOSTrafficGate{
		Penalized: snapshot.IOSTrafficShare > th.IOSPenaltyThreshold,
		Share:     snapshot.IOSTrafficShare,
	}
	status.AttributionMismatch = domain.AttributionMismatchGate{
		Blocked: snapshot.AttributionMismatch,
	}
	status.Spend = evaluateSpend(snapshot.Spend, th)

	status.CanScoreDelivery = status.Age.Passed && status.Impressions.Level != domain.ImpressionLow
	status.CanScoreConversion = status.Conversions.Level != domain.ConversionInsufficient &&
		!status.AttributionMismatch.Blocked
	status.CanShowRecommendations = status.Age.Passed && status.Spend.Passed

	// Fixed message priority: age, impressions, conversions, spend.
	if !status.Age.Passed {
		status.Messages = append(status.Messages,
			fmt.Sprintf(msgAgeRemaining, int(math.Ceil(status.Age.HoursRemaining))))
	}
	if status.Impressions.Level == domain.ImpressionLow {
		status.Messages = append(status.Messages,
			fmt.Sprintf(msgImpressionsLow, th.ImpressionMediumFloor))
	}
	if status.Conversions.Level == domain.ConversionInsufficient {
		status.Messages = append(status.Messages,
			fmt.Sprintf(msgConversionsMissing, th.ConversionLowFloor))
	}
	if status.AttributionMismatch.Blocked {
		status.Messages = append(status.Messages, msgAttributionMismatch)
	}
	if !status.Spend.Passed {
		status.Messages = append(status.Messages,
			fmt.Sprintf(msgSpendRemaining, status.Spend.AmountRemaining))
	}

	if status.IOSTraffic.Penalized {
		status.Caveats = append(status.Caveats,
			fmt.Sprintf(msgIOSCaveat, th.IOSPenaltyThreshold*100))
	}

	return status
}

func evaluateAge(ageHours float64, th domain.Thresholds) domain.AgeGate {
	if ageHours >= th.MinAgeHours {
		return domain.AgeGate{Passed: true}
	}
	return domain.AgeGate{
		Passed:         false,
		HoursRemaining: th.MinAgeHours - ageHours,
	}
}

func evaluateImpressions(count int, th domain.Thresholds) domain.ImpressionsGate {
	gate := domain.ImpressionsGate{Count: count}

	switch {
	case count >= th.ImpressionHighFloor:
		gate.Level = domain.ImpressionHigh
	case count >= th.ImpressionMediumFloor:
		gate.Level = domain.ImpressionMedium
		gate.NextThreshold = th.ImpressionHighFloor
	default:
		gate.Level = domain.ImpressionLow
		gate.NextThreshold = th.ImpressionMediumFloor
	}

	return gate
}

func evaluateConversions(count int, th domain.Thresholds) domain.ConversionsGate {
	gate := domain.ConversionsGate{Count: count}

	switch {
	case count >= th.ConversionHighFloor:
		gate.Level = domain.ConversionHigh
	case count >= th.ConversionMediumFloor:
		gate.Level = domain.ConversionMedium
		gate.NextThreshold = th.ConversionHighFloor
	case count >= th.ConversionLowFloor:
		gate.Level = domain.ConversionLow
		gate.NextThreshold = th.ConversionMediumFloor
	default:
		gate.Level = domain.ConversionInsufficient
		gate.NextThreshold = th.ConversionLowFloor
	}

	return gate
}

func evaluateSpend(spend float64, th domain.Thresholds) domain.SpendGate {
	if spend >= th.MinSpend {
		return domain.SpendGate{Passed: true}
	}
	return domain.SpendGate{
		Passed:          false,
		AmountRemaining: th.MinSpend - spend,
	}
}
