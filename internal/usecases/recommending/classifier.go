package recommending

import (
	"regexp"
	"strings"

	"github.com/adlens/ad-confidence-api/internal/domain"
)

// typeRules maps each recommendation type to the keyword patterns that
// classify free text into it. The taxonomy is closed: text matching none of
// the rules is unclassified and never tracked.
var typeRules = map[domain.RecommendationType][]*regexp.Regexp{
	domain.RecMotionTiming: {
		regexp.MustCompile(`\bmotion\b`),
		regexp.MustCompile(`\bmovement\b`),
		regexp.MustCompile(`\banimation\b`),
	},
	domain.RecCutDensity: {
		regexp.MustCompile(`\bcuts?\b`),
		regexp.MustCompile(`\bscene changes?\b`),
		regexp.MustCompile(`\bpacing\b`),
	},
	domain.RecTextAppearance: {
		regexp.MustCompile(`\btext overlay\b`),
		regexp.MustCompile(`\bcaption\b`),
		regexp.MustCompile(`\bheadline\b`),
		regexp.MustCompile(`\bon-screen text\b`),
	},
	domain.RecValueTiming: {
		regexp.MustCompile(`\bvalue prop(osition)?\b`),
		regexp.MustCompile(`\bbenefit\b`),
	},
	domain.RecOfferTiming: {
		regexp.MustCompile(`\boffer\b`),
		regexp.MustCompile(`\bdiscount\b`),
		regexp.MustCompile(`\bpromo(tion)?\b`),
	},
	domain.RecCTAClarity: {
		regexp.MustCompile(`\bcall to action\b`),
		regexp.MustCompile(`\bcta\b`),
	},
	domain.RecProofAddition: {
		regexp.MustCompile(`\btestimonials?\b`),
		regexp.MustCompile(`\breviews?\b`),
		regexp.MustCompile(`\bsocial proof\b`),
		regexp.MustCompile(`\bcase stud(y|ies)\b`),
	},
	domain.RecPricingVisibility: {
		regexp.MustCompile(`\bprice\b`),
		regexp.MustCompile(`\bpricing\b`),
	},
	domain.RecLandingPage: {
		regexp.MustCompile(`\blanding page\b`),
		regexp.MustCompile(`\bhero section\b`),
	},
	domain.RecCheckoutFlow: {
		regexp.MustCompile(`\bcheckout\b`),
		regexp.MustCompile(`\bcart\b`),
		regexp.MustCompile(`\bpayment step\b`),
	},
	domain.RecAudienceRefresh: {
		regexp.MustCompile(`\baudience\b`),
		regexp.MustCompile(`\bad fatigue\b`),
		regexp.MustCompile(`\bfrequency cap\b`),
	},
}

// specificitySignals holds, per type, the patterns a recommendation must hit
// to count as specific: a concrete, measurable change such as a time offset,
// a quantity or a named element. Generic template text matches none of them.
var specificitySignals = map[domain.RecommendationType][]*regexp.Regexp{
	domain.RecMotionTiming: {
		regexp.MustCompile(`\d+(\.\d+)?\s*(s|sec|seconds?)\b`),
		regexp.MustCompile(`\bfirst \d+\b`),
	},
	domain.RecCutDensity: {
		regexp.MustCompile(`\d+\s*cuts?\b`),
		regexp.MustCompile(`\bevery \d+(\.\d+)?\s*(s|sec|seconds?)\b`),
	},
	domain.RecTextAppearance: {
		regexp.MustCompile(`\d+(\.\d+)?\s*(s|sec|seconds?)\b`),
		regexp.MustCompile(`"[^"]+"`),
	},
	domain.RecValueTiming: {
		regexp.MustCompile(`\d+(\.\d+)?\s*(s|sec|seconds?)\b`),
		regexp.MustCompile(`\bfirst \d+\b`),
	},
	domain.RecOfferTiming: {
		regexp.MustCompile(`\d+(\.\d+)?\s*(s|sec|seconds?)\b`),
		regexp.MustCompile(`\d+\s*%`),
	},
	domain.RecCTAClarity: {
		regexp.MustCompile(`"[^"]+"`),
		regexp.MustCompile(`\bbutton\b`),
	},
	domain.RecProofAddition: {
		regexp.MustCompile(`\d+`),
		regexp.MustCompile(`"[^"]+"`),
	},
	domain.RecPricingVisibility: {
		regexp.MustCompile(`[$€£]\s*\d+`),
		regexp.MustCompile(`\d+\s*%`),
		regexp.MustCompile(`\babove the fold\b`),
	},
	domain.RecLandingPage: {
		regexp.MustCompile(`\bhero\b`),
		regexp.MustCompile(`\bheadline\b`),
		regexp.MustCompile(`\bform\b`),
		regexp.MustCompile(`"[^"]+"`),
	},
	domain.RecCheckoutFlow: {
		regexp.MustCompile(`\d+\s*steps?\b`),
		regexp.MustCompile(`\bguest checkout\b`),
		regexp.MustCompile(`\bone[- ]click\b`),
	},
	domain.RecAudienceRefresh: {
		regexp.MustCompile(`\d+(\.\d+)?\s*%`),
		regexp.MustCompile(`\blookalike\b`),
		regexp.MustCompile(`\bfrequency (of|above) \d+`),
	},
}

// Classify maps free recommendation text onto the fixed taxonomy. Types are
// checked in the stable taxonomy order so classification is deterministic
// when text touches more than one subject.
func Classify(text string) domain.RecommendationType {
	normalized := strings.ToLower(text)

	for _, recType := range domain.RecommendationTypes {
		for _, rule := range typeRules[recType] {
			if rule.MatchString(normalized) {
				return recType
			}
		}
	}

	return domain.RecommendationUnclassified
}

// IsSpecific reports whether the text names a concrete, measurable change for
// its classified type. Unclassified text is never specific. This is a rule
// check over fixed signal patterns, not inference.
func IsSpecific(text string) bool {
	recType := Classify(text)
	if recType == domain.RecommendationUnclassified {
		return false
	}

	normalized := strings.ToLower(text)
	for _, signal := range specificitySignals[recType] {
		if signal.MatchString(normalized) {
			return true
		}
	}

	return false
}
