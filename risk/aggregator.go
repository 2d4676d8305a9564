// Package risk turns the four dimension scores into the aggregated verdict:
// weighted score, discrete level, ordered explanations and a confidence
// estimate.
package risk

import (
	"math"
	"unicode/utf8"

	"github.com/samber/lo"

	"risklab/domain"
)

// Score computes the weighted sum of the four dimensions, capped at 1.0.
func Score(d domain.DimensionScores) float64 {
	total := d.Toxicity*domain.WeightToxicity +
		d.HateTargeting*domain.WeightHateTargeting +
		d.EmotionalIntensity*domain.WeightEmotionalIntensity +
		d.PoliticalRelevance*domain.WeightPoliticalRelevance
	return math.Min(total, 1.0)
}

// Level maps a score onto the level cascade. Everything below the MODERATE
// bound is LOW; the LOW bound itself is not tested.
func Level(score float64) domain.RiskLevel {
	switch {
	case score >= domain.ThresholdSevere:
		return domain.LevelSevere
	case score >= domain.ThresholdHigh:
		return domain.LevelHigh
	case score >= domain.ThresholdModerate:
		return domain.LevelModerate
	default:
		return domain.LevelLow
	}
}

// Explanations builds the ordered human-readable summary: one tiered line per
// elevated dimension (toxicity, hate, emotional, political — fixed order),
// then a level advisory, then a single neutral line when nothing else was
// worth saying.
func Explanations(d domain.DimensionScores, level domain.RiskLevel) []string {
	explanations := make([]string, 0, 5)

	if d.Toxicity > 0.6 {
		explanations = append(explanations, "insulting or aggressive language detected")
	} else if d.Toxicity > 0.3 {
		explanations = append(explanations, "contains mildly inappropriate language")
	}

	if d.HateTargeting > 0.6 {
		explanations = append(explanations, "hate speech or group-targeting content detected")
	} else if d.HateTargeting > 0.3 {
		explanations = append(explanations, "contains negative references to a group")
	}

	if d.EmotionalIntensity > 0.6 {
		explanations = append(explanations, "emotional expression is very intense")
	} else if d.EmotionalIntensity > 0.3 {
		explanations = append(explanations, "emotional expression is elevated")
	}

	if d.PoliticalRelevance > 0.6 {
		explanations = append(explanations, "touches on sensitive political topics")
	} else if d.PoliticalRelevance > 0.3 {
		explanations = append(explanations, "contains politically related content")
	}

	switch level {
	case domain.LevelSevere:
		explanations = append(explanations, "severe risk: content likely violates platform policies")
	case domain.LevelHigh:
		explanations = append(explanations, "high risk: human review recommended")
	case domain.LevelModerate:
		explanations = append(explanations, "moderate risk: worth monitoring")
	}

	if len(explanations) == 0 && level == domain.LevelLow {
		explanations = append(explanations, "content appears neutral with no significant risk")
	}

	return explanations
}

// Confidence estimates how trustworthy the assessment is. Longer texts and
// clear-cut dimension scores raise it; very short texts lower it. The result
// stays within [0.5, 1.0].
func Confidence(text string, d domain.DimensionScores) float64 {
	confidence := 0.7

	if length := utf8.RuneCountInString(text); length > 50 {
		confidence += 0.1
	} else if length < 10 {
		confidence -= 0.2
	}

	max := lo.Max([]float64{d.Toxicity, d.HateTargeting, d.EmotionalIntensity, d.PoliticalRelevance})
	if max > 0.8 {
		confidence += 0.1
	} else if max < 0.2 {
		confidence += 0.05
	}

	return math.Min(math.Max(confidence, 0.5), 1.0)
}
