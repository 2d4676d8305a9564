// Package analyzer scores text along the four risk dimensions. Each
// dimension picks its strategy at call time: the model path when the matching
// capability is present, the deterministic heuristic otherwise. A model
// failure degrades that single dimension, never the other three.
package analyzer

import (
	"context"
	"log/slog"
	"math"
	"strings"

	"risklab/domain"
	"risklab/language"
	"risklab/lexicon"
	"risklab/provider"
)

// modelInputLimit is the classifier input window, in runes.
const modelInputLimit = 512

type Analyzer struct {
	detector *language.Detector
	lexicons *lexicon.Store
	models   provider.CapabilitySet
	log      *slog.Logger
}

func New(detector *language.Detector, lexicons *lexicon.Store, models provider.CapabilitySet, log *slog.Logger) *Analyzer {
	return &Analyzer{
		detector: detector,
		lexicons: lexicons,
		models:   models,
		log:      log,
	}
}

// Score resolves an "auto" language hint and computes all four dimensions.
func (a *Analyzer) Score(ctx context.Context, text, langHint string) domain.DimensionScores {
	lang := langHint
	if lang == language.Auto || lang == "" {
		lang = a.detector.Detect(text)
	}
	return domain.DimensionScores{
		Toxicity:           a.toxicity(ctx, text, lang),
		HateTargeting:      a.hateTargeting(ctx, text, lang),
		EmotionalIntensity: a.emotionalIntensity(ctx, text),
		PoliticalRelevance: a.politicalRelevance(text, lang),
	}
}

func (a *Analyzer) toxicity(ctx context.Context, text, lang string) float64 {
	if client, ok := a.models.Capability(domain.CapabilityToxicity); ok {
		verdict, err := client.Classify(ctx, truncate(text, modelInputLimit))
		if err == nil {
			if labelHas(verdict.Label, "toxic", "neg") {
				return math.Min(verdict.Score*1.1, 1.0)
			}
			return verdict.Score * 0.5
		}
		a.log.Warn("toxicity inference failed, falling back to keywords", "error", err)
	}
	hits := a.lexicons.Count(lexicon.Toxic, lang, text)
	return toxicityHeuristic(text, hits)
}

func (a *Analyzer) hateTargeting(ctx context.Context, text, lang string) float64 {
	if client, ok := a.models.Capability(domain.CapabilityHate); ok {
		verdict, err := client.Classify(ctx, truncate(text, modelInputLimit))
		if err == nil {
			if labelHas(verdict.Label, "hate", "offensive") {
				return math.Min(verdict.Score*1.2, 1.0)
			}
			return verdict.Score * 0.3
		}
		a.log.Warn("hate inference failed, falling back to keywords", "error", err)
	}
	hits := a.lexicons.Count(lexicon.Hate, lang, text)
	return hateHeuristic(text, hits)
}

func (a *Analyzer) emotionalIntensity(ctx context.Context, text string) float64 {
	if client, ok := a.models.Capability(domain.CapabilitySentiment); ok {
		verdict, err := client.Classify(ctx, truncate(text, modelInputLimit))
		if err == nil {
			switch {
			case labelHas(verdict.Label, "neg"):
				return math.Min(verdict.Score*1.2, 1.0)
			case labelHas(verdict.Label, "pos"):
				return verdict.Score * 0.3
			default:
				return verdict.Score * 0.5
			}
		}
		a.log.Warn("sentiment inference failed, falling back to punctuation rules", "error", err)
	}
	return emotionalHeuristic(text)
}

// politicalRelevance has no model path; it is always keyword based.
func (a *Analyzer) politicalRelevance(text, lang string) float64 {
	hits := a.lexicons.Count(lexicon.Political, lang, text)
	return politicalHeuristic(hits)
}

func labelHas(label string, markers ...string) bool {
	lower := strings.ToLower(label)
	for _, marker := range markers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
