package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/samber/lo"

	"risklab/analyzer"
	"risklab/domain"
	"risklab/errors"
	"risklab/language"
	"risklab/lexicon"
	"risklab/observability"
	"risklab/provider"
	"risklab/risk"
)

type IRiskService interface {
	Analyze(ctx context.Context, text, lang string) domain.RiskAssessment
	BatchAnalyze(ctx context.Context, texts []string, lang string) []domain.RiskAssessment
}

// RiskService runs the full scoring pipeline. Construct once, reuse for many
// calls: the detector, lexicons and model capabilities are read-only after
// construction, so concurrent Analyze calls need no locking.
type RiskService struct {
	detector *language.Detector
	analyzer *analyzer.Analyzer
	monitor  *observability.Monitor
	log      *slog.Logger
}

func NewRiskService(models provider.CapabilitySet, log *slog.Logger) (*RiskService, error) {
	lexicons, err := lexicon.NewStore()
	if err != nil {
		return nil, fmt.Errorf("building lexicon matchers: %w", err)
	}
	detector := language.NewDetector()
	return &RiskService{
		detector: detector,
		analyzer: analyzer.New(detector, lexicons, models, log),
		monitor:  observability.NewMonitor(log),
		log:      log,
	}, nil
}

// Analyze validates the input, scores it and assembles the assessment.
// Invalid input and pipeline panics both come back as a failure assessment;
// the service stays usable afterwards.
func (s *RiskService) Analyze(ctx context.Context, text, lang string) domain.RiskAssessment {
	start := time.Now()
	if lang == "" {
		lang = language.Auto
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		out := failureAssessment(errors.ErrEmptyText.Error())
		s.monitor.Record(time.Since(start), false)
		return out
	}
	if !isTextContent(trimmed) {
		out := failureAssessment(errors.ErrNotText.Error())
		s.monitor.Record(time.Since(start), false)
		return out
	}

	out := s.assess(ctx, trimmed, lang, start)
	s.monitor.Record(time.Since(start), out.Success)
	return out
}

func (s *RiskService) assess(ctx context.Context, text, lang string, start time.Time) (out domain.RiskAssessment) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("scoring pipeline panicked", "panic", r)
			out = failureAssessment(fmt.Sprintf("analysis failed: %v", r))
		}
	}()

	dimensions := s.analyzer.Score(ctx, text, lang)
	dimensions = clampDimensions(dimensions)

	score := risk.Score(dimensions)
	level := risk.Level(score)
	explanations := risk.Explanations(dimensions, level)
	confidence := risk.Confidence(text, dimensions)

	return domain.RiskAssessment{
		Success:   true,
		RiskLevel: level,
		RiskScore: round3(score),
		Dimensions: domain.DimensionScores{
			Toxicity:           round3(dimensions.Toxicity),
			HateTargeting:      round3(dimensions.HateTargeting),
			EmotionalIntensity: round3(dimensions.EmotionalIntensity),
			PoliticalRelevance: round3(dimensions.PoliticalRelevance),
		},
		Explanations:     explanations,
		Confidence:       round2(confidence),
		DetectedLanguage: s.detector.Detect(text),
		OriginalLanguage: lang,
		ProcessingTime:   lo.ToPtr(round3(time.Since(start).Seconds())),
		Timestamp:        time.Now().UTC().Format(time.RFC3339),
	}
}

// BatchAnalyze scores each text independently, preserving order and count.
// A failure on one item never affects its neighbours.
func (s *RiskService) BatchAnalyze(ctx context.Context, texts []string, lang string) []domain.RiskAssessment {
	return lo.Map(texts, func(text string, _ int) domain.RiskAssessment {
		return s.Analyze(ctx, text, lang)
	})
}

// Stats exposes the engine counters.
func (s *RiskService) Stats() observability.EngineStats {
	return s.monitor.Snapshot()
}

func failureAssessment(msg string) domain.RiskAssessment {
	return domain.RiskAssessment{
		Success:      false,
		RiskLevel:    domain.LevelUnknown,
		RiskScore:    0.0,
		Dimensions:   domain.DimensionScores{},
		Explanations: []string{msg},
		Confidence:   0.0,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		Error:        msg,
	}
}

// isTextContent rejects pasted binary payloads: anything whose detected MIME
// type does not descend from text/plain.
func isTextContent(text string) bool {
	for m := mimetype.Detect([]byte(text)); m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	return false
}

func clampDimensions(d domain.DimensionScores) domain.DimensionScores {
	return domain.DimensionScores{
		Toxicity:           clamp01(d.Toxicity),
		HateTargeting:      clamp01(d.HateTargeting),
		EmotionalIntensity: clamp01(d.EmotionalIntensity),
		PoliticalRelevance: clamp01(d.PoliticalRelevance),
	}
}

func clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0.0), 1.0)
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

var (
	defaultService *RiskService
	defaultOnce    sync.Once
)

// Default returns a process-wide heuristic-only service, built on first use.
// Callers wanting model capabilities construct their own RiskService.
func Default(log *slog.Logger) *RiskService {
	defaultOnce.Do(func() {
		svc, err := NewRiskService(provider.Static(nil), log)
		if err != nil {
			// The built-in lexicons are constants; a build failure here is a
			// programming error.
			panic(err)
		}
		defaultService = svc
	})
	return defaultService
}

// AnalyzeText is the drop-in single-call entry point over Default.
func AnalyzeText(ctx context.Context, text, lang string, log *slog.Logger) domain.RiskAssessment {
	return Default(log).Analyze(ctx, text, lang)
}

// BatchAnalyzeText applies AnalyzeText to every element of texts.
func BatchAnalyzeText(ctx context.Context, texts []string, lang string, log *slog.Logger) []domain.RiskAssessment {
	return Default(log).BatchAnalyze(ctx, texts, lang)
}
