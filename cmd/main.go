package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"

	"risklab/domain"
	"risklab/provider"
	"risklab/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires the pipeline and analyzes a handful of multilingual samples.
// Keeping the logic out of main() lets defers run before the process exits
// and keeps the setup testable.
func run() error {
	// Missing .env is fine, the environment may already be populated.
	_ = godotenv.Load()

	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	models := provider.NewManager(ctx, provider.Config{
		SentimentEndpoint:        config.SentimentEndpoint,
		ToxicityEndpoint:         config.ToxicityEndpoint,
		ToxicityFallbackEndpoint: config.ToxicityFallbackEndpoint,
		HateEndpoint:             config.HateEndpoint,
		Timeout:                  config.InferenceTimeout,
	}, log)
	if !models.HasCapabilities() {
		log.Info("no model capabilities acquired, scoring is fully heuristic")
	}

	service, err := services.NewRiskService(models, log)
	if err != nil {
		return fmt.Errorf("building risk service: %w", err)
	}

	samples := []string{
		"hello! 你好! こんにちは!",
		"バカ！お前が大嫌いだ！",
		"你个二货",
		"You're such an IDIOT! I can't believe you did that!...",
		"The government announced a new election policy and a controversial law.",
	}

	results := service.BatchAnalyze(ctx, samples, "auto")
	render(os.Stdout, samples, results)

	stats := service.Stats()
	log.Info("engine stats",
		"analyzed", stats.Analyzed,
		"failed", stats.Failed,
		"avg_latency_ms", stats.AvgLatencyMs,
		"alloc_mem_mb", stats.AllocMemMb)

	return nil
}

func render(out *os.File, samples []string, results []domain.RiskAssessment) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Text", "Lang", "Level", "Score", "Confidence", "Dimensions"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	for i, result := range results {
		if !result.Success {
			table.Append([]string{shorten(samples[i]), "-", string(result.RiskLevel), "-", "-", result.Error})
			continue
		}
		table.Append([]string{
			shorten(samples[i]),
			result.DetectedLanguage,
			colorize(result.RiskLevel),
			fmt.Sprintf("%.3f", result.RiskScore),
			fmt.Sprintf("%.2f", result.Confidence),
			bars(result.Dimensions),
		})
	}
	table.Render()

	for i, result := range results {
		fmt.Fprintf(out, "\n%s\n", shorten(samples[i]))
		for _, explanation := range result.Explanations {
			fmt.Fprintf(out, "  - %s\n", explanation)
		}
	}
}

func colorize(level domain.RiskLevel) string {
	switch level {
	case domain.LevelSevere, domain.LevelHigh:
		return color.New(color.FgRed).Render(string(level))
	case domain.LevelModerate:
		return color.New(color.FgYellow).Render(string(level))
	case domain.LevelLow:
		return color.New(color.FgGreen).Render(string(level))
	default:
		return string(level)
	}
}

func bars(d domain.DimensionScores) string {
	return fmt.Sprintf("tox %s hate %s emo %s pol %s",
		bar(d.Toxicity), bar(d.HateTargeting), bar(d.EmotionalIntensity), bar(d.PoliticalRelevance))
}

func bar(score float64) string {
	return fmt.Sprintf("%.2f %s", score, strings.Repeat("█", int(score*10)))
}

func shorten(text string) string {
	runes := []rune(text)
	if len(runes) <= 40 {
		return text
	}
	return string(runes[:40]) + "…"
}
