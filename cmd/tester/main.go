package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/mama165/sdk-go/logs"

	"risklab/provider"
	"risklab/services"
)

// Config for the load harness. Separate from the main entrypoint's config on
// purpose: this binary is a measurement tool, not part of the pipeline.
type Config struct {
	Iterations int    `envconfig:"TESTER_ITERATIONS" default:"1000"`
	BatchSize  int    `envconfig:"TESTER_BATCH_SIZE" default:"50"`
	LogLevel   string `envconfig:"TESTER_LOG_LEVEL" default:"WARN"`
}

func main() {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("config error: %v", err)
	}
	logger := logs.GetLoggerFromString(cfg.LogLevel)

	// Heuristic-only on purpose: the harness measures the deterministic path,
	// not network latency to inference sidecars.
	service, err := services.NewRiskService(provider.Static(nil), logger)
	if err != nil {
		log.Fatalf("building risk service: %v", err)
	}

	batch := make([]string, 0, cfg.BatchSize)
	for i := 0; i < cfg.BatchSize; i++ {
		batch = append(batch, fmt.Sprintf("message %d: the government vote was ABSOLUTELY terrible!!! they all knew it", i))
	}

	ctx := context.Background()
	start := time.Now()
	for i := 0; i < cfg.Iterations; i++ {
		service.BatchAnalyze(ctx, batch, "en")
	}
	elapsed := time.Since(start)

	total := cfg.Iterations * cfg.BatchSize
	stats := service.Stats()
	fmt.Printf("analyzed %d texts in %s (%.0f texts/s)\n",
		total, elapsed, float64(total)/elapsed.Seconds())
	fmt.Printf("avg latency: %.3f ms, alloc: %d MB, gc cycles: %d\n",
		stats.AvgLatencyMs, stats.AllocMemMb, stats.NumGC)
}
