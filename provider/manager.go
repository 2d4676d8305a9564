package provider

import (
	"context"
	"log/slog"
	"time"

	"risklab/domain"
	"risklab/errors"
)

// DefaultTimeout bounds every inference call so a hung endpoint degrades the
// dimension instead of blocking the caller forever.
const DefaultTimeout = 10 * time.Second

// Config names the classifier endpoints. Empty endpoints mean the capability
// is not offered.
type Config struct {
	SentimentEndpoint        string
	ToxicityEndpoint         string
	ToxicityFallbackEndpoint string
	HateEndpoint             string
	Timeout                  time.Duration
}

// CapabilitySet is what scoring code sees: a read-only map from capability
// to client. Presence is binary, decided once at construction.
type CapabilitySet interface {
	Capability(kind domain.Capability) (InferenceClient, bool)
}

// Manager acquires the three capabilities independently at construction.
// A capability that fails its probe (and its fallback, for toxicity) stays
// absent for the life of the instance; there are no retries. A sentiment
// acquisition error is fatal for the whole set and forces full heuristic mode.
type Manager struct {
	capabilities map[domain.Capability]InferenceClient
	log          *slog.Logger
}

func NewManager(ctx context.Context, cfg Config, log *slog.Logger) *Manager {
	m := &Manager{
		capabilities: make(map[domain.Capability]InferenceClient, 3),
		log:          log,
	}
	m.acquire(ctx, cfg)
	return m
}

func (m *Manager) acquire(ctx context.Context, cfg Config) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	if err := m.acquireOne(ctx, domain.CapabilitySentiment, cfg.SentimentEndpoint, timeout); err != nil {
		m.log.Warn("sentiment capability failed, running in full heuristic mode", "error", err)
		clear(m.capabilities)
		return
	}

	if err := m.acquireOne(ctx, domain.CapabilityToxicity, cfg.ToxicityEndpoint, timeout); err != nil {
		m.log.Warn("primary toxicity model unavailable, trying fallback", "error", err)
		if err := m.acquireOne(ctx, domain.CapabilityToxicity, cfg.ToxicityFallbackEndpoint, timeout); err != nil {
			m.log.Warn("toxicity capability absent", "error", err)
		}
	}

	if err := m.acquireOne(ctx, domain.CapabilityHate, cfg.HateEndpoint, timeout); err != nil {
		m.log.Warn("hate capability absent, rule detection will be used", "error", err)
	}
}

func (m *Manager) acquireOne(ctx context.Context, kind domain.Capability, endpoint string, timeout time.Duration) error {
	if endpoint == "" {
		return errors.ErrNoEndpoint
	}
	client := NewHTTPClient(endpoint, timeout)
	if err := client.Probe(ctx); err != nil {
		return err
	}
	m.capabilities[kind] = client
	m.log.Info("capability acquired", "capability", kind, "endpoint", endpoint)
	return nil
}

func (m *Manager) Capability(kind domain.Capability) (InferenceClient, bool) {
	client, ok := m.capabilities[kind]
	return client, ok
}

// HasCapabilities reports whether any model path is available at all.
func (m *Manager) HasCapabilities() bool {
	return len(m.capabilities) > 0
}

// Static wraps a fixed capability map. Heuristic-only mode is Static(nil).
type Static map[domain.Capability]InferenceClient

func (s Static) Capability(kind domain.Capability) (InferenceClient, bool) {
	client, ok := s[kind]
	return client, ok
}
