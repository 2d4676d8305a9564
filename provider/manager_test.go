package provider

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"risklab/domain"
)

func classifierServer(t *testing.T, label string, score float64) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			w.WriteHeader(http.StatusOK)
			return
		}
		// A malformed request surfaces as a Classify error on the client side.
		var req classifyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RequestID == "" || req.Inputs == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(Classification{Label: label, Score: score})
	}))
	t.Cleanup(server.Close)
	return server
}

func brokenServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)
	return server
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestHTTPClient_Classify(t *testing.T) {
	req := require.New(t)
	server := classifierServer(t, "toxic", 0.87)

	client := NewHTTPClient(server.URL, DefaultTimeout)
	verdict, err := client.Classify(context.Background(), "some text")

	req.NoError(err)
	req.Equal("toxic", verdict.Label)
	req.InDelta(0.87, verdict.Score, 1e-9)
}

func TestHTTPClient_ClassifyNonOKStatus(t *testing.T) {
	req := require.New(t)
	server := brokenServer(t)

	client := NewHTTPClient(server.URL, DefaultTimeout)
	_, err := client.Classify(context.Background(), "some text")

	req.Error(err)
}

func TestManager_AcquiresAllCapabilities(t *testing.T) {
	req := require.New(t)
	server := classifierServer(t, "neutral", 0.1)

	m := NewManager(context.Background(), Config{
		SentimentEndpoint: server.URL,
		ToxicityEndpoint:  server.URL,
		HateEndpoint:      server.URL,
	}, testLogger())

	req.True(m.HasCapabilities())
	for _, kind := range []domain.Capability{domain.CapabilitySentiment, domain.CapabilityToxicity, domain.CapabilityHate} {
		_, ok := m.Capability(kind)
		req.True(ok, "capability %s should be present", kind)
	}
}

func TestManager_SentimentFailureClearsEverything(t *testing.T) {
	req := require.New(t)
	healthy := classifierServer(t, "neutral", 0.1)
	broken := brokenServer(t)

	m := NewManager(context.Background(), Config{
		SentimentEndpoint: broken.URL,
		ToxicityEndpoint:  healthy.URL,
		HateEndpoint:      healthy.URL,
	}, testLogger())

	req.False(m.HasCapabilities())
}

func TestManager_ToxicityFallsBackToSecondModel(t *testing.T) {
	req := require.New(t)
	healthy := classifierServer(t, "neutral", 0.1)
	broken := brokenServer(t)

	m := NewManager(context.Background(), Config{
		SentimentEndpoint:        healthy.URL,
		ToxicityEndpoint:         broken.URL,
		ToxicityFallbackEndpoint: healthy.URL,
		HateEndpoint:             healthy.URL,
	}, testLogger())

	_, ok := m.Capability(domain.CapabilityToxicity)
	req.True(ok)
}

func TestManager_MissingCapabilityIsNotAnError(t *testing.T) {
	req := require.New(t)
	healthy := classifierServer(t, "neutral", 0.1)

	m := NewManager(context.Background(), Config{
		SentimentEndpoint: healthy.URL,
		ToxicityEndpoint:  healthy.URL,
	}, testLogger())

	_, ok := m.Capability(domain.CapabilityHate)
	req.False(ok)
	req.True(m.HasCapabilities())

	_, ok = m.Capability(domain.CapabilitySentiment)
	req.True(ok)
}
