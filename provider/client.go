// Package provider manages the optional model-backed scoring capabilities.
// Each capability is an external classifier sidecar reached over HTTP JSON;
// absence of a capability is a normal state, never an error.
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"risklab/errors"
)

// Classification is the verdict of a single model invocation.
type Classification struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// InferenceClient invokes one classifier on a piece of text.
type InferenceClient interface {
	Classify(ctx context.Context, text string) (Classification, error)
}

type classifyRequest struct {
	RequestID string `json:"request_id"`
	Inputs    string `json:"inputs"`
}

// HTTPClient talks to a text-classification endpoint accepting
// {request_id, inputs} and answering {label, score}.
type HTTPClient struct {
	endpoint string
	client   *http.Client
}

func NewHTTPClient(endpoint string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) Classify(ctx context.Context, text string) (Classification, error) {
	body, err := json.Marshal(classifyRequest{
		RequestID: uuid.NewString(),
		Inputs:    text,
	})
	if err != nil {
		return Classification{}, fmt.Errorf("encoding inference request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return Classification{}, fmt.Errorf("building inference request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return Classification{}, fmt.Errorf("inference call: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return Classification{}, fmt.Errorf("%w: %s", errors.ErrInferenceStatus, resp.Status)
	}

	var out Classification
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Classification{}, fmt.Errorf("decoding inference response: %w", err)
	}
	return out, nil
}

// Probe checks the endpoint's health route. Used once at acquisition time.
func (c *HTTPClient) Probe(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("probing %s: %w", c.endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s", errors.ErrInferenceStatus, resp.Status)
	}
	return nil
}
