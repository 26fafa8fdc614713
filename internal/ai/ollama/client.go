// Package ollama implements the ai.Answerer interface against a locally
// running Ollama-compatible inference service.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/spigell/resume-qa/internal/ai"
	"github.com/spigell/resume-qa/internal/logger"

	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is the standard local Ollama address.
	DefaultBaseURL = "http://localhost:11434"
	// DefaultModel is used when no model is configured.
	DefaultModel = "qwen2.5:3b"

	tagsPath     = "/api/tags"
	generatePath = "/api/generate"

	probeTimeout    = 5 * time.Second
	generateTimeout = 30 * time.Second

	contentType = "application/json"

	promptLogLimit = 200
)

// Client talks to the inference service over its HTTP API. Probe and
// generate requests use separate timeout-bound HTTP clients.
type Client struct {
	model  string
	logger *zap.Logger

	BaseURL        string
	ProbeClient    *http.Client
	GenerateClient *http.Client
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	// Response is a pointer so an absent field can be told apart from an
	// empty answer.
	Response *string `json:"response"`
}

// New creates a client for the given model and base address. Empty values
// fall back to the defaults.
func New(model, baseURL string, log *zap.Logger) *Client {
	if model == "" {
		model = DefaultModel
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		model:   model,
		logger:  log,
		BaseURL: baseURL,
		ProbeClient: &http.Client{
			Timeout: probeTimeout,
		},
		GenerateClient: &http.Client{
			Timeout: generateTimeout,
		},
	}
}

// Available probes the service listing endpoint. Only HTTP 200 counts as
// reachable; any transport failure or other status yields false.
func (c *Client) Available(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+tagsPath, nil)
	if err != nil {
		return false
	}

	resp, err := c.ProbeClient.Do(req)
	if err != nil {
		c.logger.Debug("availability probe failed", zap.Error(err))
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}

// Answer submits the resume and question under the fixed prompt template.
// Availability is re-checked per call so the harness can keep iterating
// when the service goes away mid-run.
func (c *Client) Answer(ctx context.Context, resumeText, question string) *ai.Result {
	if !c.Available(ctx) {
		return &ai.Result{Failure: &ai.Failure{Kind: ai.FailureUnreachable}}
	}

	prompt := ai.Prompt(resumeText, question)

	payload, err := json.Marshal(generateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: false,
	})
	if err != nil {
		return &ai.Result{Failure: &ai.Failure{Kind: ai.FailureTransport, Cause: err}}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+generatePath, bytes.NewReader(payload))
	if err != nil {
		return &ai.Result{Failure: &ai.Failure{Kind: ai.FailureTransport, Cause: err}}
	}
	req.Header.Set("Content-Type", contentType)

	c.logger.Debug("make request",
		zap.String("url", req.URL.String()),
		zap.String("prompt", logger.TruncateForLog(prompt, promptLogLimit)),
	)

	resp, err := c.GenerateClient.Do(req)
	if err != nil {
		return &ai.Result{Failure: &ai.Failure{Kind: ai.FailureTransport, Cause: err}}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &ai.Result{Failure: &ai.Failure{Kind: ai.FailureTransport, Cause: err}}
	}

	if resp.StatusCode != http.StatusOK {
		return &ai.Result{Failure: &ai.Failure{
			Kind:   ai.FailureHTTP,
			Status: resp.StatusCode,
			Body:   string(data),
		}}
	}

	var parsed generateResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return &ai.Result{Failure: &ai.Failure{Kind: ai.FailureTransport, Cause: err}}
	}

	if parsed.Response == nil {
		return &ai.Result{Failure: &ai.Failure{Kind: ai.FailureEmpty}}
	}

	return &ai.Result{Answer: *parsed.Response}
}

// Model returns the configured model identifier.
func (c *Client) Model() string {
	return c.model
}
