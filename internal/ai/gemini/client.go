// Package gemini implements the ai.Answerer interface on top of the Google
// GenAI SDK, as an alternative to the local ollama provider.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spigell/resume-qa/internal/ai"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

// Client wraps the GenAI client to answer resume questions.
type Client struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

// New creates a Client configured for the Gemini API backend.
func New(ctx context.Context, apiKey, model string, logger *zap.Logger) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}

	return &Client{client: client, model: model, logger: logger}, nil
}

// Available reports whether the client is initialized. The Gemini API has
// no cheap health endpoint, so request failures surface per-answer instead.
func (c *Client) Available(_ context.Context) bool {
	return c != nil && c.client != nil
}

// Answer submits the prompt and classifies every failure into the Result.
func (c *Client) Answer(ctx context.Context, resumeText, question string) *ai.Result {
	if !c.Available(ctx) {
		return &ai.Result{Failure: &ai.Failure{Kind: ai.FailureUnreachable}}
	}

	prompt := ai.Prompt(resumeText, question)

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return &ai.Result{Failure: classify(err)}
	}

	output := collectText(resp)
	if output == "" {
		c.logger.Debug("gemini returned no text candidates")
		return &ai.Result{Failure: &ai.Failure{Kind: ai.FailureEmpty}}
	}

	return &ai.Result{Answer: output}
}

// Model returns the configured model identifier.
func (c *Client) Model() string {
	if c == nil {
		return ""
	}
	return c.model
}

func collectText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}

	return strings.TrimSpace(builder.String())
}

func classify(err error) *ai.Failure {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &ai.Failure{
			Kind:   ai.FailureHTTP,
			Status: apiErr.Code,
			Body:   apiErr.Message,
			Cause:  err,
		}
	}

	return &ai.Failure{Kind: ai.FailureTransport, Cause: err}
}
