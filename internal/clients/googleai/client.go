package googleai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"villanova-server/internal/contentgen"
	"villanova-server/internal/observability"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// Client generates text with a Gemini model
type Client struct {
	client *genai.Client
	model  string
	logger *observability.Logger
}

// NewClient creates a Gemini client for the given model
func NewClient(ctx context.Context, apiKey, model string, logger *observability.Logger) (*Client, error) {
	c, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Client{
		client: c,
		model:  model,
		logger: logger,
	}, nil
}

// GenerateContent returns the model's text answer to prompt.
// Quota errors are wrapped with contentgen.ErrRateLimited.
func (c *Client) GenerateContent(ctx context.Context, prompt string) (string, error) {
	model := c.client.GenerativeModel(c.model)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		if isRateLimit(err) {
			return "", fmt.Errorf("%w: %v", contentgen.ErrRateLimited, err)
		}
		c.logger.Error(ctx, "failed to generate content with Gemini", err)
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no candidates returned from Gemini")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return strings.TrimSpace(b.String()), nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

func isRateLimit(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusTooManyRequests {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "RESOURCE_EXHAUSTED") || strings.Contains(msg, "429")
}
