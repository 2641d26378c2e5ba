package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"villanova-server/internal/contentgen"
	"villanova-server/internal/observability"

	"github.com/openai/openai-go"
	openaiOption "github.com/openai/openai-go/option"
)

// Client generates chat completions and images with OpenAI
type Client struct {
	chat   openai.ChatCompletionService
	images openai.ImageService
	model  string
	logger *observability.Logger
}

// NewClient creates an OpenAI client. model applies to chat completions.
func NewClient(apiKey, model string, logger *observability.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	client := openai.NewClient(openaiOption.WithAPIKey(apiKey))
	return &Client{
		chat:   client.Chat.Completions,
		images: client.Images,
		model:  model,
		logger: logger,
	}, nil
}

// GenerateContent returns the assistant's answer to a single user prompt.
// 429 responses are wrapped with contentgen.ErrRateLimited.
func (c *Client) GenerateContent(ctx context.Context, prompt string) (string, error) {
	resp, err := c.chat.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Model: openai.ChatModel(c.model),
	})
	if err != nil {
		if isRateLimit(err) {
			return "", fmt.Errorf("%w: %v", contentgen.ErrRateLimited, err)
		}
		c.logger.Error(ctx, "failed to generate chat completion", err)
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned from OpenAI")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// GenerateImageURL renders concept into a 1024x1024 image and returns its hosted URL
func (c *Client) GenerateImageURL(ctx context.Context, concept string) (string, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "image_concept", Value: concept})

	image, err := c.images.Generate(ctx, openai.ImageGenerateParams{
		Prompt:         concept,
		Size:           openai.ImageGenerateParamsSize1024x1024,
		Model:          openai.ImageModelDallE3,
		ResponseFormat: openai.ImageGenerateParamsResponseFormatURL,
	})
	if err != nil {
		c.logger.Error(ctx, "failed to generate image", err)
		return "", fmt.Errorf("failed to generate image: %w", err)
	}
	if len(image.Data) == 0 || image.Data[0].URL == "" {
		return "", fmt.Errorf("no image returned from OpenAI")
	}
	return image.Data[0].URL, nil
}

func isRateLimit(err error) bool {
	var apiErr *openai.Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests
}
