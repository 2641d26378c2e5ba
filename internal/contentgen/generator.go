package contentgen

//go:generate go run go.uber.org/mock/mockgen@latest -source=generator.go -destination=mocks_test.go -package=contentgen

import (
	"context"
	"errors"
	"fmt"
	"time"

	"villanova-server/internal/observability"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrRateLimited is returned (wrapped) by providers when the upstream answers 429.
	ErrRateLimited   = errors.New("content generation rate limited")
	ErrNoJSON        = errors.New("no JSON object found in model output")
	ErrInvalidOutput = errors.New("model output failed validation")
	ErrEmptyOutput   = errors.New("model returned empty output")
)

// Provider is a single text completion backend
type Provider interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Config controls the rate limit retry policy
type Config struct {
	MaxRetries int
	BaseDelay  time.Duration
}

// Generator wraps a Provider with exponential backoff on rate limit errors.
// Any other error is returned on the first attempt.
type Generator struct {
	provider   Provider
	maxRetries int
	baseDelay  time.Duration
	sleep      func(ctx context.Context, d time.Duration) error
	validate   *validator.Validate
	logger     *observability.Logger
}

func New(provider Provider, cfg Config, logger *observability.Logger) *Generator {
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = time.Second
	}
	return &Generator{
		provider:   provider,
		maxRetries: cfg.MaxRetries,
		baseDelay:  cfg.BaseDelay,
		sleep:      sleepContext,
		validate:   validator.New(),
		logger:     logger,
	}
}

// GenerateContent runs prompt through the provider, retrying rate limited attempts
// after BaseDelay, 2*BaseDelay, 4*BaseDelay and so on.
func (g *Generator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	delay := g.baseDelay
	for attempt := 0; ; attempt++ {
		text, err := g.provider.GenerateContent(ctx, prompt)
		if err == nil {
			if text == "" {
				return "", ErrEmptyOutput
			}
			return text, nil
		}
		if !errors.Is(err, ErrRateLimited) || attempt >= g.maxRetries {
			return "", fmt.Errorf("failed to generate content: %w", err)
		}

		observability.ContentRetries.Inc()
		g.logger.WarnWithError(observability.WithFields(ctx,
			observability.Field{Key: "attempt", Value: attempt + 1},
			observability.Field{Key: "retry_in", Value: delay.String()},
		), "content generation rate limited, backing off", err)

		if err := g.sleep(ctx, delay); err != nil {
			return "", err
		}
		delay *= 2
	}
}

// generateJSON asks for structured output and decodes the first JSON object of the reply into out
func (g *Generator) generateJSON(ctx context.Context, prompt string, out any) error {
	text, err := g.GenerateContent(ctx, prompt)
	if err != nil {
		return err
	}
	if err := ParseInto(text, out); err != nil {
		return err
	}
	if err := g.validate.StructCtx(ctx, out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	return nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
