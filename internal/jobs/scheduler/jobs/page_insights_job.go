package jobs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"villanova-server/internal/clients/graph"
	"villanova-server/internal/observability"
	"villanova-server/internal/store"
)

// InsightsStore defines the database operations required by PageInsightsJob
type InsightsStore interface {
	ListPlatformSettings(ctx context.Context) ([]store.PlatformSettings, error)
	CreatePageInsight(ctx context.Context, params store.CreatePageInsightParams) (store.PageInsight, error)
}

// InsightsClient fetches page level reach and engagement
type InsightsClient interface {
	GetInsights(ctx context.Context, pageID, token string) graph.PageInsights
}

// TokenOpener decrypts a stored page access token
type TokenOpener interface {
	Open(sealed string) (string, error)
}

var errPageNotConnected = errors.New("page is not connected")

// PageInsightsJob snapshots reach and engagement for every connected page
type PageInsightsJob struct {
	store    InsightsStore
	graph    InsightsClient
	tokens   TokenOpener
	logger   *observability.Logger
	interval time.Duration
}

// NewPageInsightsJob creates a new page insights job
func NewPageInsightsJob(store InsightsStore, graph InsightsClient, tokens TokenOpener,
	logger *observability.Logger, interval time.Duration) *PageInsightsJob {
	if interval == 0 {
		interval = 24 * time.Hour
	}

	return &PageInsightsJob{
		store:    store,
		graph:    graph,
		tokens:   tokens,
		logger:   logger,
		interval: interval,
	}
}

// Name returns the job name
func (j *PageInsightsJob) Name() string {
	return "page_insights"
}

// Schedule returns how often the job should run
func (j *PageInsightsJob) Schedule() time.Duration {
	return j.interval
}

// Run captures one snapshot per connected page. A failing page does not stop the others.
func (j *PageInsightsJob) Run(ctx context.Context) error {
	pages, err := j.store.ListPlatformSettings(ctx)
	if err != nil {
		return fmt.Errorf("failed to list connected pages: %w", err)
	}

	successCount := 0
	errorCount := 0

	for _, settings := range pages {
		pageCtx := observability.WithFields(ctx,
			observability.Field{Key: "admin_id", Value: settings.AdminID},
			observability.Field{Key: "page_id", Value: settings.PageID},
		)

		if err := j.capture(pageCtx, settings); err != nil {
			j.logger.Error(pageCtx, "Failed to capture page insights", err)
			errorCount++
			continue
		}
		successCount++
	}

	j.logger.Info(ctx, fmt.Sprintf("Page insights completed: %d captured, %d failed", successCount, errorCount))
	return nil
}

func (j *PageInsightsJob) capture(ctx context.Context, settings store.PlatformSettings) error {
	if settings.PageID == "" || settings.AccessToken == "" {
		return errPageNotConnected
	}

	token, err := j.tokens.Open(settings.AccessToken)
	if err != nil {
		return fmt.Errorf("failed to open page token: %w", err)
	}

	insights := j.graph.GetInsights(ctx, settings.PageID, token)

	_, err = j.store.CreatePageInsight(ctx, store.CreatePageInsightParams{
		AdminID:    settings.AdminID,
		PageID:     settings.PageID,
		Reach:      insights.Reach,
		Engagement: insights.Engagement,
	})
	return err
}
