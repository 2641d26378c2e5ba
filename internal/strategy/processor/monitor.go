package processor

import (
	"context"
	"errors"
	"fmt"

	"villanova-server/internal/alerts"
	"villanova-server/internal/contentgen"
	"villanova-server/internal/observability"
	"villanova-server/internal/store"

	"github.com/google/uuid"
)

// Monitor outcomes per strategy
const (
	OutcomeHealthy   = "healthy"
	OutcomeCorrected = "corrected"
	OutcomeCompleted = "completed"
	OutcomeNoData    = "no_data"
	OutcomeNoCredits = "insufficient_funds"
	OutcomeFailed    = "failed"
)

type StrategyResult struct {
	StrategyID       uuid.UUID
	AdminID          uuid.UUID
	PostCount        int
	AverageReach     float64
	Outcome          string
	CorrectivePostID *uuid.UUID
	Err              error
}

// MonitorReport holds one result per active strategy
type MonitorReport struct {
	Strategies []StrategyResult
}

func (r MonitorReport) Corrected() int {
	n := 0
	for _, s := range r.Strategies {
		if s.Outcome == OutcomeCorrected {
			n++
		}
	}
	return n
}

func (r MonitorReport) Failed() int {
	n := 0
	for _, s := range r.Strategies {
		if s.Outcome == OutcomeFailed {
			n++
		}
	}
	return n
}

// MonitorStrategies refreshes metrics for every active strategy and schedules a
// corrective post for each one whose average reach is below the threshold.
func (p *StrategyProcessor) MonitorStrategies(ctx context.Context) (MonitorReport, error) {
	strategies, err := p.store.ListActiveStrategies(ctx)
	if err != nil {
		return MonitorReport{}, fmt.Errorf("failed to list active strategies: %w", err)
	}

	report := MonitorReport{Strategies: make([]StrategyResult, 0, len(strategies))}
	for _, strategy := range strategies {
		report.Strategies = append(report.Strategies, p.monitorOne(ctx, strategy))
	}
	return report, nil
}

// connection is an admin's page settings with the opened token. ok is false
// when the admin has no usable connection.
type connection struct {
	settings store.PlatformSettings
	token    string
	ok       bool
}

func (p *StrategyProcessor) connect(ctx context.Context, adminID uuid.UUID) connection {
	settings, err := p.store.GetPlatformSettings(ctx, adminID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			p.logger.WarnWithError(ctx, "failed to load platform settings", err)
		}
		return connection{}
	}
	if settings.PageID == "" || settings.AccessToken == "" {
		return connection{settings: settings}
	}
	token, err := p.tokens.Open(settings.AccessToken)
	if err != nil {
		p.logger.Error(ctx, "failed to open page token", err)
		return connection{settings: settings}
	}
	return connection{settings: settings, token: token, ok: true}
}

func (p *StrategyProcessor) monitorOne(ctx context.Context, strategy store.Strategy) (result StrategyResult) {
	result = StrategyResult{StrategyID: strategy.ID, AdminID: strategy.AdminID}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "strategy_id", Value: strategy.ID},
		observability.Field{Key: "admin_id", Value: strategy.AdminID},
	)

	defer func() {
		if r := recover(); r != nil {
			result.Outcome = OutcomeFailed
			result.Err = fmt.Errorf("strategy monitor panicked: %v", r)
			p.logger.Error(ctx, "recovered from panic while monitoring strategy", result.Err)
		}
	}()

	conn := p.connect(ctx, strategy.AdminID)

	posts, err := p.store.ListPostedPostsByStrategy(ctx, strategy.ID)
	if err != nil {
		result.Outcome = OutcomeFailed
		result.Err = err
		p.logger.Error(ctx, "failed to list posted posts", err)
		return result
	}
	if len(posts) == 0 {
		result.Outcome = OutcomeNoData
		p.logger.Info(ctx, "strategy has no published posts yet")
		return result
	}

	totalReach := 0
	for i := range posts {
		p.refreshMetrics(ctx, conn, &posts[i])
		totalReach += posts[i].Reach
	}
	result.PostCount = len(posts)
	result.AverageReach = float64(totalReach) / float64(len(posts))

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "average_reach", Value: result.AverageReach},
		observability.Field{Key: "threshold", Value: p.cfg.ReachThreshold},
	)

	if result.AverageReach < p.cfg.ReachThreshold {
		return p.correct(ctx, strategy, conn, result)
	}

	result.Outcome = OutcomeHealthy
	p.logger.Info(ctx, "strategy is healthy")
	return p.completeIfFinished(ctx, strategy, result)
}

// refreshMetrics fetches fresh metrics for a published post and persists the snapshot.
// Without a connection the stored snapshot is used.
func (p *StrategyProcessor) refreshMetrics(ctx context.Context, conn connection, post *store.Post) {
	if !conn.ok || post.ExternalPostID == nil || *post.ExternalPostID == "" {
		return
	}
	m := p.graph.GetPostMetrics(ctx, *post.ExternalPostID, conn.token)
	snapshot := store.PostMetrics{
		Reach:      m.Reach,
		Engagement: m.Engagement,
		Likes:      m.Likes,
		Comments:   m.Comments,
		Shares:     m.Shares,
	}
	if err := p.store.UpdatePostMetrics(ctx, post.ID, snapshot); err != nil {
		p.logger.WarnWithError(ctx, "failed to persist post metrics", err)
	}
	post.PostMetrics = snapshot
}

func (p *StrategyProcessor) correct(ctx context.Context, strategy store.Strategy, conn connection, result StrategyResult) StrategyResult {
	p.logger.Info(ctx, "strategy is underperforming, triggering corrective action")

	if p.cfg.CorrectiveCreditCost > 0 {
		ok, err := p.credits.HasCredits(ctx, strategy.AdminID, p.cfg.CorrectiveCreditCost)
		if err != nil {
			return p.correctionFailed(ctx, strategy, result, fmt.Errorf("failed to check wallet balance: %w", err))
		}
		if !ok {
			result.Outcome = OutcomeNoCredits
			observability.CorrectiveActions.WithLabelValues(OutcomeNoCredits).Inc()
			p.activity.Error(ctx, strategy.AdminID, "corrective_action_skipped",
				"Strategy %q is underperforming (average reach %.1f) but the wallet cannot cover a corrective post",
				strategy.Content.Theme, result.AverageReach)
			return result
		}
	}

	action, err := p.planner.GenerateCorrectiveAction(ctx, contentgen.CorrectiveInput{
		Theme:        strategy.Content.Theme,
		Goal:         strategy.Content.Goal,
		AverageReach: result.AverageReach,
		Threshold:    p.cfg.ReachThreshold,
		PostCount:    result.PostCount,
	})
	if err != nil {
		return p.correctionFailed(ctx, strategy, result, fmt.Errorf("failed to generate corrective action: %w", err))
	}

	var imageURL *string
	if p.images != nil && action.Post.ImageConcept != "" {
		url, err := p.images.GenerateImageURL(ctx, action.Post.ImageConcept)
		if err != nil {
			p.logger.WarnWithError(ctx, "failed to generate corrective image, posting text only", err)
		} else {
			imageURL = &url
		}
	}

	scheduled := p.now().Add(p.cfg.CorrectiveDelay)
	diagnosis, post, err := p.store.CreateCorrectiveAction(ctx, store.CreateCorrectiveActionParams{
		AdminID:       strategy.AdminID,
		StrategyID:    strategy.ID,
		AverageReach:  result.AverageReach,
		Threshold:     p.cfg.ReachThreshold,
		Diagnosis:     action.Diagnosis,
		PostContent:   postContent(action.Post.Title, action.Post.Caption),
		ImageURL:      imageURL,
		ScheduledTime: scheduled,
	})
	if err != nil {
		return p.correctionFailed(ctx, strategy, result, err)
	}

	if p.cfg.CorrectiveCreditCost > 0 {
		if _, err := p.credits.DeductCredits(ctx, strategy.AdminID, p.cfg.CorrectiveCreditCost, "corrective post for "+strategy.Content.Theme); err != nil {
			p.logger.WarnWithError(ctx, "failed to charge corrective action", err)
		}
	}

	result.Outcome = OutcomeCorrected
	result.CorrectivePostID = &post.ID
	observability.CorrectiveActions.WithLabelValues(OutcomeCorrected).Inc()
	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "diagnosis_id", Value: diagnosis.ID},
		observability.Field{Key: "post_id", Value: post.ID},
	), "corrective post scheduled")
	p.activity.Success(ctx, strategy.AdminID, "corrective_action",
		"Average reach %.1f is below %.1f. Scheduled a corrective post for %s",
		result.AverageReach, p.cfg.ReachThreshold, scheduled.Format("Jan 2 15:04 MST"))

	if conn.settings.PageID != "" {
		p.notifier.Notify(ctx, conn.settings, alerts.Alert{
			Subject: "AdRoom scheduled a corrective post",
			Summary: fmt.Sprintf("Your %q campaign averaged %.1f reach per post, below the %.1f target.", strategy.Content.Theme, result.AverageReach, p.cfg.ReachThreshold),
			Details: action.Diagnosis,
		})
	}
	return result
}

func (p *StrategyProcessor) correctionFailed(ctx context.Context, strategy store.Strategy, result StrategyResult, err error) StrategyResult {
	result.Outcome = OutcomeFailed
	result.Err = err
	observability.CorrectiveActions.WithLabelValues(OutcomeFailed).Inc()
	p.logger.Error(ctx, "corrective action failed", err)
	p.activity.Error(ctx, strategy.AdminID, "corrective_action_failed", "Could not create a corrective post for %q: %v", strategy.Content.Theme, err)
	return result
}

// completeIfFinished marks a healthy strategy completed once no posts remain pending
func (p *StrategyProcessor) completeIfFinished(ctx context.Context, strategy store.Strategy, result StrategyResult) StrategyResult {
	pending, err := p.store.CountPendingPostsByStrategy(ctx, strategy.ID)
	if err != nil {
		p.logger.WarnWithError(ctx, "failed to count pending posts", err)
		return result
	}
	if pending > 0 || result.PostCount < len(strategy.Content.ContentPlan) {
		return result
	}

	if err := p.store.UpdateStrategyStatus(ctx, strategy.ID, store.StrategyStatusCompleted); err != nil {
		p.logger.WarnWithError(ctx, "failed to complete strategy", err)
		return result
	}
	result.Outcome = OutcomeCompleted
	p.activity.Success(ctx, strategy.AdminID, "strategy_completed", "Strategy %q finished all planned posts", strategy.Content.Theme)
	return result
}

func postContent(title, caption string) string {
	if title == "" {
		return caption
	}
	return title + "\n\n" + caption
}
