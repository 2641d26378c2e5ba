package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"villanova-server/internal/alerts"
	"villanova-server/internal/observability"
	"villanova-server/internal/store"

	"github.com/google/uuid"
)

// PostStore defines the database operations required by PostProcessor
type PostStore interface {
	ListDuePosts(ctx context.Context, now time.Time) ([]store.DuePost, error)
	GetPlatformSettings(ctx context.Context, adminID uuid.UUID) (store.PlatformSettings, error)
	MarkPostPosted(ctx context.Context, postID uuid.UUID, externalPostID string, postedAt time.Time) error
	MarkPostFailed(ctx context.Context, postID uuid.UUID, reason string) error
}

type Publisher interface {
	PublishPost(ctx context.Context, pageID, token, content, imageURL string) (string, error)
	DeletePost(ctx context.Context, postID, token string) error
}

// CreditGate checks and charges an admin's wallet for paid posts
type CreditGate interface {
	HasCredits(ctx context.Context, adminID uuid.UUID, amount float64) (bool, error)
	DeductCredits(ctx context.Context, adminID uuid.UUID, amount float64, description string) (float64, error)
}

type TokenOpener interface {
	Open(sealed string) (string, error)
}

type ActivityRecorder interface {
	Success(ctx context.Context, adminID uuid.UUID, action, format string, args ...any)
	Error(ctx context.Context, adminID uuid.UUID, action, format string, args ...any)
}

type Notifier interface {
	Notify(ctx context.Context, settings store.PlatformSettings, alert alerts.Alert)
}

const (
	reasonNotConnected      = "platform not connected"
	reasonInsufficientFunds = "insufficient funds"
)

// markPostedAttempts bounds the status update retries made right after a publish
const markPostedAttempts = 3

// ErrStatusUnconfirmed is returned for a post that is live on the page but whose
// posted status could not be written yet. It is not published again.
var ErrStatusUnconfirmed = errors.New("post published but status update not confirmed")

// livePost is a published post whose status update is still outstanding
type livePost struct {
	post       store.DuePost
	settings   store.PlatformSettings
	externalID string
	postedAt   time.Time
	paid       bool
}

// PostProcessor publishes posts once their scheduled time arrives
type PostProcessor struct {
	store        PostStore
	publisher    Publisher
	credits      CreditGate
	tokens       TokenOpener
	activity     ActivityRecorder
	notifier     Notifier
	paidPostCost float64
	retryDelay   time.Duration
	logger       *observability.Logger

	mu          sync.Mutex
	unconfirmed map[uuid.UUID]livePost
}

func New(store PostStore, publisher Publisher, credits CreditGate, tokens TokenOpener,
	activity ActivityRecorder, notifier Notifier, paidPostCost float64, logger *observability.Logger) *PostProcessor {
	return &PostProcessor{
		store:        store,
		publisher:    publisher,
		credits:      credits,
		tokens:       tokens,
		activity:     activity,
		notifier:     notifier,
		paidPostCost: paidPostCost,
		retryDelay:   500 * time.Millisecond,
		logger:       logger,
		unconfirmed:  make(map[uuid.UUID]livePost),
	}
}

// PostResult is the outcome of one due post. Status is empty when the post was
// left pending for the next scan.
type PostResult struct {
	PostID         uuid.UUID
	AdminID        uuid.UUID
	Status         string
	ExternalPostID string
	Err            error
}

type PublishReport struct {
	Posts []PostResult
}

func (r PublishReport) Published() int {
	return r.count(store.PostStatusPosted)
}

func (r PublishReport) Failed() int {
	return r.count(store.PostStatusFailed)
}

func (r PublishReport) count(status string) int {
	n := 0
	for _, p := range r.Posts {
		if p.Status == status {
			n++
		}
	}
	return n
}

// PublishDuePosts publishes every pending post scheduled at or before now, in
// scheduled order. Each post succeeds or fails on its own. Posts already live
// from an earlier scan only have their status update retried.
func (p *PostProcessor) PublishDuePosts(ctx context.Context, now time.Time) (PublishReport, error) {
	report := PublishReport{Posts: p.settleUnconfirmed(ctx)}

	due, err := p.store.ListDuePosts(ctx, now)
	if err != nil {
		return report, fmt.Errorf("failed to list due posts: %w", err)
	}

	for _, post := range due {
		if p.isUnconfirmed(post.ID) {
			continue
		}
		report.Posts = append(report.Posts, p.publishOne(ctx, post, now))
	}
	return report, nil
}

func (p *PostProcessor) publishOne(ctx context.Context, post store.DuePost, now time.Time) (result PostResult) {
	result = PostResult{PostID: post.ID, AdminID: post.AdminID}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "post_id", Value: post.ID},
		observability.Field{Key: "admin_id", Value: post.AdminID},
	)

	defer func() {
		if r := recover(); r != nil {
			result.Status = ""
			result.Err = fmt.Errorf("publishing post panicked: %v", r)
			p.logger.Error(ctx, "recovered from panic while publishing post", result.Err)
		}
	}()

	settings, err := p.store.GetPlatformSettings(ctx, post.AdminID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		result.Err = fmt.Errorf("failed to load platform settings: %w", err)
		p.logger.WarnWithError(ctx, "leaving post pending, settings unavailable", err)
		return result
	}
	if err != nil || settings.PageID == "" || settings.AccessToken == "" {
		return p.fail(ctx, result, nil, reasonNotConnected)
	}

	token, err := p.tokens.Open(settings.AccessToken)
	if err != nil {
		p.logger.Error(ctx, "failed to open page token", err)
		return p.fail(ctx, result, &settings, reasonNotConnected)
	}

	paid := post.StrategyType != nil && *post.StrategyType == store.StrategyTypePaid
	if paid {
		ok, err := p.credits.HasCredits(ctx, post.AdminID, p.paidPostCost)
		if err != nil {
			result.Err = fmt.Errorf("failed to check wallet balance: %w", err)
			p.logger.WarnWithError(ctx, "leaving paid post pending, wallet unavailable", err)
			return result
		}
		if !ok {
			return p.fail(ctx, result, &settings, reasonInsufficientFunds)
		}
	}

	imageURL := ""
	if post.ImageURL != nil {
		imageURL = *post.ImageURL
	}
	externalID, err := p.publisher.PublishPost(ctx, settings.PageID, token, post.Content, imageURL)
	if err != nil {
		return p.fail(ctx, result, &settings, err.Error())
	}

	return p.confirm(ctx, livePost{
		post:       post,
		settings:   settings,
		externalID: externalID,
		postedAt:   now,
		paid:       paid,
	}, markPostedAttempts)
}

// confirm writes the posted status of a live post. Credits are charged only
// once the status is stored. A post that left pending in the meantime is
// withdrawn from the page; any other failure keeps it in memory so it is never
// published twice.
func (p *PostProcessor) confirm(ctx context.Context, live livePost, attempts int) PostResult {
	post := live.post
	result := PostResult{PostID: post.ID, AdminID: post.AdminID, ExternalPostID: live.externalID}
	ctx = observability.WithFields(ctx, observability.Field{Key: "external_post_id", Value: live.externalID})

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		err = p.store.MarkPostPosted(ctx, post.ID, live.externalID, live.postedAt)
		if err == nil || errors.Is(err, store.ErrPostNotPending) {
			break
		}
		p.logger.WarnWithError(ctx, fmt.Sprintf("failed to record published post (attempt %d/%d)", attempt, attempts), err)
		if attempt < attempts && !p.wait(ctx) {
			break
		}
	}

	switch {
	case err == nil:
		p.forget(post.ID)
	case errors.Is(err, store.ErrPostNotPending):
		p.forget(post.ID)
		result.Err = err
		p.withdraw(ctx, live)
		return result
	default:
		p.remember(live)
		result.Err = fmt.Errorf("%w: %v", ErrStatusUnconfirmed, err)
		p.logger.Error(ctx, "post published but status not updated, holding it back from republishing", err)
		return result
	}

	result.Status = store.PostStatusPosted
	observability.PostsPublished.WithLabelValues(store.PostStatusPosted).Inc()

	if live.paid {
		if _, err := p.credits.DeductCredits(ctx, post.AdminID, p.paidPostCost, "paid post "+live.externalID); err != nil {
			p.logger.WarnWithError(ctx, "failed to charge paid post", err)
		}
	}

	p.activity.Success(ctx, post.AdminID, "post_published", "Published scheduled post %s", live.externalID)
	p.logger.Info(ctx, "post published")
	return result
}

// withdraw removes a post from the page after its row stopped being pending,
// for example because its strategy was cancelled mid-publish.
func (p *PostProcessor) withdraw(ctx context.Context, live livePost) {
	p.logger.Warn(ctx, "post left pending while publishing, removing it from the page")

	token, err := p.tokens.Open(live.settings.AccessToken)
	if err != nil {
		p.logger.Error(ctx, "failed to open page token for withdrawal", err)
		return
	}
	if err := p.publisher.DeletePost(ctx, live.externalID, token); err != nil {
		p.logger.WarnWithError(ctx, "failed to remove orphaned post from the page", err)
	}
}

// settleUnconfirmed retries the status update of every post published by an
// earlier scan.
func (p *PostProcessor) settleUnconfirmed(ctx context.Context) []PostResult {
	p.mu.Lock()
	pending := make([]livePost, 0, len(p.unconfirmed))
	for _, live := range p.unconfirmed {
		pending = append(pending, live)
	}
	p.mu.Unlock()

	results := make([]PostResult, 0, len(pending))
	for _, live := range pending {
		postCtx := observability.WithFields(ctx,
			observability.Field{Key: "post_id", Value: live.post.ID},
			observability.Field{Key: "admin_id", Value: live.post.AdminID},
		)
		results = append(results, p.confirm(postCtx, live, 1))
	}
	return results
}

func (p *PostProcessor) isUnconfirmed(postID uuid.UUID) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.unconfirmed[postID]
	return ok
}

func (p *PostProcessor) remember(live livePost) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.unconfirmed[live.post.ID] = live
}

func (p *PostProcessor) forget(postID uuid.UUID) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.unconfirmed, postID)
}

func (p *PostProcessor) wait(ctx context.Context) bool {
	t := time.NewTimer(p.retryDelay)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}

// fail marks the post failed with reason. settings is nil when the admin has no
// connected page, in which case no alert can be addressed.
func (p *PostProcessor) fail(ctx context.Context, result PostResult, settings *store.PlatformSettings, reason string) PostResult {
	result.Status = store.PostStatusFailed
	result.Err = errors.New(reason)

	if err := p.store.MarkPostFailed(ctx, result.PostID, reason); err != nil {
		if errors.Is(err, store.ErrPostNotPending) {
			result.Status = ""
			p.logger.Warn(ctx, "post already left pending, skipping failure transition")
			return result
		}
		p.logger.Error(ctx, "failed to mark post failed", err)
		result.Err = fmt.Errorf("%s: %w", reason, err)
		return result
	}

	observability.PostsPublished.WithLabelValues(store.PostStatusFailed).Inc()
	p.logger.WarnWithError(ctx, "scheduled post failed", result.Err)
	p.activity.Error(ctx, result.AdminID, "post_failed", "Scheduled post failed: %s", reason)

	if settings != nil {
		p.notifier.Notify(ctx, *settings, alerts.Alert{
			Subject: "A scheduled post failed to publish",
			Summary: "AdRoom could not publish one of your scheduled posts.",
			Details: reason,
		})
	}
	return result
}
