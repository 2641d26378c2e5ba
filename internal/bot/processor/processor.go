package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"

	"villanova-server/internal/clients/graph"
	"villanova-server/internal/contentgen"
	"villanova-server/internal/ledger"
	"villanova-server/internal/observability"
	"villanova-server/internal/store"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// BotStore defines the database operations required by BotProcessor
type BotStore interface {
	ListAdminsWithActiveStrategy(ctx context.Context) ([]uuid.UUID, error)
	GetPlatformSettings(ctx context.Context, adminID uuid.UUID) (store.PlatformSettings, error)
}

// GraphClient defines the social graph operations the bot polls and writes through
type GraphClient interface {
	GetNotifications(ctx context.Context, pageID, token string) []graph.Notification
	GetComment(ctx context.Context, commentID, token string) *graph.Comment
	ReplyToComment(ctx context.Context, commentID, token, message string) (string, error)
	GetConversations(ctx context.Context, pageID, token string) []graph.Conversation
	SendMessage(ctx context.Context, pageID, token, recipientID, text string) (string, error)
}

// ReplyGenerator drafts replies to inbound comments and messages
type ReplyGenerator interface {
	GenerateCommentReply(ctx context.Context, in contentgen.ReplyContext) (string, error)
	GenerateMessageReply(ctx context.Context, in contentgen.ReplyContext) (string, error)
}

// InteractionLedger hands out exclusive claims on unanswered external events
type InteractionLedger interface {
	Acquire(ctx context.Context, externalID string) (*ledger.Claim, error)
}

type TokenOpener interface {
	Open(sealed string) (string, error)
}

type ActivityRecorder interface {
	Success(ctx context.Context, adminID uuid.UUID, action, format string, args ...any)
	Error(ctx context.Context, adminID uuid.UUID, action, format string, args ...any)
}

var ErrPlatformNotConnected = errors.New("platform not connected")

// BotProcessor answers comments and direct messages for every admin running a campaign
type BotProcessor struct {
	store     BotStore
	graph     GraphClient
	generator ReplyGenerator
	ledger    InteractionLedger
	tokens    TokenOpener
	activity  ActivityRecorder
	logger    *observability.Logger
}

func New(store BotStore, graph GraphClient, generator ReplyGenerator, ledger InteractionLedger,
	tokens TokenOpener, activity ActivityRecorder, logger *observability.Logger) *BotProcessor {
	return &BotProcessor{
		store:     store,
		graph:     graph,
		generator: generator,
		ledger:    ledger,
		tokens:    tokens,
		activity:  activity,
		logger:    logger,
	}
}

// CheckResult summarises one comment or message scan
type CheckResult struct {
	Seen    int
	Replied int
	Skipped int
	Err     error
}

// AdminResult is the outcome of one admin's cycle. Err is set when the admin
// could not be polled at all.
type AdminResult struct {
	AdminID  uuid.UUID
	Comments CheckResult
	Messages CheckResult
	Err      error
}

// CycleReport holds one result per admin polled in a cycle
type CycleReport struct {
	Admins []AdminResult
}

func (r CycleReport) Replied() int {
	total := 0
	for _, a := range r.Admins {
		total += a.Comments.Replied + a.Messages.Replied
	}
	return total
}

func (r CycleReport) Failed() int {
	failed := 0
	for _, a := range r.Admins {
		if a.Err != nil || a.Comments.Err != nil || a.Messages.Err != nil {
			failed++
		}
	}
	return failed
}

// MonitorCycle polls every admin with an active strategy concurrently. One
// admin's failure never affects another's result.
func (p *BotProcessor) MonitorCycle(ctx context.Context) (CycleReport, error) {
	adminIDs, err := p.store.ListAdminsWithActiveStrategy(ctx)
	if err != nil {
		return CycleReport{}, fmt.Errorf("failed to list active admins: %w", err)
	}

	report := CycleReport{Admins: make([]AdminResult, len(adminIDs))}
	var g errgroup.Group
	for i, adminID := range adminIDs {
		i, adminID := i, adminID
		g.Go(func() error {
			report.Admins[i] = p.processAdmin(ctx, adminID)
			return nil
		})
	}
	_ = g.Wait()

	return report, nil
}

// page is an admin's connected page with its opened token
type page struct {
	adminID  uuid.UUID
	id       string
	name     string
	token    string
	settings store.PlatformSettings
}

func (p *BotProcessor) processAdmin(ctx context.Context, adminID uuid.UUID) (result AdminResult) {
	result.AdminID = adminID
	ctx = observability.WithFields(ctx, observability.Field{Key: "admin_id", Value: adminID})

	defer func() {
		if r := recover(); r != nil {
			result.Err = fmt.Errorf("admin cycle panicked: %v", r)
			p.logger.Error(ctx, "recovered from panic in admin cycle", result.Err)
		}
	}()

	pg, err := p.loadPage(ctx, adminID)
	if err != nil {
		result.Err = err
		p.logger.WarnWithError(ctx, "skipping admin for this cycle", err)
		return result
	}

	var g errgroup.Group
	g.Go(func() error {
		result.Comments = p.guarded(ctx, "comment", func() CheckResult { return p.checkComments(ctx, pg) })
		return nil
	})
	g.Go(func() error {
		result.Messages = p.guarded(ctx, "message", func() CheckResult { return p.checkMessages(ctx, pg) })
		return nil
	})
	_ = g.Wait()

	return result
}

// guarded runs one check on its own goroutine's stack and turns a panic into
// the check's error. A claim held at the time of the panic is not released, so
// the event is not answered again by this process.
func (p *BotProcessor) guarded(ctx context.Context, kind string, check func() CheckResult) (result CheckResult) {
	defer func() {
		if r := recover(); r != nil {
			result.Err = fmt.Errorf("%s check panicked: %v", kind, r)
			p.logger.Error(ctx, "recovered from panic in "+kind+" check", result.Err)
		}
	}()
	return check()
}

func (p *BotProcessor) loadPage(ctx context.Context, adminID uuid.UUID) (page, error) {
	settings, err := p.store.GetPlatformSettings(ctx, adminID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return page{}, ErrPlatformNotConnected
		}
		return page{}, err
	}
	if settings.PageID == "" || settings.AccessToken == "" {
		return page{}, ErrPlatformNotConnected
	}

	token, err := p.tokens.Open(settings.AccessToken)
	if err != nil {
		return page{}, fmt.Errorf("failed to open page token: %w", err)
	}

	name := ""
	if settings.PageName != nil {
		name = *settings.PageName
	}
	return page{adminID: adminID, id: settings.PageID, name: name, token: token, settings: settings}, nil
}

// acquire claims externalID, counting duplicates. ok is false when the event should be skipped.
func (p *BotProcessor) acquire(ctx context.Context, externalID, interactionType string) (*ledger.Claim, bool) {
	claim, err := p.ledger.Acquire(ctx, externalID)
	switch {
	case err == nil:
		return claim, true
	case errors.Is(err, ledger.ErrAlreadyHandled), errors.Is(err, ledger.ErrInFlight):
		observability.DuplicateEventsSkipped.WithLabelValues(interactionType).Inc()
		return nil, false
	default:
		p.logger.WarnWithError(ctx, "ledger lookup failed, deferring event to next cycle", err)
		return nil, false
	}
}
