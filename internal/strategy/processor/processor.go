package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"time"

	"villanova-server/internal/alerts"
	"villanova-server/internal/clients/graph"
	"villanova-server/internal/contentgen"
	"villanova-server/internal/observability"
	"villanova-server/internal/store"

	"github.com/google/uuid"
)

// StrategyStore defines the database operations required by StrategyProcessor
type StrategyStore interface {
	CreateStrategyWithPosts(ctx context.Context, params store.CreateStrategyParams, posts []store.CreatePostParams) (store.Strategy, []store.Post, error)
	GetStrategyByID(ctx context.Context, adminID, strategyID uuid.UUID) (store.Strategy, error)
	ListStrategiesByAdmin(ctx context.Context, adminID uuid.UUID) ([]store.Strategy, error)
	ListActiveStrategies(ctx context.Context) ([]store.Strategy, error)
	UpdateStrategyStatus(ctx context.Context, strategyID uuid.UUID, status string) error
	ListPostsByStrategy(ctx context.Context, strategyID uuid.UUID) ([]store.Post, error)
	ListPostedPostsByStrategy(ctx context.Context, strategyID uuid.UUID) ([]store.Post, error)
	CountPendingPostsByStrategy(ctx context.Context, strategyID uuid.UUID) (int, error)
	UpdatePostMetrics(ctx context.Context, postID uuid.UUID, metrics store.PostMetrics) error
	DeletePostsByStrategy(ctx context.Context, strategyID uuid.UUID) error
	CreateCorrectiveAction(ctx context.Context, params store.CreateCorrectiveActionParams) (store.StrategyDiagnosis, store.Post, error)
	ListStrategyDiagnoses(ctx context.Context, adminID, strategyID uuid.UUID) ([]store.StrategyDiagnosis, error)
	GetPlatformSettings(ctx context.Context, adminID uuid.UUID) (store.PlatformSettings, error)
}

type GraphClient interface {
	GetPostMetrics(ctx context.Context, postID, token string) graph.PostMetrics
	DeletePost(ctx context.Context, postID, token string) error
}

// Planner drafts strategies and corrective actions
type Planner interface {
	GenerateStrategyProposal(ctx context.Context, in contentgen.ProposalInput) (contentgen.StrategyProposal, error)
	GenerateCorrectiveAction(ctx context.Context, in contentgen.CorrectiveInput) (contentgen.CorrectiveAction, error)
}

// ImageGenerator turns an image concept into a hosted image URL
type ImageGenerator interface {
	GenerateImageURL(ctx context.Context, concept string) (string, error)
}

type CreditGate interface {
	HasCredits(ctx context.Context, adminID uuid.UUID, amount float64) (bool, error)
	DeductCredits(ctx context.Context, adminID uuid.UUID, amount float64, description string) (float64, error)
}

type TokenOpener interface {
	Open(sealed string) (string, error)
}

type ActivityRecorder interface {
	Info(ctx context.Context, adminID uuid.UUID, action, format string, args ...any)
	Success(ctx context.Context, adminID uuid.UUID, action, format string, args ...any)
	Error(ctx context.Context, adminID uuid.UUID, action, format string, args ...any)
}

type Notifier interface {
	Notify(ctx context.Context, settings store.PlatformSettings, alert alerts.Alert)
}

var (
	ErrInvalidStrategyType = errors.New("strategy type must be paid or free")
	ErrEmptyContentPlan    = errors.New("content plan must contain at least one post")
	ErrStrategyNotActive   = errors.New("strategy is not active")
)

// Config holds the monitor's decision rule and the lifecycle's scheduling and pricing
type Config struct {
	ReachThreshold       float64
	CorrectiveDelay      time.Duration
	PostSpacing          time.Duration
	CorrectiveCreditCost float64
	ProposalCreditCost   float64
}

// firstPostLead is how far ahead of approval the first planned post goes out
const firstPostLead = time.Hour

type StrategyProcessor struct {
	store    StrategyStore
	graph    GraphClient
	planner  Planner
	images   ImageGenerator
	credits  CreditGate
	tokens   TokenOpener
	activity ActivityRecorder
	notifier Notifier
	cfg      Config
	now      func() time.Time
	logger   *observability.Logger
}

// New creates a StrategyProcessor. images may be nil, in which case corrective
// posts are text only.
func New(store StrategyStore, graph GraphClient, planner Planner, images ImageGenerator, credits CreditGate,
	tokens TokenOpener, activity ActivityRecorder, notifier Notifier, cfg Config, logger *observability.Logger) *StrategyProcessor {
	return &StrategyProcessor{
		store:    store,
		graph:    graph,
		planner:  planner,
		images:   images,
		credits:  credits,
		tokens:   tokens,
		activity: activity,
		notifier: notifier,
		cfg:      cfg,
		now:      time.Now,
		logger:   logger,
	}
}
