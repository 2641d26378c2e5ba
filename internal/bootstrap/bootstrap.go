package bootstrap

import (
	"context"
	"fmt"

	"villanova-server/internal/alerts"
	"villanova-server/internal/clients/googleai"
	"villanova-server/internal/clients/graph"
	"villanova-server/internal/clients/mail"
	"villanova-server/internal/clients/openai"
	"villanova-server/internal/clients/sms"
	"villanova-server/internal/config"
	"villanova-server/internal/contentgen"
	"villanova-server/internal/jobs/scheduler"
	"villanova-server/internal/jobs/scheduler/jobs"
	"villanova-server/internal/ledger"
	"villanova-server/internal/observability"
	"villanova-server/internal/ratelimit"
	"villanova-server/internal/secrets"
	"villanova-server/internal/store"

	activityHandler "villanova-server/internal/activity/handler"
	activityProcessor "villanova-server/internal/activity/processor"
	authHandler "villanova-server/internal/auth/handler"
	authProcessor "villanova-server/internal/auth/processor"
	botProcessor "villanova-server/internal/bot/processor"
	postsProcessor "villanova-server/internal/posts/processor"
	settingsHandler "villanova-server/internal/settings/handler"
	settingsProcessor "villanova-server/internal/settings/processor"
	strategyHandler "villanova-server/internal/strategy/handler"
	strategyProcessor "villanova-server/internal/strategy/processor"
	walletHandler "villanova-server/internal/wallet/handler"
	walletProcessor "villanova-server/internal/wallet/processor"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger
	Queue  *ratelimit.Queue
	Ledger *ledger.Ledger

	// Handlers
	AuthHandler     authHandler.Handler
	SettingsHandler settingsHandler.Handler
	StrategyHandler strategyHandler.Handler
	ActivityHandler activityHandler.Handler
	WalletHandler   walletHandler.Handler

	// Background loops
	Scheduler *scheduler.Scheduler

	// Clients holding connections (for cleanup)
	GoogleAIClient *googleai.Client
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	connectionString := cfg.Database.ConnectionString()
	var err error
	deps.Store, err = store.New(connectionString, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	db := &deps.Store

	sealer, err := secrets.NewSealer(cfg.Auth.TokenEncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create token sealer: %w", err)
	}

	// Every graph call shares one queue so the page never exceeds its quota
	deps.Queue = ratelimit.NewQueue(ratelimit.Config{
		RequestsPerSecond: cfg.Graph.RequestsPerSecond,
		Burst:             cfg.Graph.Burst,
		MaxConcurrent:     cfg.Graph.MaxConcurrent,
	})
	graphClient := graph.NewClient(graph.Config{
		BaseURL: cfg.Graph.BaseURL,
		Version: cfg.Graph.Version,
		Timeout: cfg.Graph.HTTPTimeout,
	}, deps.Queue, logger)

	// Initialize content generation
	provider, images, err := deps.initAI(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	generator := contentgen.New(provider, contentgen.Config{
		MaxRetries: cfg.AI.MaxRetries,
		BaseDelay:  cfg.AI.RetryBaseDelay,
	}, logger)

	// Initialize alerts. A channel without credentials stays disabled.
	var emailSender alerts.EmailSender
	if cfg.Services.ResendAPIKey != "" {
		mailClient, err := mail.NewResendClient(cfg.Services.ResendAPIKey, cfg.Services.DefaultEmailSender, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create resend client: %w", err)
		}
		emailSender = mailClient
	}
	var smsSender alerts.SMSSender
	if cfg.Services.SMSEnabled() {
		smsClient, err := sms.NewTwilioClient(cfg.Services.TwilioAccountSID, cfg.Services.TwilioAuthToken,
			cfg.Services.TwilioFromNumber, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create twilio client: %w", err)
		}
		smsSender = smsClient
	}
	notifier := alerts.NewNotifier(emailSender, smsSender, cfg.Services.WebAppURI, logger)

	// Initialize auth processor and handler
	authProc := authProcessor.New(cfg.Auth.JWTSecret, logger)
	deps.AuthHandler = authHandler.New(authProc, logger)

	// Initialize activity log and its live feed
	activityProc := activityProcessor.New(db, activityProcessor.NewHub(), logger)
	deps.ActivityHandler = activityHandler.New(activityProc, logger)

	// Initialize wallet
	walletProc := walletProcessor.New(db, logger)
	deps.WalletHandler = walletHandler.New(walletProc, logger)

	// Initialize platform settings
	settingsProc := settingsProcessor.New(db, graphClient, sealer, activityProc, logger)
	deps.SettingsHandler = settingsHandler.New(settingsProc, logger)

	// Initialize strategies
	strategyProc := strategyProcessor.New(db, graphClient, generator, images, walletProc, sealer, activityProc, notifier,
		strategyProcessor.Config{
			ReachThreshold:       cfg.AdRoom.ReachThreshold,
			CorrectiveDelay:      cfg.AdRoom.CorrectiveDelay,
			PostSpacing:          cfg.AdRoom.PostSpacing,
			CorrectiveCreditCost: cfg.AdRoom.CorrectiveCreditCost,
			ProposalCreditCost:   cfg.AdRoom.ProposalCreditCost,
		}, logger)
	deps.StrategyHandler = strategyHandler.New(strategyProc, logger)

	// Initialize background loops
	deps.Ledger = ledger.New(db, logger)
	botProc := botProcessor.New(db, graphClient, generator, deps.Ledger, sealer, activityProc, logger)
	postsProc := postsProcessor.New(db, graphClient, walletProc, sealer, activityProc, notifier,
		cfg.AdRoom.PaidPostCreditCost, logger)

	deps.Scheduler = scheduler.New(logger)
	deps.Scheduler.Register(jobs.NewBotJob(botProc, logger, cfg.AdRoom.BotInterval))
	deps.Scheduler.Register(jobs.NewPostPublishJob(postsProc, logger, cfg.AdRoom.PostSchedulerInterval))
	deps.Scheduler.Register(jobs.NewStrategyMonitorJob(strategyProc, logger, cfg.AdRoom.MonitorInterval))
	deps.Scheduler.Register(jobs.NewPageInsightsJob(db, graphClient, sealer, logger, cfg.AdRoom.InsightsInterval))

	return deps, nil
}

// initAI returns the text provider for the configured backend and, when an
// OpenAI key is present, an image generator for corrective posts.
func (d *Dependencies) initAI(ctx context.Context, cfg *config.Config, logger *observability.Logger) (contentgen.Provider, strategyProcessor.ImageGenerator, error) {
	var openAIClient *openai.Client
	if cfg.AI.OpenAIAPIKey != "" {
		var err error
		openAIClient, err = openai.NewClient(cfg.AI.OpenAIAPIKey, cfg.AI.Model, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create openai client: %w", err)
		}
	}

	var images strategyProcessor.ImageGenerator
	if openAIClient != nil {
		images = openAIClient
	}

	switch cfg.AI.Provider {
	case "openai":
		return openAIClient, images, nil
	default:
		googleAIClient, err := googleai.NewClient(ctx, cfg.AI.GoogleAIAPIKey, cfg.AI.Model, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create google ai client: %w", err)
		}
		d.GoogleAIClient = googleAIClient
		return googleAIClient, images, nil
	}
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	if d.Queue != nil {
		d.Queue.Close()
	}
	if d.GoogleAIClient != nil {
		if err := d.GoogleAIClient.Close(); err != nil {
			d.Logger.Error(context.Background(), "failed to close google ai client", err)
		}
	}
	if err := d.Store.Close(); err != nil {
		d.Logger.Error(context.Background(), "failed to close database", err)
	}
}
