package jobs

import (
	"context"
	"fmt"
	"time"

	botprocessor "villanova-server/internal/bot/processor"
	"villanova-server/internal/observability"
)

// BotCycleRunner runs one pass over every admin's comments and messages
type BotCycleRunner interface {
	MonitorCycle(ctx context.Context) (botprocessor.CycleReport, error)
}

// BotJob polls connected pages and answers new comments and direct messages
type BotJob struct {
	bot      BotCycleRunner
	logger   *observability.Logger
	interval time.Duration
}

// NewBotJob creates a new bot job
func NewBotJob(bot BotCycleRunner, logger *observability.Logger, interval time.Duration) *BotJob {
	if interval == 0 {
		interval = 10 * time.Second
	}

	return &BotJob{
		bot:      bot,
		logger:   logger,
		interval: interval,
	}
}

// Name returns the job name
func (j *BotJob) Name() string {
	return "bot_monitor"
}

// Schedule returns how often the job should run
func (j *BotJob) Schedule() time.Duration {
	return j.interval
}

// Run executes one bot cycle
func (j *BotJob) Run(ctx context.Context) error {
	report, err := j.bot.MonitorCycle(ctx)
	if err != nil {
		return fmt.Errorf("bot cycle failed: %w", err)
	}

	if report.Replied() > 0 || report.Failed() > 0 {
		j.logger.Info(ctx, fmt.Sprintf("Bot cycle completed: %d admins, %d replies sent, %d admins failed",
			len(report.Admins), report.Replied(), report.Failed()))
	}
	return nil
}
