package jobs

import (
	"context"
	"fmt"
	"time"

	"villanova-server/internal/observability"
	strategyprocessor "villanova-server/internal/strategy/processor"
)

// StrategyMonitor reviews every active strategy's performance
type StrategyMonitor interface {
	MonitorStrategies(ctx context.Context) (strategyprocessor.MonitorReport, error)
}

// StrategyMonitorJob reviews active strategies and schedules corrective posts
// for the ones under the reach threshold
type StrategyMonitorJob struct {
	monitor  StrategyMonitor
	logger   *observability.Logger
	interval time.Duration
}

// NewStrategyMonitorJob creates a new strategy monitor job
func NewStrategyMonitorJob(monitor StrategyMonitor, logger *observability.Logger, interval time.Duration) *StrategyMonitorJob {
	if interval == 0 {
		interval = 24 * time.Hour
	}

	return &StrategyMonitorJob{
		monitor:  monitor,
		logger:   logger,
		interval: interval,
	}
}

// Name returns the job name
func (j *StrategyMonitorJob) Name() string {
	return "strategy_monitor"
}

// Schedule returns how often the job should run
func (j *StrategyMonitorJob) Schedule() time.Duration {
	return j.interval
}

// RunOnStartup is false so a restart does not produce a second correction for the day
func (j *StrategyMonitorJob) RunOnStartup() bool {
	return false
}

// Run executes the strategy review
func (j *StrategyMonitorJob) Run(ctx context.Context) error {
	j.logger.Info(ctx, "Running strategy monitor job")

	report, err := j.monitor.MonitorStrategies(ctx)
	if err != nil {
		return fmt.Errorf("failed to monitor strategies: %w", err)
	}

	j.logger.Info(ctx, fmt.Sprintf("Strategy monitor completed: %d reviewed, %d corrected, %d failed",
		len(report.Strategies), report.Corrected(), report.Failed()))
	return nil
}
