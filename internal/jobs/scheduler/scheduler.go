package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"villanova-server/internal/observability"
)

// Job represents a scheduled job
type Job interface {
	// Name returns the job name for logging
	Name() string
	// Run executes the job
	Run(ctx context.Context) error
	// Schedule returns the interval between runs
	Schedule() time.Duration
}

// StartupRunner is implemented by jobs that opt out of the run at startup
type StartupRunner interface {
	RunOnStartup() bool
}

// Scheduler manages scheduled jobs
type Scheduler struct {
	jobs    []Job
	logger  *observability.Logger
	running sync.WaitGroup
}

// New creates a new scheduler
func New(logger *observability.Logger) *Scheduler {
	return &Scheduler{
		jobs:   make([]Job, 0),
		logger: logger,
	}
}

// Register adds a job to the scheduler
func (s *Scheduler) Register(job Job) {
	s.jobs = append(s.jobs, job)
	s.logger.Info(context.Background(), fmt.Sprintf("Registered scheduled job: %s (interval: %s)",
		job.Name(), job.Schedule()))
}

// Start runs every job until ctx is cancelled, then waits for in-flight runs to return
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info(ctx, fmt.Sprintf("Starting scheduler with %d jobs", len(s.jobs)))

	for _, job := range s.jobs {
		s.running.Add(1)
		go func(job Job) {
			defer s.running.Done()
			s.runJob(ctx, job)
		}(job)
	}

	<-ctx.Done()
	s.running.Wait()
	s.logger.Info(context.Background(), "Scheduler stopped")
	return ctx.Err()
}

// runJob runs a single job on its schedule. Runs of one job never overlap.
func (s *Scheduler) runJob(ctx context.Context, job Job) {
	jobCtx := observability.WithFields(ctx, observability.Field{Key: "scheduled_job", Value: job.Name()})

	s.logger.Info(jobCtx, fmt.Sprintf("Starting scheduled job: %s", job.Name()))

	runNow := true
	if r, ok := job.(StartupRunner); ok {
		runNow = r.RunOnStartup()
	}
	if runNow {
		s.executeJob(jobCtx, job)
	}

	ticker := time.NewTicker(job.Schedule())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info(jobCtx, fmt.Sprintf("Stopping scheduled job: %s", job.Name()))
			return
		case <-ticker.C:
			s.executeJob(jobCtx, job)
		}
	}
}

// executeJob executes a job, records its duration and recovers from panics
func (s *Scheduler) executeJob(ctx context.Context, job Job) (err error) {
	start := time.Now()
	s.logger.Debug(ctx, fmt.Sprintf("Executing scheduled job: %s", job.Name()))

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("job %s panicked: %v", job.Name(), r)
		}

		duration := time.Since(start)
		result := "success"
		if err != nil {
			result = "error"
			s.logger.Error(ctx, fmt.Sprintf("Job %s failed after %v", job.Name(), duration), err)
		} else {
			s.logger.Debug(ctx, fmt.Sprintf("Job %s completed successfully in %v", job.Name(), duration))
		}
		observability.JobDuration.WithLabelValues(job.Name(), result).Observe(duration.Seconds())
	}()

	return job.Run(ctx)
}
