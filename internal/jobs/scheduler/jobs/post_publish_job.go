package jobs

import (
	"context"
	"fmt"
	"time"

	"villanova-server/internal/observability"
	postsprocessor "villanova-server/internal/posts/processor"
)

// PostPublisher publishes every pending post whose scheduled time has passed
type PostPublisher interface {
	PublishDuePosts(ctx context.Context, now time.Time) (postsprocessor.PublishReport, error)
}

// PostPublishJob publishes scheduled posts once they are due
type PostPublishJob struct {
	publisher PostPublisher
	logger    *observability.Logger
	interval  time.Duration
	now       func() time.Time
}

// NewPostPublishJob creates a new post publish job
func NewPostPublishJob(publisher PostPublisher, logger *observability.Logger, interval time.Duration) *PostPublishJob {
	if interval == 0 {
		interval = time.Minute
	}

	return &PostPublishJob{
		publisher: publisher,
		logger:    logger,
		interval:  interval,
		now:       time.Now,
	}
}

// Name returns the job name
func (j *PostPublishJob) Name() string {
	return "post_publisher"
}

// Schedule returns how often the job should run
func (j *PostPublishJob) Schedule() time.Duration {
	return j.interval
}

// Run publishes the posts due at the current time
func (j *PostPublishJob) Run(ctx context.Context) error {
	report, err := j.publisher.PublishDuePosts(ctx, j.now())
	if err != nil {
		return fmt.Errorf("failed to publish due posts: %w", err)
	}

	if len(report.Posts) > 0 {
		j.logger.Info(ctx, fmt.Sprintf("Post publishing completed: %d due, %d published, %d failed",
			len(report.Posts), report.Published(), report.Failed()))
	}
	return nil
}
