package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// GraphRequests counts outbound social graph calls by queue priority and outcome
	GraphRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "adroom_graph_requests_total",
		Help: "Outbound social graph requests by priority and outcome",
	}, []string{"priority", "outcome"})

	// RequestQueueDepth is the number of tasks waiting in the outbound request queue
	RequestQueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "adroom_request_queue_depth",
		Help: "Tasks waiting in the outbound request queue",
	})

	RepliesSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "adroom_replies_sent_total",
		Help: "Replies sent by interaction type",
	}, []string{"type"})

	DuplicateEventsSkipped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "adroom_duplicate_events_skipped_total",
		Help: "Events skipped because the ledger already recorded them",
	}, []string{"type"})

	PostsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "adroom_posts_total",
		Help: "Scheduled posts processed by resulting status",
	}, []string{"status"})

	ContentRetries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "adroom_content_generation_retries_total",
		Help: "Content generation retries after rate limiting",
	})

	CorrectiveActions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "adroom_corrective_actions_total",
		Help: "Corrective actions for underperforming strategies by outcome",
	}, []string{"outcome"})

	// JobDuration tracks scheduled job run time
	JobDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "adroom_job_duration_seconds",
		Help:    "Scheduled job duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.01, 2, 14),
	}, []string{"job", "result"})
)
