package ratelimit

import (
	"container/heap"
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"villanova-server/internal/observability"

	"golang.org/x/time/rate"
)

// Priorities for outbound requests. Lower numbers are served first.
const (
	PriorityHigh   = 1
	PriorityNormal = 5
	PriorityLow    = 10
)

var ErrQueueClosed = errors.New("request queue closed")

// Config sets the global ceiling for outbound requests
type Config struct {
	RequestsPerSecond float64
	Burst             int
	MaxConcurrent     int
}

// Queue serializes outbound calls by priority under a rate and concurrency ceiling.
// Tasks are never retried; a task's error is returned to its caller as is.
type Queue struct {
	mu    sync.Mutex
	tasks taskHeap
	seq   uint64

	wake    chan struct{}
	done    chan struct{}
	stopped chan struct{}
	once    sync.Once

	limiter *rate.Limiter
	slots   chan struct{}
	running sync.WaitGroup
}

type task struct {
	ctx      context.Context
	priority int
	seq      uint64
	fn       func(ctx context.Context) error
	result   chan error
}

// NewQueue creates a queue and starts its dispatcher
func NewQueue(cfg Config) *Queue {
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = 5
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = 1
	}

	q := &Queue{
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		slots:   make(chan struct{}, cfg.MaxConcurrent),
	}
	go q.dispatch()
	return q
}

// Enqueue schedules fn and blocks until it has run or ctx is done.
func (q *Queue) Enqueue(ctx context.Context, priority int, fn func(ctx context.Context) error) error {
	t := &task{
		ctx:      ctx,
		priority: priority,
		fn:       fn,
		result:   make(chan error, 1),
	}

	q.mu.Lock()
	select {
	case <-q.done:
		q.mu.Unlock()
		return ErrQueueClosed
	default:
	}
	q.seq++
	t.seq = q.seq
	heap.Push(&q.tasks, t)
	observability.RequestQueueDepth.Set(float64(q.tasks.Len()))
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}

	select {
	case err := <-t.result:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Do runs fn through the queue and returns its value.
func Do[T any](ctx context.Context, q *Queue, priority int, fn func(ctx context.Context) (T, error)) (T, error) {
	var out T
	err := q.Enqueue(ctx, priority, func(ctx context.Context) error {
		v, err := fn(ctx)
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// Close stops the dispatcher, fails waiting tasks with ErrQueueClosed and waits for running ones.
func (q *Queue) Close() {
	q.once.Do(func() {
		q.mu.Lock()
		close(q.done)
		q.mu.Unlock()
		<-q.stopped

		q.mu.Lock()
		for q.tasks.Len() > 0 {
			t := heap.Pop(&q.tasks).(*task)
			t.result <- ErrQueueClosed
		}
		observability.RequestQueueDepth.Set(0)
		q.mu.Unlock()

		q.running.Wait()
	})
}

func (q *Queue) dispatch() {
	defer close(q.stopped)

	// The limiter wait is bound to the queue lifetime, not to any one caller.
	life, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		<-q.done
		cancel()
	}()

	for {
		select {
		case q.slots <- struct{}{}:
		case <-q.done:
			return
		}

		if !q.waitForTask() {
			<-q.slots
			return
		}
		if err := q.limiter.Wait(life); err != nil {
			<-q.slots
			return
		}

		t := q.pop()
		if t == nil {
			<-q.slots
			continue
		}
		if err := t.ctx.Err(); err != nil {
			t.result <- err
			<-q.slots
			continue
		}

		q.running.Add(1)
		go func(t *task) {
			defer func() {
				<-q.slots
				q.running.Done()
			}()
			t.result <- q.run(t)
		}(t)
	}
}

func (q *Queue) waitForTask() bool {
	for {
		select {
		case <-q.done:
			return false
		default:
		}
		q.mu.Lock()
		n := q.tasks.Len()
		q.mu.Unlock()
		if n > 0 {
			return true
		}
		select {
		case <-q.wake:
		case <-q.done:
			return false
		}
	}
}

func (q *Queue) pop() *task {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.tasks.Len() == 0 {
		return nil
	}
	t := heap.Pop(&q.tasks).(*task)
	observability.RequestQueueDepth.Set(float64(q.tasks.Len()))
	return t
}

func (q *Queue) run(t *task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("request task panicked: %v", r)
		}
		outcome := "success"
		if err != nil {
			outcome = "error"
		}
		observability.GraphRequests.WithLabelValues(strconv.Itoa(t.priority), outcome).Inc()
	}()
	return t.fn(t.ctx)
}

// taskHeap orders by priority, then by insertion order.
type taskHeap []*task

func (h taskHeap) Len() int { return len(h) }

func (h taskHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}

func (h taskHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *taskHeap) Push(x any) { *h = append(*h, x.(*task)) }

func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return t
}
