package async

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Refiner runs the refinement stage for one queued job.
type Refiner interface {
	ProcessFile(ctx context.Context, job Job) error
}

// RefinerQueue fans jobs out to a small fixed pool of workers. The bound
// keeps completion-API load and local extraction contention predictable.
type RefinerQueue struct {
	refiner Refiner
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu      sync.Mutex
	closed  bool
	senders sync.WaitGroup
}

type Option func(*RefinerQueue)

func WithWorkers(n int) Option {
	return func(q *RefinerQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *RefinerQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}
func WithJobTimeout(d time.Duration) Option {
	return func(q *RefinerQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewRefinerQueue(refiner Refiner, logger *slog.Logger, opts ...Option) *RefinerQueue {
	q := &RefinerQueue{
		refiner: refiner,
		logger:  logger,
		workers: 6,
		timeout: 5 * time.Minute,
		ch:      make(chan Job, 100),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *RefinerQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					err := q.refiner.ProcessFile(ctx, job)
					cancel()

					if err != nil {
						q.logger.Error("refinement failed", "worker_id", workerID, "file_id", job.FileID, "error", err)
					} else {
						q.logger.Info("refinement finished", "worker_id", workerID, "file_id", job.FileID)
					}
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

// Enqueue hands the job to the pool, blocking while the buffer is full.
// The mutex only guards sender registration, never the send itself, so a
// full queue cannot stall Shutdown.
func (q *RefinerQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		q.logger.Warn("cannot enqueue: queue is shutting down", "file_id", job.FileID)
		return ErrQueueClosed
	}
	q.senders.Add(1)
	q.mu.Unlock()
	defer q.senders.Done()

	select {
	case q.ch <- job:
	default:
		q.logger.Warn("queue full, applying backpressure", "file_id", job.FileID)
		q.ch <- job
	}
	q.logger.Info("queued file for refinement", "file_id", job.FileID)
	return nil
}

// Shutdown stops intake immediately, lets registered senders finish their
// sends while the workers keep draining, then closes the channel and waits
// for the pool, bounded by ctx.
func (q *RefinerQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	q.mu.Unlock()

	q.senders.Wait()
	close(q.ch)

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
