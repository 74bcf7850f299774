package async

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRefiner struct {
	mu   sync.Mutex
	seen []uuid.UUID
}

func (r *countingRefiner) ProcessFile(ctx context.Context, job Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, job.FileID)
	return nil
}

func (r *countingRefiner) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.seen)
}

func TestQueueProcessesAllJobs(t *testing.T) {
	refiner := &countingRefiner{}
	q := NewRefinerQueue(refiner, slog.Default(), WithWorkers(3), WithQueueSize(8))

	const jobs = 20
	ctx := context.Background()
	for i := 0; i < jobs; i++ {
		require.NoError(t, q.Enqueue(ctx, Job{FileID: uuid.New(), SubmittedAt: time.Now()}))
	}

	q.Shutdown(ctx)
	assert.Equal(t, jobs, refiner.count())
}

func TestQueueRejectsAfterShutdown(t *testing.T) {
	refiner := &countingRefiner{}
	q := NewRefinerQueue(refiner, slog.Default(), WithWorkers(1))

	ctx := context.Background()
	q.Shutdown(ctx)

	// enqueue after shutdown is refused, not a panic on a closed channel
	assert.ErrorIs(t, q.Enqueue(ctx, Job{FileID: uuid.New()}), ErrQueueClosed)
	assert.Zero(t, refiner.count())

	// repeated shutdown is a no-op
	q.Shutdown(ctx)
}

// gatedRefiner holds every job until the gate opens.
type gatedRefiner struct {
	gate chan struct{}
	done atomic.Int32
}

func (r *gatedRefiner) ProcessFile(ctx context.Context, _ Job) error {
	<-r.gate
	r.done.Add(1)
	return nil
}

func TestShutdownDrainsBlockedEnqueue(t *testing.T) {
	refiner := &gatedRefiner{gate: make(chan struct{})}
	q := NewRefinerQueue(refiner, slog.Default(), WithWorkers(1), WithQueueSize(1))
	ctx := context.Background()

	require.NoError(t, q.Enqueue(ctx, Job{FileID: uuid.New()})) // held by the worker
	require.NoError(t, q.Enqueue(ctx, Job{FileID: uuid.New()})) // fills the buffer

	third := make(chan error, 1)
	go func() { third <- q.Enqueue(ctx, Job{FileID: uuid.New()}) }()

	shutdownDone := make(chan struct{})
	go func() {
		time.Sleep(50 * time.Millisecond) // let the third sender block first
		q.Shutdown(ctx)
		close(shutdownDone)
	}()

	time.Sleep(100 * time.Millisecond)
	close(refiner.gate)

	select {
	case <-shutdownDone:
	case <-time.After(5 * time.Second):
		t.Fatal("shutdown did not finish after the backlog drained")
	}
	require.NoError(t, <-third)
	assert.Equal(t, int32(3), refiner.done.Load())
	assert.ErrorIs(t, q.Enqueue(ctx, Job{FileID: uuid.New()}), ErrQueueClosed)
}
