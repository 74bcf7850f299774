package async

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrQueueClosed reports an enqueue attempted after shutdown began. Callers
// own the recovery; the job is not accepted.
var ErrQueueClosed = errors.New("refinement queue closed")

// Job is one file refinement request.
type Job struct {
	FileID      uuid.UUID
	WorkspaceID uuid.UUID
	ActorID     string
	SubmittedAt time.Time
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
