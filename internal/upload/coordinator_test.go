package upload

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/billfeed/billfeed/constants"
	"github.com/billfeed/billfeed/gen/ent"
	"github.com/billfeed/billfeed/gen/ent/enttest"
	"github.com/billfeed/billfeed/internal/async"
	"github.com/billfeed/billfeed/internal/billing"
	"github.com/billfeed/billfeed/internal/common"
	"github.com/billfeed/billfeed/internal/extract"
	"github.com/billfeed/billfeed/internal/repository"
	"github.com/billfeed/billfeed/internal/storage"
	"github.com/billfeed/billfeed/internal/workspace"
)

// captureQueue records enqueued jobs instead of running them.
type captureQueue struct {
	jobs []async.Job
}

func (q *captureQueue) Enqueue(ctx context.Context, job async.Job) error {
	q.jobs = append(q.jobs, job)
	return nil
}

func (q *captureQueue) Shutdown(context.Context) {}

// closedQueue refuses every job, like a pool that already shut down.
type closedQueue struct{}

func (closedQueue) Enqueue(context.Context, async.Job) error { return async.ErrQueueClosed }
func (closedQueue) Shutdown(context.Context)                 {}

// denyGuard rejects every membership check.
type denyGuard struct{}

func (denyGuard) HasPermission(context.Context, uuid.UUID, string, workspace.Role) (bool, error) {
	return false, nil
}

// actorGuard admits exactly one actor.
type actorGuard struct{ allowed string }

func (g actorGuard) HasPermission(_ context.Context, _ uuid.UUID, actor string, _ workspace.Role) (bool, error) {
	return actor == g.allowed, nil
}

// textRunner makes every pdftotext/tesseract invocation emit fixed text.
type textRunner struct {
	output string
}

func (r *textRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	return []byte(r.output), nil, nil
}

type fixture struct {
	coordinator *Coordinator
	files       repository.FileRepository
	queue       *captureQueue
	blobs       *storage.BlobStore
	runner      *textRunner
	ws          uuid.UUID
}

type fixtureOpts struct {
	guard       workspace.Guard
	queue       async.Queue
	maxFileSize int64
	enforce     bool
}

func newFixture(t *testing.T, opts fixtureOpts) *fixture {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	db.SetMaxOpenConns(1)

	client := enttest.NewClient(t, enttest.WithOptions(ent.Driver(entsql.OpenDB(dialect.SQLite, db))))
	t.Cleanup(func() { _ = client.Close() })

	logger := slog.Default()
	files := repository.NewFileRepository(client, logger)
	accounts := repository.NewAccountRepository(client, dialect.SQLite, logger)
	usage := repository.NewUsageRepository(client, logger)
	billingSvc := billing.NewService(accounts, usage, common.BillingConfig{
		DefaultUnitPrice: decimal.RequireFromString("0.01"),
		MinBalance:       decimal.RequireFromString("0.20"),
		EnforceBalance:   opts.enforce,
	}, logger)

	blobs, err := storage.NewBlobStore(t.TempDir(), logger)
	require.NoError(t, err)

	guard := opts.guard
	if guard == nil {
		guard = workspace.AllowAll{}
	}
	queue := &captureQueue{}
	var q async.Queue = queue
	if opts.queue != nil {
		q = opts.queue
	}
	runner := &textRunner{output: "statement line one\nstatement line two\n"}

	return &fixture{
		coordinator: NewCoordinator(guard, blobs, files, billingSvc, q,
			extract.Config{}, runner, opts.maxFileSize, logger),
		files:  files,
		queue:  queue,
		blobs:  blobs,
		runner: runner,
		ws:     uuid.New(),
	}
}

func (fx *fixture) submit(t *testing.T, content string) (*SubmitResult, error) {
	t.Helper()
	return fx.coordinator.Submit(context.Background(), fx.ws, "actor-1",
		strings.NewReader(content), "statement.pdf")
}

func contentHash(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

func TestSubmitAccepted(t *testing.T) {
	fx := newFixture(t, fixtureOpts{})

	res, err := fx.submit(t, "pdf bytes")
	require.NoError(t, err)

	assert.Equal(t, StatusAccepted, res.Status)
	assert.Equal(t, string(constants.FileProcessing), res.File.Status)
	assert.Equal(t, "statement line one\nstatement line two\n", res.RawPreview)
	assert.Empty(t, res.Bills)

	require.Len(t, fx.queue.jobs, 1)
	assert.Equal(t, res.File.ID, fx.queue.jobs[0].FileID)
	assert.Equal(t, fx.ws, fx.queue.jobs[0].WorkspaceID)

	// the original bytes are on disk, the extracted text in the row
	data, err := os.ReadFile(fx.blobs.Abs(res.File.SavedPath))
	require.NoError(t, err)
	assert.Equal(t, "pdf bytes", string(data))
}

func TestSubmitDuplicateIsIdempotent(t *testing.T) {
	fx := newFixture(t, fixtureOpts{})

	first, err := fx.submit(t, "pdf bytes")
	require.NoError(t, err)

	second, err := fx.submit(t, "pdf bytes")
	require.NoError(t, err)

	assert.Equal(t, StatusDuplicate, second.Status)
	assert.Equal(t, first.File.ID, second.File.ID)
	assert.Len(t, fx.queue.jobs, 1, "duplicates must not re-enqueue")
}

func TestSubmitDuplicateOfCompletedReturnsBills(t *testing.T) {
	fx := newFixture(t, fixtureOpts{})
	ctx := context.Background()

	first, err := fx.submit(t, "pdf bytes")
	require.NoError(t, err)
	_, err = fx.files.CompleteWithBills(ctx, first.File.ID, "refined", []repository.BillParams{
		{Bank: "CMB", RawLine: "line-1"},
	})
	require.NoError(t, err)

	second, err := fx.submit(t, "pdf bytes")
	require.NoError(t, err)
	assert.Equal(t, StatusDuplicate, second.Status)
	require.Len(t, second.Bills, 1)
	assert.Equal(t, "CMB", second.Bills[0].Bank)
}

func TestSubmitFailedUploadIsNotSticky(t *testing.T) {
	fx := newFixture(t, fixtureOpts{})
	ctx := context.Background()

	first, err := fx.submit(t, "pdf bytes")
	require.NoError(t, err)
	require.NoError(t, fx.files.MarkFailed(ctx, first.File.ID, "curate failed", nil))

	second, err := fx.submit(t, "pdf bytes")
	require.NoError(t, err)
	assert.Equal(t, StatusAccepted, second.Status)
	assert.NotEqual(t, first.File.ID, second.File.ID)
	assert.Len(t, fx.queue.jobs, 2)
}

func TestSubmitUnsupportedExtension(t *testing.T) {
	fx := newFixture(t, fixtureOpts{})

	_, err := fx.coordinator.Submit(context.Background(), fx.ws, "actor-1",
		strings.NewReader("x"), "notes.docx")
	assert.ErrorIs(t, err, common.ErrUnsupportedFormat)
}

func TestSubmitPermissionDenied(t *testing.T) {
	fx := newFixture(t, fixtureOpts{guard: denyGuard{}})

	_, err := fx.submit(t, "pdf bytes")
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestSubmitOversizedFile(t *testing.T) {
	fx := newFixture(t, fixtureOpts{maxFileSize: 4})

	_, err := fx.submit(t, "way past four bytes")
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestSubmitUnreadableDocument(t *testing.T) {
	fx := newFixture(t, fixtureOpts{})
	fx.runner.output = "   \n"

	_, err := fx.submit(t, "pdf bytes")
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	// nothing accepted means nothing to retry against
	existing, ferr := fx.files.FindActiveByHash(context.Background(), fx.ws,
		contentHash("pdf bytes"))
	require.NoError(t, ferr)
	assert.Nil(t, existing)
	assert.Empty(t, fx.queue.jobs)
}

func TestSubmitBalanceEnforced(t *testing.T) {
	fx := newFixture(t, fixtureOpts{enforce: true})

	_, err := fx.submit(t, "pdf bytes")
	assert.ErrorIs(t, err, common.ErrInsufficientBalance)
}

func TestSubmitQueueUnavailableFailsRow(t *testing.T) {
	fx := newFixture(t, fixtureOpts{queue: closedQueue{}})

	res, err := fx.submit(t, "pdf bytes")
	require.NoError(t, err)

	// the row must not sit in processing with no worker coming for it
	assert.Equal(t, string(constants.FileFailed), res.File.Status)
	require.NotNil(t, res.File.Remark)
	assert.Contains(t, *res.File.Remark, "refinement queue unavailable")

	// and the content is free to try again
	second, err := fx.submit(t, "pdf bytes")
	require.NoError(t, err)
	assert.Equal(t, StatusAccepted, second.Status)
	assert.NotEqual(t, res.File.ID, second.File.ID)
}

func TestDeleteUpload(t *testing.T) {
	fx := newFixture(t, fixtureOpts{})
	ctx := context.Background()

	res, err := fx.submit(t, "pdf bytes")
	require.NoError(t, err)

	require.NoError(t, fx.coordinator.Delete(ctx, fx.ws, res.File.ID, "actor-1"))

	_, err = fx.files.GetByID(ctx, res.File.ID)
	assert.True(t, ent.IsNotFound(err))

	// deleting again finds nothing
	err = fx.coordinator.Delete(ctx, fx.ws, res.File.ID, "actor-1")
	assert.True(t, ent.IsNotFound(err))
}

func TestDeleteUploadPermissionDenied(t *testing.T) {
	fx := newFixture(t, fixtureOpts{guard: actorGuard{allowed: "actor-1"}})
	ctx := context.Background()

	res, err := fx.submit(t, "pdf bytes")
	require.NoError(t, err)

	err = fx.coordinator.Delete(ctx, fx.ws, res.File.ID, "intruder")
	assert.ErrorIs(t, err, common.ErrUnauthorized)

	// the row survives the refused attempt
	file, err := fx.files.GetByID(ctx, res.File.ID)
	require.NoError(t, err)
	assert.False(t, file.IsDeleted)
}

func TestDeleteUploadWrongWorkspace(t *testing.T) {
	fx := newFixture(t, fixtureOpts{})
	ctx := context.Background()

	res, err := fx.submit(t, "pdf bytes")
	require.NoError(t, err)

	err = fx.coordinator.Delete(ctx, uuid.New(), res.File.ID, "actor-1")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestProgress(t *testing.T) {
	fx := newFixture(t, fixtureOpts{})
	ctx := context.Background()

	res, err := fx.submit(t, "pdf bytes")
	require.NoError(t, err)

	prog, err := fx.coordinator.Progress(ctx, fx.ws, res.File.ID, "actor-1")
	require.NoError(t, err)
	assert.Equal(t, string(constants.FileProcessing), prog.File.Status)
	assert.Empty(t, prog.Bills)

	_, err = fx.files.CompleteWithBills(ctx, res.File.ID, "refined", []repository.BillParams{
		{Bank: "CMB", RawLine: "line-1"},
	})
	require.NoError(t, err)

	prog, err = fx.coordinator.Progress(ctx, fx.ws, res.File.ID, "actor-1")
	require.NoError(t, err)
	assert.Equal(t, string(constants.FileCompleted), prog.File.Status)
	require.Len(t, prog.Bills, 1)

	// another workspace cannot see the file at all
	_, err = fx.coordinator.Progress(ctx, uuid.New(), res.File.ID, "actor-1")
	assert.ErrorIs(t, err, common.ErrNotFound)
}
