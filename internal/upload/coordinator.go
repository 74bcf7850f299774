package upload

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/billfeed/billfeed/constants"
	"github.com/billfeed/billfeed/gen/ent"
	"github.com/billfeed/billfeed/internal/async"
	"github.com/billfeed/billfeed/internal/billing"
	"github.com/billfeed/billfeed/internal/common"
	"github.com/billfeed/billfeed/internal/extract"
	"github.com/billfeed/billfeed/internal/repository"
	"github.com/billfeed/billfeed/internal/storage"
	"github.com/billfeed/billfeed/internal/workspace"
)

// Submission outcomes.
const (
	StatusDuplicate = "duplicate"
	StatusAccepted  = "accepted"
)

const previewLimit = 2000

// SubmitResult is the synchronous answer to an upload.
type SubmitResult struct {
	Status     string
	File       *ent.FileUpload
	Bills      []*ent.Bill // populated for duplicates of completed uploads
	RawPreview string      // populated for accepted uploads
}

// ProgressResult reports the state of an upload's async refinement.
type ProgressResult struct {
	File  *ent.FileUpload
	Bills []*ent.Bill // populated once completed
}

// Coordinator owns the synchronous half of ingestion: permission and format
// gates, dedup by content hash, blob persistence, text extraction, and the
// handoff to the refinement queue.
type Coordinator struct {
	guard       workspace.Guard
	blobs       *storage.BlobStore
	files       repository.FileRepository
	billing     *billing.Service
	queue       async.Queue
	extractCfg  extract.Config
	runner      extract.Runner // nil means real exec
	maxFileSize int64
	logger      *slog.Logger
}

func NewCoordinator(
	guard workspace.Guard,
	blobs *storage.BlobStore,
	files repository.FileRepository,
	billingSvc *billing.Service,
	queue async.Queue,
	extractCfg extract.Config,
	runner extract.Runner,
	maxFileSize int64,
	logger *slog.Logger,
) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	if maxFileSize <= 0 {
		maxFileSize = 20 << 20
	}
	return &Coordinator{
		guard:       guard,
		blobs:       blobs,
		files:       files,
		billing:     billingSvc,
		queue:       queue,
		extractCfg:  extractCfg,
		runner:      runner,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// Submit ingests one document. Byte-identical re-uploads of live uploads
// short-circuit to duplicate; everything else is extracted synchronously,
// persisted as processing and queued for refinement.
func (c *Coordinator) Submit(ctx context.Context, workspaceID uuid.UUID, actorID string, r io.Reader, filename string) (*SubmitResult, error) {
	ext := constants.NormalizeExt(filepath.Ext(filename))
	format := constants.MapExtToFormat(ext)
	if format == "" {
		return nil, fmt.Errorf("%w: %q", common.ErrUnsupportedFormat, ext)
	}

	ok, err := c.guard.HasPermission(ctx, workspaceID, actorID, workspace.Editor)
	if err != nil {
		return nil, fmt.Errorf("checking permission: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: actor %s needs editor in workspace %s", common.ErrUnauthorized, actorID, workspaceID)
	}

	if c.billing.Enforced() {
		sufficient, balance, err := c.billing.CheckBalance(ctx, actorID)
		if err != nil {
			return nil, fmt.Errorf("checking balance: %w", err)
		}
		if !sufficient {
			return nil, fmt.Errorf("%w: %s", common.ErrInsufficientBalance, balance.String())
		}
	}

	data, err := io.ReadAll(io.LimitReader(r, c.maxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}
	if int64(len(data)) > c.maxFileSize {
		return nil, fmt.Errorf("%w: file exceeds %d bytes", common.ErrInvalidInput, c.maxFileSize)
	}
	sum := sha256.Sum256(data)
	hash := hex.EncodeToString(sum[:])

	// A live prior upload that did not fail is authoritative; failed
	// attempts are never sticky.
	if existing, err := c.findDuplicate(ctx, workspaceID, hash); err != nil {
		return nil, err
	} else if existing != nil {
		return existing, nil
	}

	rel, size, err := c.blobs.Save(workspaceID, filename, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("persisting blob: %w", err)
	}

	raw, err := c.extractText(ctx, format, rel)
	if err != nil {
		if rmErr := c.blobs.Remove(rel); rmErr != nil {
			c.logger.Warn("upload.blob_cleanup_failed", "path", rel, "error", rmErr)
		}
		return nil, err
	}

	file, err := c.files.CreateProcessing(ctx, repository.CreateFileParams{
		WorkspaceID: workspaceID,
		ActorID:     actorID,
		ContentHash: hash,
		Filename:    filename,
		SavedPath:   rel,
		FileSize:    size,
		RawContent:  raw,
		UploadedAt:  time.Now(),
	})
	if ent.IsConstraintError(err) {
		// A racing upload inserted the same content first. The constraint,
		// not the earlier lookup, is the authoritative duplicate signal.
		if rmErr := c.blobs.Remove(rel); rmErr != nil {
			c.logger.Warn("upload.blob_cleanup_failed", "path", rel, "error", rmErr)
		}
		dup, derr := c.findDuplicate(ctx, workspaceID, hash)
		if derr != nil {
			return nil, derr
		}
		if dup != nil {
			return dup, nil
		}
		return nil, fmt.Errorf("%w: concurrent upload of identical content", common.ErrDuplicateFile)
	}
	if err != nil {
		return nil, fmt.Errorf("creating file record: %w", err)
	}

	if err := c.queue.Enqueue(ctx, async.Job{
		FileID:      file.ID,
		WorkspaceID: workspaceID,
		ActorID:     actorID,
		SubmittedAt: time.Now(),
	}); err != nil {
		// No queued job means no worker will ever touch the row. Fail it
		// so the content stays free to re-upload.
		c.logger.Error("upload.enqueue_failed", "file_id", file.ID, "error", err)
		remark := "refinement queue unavailable"
		if mfErr := c.files.MarkFailed(ctx, file.ID, err.Error(), &remark); mfErr != nil {
			c.logger.Error("upload.mark_failed_error", "file_id", file.ID, "error", mfErr)
		} else if failed, gErr := c.files.GetByID(ctx, file.ID); gErr == nil {
			file = failed
		}
	}

	c.logger.Info("upload.accepted",
		"file_id", file.ID,
		"workspace_id", workspaceID,
		"filename", filename,
		"size", size,
		"request_id", common.RequestIDFromContext(ctx),
	)
	return &SubmitResult{
		Status:     StatusAccepted,
		File:       file,
		RawPreview: preview(raw),
	}, nil
}

func (c *Coordinator) findDuplicate(ctx context.Context, workspaceID uuid.UUID, hash string) (*SubmitResult, error) {
	existing, err := c.files.FindActiveByHash(ctx, workspaceID, hash)
	if err != nil {
		return nil, fmt.Errorf("checking duplicates: %w", err)
	}
	if existing == nil || existing.Status == string(constants.FileFailed) {
		return nil, nil
	}
	bills, err := c.files.ListBills(ctx, existing.ID)
	if err != nil {
		return nil, fmt.Errorf("loading duplicate bills: %w", err)
	}
	c.logger.Info("upload.duplicate", "file_id", existing.ID, "workspace_id", workspaceID)
	return &SubmitResult{Status: StatusDuplicate, File: existing, Bills: bills}, nil
}

// extractText runs the synchronous extraction. Sentinel results count as
// unusable input here because nothing downstream could refine them.
func (c *Coordinator) extractText(ctx context.Context, format constants.FileFormat, rel string) (string, error) {
	extractor, err := extract.ForFormat(format, c.extractCfg, c.runner, c.logger)
	if err != nil {
		return "", err
	}
	res, err := extractor.Extract(ctx, c.blobs.Abs(rel))
	if err != nil {
		return "", fmt.Errorf("%w: extraction failed: %v", common.ErrInvalidInput, err)
	}
	if res.Text == "" || strings.HasPrefix(res.Text, "[") {
		return "", fmt.Errorf("%w: document contained no extractable text", common.ErrInvalidInput)
	}
	return res.Text, nil
}

// Progress reports refinement state; bills appear once the file completed.
func (c *Coordinator) Progress(ctx context.Context, workspaceID uuid.UUID, fileID uuid.UUID, actorID string) (*ProgressResult, error) {
	ok, err := c.guard.HasPermission(ctx, workspaceID, actorID, workspace.Viewer)
	if err != nil {
		return nil, fmt.Errorf("checking permission: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: actor %s in workspace %s", common.ErrUnauthorized, actorID, workspaceID)
	}

	file, err := c.files.GetByID(ctx, fileID)
	if err != nil {
		return nil, err
	}
	if file.WorkspaceID != workspaceID {
		return nil, common.ErrNotFound
	}

	out := &ProgressResult{File: file}
	if file.Status == string(constants.FileCompleted) {
		out.Bills, err = c.files.ListBills(ctx, fileID)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Delete tombstones an upload and its bills. Removing a document changes
// workspace content, so it takes the same editor role Submit does.
func (c *Coordinator) Delete(ctx context.Context, workspaceID uuid.UUID, fileID uuid.UUID, actorID string) error {
	ok, err := c.guard.HasPermission(ctx, workspaceID, actorID, workspace.Editor)
	if err != nil {
		return fmt.Errorf("checking permission: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: actor %s needs editor in workspace %s", common.ErrUnauthorized, actorID, workspaceID)
	}

	file, err := c.files.GetByID(ctx, fileID)
	if err != nil {
		return err
	}
	if file.WorkspaceID != workspaceID {
		return common.ErrNotFound
	}

	if err := c.files.SoftDelete(ctx, fileID); err != nil {
		return err
	}
	c.logger.Info("upload.deleted",
		"file_id", fileID,
		"workspace_id", workspaceID,
		"request_id", common.RequestIDFromContext(ctx),
	)
	return nil
}

func preview(s string) string {
	if len(s) <= previewLimit {
		return s
	}
	return s[:previewLimit]
}
