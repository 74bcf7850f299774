package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/billfeed/billfeed/constants"
	"github.com/billfeed/billfeed/gen/ent"
	"github.com/billfeed/billfeed/internal/common"
	entbill "github.com/billfeed/billfeed/gen/ent/bill"
	entfile "github.com/billfeed/billfeed/gen/ent/fileupload"
)

// ErrNoTransition is returned when a status update found no row in the
// expected source state; terminal states never move again.
var ErrNoTransition = fmt.Errorf("file is not in a transitionable state")

type CreateFileParams struct {
	WorkspaceID uuid.UUID
	ActorID     string
	ContentHash string
	Filename    string
	SavedPath   string
	FileSize    int64
	RawContent  string
	UploadedAt  time.Time
}

type BillParams struct {
	Bank          string
	TradeDate     *time.Time
	RecordDate    *time.Time
	Description   string
	AmountCNY     *float64
	CardLast4     string
	AmountForeign *float64
	Currency      string
	RawLine       string
}

type FileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.FileUpload, error)
	// FindActiveByHash returns the live (not soft-deleted) upload with this
	// content hash in the workspace, or nil when none exists.
	FindActiveByHash(ctx context.Context, workspaceID uuid.UUID, hash string) (*ent.FileUpload, error)
	// CreateProcessing inserts a new upload in the processing state. Any
	// previously failed upload with the same hash is soft-deleted in the
	// same transaction so its retry does not trip the uniqueness rule.
	CreateProcessing(ctx context.Context, p CreateFileParams) (*ent.FileUpload, error)
	// CompleteWithBills atomically moves processing -> completed and stores
	// the extracted bills.
	CompleteWithBills(ctx context.Context, id uuid.UUID, refined string, bills []BillParams) (*ent.FileUpload, error)
	// MarkFailed moves processing -> failed, stores the error text as the
	// refined content and soft-deletes any other failed upload with the
	// same content hash so retries do not accumulate failure rows.
	MarkFailed(ctx context.Context, id uuid.UUID, errText string, remark *string) error
	// SoftDelete tombstones the upload and cascades to its bills.
	SoftDelete(ctx context.Context, id uuid.UUID) error
	ListBills(ctx context.Context, fileID uuid.UUID) ([]*ent.Bill, error)
}

type fileRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewFileRepository(entc *ent.Client, logger *slog.Logger) FileRepository {
	return &fileRepo{ent: entc, logger: logger}
}

func (r *fileRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.FileUpload, error) {
	return r.ent.FileUpload.Query().
		Where(entfile.ID(id), entfile.IsDeleted(false)).
		Only(ctx)
}

func (r *fileRepo) FindActiveByHash(ctx context.Context, workspaceID uuid.UUID, hash string) (*ent.FileUpload, error) {
	row, err := r.ent.FileUpload.Query().
		Where(
			entfile.WorkspaceID(workspaceID),
			entfile.ContentHash(hash),
			entfile.IsDeleted(false),
		).Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("failed to query upload by hash", "workspace_id", workspaceID, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *fileRepo) CreateProcessing(ctx context.Context, p CreateFileParams) (*ent.FileUpload, error) {
	var created *ent.FileUpload
	err := WithTx(ctx, r.ent, func(tx *ent.Tx) error {
		// A failed prior attempt must not block the retry.
		n, err := tx.FileUpload.Update().
			Where(
				entfile.WorkspaceID(p.WorkspaceID),
				entfile.ContentHash(p.ContentHash),
				entfile.IsDeleted(false),
				entfile.Status(string(constants.FileFailed)),
			).
			SetIsDeleted(true).
			SetDeletedAt(time.Now()).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("retiring failed sibling: %w", err)
		}
		if n > 0 {
			r.logger.Info("upload.retired_failed_sibling", "workspace_id", p.WorkspaceID, "count", n)
		}

		created, err = tx.FileUpload.Create().
			SetWorkspaceID(p.WorkspaceID).
			SetActorID(p.ActorID).
			SetContentHash(p.ContentHash).
			SetFilename(p.Filename).
			SetSavedPath(p.SavedPath).
			SetFileSize(p.FileSize).
			SetRawContent(p.RawContent).
			SetUploadedAt(p.UploadedAt).
			SetStatus(string(constants.FileProcessing)).
			Save(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *fileRepo) CompleteWithBills(ctx context.Context, id uuid.UUID, refined string, bills []BillParams) (*ent.FileUpload, error) {
	var updated *ent.FileUpload
	err := WithTx(ctx, r.ent, func(tx *ent.Tx) error {
		file, err := tx.FileUpload.Query().
			Where(entfile.ID(id), entfile.IsDeleted(false)).
			Only(ctx)
		if err != nil {
			return err
		}
		if !constants.FileStatus(file.Status).CanTransition(constants.FileCompleted) {
			return fmt.Errorf("%w: %s", ErrNoTransition, file.Status)
		}

		builders := make([]*ent.BillCreate, 0, len(bills))
		for _, b := range bills {
			bc := tx.Bill.Create().
				SetFileUploadID(id).
				SetWorkspaceID(file.WorkspaceID).
				SetBank(b.Bank).
				SetDescription(b.Description).
				SetCardLast4(b.CardLast4).
				SetCurrency(b.Currency).
				SetRawLine(b.RawLine).
				SetStatus(string(constants.BillPending)).
				SetNillableTradeDate(b.TradeDate).
				SetNillableRecordDate(b.RecordDate).
				SetNillableAmountCny(b.AmountCNY).
				SetNillableAmountForeign(b.AmountForeign)
			builders = append(builders, bc)
		}
		if len(builders) > 0 {
			if _, err := tx.Bill.CreateBulk(builders...).Save(ctx); err != nil {
				return fmt.Errorf("creating bills: %w", err)
			}
		}

		updated, err = tx.FileUpload.UpdateOneID(id).
			SetStatus(string(constants.FileCompleted)).
			SetRefinedContent(refined).
			SetBillsCount(len(bills)).
			Save(ctx)
		return err
	})
	if err != nil {
		r.logger.Error("failed to complete upload", "file_id", id, "error", err)
		return nil, err
	}
	return updated, nil
}

func (r *fileRepo) MarkFailed(ctx context.Context, id uuid.UUID, errText string, remark *string) error {
	err := WithTx(ctx, r.ent, func(tx *ent.Tx) error {
		file, err := tx.FileUpload.Query().
			Where(entfile.ID(id), entfile.IsDeleted(false)).
			Only(ctx)
		if err != nil {
			return err
		}
		if !constants.FileStatus(file.Status).CanTransition(constants.FileFailed) {
			return fmt.Errorf("%w: %s", ErrNoTransition, file.Status)
		}

		_, err = tx.FileUpload.Update().
			Where(
				entfile.WorkspaceID(file.WorkspaceID),
				entfile.ContentHash(file.ContentHash),
				entfile.IDNEQ(id),
				entfile.IsDeleted(false),
				entfile.Status(string(constants.FileFailed)),
			).
			SetIsDeleted(true).
			SetDeletedAt(time.Now()).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("retiring failed siblings: %w", err)
		}

		_, err = tx.FileUpload.UpdateOneID(id).
			SetStatus(string(constants.FileFailed)).
			SetRefinedContent(errText).
			SetNillableRemark(remark).
			Save(ctx)
		return err
	})
	if err != nil {
		r.logger.Error("failed to mark upload failed", "file_id", id, "error", err)
		return err
	}
	return nil
}

func (r *fileRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	now := time.Now()
	return WithTx(ctx, r.ent, func(tx *ent.Tx) error {
		n, err := tx.FileUpload.Update().
			Where(entfile.ID(id), entfile.IsDeleted(false)).
			SetIsDeleted(true).
			SetDeletedAt(now).
			Save(ctx)
		if err != nil {
			return err
		}
		if n == 0 {
			return common.ErrNotFound
		}
		_, err = tx.Bill.Update().
			Where(entbill.FileUploadID(id), entbill.IsDeleted(false)).
			SetIsDeleted(true).
			SetDeletedAt(now).
			Save(ctx)
		return err
	})
}

func (r *fileRepo) ListBills(ctx context.Context, fileID uuid.UUID) ([]*ent.Bill, error) {
	return r.ent.Bill.Query().
		Where(entbill.FileUploadID(fileID), entbill.IsDeleted(false)).
		Order(ent.Asc(entbill.FieldCreatedAt)).
		All(ctx)
}
