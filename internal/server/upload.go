package server

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/billfeed/billfeed/gen/ent"
	v1 "github.com/billfeed/billfeed/gen/proto/billfeed/v1"
	"github.com/billfeed/billfeed/internal/common"
	"github.com/billfeed/billfeed/internal/upload"
)

type UploadService struct {
	v1.UnimplementedUploadServiceServer
	coordinator *upload.Coordinator
	logger      *slog.Logger
}

func NewUploadService(coordinator *upload.Coordinator, logger *slog.Logger) *UploadService {
	return &UploadService{coordinator: coordinator, logger: logger}
}

func parseIDs(workspaceID, actorID string) (uuid.UUID, string, error) {
	v := common.NewValidator().
		Field("workspace_id", workspaceID, common.Required, common.UUID).
		Field("actor_id", actorID, common.Required, func(f string, val interface{}) *common.ValidationError {
			return common.MaxLength(f, val, 64)
		})
	if err := common.ValidateAndReturnError(v); err != nil {
		return uuid.Nil, "", err
	}
	ws, _ := uuid.Parse(workspaceID)
	return ws, strings.TrimSpace(actorID), nil
}

func mapSubmitError(err error) error {
	switch {
	case errors.Is(err, common.ErrUnsupportedFormat),
		errors.Is(err, common.ErrInvalidInput):
		return common.InvalidArgumentError(err.Error())
	case errors.Is(err, common.ErrUnauthorized):
		return common.PermissionDeniedError(err.Error())
	case errors.Is(err, common.ErrInsufficientBalance):
		return common.FailedPreconditionError(err.Error())
	case errors.Is(err, common.ErrDuplicateFile):
		return common.AlreadyExistsError(err.Error())
	default:
		return common.InternalError("upload failed")
	}
}

// SubmitUpload implements v1.UploadServiceServer
func (s *UploadService) SubmitUpload(ctx context.Context, req *v1.SubmitUploadRequest) (*v1.SubmitUploadResponse, error) {
	workspaceID, actorID, err := parseIDs(req.GetWorkspaceId(), req.GetActorId())
	if err != nil {
		return nil, err
	}
	if v := common.NewValidator().
		Field("filename", req.GetFilename(), common.Required, common.SupportedExtension); v.HasErrors() {
		return nil, common.InvalidArgumentError(v.ErrorMessage())
	}
	if len(req.GetContent()) == 0 {
		return nil, common.InvalidArgumentError("content is required")
	}

	res, err := s.coordinator.Submit(ctx, workspaceID, actorID, bytes.NewReader(req.GetContent()), req.GetFilename())
	if err != nil {
		s.logger.Error("submit upload failed",
			"workspace_id", workspaceID, "filename", req.GetFilename(), "error", err)
		return nil, mapSubmitError(err)
	}

	resp := &v1.SubmitUploadResponse{
		Status:     res.Status,
		FileId:     res.File.ID.String(),
		Filename:   res.File.Filename,
		FileStatus: res.File.Status,
		FileSize:   res.File.FileSize,
		UploadedAt: res.File.UploadedAt.UTC().Format(time.RFC3339),
	}
	if res.Status == upload.StatusDuplicate {
		resp.Bills = toPBBills(res.Bills)
		resp.BillsCount = int32(len(res.Bills))
	} else {
		resp.RawPreview = res.RawPreview
	}
	return resp, nil
}

// GetProgress implements v1.UploadServiceServer
func (s *UploadService) GetProgress(ctx context.Context, req *v1.GetProgressRequest) (*v1.GetProgressResponse, error) {
	workspaceID, actorID, err := parseIDs(req.GetWorkspaceId(), req.GetActorId())
	if err != nil {
		return nil, err
	}
	fileID, err := uuid.Parse(req.GetFileId())
	if err != nil {
		return nil, common.InvalidArgumentError("file_id must be a UUID")
	}

	res, err := s.coordinator.Progress(ctx, workspaceID, fileID, actorID)
	if err != nil {
		if ent.IsNotFound(err) || errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("file not found")
		}
		if errors.Is(err, common.ErrUnauthorized) {
			return nil, common.PermissionDeniedError(err.Error())
		}
		s.logger.Error("get progress failed", "file_id", fileID, "error", err)
		return nil, common.InternalError("get progress failed")
	}

	var remark string
	if res.File.Remark != nil {
		remark = *res.File.Remark
	}
	return &v1.GetProgressResponse{
		FileId:     res.File.ID.String(),
		Filename:   res.File.Filename,
		FileStatus: res.File.Status,
		BillsCount: int32(res.File.BillsCount),
		Remark:     remark,
		Bills:      toPBBills(res.Bills),
	}, nil
}

// DeleteUpload implements v1.UploadServiceServer
func (s *UploadService) DeleteUpload(ctx context.Context, req *v1.DeleteUploadRequest) (*v1.DeleteUploadResponse, error) {
	workspaceID, actorID, err := parseIDs(req.GetWorkspaceId(), req.GetActorId())
	if err != nil {
		return nil, err
	}
	fileID, err := uuid.Parse(req.GetFileId())
	if err != nil {
		return nil, common.InvalidArgumentError("file_id must be a UUID")
	}

	if err := s.coordinator.Delete(ctx, workspaceID, fileID, actorID); err != nil {
		if ent.IsNotFound(err) || errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("file not found")
		}
		if errors.Is(err, common.ErrUnauthorized) {
			return nil, common.PermissionDeniedError(err.Error())
		}
		s.logger.Error("delete upload failed", "file_id", fileID, "error", err)
		return nil, common.InternalError("delete failed")
	}
	return &v1.DeleteUploadResponse{}, nil
}
