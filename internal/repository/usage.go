package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/billfeed/billfeed/constants"
	"github.com/billfeed/billfeed/gen/ent"
	entusage "github.com/billfeed/billfeed/gen/ent/tokenusage"
)

type UsageParams struct {
	ActorID        string
	WorkspaceID    *uuid.UUID
	FileUploadID   *uuid.UUID
	CallKind       constants.CallKind
	Model          string
	PromptTokens   int
	CompletionToks int
	TotalTokens    int
	UnitPrice      decimal.Decimal
	Cost           decimal.Decimal
	RequestID      string
	ResponseTimeMs *int
	Status         constants.UsageStatus
	ErrorMessage   *string
}

type UsageRepository interface {
	// Record persists one completion attempt, successful or failed.
	Record(ctx context.Context, p UsageParams) (*ent.TokenUsage, error)
	// ListForMonth returns the actor's usage rows inside [from, to).
	ListForMonth(ctx context.Context, actorID string, from, to time.Time) ([]*ent.TokenUsage, error)
	ListByFile(ctx context.Context, fileID uuid.UUID) ([]*ent.TokenUsage, error)
}

type usageRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewUsageRepository(entc *ent.Client, logger *slog.Logger) UsageRepository {
	return &usageRepo{ent: entc, logger: logger}
}

func (r *usageRepo) Record(ctx context.Context, p UsageParams) (*ent.TokenUsage, error) {
	row, err := r.ent.TokenUsage.Create().
		SetActorID(p.ActorID).
		SetNillableWorkspaceID(p.WorkspaceID).
		SetNillableFileUploadID(p.FileUploadID).
		SetCallKind(string(p.CallKind)).
		SetModel(p.Model).
		SetPromptTokens(p.PromptTokens).
		SetCompletionTokens(p.CompletionToks).
		SetTotalTokens(p.TotalTokens).
		SetUnitPrice(p.UnitPrice).
		SetCost(p.Cost).
		SetRequestID(p.RequestID).
		SetNillableResponseTimeMs(p.ResponseTimeMs).
		SetStatus(string(p.Status)).
		SetNillableErrorMessage(p.ErrorMessage).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to record token usage",
			"actor_id", p.ActorID, "call_kind", p.CallKind, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *usageRepo) ListForMonth(ctx context.Context, actorID string, from, to time.Time) ([]*ent.TokenUsage, error) {
	return r.ent.TokenUsage.Query().
		Where(
			entusage.ActorID(actorID),
			entusage.IsDeleted(false),
			entusage.CreatedAtGTE(from),
			entusage.CreatedAtLT(to),
		).
		Order(ent.Asc(entusage.FieldCreatedAt)).
		All(ctx)
}

func (r *usageRepo) ListByFile(ctx context.Context, fileID uuid.UUID) ([]*ent.TokenUsage, error) {
	return r.ent.TokenUsage.Query().
		Where(entusage.FileUploadID(fileID), entusage.IsDeleted(false)).
		Order(ent.Asc(entusage.FieldCreatedAt)).
		All(ctx)
}
