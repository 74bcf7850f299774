package repository

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billfeed/billfeed/constants"
	"github.com/billfeed/billfeed/gen/ent"
	"github.com/billfeed/billfeed/internal/common"
)

func seedFileParams(ws uuid.UUID, hash string) CreateFileParams {
	return CreateFileParams{
		WorkspaceID: ws,
		ActorID:     "actor-1",
		ContentHash: hash,
		Filename:    "statement.pdf",
		SavedPath:   ws.String() + "/20260301/blob_statement.pdf",
		FileSize:    1024,
		RawContent:  "raw statement text",
		UploadedAt:  time.Now(),
	}
}

func TestCreateProcessingAndGetByID(t *testing.T) {
	client := newTestClient(t)
	repo := NewFileRepository(client, slog.Default())
	ctx := context.Background()

	created, err := repo.CreateProcessing(ctx, seedFileParams(uuid.New(), "hash-a"))
	require.NoError(t, err)
	assert.Equal(t, string(constants.FileProcessing), created.Status)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "raw statement text", got.RawContent)
}

func TestFindActiveByHash(t *testing.T) {
	client := newTestClient(t)
	repo := NewFileRepository(client, slog.Default())
	ctx := context.Background()
	ws := uuid.New()

	got, err := repo.FindActiveByHash(ctx, ws, "hash-a")
	require.NoError(t, err)
	assert.Nil(t, got)

	created, err := repo.CreateProcessing(ctx, seedFileParams(ws, "hash-a"))
	require.NoError(t, err)

	got, err = repo.FindActiveByHash(ctx, ws, "hash-a")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)

	// same hash in another workspace is not a duplicate
	got, err = repo.FindActiveByHash(ctx, uuid.New(), "hash-a")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, repo.SoftDelete(ctx, created.ID))
	got, err = repo.FindActiveByHash(ctx, ws, "hash-a")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCreateProcessingRejectsLiveDuplicate(t *testing.T) {
	client := newTestClient(t)
	repo := NewFileRepository(client, slog.Default())
	ctx := context.Background()
	ws := uuid.New()

	_, err := repo.CreateProcessing(ctx, seedFileParams(ws, "hash-a"))
	require.NoError(t, err)

	_, err = repo.CreateProcessing(ctx, seedFileParams(ws, "hash-a"))
	require.Error(t, err)
	assert.True(t, ent.IsConstraintError(err))
}

func TestCreateProcessingRetiresFailedSibling(t *testing.T) {
	client := newTestClient(t)
	repo := NewFileRepository(client, slog.Default())
	ctx := context.Background()
	ws := uuid.New()

	failed, err := repo.CreateProcessing(ctx, seedFileParams(ws, "hash-a"))
	require.NoError(t, err)
	require.NoError(t, repo.MarkFailed(ctx, failed.ID, "curate failed", nil))

	retry, err := repo.CreateProcessing(ctx, seedFileParams(ws, "hash-a"))
	require.NoError(t, err)
	assert.NotEqual(t, failed.ID, retry.ID)

	// the failed attempt is tombstoned, the retry is the live row
	got, err := repo.FindActiveByHash(ctx, ws, "hash-a")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, retry.ID, got.ID)

	_, err = repo.GetByID(ctx, failed.ID)
	assert.True(t, ent.IsNotFound(err))
}

func TestCompleteWithBills(t *testing.T) {
	client := newTestClient(t)
	repo := NewFileRepository(client, slog.Default())
	ctx := context.Background()

	file, err := repo.CreateProcessing(ctx, seedFileParams(uuid.New(), "hash-a"))
	require.NoError(t, err)

	trade := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	amt := 128.40
	updated, err := repo.CompleteWithBills(ctx, file.ID, "refined lines", []BillParams{
		{Bank: "CMB", TradeDate: &trade, Description: "GROCERY STORE", AmountCNY: &amt, CardLast4: "1234", RawLine: "line-1"},
		{Bank: "BOC", Description: "HOTEL", RawLine: "line-2"},
	})
	require.NoError(t, err)
	assert.Equal(t, string(constants.FileCompleted), updated.Status)
	assert.Equal(t, 2, updated.BillsCount)
	require.NotNil(t, updated.RefinedContent)
	assert.Equal(t, "refined lines", *updated.RefinedContent)

	bills, err := repo.ListBills(ctx, file.ID)
	require.NoError(t, err)
	require.Len(t, bills, 2)
	assert.Equal(t, "CMB", bills[0].Bank)
	assert.Equal(t, string(constants.BillPending), bills[0].Status)
	require.NotNil(t, bills[0].AmountCny)
	assert.InDelta(t, 128.40, *bills[0].AmountCny, 1e-9)
	assert.Nil(t, bills[1].AmountCny)
}

func TestCompletedFileIsTerminal(t *testing.T) {
	client := newTestClient(t)
	repo := NewFileRepository(client, slog.Default())
	ctx := context.Background()

	file, err := repo.CreateProcessing(ctx, seedFileParams(uuid.New(), "hash-a"))
	require.NoError(t, err)

	_, err = repo.CompleteWithBills(ctx, file.ID, "", nil)
	require.NoError(t, err)

	_, err = repo.CompleteWithBills(ctx, file.ID, "", nil)
	assert.ErrorIs(t, err, ErrNoTransition)

	err = repo.MarkFailed(ctx, file.ID, "too late", nil)
	assert.ErrorIs(t, err, ErrNoTransition)
}

func TestMarkFailed(t *testing.T) {
	client := newTestClient(t)
	repo := NewFileRepository(client, slog.Default())
	ctx := context.Background()

	file, err := repo.CreateProcessing(ctx, seedFileParams(uuid.New(), "hash-a"))
	require.NoError(t, err)

	remark := "[LLM] curate failed: timeout"
	require.NoError(t, repo.MarkFailed(ctx, file.ID, remark, &remark))

	got, err := repo.GetByID(ctx, file.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.FileFailed), got.Status)
	require.NotNil(t, got.RefinedContent)
	assert.Equal(t, remark, *got.RefinedContent)
	require.NotNil(t, got.Remark)
	assert.Equal(t, remark, *got.Remark)
}

func TestSoftDeleteCascadesToBills(t *testing.T) {
	client := newTestClient(t)
	repo := NewFileRepository(client, slog.Default())
	ctx := context.Background()

	file, err := repo.CreateProcessing(ctx, seedFileParams(uuid.New(), "hash-a"))
	require.NoError(t, err)
	_, err = repo.CompleteWithBills(ctx, file.ID, "refined", []BillParams{{Bank: "CMB", RawLine: "line-1"}})
	require.NoError(t, err)

	require.NoError(t, repo.SoftDelete(ctx, file.ID))

	_, err = repo.GetByID(ctx, file.ID)
	assert.True(t, ent.IsNotFound(err))

	bills, err := repo.ListBills(ctx, file.ID)
	require.NoError(t, err)
	assert.Empty(t, bills)

	assert.ErrorIs(t, repo.SoftDelete(ctx, file.ID), common.ErrNotFound)
}
