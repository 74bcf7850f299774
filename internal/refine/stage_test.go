package refine

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

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
	"github.com/billfeed/billfeed/internal/llm"
	"github.com/billfeed/billfeed/internal/repository"
)

// fakeCompleter replays one canned outcome per call, in order.
type fakeCompleter struct {
	outcomes []completion
	calls    []llm.CompletionRequest
}

type completion struct {
	text string
	err  error
}

func (f *fakeCompleter) Complete(ctx context.Context, req llm.CompletionRequest) (llm.CompletionResponse, error) {
	idx := len(f.calls)
	f.calls = append(f.calls, req)
	if idx >= len(f.outcomes) {
		return llm.CompletionResponse{}, errors.New("unexpected completion call")
	}
	out := f.outcomes[idx]
	if out.err != nil {
		return llm.CompletionResponse{Model: "deepseek-chat"}, out.err
	}
	return llm.CompletionResponse{
		Text:    out.text,
		Model:   "deepseek-chat",
		Usage:   llm.Usage{PromptTokens: 900, CompletionTokens: 100, TotalTokens: 1000},
		Elapsed: 800 * time.Millisecond,
	}, nil
}

type stageFixture struct {
	client *ent.Client
	files  repository.FileRepository
	usage  repository.UsageRepository
	stage  *Stage
	job    async.Job
}

func newStageFixture(t *testing.T, completer llm.Completer, enforce bool) *stageFixture {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	db.SetMaxOpenConns(1)

	client := enttest.NewClient(t, enttest.WithOptions(ent.Driver(entsql.OpenDB(dialect.SQLite, db))))
	t.Cleanup(func() { _ = client.Close() })

	logger := slog.Default()
	files := repository.NewFileRepository(client, logger)
	usage := repository.NewUsageRepository(client, logger)
	accounts := repository.NewAccountRepository(client, dialect.SQLite, logger)
	billingSvc := billing.NewService(accounts, usage, common.BillingConfig{
		DefaultUnitPrice: decimal.RequireFromString("0.01"),
		MinBalance:       decimal.RequireFromString("0.20"),
		EnforceBalance:   enforce,
		SeedActors:       []string{"actor-1"},
		SeedBalance:      decimal.RequireFromString("10.00"),
	}, logger)

	ws := uuid.New()
	file, err := files.CreateProcessing(context.Background(), repository.CreateFileParams{
		WorkspaceID: ws,
		ActorID:     "actor-1",
		ContentHash: "hash-a",
		Filename:    "statement.pdf",
		SavedPath:   "blob",
		FileSize:    10,
		RawContent:  "raw statement text",
		UploadedAt:  time.Now(),
	})
	require.NoError(t, err)

	return &stageFixture{
		client: client,
		files:  files,
		usage:  usage,
		stage:  NewStage(files, completer, billingSvc, logger),
		job:    async.Job{FileID: file.ID, WorkspaceID: ws, ActorID: "actor-1", SubmittedAt: time.Now()},
	}
}

const convertedBills = `{
  "bills": [
    {"bank": "CMB", "trade_date": "2026-03-01", "record_date": "2026-03-02",
     "description": "GROCERY STORE", "amount_cny": "128.40", "card_last4": "1234",
     "amount_foreign": "-", "currency": "-", "raw_line": "line-1"},
    {"bank": "BOC", "trade_date": "2026-03-05", "record_date": "-",
     "description": "HOTEL", "amount_cny": 2101.77, "card_last4": "-",
     "amount_foreign": 289.99, "currency": "USD", "raw_line": "line-2"}
  ]
}`

func TestProcessFileHappyPath(t *testing.T) {
	completer := &fakeCompleter{outcomes: []completion{
		{text: "[CMB,2026-03-01,...]\n[BOC,2026-03-05,...]"},
		{text: "```json\n" + convertedBills + "\n```"},
	}}
	fx := newStageFixture(t, completer, false)
	ctx := context.Background()

	require.NoError(t, fx.stage.ProcessFile(ctx, fx.job))
	require.Len(t, completer.calls, 2)
	assert.Equal(t, llm.CurateSystem, completer.calls[0].System)
	assert.Equal(t, llm.ConvertSystem, completer.calls[1].System)

	file, err := fx.files.GetByID(ctx, fx.job.FileID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.FileCompleted), file.Status)
	assert.Equal(t, 2, file.BillsCount)
	assert.Nil(t, file.Remark)

	bills, err := fx.files.ListBills(ctx, fx.job.FileID)
	require.NoError(t, err)
	require.Len(t, bills, 2)
	assert.Equal(t, "CMB", bills[0].Bank)
	assert.Equal(t, "", bills[0].Currency) // "-" never reaches storage as a value
	require.NotNil(t, bills[1].AmountForeign)
	assert.InDelta(t, 289.99, *bills[1].AmountForeign, 1e-9)

	// both passes metered
	rows, err := fx.usage.ListByFile(ctx, fx.job.FileID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, string(constants.CallRefine), rows[0].CallKind)
	assert.Equal(t, string(constants.CallConvert), rows[1].CallKind)
}

func TestProcessFileNoBills(t *testing.T) {
	completer := &fakeCompleter{outcomes: []completion{{text: llm.NoBills}}}
	fx := newStageFixture(t, completer, false)
	ctx := context.Background()

	require.NoError(t, fx.stage.ProcessFile(ctx, fx.job))
	assert.Len(t, completer.calls, 1)

	file, err := fx.files.GetByID(ctx, fx.job.FileID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.FileCompleted), file.Status)
	assert.Equal(t, 0, file.BillsCount)
}

func TestProcessFileCurateFailure(t *testing.T) {
	completer := &fakeCompleter{outcomes: []completion{{err: errors.New("upstream timeout")}}}
	fx := newStageFixture(t, completer, false)
	ctx := context.Background()

	require.NoError(t, fx.stage.ProcessFile(ctx, fx.job))

	file, err := fx.files.GetByID(ctx, fx.job.FileID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.FileFailed), file.Status)
	require.NotNil(t, file.Remark)
	assert.Contains(t, *file.Remark, "[LLM] curate failed")

	// the failed attempt still leaves an audit row
	rows, err := fx.usage.ListByFile(ctx, fx.job.FileID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, string(constants.UsageFailed), rows[0].Status)
	assert.Equal(t, 0, rows[0].TotalTokens)
}

func TestProcessFileMalformedConvertOutput(t *testing.T) {
	completer := &fakeCompleter{outcomes: []completion{
		{text: "[CMB,2026-03-01,...]"},
		{text: "sorry, I could not produce JSON"},
	}}
	fx := newStageFixture(t, completer, false)
	ctx := context.Background()

	require.NoError(t, fx.stage.ProcessFile(ctx, fx.job))

	file, err := fx.files.GetByID(ctx, fx.job.FileID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.FileFailed), file.Status)
	require.NotNil(t, file.Remark)
	assert.Contains(t, *file.Remark, "[LLM] structuring failed")
}

func TestProcessFileSalvagesNoisyCardDigits(t *testing.T) {
	converted := `{"bills": [
	  {"bank": "CMB", "trade_date": "2026-03-01", "record_date": "-",
	   "description": "GROCERY STORE", "amount_cny": "128.40", "card_last4": "*1234",
	   "amount_foreign": "-", "currency": "-", "raw_line": "line-1"}
	]}`
	completer := &fakeCompleter{outcomes: []completion{
		{text: "[CMB,2026-03-01,...]"},
		{text: converted},
	}}
	fx := newStageFixture(t, completer, false)
	ctx := context.Background()

	require.NoError(t, fx.stage.ProcessFile(ctx, fx.job))

	file, err := fx.files.GetByID(ctx, fx.job.FileID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.FileCompleted), file.Status)

	bills, err := fx.files.ListBills(ctx, fx.job.FileID)
	require.NoError(t, err)
	require.Len(t, bills, 1)
	assert.Equal(t, "1234", bills[0].CardLast4)
}

func TestProcessFilePersistFailureIsTerminal(t *testing.T) {
	// a bank name past the column limit fails bill validation at save time
	converted := fmt.Sprintf(`{"bills": [
	  {"bank": %q, "trade_date": "2026-03-01", "record_date": "-",
	   "description": "X", "amount_cny": "1.00", "card_last4": "-",
	   "amount_foreign": "-", "currency": "-", "raw_line": "line-1"}
	]}`, strings.Repeat("B", 51))
	completer := &fakeCompleter{outcomes: []completion{
		{text: "[B...,2026-03-01,...]"},
		{text: converted},
	}}
	fx := newStageFixture(t, completer, false)
	ctx := context.Background()

	require.NoError(t, fx.stage.ProcessFile(ctx, fx.job))

	// the row must not stay processing: that would block re-uploads forever
	file, err := fx.files.GetByID(ctx, fx.job.FileID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.FileFailed), file.Status)
	assert.Nil(t, file.Remark) // not a provider error, no user-facing remark

	bills, err := fx.files.ListBills(ctx, fx.job.FileID)
	require.NoError(t, err)
	assert.Empty(t, bills)
}

func TestProcessFileBalanceEnforced(t *testing.T) {
	completer := &fakeCompleter{}
	fx := newStageFixture(t, completer, true)
	fx.job.ActorID = "broke-actor"
	ctx := context.Background()

	require.NoError(t, fx.stage.ProcessFile(ctx, fx.job))
	assert.Empty(t, completer.calls)

	file, err := fx.files.GetByID(ctx, fx.job.FileID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.FileFailed), file.Status)
	require.NotNil(t, file.Remark)
	assert.Contains(t, *file.Remark, "insufficient balance")
}
