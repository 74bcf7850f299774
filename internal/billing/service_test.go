package billing

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sync"
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
	"github.com/billfeed/billfeed/internal/common"
	"github.com/billfeed/billfeed/internal/llm"
	"github.com/billfeed/billfeed/internal/repository"
)

func newTestService(t *testing.T, cfg common.BillingConfig) (*Service, *ent.Client) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	db.SetMaxOpenConns(1)

	client := enttest.NewClient(t, enttest.WithOptions(ent.Driver(entsql.OpenDB(dialect.SQLite, db))))
	t.Cleanup(func() { _ = client.Close() })

	accounts := repository.NewAccountRepository(client, dialect.SQLite, slog.Default())
	usage := repository.NewUsageRepository(client, slog.Default())
	return NewService(accounts, usage, cfg, slog.Default()), client
}

func testConfig() common.BillingConfig {
	return common.BillingConfig{
		UnitPrices:       map[string]decimal.Decimal{"deepseek-chat": decimal.RequireFromString("0.01")},
		DefaultUnitPrice: decimal.RequireFromString("0.02"),
		MinBalance:       decimal.RequireFromString("0.20"),
		SeedActors:       []string{"seeded"},
		SeedBalance:      decimal.RequireFromString("10.00"),
	}
}

func successEvent(actorID string, tokens int) UsageEvent {
	return UsageEvent{
		ActorID: actorID,
		Kind:    constants.CallRefine,
		Response: llm.CompletionResponse{
			Model:     "deepseek-chat",
			RequestID: "req-1",
			Usage: llm.Usage{
				PromptTokens:     tokens - 100,
				CompletionTokens: 100,
				TotalTokens:      tokens,
			},
			Elapsed: 1200 * time.Millisecond,
		},
	}
}

func TestCost(t *testing.T) {
	cases := []struct {
		tokens int
		price  string
		want   string
	}{
		{2500, "0.01", "0.03"}, // 0.025 rounds up
		{1000, "0.01", "0.01"},
		{999, "0.01", "0.01"},
		{100, "0.01", "0"},
		{0, "0.01", "0"},
		{1500, "0.02", "0.03"},
	}
	for _, tc := range cases {
		got := Cost(tc.tokens, decimal.RequireFromString(tc.price))
		assert.True(t, got.Equal(decimal.RequireFromString(tc.want)),
			"Cost(%d, %s) = %s, want %s", tc.tokens, tc.price, got, tc.want)
	}
}

func TestCostIsDeterministic(t *testing.T) {
	price := decimal.RequireFromString("0.01")
	first := Cost(2500, price)
	for i := 0; i < 100; i++ {
		assert.True(t, first.Equal(Cost(2500, price)))
	}
}

func TestMonthRange(t *testing.T) {
	from, to, err := MonthRange("2026-03")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), to)

	_, _, err = MonthRange("2026-3")
	assert.ErrorIs(t, err, common.ErrInvalidInput)
	_, _, err = MonthRange("march")
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestUnitPriceFor(t *testing.T) {
	svc, _ := newTestService(t, testConfig())
	assert.True(t, svc.UnitPriceFor("deepseek-chat").Equal(decimal.RequireFromString("0.01")))
	assert.True(t, svc.UnitPriceFor("unknown-model").Equal(decimal.RequireFromString("0.02")))
}

func TestRecordUsageSuccessDeducts(t *testing.T) {
	svc, client := newTestService(t, testConfig())
	ctx := context.Background()

	receipt, err := svc.RecordUsage(ctx, successEvent("seeded", 2500))
	require.NoError(t, err)
	assert.True(t, receipt.Cost.Equal(decimal.RequireFromString("0.03")))
	assert.True(t, receipt.BalanceAfter.Equal(decimal.RequireFromString("9.97")))

	row, err := client.TokenUsage.Get(ctx, receipt.UsageID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.UsageSuccess), row.Status)
	assert.Equal(t, 2500, row.TotalTokens)
	assert.True(t, row.Cost.Equal(decimal.RequireFromString("0.03")))
	require.NotNil(t, row.ResponseTimeMs)
	assert.Equal(t, 1200, *row.ResponseTimeMs)

	records, err := client.BillingRecord.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "AI token usage charge", records[0].Description)
}

func TestRecordUsageFailedCallIsAudited(t *testing.T) {
	svc, client := newTestService(t, testConfig())
	ctx := context.Background()

	ev := successEvent("seeded", 2500)
	ev.CallErr = errors.New("upstream timeout")
	ev.Response = llm.CompletionResponse{Model: "deepseek-chat"}

	receipt, err := svc.RecordUsage(ctx, ev)
	require.NoError(t, err)
	assert.True(t, receipt.Cost.IsZero())

	row, err := client.TokenUsage.Get(ctx, receipt.UsageID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.UsageFailed), row.Status)
	assert.Equal(t, 0, row.TotalTokens)
	assert.True(t, row.Cost.IsZero())
	require.NotNil(t, row.ErrorMessage)
	assert.Equal(t, "upstream timeout", *row.ErrorMessage)

	// failed calls never move money
	n, err := client.BillingRecord.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	acct, err := svc.GetBalance(ctx, "seeded")
	require.NoError(t, err)
	assert.True(t, acct.Balance.Equal(decimal.RequireFromString("10.00")))
}

func TestLedgerConservation(t *testing.T) {
	svc, client := newTestService(t, testConfig())
	ctx := context.Background()

	const calls = 10
	var wg sync.WaitGroup
	errs := make(chan error, calls)
	for i := 0; i < calls; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.RecordUsage(ctx, successEvent("seeded", 1000))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	acct, err := svc.GetBalance(ctx, "seeded")
	require.NoError(t, err)
	assert.True(t, acct.Balance.Equal(decimal.RequireFromString("9.90")), "balance %s", acct.Balance)
	assert.True(t, acct.TotalConsumed.Equal(decimal.RequireFromString("0.10")))

	records, err := client.BillingRecord.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, records, calls)
	for _, r := range records {
		assert.True(t, r.BalanceAfter.Equal(r.BalanceBefore.Sub(r.Amount)),
			"record %s: %s != %s - %s", r.ID, r.BalanceAfter, r.BalanceBefore, r.Amount)
	}
}

func TestCheckBalance(t *testing.T) {
	svc, _ := newTestService(t, testConfig())
	ctx := context.Background()

	sufficient, balance, err := svc.CheckBalance(ctx, "seeded")
	require.NoError(t, err)
	assert.True(t, sufficient)
	assert.True(t, balance.Equal(decimal.RequireFromString("10.00")))

	// unseeded actors start at zero, below the threshold
	sufficient, balance, err = svc.CheckBalance(ctx, "broke")
	require.NoError(t, err)
	assert.False(t, sufficient)
	assert.True(t, balance.IsZero())
}

func TestMonthlyUsageAggregation(t *testing.T) {
	svc, _ := newTestService(t, testConfig())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.RecordUsage(ctx, successEvent("seeded", 1000))
		require.NoError(t, err)
	}
	failed := successEvent("seeded", 1000)
	failed.CallErr = errors.New("boom")
	_, err := svc.RecordUsage(ctx, failed)
	require.NoError(t, err)

	month := time.Now().UTC().Format("2006-01")
	summary, err := svc.MonthlyUsage(ctx, "seeded", month)
	require.NoError(t, err)

	// failed attempts stay out of the spend summary
	assert.Equal(t, 3, summary.TotalCalls)
	assert.Equal(t, 3000, summary.TotalTokens)
	assert.True(t, summary.TotalAmount.Equal(decimal.RequireFromString("0.03")))
	require.Len(t, summary.Daily, 1)
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), summary.Daily[0].Date)
	assert.Equal(t, 3, summary.Daily[0].APICalls)

	_, err = svc.MonthlyUsage(ctx, "seeded", "bad-month")
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestListBillingRecordsPaging(t *testing.T) {
	svc, _ := newTestService(t, testConfig())
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := svc.RecordUsage(ctx, successEvent("seeded", 1000))
		require.NoError(t, err)
	}

	page1, err := svc.ListBillingRecords(ctx, "seeded", "", 1, 3)
	require.NoError(t, err)
	assert.Len(t, page1, 3)

	page2, err := svc.ListBillingRecords(ctx, "seeded", "", 2, 3)
	require.NoError(t, err)
	assert.Len(t, page2, 2)

	_, err = svc.ListBillingRecords(ctx, "seeded", "not-a-month", 1, 3)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}
