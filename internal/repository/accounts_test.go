package repository

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billfeed/billfeed/constants"
	"github.com/billfeed/billfeed/gen/ent"
	"github.com/billfeed/billfeed/internal/common"
)

func seedUsage(t *testing.T, client *ent.Client, actorID string) uuid.UUID {
	t.Helper()
	repo := NewUsageRepository(client, slog.Default())
	row, err := repo.Record(context.Background(), UsageParams{
		ActorID:     actorID,
		CallKind:    constants.CallRefine,
		Model:       "deepseek-chat",
		TotalTokens: 1000,
		UnitPrice:   decimal.RequireFromString("0.01"),
		Cost:        decimal.RequireFromString("0.01"),
		Status:      constants.UsageSuccess,
	})
	require.NoError(t, err)
	return row.ID
}

func TestGetOrCreateSeedsBalance(t *testing.T) {
	client := newTestClient(t)
	repo := NewAccountRepository(client, dialect.SQLite, slog.Default())
	ctx := context.Background()

	acct, err := repo.GetOrCreate(ctx, "actor-1", decimal.RequireFromString("10.00"))
	require.NoError(t, err)
	assert.True(t, acct.Balance.Equal(decimal.RequireFromString("10.00")))
	assert.True(t, acct.TotalRecharged.Equal(decimal.RequireFromString("10.00")))
	assert.Equal(t, string(constants.AccountActive), acct.Status)

	// second contact returns the same row, no re-seeding
	again, err := repo.GetOrCreate(ctx, "actor-1", decimal.RequireFromString("99.00"))
	require.NoError(t, err)
	assert.Equal(t, acct.ID, again.ID)
	assert.True(t, again.Balance.Equal(decimal.RequireFromString("10.00")))
}

func TestDeductMovesMoneyAndWritesRecord(t *testing.T) {
	client := newTestClient(t)
	repo := NewAccountRepository(client, dialect.SQLite, slog.Default())
	ctx := context.Background()
	usageID := seedUsage(t, client, "actor-1")

	record, err := repo.Deduct(ctx, "actor-1", decimal.RequireFromString("0.03"), usageID,
		"AI token usage charge", decimal.RequireFromString("10.00"))
	require.NoError(t, err)

	assert.True(t, record.Amount.Equal(decimal.RequireFromString("0.03")))
	assert.True(t, record.BalanceBefore.Equal(decimal.RequireFromString("10.00")))
	assert.True(t, record.BalanceAfter.Equal(decimal.RequireFromString("9.97")))
	assert.Equal(t, "token_usage", record.BillingType)
	require.NotNil(t, record.TokenUsageID)
	assert.Equal(t, usageID, *record.TokenUsageID)

	acct, err := repo.GetOrCreate(ctx, "actor-1", decimal.Decimal{})
	require.NoError(t, err)
	assert.True(t, acct.Balance.Equal(decimal.RequireFromString("9.97")))
	assert.True(t, acct.TotalConsumed.Equal(decimal.RequireFromString("0.03")))
}

func TestDeductMayGoNegative(t *testing.T) {
	client := newTestClient(t)
	repo := NewAccountRepository(client, dialect.SQLite, slog.Default())
	ctx := context.Background()
	usageID := seedUsage(t, client, "actor-1")

	record, err := repo.Deduct(ctx, "actor-1", decimal.RequireFromString("0.05"), usageID,
		"AI token usage charge", decimal.Decimal{})
	require.NoError(t, err)
	assert.True(t, record.BalanceAfter.Equal(decimal.RequireFromString("-0.05")))
}

func TestDeductFrozenAccount(t *testing.T) {
	client := newTestClient(t)
	repo := NewAccountRepository(client, dialect.SQLite, slog.Default())
	ctx := context.Background()
	usageID := seedUsage(t, client, "actor-1")

	acct, err := repo.GetOrCreate(ctx, "actor-1", decimal.RequireFromString("10.00"))
	require.NoError(t, err)
	_, err = client.UserAccount.UpdateOneID(acct.ID).
		SetStatus(string(constants.AccountFrozen)).
		Save(ctx)
	require.NoError(t, err)

	_, err = repo.Deduct(ctx, "actor-1", decimal.RequireFromString("0.01"), usageID,
		"AI token usage charge", decimal.Decimal{})
	assert.ErrorIs(t, err, common.ErrAccountFrozen)
}

func TestListBillingRecordsWindow(t *testing.T) {
	client := newTestClient(t)
	repo := NewAccountRepository(client, dialect.SQLite, slog.Default())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		usageID := seedUsage(t, client, "actor-1")
		_, err := repo.Deduct(ctx, "actor-1", decimal.RequireFromString("0.01"), usageID,
			"AI token usage charge", decimal.Decimal{})
		require.NoError(t, err)
	}

	rows, err := repo.ListBillingRecords(ctx, "actor-1", time.Time{}, time.Time{}, 2, 0)
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	rows, err = repo.ListBillingRecords(ctx, "actor-1", time.Time{}, time.Time{}, 0, 0)
	require.NoError(t, err)
	assert.Len(t, rows, 3)

	// a window in the past excludes everything
	past := time.Now().AddDate(-1, 0, 0)
	rows, err = repo.ListBillingRecords(ctx, "actor-1", past, past.AddDate(0, 1, 0), 10, 0)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
