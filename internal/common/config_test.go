package common

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, ":8080", cfg.Server.GRPCAddr)
	assert.Equal(t, int64(20<<20), cfg.Storage.MaxFileSize)
	assert.Equal(t, "pdftotext", cfg.Extract.PdfToText)
	assert.Equal(t, "eng+chi_sim", cfg.Extract.Languages)
	assert.Equal(t, "deepseek-chat", cfg.LLM.Model)
	assert.Equal(t, 6, cfg.Worker.Concurrency)
	assert.Equal(t, 5*time.Minute, cfg.Worker.JobTimeout)
	assert.False(t, cfg.Billing.EnforceBalance)
	assert.True(t, cfg.Billing.MinBalance.Equal(decimal.RequireFromString("0.20")))
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("GRPC_ADDR", ":9090")
	t.Setenv("WORKER_CONCURRENCY", "2")
	t.Setenv("MODEL_UNIT_PRICES", "deepseek-chat=0.02, gpt-4o-mini=0.05")
	t.Setenv("SEED_ACTORS", "alice, bob,")
	t.Setenv("BILLING_ENFORCE_BALANCE", "true")

	cfg := LoadConfig()

	assert.Equal(t, ":9090", cfg.Server.GRPCAddr)
	assert.Equal(t, 2, cfg.Worker.Concurrency)
	assert.True(t, cfg.Billing.EnforceBalance)
	assert.Equal(t, []string{"alice", "bob"}, cfg.Billing.SeedActors)

	require.Len(t, cfg.Billing.UnitPrices, 2)
	assert.True(t, cfg.Billing.UnitPrices["gpt-4o-mini"].Equal(decimal.RequireFromString("0.05")))
}

func TestConfigValidate(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/billfeed")
	t.Setenv("LLM_API_KEY", "sk-test")

	cfg := LoadConfig()
	require.NoError(t, cfg.Validate())

	cfg.LLM.APIKey = ""
	assert.Error(t, cfg.Validate())

	cfg = LoadConfig()
	cfg.Database.DSN = ""
	assert.Error(t, cfg.Validate())

	cfg = LoadConfig()
	cfg.Worker.Concurrency = 0
	assert.Error(t, cfg.Validate())
}
