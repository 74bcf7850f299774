package billing

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportMonthlyUsage(t *testing.T) {
	svc, _ := newTestService(t, testConfig())
	ctx := context.Background()

	_, err := svc.RecordUsage(ctx, successEvent("seeded", 2500))
	require.NoError(t, err)

	month := time.Now().UTC().Format("2006-01")
	content, err := svc.ExportMonthlyUsage(ctx, "seeded", month)
	require.NoError(t, err)
	require.NotEmpty(t, content)

	wb, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer wb.Close()

	const sheet = "Usage Report"
	assert.Contains(t, wb.GetSheetList(), sheet)

	header, err := wb.GetRows(sheet)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(header), 3)
	assert.Equal(t, []string{"Date", "Amount", "API Calls", "Tokens"}, header[0])

	// one daily row plus the summary row
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), header[1][0])
	assert.Equal(t, "Total", header[len(header)-1][0])
	assert.Equal(t, "0.03", header[len(header)-1][1])
}

func TestExportMonthlyUsageEmptyMonth(t *testing.T) {
	svc, _ := newTestService(t, testConfig())

	content, err := svc.ExportMonthlyUsage(context.Background(), "seeded", "2020-01")
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("Usage Report")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Total", rows[1][0])
}
