package billing

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExportMonthlyUsage renders the monthly usage summary as an XLSX workbook.
func (s *Service) ExportMonthlyUsage(ctx context.Context, actorID, month string) ([]byte, error) {
	usage, err := s.MonthlyUsage(ctx, actorID, month)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil {
			s.logger.Warn("billing.export.close_failed", "error", cerr)
		}
	}()

	const sheet = "Usage Report"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("naming sheet: %w", err)
	}

	headers := []any{"Date", "Amount", "API Calls", "Tokens"}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return nil, fmt.Errorf("writing header: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("building header style: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", "D1", headerStyle); err != nil {
		return nil, fmt.Errorf("styling header: %w", err)
	}

	rowIdx := 2
	for _, stat := range usage.Daily {
		amount, _ := stat.Amount.Float64()
		row := []any{stat.Date, amount, stat.APICalls, stat.Tokens}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", rowIdx), &row); err != nil {
			return nil, fmt.Errorf("writing row %d: %w", rowIdx, err)
		}
		rowIdx++
	}

	totalAmount, _ := usage.TotalAmount.Float64()
	summary := []any{"Total", totalAmount, usage.TotalCalls, usage.TotalTokens}
	if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", rowIdx), &summary); err != nil {
		return nil, fmt.Errorf("writing summary: %w", err)
	}

	summaryStyle, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("building summary style: %w", err)
	}
	if err := f.SetCellStyle(sheet, fmt.Sprintf("A%d", rowIdx), fmt.Sprintf("D%d", rowIdx), summaryStyle); err != nil {
		return nil, fmt.Errorf("styling summary: %w", err)
	}

	if err := f.SetColWidth(sheet, "A", "A", 15); err != nil {
		return nil, fmt.Errorf("sizing columns: %w", err)
	}
	if err := f.SetColWidth(sheet, "B", "D", 18); err != nil {
		return nil, fmt.Errorf("sizing columns: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializing workbook: %w", err)
	}

	s.logger.Info("billing.export.ok", "actor_id", actorID, "month", month, "bytes", buf.Len())
	return buf.Bytes(), nil
}
