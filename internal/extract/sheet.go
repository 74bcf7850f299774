package extract

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/billfeed/billfeed/constants"
)

type sheetExtractor struct {
	logger *slog.Logger
}

// Extract flattens a workbook sheet by sheet, row by row: non-empty cells
// joined by spaces, rows by newlines, sheets by blank lines. Formula cells
// contribute their cached value.
func (e *sheetExtractor) Extract(ctx context.Context, path string) (Result, error) {
	start := time.Now()

	wb, err := excelize.OpenFile(path)
	if err != nil {
		e.logger.Error("extract.sheet.failed", "path", path, "error", err)
		return Result{Format: constants.SHEET}, fmt.Errorf("opening workbook: %w", err)
	}
	defer func() {
		if cerr := wb.Close(); cerr != nil {
			e.logger.Warn("extract.sheet.close_failed", "path", path, "error", cerr)
		}
	}()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return Result{
			Text:     NoContent,
			Format:   constants.SHEET,
			Method:   "sheet-flatten",
			Duration: time.Since(start),
		}, nil
	}

	var parts []string
	for _, name := range sheets {
		if err := ctx.Err(); err != nil {
			return Result{Format: constants.SHEET}, err
		}
		rows, err := wb.GetRows(name)
		if err != nil {
			e.logger.Error("extract.sheet.failed", "path", path, "sheet", name, "error", err)
			return Result{Format: constants.SHEET}, fmt.Errorf("reading sheet %s: %w", name, err)
		}
		var lines []string
		for _, row := range rows {
			var cells []string
			for _, cell := range row {
				if cell = strings.TrimSpace(cell); cell != "" {
					cells = append(cells, cell)
				}
			}
			if len(cells) > 0 {
				lines = append(lines, strings.Join(cells, " "))
			}
		}
		if len(lines) > 0 {
			parts = append(parts, strings.Join(lines, "\n"))
		}
	}

	text := strings.Join(parts, "\n\n")
	if strings.TrimSpace(text) == "" {
		text = NoText
	}

	e.logger.Info("extract.sheet.ok", "path", path, "sheets", len(sheets), "chars", len(text))
	return Result{
		Text:     text,
		Pages:    len(sheets),
		Format:   constants.SHEET,
		Method:   "sheet-flatten",
		Duration: time.Since(start),
	}, nil
}
