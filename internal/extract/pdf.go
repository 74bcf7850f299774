package extract

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/billfeed/billfeed/constants"
)

type pdfExtractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func (e *pdfExtractor) Extract(ctx context.Context, path string) (Result, error) {
	start := time.Now()

	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := e.runner.Run(ctx, e.cfg.PdfToText, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		e.logger.Error("extract.pdf.failed", "path", path, "error", err, "stderr", truncate(string(errb), 2<<10))
		return Result{Format: constants.PDF}, fmt.Errorf("pdftotext: %w", err)
	}

	text := string(out)
	// A form-feed \f is used as page separator by default
	pages := 1 + strings.Count(text, "\f")
	if strings.TrimSpace(text) == "" {
		text = NoText
	}

	e.logger.Info("extract.pdf.ok", "path", path, "pages", pages, "chars", len(text))
	return Result{
		Text:     text,
		Pages:    pages,
		Format:   constants.PDF,
		Method:   "pdf-text",
		Duration: time.Since(start),
	}, nil
}
