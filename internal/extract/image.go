package extract

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/billfeed/billfeed/constants"
)

type imageExtractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func (e *imageExtractor) Extract(ctx context.Context, path string) (Result, error) {
	start := time.Now()

	// tesseract <file> stdout -l <langs>
	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, path, "stdout", "-l", e.cfg.Languages)
	if err != nil {
		e.logger.Error("extract.image.failed", "path", path, "error", err, "stderr", truncate(string(errb), 2<<10))
		return Result{Format: constants.IMAGE}, fmt.Errorf("tesseract: %w", err)
	}

	text := strings.TrimRight(string(out), "\n")
	if strings.TrimSpace(text) == "" {
		text = NoText
	}

	e.logger.Info("extract.image.ok", "path", path, "chars", len(text))
	return Result{
		Text:     text,
		Pages:    1,
		Format:   constants.IMAGE,
		Method:   "image-ocr",
		Duration: time.Since(start),
	}, nil
}
