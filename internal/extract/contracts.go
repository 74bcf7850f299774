package extract

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/billfeed/billfeed/constants"
	"github.com/billfeed/billfeed/internal/common"
)

// Sentinel texts returned instead of an error when a document was readable
// but yielded nothing useful. Callers can tell "unreadable" (error) from
// "readable but empty" (one of these).
const (
	NoContent = "[document has no content]"
	NoText    = "[no recognizable text in document]"
)

// TextExtractor turns a stored document into raw text.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (Result, error)
}

type Result struct {
	Text     string
	Pages    int
	Format   constants.FileFormat
	Method   string // "pdf-text" | "image-ocr" | "sheet-flatten" | "xml-flatten"
	Duration time.Duration
}

// Config carries the external tool locations and OCR language set.
type Config struct {
	PdfToText string // binary name or absolute path; if empty -> "pdftotext"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"
	Languages string // tesseract -l value, default "eng+chi_sim"
}

func (c Config) withDefaults() Config {
	if c.PdfToText == "" {
		c.PdfToText = "pdftotext"
	}
	if c.Tesseract == "" {
		c.Tesseract = "tesseract"
	}
	if c.Languages == "" {
		c.Languages = "eng+chi_sim"
	}
	return c
}

// ForFormat returns the extractor handling the given format.
func ForFormat(format constants.FileFormat, cfg Config, runner Runner, logger *slog.Logger) (TextExtractor, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if runner == nil {
		runner = execRunner{}
	}
	cfg = cfg.withDefaults()
	switch format {
	case constants.PDF:
		return &pdfExtractor{cfg: cfg, runner: runner, logger: logger}, nil
	case constants.IMAGE:
		return &imageExtractor{cfg: cfg, runner: runner, logger: logger}, nil
	case constants.SHEET:
		return &sheetExtractor{logger: logger}, nil
	case constants.ECXML:
		return &ecxmlExtractor{logger: logger}, nil
	default:
		return nil, fmt.Errorf("%w: %q", common.ErrUnsupportedFormat, format)
	}
}
