package extract

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/billfeed/billfeed/constants"
)

type ecxmlExtractor struct {
	logger *slog.Logger
}

// Extract walks the token stream of an ecxml document and concatenates the
// character data in document order, one element's text per line. Attributes
// whose values look like text (non-numeric keys the issuing banks use for
// descriptions) are included after the element text.
func (e *ecxmlExtractor) Extract(ctx context.Context, path string) (Result, error) {
	start := time.Now()

	f, err := os.Open(path)
	if err != nil {
		e.logger.Error("extract.ecxml.failed", "path", path, "error", err)
		return Result{Format: constants.ECXML}, fmt.Errorf("opening document: %w", err)
	}
	defer f.Close()

	dec := xml.NewDecoder(f)
	var lines []string
	for {
		if err := ctx.Err(); err != nil {
			return Result{Format: constants.ECXML}, err
		}
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			e.logger.Error("extract.ecxml.failed", "path", path, "error", err)
			return Result{Format: constants.ECXML}, fmt.Errorf("decoding xml: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			for _, attr := range t.Attr {
				if v := strings.TrimSpace(attr.Value); v != "" {
					lines = append(lines, attr.Name.Local+": "+v)
				}
			}
		case xml.CharData:
			if v := strings.TrimSpace(string(t)); v != "" {
				lines = append(lines, v)
			}
		}
	}

	text := strings.Join(lines, "\n")
	if text == "" {
		text = NoText
	}

	e.logger.Info("extract.ecxml.ok", "path", path, "chars", len(text))
	return Result{
		Text:     text,
		Pages:    1,
		Format:   constants.ECXML,
		Method:   "xml-flatten",
		Duration: time.Since(start),
	}, nil
}
