package extract

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/billfeed/billfeed/constants"
)

// stubRunner records the invoked command and returns canned output.
type stubRunner struct {
	name   string
	args   []string
	stdout []byte
	stderr []byte
	err    error
}

func (s *stubRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.name = name
	s.args = args
	return s.stdout, s.stderr, s.err
}

func TestForFormatUnsupported(t *testing.T) {
	_, err := ForFormat(constants.FileFormat("DOCX"), Config{}, nil, nil)
	assert.Error(t, err)
}

func TestPDFExtract(t *testing.T) {
	runner := &stubRunner{stdout: []byte("page one text\fpage two text\n")}
	ex, err := ForFormat(constants.PDF, Config{PdfToText: "pdftotext"}, runner, nil)
	require.NoError(t, err)

	res, err := ex.Extract(context.Background(), "/tmp/statement.pdf")
	require.NoError(t, err)

	assert.Equal(t, "pdftotext", runner.name)
	assert.Equal(t, []string{"-layout", "-enc", "UTF-8", "-eol", "unix", "/tmp/statement.pdf", "-"}, runner.args)
	assert.Equal(t, 2, res.Pages)
	assert.Equal(t, "pdf-text", res.Method)
	assert.Contains(t, res.Text, "page two text")
}

func TestPDFExtractEmptyOutput(t *testing.T) {
	runner := &stubRunner{stdout: []byte("  \n\f \n")}
	ex, err := ForFormat(constants.PDF, Config{}, runner, nil)
	require.NoError(t, err)

	res, err := ex.Extract(context.Background(), "/tmp/blank.pdf")
	require.NoError(t, err)
	assert.Equal(t, NoText, res.Text)
}

func TestPDFExtractCommandFailure(t *testing.T) {
	runner := &stubRunner{err: errors.New("exit status 1"), stderr: []byte("Syntax Error")}
	ex, err := ForFormat(constants.PDF, Config{}, runner, nil)
	require.NoError(t, err)

	_, err = ex.Extract(context.Background(), "/tmp/broken.pdf")
	assert.Error(t, err)
}

func TestImageExtract(t *testing.T) {
	runner := &stubRunner{stdout: []byte("OCR LINE ONE\nOCR LINE TWO\n\n")}
	ex, err := ForFormat(constants.IMAGE, Config{Tesseract: "tesseract", Languages: "eng+chi_sim"}, runner, nil)
	require.NoError(t, err)

	res, err := ex.Extract(context.Background(), "/tmp/scan.png")
	require.NoError(t, err)

	assert.Equal(t, "tesseract", runner.name)
	assert.Equal(t, []string{"/tmp/scan.png", "stdout", "-l", "eng+chi_sim"}, runner.args)
	assert.Equal(t, "OCR LINE ONE\nOCR LINE TWO", res.Text)
	assert.Equal(t, "image-ocr", res.Method)
	assert.Equal(t, 1, res.Pages)
}

func TestSheetExtract(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bills.xlsx")
	wb := excelize.NewFile()
	require.NoError(t, wb.SetCellValue("Sheet1", "A1", "Date"))
	require.NoError(t, wb.SetCellValue("Sheet1", "B1", "Amount"))
	require.NoError(t, wb.SetCellValue("Sheet1", "A2", "2026-03-01"))
	require.NoError(t, wb.SetCellValue("Sheet1", "B2", 128.40))
	require.NoError(t, wb.SaveAs(path))
	require.NoError(t, wb.Close())

	ex, err := ForFormat(constants.SHEET, Config{}, nil, nil)
	require.NoError(t, err)

	res, err := ex.Extract(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "Date Amount\n2026-03-01 128.4", res.Text)
	assert.Equal(t, "sheet-flatten", res.Method)
	assert.Equal(t, 1, res.Pages)
}

func TestSheetExtractEmptyWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	wb := excelize.NewFile()
	require.NoError(t, wb.SaveAs(path))
	require.NoError(t, wb.Close())

	ex, err := ForFormat(constants.SHEET, Config{}, nil, nil)
	require.NoError(t, err)

	res, err := ex.Extract(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, NoText, res.Text)
}

func TestECXMLExtract(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statement.ecxml")
	doc := `<?xml version="1.0" encoding="UTF-8"?>
<Statement issuer="CMB">
  <Record>
    <TradeDate>2026-03-01</TradeDate>
    <Amount>128.40</Amount>
    <Description>GROCERY STORE</Description>
  </Record>
</Statement>`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	ex, err := ForFormat(constants.ECXML, Config{}, nil, nil)
	require.NoError(t, err)

	res, err := ex.Extract(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "issuer: CMB\n2026-03-01\n128.40\nGROCERY STORE", res.Text)
	assert.Equal(t, "xml-flatten", res.Method)
}

func TestECXMLExtractEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xml")
	require.NoError(t, os.WriteFile(path, []byte("<Statement></Statement>"), 0o644))

	ex, err := ForFormat(constants.ECXML, Config{}, nil, nil)
	require.NoError(t, err)

	res, err := ex.Extract(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, NoText, res.Text)
}

func TestECXMLExtractMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.xml")
	require.NoError(t, os.WriteFile(path, []byte("<Statement><Record>"), 0o644))

	ex, err := ForFormat(constants.ECXML, Config{}, nil, nil)
	require.NoError(t, err)

	_, err = ex.Extract(context.Background(), path)
	assert.Error(t, err)
}
