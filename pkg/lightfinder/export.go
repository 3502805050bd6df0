package lightfinder

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/krislite/lightfinder/pkg/lightfinder/models"
	"github.com/krislite/lightfinder/pkg/lightfinder/output"
)

// Format is an export file format.
type Format string

const (
	// FormatXLSX exports the results as a spreadsheet.
	FormatXLSX Format = "xlsx"
	// FormatPDF exports the results as a printable document.
	FormatPDF Format = "pdf"
)

// ParseFormat parses an export format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatXLSX, "excel":
		return FormatXLSX, nil
	case FormatPDF:
		return FormatPDF, nil
	}
	return "", fmt.Errorf("%w: %q (must be xlsx or pdf)", ErrUnknownFormat, s)
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	if f == FormatPDF {
		return "application/pdf"
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// FileName returns the export file name for the format with an optional suffix,
// e.g. results.xlsx or results-<suffix>.xlsx.
func (f Format) FileName(suffix string) string {
	if suffix == "" {
		return "results." + string(f)
	}
	return "results-" + suffix + "." + string(f)
}

// Render writes the results in the format to a byte slice. imageDir is where
// the fixture images were extracted to.
func Render(format Format, catalog *models.Catalog, results []models.Result, imageDir string) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	switch format {
	case FormatXLSX:
		err = output.WriteXLSX(&buf, catalog, results)
	case FormatPDF:
		err = output.WritePDF(&buf, results, imageDir)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

// Export renders the results and writes them to dir under name (or the
// format's default file name when name is empty). It returns the written path.
func Export(format Format, catalog *models.Catalog, results []models.Result, imageDir, dir, name string) (string, error) {
	data, err := Render(format, catalog, results, imageDir)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	if name == "" {
		name = format.FileName("")
	}
	out := filepath.Join(dir, name)
	if err := os.WriteFile(out, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}
	return out, nil
}
