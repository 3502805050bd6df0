package lightfinder

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/krislite/lightfinder/pkg/lightfinder/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("XLSX")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)

	f, err = ParseFormat("excel")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)

	f, err = ParseFormat("pdf")
	require.NoError(t, err)
	assert.Equal(t, FormatPDF, f)

	_, err = ParseFormat("csv")
	assert.True(t, errors.Is(err, ErrUnknownFormat))

	assert.Equal(t, "results.pdf", FormatPDF.FileName(""))
	assert.Equal(t, "results-42.xlsx", FormatXLSX.FileName("42"))
}

func TestExport(t *testing.T) {
	imageDir := t.TempDir()
	cat, err := Load(writeTestWorkbook(t), Options{ImageDir: imageDir})
	require.NoError(t, err)

	results, err := Search(cat, models.Criteria{Power: 10, Lumen: 1000, MinCRI: 80, Mounting: "Recessed"})
	require.NoError(t, err)
	require.Len(t, results, 2)

	exportDir := filepath.Join(t.TempDir(), "exports")

	xlsxPath, err := Export(FormatXLSX, cat, results, imageDir, exportDir, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(exportDir, "results.xlsx"), xlsxPath)

	f, err := excelize.OpenFile(xlsxPath)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Results")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "model_name", rows[0][0])
	assert.Equal(t, "lumen_diff", rows[0][len(rows[0])-1])
	assert.Equal(t, "Dome", rows[1][0])
	assert.Equal(t, "Aero", rows[2][0])
	assert.Equal(t, "img_W2.png", rows[2][21])

	pdfPath, err := Export(FormatPDF, cat, results, imageDir, exportDir, "")
	require.NoError(t, err)
	data, err := os.ReadFile(pdfPath)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(data[:5]))

	_, err = Export(Format("csv"), cat, results, imageDir, exportDir, "")
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}
