package lightfinder

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var testHeader = []interface{}{
	"model_name", "model_no", "brand", "type", "mounting", "description",
	"power", "lumen", "cri", "ip_v", "ip",
	"2700K", "3000K", "3500K", "4000K", "5000K", "6500K",
	"RGB", "RGBW", "beam", "comment",
}

var testRows = [][]interface{}{
	{"Aero", "AR-12", "Krislite", "Downlight", "Recessed", "Slim downlight", 12, 1100, 90, "220-240V", 44, "No", "Yes", "No", "Yes", "No", "No", "No", "No", "36°", ""},
	{"Beam", "BM-20", "Lumo", "Spot", "Track", "Track spot", 20, 1900, 82, "220-240V", 20, "Yes", "Yes", "No", "No", "No", "No", "Yes", "No", "24°", "RGB module"},
	{"Cove", "CV-08", "Krislite", "Linear", "Surface", "", 8, 900, 95, "24V", 65, "No", "No", "No", "Yes", "No", "No", "No", "Yes", "120°", ""},
	{"Dome", "DM-10", "Lumo", "Downlight", "Recessed", "", 10, 1000, 80, "220-240V", 44, "No", "Yes", "No", "No", "No", "No", "No", "No", "60°", "no cri test"},
}

// testPNG returns a small PNG.
func testPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 12, 6))
	for x := 0; x < 12; x++ {
		img.Set(x, 3, color.RGBA{R: 255, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// newTestWorkbook builds a catalog workbook with a picture in W2 and W4.
func newTestWorkbook(t *testing.T) *excelize.File {
	t.Helper()
	f := excelize.NewFile()

	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &testHeader))
	for i, row := range testRows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &r))
	}

	img := testPNG(t)
	for _, cell := range []string{"W2", "W4"} {
		require.NoError(t, f.AddPictureFromBytes("Sheet1", cell, &excelize.Picture{
			Extension: ".png",
			File:      img,
			Format:    &excelize.GraphicOptions{},
		}))
	}
	return f
}

// writeTestWorkbook saves the test workbook and returns its path.
func writeTestWorkbook(t *testing.T) string {
	t.Helper()
	f := newTestWorkbook(t)
	defer f.Close()

	path := filepath.Join(t.TempDir(), "catalogues.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func testWorkbookBytes(t *testing.T) []byte {
	t.Helper()
	f := newTestWorkbook(t)
	defer f.Close()

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}
