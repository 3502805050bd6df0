package output

import (
	"fmt"
	"io"

	"github.com/krislite/lightfinder/pkg/lightfinder/models"
	"github.com/xuri/excelize/v2"
)

// ResultsSheet is the worksheet name of spreadsheet exports.
const ResultsSheet = "Results"

// Columns appended after the catalog columns in spreadsheet exports.
const (
	ColImageFile = "image_file"
	ColPowerDiff = "power_diff"
	ColLumenDiff = "lumen_diff"
)

// ExportColumns returns the header of a spreadsheet export.
func ExportColumns(catalog *models.Catalog) []string {
	cols := make([]string, 0, len(catalog.Columns)+3)
	seen := make(map[string]bool, len(catalog.Columns))
	for _, c := range catalog.Columns {
		seen[c] = true
		cols = append(cols, c)
	}
	for _, c := range []string{ColImageFile, ColPowerDiff, ColLumenDiff} {
		if !seen[c] {
			cols = append(cols, c)
		}
	}
	return cols
}

// WriteXLSX writes the results as a spreadsheet: the catalog columns in
// sheet order followed by image_file, power_diff and lumen_diff.
func WriteXLSX(w io.Writer, catalog *models.Catalog, results []models.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ResultsSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	headers := ExportColumns(catalog)
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(ResultsSheet, cell, header); err != nil {
			return fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(ResultsSheet, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("failed to set header style: %w", err)
		}
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return fmt.Errorf("failed to convert column number: %w", err)
		}
		if err := f.SetColWidth(ResultsSheet, name, name, columnWidth(header)); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	for rowIdx, r := range results {
		row := rowIdx + 2
		for colIdx, header := range headers {
			value := exportValue(r, header)
			if value == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(colIdx+1, row)
			if err != nil {
				return fmt.Errorf("failed to convert coordinates: %w", err)
			}
			if err := f.SetCellValue(ResultsSheet, cell, value); err != nil {
				return fmt.Errorf("failed to set cell value at row %d, col %d: %w", row, colIdx+1, err)
			}
		}
	}

	if err := f.SetPanes(ResultsSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("failed to freeze panes: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func exportValue(r models.Result, header string) interface{} {
	switch header {
	case ColImageFile:
		if r.ImageFile == "" {
			return nil
		}
		return r.ImageFile
	case ColPowerDiff:
		if r.PowerDiff == nil {
			return nil
		}
		return *r.PowerDiff
	case ColLumenDiff:
		if r.LumenDiff == nil {
			return nil
		}
		return *r.LumenDiff
	}
	return r.Values[header]
}

func columnWidth(header string) float64 {
	switch header {
	case models.ColDescription, models.ColComment:
		return 40
	case models.ColModelName, models.ColModelNo, models.ColBrand, ColImageFile:
		return 20
	}
	return 12
}
