package parser

import (
	"github.com/krislite/lightfinder/pkg/lightfinder/models"
	"github.com/xuri/excelize/v2"
)

// TableDetectionParams holds parameters for table detection.
type TableDetectionParams struct {
	// DensityMin is the minimum share of non-empty cells in the bounding box.
	DensityMin float64
	// MinNonemptyCells is the minimum number of non-empty cells.
	MinNonemptyCells int
}

// DefaultTableParams returns default table detection parameters.
func DefaultTableParams() TableDetectionParams {
	return TableDetectionParams{
		DensityMin:       0.04,
		MinNonemptyCells: 3,
	}
}

// DetectTable returns the bounding box of the sheet's non-empty cells when it
// is dense enough to be a table, or nil otherwise.
func DetectTable(f *excelize.File, sheetName string, params TableDetectionParams) (*models.CellRange, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	return detectTable(rows, params), nil
}

func detectTable(rows [][]string, params TableDetectionParams) *models.CellRange {
	var box *models.CellRange
	filled := 0
	for r, row := range rows {
		for c, v := range row {
			if v == "" {
				continue
			}
			filled++
			box = grow(box, c+1, r+1)
		}
	}
	if box == nil || filled < params.MinNonemptyCells {
		return nil
	}

	area := (box.R2 - box.R1 + 1) * (box.C2 - box.C1 + 1)
	if float64(filled)/float64(area) < params.DensityMin {
		return nil
	}
	return box
}

// grow extends box to include the 1-based cell (col, row).
func grow(box *models.CellRange, col, row int) *models.CellRange {
	if box == nil {
		return &models.CellRange{R1: row, C1: col, R2: row, C2: col}
	}
	box.R1 = min(box.R1, row)
	box.R2 = max(box.R2, row)
	box.C1 = min(box.C1, col)
	box.C2 = max(box.C2, col)
	return box
}
