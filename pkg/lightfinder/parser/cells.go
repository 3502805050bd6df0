// Package parser reads catalog worksheets: cell values, table bounds and the
// pictures anchored to cells in the sheet drawing.
package parser

import (
	"math"
	"strconv"

	"github.com/krislite/lightfinder/pkg/lightfinder/models"
	"github.com/xuri/excelize/v2"
)

// ExtractCells streams the rows of a sheet and keeps the non-empty cells
// inside area (the whole sheet when area is nil). Rows without any kept
// cell are dropped. With includeLinks, hyperlink targets are collected too.
func ExtractCells(f *excelize.File, sheetName string, area *models.CellRange, includeLinks bool) ([]models.CellRow, error) {
	rows, err := f.Rows(sheetName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.CellRow
	for rowNum := 1; rows.Next(); rowNum++ {
		if area != nil && rowNum > area.R2 {
			break
		}
		values, err := rows.Columns()
		if err != nil {
			return nil, err
		}
		if area != nil && rowNum < area.R1 {
			continue
		}

		cr := models.CellRow{R: rowNum, C: make(map[string]interface{})}
		for i, v := range values {
			col := i + 1
			if v == "" || (area != nil && !area.Contains(col, rowNum)) {
				continue
			}
			key := strconv.Itoa(col)
			cr.C[key] = parseValue(v)
			if includeLinks {
				if target := cellLink(f, sheetName, col, rowNum); target != "" {
					if cr.Links == nil {
						cr.Links = make(map[string]string)
					}
					cr.Links[key] = target
				}
			}
		}
		if len(cr.C) > 0 {
			out = append(out, cr)
		}
	}
	return out, rows.Error()
}

func cellLink(f *excelize.File, sheetName string, col, row int) string {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return ""
	}
	ok, target, err := f.GetCellHyperLink(sheetName, cell)
	if err != nil || !ok {
		return ""
	}
	return target
}

// parseValue returns int64 or float64 when s is the canonical spelling of a
// finite number, and s itself otherwise. Text such as "00123", "1.50",
// "Infinity" or "NaN" stays text so identifiers keep their exact spelling.
func parseValue(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		if strconv.FormatInt(i, 10) == s {
			return i
		}
		return s
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if !math.IsNaN(f) && !math.IsInf(f, 0) && strconv.FormatFloat(f, 'f', -1, 64) == s {
			return f
		}
	}
	return s
}
