package parser

import (
	"fmt"
	"strings"

	"github.com/krislite/lightfinder/pkg/lightfinder/models"
	"github.com/xuri/excelize/v2"
)

const printAreaName = "_xlnm.Print_Area"

// ParseRange parses a range such as "A1:W200", "$A$1:$W$200" or
// "'Sheet 1'!A1:W200". The sheet prefix, if any, is ignored.
func ParseRange(ref string) (*models.CellRange, error) {
	ref = strings.TrimSpace(ref)
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		ref = ref[idx+1:]
	}
	ref = strings.ReplaceAll(ref, "$", "")

	parts := strings.Split(ref, ":")
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid range %q", ref)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return nil, fmt.Errorf("invalid range %q: %w", ref, err)
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return nil, fmt.Errorf("invalid range %q: %w", ref, err)
	}
	if endRow < startRow {
		startRow, endRow = endRow, startRow
	}
	if endCol < startCol {
		startCol, endCol = endCol, startCol
	}

	return &models.CellRange{R1: startRow, C1: startCol, R2: endRow, C2: endCol}, nil
}

// ExtractPrintArea returns the first print area defined for sheetName, or
// nil when the sheet has none.
func ExtractPrintArea(f *excelize.File, sheetName string) *models.CellRange {
	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, printAreaName) {
			continue
		}
		sheet, first := splitPrintAreaReference(dn.RefersTo)
		if sheet != sheetName && dn.Scope != sheetName {
			continue
		}
		if area, err := ParseRange(first); err == nil {
			return area
		}
	}
	return nil
}

// splitPrintAreaReference returns the sheet name and the first range of a
// print area reference such as 'Sheet 1'!$A$1:$D$10,'Sheet 1'!$F$1:$G$4.
func splitPrintAreaReference(ref string) (string, string) {
	for _, part := range strings.Split(ref, ",") {
		part = strings.TrimSpace(part)
		idx := strings.LastIndex(part, "!")
		if idx < 0 {
			continue
		}
		return strings.Trim(part[:idx], "'"), part[idx+1:]
	}
	return "", ""
}
