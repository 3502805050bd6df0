// Package output renders search results as text, HTML and JSON, and exports
// them as spreadsheets and printable documents.
package output

import (
	"fmt"
	"strconv"
	"strings"
)

// ViewMode selects how results are laid out.
type ViewMode string

const (
	// ViewList shows one detailed block per fixture.
	ViewList ViewMode = "list"
	// ViewGrid shows compact cards, several per row.
	ViewGrid ViewMode = "grid"
)

// GridColumns is the number of cards per grid row.
const GridColumns = 4

// ParseViewMode parses a view mode name. Empty selects ViewList.
func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ViewList:
		return ViewList, nil
	case ViewGrid:
		return ViewGrid, nil
	}
	return "", fmt.Errorf("invalid view mode: %s (must be list or grid)", s)
}

// formatNumber renders an optional number without trailing zeros.
func formatNumber(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// withUnit renders an optional number followed by its unit.
func withUnit(v *float64, unit string) string {
	if v == nil {
		return "n/a"
	}
	return formatNumber(v) + unit
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
