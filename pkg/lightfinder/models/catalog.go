package models

import "sort"

// Catalog is the fixture table loaded from one worksheet.
type Catalog struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// SheetName is the worksheet the fixtures were read from.
	SheetName string `json:"sheet_name"`
	// Columns lists the header names in sheet order.
	Columns []string `json:"columns"`
	// HeaderRow is the sheet row holding the headers (1-based).
	HeaderRow int `json:"header_row"`
	// Range is the table bounds the fixtures were read from.
	Range CellRange `json:"range"`
	// Fixtures holds one entry per non-empty data row.
	Fixtures []Fixture `json:"fixtures"`
	// Images maps anchor cell (e.g. "W2") to extracted image file name.
	Images map[string]string `json:"images,omitempty"`
}

// Mountings returns the sorted distinct non-empty mounting values.
func (c *Catalog) Mountings() []string {
	return c.distinct(func(f Fixture) string { return f.Mounting })
}

// Types returns the sorted distinct non-empty fixture types.
func (c *Catalog) Types() []string {
	return c.distinct(func(f Fixture) string { return f.Type })
}

func (c *Catalog) distinct(field func(Fixture) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, f := range c.Fixtures {
		v := field(f)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
