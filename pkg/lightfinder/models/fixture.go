package models

import (
	"math"
	"strings"
)

// Catalog column headers.
const (
	ColModelName    = "model_name"
	ColModelNo      = "model_no"
	ColBrand        = "brand"
	ColType         = "type"
	ColMounting     = "mounting"
	ColDescription  = "description"
	ColPower        = "power"
	ColLumen        = "lumen"
	ColCRI          = "cri"
	ColInputVoltage = "ip_v"
	ColIPRating     = "ip"
	ColRGB          = "RGB"
	ColRGBW         = "RGBW"
	ColBeam         = "beam"
	ColComment      = "comment"
)

// CCTs lists the correlated color temperatures a catalog tracks, one
// availability column each.
var CCTs = []string{"2700K", "3000K", "3500K", "4000K", "5000K", "6500K"}

// KnownColumns lists every header the loader maps onto Fixture fields.
func KnownColumns() []string {
	cols := []string{
		ColModelName, ColModelNo, ColBrand, ColType, ColMounting, ColDescription,
		ColPower, ColLumen, ColCRI, ColInputVoltage, ColIPRating,
	}
	cols = append(cols, CCTs...)
	return append(cols, ColRGB, ColRGBW, ColBeam, ColComment)
}

// IsCCT reports whether name is one of the tracked color temperatures.
func IsCCT(name string) bool {
	for _, c := range CCTs {
		if strings.EqualFold(c, name) {
			return true
		}
	}
	return false
}

// Fixture is one lighting product record of the catalog.
type Fixture struct {
	// Row is the sheet row the fixture was read from (1-based).
	Row int `json:"row"`

	ModelName    string `json:"model_name"`
	ModelNo      string `json:"model_no"`
	Brand        string `json:"brand"`
	Type         string `json:"type"`
	Mounting     string `json:"mounting"`
	Description  string `json:"description,omitempty"`
	InputVoltage string `json:"ip_v,omitempty"`
	IPRating     string `json:"ip,omitempty"`
	Beam         string `json:"beam,omitempty"`
	Comment      string `json:"comment,omitempty"`

	// Power is the rated power in watts, nil when unknown.
	Power *float64 `json:"power,omitempty"`
	// Lumen is the luminous flux, nil when unknown.
	Lumen *float64 `json:"lumen,omitempty"`
	// CRI is the color rendering index, nil when unknown.
	CRI *float64 `json:"cri,omitempty"`

	// CCT maps each tracked color temperature to its availability.
	CCT  map[string]bool `json:"cct"`
	RGB  bool            `json:"rgb"`
	RGBW bool            `json:"rgbw"`

	// ImageFile is the extracted image file name, empty without an image.
	ImageFile string `json:"image_file,omitempty"`
	// Links maps header to hyperlink target for linked cells.
	Links map[string]string `json:"links,omitempty"`
	// Values holds the raw cell values keyed by header.
	Values map[string]interface{} `json:"-"`
}

// AvailableCCTs returns the available color temperatures in catalog order.
func (f Fixture) AvailableCCTs() []string {
	var out []string
	for _, c := range CCTs {
		if f.CCT[c] {
			out = append(out, c)
		}
	}
	return out
}

// ParseFlag interprets a Yes/No catalog cell.
func ParseFlag(v interface{}) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(s), "yes")
}

// ParseNumber interprets a numeric catalog cell. Text with a trailing unit
// such as "12W" or "1200 lm" is accepted. NaN and infinities are not numbers.
func ParseNumber(v interface{}) *float64 {
	var f float64
	switch n := v.(type) {
	case int64:
		f = float64(n)
	case float64:
		f = n
	case string:
		p, ok := parseNumberText(n)
		if !ok {
			return nil
		}
		f = p
	default:
		return nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}
