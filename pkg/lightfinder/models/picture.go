package models

// Picture is an image embedded in a worksheet drawing and anchored to a cell.
type Picture struct {
	// Cell is the anchor cell in A1 notation (e.g. "W2").
	Cell string `json:"cell"`
	// Col is the anchor column (1-based).
	Col int `json:"col"`
	// Row is the anchor row (1-based).
	Row int `json:"row"`
	// OffsetX is the horizontal offset from the anchor cell in pixels.
	OffsetX int `json:"offset_x"`
	// OffsetY is the vertical offset from the anchor cell in pixels.
	OffsetY int `json:"offset_y"`
	// Name is the drawing object name, when set.
	Name string `json:"name,omitempty"`
	// Media is the package path of the embedded image (e.g. "xl/media/image1.png").
	Media string `json:"media"`
	// Data holds the raw image bytes.
	Data []byte `json:"-"`
}
