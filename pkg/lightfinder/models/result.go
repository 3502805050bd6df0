package models

// Result is a fixture matched by a search, with its distance to the target.
type Result struct {
	Fixture
	// PowerDiff is |power - target power|, nil when power is unknown.
	PowerDiff *float64 `json:"power_diff,omitempty"`
	// LumenDiff is |lumen - target lumen|, nil when lumen is unknown.
	LumenDiff *float64 `json:"lumen_diff,omitempty"`
}
