package models

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Bounds accepted for the numeric criteria.
const (
	MaxPower = 200
	MaxLumen = 10000
	MaxCRI   = 100
)

// Any disables a categorical filter.
const Any = "Any"

// ErrInvalidCriteria is returned when a criterion is out of range or unknown.
var ErrInvalidCriteria = errors.New("invalid search criteria")

// Criteria describes what the user is looking for.
type Criteria struct {
	// Power is the target power in watts (0..200).
	Power float64 `json:"power"`
	// Lumen is the target luminous flux (0..10000).
	Lumen float64 `json:"lumen"`
	// MinCRI is the minimum color rendering index (0..100).
	MinCRI float64 `json:"min_cri"`
	// Mounting restricts to one mounting; empty or "Any" matches all.
	Mounting string `json:"mounting,omitempty"`
	// Type restricts to one fixture type; empty or "Any" matches all.
	Type string `json:"type,omitempty"`
	// CCT requires availability of one color temperature; empty or "Any" matches all.
	CCT string `json:"cct,omitempty"`
	// RGB requires RGB support.
	RGB bool `json:"rgb,omitempty"`
	// RGBW requires RGBW support.
	RGBW bool `json:"rgbw,omitempty"`
}

// DefaultCriteria returns the criteria a fresh search starts from.
func DefaultCriteria() Criteria {
	return Criteria{
		Power:  10,
		Lumen:  1000,
		MinCRI: 80,
	}
}

// Validate checks the numeric values are finite and in bounds, and the CCT choice.
func (c Criteria) Validate() error {
	for _, v := range []struct {
		name  string
		value float64
	}{{"power", c.Power}, {"lumen", c.Lumen}, {"cri", c.MinCRI}} {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) {
			return fmt.Errorf("%w: %s must be a finite number", ErrInvalidCriteria, v.name)
		}
	}
	if c.Power < 0 || c.Power > MaxPower {
		return fmt.Errorf("%w: power %v outside 0..%d", ErrInvalidCriteria, c.Power, MaxPower)
	}
	if c.Lumen < 0 || c.Lumen > MaxLumen {
		return fmt.Errorf("%w: lumen %v outside 0..%d", ErrInvalidCriteria, c.Lumen, MaxLumen)
	}
	if c.MinCRI < 0 || c.MinCRI > MaxCRI {
		return fmt.Errorf("%w: cri %v outside 0..%d", ErrInvalidCriteria, c.MinCRI, MaxCRI)
	}
	if IsSet(c.CCT) && !IsCCT(c.CCT) {
		return fmt.Errorf("%w: unknown cct %q (want one of %s)", ErrInvalidCriteria, c.CCT, strings.Join(CCTs, ", "))
	}
	return nil
}

// IsSet reports whether a categorical choice actually filters.
func IsSet(choice string) bool {
	return choice != "" && !strings.EqualFold(choice, Any)
}
