package lightfinder

import (
	"math"
	"sort"
	"strings"

	"github.com/krislite/lightfinder/pkg/lightfinder/models"
)

// Search filters the catalog against the criteria and orders the matches by
// closeness to the target power, then to the target lumen, then by CRI
// (highest first). Unknown values sort last. The catalog is not modified.
func Search(catalog *models.Catalog, c models.Criteria) ([]models.Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	results := make([]models.Result, 0, len(catalog.Fixtures))
	for _, fx := range catalog.Fixtures {
		if !matches(fx, c) {
			continue
		}
		results = append(results, models.Result{
			Fixture:   fx,
			PowerDiff: absDiff(fx.Power, c.Power),
			LumenDiff: absDiff(fx.Lumen, c.Lumen),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if cmp := compareAsc(a.PowerDiff, b.PowerDiff); cmp != 0 {
			return cmp < 0
		}
		if cmp := compareAsc(a.LumenDiff, b.LumenDiff); cmp != 0 {
			return cmp < 0
		}
		return compareAsc(negate(a.CRI), negate(b.CRI)) < 0
	})

	return results, nil
}

func matches(fx models.Fixture, c models.Criteria) bool {
	if models.IsSet(c.Mounting) && fx.Mounting != c.Mounting {
		return false
	}
	if models.IsSet(c.Type) && fx.Type != c.Type {
		return false
	}
	if models.IsSet(c.CCT) && !fx.CCT[canonicalCCT(c.CCT)] {
		return false
	}
	if c.RGB && !fx.RGB {
		return false
	}
	if c.RGBW && !fx.RGBW {
		return false
	}
	if c.MinCRI > 0 && (fx.CRI == nil || *fx.CRI < c.MinCRI) {
		return false
	}
	return true
}

func canonicalCCT(name string) string {
	for _, c := range models.CCTs {
		if strings.EqualFold(c, name) {
			return c
		}
	}
	return name
}

func absDiff(v *float64, target float64) *float64 {
	if v == nil {
		return nil
	}
	d := math.Abs(*v - target)
	return &d
}

func negate(v *float64) *float64 {
	if v == nil {
		return nil
	}
	n := -*v
	return &n
}

// compareAsc orders known values ascending and unknown values last.
func compareAsc(a, b *float64) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case *a < *b:
		return -1
	case *a > *b:
		return 1
	}
	return 0
}
