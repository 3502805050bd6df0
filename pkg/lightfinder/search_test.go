package lightfinder

import (
	"errors"
	"testing"

	"github.com/krislite/lightfinder/pkg/lightfinder/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }

func searchCatalog() *models.Catalog {
	fx := func(name, mounting, typ string, power, lumen, cri *float64, cct ...string) models.Fixture {
		flags := make(map[string]bool)
		for _, c := range cct {
			flags[c] = true
		}
		return models.Fixture{ModelName: name, Mounting: mounting, Type: typ, Power: power, Lumen: lumen, CRI: cri, CCT: flags}
	}
	rgb := fx("Prism", "Track", "Spot", f64(10), f64(1000), f64(85))
	rgb.RGB = true
	rgbw := fx("Quad", "Track", "Spot", f64(10), f64(1000), f64(84))
	rgbw.RGB, rgbw.RGBW = true, true

	return &models.Catalog{Fixtures: []models.Fixture{
		fx("Far", "Recessed", "Downlight", f64(40), f64(4000), f64(90), "3000K"),
		fx("CloseLowCRI", "Recessed", "Downlight", f64(11), f64(1000), f64(81), "4000K"),
		fx("CloseHighCRI", "Recessed", "Downlight", f64(11), f64(1000), f64(95), "3000K"),
		fx("CloserLumen", "Surface", "Linear", f64(11), f64(990), f64(82)),
		fx("NoPower", "Recessed", "Downlight", nil, f64(1000), f64(90), "3000K"),
		fx("NoCRI", "Recessed", "Downlight", f64(10), f64(1000), nil),
		rgb,
		rgbw,
	}}
}

func names(results []models.Result) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.ModelName
	}
	return out
}

func TestSearchOrdering(t *testing.T) {
	results, err := Search(searchCatalog(), models.Criteria{Power: 10, Lumen: 1000, MinCRI: 0})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Prism", "Quad", "NoCRI",      // exact power and lumen, CRI desc, unknown CRI last
		"CloseHighCRI", "CloseLowCRI", // power diff 1, lumen diff 0
		"CloserLumen",                 // power diff 1, lumen diff 10
		"Far",
		"NoPower",
	}, names(results))

	require.NotNil(t, results[0].PowerDiff)
	assert.Equal(t, 0.0, *results[0].PowerDiff)
	assert.Nil(t, results[len(results)-1].PowerDiff)
}

func TestSearchMinCRI(t *testing.T) {
	results, err := Search(searchCatalog(), models.Criteria{Power: 10, Lumen: 1000, MinCRI: 85})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Prism", "CloseHighCRI", "Far", "NoPower"}, names(results))
}

func TestSearchFilters(t *testing.T) {
	tests := []struct {
		name     string
		criteria models.Criteria
		expected []string
	}{
		{"mounting", models.Criteria{Mounting: "Surface"}, []string{"CloserLumen"}},
		{"type any", models.Criteria{Type: "Any", Mounting: "Track"}, []string{"Prism", "Quad"}},
		{"cct", models.Criteria{CCT: "3000K"}, []string{"CloseHighCRI", "Far", "NoPower"}},
		{"cct case", models.Criteria{CCT: "4000k"}, []string{"CloseLowCRI"}},
		{"rgb", models.Criteria{RGB: true}, []string{"Prism", "Quad"}},
		{"rgbw", models.Criteria{RGBW: true}, []string{"Quad"}},
		{"nothing", models.Criteria{Type: "Pendant"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := Search(searchCatalog(), tt.criteria)
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.expected, names(results))
		})
	}
}

func TestSearchInvalidCriteria(t *testing.T) {
	tests := []models.Criteria{
		{Power: 201},
		{Power: -1},
		{Lumen: 10001},
		{MinCRI: 101},
		{CCT: "9000K"},
	}
	for _, c := range tests {
		_, err := Search(searchCatalog(), c)
		assert.True(t, errors.Is(err, ErrInvalidCriteria), "criteria %+v", c)
	}
}
