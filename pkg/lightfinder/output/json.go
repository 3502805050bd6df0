package output

import (
	"encoding/json"

	"github.com/krislite/lightfinder/pkg/lightfinder/models"
)

// ResultsToJSON serializes search results to JSON.
func ResultsToJSON(results []models.Result, pretty bool) ([]byte, error) {
	if results == nil {
		results = []models.Result{}
	}
	if pretty {
		return json.MarshalIndent(results, "", "  ")
	}
	return json.Marshal(results)
}

// CatalogOptions lists the filter choices a catalog offers.
type CatalogOptions struct {
	BookName  string   `json:"book_name"`
	SheetName string   `json:"sheet_name"`
	Mountings []string `json:"mountings"`
	Types     []string `json:"types"`
	CCTs      []string `json:"ccts"`
}

// OptionsOf collects the filter choices of catalog.
func OptionsOf(catalog *models.Catalog) CatalogOptions {
	return CatalogOptions{
		BookName:  catalog.BookName,
		SheetName: catalog.SheetName,
		Mountings: nonNil(catalog.Mountings()),
		Types:     nonNil(catalog.Types()),
		CCTs:      models.CCTs,
	}
}

// OptionsToJSON serializes the filter choices of catalog to JSON.
func OptionsToJSON(catalog *models.Catalog, pretty bool) ([]byte, error) {
	opts := OptionsOf(catalog)
	if pretty {
		return json.MarshalIndent(opts, "", "  ")
	}
	return json.Marshal(opts)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
