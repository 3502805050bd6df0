package output

import (
	"embed"
	"html/template"
	"io"
	"net/url"
	"strings"

	"github.com/krislite/lightfinder/pkg/lightfinder/models"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(template.New("page.html.tmpl").Funcs(template.FuncMap{
	"num":       formatNumber,
	"fnum":      func(f float64) string { return formatNumber(&f) },
	"unit":      withUnit,
	"yesno":     yesNo,
	"join":      strings.Join,
	"isGrid":    func(v ViewMode) bool { return v == ViewGrid },
	"imageURL":  func(base, name string) string { return base + url.PathEscape(name) },
	"exportURL": exportURL,
}).ParseFS(templateFS, "templates/page.html.tmpl"))

// exportURL builds an export link from an already encoded query.
func exportURL(format, query string) template.URL {
	return template.URL("/export/" + format + "?" + query)
}

// Page is the data of the browser page.
type Page struct {
	// Title is shown as the page heading.
	Title string
	// LogoURL is the logo image source; empty hides the logo.
	LogoURL string
	// ImageBase is the URL prefix fixture image file names are joined to.
	ImageBase string
	// Criteria pre-fills the filter form.
	Criteria models.Criteria
	// Mountings, Types and CCTs are the select choices (without "Any").
	Mountings []string
	Types     []string
	CCTs      []string
	// View is the selected result layout.
	View ViewMode
	// Searched is set once the user submitted the form.
	Searched bool
	// Results holds the matches when Searched.
	Results []models.Result
	// Query is the encoded form state reused by the export links.
	Query string
	// Error is shown instead of results when set.
	Error string
}

// RenderHTML writes the browser page.
func RenderHTML(w io.Writer, page Page) error {
	if page.View == "" {
		page.View = ViewList
	}
	return pageTemplate.Execute(w, page)
}
