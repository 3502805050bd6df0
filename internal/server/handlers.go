package server

import (
	"bytes"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/krislite/lightfinder/pkg/lightfinder"
	"github.com/krislite/lightfinder/pkg/lightfinder/models"
	"github.com/krislite/lightfinder/pkg/lightfinder/output"
	"go.uber.org/zap"
)

// Handler serves one loaded catalog. The catalog is read-only, so a
// Handler is safe for concurrent requests.
type Handler struct {
	catalog  *models.Catalog
	title    string
	imageDir string
	logoPath string
	logger   *zap.Logger
}

// HandlerConfig configures a Handler.
type HandlerConfig struct {
	Title    string
	ImageDir string
	LogoPath string
}

// NewHandler creates a handler for catalog.
func NewHandler(catalog *models.Catalog, cfg HandlerConfig, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		catalog:  catalog,
		title:    cfg.Title,
		imageDir: cfg.ImageDir,
		logoPath: cfg.LogoPath,
		logger:   logger,
	}
}

// Page renders the browser page. Results are shown once the form was submitted.
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	q := r.URL.Query()
	page := output.Page{
		Title:     h.title,
		ImageBase: "/images/",
		Criteria:  models.DefaultCriteria(),
		Mountings: h.catalog.Mountings(),
		Types:     h.catalog.Types(),
		CCTs:      models.CCTs,
		View:      output.ViewList,
		Searched:  q.Get("search") != "",
		Query:     q.Encode(),
	}
	if h.hasLogo() {
		page.LogoURL = "/logo"
	}

	status := http.StatusOK
	if page.Searched {
		results, c, view, err := h.search(r)
		page.Criteria = c
		page.View = view
		if err != nil {
			status = statusFor(err)
			page.Error = err.Error()
		} else {
			page.Results = results
		}
	}

	var buf bytes.Buffer
	if err := output.RenderHTML(&buf, page); err != nil {
		h.logger.Error("render page failed", zap.Error(err))
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// Fixtures returns the matching fixtures as JSON.
func (h *Handler) Fixtures(w http.ResponseWriter, r *http.Request) {
	results, c, _, err := h.search(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if results == nil {
		results = []models.Result{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"count":    len(results),
		"criteria": c,
		"results":  results,
	})
}

// Options returns the filter choices and bounds.
func (h *Handler) Options(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		output.CatalogOptions
		Defaults models.Criteria `json:"defaults"`
		Limits   map[string]int  `json:"limits"`
	}{
		CatalogOptions: output.OptionsOf(h.catalog),
		Defaults:       models.DefaultCriteria(),
		Limits: map[string]int{
			"power":   models.MaxPower,
			"lumen":   models.MaxLumen,
			"min_cri": models.MaxCRI,
		},
	})
}

// Export downloads the matching fixtures as /export/xlsx or /export/pdf. The
// document is rendered in memory; HEAD answers the headers without rendering.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/export/")
	format, err := lightfinder.ParseFormat(name)
	if err != nil || strings.Contains(name, "/") {
		http.NotFound(w, r)
		return
	}

	results, _, _, err := h.search(r)
	if err != nil {
		writeError(w, err)
		return
	}

	id := uuid.NewString()
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", `attachment; filename="`+format.FileName("")+`"`)
	w.Header().Set("X-Export-Id", id)
	if r.Method == http.MethodHead {
		w.WriteHeader(http.StatusOK)
		return
	}

	data, err := lightfinder.Render(format, h.catalog, results, h.imageDir)
	if err != nil {
		h.logger.Error("export failed", zap.String("export_id", id), zap.String("format", string(format)), zap.Error(err))
		w.Header().Del("Content-Disposition")
		writeError(w, err)
		return
	}
	h.logger.Info("export served",
		zap.String("export_id", id),
		zap.String("format", string(format)),
		zap.Int("fixtures", len(results)),
		zap.Int("bytes", len(data)))

	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// Logo serves the configured logo image.
func (h *Handler) Logo(w http.ResponseWriter, r *http.Request) {
	if !h.hasLogo() {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, h.logoPath)
}

// Health reports liveness and the catalog size.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"fixtures": len(h.catalog.Fixtures),
	})
}

func (h *Handler) search(r *http.Request) ([]models.Result, models.Criteria, output.ViewMode, error) {
	q := r.URL.Query()
	view, err := parseView(q)
	if err != nil {
		return nil, models.DefaultCriteria(), view, err
	}
	c, err := parseCriteria(q)
	if err != nil {
		return nil, c, view, err
	}
	results, err := lightfinder.Search(h.catalog, c)
	return results, c, view, err
}

func (h *Handler) hasLogo() bool {
	if h.logoPath == "" {
		return false
	}
	info, err := os.Stat(h.logoPath)
	return err == nil && !info.IsDir()
}
