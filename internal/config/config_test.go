package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "data/catalogues.xlsx", cfg.Catalog.Path)
	assert.Equal(t, "W", cfg.Catalog.ImageColumn)
	assert.Equal(t, "images", cfg.Paths.Images)
	assert.Equal(t, "exports", cfg.Paths.Exports)
	assert.Equal(t, "assets/logo.png", cfg.Paths.Logo)
	assert.Equal(t, ":8501", cfg.HTTP.Addr)
	assert.Zero(t, cfg.Images.MaxSize, "images keep their original size by default")
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lightfinder.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
catalog:
  path: https://example.com/catalogues.xlsx
  sheet: Fixtures
  fetch_timeout: 10s
paths:
  images: /tmp/lf-images
images:
  max_size: 400
log:
  level: debug
`), 0644))

	t.Setenv("LIGHTFINDER_HTTP_ADDR", ":9000")
	t.Setenv("LIGHTFINDER_SHEET", "Lamps")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/catalogues.xlsx", cfg.Catalog.Path)
	assert.Equal(t, "Lamps", cfg.Catalog.Sheet)
	assert.Equal(t, 10*time.Second, cfg.Catalog.FetchTimeout)
	assert.Equal(t, "/tmp/lf-images", cfg.Paths.Images)
	assert.Equal(t, "exports", cfg.Paths.Exports)
	assert.Equal(t, 400, cfg.Images.MaxSize)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, ":9000", cfg.HTTP.Addr)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("catalog: [unclosed"), 0644))
	_, err = Load(bad)
	assert.Error(t, err)

	t.Setenv("LIGHTFINDER_FETCH_TIMEOUT", "soon")
	_, err = Load("")
	assert.Error(t, err)
}

func TestBindFlags(t *testing.T) {
	cfg := Default()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.BindFlags(fs)

	require.NoError(t, fs.Parse([]string{"--catalog", "other.xlsx", "--no-images", "--image-column", "X"}))
	assert.Equal(t, "other.xlsx", cfg.Catalog.Path)
	assert.True(t, cfg.Images.Skip)
	assert.Equal(t, "X", cfg.Catalog.ImageColumn)
	assert.Equal(t, "images", cfg.Paths.Images)

	opts := cfg.LoadOptions(nil)
	assert.Equal(t, "X", opts.ImageColumn)
	assert.True(t, opts.SkipImages)
	assert.Equal(t, 0, opts.MaxImageSize)
}

func TestApplyFlags(t *testing.T) {
	t.Setenv("LIGHTFINDER_IMAGE_DIR", "/env/images")
	cfg, err := Load("")
	require.NoError(t, err)

	fs := pflag.NewFlagSet("cli", pflag.ContinueOnError)
	Default().BindFlags(fs)
	fs.String("view", "list", "unrelated flag")
	require.NoError(t, fs.Parse([]string{"--sheet", "Lamps", "--view", "grid"}))

	require.NoError(t, cfg.ApplyFlags(fs))
	assert.Equal(t, "Lamps", cfg.Catalog.Sheet)
	assert.Equal(t, "/env/images", cfg.Paths.Images)
	assert.Equal(t, "data/catalogues.xlsx", cfg.Catalog.Path)
}
