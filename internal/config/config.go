// Package config loads lightfinder settings from defaults, an optional YAML
// file, LIGHTFINDER_* environment variables and command-line flags, in that
// order of precedence (last wins).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/krislite/lightfinder/pkg/lightfinder"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "LIGHTFINDER_"

// Config is the full application configuration.
type Config struct {
	Catalog CatalogConfig `yaml:"catalog"`
	Paths   PathsConfig   `yaml:"paths"`
	Images  ImagesConfig  `yaml:"images"`
	HTTP    HTTPConfig    `yaml:"http"`
	Log     LogConfig     `yaml:"log"`
}

// CatalogConfig locates the catalog workbook and its table.
type CatalogConfig struct {
	Path         string        `yaml:"path"`          // file path or http(s) URL
	Sheet        string        `yaml:"sheet"`         // empty: active sheet
	Range        string        `yaml:"range"`         // e.g. A1:W200
	ImageColumn  string        `yaml:"image_column"`  // column holding fixture pictures
	FetchTimeout time.Duration `yaml:"fetch_timeout"` // remote catalog download timeout
}

// PathsConfig holds the working directories.
type PathsConfig struct {
	Images  string `yaml:"images"`
	Exports string `yaml:"exports"`
	Logo    string `yaml:"logo"`
}

// ImagesConfig controls image extraction.
type ImagesConfig struct {
	MaxSize int  `yaml:"max_size"` // longest side in pixels, 0 keeps original
	Skip    bool `yaml:"skip"`
}

// HTTPConfig configures the browser server.
type HTTPConfig struct {
	Addr  string `yaml:"addr"`
	Title string `yaml:"title"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Path:         "data/catalogues.xlsx",
			ImageColumn:  lightfinder.DefaultImageColumn,
			FetchTimeout: lightfinder.DefaultFetchTimeout,
		},
		Paths: PathsConfig{
			Images:  "images",
			Exports: "exports",
			Logo:    "assets/logo.png",
		},
		HTTP: HTTPConfig{
			Addr:  ":8501",
			Title: "Krislite Lighting Finder",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load builds the configuration from defaults, the YAML file at path (skipped
// when path is empty), then the environment.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.loadEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config file not found: %s", path)
		}
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) loadEnv() error {
	c.Catalog.Path = getEnv("CATALOG", c.Catalog.Path)
	c.Catalog.Sheet = getEnv("SHEET", c.Catalog.Sheet)
	c.Catalog.Range = getEnv("RANGE", c.Catalog.Range)
	c.Catalog.ImageColumn = getEnv("IMAGE_COLUMN", c.Catalog.ImageColumn)
	c.Paths.Images = getEnv("IMAGE_DIR", c.Paths.Images)
	c.Paths.Exports = getEnv("EXPORT_DIR", c.Paths.Exports)
	c.Paths.Logo = getEnv("LOGO", c.Paths.Logo)
	c.HTTP.Addr = getEnv("HTTP_ADDR", c.HTTP.Addr)
	c.HTTP.Title = getEnv("TITLE", c.HTTP.Title)
	c.Log.Level = getEnv("LOG_LEVEL", c.Log.Level)
	c.Log.Format = getEnv("LOG_FORMAT", c.Log.Format)

	if v := getEnv("FETCH_TIMEOUT", ""); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sFETCH_TIMEOUT: %w", EnvPrefix, err)
		}
		c.Catalog.FetchTimeout = d
	}
	if v := getEnv("IMAGE_MAX_SIZE", ""); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sIMAGE_MAX_SIZE: %w", EnvPrefix, err)
		}
		c.Images.MaxSize = n
	}
	return nil
}

// BindFlags registers the shared flags on fs, defaulting to the current values.
// Flags the user sets overwrite the configuration when fs is parsed.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.Catalog.Path, "catalog", c.Catalog.Path, "Catalog workbook path or http(s) URL")
	fs.StringVar(&c.Catalog.Sheet, "sheet", c.Catalog.Sheet, "Worksheet name (default: active sheet)")
	fs.StringVar(&c.Catalog.Range, "range", c.Catalog.Range, "Table range, e.g. A1:W200 (default: print area or detected)")
	fs.StringVar(&c.Catalog.ImageColumn, "image-column", c.Catalog.ImageColumn, "Column holding the fixture pictures")
	fs.StringVar(&c.Paths.Images, "image-dir", c.Paths.Images, "Directory extracted images are written to")
	fs.StringVar(&c.Paths.Exports, "export-dir", c.Paths.Exports, "Directory exports are written to")
	fs.BoolVar(&c.Images.Skip, "no-images", c.Images.Skip, "Skip image extraction")
	fs.StringVar(&c.Log.Level, "log-level", c.Log.Level, "Log level: debug, info, warn, error")
	fs.StringVar(&c.Log.Format, "log-format", c.Log.Format, "Log format: console, json")
}

// ApplyFlags copies the flags the user set on src onto c. Flags unknown to
// BindFlags are ignored.
func (c *Config) ApplyFlags(src *pflag.FlagSet) error {
	dst := pflag.NewFlagSet("config", pflag.ContinueOnError)
	c.BindFlags(dst)

	var err error
	src.Visit(func(f *pflag.Flag) {
		if err != nil || dst.Lookup(f.Name) == nil {
			return
		}
		if setErr := dst.Set(f.Name, f.Value.String()); setErr != nil {
			err = fmt.Errorf("flag --%s: %w", f.Name, setErr)
		}
	})
	return err
}

// LoadOptions converts the configuration to catalog loading options.
func (c *Config) LoadOptions(logger *zap.Logger) lightfinder.Options {
	return lightfinder.Options{
		Sheet:        c.Catalog.Sheet,
		Range:        c.Catalog.Range,
		ImageColumn:  c.Catalog.ImageColumn,
		ImageDir:     c.Paths.Images,
		MaxImageSize: c.Images.MaxSize,
		SkipImages:   c.Images.Skip,
		FetchTimeout: c.Catalog.FetchTimeout,
		Logger:       logger,
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(EnvPrefix + key); v != "" {
		return v
	}
	return def
}
