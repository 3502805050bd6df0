// Package lightfinder loads lighting-fixture catalogs from spreadsheets,
// searches them and exports the matches.
package lightfinder

import (
	"time"

	"go.uber.org/zap"
)

// DefaultImageColumn is the column holding the fixture pictures.
const DefaultImageColumn = "W"

// DefaultFetchTimeout bounds the download of a remote catalog.
const DefaultFetchTimeout = 30 * time.Second

// Options configures catalog loading.
type Options struct {
	// Sheet is the worksheet to read. Empty selects the active sheet.
	Sheet string
	// Range restricts the table to an A1-style range such as "A1:W200".
	// Empty falls back to the sheet's print area, then to the detected data bounds.
	Range string
	// ImageColumn is the column whose anchored pictures belong to the row.
	// Empty selects DefaultImageColumn.
	ImageColumn string
	// ImageDir is where extracted images are written as PNG.
	ImageDir string
	// MaxImageSize caps the longest side of extracted images in pixels (0 keeps the original).
	MaxImageSize int
	// SkipImages disables image extraction.
	SkipImages bool
	// IncludeLinks specifies whether to keep cell hyperlinks on fixtures.
	IncludeLinks bool
	// FetchTimeout bounds Fetch. Zero selects DefaultFetchTimeout.
	FetchTimeout time.Duration
	// Logger receives warnings for skipped images and missing columns.
	// If nil, logging is disabled.
	Logger *zap.Logger
}

// DefaultOptions returns default loading options.
func DefaultOptions() Options {
	return Options{
		ImageColumn:  DefaultImageColumn,
		ImageDir:     "images",
		FetchTimeout: DefaultFetchTimeout,
	}
}

func (o Options) imageColumn() string {
	if o.ImageColumn == "" {
		return DefaultImageColumn
	}
	return o.ImageColumn
}

func (o Options) fetchTimeout() time.Duration {
	if o.FetchTimeout <= 0 {
		return DefaultFetchTimeout
	}
	return o.FetchTimeout
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}
