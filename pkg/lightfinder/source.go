package lightfinder

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/krislite/lightfinder/pkg/lightfinder/models"
	"go.uber.org/zap"
)

// IsRemote reports whether src is an http(s) URL rather than a file path.
func IsRemote(src string) bool {
	lower := strings.ToLower(src)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// Open loads a catalog from a file path or an http(s) URL.
func Open(ctx context.Context, src string, opts Options) (*models.Catalog, error) {
	if IsRemote(src) {
		return Fetch(ctx, src, opts)
	}
	return Load(src, opts)
}

// Fetch downloads a catalog over HTTP(S) and loads it.
func Fetch(ctx context.Context, rawURL string, opts Options) (*models.Catalog, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("catalog url: %w", err)
	}

	client := resty.New().SetTimeout(opts.fetchTimeout())
	resp, err := client.R().SetContext(ctx).Get(u.String())
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", u.Redacted(), err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", u.Redacted(), resp.Status())
	}

	name := path.Base(u.Path)
	if name == "/" || name == "." {
		name = u.Host
	}
	opts.logger().Debug("catalog downloaded",
		zap.String("url", u.Redacted()),
		zap.Int("bytes", len(resp.Body())))

	return LoadBytes(name, resp.Body(), opts)
}
