package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/go-resty/resty/v2"
)

const (
	// DefaultMaxImageWidthPt caps embedded image width on the page.
	DefaultMaxImageWidthPt = 400

	// DefaultImageTimeout bounds each remote image fetch.
	DefaultImageTimeout = 5 * time.Second
)

var imageFormats = map[string]string{
	"png":  "PNG",
	"jpeg": "JPG",
	"gif":  "GIF",
}

// HTTPImageFetcher downloads images over HTTP and scales their display size
// down to a maximum width, preserving aspect ratio.
type HTTPImageFetcher struct {
	client     *resty.Client
	maxWidthPt float64
}

// FetcherConfig tunes the HTTP image fetcher.
type FetcherConfig struct {
	Timeout    time.Duration
	MaxWidthPt float64
}

// NewHTTPImageFetcher creates an image fetcher with the given limits. Zero
// values fall back to defaults.
func NewHTTPImageFetcher(cfg FetcherConfig) *HTTPImageFetcher {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultImageTimeout
	}
	maxWidth := cfg.MaxWidthPt
	if maxWidth <= 0 {
		maxWidth = DefaultMaxImageWidthPt
	}

	return &HTTPImageFetcher{
		client:     resty.New().SetTimeout(timeout),
		maxWidthPt: maxWidth,
	}
}

// Fetch downloads the image at url, validates its format, and computes its
// display size at the configured maximum width.
func (f *HTTPImageFetcher) Fetch(ctx context.Context, url string) (*ImageData, error) {
	resp, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("image fetch returned status %d", resp.StatusCode())
	}

	data := resp.Body()

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	pdfFormat, ok := imageFormats[format]
	if !ok {
		return nil, fmt.Errorf("unsupported image format %q", format)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("invalid image dimensions %dx%d", cfg.Width, cfg.Height)
	}

	width := f.maxWidthPt
	height := float64(cfg.Height) * width / float64(cfg.Width)

	return &ImageData{
		Data:   data,
		Format: pdfFormat,
		Width:  width,
		Height: height,
	}, nil
}
