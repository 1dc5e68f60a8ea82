package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Info(ctx context.Context, args ...any)                   {}
func (mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (mockLogger) Error(ctx context.Context, args ...any)                  {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type stubFetcher struct {
	img *ImageData
	err error
}

func (f stubFetcher) Fetch(ctx context.Context, url string) (*ImageData, error) {
	return f.img, f.err
}

func newRenderer(fetcher ImageFetcher) *Renderer {
	return New(mockLogger{}, fetcher, Config{})
}

func contentBlocks(blocks []Block) []Block {
	// Strip the 4-block fixed header and the trailing spacer + footer.
	return blocks[4 : len(blocks)-2]
}

func kinds(blocks []Block) []string {
	out := make([]string, len(blocks))
	for i, b := range blocks {
		out[i] = b.Kind.String()
	}
	return out
}

func TestBlocksOnePerTag(t *testing.T) {
	markdown := "# Title\n\n## Section\n\n### Day 1\n\nSome paragraph.\n\n- first\n- second\n\n1. third\n"

	blocks := contentBlocks(newRenderer(nil).Blocks(context.Background(), Input{
		Markdown:    markdown,
		Destination: "Paris",
		DateRange:   "Jun 01, 2026 to Jun 05, 2026",
	}))

	want := []string{"title", "section", "day", "paragraph", "bullet", "bullet", "bullet"}
	got := kinds(blocks)
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Fatalf("block kinds mismatch\n got %v\nwant %v", got, want)
	}
	if blocks[4].Text != "first" || blocks[6].Text != "third" {
		t.Errorf("unexpected bullet texts: %+v", blocks)
	}
}

func TestStructuredExample(t *testing.T) {
	markdown := "# Paris Trip\n## Day 1\n- Visit the Louvre\n- Eat croissants"

	blocks := newRenderer(nil).Blocks(context.Background(), Input{
		Markdown:    markdown,
		Destination: "Paris",
		DateRange:   "Jun 01, 2026 to Jun 05, 2026",
	})

	content := contentBlocks(blocks)
	want := []string{"title", "section", "bullet", "bullet"}
	if fmt.Sprint(kinds(content)) != fmt.Sprint(want) {
		t.Fatalf("expected structured content %v, got %v", want, kinds(content))
	}

	last := blocks[len(blocks)-1]
	if last.Kind != BlockFooter {
		t.Errorf("expected footer last, got %s", last.Kind)
	}
	if last.Text != DefaultFooterText {
		t.Errorf("unexpected footer text %q", last.Text)
	}
}

func TestSparseFallbackLineByLine(t *testing.T) {
	// A fenced code block yields no recognized tags, so the document falls
	// back to one paragraph per non-empty source line.
	source := "```\nfirst line\nsecond line\n```"

	blocks := contentBlocks(newRenderer(nil).Blocks(context.Background(), Input{
		Markdown:    source,
		Destination: "Paris",
		DateRange:   "Jun 01, 2026",
	}))

	var nonEmpty int
	for _, line := range strings.Split(source, "\n") {
		if strings.TrimSpace(line) != "" {
			nonEmpty++
		}
	}

	if len(blocks) != nonEmpty {
		t.Fatalf("expected %d fallback paragraphs, got %d: %v", nonEmpty, len(blocks), kinds(blocks))
	}
	for _, b := range blocks {
		if b.Kind != BlockParagraph {
			t.Errorf("expected paragraph fallback, got %s", b.Kind)
		}
	}
}

func TestFailedImageFetchSkipsImageOnly(t *testing.T) {
	markdown := "# Trip\n\nA paragraph.\n\n![View](https://example.com/view.png)\n\n- bullet"

	withImage := contentBlocks(New(mockLogger{}, stubFetcher{img: &ImageData{Format: "PNG", Width: 400, Height: 300, Data: []byte{1}}}, Config{}).
		Blocks(context.Background(), Input{Markdown: markdown, Destination: "Paris", DateRange: "x"}))
	withFailure := contentBlocks(New(mockLogger{}, stubFetcher{err: errors.New("boom")}, Config{}).
		Blocks(context.Background(), Input{Markdown: markdown, Destination: "Paris", DateRange: "x"}))

	countNonImage := func(blocks []Block) int {
		n := 0
		for _, b := range blocks {
			if b.Kind != BlockImage {
				n++
			}
		}
		return n
	}

	if got, want := countNonImage(withFailure), countNonImage(withImage); got != want {
		t.Errorf("non-image block count changed on fetch failure: got %d, want %d", got, want)
	}
	for _, b := range withFailure {
		if b.Kind == BlockImage {
			t.Error("expected failed image to be skipped")
		}
	}
	var found bool
	for _, b := range withImage {
		if b.Kind == BlockImage {
			found = true
		}
	}
	if !found {
		t.Error("expected successful image to produce a block")
	}
}

func TestRenderProducesPDF(t *testing.T) {
	out, err := newRenderer(nil).Render(context.Background(), Input{
		Markdown:    "# Paris Trip\n## Day 1\n- Visit the Louvre",
		Destination: "Paris",
		DateRange:   "Jun 01, 2026 to Jun 05, 2026",
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Errorf("expected PDF output, got prefix %q", out[:min(8, len(out))])
	}
}

func TestHTTPImageFetcher(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 200, 100))
	for x := 0; x < 200; x++ {
		for y := 0; y < 100; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png encode: %v", err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(buf.Bytes())
	}))
	defer srv.Close()

	fetcher := NewHTTPImageFetcher(FetcherConfig{MaxWidthPt: 400})

	got, err := fetcher.Fetch(context.Background(), srv.URL+"/view.png")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if got.Format != "PNG" {
		t.Errorf("expected PNG format, got %q", got.Format)
	}
	if got.Width != 400 || got.Height != 200 {
		t.Errorf("expected 400x200 display size, got %gx%g", got.Width, got.Height)
	}
}

func TestHTTPImageFetcherRejectsNonImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not an image</html>"))
	}))
	defer srv.Close()

	if _, err := NewHTTPImageFetcher(FetcherConfig{}).Fetch(context.Background(), srv.URL); err == nil {
		t.Error("expected decode error for non-image body")
	}
}
