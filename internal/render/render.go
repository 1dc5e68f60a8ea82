package render

import (
	"context"
	"strings"

	pkgLog "globetrek/pkg/log"
)

const (
	// DefaultSparseThreshold is the block count at or below which a parsed
	// document is treated as unstructured and re-rendered line by line.
	// The fixed header contributes 4 blocks, so the default fires exactly
	// when the markdown yielded no recognized content.
	DefaultSparseThreshold = 4

	// DefaultFooterText is appended to every document.
	DefaultFooterText = "Generated by GlobeTrek - Your AI Travel Companion"
)

// Config tunes the renderer.
type Config struct {
	SparseThreshold int
	FooterText      string
}

// Renderer converts itinerary markdown into a paginated PDF document.
type Renderer struct {
	l               pkgLog.Logger
	fetcher         ImageFetcher
	sparseThreshold int
	footerText      string
}

// New creates a renderer. fetcher may be nil, in which case image tags are
// skipped entirely.
func New(l pkgLog.Logger, fetcher ImageFetcher, cfg Config) *Renderer {
	threshold := cfg.SparseThreshold
	if threshold <= 0 {
		threshold = DefaultSparseThreshold
	}
	footer := cfg.FooterText
	if footer == "" {
		footer = DefaultFooterText
	}

	return &Renderer{
		l:               l,
		fetcher:         fetcher,
		sparseThreshold: threshold,
		footerText:      footer,
	}
}

// Blocks assembles the full typed block sequence for a document: fixed
// header, markdown-derived content (or the line-by-line fallback for sparse
// documents), and the fixed footer last.
func (r *Renderer) Blocks(ctx context.Context, in Input) []Block {
	blocks := []Block{
		{Kind: BlockTitle, Text: "Travel Itinerary to " + in.Destination},
		{Kind: BlockSpacer},
		{Kind: BlockSection, Text: "Travel Dates: " + in.DateRange},
		{Kind: BlockSpacer},
	}

	blocks = append(blocks, r.parseMarkdown(ctx, in.Markdown)...)

	if len(blocks) <= r.sparseThreshold {
		for _, line := range strings.Split(in.Markdown, "\n") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			blocks = append(blocks, Block{Kind: BlockParagraph, Text: line})
		}
	}

	blocks = append(blocks, Block{Kind: BlockSpacer}, Block{Kind: BlockFooter, Text: r.footerText})

	return blocks
}

// Render produces the complete PDF blob. Individual image failures were
// already skipped during block assembly; any error here aborts the whole
// document, there is no partial output.
func (r *Renderer) Render(ctx context.Context, in Input) ([]byte, error) {
	return writePDF(r.Blocks(ctx, in))
}
