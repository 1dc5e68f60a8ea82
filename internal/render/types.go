package render

import "context"

// BlockKind identifies the output style of a document block.
type BlockKind int

const (
	BlockSpacer BlockKind = iota
	BlockTitle
	BlockSection
	BlockDay
	BlockParagraph
	BlockBullet
	BlockImage
	BlockFooter
)

// String returns the block kind name, mostly for test output.
func (k BlockKind) String() string {
	switch k {
	case BlockSpacer:
		return "spacer"
	case BlockTitle:
		return "title"
	case BlockSection:
		return "section"
	case BlockDay:
		return "day"
	case BlockParagraph:
		return "paragraph"
	case BlockBullet:
		return "bullet"
	case BlockImage:
		return "image"
	case BlockFooter:
		return "footer"
	default:
		return "unknown"
	}
}

// Block is one typed element of the rendered document.
type Block struct {
	Kind  BlockKind
	Text  string
	Image *ImageData
}

// ImageData is a fetched, pre-sized image ready for embedding.
type ImageData struct {
	Data   []byte
	Format string // fpdf image type: PNG, JPG, GIF
	Width  float64
	Height float64
	Alt    string
}

// ImageFetcher retrieves a remote image and computes its display size.
type ImageFetcher interface {
	Fetch(ctx context.Context, url string) (*ImageData, error)
}

// Input describes one document to render.
type Input struct {
	Markdown    string
	Destination string
	DateRange   string
}
