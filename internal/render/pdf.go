package render

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

const (
	pageMarginPt = 40
	lineHeightPt = 16
)

// writePDF lays the block sequence out on A4 pages. Any error aborts the
// whole document.
func writePDF(blocks []Block) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(pageMarginPt, pageMarginPt, pageMarginPt)
	pdf.SetAutoPageBreak(true, pageMarginPt)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pageWidth, _ := pdf.GetPageSize()
	contentWidth := pageWidth - 2*pageMarginPt

	for i, block := range blocks {
		switch block.Kind {
		case BlockSpacer:
			pdf.Ln(lineHeightPt)

		case BlockTitle:
			pdf.SetFont("Helvetica", "B", 20)
			pdf.SetTextColor(0, 0, 0)
			pdf.MultiCell(contentWidth, 26, tr(block.Text), "", "L", false)
			pdf.Ln(8)

		case BlockSection:
			pdf.SetFont("Helvetica", "B", 14)
			pdf.SetTextColor(74, 134, 232)
			pdf.MultiCell(contentWidth, 20, tr(block.Text), "", "L", false)
			pdf.SetTextColor(0, 0, 0)
			pdf.Ln(4)

		case BlockDay:
			pdf.SetFont("Helvetica", "B", 12)
			pdf.SetTextColor(0, 0, 0)
			pdf.SetFillColor(235, 235, 235)
			pdf.MultiCell(contentWidth, 18, tr(block.Text), "", "L", true)
			pdf.Ln(4)

		case BlockParagraph:
			pdf.SetFont("Helvetica", "", 11)
			pdf.SetTextColor(0, 0, 0)
			pdf.MultiCell(contentWidth, lineHeightPt, tr(block.Text), "", "L", false)
			pdf.Ln(2)

		case BlockBullet:
			pdf.SetFont("Helvetica", "", 11)
			pdf.SetTextColor(0, 0, 0)
			pdf.SetX(pageMarginPt + 14)
			pdf.MultiCell(contentWidth-14, lineHeightPt, tr("• "+block.Text), "", "L", false)

		case BlockImage:
			if block.Image == nil {
				continue
			}
			name := fmt.Sprintf("img-%d", i)
			opts := fpdf.ImageOptions{ImageType: block.Image.Format}
			pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(block.Image.Data))
			pdf.ImageOptions(name, pageMarginPt, pdf.GetY(), block.Image.Width, block.Image.Height, true, opts, 0, "")
			pdf.Ln(8)

		case BlockFooter:
			pdf.SetFont("Helvetica", "I", 9)
			pdf.SetTextColor(128, 128, 128)
			pdf.MultiCell(contentWidth, 14, tr(block.Text), "", "C", false)
		}

		if pdf.Err() {
			return nil, fmt.Errorf("failed to write pdf: %w", pdf.Error())
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write pdf: %w", err)
	}
	return buf.Bytes(), nil
}
