package render

import (
	"bytes"
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// parseMarkdown converts markdown to HTML and walks the recognized tags in
// document order, producing one block per tag. List wrappers (ul/ol) yield
// nothing. Image fetch or decode failures skip that image only.
func (r *Renderer) parseMarkdown(ctx context.Context, source string) []Block {
	var html bytes.Buffer
	if err := markdown.Convert([]byte(source), &html); err != nil {
		r.l.Warnf(ctx, "render: markdown conversion failed: %v", err)
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(&html)
	if err != nil {
		r.l.Warnf(ctx, "render: html parse failed: %v", err)
		return nil
	}

	var blocks []Block

	doc.Find("h1, h2, h3, p, li, img").Each(func(_ int, sel *goquery.Selection) {
		switch goquery.NodeName(sel) {
		case "h1":
			blocks = append(blocks, Block{Kind: BlockTitle, Text: text(sel)})
		case "h2":
			blocks = append(blocks, Block{Kind: BlockSection, Text: text(sel)})
		case "h3":
			blocks = append(blocks, Block{Kind: BlockDay, Text: text(sel)})
		case "p":
			// Loose list items wrap their text in a p the li already covers.
			if sel.Parent().Is("li") {
				return
			}
			if t := text(sel); t != "" {
				blocks = append(blocks, Block{Kind: BlockParagraph, Text: t})
			}
		case "li":
			blocks = append(blocks, Block{Kind: BlockBullet, Text: text(sel)})
		case "img":
			if img := r.fetchImage(ctx, sel); img != nil {
				blocks = append(blocks, Block{Kind: BlockImage, Image: img})
			}
		}
	})

	return blocks
}

func text(sel *goquery.Selection) string {
	return strings.TrimSpace(sel.Text())
}

// fetchImage resolves an img tag to embeddable image data, or nil when the
// image cannot be used (missing fetcher, bad src, fetch/decode failure).
func (r *Renderer) fetchImage(ctx context.Context, sel *goquery.Selection) *ImageData {
	if r.fetcher == nil {
		return nil
	}

	src, ok := sel.Attr("src")
	if !ok || src == "" {
		return nil
	}

	img, err := r.fetcher.Fetch(ctx, src)
	if err != nil {
		r.l.Warnf(ctx, "render: skipping image %s: %v", src, err)
		return nil
	}

	img.Alt = sel.AttrOr("alt", "")
	return img
}
