package images

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	pkgLog "globetrek/pkg/log"
	"globetrek/pkg/serpapi"
)

const (
	// DefaultCaption labels inline images whose alt text is empty.
	DefaultCaption = "Travel Image"

	// MaxSupplementaryImages bounds how many search results supplement an
	// itinerary that embeds no images of its own.
	MaxSupplementaryImages = 3
)

var imageRefPattern = regexp.MustCompile(`!\[(.*?)\]\((.*?)\)`)

// Ref is one image attached to an itinerary.
type Ref struct {
	URL     string `json:"url"`
	Caption string `json:"caption"`
}

// Extractor pulls inline image references out of itinerary markdown and,
// when the text carries none, supplements it with destination image search
// results.
type Extractor struct {
	l      pkgLog.Logger
	search serpapi.ISearch
}

// New creates an extractor. search may be nil, in which case no
// supplementary images are looked up.
func New(l pkgLog.Logger, search serpapi.ISearch) *Extractor {
	return &Extractor{l: l, search: search}
}

// Extract strips every inline image reference from text and returns the
// cleaned text plus the collected refs. When the text has no inline images,
// the destination is used for a single image search and up to three results
// are returned as supplementary refs with the text unchanged.
func (e *Extractor) Extract(ctx context.Context, text, destination string) (string, []Ref) {
	matches := imageRefPattern.FindAllStringSubmatch(text, -1)

	if len(matches) == 0 {
		return text, e.supplement(ctx, destination)
	}

	var refs []Ref
	cleaned := text
	for _, m := range matches {
		full, alt, url := m[0], m[1], m[2]
		if url == "" {
			continue
		}

		cleaned = strings.Replace(cleaned, full, "", 1)

		caption := strings.TrimSpace(alt)
		if caption == "" {
			caption = DefaultCaption
		}
		refs = append(refs, Ref{URL: url, Caption: caption})
	}

	return cleaned, refs
}

func (e *Extractor) supplement(ctx context.Context, destination string) []Ref {
	if e.search == nil || destination == "" {
		return nil
	}

	query := destination + " travel attractions"
	results, err := e.search.SearchImages(ctx, query)
	if err != nil {
		e.l.Warnf(ctx, "images: supplementary search for %q failed: %v", destination, err)
		return nil
	}

	var refs []Ref
	for i, r := range results {
		if i >= MaxSupplementaryImages {
			break
		}
		url := r.URL()
		if url == "" {
			continue
		}
		refs = append(refs, Ref{
			URL:     url,
			Caption: fmt.Sprintf("%s attraction %d", destination, i+1),
		})
	}
	return refs
}
