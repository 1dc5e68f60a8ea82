package serpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

const DefaultBaseURL = "https://serpapi.com"

// ISearch defines the image-search boundary.
type ISearch interface {
	// SearchImages runs a Google image search for the given query.
	SearchImages(ctx context.Context, query string) ([]ImageResult, error)
}

// Client is the SerpAPI client. Calls are rate limited since SerpAPI meters
// searches per account.
type Client struct {
	http    *resty.Client
	apiKey  string
	limiter *rate.Limiter
}

// New creates a SerpAPI client. searchesPerMinute <= 0 disables rate limiting.
func New(apiKey, baseURL string, searchesPerMinute int) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("serpapi API key is required")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if searchesPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(searchesPerMinute)/60.0), searchesPerMinute)
	}

	return &Client{
		http:    resty.New().SetBaseURL(baseURL),
		apiKey:  apiKey,
		limiter: limiter,
	}, nil
}

// SearchImages runs an image search (tbm=isch) and returns the result list.
func (c *Client) SearchImages(ctx context.Context, query string) ([]ImageResult, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	var result searchResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":       query,
			"tbm":     "isch",
			"api_key": c.apiKey,
		}).
		SetResult(&result).
		Get("/search")
	if err != nil {
		return nil, fmt.Errorf("failed to call SerpAPI: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("serpapi error %d: %s", resp.StatusCode(), resp.String())
	}

	return result.ImagesResults, nil
}
