package duckduckgo

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

const DefaultBaseURL = "https://api.duckduckgo.com"

// Client queries the DuckDuckGo Instant Answer API. No API key is required,
// which is why this backend is always available to the agent.
type Client struct {
	http *resty.Client
}

// New creates a DuckDuckGo client.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{http: resty.New().SetBaseURL(baseURL)}
}

// Answer is a condensed instant-answer result.
type Answer struct {
	Heading  string   `json:"heading"`
	Abstract string   `json:"abstract"`
	URL      string   `json:"url"`
	Related  []string `json:"related,omitempty"`
}

type instantAnswerResponse struct {
	Heading       string `json:"Heading"`
	AbstractText  string `json:"AbstractText"`
	AbstractURL   string `json:"AbstractURL"`
	RelatedTopics []struct {
		Text string `json:"Text"`
	} `json:"RelatedTopics"`
}

// Search runs an instant-answer query and condenses the response.
func (c *Client) Search(ctx context.Context, query string) (*Answer, error) {
	var result instantAnswerResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":           query,
			"format":      "json",
			"no_redirect": "1",
			"no_html":     "1",
		}).
		SetResult(&result).
		Get("/")
	if err != nil {
		return nil, fmt.Errorf("failed to call DuckDuckGo API: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("duckduckgo error %d: %s", resp.StatusCode(), resp.String())
	}

	answer := &Answer{
		Heading:  result.Heading,
		Abstract: result.AbstractText,
		URL:      result.AbstractURL,
	}
	for i, topic := range result.RelatedTopics {
		if i >= 5 || topic.Text == "" {
			break
		}
		answer.Related = append(answer.Related, topic.Text)
	}

	return answer, nil
}
