package amadeus

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-resty/resty/v2"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const DefaultBaseURL = "https://test.api.amadeus.com"

// ErrCredentialsMissing is returned by every operation when the client was
// constructed without credentials. Construction itself never fails: absent
// credentials degrade the feature, they do not break startup.
var ErrCredentialsMissing = errors.New("Amadeus client credentials are missing")

// Client is the Amadeus self-service API client. Authentication uses the
// OAuth2 client-credentials flow; tokens are fetched and refreshed lazily by
// the underlying token source.
type Client struct {
	http     *resty.Client
	disabled bool
}

// New creates an Amadeus client. With empty credentials the client is created
// in degraded mode and every call returns ErrCredentialsMissing.
func New(clientID, clientSecret, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	if clientID == "" || clientSecret == "" {
		return &Client{disabled: true}
	}

	conf := clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     baseURL + "/v1/security/oauth2/token",
		AuthStyle:    oauth2.AuthStyleInParams,
	}

	httpClient := conf.Client(context.Background())

	return &Client{
		http: resty.NewWithClient(httpClient).SetBaseURL(baseURL),
	}
}

// SearchAirports searches airports by keyword or city name.
func (c *Client) SearchAirports(ctx context.Context, keyword string) ([]Location, error) {
	if c.disabled {
		return nil, ErrCredentialsMissing
	}

	var result locationsResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"keyword": keyword,
			"subType": "AIRPORT",
		}).
		SetResult(&result).
		Get("/v1/reference-data/locations")
	if err != nil {
		return nil, fmt.Errorf("failed to call Amadeus locations API: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("amadeus locations API error %d: %s", resp.StatusCode(), resp.String())
	}

	return result.Data, nil
}

// SearchFlights searches flight offers between origin and destination.
func (c *Client) SearchFlights(ctx context.Context, params SearchFlightsParams) ([]FlightOffer, error) {
	if c.disabled {
		return nil, ErrCredentialsMissing
	}

	adults := params.Adults
	if adults <= 0 {
		adults = 1
	}

	query := map[string]string{
		"originLocationCode":      params.Origin,
		"destinationLocationCode": params.Destination,
		"departureDate":           params.DepartureDate,
		"adults":                  strconv.Itoa(adults),
	}
	if params.ReturnDate != "" {
		query["returnDate"] = params.ReturnDate
	}

	var result flightOffersResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(query).
		SetResult(&result).
		Get("/v2/shopping/flight-offers")
	if err != nil {
		return nil, fmt.Errorf("failed to call Amadeus flight offers API: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("amadeus flight offers API error %d: %s", resp.StatusCode(), resp.String())
	}

	return result.Data, nil
}

// GetAirportInfo returns detailed information about a specific airport.
func (c *Client) GetAirportInfo(ctx context.Context, code string) (*Location, error) {
	if c.disabled {
		return nil, ErrCredentialsMissing
	}

	var result locationResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/v1/reference-data/locations/" + code)
	if err != nil {
		return nil, fmt.Errorf("failed to call Amadeus location API: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("amadeus location API error %d: %s", resp.StatusCode(), resp.String())
	}

	return &result.Data, nil
}
