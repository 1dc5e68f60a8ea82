package tools

import (
	"context"
	"fmt"

	"globetrek/pkg/amadeus"
)

// stringParam reads a string parameter, empty when absent or mistyped.
func stringParam(params map[string]interface{}, key string) string {
	if v, ok := params[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// intParam reads an integer parameter; LLM-produced JSON numbers arrive as float64.
func intParam(params map[string]interface{}, key string) int {
	switch v := params[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}

// SearchAirports lets the agent resolve airport codes by city or keyword.
type SearchAirports struct {
	client amadeus.IAmadeus
}

// NewSearchAirports creates the search_airports tool.
func NewSearchAirports(client amadeus.IAmadeus) *SearchAirports {
	return &SearchAirports{client: client}
}

func (t *SearchAirports) Name() string { return "search_airports" }

func (t *SearchAirports) Description() string {
	return "Search for airports by keyword or city name. Returns matching airports with their IATA codes and details."
}

func (t *SearchAirports) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"keyword": map[string]interface{}{
				"type":        "string",
				"description": "The airport name, city name, or keyword to search for",
			},
		},
		"required": []string{"keyword"},
	}
}

func (t *SearchAirports) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	keyword := stringParam(params, "keyword")
	if keyword == "" {
		return nil, fmt.Errorf("keyword is required")
	}
	return t.client.SearchAirports(ctx, keyword)
}

// SearchFlights lets the agent look up flight offers between two airports.
type SearchFlights struct {
	client amadeus.IAmadeus
}

// NewSearchFlights creates the search_flights tool.
func NewSearchFlights(client amadeus.IAmadeus) *SearchFlights {
	return &SearchFlights{client: client}
}

func (t *SearchFlights) Name() string { return "search_flights" }

func (t *SearchFlights) Description() string {
	return "Search for flights between origin and destination airports on given dates. Returns available flights with prices, times, and airlines."
}

func (t *SearchFlights) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"origin": map[string]interface{}{
				"type":        "string",
				"description": "The 3-letter IATA code of the departure airport",
			},
			"destination": map[string]interface{}{
				"type":        "string",
				"description": "The 3-letter IATA code of the arrival airport",
			},
			"departure_date": map[string]interface{}{
				"type":        "string",
				"description": "The departure date in YYYY-MM-DD format",
			},
			"return_date": map[string]interface{}{
				"type":        "string",
				"description": "The return date in YYYY-MM-DD format for round trips (optional)",
			},
			"adults": map[string]interface{}{
				"type":        "integer",
				"description": "Number of adult passengers (default: 1)",
			},
		},
		"required": []string{"origin", "destination", "departure_date"},
	}
}

func (t *SearchFlights) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	p := amadeus.SearchFlightsParams{
		Origin:        stringParam(params, "origin"),
		Destination:   stringParam(params, "destination"),
		DepartureDate: stringParam(params, "departure_date"),
		ReturnDate:    stringParam(params, "return_date"),
		Adults:        intParam(params, "adults"),
	}
	if p.Origin == "" || p.Destination == "" || p.DepartureDate == "" {
		return nil, fmt.Errorf("origin, destination and departure_date are required")
	}
	return t.client.SearchFlights(ctx, p)
}

// GetAirportInfo lets the agent fetch details for a single airport.
type GetAirportInfo struct {
	client amadeus.IAmadeus
}

// NewGetAirportInfo creates the get_airport_info tool.
func NewGetAirportInfo(client amadeus.IAmadeus) *GetAirportInfo {
	return &GetAirportInfo{client: client}
}

func (t *GetAirportInfo) Name() string { return "get_airport_info" }

func (t *GetAirportInfo) Description() string {
	return "Get detailed information about a specific airport by its 3-letter IATA code."
}

func (t *GetAirportInfo) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"airport_code": map[string]interface{}{
				"type":        "string",
				"description": "The 3-letter IATA code of the airport",
			},
		},
		"required": []string{"airport_code"},
	}
}

func (t *GetAirportInfo) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	code := stringParam(params, "airport_code")
	if code == "" {
		return nil, fmt.Errorf("airport_code is required")
	}
	return t.client.GetAirportInfo(ctx, code)
}
