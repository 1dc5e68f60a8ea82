package amadeus

import "context"

// IAmadeus defines the flight-search boundary.
// Implementations are safe for concurrent use.
type IAmadeus interface {
	// SearchAirports searches airports by keyword or city name.
	SearchAirports(ctx context.Context, keyword string) ([]Location, error)

	// SearchFlights searches flight offers between two airports on given dates.
	SearchFlights(ctx context.Context, params SearchFlightsParams) ([]FlightOffer, error)

	// GetAirportInfo returns details for a single airport by its location code.
	GetAirportInfo(ctx context.Context, code string) (*Location, error)
}
