package amadeus

// Location is an airport or city entry from the reference-data API.
type Location struct {
	ID       string  `json:"id,omitempty"`
	SubType  string  `json:"subType,omitempty"`
	Name     string  `json:"name,omitempty"`
	IATACode string  `json:"iataCode,omitempty"`
	Address  Address `json:"address,omitempty"`
}

// Address holds the city/country of a location.
type Address struct {
	CityName    string `json:"cityName,omitempty"`
	CountryName string `json:"countryName,omitempty"`
}

// FlightOffer is a single bookable offer from the flight-offers search.
type FlightOffer struct {
	ID          string      `json:"id"`
	Itineraries []Itinerary `json:"itineraries"`
	Price       Price       `json:"price"`
}

// Itinerary is one direction of travel within an offer.
type Itinerary struct {
	Duration string    `json:"duration"`
	Segments []Segment `json:"segments"`
}

// Segment is a single flight leg.
type Segment struct {
	Departure   FlightEndpoint `json:"departure"`
	Arrival     FlightEndpoint `json:"arrival"`
	CarrierCode string         `json:"carrierCode"`
	Number      string         `json:"number"`
}

// FlightEndpoint is the airport and time of a departure or arrival.
type FlightEndpoint struct {
	IATACode string `json:"iataCode"`
	At       string `json:"at"`
}

// Price is the total offer price.
type Price struct {
	Currency string `json:"currency"`
	Total    string `json:"total"`
}

// SearchFlightsParams are the inputs for a flight-offers search.
// ReturnDate empty means one-way; Adults <= 0 defaults to 1.
type SearchFlightsParams struct {
	Origin        string
	Destination   string
	DepartureDate string // YYYY-MM-DD
	ReturnDate    string // YYYY-MM-DD, optional
	Adults        int
}

type locationsResponse struct {
	Data []Location `json:"data"`
}

type locationResponse struct {
	Data Location `json:"data"`
}

type flightOffersResponse struct {
	Data []FlightOffer `json:"data"`
}
