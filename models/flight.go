package models

// FlightDirection selects which side of the schedule is queried for an
// airport: flights arriving to it or departing from it.
type FlightDirection string

const (
	// Arrivals queries flights whose arrival airport is the requested one.
	Arrivals FlightDirection = "arrivals"

	// Departures queries flights whose departure airport is the requested one.
	Departures FlightDirection = "departures"
)

// FlightQuery holds the caller input of the flight board.
type FlightQuery struct {
	// Airport is the IATA code of the airport.
	Airport string

	// Direction is either [Arrivals] or [Departures].
	// An empty value is treated as [Arrivals].
	Direction FlightDirection
}

// ─────────────────────────────────────────────
// Upstream provider payload
// ─────────────────────────────────────────────

// UpstreamFlightsResponse is the body returned by the upstream
// GET /flights endpoint. Error is populated by the provider instead of Data
// when the request was rejected.
type UpstreamFlightsResponse struct {
	Data  []UpstreamFlight       `json:"data"`
	Error *UpstreamErrorResponse `json:"error,omitempty"`
}

// UpstreamErrorResponse is the error object embedded by the provider into
// rejected responses.
type UpstreamErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// UpstreamFlight is a raw flight record as delivered by the provider.
// Every field is optional: a nil pointer means the provider did not send it.
type UpstreamFlight struct {
	FlightDate   *string             `json:"flight_date"`
	FlightStatus *string             `json:"flight_status"`
	Departure    *UpstreamEndpoint   `json:"departure"`
	Arrival      *UpstreamEndpoint   `json:"arrival"`
	Airline      *UpstreamAirline    `json:"airline"`
	Flight       *UpstreamFlightCode `json:"flight"`
}

// GetDeparture returns the departure side, or nil if absent.
func (f *UpstreamFlight) GetDeparture() *UpstreamEndpoint {
	if f == nil {
		return nil
	}
	return f.Departure
}

// GetArrival returns the arrival side, or nil if absent.
func (f *UpstreamFlight) GetArrival() *UpstreamEndpoint {
	if f == nil {
		return nil
	}
	return f.Arrival
}

// GetAirline returns the operating airline, or nil if absent.
func (f *UpstreamFlight) GetAirline() *UpstreamAirline {
	if f == nil {
		return nil
	}
	return f.Airline
}

// GetFlight returns the flight designators, or nil if absent.
func (f *UpstreamFlight) GetFlight() *UpstreamFlightCode {
	if f == nil {
		return nil
	}
	return f.Flight
}

// GetFlightStatus returns the provider status, or nil if absent.
func (f *UpstreamFlight) GetFlightStatus() *string {
	if f == nil {
		return nil
	}
	return f.FlightStatus
}

// UpstreamEndpoint is one side (departure or arrival) of a raw flight.
type UpstreamEndpoint struct {
	Airport   *string `json:"airport"`
	Timezone  *string `json:"timezone"`
	IATA      *string `json:"iata"`
	ICAO      *string `json:"icao"`
	Terminal  *string `json:"terminal"`
	Gate      *string `json:"gate"`
	Delay     *int    `json:"delay"`
	Scheduled *string `json:"scheduled"`
	Estimated *string `json:"estimated"`
	Actual    *string `json:"actual"`
}

// GetIATA returns the airport IATA code, or nil if absent.
func (e *UpstreamEndpoint) GetIATA() *string {
	if e == nil {
		return nil
	}
	return e.IATA
}

// GetICAO returns the airport ICAO code, or nil if absent.
func (e *UpstreamEndpoint) GetICAO() *string {
	if e == nil {
		return nil
	}
	return e.ICAO
}

// GetTerminal returns the terminal, or nil if absent.
func (e *UpstreamEndpoint) GetTerminal() *string {
	if e == nil {
		return nil
	}
	return e.Terminal
}

// GetGate returns the gate, or nil if absent.
func (e *UpstreamEndpoint) GetGate() *string {
	if e == nil {
		return nil
	}
	return e.Gate
}

// GetScheduled returns the scheduled timestamp, or nil if absent.
func (e *UpstreamEndpoint) GetScheduled() *string {
	if e == nil {
		return nil
	}
	return e.Scheduled
}

// GetEstimated returns the estimated timestamp, or nil if absent.
func (e *UpstreamEndpoint) GetEstimated() *string {
	if e == nil {
		return nil
	}
	return e.Estimated
}

// UpstreamAirline identifies the operating airline of a raw flight.
type UpstreamAirline struct {
	Name *string `json:"name"`
	IATA *string `json:"iata"`
	ICAO *string `json:"icao"`
}

// GetName returns the airline name, or nil if absent.
func (a *UpstreamAirline) GetName() *string {
	if a == nil {
		return nil
	}
	return a.Name
}

// UpstreamFlightCode holds the flight designators of a raw flight.
type UpstreamFlightCode struct {
	Number *string `json:"number"`
	IATA   *string `json:"iata"`
	ICAO   *string `json:"icao"`
}

// GetNumber returns the flight number, or nil if absent.
func (c *UpstreamFlightCode) GetNumber() *string {
	if c == nil {
		return nil
	}
	return c.Number
}

// GetIATA returns the IATA flight designator, or nil if absent.
func (c *UpstreamFlightCode) GetIATA() *string {
	if c == nil {
		return nil
	}
	return c.IATA
}

// ─────────────────────────────────────────────
// Normalized flight board
// ─────────────────────────────────────────────

// NormalizedFlight is the canonical, fully-shaped flight record returned to
// callers. Values the provider did not send are serialized as null.
type NormalizedFlight struct {
	FlightIATA    *string        `json:"flightIata"`
	FlightNumber  *string        `json:"flightNumber"`
	Airline       *string        `json:"airline"`
	Origin        FlightEndpoint `json:"origin"`
	Destination   FlightEndpoint `json:"destination"`
	ScheduledTime *string        `json:"scheduledTime"`
	EstimatedTime *string        `json:"estimatedTime"`
	Status        *string        `json:"status"`
}

// FlightEndpoint is the canonical description of one side of a flight.
type FlightEndpoint struct {
	IATA     *string `json:"iata"`
	ICAO     *string `json:"icao"`
	Terminal *string `json:"terminal"`
	Gate     *string `json:"gate"`
}

// FlightBoard is the result of a flight board query.
type FlightBoard struct {
	Airport string             `json:"airport"`
	Type    FlightDirection    `json:"type"`
	Count   int                `json:"count"`
	Flights []NormalizedFlight `json:"flights"`
}
