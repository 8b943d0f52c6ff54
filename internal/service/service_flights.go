package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/go-flight-board/internal/adapter"
	"github.com/MKhiriev/go-flight-board/internal/logger"
	"github.com/MKhiriev/go-flight-board/models"
)

// MaxFlightsOnBoard is the maximum number of flights returned by one query.
const MaxFlightsOnBoard = 5

// upstreamLocalTimeLayout is accepted for timestamps sent without a zone
// offset. Such values are read as UTC.
const upstreamLocalTimeLayout = "2006-01-02T15:04:05"

type flightService struct {
	provider adapter.FlightProvider

	// now returns the moment the board is built; flights before it are dropped.
	now func() time.Time

	logger *logger.Logger
}

// NewFlightService constructs the core flight board pipeline. The query is
// expected to be normalised and validated already; see
// [NewFlightValidationService].
func NewFlightService(provider adapter.FlightProvider, logger *logger.Logger) FlightService {
	return &flightService{
		provider: provider,
		now:      time.Now,
		logger:   logger,
	}
}

// rankedFlight pairs a normalised flight with the instant it is ranked by.
// The instant is never exposed to callers.
type rankedFlight struct {
	flight  models.NormalizedFlight
	instant time.Time
}

// GetFlights fetches the flights of query.Airport, keeps those not earlier
// than now, orders them by their estimated (or scheduled) time and returns at
// most [MaxFlightsOnBoard] of them.
//
// Returns ErrUpstreamNotConfigured when the provider has no access key and an
// error matching adapter.ErrUpstreamFailed when the provider call fails.
// An empty board is a successful result.
func (s *flightService) GetFlights(ctx context.Context, query models.FlightQuery) (models.FlightBoard, error) {
	log := logger.FromContext(ctx)

	records, err := s.provider.FetchFlights(ctx, query)
	if errors.Is(err, adapter.ErrProviderNotConfigured) {
		log.Error().Msg("flight provider access key is missing")
		return models.FlightBoard{}, ErrUpstreamNotConfigured
	}
	if err != nil {
		log.Err(err).Str("airport", query.Airport).Msg("flight provider request failed")
		return models.FlightBoard{}, fmt.Errorf("fetching flights: %w", err)
	}

	now := s.now()
	ranked := make([]rankedFlight, 0, len(records))
	for i := range records {
		flight, instant, ok := normalizeFlight(&records[i], query.Direction)
		if !ok || instant.Before(now) {
			continue
		}
		ranked = append(ranked, rankedFlight{flight: flight, instant: instant})
	}

	slices.SortStableFunc(ranked, func(a, b rankedFlight) int {
		return a.instant.Compare(b.instant)
	})

	if len(ranked) > MaxFlightsOnBoard {
		ranked = ranked[:MaxFlightsOnBoard]
	}

	flights := make([]models.NormalizedFlight, 0, len(ranked))
	for _, r := range ranked {
		flights = append(flights, r.flight)
	}

	log.Debug().
		Str("airport", query.Airport).
		Str("type", string(query.Direction)).
		Int("received", len(records)).
		Int("returned", len(flights)).
		Msg("flight board built")

	return models.FlightBoard{
		Airport: query.Airport,
		Type:    query.Direction,
		Count:   len(flights),
		Flights: flights,
	}, nil
}

// normalizeFlight maps a raw record to its canonical shape. The boolean result
// is false when the record has no parsable time on the side selected by
// direction.
func normalizeFlight(raw *models.UpstreamFlight, direction models.FlightDirection) (models.NormalizedFlight, time.Time, bool) {
	side := raw.GetArrival()
	if direction == models.Departures {
		side = raw.GetDeparture()
	}

	scheduled := side.GetScheduled()
	estimated := side.GetEstimated()

	flight := models.NormalizedFlight{
		FlightIATA:    raw.GetFlight().GetIATA(),
		FlightNumber:  raw.GetFlight().GetNumber(),
		Airline:       raw.GetAirline().GetName(),
		Origin:        normalizeEndpoint(raw.GetDeparture()),
		Destination:   normalizeEndpoint(raw.GetArrival()),
		ScheduledTime: scheduled,
		EstimatedTime: estimated,
		Status:        raw.GetFlightStatus(),
	}

	effective := scheduled
	if estimated != nil && *estimated != "" {
		effective = estimated
	}

	instant, ok := parseUpstreamTime(effective)
	return flight, instant, ok
}

func normalizeEndpoint(e *models.UpstreamEndpoint) models.FlightEndpoint {
	return models.FlightEndpoint{
		IATA:     e.GetIATA(),
		ICAO:     e.GetICAO(),
		Terminal: e.GetTerminal(),
		Gate:     e.GetGate(),
	}
}

func parseUpstreamTime(value *string) (time.Time, bool) {
	if value == nil || *value == "" {
		return time.Time{}, false
	}

	if t, err := time.Parse(time.RFC3339, *value); err == nil {
		return t, true
	}
	if t, err := time.ParseInLocation(upstreamLocalTimeLayout, *value, time.UTC); err == nil {
		return t, true
	}

	return time.Time{}, false
}
