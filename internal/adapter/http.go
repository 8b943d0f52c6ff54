package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-flight-board/internal/config"
	"github.com/MKhiriev/go-flight-board/internal/logger"
	"github.com/MKhiriev/go-flight-board/internal/utils"
	"github.com/MKhiriev/go-flight-board/models"
)

const (
	flightsPath = "/flights"

	accessKeyParam     = "access_key"
	arrivalIATAParam   = "arr_iata"
	departureIATAParam = "dep_iata"
)

type httpFlightProvider struct {
	client *utils.HTTPClient
	apiKey string

	logger *logger.Logger
}

// NewHTTPFlightProvider constructs an aviationstack-compatible implementation
// of [FlightProvider]. It normalises and validates cfg.FlightsBaseURL and
// configures the HTTP client with the resolved base URL and cfg.RequestTimeout.
//
// An empty cfg.FlightsAPIKey is accepted; FetchFlights then reports
// [ErrProviderNotConfigured].
func NewHTTPFlightProvider(cfg config.Adapter, logger *logger.Logger) (FlightProvider, error) {
	baseURL, err := normalizeBaseURL(cfg.FlightsBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid flights base url: %w", err)
	}

	if cfg.FlightsAPIKey == "" {
		logger.Warn().Msg("flights API key is not configured: flight queries will fail")
	}

	return &httpFlightProvider{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		apiKey: cfg.FlightsAPIKey,
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// FetchFlights implements [FlightProvider]. It sends
// GET {base}/flights?access_key=KEY&arr_iata=CODE (or dep_iata for
// departures) and decodes the provider payload.
func (p *httpFlightProvider) FetchFlights(ctx context.Context, query models.FlightQuery) ([]models.UpstreamFlight, error) {
	log := logger.FromContext(ctx)

	if p.apiKey == "" {
		return nil, ErrProviderNotConfigured
	}

	airportParam := arrivalIATAParam
	if query.Direction == models.Departures {
		airportParam = departureIATAParam
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParam(accessKeyParam, p.apiKey).
		SetQueryParam(airportParam, query.Airport).
		Get(flightsPath)
	if err != nil {
		err = redactURLError(err)
		log.Err(err).Str("func", "*httpFlightProvider.FetchFlights").Msg("flights request failed")
		return nil, &UpstreamError{Err: fmt.Errorf("flights request: %w", err)}
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "*httpFlightProvider.FetchFlights").Msg("flights request rejected")
		return nil, err
	}

	var payload models.UpstreamFlightsResponse
	if err = json.Unmarshal(resp.Body(), &payload); err != nil {
		log.Err(err).Str("func", "*httpFlightProvider.FetchFlights").Msg("error decoding flights")
		return nil, &UpstreamError{StatusCode: resp.StatusCode(), Err: fmt.Errorf("decode flights: %w", err)}
	}
	if err = mapPayloadError(resp.StatusCode(), payload.Error); err != nil {
		log.Err(err).Str("func", "*httpFlightProvider.FetchFlights").Msg("flights payload carries an error")
		return nil, err
	}

	log.Debug().
		Str("airport", query.Airport).
		Str("direction", string(query.Direction)).
		Int("count", len(payload.Data)).
		Msg("flights fetched from provider")

	return payload.Data, nil
}

// redactURLError drops the query string (which carries the access key) from
// a *url.Error so it can be logged.
func redactURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if u, parseErr := url.Parse(urlErr.URL); parseErr == nil {
			u.RawQuery = ""
			urlErr.URL = u.String()
		}
	}
	return err
}
