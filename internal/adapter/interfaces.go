// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the upstream flight-data provider.
//
// The primary abstraction is [FlightProvider], which decouples the flight
// service from the provider's HTTP API. The package ships an
// aviationstack-compatible HTTP implementation ([NewHTTPFlightProvider]).
//
// Every failed upstream exchange is reported as an [*UpstreamError], which
// matches [ErrUpstreamFailed] with [errors.Is] and carries the upstream HTTP
// status (0 when no response was received).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-flight-board/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/flight_provider_mock.go -package=mock

// FlightProvider fetches raw flight records from an upstream provider.
type FlightProvider interface {
	// FetchFlights returns the raw flights whose arrival airport
	// (for [models.Arrivals]) or departure airport (for [models.Departures])
	// equals query.Airport, in the order delivered by the provider.
	//
	// Returns [ErrProviderNotConfigured] without contacting the provider when
	// no access key is configured, and an [*UpstreamError] on any transport
	// failure, non-2xx response, error payload or undecodable body.
	// Requests are never retried.
	FetchFlights(ctx context.Context, query models.FlightQuery) ([]models.UpstreamFlight, error)
}
