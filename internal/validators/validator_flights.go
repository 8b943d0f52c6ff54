// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/go-flight-board/models"
)

const (
	// FieldAirport targets the airport code of a flight query.
	FieldAirport = "airport"

	// FieldDirection targets the arrivals/departures selector of a flight query.
	FieldDirection = "direction"
)

// maxAirportCodeLength bounds the airport code. IATA codes have three
// letters and ICAO codes four.
const maxAirportCodeLength = 4

var allowedDirections = []models.FlightDirection{
	models.Arrivals,
	models.Departures,
}

type FlightQueryValidator struct {
}

func NewFlightQueryValidator() Validator {
	return &FlightQueryValidator{}
}

func (v *FlightQueryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.FlightQuery:
		return v.validateFlightQuery(ctx, value, fields...)
	case *models.FlightQuery:
		return v.validateFlightQuery(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func isValidDirection(d models.FlightDirection) bool {
	for _, allowed := range allowedDirections {
		if d == allowed {
			return true
		}
	}
	return false
}

func isAlphanumeric(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}

func (v *FlightQueryValidator) validateFlightQuery(_ context.Context, query models.FlightQuery, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAirport, FieldDirection}
	}

	for _, f := range fields {
		switch f {
		case FieldAirport:
			if query.Airport == "" {
				return ErrEmptyAirport
			}
			if len(query.Airport) > maxAirportCodeLength || !isAlphanumeric(query.Airport) {
				return ErrInvalidAirport
			}
		case FieldDirection:
			if !isValidDirection(query.Direction) {
				return ErrInvalidType
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
