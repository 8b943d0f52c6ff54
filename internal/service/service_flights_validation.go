package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-flight-board/internal/logger"
	"github.com/MKhiriev/go-flight-board/internal/validators"
	"github.com/MKhiriev/go-flight-board/models"
)

// flightValidationService is a decorator that normalises and validates
// flight queries before delegating to the wrapped FlightService.
type flightValidationService struct {
	inner     FlightService
	validator validators.Validator
	logger    *logger.Logger
}

// NewFlightValidationService returns a FlightServiceWrapper that rejects
// malformed queries with ErrInvalidFlightQuery before the inner service, and
// therefore the upstream provider, is reached.
func NewFlightValidationService(logger *logger.Logger) FlightServiceWrapper {
	return &flightValidationService{
		validator: validators.NewFlightQueryValidator(),
		logger:    logger,
	}
}

// Wrap returns a copy of the decorator bound to inner.
func (v *flightValidationService) Wrap(inner FlightService) FlightService {
	return &flightValidationService{
		inner:     inner,
		validator: v.validator,
		logger:    v.logger,
	}
}

// GetFlights trims and upper-cases the airport code, defaults an empty
// direction to arrivals and validates the result.
func (v *flightValidationService) GetFlights(ctx context.Context, query models.FlightQuery) (models.FlightBoard, error) {
	query = normalizeFlightQuery(query)

	if err := v.validator.Validate(ctx, query); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("airport", query.Airport).Msg("invalid flight query")
		return models.FlightBoard{}, fmt.Errorf("%w: %w", ErrInvalidFlightQuery, err)
	}

	return v.inner.GetFlights(ctx, query)
}

func normalizeFlightQuery(query models.FlightQuery) models.FlightQuery {
	query.Airport = strings.ToUpper(strings.TrimSpace(query.Airport))

	direction := models.FlightDirection(strings.ToLower(strings.TrimSpace(string(query.Direction))))
	if direction == "" {
		direction = models.Arrivals
	}
	query.Direction = direction

	return query
}
