package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-flight-board/internal/adapter"
	"github.com/MKhiriev/go-flight-board/internal/logger"
	"github.com/MKhiriev/go-flight-board/internal/mock"
	"github.com/MKhiriev/go-flight-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ptr[T any](v T) *T {
	return &v
}

func newTestFlightSvc(t *testing.T, ctrl *gomock.Controller, now time.Time) (*flightService, *mock.MockFlightProvider) {
	t.Helper()
	provider := mock.NewMockFlightProvider(ctrl)

	svc := NewFlightService(provider, logger.Nop()).(*flightService)
	svc.now = func() time.Time { return now }

	return svc, provider
}

// departing returns a raw record whose departure side carries the given times.
func departing(flightIATA, scheduled, estimated string) models.UpstreamFlight {
	dep := &models.UpstreamEndpoint{IATA: ptr("JFK")}
	if scheduled != "" {
		dep.Scheduled = ptr(scheduled)
	}
	if estimated != "" {
		dep.Estimated = ptr(estimated)
	}
	return models.UpstreamFlight{
		Departure: dep,
		Arrival:   &models.UpstreamEndpoint{IATA: ptr("LAX")},
		Flight:    &models.UpstreamFlightCode{IATA: ptr(flightIATA)},
	}
}

func flightCodes(board models.FlightBoard) []string {
	codes := make([]string, 0, len(board.Flights))
	for _, f := range board.Flights {
		codes = append(codes, *f.FlightIATA)
	}
	return codes
}

var departuresFromJFK = models.FlightQuery{Airport: "JFK", Direction: models.Departures}

func TestFlightService_ScheduledTimeAgainstNow(t *testing.T) {
	const scheduled = "2025-01-01T10:00:00Z"
	records := []models.UpstreamFlight{departing("AA100", scheduled, "")}

	tests := []struct {
		name     string
		now      time.Time
		included bool
	}{
		{name: "now before scheduled", now: time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC), included: true},
		{name: "now equals scheduled", now: time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC), included: true},
		{name: "now after scheduled", now: time.Date(2025, 1, 1, 11, 0, 0, 0, time.UTC), included: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, provider := newTestFlightSvc(t, ctrl, tt.now)
			provider.EXPECT().FetchFlights(gomock.Any(), departuresFromJFK).Return(records, nil)

			board, err := svc.GetFlights(context.Background(), departuresFromJFK)
			require.NoError(t, err)

			assert.Equal(t, "JFK", board.Airport)
			assert.Equal(t, models.Departures, board.Type)
			if !tt.included {
				assert.Empty(t, board.Flights)
				assert.Equal(t, 0, board.Count)
				return
			}
			require.Len(t, board.Flights, 1)
			assert.Equal(t, 1, board.Count)
			assert.Equal(t, scheduled, *board.Flights[0].ScheduledTime)
			assert.Nil(t, board.Flights[0].EstimatedTime)
		})
	}
}

func TestFlightService_EstimatedTimeTakesPrecedence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 1, 1, 10, 30, 0, 0, time.UTC)
	svc, provider := newTestFlightSvc(t, ctrl, now)

	records := []models.UpstreamFlight{
		// scheduled in the past but delayed into the future
		departing("DELAYED", "2025-01-01T10:00:00Z", "2025-01-01T12:00:00Z"),
		// an empty estimate falls back to scheduled
		departing("EMPTYEST", "2025-01-01T11:00:00Z", ""),
	}
	records[1].Departure.Estimated = ptr("")

	provider.EXPECT().FetchFlights(gomock.Any(), departuresFromJFK).Return(records, nil)

	board, err := svc.GetFlights(context.Background(), departuresFromJFK)
	require.NoError(t, err)
	assert.Equal(t, []string{"EMPTYEST", "DELAYED"}, flightCodes(board))
}

func TestFlightService_SortsStablyAndTruncates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	svc, provider := newTestFlightSvc(t, ctrl, now)

	records := []models.UpstreamFlight{
		departing("F7", "2025-06-01T07:00:00+00:00", ""),
		departing("F3a", "2025-06-01T03:00:00Z", ""),
		departing("PAST", "2025-05-31T23:00:00Z", ""),
		departing("F3b", "2025-06-01T05:00:00+02:00", ""), // same instant as F3a
		departing("NOTIME", "", ""),
		departing("BAD", "tomorrow", ""),
		departing("F1", "2025-06-01T01:00:00", ""), // no zone, read as UTC
		departing("F5", "2025-06-01T05:00:00Z", ""),
		departing("F2", "2025-06-01T02:00:00Z", ""),
		departing("F6", "2025-06-01T06:00:00Z", ""),
	}

	provider.EXPECT().FetchFlights(gomock.Any(), departuresFromJFK).Return(records, nil)

	board, err := svc.GetFlights(context.Background(), departuresFromJFK)
	require.NoError(t, err)
	assert.Equal(t, []string{"F1", "F2", "F3a", "F3b", "F5"}, flightCodes(board))
	assert.Equal(t, MaxFlightsOnBoard, board.Count)
}

func TestFlightService_ArrivalsUseArrivalSide(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	svc, provider := newTestFlightSvc(t, ctrl, now)

	query := models.FlightQuery{Airport: "LAX", Direction: models.Arrivals}
	records := []models.UpstreamFlight{{
		FlightStatus: ptr("active"),
		Airline:      &models.UpstreamAirline{Name: ptr("American Airlines")},
		Flight:       &models.UpstreamFlightCode{IATA: ptr("AA100"), Number: ptr("100")},
		Departure: &models.UpstreamEndpoint{
			IATA: ptr("JFK"), ICAO: ptr("KJFK"), Terminal: ptr("8"), Gate: ptr("B2"),
			Scheduled: ptr("2025-01-01T08:00:00Z"),
		},
		Arrival: &models.UpstreamEndpoint{
			IATA: ptr("LAX"), ICAO: ptr("KLAX"),
			Scheduled: ptr("2025-01-01T14:00:00Z"),
			Estimated: ptr("2025-01-01T14:20:00Z"),
		},
	}}

	provider.EXPECT().FetchFlights(gomock.Any(), query).Return(records, nil)

	board, err := svc.GetFlights(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, board.Flights, 1)

	f := board.Flights[0]
	assert.Equal(t, "AA100", *f.FlightIATA)
	assert.Equal(t, "100", *f.FlightNumber)
	assert.Equal(t, "American Airlines", *f.Airline)
	assert.Equal(t, "active", *f.Status)
	assert.Equal(t, "2025-01-01T14:00:00Z", *f.ScheduledTime)
	assert.Equal(t, "2025-01-01T14:20:00Z", *f.EstimatedTime)
	assert.Equal(t, models.FlightEndpoint{IATA: ptr("JFK"), ICAO: ptr("KJFK"), Terminal: ptr("8"), Gate: ptr("B2")}, f.Origin)
	assert.Equal(t, "LAX", *f.Destination.IATA)
	assert.Nil(t, f.Destination.Gate)
}

func TestFlightService_MissingFieldsBecomeNull(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	svc, provider := newTestFlightSvc(t, ctrl, now)

	query := models.FlightQuery{Airport: "LAX", Direction: models.Arrivals}
	records := []models.UpstreamFlight{
		{Arrival: &models.UpstreamEndpoint{Scheduled: ptr("2025-01-02T00:00:00Z")}},
		{}, // no sides at all: dropped, never panics
	}

	provider.EXPECT().FetchFlights(gomock.Any(), query).Return(records, nil)

	board, err := svc.GetFlights(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, board.Flights, 1)

	f := board.Flights[0]
	assert.Nil(t, f.FlightIATA)
	assert.Nil(t, f.FlightNumber)
	assert.Nil(t, f.Airline)
	assert.Nil(t, f.Status)
	assert.Nil(t, f.EstimatedTime)
	assert.Equal(t, models.FlightEndpoint{}, f.Origin)
}

func TestFlightService_EmptyUpstreamIsSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, provider := newTestFlightSvc(t, ctrl, time.Now())
	provider.EXPECT().FetchFlights(gomock.Any(), departuresFromJFK).Return(nil, nil)

	board, err := svc.GetFlights(context.Background(), departuresFromJFK)
	require.NoError(t, err)
	assert.NotNil(t, board.Flights)
	assert.Empty(t, board.Flights)
	assert.Equal(t, 0, board.Count)
}

func TestFlightService_ProviderErrors(t *testing.T) {
	upstream := &adapter.UpstreamError{StatusCode: 503, Message: "maintenance"}

	tests := []struct {
		name        string
		providerErr error
		wantErr     error
		wantStatus  int
	}{
		{name: "not configured", providerErr: adapter.ErrProviderNotConfigured, wantErr: ErrUpstreamNotConfigured},
		{name: "upstream failure", providerErr: upstream, wantErr: adapter.ErrUpstreamFailed, wantStatus: 503},
		{name: "wrapped upstream failure", providerErr: fmt.Errorf("fetch: %w", upstream), wantErr: adapter.ErrUpstreamFailed, wantStatus: 503},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, provider := newTestFlightSvc(t, ctrl, time.Now())
			provider.EXPECT().FetchFlights(gomock.Any(), departuresFromJFK).Return(nil, tt.providerErr)

			_, err := svc.GetFlights(context.Background(), departuresFromJFK)
			require.ErrorIs(t, err, tt.wantErr)

			if tt.wantStatus != 0 {
				var upErr *adapter.UpstreamError
				require.True(t, errors.As(err, &upErr))
				assert.Equal(t, tt.wantStatus, upErr.StatusCode)
			}
		})
	}
}
