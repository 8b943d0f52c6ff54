package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-flight-board/internal/logger"
	"github.com/MKhiriev/go-flight-board/internal/service"
	"github.com/MKhiriev/go-flight-board/models"
)

// ─────────────────────────────────────────────
// Mocks
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerFn   func(ctx context.Context, credentials models.Credentials) (models.AuthResult, error)
	loginFn      func(ctx context.Context, credentials models.Credentials) (models.AuthResult, error)
	parseTokenFn func(ctx context.Context, tokenString string) (models.Claims, error)
	profileFn    func(ctx context.Context, claims models.Claims) (models.PublicUser, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, credentials models.Credentials) (models.AuthResult, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, credentials)
	}
	return models.AuthResult{}, nil
}

func (m *mockAuthService) Login(ctx context.Context, credentials models.Credentials) (models.AuthResult, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, credentials)
	}
	return models.AuthResult{}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Claims, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Claims{}, service.ErrTokenIsExpiredOrInvalid
}

func (m *mockAuthService) Profile(ctx context.Context, claims models.Claims) (models.PublicUser, error) {
	if m.profileFn != nil {
		return m.profileFn(ctx, claims)
	}
	return models.PublicUser{}, nil
}

type mockFlightService struct {
	getFlightsFn func(ctx context.Context, query models.FlightQuery) (models.FlightBoard, error)
}

func (m *mockFlightService) GetFlights(ctx context.Context, query models.FlightQuery) (models.FlightBoard, error) {
	if m.getFlightsFn != nil {
		return m.getFlightsFn(ctx, query)
	}
	return models.FlightBoard{Airport: query.Airport, Type: query.Direction, Flights: []models.NormalizedFlight{}}, nil
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestHandler(services *service.Services) *Handler {
	return &Handler{
		services: services,
		logger:   logger.Nop(),
	}
}

// injectNopLogger puts a nop logger into the request context the way
// withTraceID does.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}

// validClaims returns claims that the mocked ParseToken accepts.
func validClaims() models.Claims {
	claims := models.Claims{Username: "alice"}
	claims.Subject = "user-1"
	return claims
}

// acceptToken returns a ParseToken stub that accepts only "good-token".
func acceptToken(ctx context.Context, tokenString string) (models.Claims, error) {
	if tokenString != "good-token" {
		return models.Claims{}, service.ErrTokenIsExpiredOrInvalid
	}
	return validClaims(), nil
}
