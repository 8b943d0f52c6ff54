package service

import (
	"context"

	"github.com/MKhiriev/go-flight-board/models"
)

//go:generate mockgen -destination=../mock/service_mock.go -package=mock github.com/MKhiriev/go-flight-board/internal/service AuthService,TokenService,PasswordHasher,FlightService,AppInfoService

// AuthService registers and authenticates users and resolves token
// identities.
type AuthService interface {
	// RegisterUser validates credentials, rejects a taken username, stores the
	// user with a hashed password and issues a token for it.
	RegisterUser(ctx context.Context, credentials models.Credentials) (models.AuthResult, error)

	// Login verifies credentials and issues a fresh token. Unknown usernames
	// and wrong passwords both fail with ErrInvalidCredentials.
	Login(ctx context.Context, credentials models.Credentials) (models.AuthResult, error)

	// ParseToken verifies a raw token and returns its claims.
	ParseToken(ctx context.Context, tokenString string) (models.Claims, error)

	// Profile resolves the stored user behind verified claims.
	Profile(ctx context.Context, claims models.Claims) (models.PublicUser, error)
}

// TokenService signs and verifies identity tokens.
type TokenService interface {
	Issue(ctx context.Context, user models.User) (models.Token, error)
	Verify(ctx context.Context, tokenString string) (models.Claims, error)
}

// PasswordHasher hashes passwords and verifies them against stored hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) (bool, error)
}

// FlightService builds the flight board of an airport.
type FlightService interface {
	GetFlights(ctx context.Context, query models.FlightQuery) (models.FlightBoard, error)
}

// FlightServiceWrapper defines middleware composition for FlightService.
// Implementations wrap an existing FlightService to add behavior such as
// validation.
type FlightServiceWrapper interface {
	Wrap(FlightService) FlightService
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
