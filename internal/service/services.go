package service

import (
	"github.com/MKhiriev/go-flight-board/internal/adapter"
	"github.com/MKhiriev/go-flight-board/internal/config"
	"github.com/MKhiriev/go-flight-board/internal/logger"
	"github.com/MKhiriev/go-flight-board/internal/store"
	"github.com/MKhiriev/go-flight-board/internal/utils"
)

type Services struct {
	AuthService    AuthService
	FlightService  FlightService
	AppInfoService AppInfoService
}

// NewServices wires the service layer on top of the given storages and
// flight provider. The flight service is always wrapped with query
// validation.
func NewServices(storages *store.Storages, provider adapter.FlightProvider, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	tokenService := NewTokenService(cfg.App)
	authService := NewAuthService(storages.UserRepository, utils.NewPasswordHasher(), tokenService, logger)

	flightService := NewFlightValidationService(logger).Wrap(NewFlightService(provider, logger))

	return &Services{
		AuthService:    authService,
		FlightService:  flightService,
		AppInfoService: appInfoService,
	}, nil
}
