package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-flight-board/internal/adapter"
	"github.com/MKhiriev/go-flight-board/internal/config"
	"github.com/MKhiriev/go-flight-board/internal/handler"
	"github.com/MKhiriev/go-flight-board/internal/logger"
	"github.com/MKhiriev/go-flight-board/internal/server"
	"github.com/MKhiriev/go-flight-board/internal/service"
	"github.com/MKhiriev/go-flight-board/internal/store"
	"github.com/MKhiriev/go-flight-board/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("go-flight-board")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Bool("database", cfg.Storage.DB.DSN != "").
		Str("flights_base_url", cfg.Adapter.FlightsBaseURL).
		Bool("flights_api_key", cfg.Adapter.FlightsAPIKey != "").
		Dur("token_duration", cfg.App.TokenDuration).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	provider, err := adapter.NewHTTPFlightProvider(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating flight provider")
	}

	services, err := service.NewServices(storages, provider, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
