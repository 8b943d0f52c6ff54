package grpc

import (
	"github.com/MKhiriev/go-flight-board/internal/logger"
	"github.com/MKhiriev/go-flight-board/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the name reported by the health service for the flight
// board API.
const ServiceName = "goflightboard.FlightBoard"

// Handler is the root gRPC transport handler.
//
// It exposes the standard grpc.health.v1.Health service so that load
// balancers and orchestrators can probe the process. A handler instance is
// created once at startup and shared by the gRPC server.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	health *health.Server

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] whose health service reports SERVING for
// both the overall server ("") and [ServiceName].
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		health:   hs,
		logger:   logger,
	}
}

// Register attaches every service of the handler to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(s, h.health)
}

// ServerOptions returns the interceptors the gRPC server must be built with.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(h.withTraceID, h.withLogging),
	}
}

// Shutdown switches every health status to NOT_SERVING so that probes fail
// while in-flight calls are drained.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
