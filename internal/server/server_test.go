package server

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/MKhiriev/go-flight-board/internal/config"
	"github.com/MKhiriev/go-flight-board/internal/handler"
	"github.com/MKhiriev/go-flight-board/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func TestNewServer_NoAddresses(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_GRPCListensOnStartup(t *testing.T) {
	cfg := config.Server{GRPCAddress: "127.0.0.1:0"}

	handlers, err := handler.NewHandlers(nil, cfg, logger.Nop())
	require.NoError(t, err)

	s, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)

	srv := s.(*server)
	require.NotNil(t, srv.gRPCServer)
	assert.Nil(t, srv.httpServer)

	go srv.gRPCServer.RunServer()
	defer srv.Shutdown()

	conn, err := grpc.NewClient(srv.gRPCServer.gRPCNetListener.Addr().String(),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	resp, err := healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
}

func TestNewServer_GRPCAddressInUse(t *testing.T) {
	first := config.Server{GRPCAddress: "127.0.0.1:0"}
	handlers, err := handler.NewHandlers(nil, first, logger.Nop())
	require.NoError(t, err)

	s, err := NewServer(handlers, first, logger.Nop())
	require.NoError(t, err)
	defer s.Shutdown()

	busy := config.Server{GRPCAddress: s.(*server).gRPCServer.gRPCNetListener.Addr().String()}
	_, err = NewServer(handlers, busy, logger.Nop())
	assert.Error(t, err)
}

func TestRun_StopsWhenTransportExits(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	cfg := config.Server{HTTPAddress: busy.Addr().String()}
	handlers, err := handler.NewHandlers(nil, cfg, logger.Nop())
	require.NoError(t, err)

	s, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- s.(*server).run() }()

	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after the HTTP listener failed")
	}
}

func TestRun_NoServers(t *testing.T) {
	s := &server{logger: logger.Nop()}

	assert.ErrorIs(t, s.run(), errNoServersAreCreated)
}
