package http

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-flight-board/internal/config"
	"github.com/MKhiriev/go-flight-board/internal/logger"
	"github.com/MKhiriev/go-flight-board/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()
	cfg := config.Server{
		AllowedOrigins: []string{"https://board.example.com"},
		RequestTimeout: 5 * time.Second,
	}

	h := NewHandler(svc, cfg, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
	assert.Equal(t, cfg.AllowedOrigins, h.allowedOrigins)
	assert.Equal(t, 5*time.Second, h.requestTimeout)
}

func TestInit_RegistersRoutes(t *testing.T) {
	router := NewHandler(&service.Services{}, config.Server{RequestTimeout: time.Second}, logger.Nop()).Init()

	registered := map[string][]string{}
	for _, route := range router.Routes() {
		for method := range route.Handlers {
			registered[route.Pattern] = append(registered[route.Pattern], method)
		}
	}

	assert.Equal(t, []string{"POST"}, registered["/register"])
	assert.Equal(t, []string{"POST"}, registered["/login"])
	assert.Equal(t, []string{"GET"}, registered["/version"])
	assert.Equal(t, []string{"GET"}, registered["/profile"])
	assert.Equal(t, []string{"GET"}, registered["/me"])
	assert.Equal(t, []string{"GET"}, registered["/flights"])
}
