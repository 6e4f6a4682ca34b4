package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"clearance/config"
	otelMocks "clearance/infras/otel/mocks"
	"clearance/internal/handlers/catalog"
	transport "clearance/transport/http"
	"clearance/transport/http/middleware"
	"clearance/transport/http/router"

	"github.com/stretchr/testify/assert"
)

func newServer() *transport.HTTP {
	cfg := &config.Config{}
	cfg.App.Name = "clearance"

	r := router.New(router.DomainHandlers{Catalog: catalog.New()})

	return transport.New(cfg, r, middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, nil))
}

func TestHTTP_ServeHTTP(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		wantCode int
	}{
		{name: "health", target: "/health", wantCode: http.StatusOK},
		{name: "catalog", target: "/v1/catalog", wantCode: http.StatusOK},
		{name: "unknown route", target: "/v1/ships", wantCode: http.StatusNotFound},
	}

	server := newServer()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}

	assert.Equal(t, transport.ServerStateReady, server.State())
}
