package server

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gocommerce/catalog/pkg/config"
	"github.com/gocommerce/catalog/pkg/web"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"
)

func TestNewChiRouter_RequestIDAndRecovery(t *testing.T) {
	// given
	mux := NewChiRouter(slog.New(slog.NewTextHandler(io.Discard, nil)))
	var seen string
	mux.Get("/ok", func(w http.ResponseWriter, r *http.Request) {
		seen, _ = web.GetRequestID(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	mux.Get("/panic", func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	// when
	okRec := httptest.NewRecorder()
	mux.ServeHTTP(okRec, httptest.NewRequest(http.MethodGet, "/ok", nil))
	panicRec := httptest.NewRecorder()
	mux.ServeHTTP(panicRec, httptest.NewRequest(http.MethodGet, "/panic", nil))

	// then
	assert.Equal(t, http.StatusOK, okRec.Code)
	assert.NotEmpty(t, seen)
	assert.Equal(t, http.StatusInternalServerError, panicRec.Code)
}

func TestNewHTTPServer(t *testing.T) {
	cfg := config.HTTPConfig{Port: 8080}
	cfg.Timeout.Read = time.Second

	srv := NewHTTPServer(cfg, "catalog", http.NotFoundHandler())

	assert.Equal(t, ":8080", srv.Addr)
	assert.Equal(t, time.Second, srv.ReadTimeout)
	assert.Equal(t, http.DefaultMaxHeaderBytes, srv.MaxHeaderBytes)
}

func TestNewGRPCServer_ServesHealth(t *testing.T) {
	// given
	lis := bufconn.Listen(1024 * 1024)
	registered := false
	srv := NewGRPCServer(config.GrpcServerConfig{ReflectionEnabled: true}, func(*grpc.Server) { registered = true })
	go func() {
		_ = srv.Serve(lis)
	}()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) { return lis.Dial() }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	// when
	res, err := healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{})

	// then
	require.NoError(t, err)
	assert.True(t, registered)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, res.Status)
}
