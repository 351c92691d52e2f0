package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gocommerce/catalog/pkg/config"
	"github.com/gocommerce/catalog/pkg/web"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// NewHTTPServer builds a server on cfg.Addr() whose requests are traced as spans named operation.
// A zero MaxHeaderBytes falls back to net/http's default.
func NewHTTPServer(cfg config.HTTPConfig, operation string, handler http.Handler) *http.Server {
	maxHeaderBytes := cfg.MaxHeaderBytes
	if maxHeaderBytes <= 0 {
		maxHeaderBytes = http.DefaultMaxHeaderBytes
	}
	return &http.Server{
		Addr:              cfg.Addr(),
		Handler:           otelhttp.NewHandler(handler, operation),
		ReadTimeout:       cfg.Timeout.Read,
		WriteTimeout:      cfg.Timeout.Write,
		IdleTimeout:       cfg.Timeout.Idle,
		ReadHeaderTimeout: cfg.Timeout.ReadHeader,
		MaxHeaderBytes:    maxHeaderBytes,
	}
}

// NewChiRouter returns a router that tags each request with an id, logs it and recovers panics.
func NewChiRouter(logger *slog.Logger) *chi.Mux {
	mux := chi.NewRouter()
	mux.Use(
		middleware.RequestID,
		web.RequestIDInjector,
		web.StructuredLogger(logger),
		web.Recoverer(logger),
	)
	return mux
}
