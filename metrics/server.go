package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server serves Prometheus metrics over HTTP.
type Server struct {
	httpServer *http.Server
}

// Status describes the scanner for /health, e.g. "scan=running generation=2".
type Status func() string

// NewServer creates the metrics HTTP server for a scan session: metrics at
// /metrics and the scanner status at /health on addr (e.g. ":9090").
// status may be nil.
func NewServer(addr string, gatherer prometheus.Gatherer, status Status) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           Handler(gatherer, status),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Handler returns the mux served by Server.
func Handler(gatherer prometheus.Gatherer, status Status) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	}))
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		line := "ok"
		if status != nil {
			line += " " + status()
		}
		fmt.Fprintln(w, line) //nolint:errcheck // best-effort health response
	})
	return mux
}

// Start serves in the background. The returned channel carries a listen
// or serve failure and is closed once the server stops.
func (s *Server) Start() <-chan error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("metrics server: %w", err)
		}
		close(errCh)
	}()
	return errCh
}

// Shutdown stops the server after the scan, draining scrapes until ctx ends.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
