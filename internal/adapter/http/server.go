package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/couchcryptid/site-marker-service/internal/domain"
	"github.com/couchcryptid/site-marker-service/internal/observability"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// maxBodyBytes caps the size of a POST /v1/markers request body.
const maxBodyBytes = 1 << 20

// Server exposes health, readiness, metrics, and on-demand marker resolution.
type Server struct {
	httpServer *http.Server
	maxSites   int
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewServer creates an HTTP server with /healthz, /readyz, /metrics, and
// POST /v1/markers routes. maxSites bounds the number of sites per request.
func NewServer(addr string, ready sharedobs.ReadinessChecker, maxSites int, metrics *observability.Metrics, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		maxSites: maxSites,
		metrics:  metrics,
		logger:   logger,
	}

	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(ready))
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("POST /v1/markers", s.handleMarkers)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

// handleMarkers resolves a single site document (JSON object) into a marker,
// or an array of site documents into an array of markers in input order.
func (s *Server) handleMarkers(w http.ResponseWriter, r *http.Request) {
	var body json.RawMessage
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&body); err != nil {
		s.reject(w, http.StatusBadRequest, "decode", fmt.Errorf("invalid request body: %w", err))
		return
	}

	body = bytes.TrimSpace(body)
	if len(body) > 0 && body[0] == '[' {
		var docs []json.RawMessage
		if err := json.Unmarshal(body, &docs); err != nil {
			s.reject(w, http.StatusBadRequest, "decode", fmt.Errorf("invalid request body: %w", err))
			return
		}
		if len(docs) > s.maxSites {
			s.reject(w, http.StatusRequestEntityTooLarge, "too_many",
				fmt.Errorf("request has %d sites, limit is %d", len(docs), s.maxSites))
			return
		}

		markers := make([]domain.Marker, 0, len(docs))
		for i, doc := range docs {
			marker, err := resolve(doc)
			if err != nil {
				s.reject(w, http.StatusBadRequest, "decode", fmt.Errorf("site %d: %w", i, err))
				return
			}
			markers = append(markers, marker)
		}
		s.metrics.HTTPSitesResolved.Add(float64(len(markers)))
		writeJSON(w, http.StatusOK, markers)
		return
	}

	if len(body) == 0 || body[0] != '{' {
		s.reject(w, http.StatusBadRequest, "decode", errors.New("request body must be a JSON object or array"))
		return
	}

	marker, err := resolve(body)
	if err != nil {
		s.reject(w, http.StatusBadRequest, "decode", err)
		return
	}
	s.metrics.HTTPSitesResolved.Inc()
	writeJSON(w, http.StatusOK, marker)
}

func (s *Server) reject(w http.ResponseWriter, status int, reason string, err error) {
	s.metrics.HTTPRequestErrors.WithLabelValues(reason).Inc()
	s.logger.Warn("marker request rejected", "reason", reason, "error", err)
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// resolve decodes one site document. Documents without an id get the same
// generated id the pipeline would assign.
func resolve(doc json.RawMessage) (domain.Marker, error) {
	site, err := domain.ParseRawEvent(domain.RawEvent{Value: doc})
	if err != nil {
		return domain.Marker{}, err
	}
	return domain.ResolveMarker(site), nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
