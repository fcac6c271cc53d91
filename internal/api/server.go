// Package api is the HTTP chat transport. It owns sessions and latency
// simulation; the query engine itself stays a pure function.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	processquery "supplychain-assistant/internal/assistant/process-query"
	"supplychain-assistant/internal/common/errors"
	"supplychain-assistant/internal/common/logger"
	"supplychain-assistant/internal/common/metrics"
	"supplychain-assistant/internal/session"
	"supplychain-assistant/pkg/registry"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 64 << 10

type QueryProcessor interface {
	Process(ctx context.Context, q processquery.Query) processquery.Result
}

type Options struct {
	Processor QueryProcessor
	Store     session.Store
	Registry  *registry.CapabilityRegistry
	Logger    logger.Logger
	// Latency delays every query response. Zero disables it.
	Latency time.Duration
	// Ready backs /ready. Nil means always ready.
	Ready func(ctx context.Context) error
	// MetricsHandler serves /metrics. Defaults to promhttp.Handler().
	MetricsHandler http.Handler
}

type Server struct {
	processor QueryProcessor
	store     session.Store
	registry  *registry.CapabilityRegistry
	logger    logger.Logger
	latency   time.Duration
	ready     func(ctx context.Context) error
	metrics   http.Handler
	locks     *sessionLocks
}

func NewServer(opts Options) *Server {
	s := &Server{
		processor: opts.Processor,
		store:     opts.Store,
		registry:  opts.Registry,
		logger:    opts.Logger,
		latency:   opts.Latency,
		ready:     opts.Ready,
		metrics:   opts.MetricsHandler,
		locks:     newSessionLocks(),
	}
	if s.registry == nil {
		s.registry = registry.Default()
	}
	if s.logger == nil {
		s.logger = logger.NewNoOpLogger()
	}
	if s.metrics == nil {
		s.metrics = promhttp.Handler()
	}
	return s
}

// Handler returns the routed API with panic recovery applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	s.route(mux, "POST /api/sessions", s.handleCreateSession)
	s.route(mux, "DELETE /api/sessions/{id}", s.handleResetSession)
	s.route(mux, "GET /api/sessions/{id}/context", s.handleGetContext)
	s.route(mux, "POST /api/query", s.withLatency(s.handleQuery))
	s.route(mux, "GET /api/capabilities", s.handleCapabilities)
	s.route(mux, "GET /health", s.handleHealth)
	s.route(mux, "GET /ready", s.handleReady)
	mux.Handle("GET /metrics", s.metrics)

	return s.recoverer(mux)
}

// route registers h and records one request metric and log line per call.
func (s *Server) route(mux *http.ServeMux, pattern string, h http.HandlerFunc) {
	mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		h(rec, r)

		metrics.HTTPRequests.WithLabelValues(pattern, strconv.Itoa(rec.status)).Inc()
		s.logger.Debug("request served", map[string]interface{}{
			"route":       pattern,
			"status":      rec.status,
			"duration_ms": time.Since(start).Milliseconds(),
		})
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (r *statusRecorder) WriteHeader(code int) {
	if !r.wroteHeader {
		r.status = code
		r.wroteHeader = true
	}
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	r.wroteHeader = true
	return r.ResponseWriter.Write(b)
}

// recoverer answers a panic with 500 QUERY_PROCESSING_FAILED. Panics are
// defects and are never retried.
func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rv := recover()
			if rv == nil {
				return
			}
			if rv == http.ErrAbortHandler {
				panic(rv)
			}
			s.logger.Error("panic while serving request", map[string]interface{}{
				"method": r.Method,
				"path":   r.URL.Path,
				"panic":  rv,
			})
			metrics.HTTPRequests.WithLabelValues("panic", strconv.Itoa(http.StatusInternalServerError)).Inc()
			writeError(w, errors.NewQueryProcessingFailedError("internal failure while answering the query"))
		}()
		next.ServeHTTP(w, r)
	})
}

// withLatency holds the response back by the configured delay, giving up
// early if the client goes away.
func (s *Server) withLatency(next http.HandlerFunc) http.HandlerFunc {
	if s.latency <= 0 {
		return next
	}
	return func(w http.ResponseWriter, r *http.Request) {
		timer := time.NewTimer(s.latency)
		defer timer.Stop()
		select {
		case <-timer.C:
			next(w, r)
		case <-r.Context().Done():
			writeError(w, errors.NewInvalidRequestError("request cancelled"))
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

type errorBody struct {
	Error *errors.StandardError `json:"error"`
}

func writeError(w http.ResponseWriter, err *errors.StandardError) {
	writeJSON(w, errors.HTTPStatus(err.Code), errorBody{Error: err})
}
