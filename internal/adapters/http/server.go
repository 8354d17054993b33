// Package http bridges the editing surface to the execution host over
// HTTP: commands in via POST, events out via Server-Sent Events.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aretw0/motif/internal/logging"
	"github.com/aretw0/motif/internal/protocol"
	"github.com/aretw0/motif/pkg/domain"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server routes protocol traffic to a Host.
type Server struct {
	host   *protocol.Host
	hub    *Hub
	logger *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewHandler creates the HTTP handler for the host. The hub must be the
// same one wired into the host as its notifier, so notifications reach the
// event stream.
func NewHandler(host *protocol.Host, hub *Hub, opts ...Option) http.Handler {
	server := &Server{
		host:   host,
		hub:    hub,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(server)
	}

	r := chi.NewRouter()
	r.Post("/message", server.handleMessage)
	r.Get("/events", server.handleEvents)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// handleMessage accepts one protocol envelope.
//
// Commands are fire-and-forget for the surface: handler failures surface on
// the notification stream, and the response is 202 Accepted regardless.
// Only transport-level problems (malformed body, unknown type) and the
// declared-unsupported export get distinct statuses. load-frames is the
// one message answered with a body.
func (s *Server) handleMessage(w http.ResponseWriter, r *http.Request) {
	var env protocol.Envelope
	if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("message: invalid body", "err", err)
		return
	}

	event, err := s.host.Handle(r.Context(), env)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownMessage):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, domain.ErrUnsupported):
			http.Error(w, err.Error(), http.StatusNotImplemented)
		default:
			// Already notified; keep the command fire-and-forget.
			w.WriteHeader(http.StatusAccepted)
		}
		return
	}

	if event == nil {
		w.WriteHeader(http.StatusAccepted)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(event); err != nil {
		s.logger.Error("message: encode reply failed", "err", err)
	}
}

// handleEvents streams host events to the surface (SSE).
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	events, cancel := s.hub.Subscribe()
	defer cancel()

	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", event)
			flusher.Flush()
		}
	}
}
