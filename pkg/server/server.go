// Package server exposes the Telegram webhook and a health route over HTTP
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/raykavin/tickerbot/pkg/logger"
	tb "gopkg.in/tucnak/telebot.v2"
)

// HealthText is returned by GET /
const HealthText = "Ticker bot is running ✅"

const maxUpdateSize = 1 << 20

// UpdateProcessor handles one decoded update to completion
type UpdateProcessor interface {
	ProcessUpdate(update tb.Update)
}

// Server routes webhook calls to an UpdateProcessor
type Server struct {
	router    *http.ServeMux
	server    *http.Server
	processor UpdateProcessor
	log       logger.Logger
}

// NewServer creates a server listening on port with the webhook mounted at /<token>
func NewServer(port int, token string, processor UpdateProcessor, log logger.Logger) *Server {
	s := &Server{
		router:    http.NewServeMux(),
		processor: processor,
		log:       log,
	}
	s.routes(token)
	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) routes(token string) {
	s.router.HandleFunc("GET /{$}", s.handleHealth)
	s.router.HandleFunc("POST /"+token, s.handleWebhook)
}

// Handler returns the routing handler, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens until Shutdown is called
func (s *Server) Start() error {
	s.log.WithField("addr", s.server.Addr).Info("http server listening")
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, HealthText); err != nil {
		s.log.WithError(err).Error("failed to write health response")
	}
}

// handleWebhook answers 200 OK for every request, including malformed ones
func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	var update tb.Update
	if err := json.NewDecoder(io.LimitReader(r.Body, maxUpdateSize)).Decode(&update); err != nil {
		s.log.WithError(err).Warn("invalid update payload")
	} else {
		s.processor.ProcessUpdate(update)
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, "OK"); err != nil {
		s.log.WithError(err).Error("failed to write webhook response")
	}
}
