// Package web serves the lesson and matching API as JSON over HTTP.
// Binds to localhost by default; there is no auth.
package web

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/jladdjr/typey-type/internal/domain/lesson"
	"github.com/jladdjr/typey-type/internal/domain/lookup"
	"github.com/jladdjr/typey-type/internal/domain/material"
	"github.com/jladdjr/typey-type/internal/ports"
)

// Service is what the handlers need from the application.
type Service interface {
	Compile(ctx context.Context, raw string) ports.Lesson
	Revise(ctx context.Context, categories ...ports.Category) (ports.Lesson, error)
	Match(expected, typed string, s material.Settings) (material.Display, error)
	Validate(raw string) lesson.Validation
	MetWords(categories ...ports.Category) ([]ports.MetWord, error)
	RecordTyped(words ...string) error
	Settings() (ports.UserSettings, error)
	SaveSettings(s ports.UserSettings) error
}

// DictionaryStatus reports the dictionary load state for health checks
// and reloads the dictionaries on request.
type DictionaryStatus interface {
	Current() *lookup.Dictionary
	LastError() error
	Reload(ctx context.Context) error
}

// Server serves the JSON API over HTTP.
type Server struct {
	svc      Service
	dicts    DictionaryStatus
	logger   *slog.Logger
	listener net.Listener
	httpSrv  *http.Server
	started  time.Time
	stopOnce sync.Once

	portFilePath string // ~/.typey/run/http.port
}

// NewServer creates an HTTP server. The portFilePath, when set, is where
// the bound address is written for discovery.
func NewServer(svc Service, dicts DictionaryStatus, logger *slog.Logger, portFilePath string) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		svc:          svc,
		dicts:        dicts,
		logger:       logger,
		portFilePath: portFilePath,
		started:      time.Now(),
	}
}

// Handler returns the API routes wrapped in request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("POST /api/lesson", s.handleLesson)
	mux.HandleFunc("GET /api/revise", s.handleRevise)
	mux.HandleFunc("POST /api/match", s.handleMatch)
	mux.HandleFunc("POST /api/validate", s.handleValidate)
	mux.HandleFunc("GET /api/met-words", s.handleMetWords)
	mux.HandleFunc("POST /api/met-words", s.handleRecordTyped)
	mux.HandleFunc("GET /api/settings", s.handleGetSettings)
	mux.HandleFunc("PUT /api/settings", s.handlePutSettings)
	mux.HandleFunc("POST /api/dictionaries/reload", s.handleReload)
	return logRequests(s.logger, mux)
}

// Start begins listening on addr (host:port; port 0 picks a free one).
func (s *Server) Start(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	s.listener = ln
	s.started = time.Now()
	s.httpSrv = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if s.portFilePath != "" {
		if err := os.WriteFile(s.portFilePath, []byte(s.Addr()), 0644); err != nil {
			s.logger.Warn("write port file", "path", s.portFilePath, "err", err)
		}
	}

	go func() {
		if err := s.httpSrv.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.logger.Error("http server stopped", "err", err)
		}
	}()
	return nil
}

// Stop gracefully shuts down the HTTP server. Idempotent.
func (s *Server) Stop() {
	s.stopOnce.Do(func() {
		if s.httpSrv != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			s.httpSrv.Shutdown(ctx)
		}
		if s.portFilePath != "" {
			os.Remove(s.portFilePath)
		}
	})
}

// Addr returns the bound address, or "" before Start.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// URL returns the API base URL.
func (s *Server) URL() string {
	return "http://" + s.Addr()
}
