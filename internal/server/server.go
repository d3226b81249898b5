// AngelaMos | 2026
// server.go

package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/grocerly/backoffice/internal/config"
	"github.com/grocerly/backoffice/internal/health"
)

type Config struct {
	ServerConfig  config.ServerConfig
	HealthHandler *health.Handler
	Logger        *slog.Logger
}

// Server owns the chi router and the http.Server lifecycle. Shutdown
// flips readiness first and waits out a drain delay so load balancers
// stop routing before in-flight requests are cut off.
type Server struct {
	router *chi.Mux
	http   *http.Server
	health *health.Handler
	logger *slog.Logger
	cfg    config.ServerConfig
}

func New(cfg Config) *Server {
	router := chi.NewRouter()

	return &Server{
		router: router,
		http: &http.Server{
			Addr: fmt.Sprintf(
				"%s:%d", cfg.ServerConfig.Host, cfg.ServerConfig.Port,
			),
			Handler:      router,
			ReadTimeout:  cfg.ServerConfig.ReadTimeout,
			WriteTimeout: cfg.ServerConfig.WriteTimeout,
			IdleTimeout:  cfg.ServerConfig.IdleTimeout,
		},
		health: cfg.HealthHandler,
		logger: cfg.Logger,
		cfg:    cfg.ServerConfig,
	}
}

func (s *Server) Router() *chi.Mux {
	return s.router
}

func (s *Server) Start() error {
	s.logger.Info("http server listening", "addr", s.http.Addr)

	if err := s.http.ListenAndServe(); err != nil &&
		!errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context, drainDelay time.Duration) error {
	if s.health != nil {
		s.health.SetReady(false)
	}

	s.logger.Info("draining connections", "delay", drainDelay)
	select {
	case <-time.After(drainDelay):
	case <-ctx.Done():
	}

	if s.health != nil {
		s.health.SetShutdown(true)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	s.logger.Info("http server stopped")
	return nil
}
