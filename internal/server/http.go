// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veilpost Labs

package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/veilpost/veilpost-go/internal/config"
	"github.com/veilpost/veilpost-go/internal/logger"
)

// httpServer wraps the standard library server with the lifecycle hooks the
// runner expects.
type httpServer struct {
	server *http.Server
	logger *logger.Logger
}

func newHTTPServer(router http.Handler, cfg *config.ServerConfig, log *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:         cfg.HTTPAddress,
			Handler:      router,
			ReadTimeout:  cfg.RequestTimeout,
			WriteTimeout: cfg.RequestTimeout,
		},
		logger: log,
	}
}

// RunServer serves until Shutdown is called. ErrServerClosed marks a clean
// stop, anything else is a real listen failure.
func (s *httpServer) RunServer() {
	s.logger.Info().Str("address", s.server.Addr).Msg("HTTP server listening")

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Error().Err(err).Msg("HTTP server stopped unexpectedly")
	}
}

// Shutdown stops accepting new connections and waits for in-flight requests
// to finish.
func (s *httpServer) Shutdown() {
	if err := s.server.Shutdown(context.Background()); err != nil {
		s.logger.Error().Err(err).Msg("error during HTTP server shutdown")
		return
	}

	s.logger.Info().Msg("HTTP server stopped")
}
