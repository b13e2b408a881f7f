// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veilpost Labs

package server

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/veilpost/veilpost-go/internal/config"
	"github.com/veilpost/veilpost-go/internal/logger"
)

// devServer drives the HTTP transport and reacts to termination signals.
type devServer struct {
	http   *httpServer
	logger *logger.Logger
}

// NewServer wires the router into an HTTP server bound to the configured
// address. Returns an error when the configuration names no address.
func NewServer(router http.Handler, cfg *config.ServerConfig, log *logger.Logger) (Server, error) {
	if cfg == nil || cfg.HTTPAddress == "" {
		return nil, errNoAddressConfigured
	}

	return &devServer{
		http:   newHTTPServer(router, cfg, log),
		logger: log,
	}, nil
}

// RunServer serves until SIGTERM, SIGINT or SIGQUIT arrives, then drains
// in-flight requests before returning.
func (s *devServer) RunServer() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	idleConnectionsClosed := make(chan struct{})
	go func() {
		<-ctx.Done()
		s.logger.Info().Msg("shutdown signal received")
		s.Shutdown()
		close(idleConnectionsClosed)
	}()

	s.http.RunServer()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server exited")
}

// Shutdown gracefully stops the HTTP server.
func (s *devServer) Shutdown() {
	s.http.Shutdown()
}
