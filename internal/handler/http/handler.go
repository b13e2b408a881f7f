package http

import (
	"github.com/veilpost/veilpost-go/internal/logger"
	"github.com/veilpost/veilpost-go/internal/service"
)

// Handler is the root HTTP transport handler.
//
// It stores references to the service layer and structured logger so that
// route handlers can delegate business logic and emit consistent logs. A
// handler instance is created once at startup and shared by the HTTP server.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger, and returns the initialized instance.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("HTTP handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
