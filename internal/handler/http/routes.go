// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veilpost Labs

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the chi router for the dev server and registers all routes.
//
// Route groups:
//   - public: version info and the account registration/login protocol. These
//     endpoints are reachable without a token because they are the ones that
//     produce tokens.
//   - authenticated: session-bound account management. Requests pass the auth
//     middleware which validates the bearer token and stores the account ID
//     in the request context.
//
// Unknown methods on known paths respond 404 rather than 405 so that probing
// requests cannot distinguish existing routes from missing ones.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(5))

	// public routes
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.version)
		r.Post("/api/account/register", h.register)
		r.Get("/api/account/{email}/public", h.publicAccount)
		r.Get("/api/account/{email}/challenge", h.loginChallenge)
		r.Post("/api/account/{email}/login", h.login)
		r.Post("/api/account/{email}/verification/resend", h.resendVerification)
		r.Get("/api/account/{email}/verify", h.verifyEmail)
	})

	// authenticated routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/account/logout", h.logout)
		r.Post("/api/account/otp/setup", h.otpSetup)
		r.Post("/api/account/otp/confirm", h.otpConfirm)
	})

	router.MethodNotAllowed(h.hideRoute())

	return router
}
