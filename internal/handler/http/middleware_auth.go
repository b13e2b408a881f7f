// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veilpost Labs

package http

import (
	"context"
	"net/http"

	"github.com/veilpost/veilpost-go/internal/app"
	"github.com/veilpost/veilpost-go/internal/logger"
	"github.com/veilpost/veilpost-go/internal/utils"
)

// auth guards the authenticated route group. It extracts the bearer token
// from the Authorization header, validates it through the auth service and
// stores the token's account ID in the request context for downstream
// handlers. Requests failing any step are rejected with 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := bearerFromRequest(r)
		if err != nil {
			log.Err(err).Msg("request carries no usable bearer token")
			utils.WriteJSONError(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		token, err := h.services.AuthService.ParseToken(r.Context(), tokenString)
		if err != nil {
			log.Err(err).Msg("bearer token rejected")
			utils.WriteJSONError(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), utils.AccountIDCtxKey, token.AccountID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// bearerFromRequest pulls the token out of the Authorization header.
func bearerFromRequest(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", errNoAuthHeader
	}

	token, err := utils.ParseBearerToken(header)
	if err != nil {
		return "", errBadAuthHeader
	}
	return token, nil
}
