// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veilpost Labs

package http

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/veilpost/veilpost-go/internal/app"
	"github.com/veilpost/veilpost-go/internal/logger"
	"github.com/veilpost/veilpost-go/internal/utils"
	"github.com/veilpost/veilpost-go/models"
)

// register creates an account from a client-assembled record.
//
// The record arrives fully encrypted and self-signed; the service layer
// verifies the signature before anything is stored. On success the stored
// record is echoed back with the server-assigned ID and creation time.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var record models.AccountRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		log.Err(err).Msg("account record could not be decoded")
		utils.WriteJSONError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	created, err := h.services.AccountService.Create(r.Context(), record)
	if err != nil {
		respondError(w, r, err, "registration rejected")
		return
	}

	log.Info().Str("account_id", created.ID).Msg("account registered")
	utils.WriteJSON(w, created, http.StatusOK)
}

// publicAccount returns the public login parameters for an email address:
// the KDF cost record and whether one-time passwords are enabled.
func (h *Handler) publicAccount(w http.ResponseWriter, r *http.Request) {
	email, ok := emailParam(r)
	if !ok {
		utils.WriteJSONError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	public, err := h.services.AccountService.Public(r.Context(), email)
	if err != nil {
		respondError(w, r, err, "public account lookup failed")
		return
	}

	utils.WriteJSON(w, public, http.StatusOK)
}

// resendVerification recomputes the verification token for an address and
// pretends to mail it. The dev server has no mailer, so the token is written
// to the server log instead; the response only acknowledges the request.
func (h *Handler) resendVerification(w http.ResponseWriter, r *http.Request) {
	email, ok := emailParam(r)
	if !ok {
		utils.WriteJSONError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if _, err := h.services.AccountService.ResendVerification(r.Context(), email); err != nil {
		respondError(w, r, err, "verification resend failed")
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

// verifyEmail confirms an email address from a verification link. This is the
// one browser-facing endpoint: the token travels as a query parameter because
// it is clicked, not called.
func (h *Handler) verifyEmail(w http.ResponseWriter, r *http.Request) {
	email, ok := emailParam(r)
	if !ok {
		utils.WriteJSONError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	token := r.URL.Query().Get("token")
	if err := h.services.AccountService.VerifyEmail(r.Context(), email, token); err != nil {
		respondError(w, r, err, "email verification failed")
		return
	}

	confirmation := struct {
		Detail string `json:"detail"`
	}{Detail: "email verified"}
	utils.WriteJSON(w, confirmation, http.StatusOK)
}

// emailParam extracts and unescapes the {email} route parameter. The client
// path-escapes addresses, so "+" tags and unicode names survive the URL.
func emailParam(r *http.Request) (string, bool) {
	email, err := url.PathUnescape(chi.URLParam(r, "email"))
	if err != nil || strings.TrimSpace(email) == "" {
		return "", false
	}
	return email, true
}
