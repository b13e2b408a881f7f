// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veilpost Labs

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/veilpost/veilpost-go/internal/app"
	"github.com/veilpost/veilpost-go/internal/logger"
	"github.com/veilpost/veilpost-go/internal/utils"
	"github.com/veilpost/veilpost-go/models"
)

// loginChallenge issues a fresh single-use login challenge for an account.
// The client signs the returned payload with its derived auth key and submits
// the signature to the login endpoint.
func (h *Handler) loginChallenge(w http.ResponseWriter, r *http.Request) {
	email, ok := emailParam(r)
	if !ok {
		utils.WriteJSONError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	challenge, err := h.services.AuthService.IssueChallenge(r.Context(), email)
	if err != nil {
		respondError(w, r, err, "challenge issuance failed")
		return
	}

	utils.WriteJSON(w, challenge, http.StatusOK)
}

// login verifies a signed challenge and, when it checks out, returns the full
// encrypted account record in the body and a session token in the
// Authorization response header.
//
// The optional one-time password travels as the "otp" query parameter so the
// signed body stays exactly the challenge answer.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	email, ok := emailParam(r)
	if !ok {
		utils.WriteJSONError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	var submission models.LoginSubmission
	if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
		log.Err(err).Msg("login submission could not be decoded")
		utils.WriteJSONError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	otpCode := r.URL.Query().Get("otp")

	record, token, err := h.services.AuthService.Login(r.Context(), email, submission, otpCode)
	if err != nil {
		respondError(w, r, err, "login rejected")
		return
	}

	log.Info().Str("account_id", record.ID).Msg("login succeeded")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, record, http.StatusOK)
}

// logout acknowledges a session teardown. Tokens are stateless, so there is
// nothing to revoke server-side; the client discards its copy.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	accountID, ok := utils.GetAccountIDFromContext(r.Context())
	if !ok {
		utils.WriteJSONError(w, app.MsgNoAccountIDProvided, http.StatusUnauthorized)
		return
	}

	log.Info().Str("account_id", accountID).Msg("logout acknowledged")
	w.WriteHeader(http.StatusOK)
}

// otpSetup starts one-time password enrollment for the authenticated account
// and returns the shared secret plus the otpauth:// provisioning URI.
func (h *Handler) otpSetup(w http.ResponseWriter, r *http.Request) {
	accountID, ok := utils.GetAccountIDFromContext(r.Context())
	if !ok {
		utils.WriteJSONError(w, app.MsgNoAccountIDProvided, http.StatusUnauthorized)
		return
	}

	setup, err := h.services.AuthService.SetupOTP(r.Context(), accountID)
	if err != nil {
		respondError(w, r, err, "one-time password setup failed")
		return
	}

	utils.WriteJSON(w, setup, http.StatusOK)
}

// otpConfirm completes enrollment by checking a code generated from the
// pending secret. Only after this call does login start demanding codes.
func (h *Handler) otpConfirm(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	accountID, ok := utils.GetAccountIDFromContext(r.Context())
	if !ok {
		utils.WriteJSONError(w, app.MsgNoAccountIDProvided, http.StatusUnauthorized)
		return
	}

	var confirm models.OTPConfirm
	if err := json.NewDecoder(r.Body).Decode(&confirm); err != nil {
		log.Err(err).Msg("one-time password confirmation could not be decoded")
		utils.WriteJSONError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.ConfirmOTP(r.Context(), accountID, confirm.Code); err != nil {
		respondError(w, r, err, "one-time password confirmation failed")
		return
	}

	log.Info().Str("account_id", accountID).Msg("one-time password enabled")
	w.WriteHeader(http.StatusOK)
}
