// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veilpost Labs

package http

import (
	"errors"
	"net/http"

	"github.com/veilpost/veilpost-go/internal/app"
	"github.com/veilpost/veilpost-go/internal/logger"
	"github.com/veilpost/veilpost-go/internal/service"
	"github.com/veilpost/veilpost-go/internal/store"
	"github.com/veilpost/veilpost-go/internal/utils"
)

// errorResponse pairs the HTTP status code with the detail string the client
// error mapper matches on.
type errorResponse struct {
	status int
	detail string
}

// errorResponseMap translates service-layer sentinel errors into wire
// responses. Keys must not wrap each other: map iteration order is undefined,
// so an error matching two keys would map nondeterministically.
var errorResponseMap = map[error]errorResponse{
	service.ErrInvalidDataProvided:       {status: http.StatusBadRequest, detail: app.MsgMalformedAccountRecord},
	service.ErrInvalidRecordSignature:    {status: http.StatusBadRequest, detail: app.MsgInvalidRecordSignature},
	store.ErrEmailAlreadyRegistered:      {status: http.StatusConflict, detail: app.MsgEmailAlreadyRegistered},
	store.ErrAccountNotFound:             {status: http.StatusNotFound, detail: app.MsgAccountNotFound},
	service.ErrChallengeExpired:          {status: http.StatusUnauthorized, detail: app.MsgChallengeExpired},
	service.ErrInvalidChallengeSignature: {status: http.StatusUnauthorized, detail: app.MsgInvalidChallengeSignature},
	service.ErrOTPRequired:               {status: http.StatusUnauthorized, detail: app.MsgOTPRequired},
	service.ErrInvalidOTPCode:            {status: http.StatusUnauthorized, detail: app.MsgInvalidOTPCode},
	service.ErrOTPAlreadyEnabled:         {status: http.StatusConflict, detail: app.MsgOTPAlreadyEnabled},
	service.ErrOTPNotRequested:           {status: http.StatusBadRequest, detail: app.MsgOTPNotRequested},
	service.ErrEmailAlreadyVerified:      {status: http.StatusConflict, detail: app.MsgEmailAlreadyVerified},
	service.ErrInvalidVerificationToken:  {status: http.StatusBadRequest, detail: app.MsgInvalidVerificationToken},
	service.ErrTokenIsExpiredOrInvalid:   {status: http.StatusUnauthorized, detail: app.MsgTokenIsExpiredOrInvalid},
}

// responseFromError returns the wire response for a service error, defaulting
// to 500 / internal server error for anything unmapped.
func responseFromError(err error) errorResponse {
	for target, response := range errorResponseMap {
		if errors.Is(err, target) {
			return response
		}
	}
	return errorResponse{status: http.StatusInternalServerError, detail: app.MsgInternalServerError}
}

// respondError logs the failure with request context and writes the mapped
// JSON error body.
func respondError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	response := responseFromError(err)

	log := logger.FromRequest(r)
	log.Err(err).Int("status", response.status).Msg(msg)

	if _, writeErr := utils.WriteJSONError(w, response.detail, response.status); writeErr != nil {
		log.Err(writeErr).Msg("error response could not be written")
	}
}
