// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veilpost Labs

package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/veilpost/veilpost-go/internal/adapter"
	"github.com/veilpost/veilpost-go/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. Recognized server details become matchable sentinels;
// anything else passes through unchanged so the server-supplied detail is
// never lost.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	detail := extractDetail(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch detail {
		case app.MsgCaptchaRequired:
			return fmt.Errorf("%w: %w", ErrPolicyRejected, ErrCaptchaRequired)
		case app.MsgOTPNotRequested:
			return ErrInvalidOTPCode
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		switch detail {
		case app.MsgOTPRequired:
			return ErrOTPRequired
		case app.MsgInvalidOTPCode:
			return ErrInvalidOTPCode
		case app.MsgInvalidChallengeSignature:
			return ErrInvalidCredentials
		case app.MsgTokenIsExpiredOrInvalid:
			return ErrTokenExpired
		}

	case errors.Is(err, adapter.ErrForbidden):
		if detail == app.MsgCaptchaRequired {
			return fmt.Errorf("%w: %w", ErrPolicyRejected, ErrCaptchaRequired)
		}

	case errors.Is(err, adapter.ErrNotFound):
		if detail == app.MsgAccountNotFound {
			return ErrAccountNotFound
		}

	case errors.Is(err, adapter.ErrConflict):
		switch detail {
		case app.MsgEmailAlreadyRegistered:
			return fmt.Errorf("%w: %w", ErrPolicyRejected, ErrEmailTaken)
		case app.MsgOTPAlreadyEnabled:
			return ErrOTPAlreadyEnabled
		}
	}

	return err
}

// extractDetail pulls the server-supplied detail out of an adapter error.
// The adapter appends the raw response body after its sentinel text, and the
// server writes bodies of the form {"detail":"..."}; plain-text bodies fall
// through as-is.
func extractDetail(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		msg = msg[idx+2:]
	}

	var body struct {
		Detail string `json:"detail"`
	}
	if jsonErr := json.Unmarshal([]byte(msg), &body); jsonErr == nil && body.Detail != "" {
		return body.Detail
	}

	return msg
}
