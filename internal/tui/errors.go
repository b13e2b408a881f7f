// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veilpost Labs

package tui

import (
	"errors"
	"strings"

	"github.com/veilpost/veilpost-go/internal/service"
)

// humanizeError turns a flow error into a line fit for the screen. Known
// conditions get a short sentence; connectivity failures collapse into one
// generic message instead of a dial error dump.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Invalid email or password"
	case errors.Is(err, service.ErrInvalidOTPCode):
		return "That one-time code was not accepted"
	case errors.Is(err, service.ErrWeakPassword):
		return "Password is too weak, use a longer or less predictable one"
	case errors.Is(err, service.ErrEmailTaken):
		return "That email is already registered"
	case errors.Is(err, service.ErrAccountNotFound):
		return "No account is registered under that email"
	case errors.Is(err, service.ErrAuthenticity):
		return "Server response failed a local cryptographic check, not proceeding"
	case errors.Is(err, service.ErrTokenExpired):
		return "Session expired, sign in again"
	case errors.Is(err, service.ErrOTPAlreadyEnabled):
		return "Two-factor authentication is already enabled"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network is down or the server is unreachable"
	}

	return err.Error()
}
