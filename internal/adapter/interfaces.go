// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veilpost Labs

// Package adapter provides transport-layer abstractions for talking to a
// Veilpost account server.
//
// The primary abstraction is [AccountAPI], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPAccountAPI]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/veilpost/veilpost-go/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/account_api_mock.go -package=mock

// AccountAPI defines transport-agnostic communication with the account
// server. Implementations are responsible for serialization, bearer-token
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
//
// None of the methods interpret the account record cryptographically:
// building, signing, and verifying records is the service layer's job.
type AccountAPI interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. An empty string clears it.
	SetToken(token string)

	// Token returns the bearer token currently held, or an empty string
	// if no login has happened yet.
	Token() string

	// Version fetches the server build metadata. Used as a cheap
	// reachability and compatibility probe before any account work.
	Version(ctx context.Context) (models.BuildInfo, error)

	// CreateAccount submits a fully built and signed account record.
	// captcha is an opaque proof-of-humanity token passed through
	// verbatim; empty means none. Returns the stored record with
	// server-assigned fields populated. Returns [ErrConflict] (wrapped)
	// if the email is already registered.
	CreateAccount(ctx context.Context, record models.AccountRecord, captcha string) (models.AccountRecord, error)

	// PublicAccount fetches the public profile for an email: derivation
	// parameters and whether login will demand a one-time password.
	// Returns [ErrNotFound] (wrapped) for an unknown address.
	PublicAccount(ctx context.Context, email string) (models.PublicAccount, error)

	// LoginChallenge asks the server for a single-use login challenge
	// for the account behind email.
	LoginChallenge(ctx context.Context, email string) (models.Challenge, error)

	// SubmitLogin answers a challenge. captcha and otp are passed
	// through verbatim when non-empty. On success the bearer token is
	// extracted from the Authorization response header, stored via
	// SetToken, and the server's copy of the account record is returned
	// for client-side re-verification.
	SubmitLogin(ctx context.Context, email string, submission models.LoginSubmission, captcha, otp string) (models.AccountRecord, error)

	// Logout invalidates the server-side session behind the current
	// bearer token. The caller decides what a failure means; the
	// adapter reports it like any other error.
	Logout(ctx context.Context) error

	// SetupOTP starts one-time-password enrollment for the logged-in
	// account and returns the shared secret plus provisioning URI.
	SetupOTP(ctx context.Context) (models.OTPSetup, error)

	// ConfirmOTP completes enrollment by proving the authenticator
	// produces valid codes.
	ConfirmOTP(ctx context.Context, code string) error

	// ResendVerification asks the server to send a fresh address
	// verification mail for email.
	ResendVerification(ctx context.Context, email string) error
}
