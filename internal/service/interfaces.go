// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veilpost Labs

package service

import (
	"context"

	"github.com/veilpost/veilpost-go/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_service_mock.go -package=mock

// AccountService is the development server's account lifecycle:
// registration, the public profile, and email verification.
type AccountService interface {
	// Create validates and stores a client-signed account record.
	Create(ctx context.Context, record models.AccountRecord) (models.AccountRecord, error)

	// Public returns the unauthenticated profile for an address.
	Public(ctx context.Context, email string) (models.PublicAccount, error)

	// ResendVerification re-issues the address verification token.
	// The dev server has no mailer; the token is returned so the caller
	// can log or display it.
	ResendVerification(ctx context.Context, email string) (string, error)

	// VerifyEmail settles a verification token against an address.
	VerifyEmail(ctx context.Context, email, token string) error
}

// AuthService issues login challenges, settles them into session tokens,
// and manages TOTP enrollment.
type AuthService interface {
	// IssueChallenge creates a fresh single-use challenge for an address.
	IssueChallenge(ctx context.Context, email string) (models.Challenge, error)

	// Login settles a signed challenge. On success it returns the stored
	// account record and a session token.
	Login(ctx context.Context, email string, submission models.LoginSubmission, otpCode string) (models.AccountRecord, models.Token, error)

	// ParseToken validates a bearer token string.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// SetupOTP starts TOTP enrollment for an account.
	SetupOTP(ctx context.Context, accountID string) (models.OTPSetup, error)

	// ConfirmOTP proves the authenticator was enrolled and enables the
	// login gate.
	ConfirmOTP(ctx context.Context, accountID, code string) error
}

// AppInfoService reports what build is running.
type AppInfoService interface {
	BuildInfo(ctx context.Context) models.BuildInfo
}
