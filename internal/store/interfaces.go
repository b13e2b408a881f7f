// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veilpost Labs

package store

import (
	"context"
	"time"

	"github.com/veilpost/veilpost-go/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_store_mock.go -package=mock

// DirectoryEntry is the development server's per-account state: the
// client-signed record plus the server-owned flags that never travel
// inside the record itself.
type DirectoryEntry struct {
	Record models.AccountRecord

	// OTPSecret is the base32 TOTP secret. Set on enrollment, meaningful
	// only once OTPEnabled is true; before that it is a pending secret
	// awaiting confirmation.
	OTPSecret string

	// OTPEnabled reports whether a confirmed authenticator guards login.
	OTPEnabled bool
}

// IssuedChallenge is an outstanding login challenge. Keyed by account ID:
// issuing a new challenge replaces any previous one for the account.
type IssuedChallenge struct {
	AccountID string
	Email     string
	Payload   []byte
	ExpiresAt time.Time
}

// AccountDirectory stores account records for the development server.
type AccountDirectory interface {
	// Create persists a new record, assigns its ID and creation time, and
	// enforces email uniqueness. Returns ErrEmailAlreadyRegistered when
	// the address is taken.
	Create(ctx context.Context, record models.AccountRecord) (models.AccountRecord, error)

	// ByEmail returns the entry for an address, or ErrAccountNotFound.
	ByEmail(ctx context.Context, email string) (DirectoryEntry, error)

	// ByID returns the entry for an account ID, or ErrAccountNotFound.
	ByID(ctx context.Context, accountID string) (DirectoryEntry, error)

	// MarkEmailVerified flips the record's verified flag.
	MarkEmailVerified(ctx context.Context, accountID string) error

	// SetPendingOTP stores an unconfirmed TOTP secret for the account,
	// replacing any previous pending one.
	SetPendingOTP(ctx context.Context, accountID, secret string) error

	// EnableOTP promotes the pending TOTP secret to enforced.
	EnableOTP(ctx context.Context, accountID string) error
}

// ChallengeStore keeps outstanding login challenges.
type ChallengeStore interface {
	// Put stores a challenge, replacing any earlier challenge for the
	// same account.
	Put(ctx context.Context, challenge IssuedChallenge) error

	// Take removes and returns the challenge for an account. A challenge
	// can be taken once; expired or unknown challenges return
	// ErrChallengeNotFound.
	Take(ctx context.Context, accountID string) (IssuedChallenge, error)
}
