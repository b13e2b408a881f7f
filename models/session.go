// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veilpost Labs

package models

// RawKeypair is a decoded asymmetric keypair held in memory only.
type RawKeypair struct {
	Public  []byte `json:"public"`
	Private []byte `json:"private"`
}

// Session is the authenticated state established by a successful login.
//
// It carries the unwrapped account secrets and lives in process memory.
// The only place it is ever serialized is the OS keyring secret store,
// which encrypts at rest.
type Session struct {
	// AccountID is the server-side account identifier.
	AccountID string `json:"account_id"`

	// Email is the account address the session belongs to.
	Email string `json:"email"`

	// EmailVerified mirrors the server-side verification flag at login
	// time. An unverified address blocks no client operation but is
	// surfaced so the UI can nag.
	EmailVerified bool `json:"email_verified"`

	// Token is the bearer token for authenticated API calls.
	Token string `json:"token"`

	// OneDayLogin records whether the session was requested short-lived.
	OneDayLogin bool `json:"one_day_login"`

	// KeychainKey is the unwrapped random account key.
	KeychainKey []byte `json:"keychain_key"`

	// Keypair is the unwrapped asymmetric encryption keypair.
	Keypair RawKeypair `json:"keypair"`

	// SignKeypair is the unwrapped long-lived signing keypair.
	SignKeypair RawKeypair `json:"sign_keypair"`
}
