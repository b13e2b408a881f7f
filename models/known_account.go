package models

import "time"

// KnownAccount is a locally cached pointer to an account this device has
// logged into. It holds no secrets: just enough to prefill the login
// screen and show account history.
type KnownAccount struct {
	// Email is the account address.
	Email string `json:"email"`

	// AccountID is the server-side identifier observed at the last
	// successful login.
	AccountID string `json:"account_id"`

	// AuthPublicKey is the base64 auth public key observed at the last
	// successful login. Informational only.
	AuthPublicKey string `json:"auth_public_key"`

	// OTPEnabled records whether the last login demanded a one-time
	// password, so the login screen can prompt for a code up front.
	// A hint only; the server remains authoritative.
	OTPEnabled bool `json:"otp_enabled"`

	// LastLoginAt is the time of the most recent successful login
	// from this device.
	LastLoginAt time.Time `json:"last_login_at"`

	// CreatedAt is when the account was first seen on this device.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the local database table
// associated with the KnownAccount model.
func (a KnownAccount) TableName() string {
	return "known_accounts"
}
