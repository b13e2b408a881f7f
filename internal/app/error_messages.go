// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veilpost Labs

// Package app contains shared application-layer constants used across the
// Veilpost server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// The client-side error mapper matches on these exact strings, so keeping
// them in one place ensures consistent wording on both ends of the wire.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoAccountIDProvided is returned when a handler requires an account
	// ID (extracted from the JWT claim) but none is present in the request
	// context.
	MsgNoAccountIDProvided = "no account ID provided"

	// MsgAccountNotFound is returned when a lookup targets an email address
	// no account record is stored under.
	MsgAccountNotFound = "account not found"

	// MsgEmailAlreadyRegistered is returned when a registration attempt is
	// rejected because an account already exists for the email address.
	MsgEmailAlreadyRegistered = "email is already registered"

	// MsgMalformedAccountRecord is returned when a submitted account record
	// fails structural validation: missing fields, wrong base64, or
	// ciphertext lengths that do not match the declared algorithm suite.
	MsgMalformedAccountRecord = "malformed account record"

	// MsgInvalidRecordSignature is returned when the self-signature on a
	// submitted account record does not verify against its auth public key.
	MsgInvalidRecordSignature = "invalid account record signature"

	// MsgChallengeExpired is returned when a login submission references a
	// challenge that was never issued or has already expired or been spent.
	MsgChallengeExpired = "challenge expired or unknown"

	// MsgInvalidChallengeSignature is returned when the signature over a
	// login challenge does not verify against the account's auth public
	// key. From the user's point of view this means a wrong password.
	MsgInvalidChallengeSignature = "invalid challenge signature"

	// MsgOTPRequired is returned when the account has one-time passwords
	// enabled but the login submission carried no code.
	MsgOTPRequired = "one-time password required"

	// MsgInvalidOTPCode is returned when a supplied one-time password does
	// not match the account's authenticator.
	MsgInvalidOTPCode = "invalid one-time password"

	// MsgOTPAlreadyEnabled is returned when OTP enrollment is requested for
	// an account that already confirmed an authenticator.
	MsgOTPAlreadyEnabled = "one-time password already enabled"

	// MsgOTPNotRequested is returned when an OTP confirmation arrives
	// without a preceding setup call to pair against.
	MsgOTPNotRequested = "one-time password setup was not requested"

	// MsgCaptchaRequired is returned when the server demands a
	// proof-of-humanity token and the request carried none.
	MsgCaptchaRequired = "captcha token required"

	// MsgEmailAlreadyVerified is returned when a verification mail is
	// requested for an address that is already confirmed.
	MsgEmailAlreadyVerified = "email is already verified"

	// MsgInvalidVerificationToken is returned when an email verification
	// link carries a token that does not match or has expired.
	MsgInvalidVerificationToken = "invalid verification token"

	// MsgRegistrationFailed is returned when the registration handler
	// encounters an unexpected error that prevents account creation.
	MsgRegistrationFailed = "registration failed"

	// MsgLoginFailed is returned when the login handler encounters an
	// unexpected error that prevents issuing a session token.
	MsgLoginFailed = "login failed"
)
