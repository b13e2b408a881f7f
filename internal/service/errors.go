package service

import "errors"

// Client-side flow errors. The four Err*Failed/Required/Rejected values are
// the coarse kinds a caller switches on; the rest are finer conditions
// wrapped inside them (or returned bare where a flow documents that) and
// matchable with errors.Is.
var (
	// ErrRegistrationFailed tags any registration flow failure. The cause
	// is wrapped and carries the server-supplied detail where one exists.
	ErrRegistrationFailed = errors.New("registration failed")

	// ErrLoginFailed tags any login flow failure that is not an
	// authenticity violation, a policy rejection, or a missing OTP.
	ErrLoginFailed = errors.New("login failed")

	// ErrAuthenticity reports that a server response failed a local
	// cryptographic check: a record signature that does not verify against
	// the password-derived key, or wrapped secrets that do not decrypt.
	// It is never downgraded to a plain login failure.
	ErrAuthenticity = errors.New("server response failed authenticity check")

	// ErrOTPRequired reports that the account demands a one-time password
	// and none was supplied. The caller re-runs the flow with a code; the
	// derived-key cache makes the retry cheap.
	ErrOTPRequired = errors.New("one-time password required")

	// ErrPolicyRejected tags a request refused before or by the server for
	// policy reasons. The concrete reason is wrapped alongside.
	ErrPolicyRejected = errors.New("request rejected by policy")
)

// Policy reasons wrapped inside ErrPolicyRejected.
var (
	ErrWeakPassword    = errors.New("password is too weak")
	ErrEmailTaken      = errors.New("email is already registered")
	ErrCaptchaRequired = errors.New("captcha token required")
)

// Conditions recognized from server response details.
var (
	// ErrInvalidCredentials is the client-side reading of a rejected
	// challenge signature: the password did not derive the right key.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidOTPCode reports a one-time password the authenticator
	// does not accept.
	ErrInvalidOTPCode = errors.New("invalid one-time password")

	// ErrAccountNotFound reports an email address no account is stored
	// under.
	ErrAccountNotFound = errors.New("account not found")

	// ErrTokenExpired reports a bearer token the server no longer accepts.
	// The session must be re-established by logging in again.
	ErrTokenExpired = errors.New("session token expired or invalid")

	// ErrOTPAlreadyEnabled reports an enrollment attempt for an account
	// that already confirmed an authenticator.
	ErrOTPAlreadyEnabled = errors.New("one-time password already enabled")
)

// ErrNoSession reports an operation that needs an authenticated session
// when none is active.
var ErrNoSession = errors.New("no active session")

// Dev server service errors, mapped to HTTP statuses by the handlers.
var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidRecordSignature reports a submitted record whose detached
	// signature does not verify against its own auth public key.
	ErrInvalidRecordSignature = errors.New("record signature does not verify")

	// ErrChallengeExpired covers an expired, replayed, or never-issued
	// login challenge.
	ErrChallengeExpired = errors.New("challenge expired or unknown")

	// ErrInvalidChallengeSignature reports a challenge answer signed with
	// the wrong key, which is how a wrong password looks to the server.
	ErrInvalidChallengeSignature = errors.New("challenge signature does not verify")

	// ErrOTPNotRequested reports a confirmation with no enrollment in
	// progress.
	ErrOTPNotRequested = errors.New("no one-time password enrollment in progress")

	// ErrEmailAlreadyVerified reports a verification attempt on an
	// address that is already confirmed.
	ErrEmailAlreadyVerified = errors.New("email is already verified")

	// ErrInvalidVerificationToken reports a verification token that does
	// not match the address.
	ErrInvalidVerificationToken = errors.New("invalid verification token")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrVersionIsNotSpecified   = errors.New("version is not specified")
)
