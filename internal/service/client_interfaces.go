package service

import (
	"context"

	"github.com/veilpost/veilpost-go/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/servicemock/service_mock.go -package=servicemock

// PasswordScorer rates password strength on the zxcvbn 0..4 scale.
// userInputs are context strings (such as the account email) that should
// count against the password rather than for it.
type PasswordScorer interface {
	Score(password string, userInputs ...string) int
}

// KeyDeriveExecutor runs a password derivation on behalf of a flow. The
// production executor is a worker that serializes derivations so two
// memory-hard jobs never run at once; tests substitute a direct call.
type KeyDeriveExecutor interface {
	// Derive stretches password with the given salt and Argon2id cost
	// parameters into a 32-byte key. It honors ctx while the job waits
	// its turn and between steps.
	Derive(ctx context.Context, password, salt []byte, timeCost uint32, memoryCost uint64) ([]byte, error)
}

// RegistrationService defines the client-side contract for creating an
// account. Implementations own the whole zero-knowledge ceremony: strength
// gating, key derivation, keychain and keypair generation, wrapping,
// record assembly, and self-signing. The server only ever sees the result.
type RegistrationService interface {
	// Register runs the registration flow and returns the stored record
	// with server-assigned fields populated. It does not establish a
	// session; callers log in afterwards with the same password.
	//
	// Policy violations (weak password, taken email, missing captcha)
	// surface as ErrPolicyRejected before any secret material is
	// generated. Cancelling ctx stops the flow at the next step boundary.
	Register(ctx context.Context, params RegisterParams) (models.AccountRecord, error)

	// ResendVerification asks the server to send a fresh address
	// verification mail.
	ResendVerification(ctx context.Context, email string) error
}

// LoginService defines the client-side contract for establishing and
// tearing down an authenticated session.
type LoginService interface {
	// Login runs the challenge-signature login flow and returns the
	// established session. The server's copy of the account record is
	// re-verified against the password-derived key before any of its
	// fields are trusted; failures of that check surface as
	// ErrAuthenticity. ErrOTPRequired is returned before any challenge
	// traffic when the account demands a code and params carry none.
	//
	// On success the session is installed in the session manager, its
	// secrets are persisted best-effort to the local secret store, and
	// params.Keys (if any) is invalidated.
	Login(ctx context.Context, params LoginParams) (models.Session, error)

	// Logout tears the session down: server-side token invalidation,
	// local secret store, session manager. Every step is best-effort;
	// failures are logged and the local teardown proceeds regardless.
	Logout(ctx context.Context)

	// Restore re-establishes a session from the local secret store
	// without a password, e.g. on client start. Returns ErrNoSession
	// (wrapped) when nothing usable is stored.
	Restore(ctx context.Context) (models.Session, error)
}

// OTPService defines the client-side contract for one-time-password
// enrollment. Both calls require an active session.
type OTPService interface {
	// Setup starts enrollment and returns the shared secret plus the
	// otpauth:// provisioning URI to hand to an authenticator app.
	Setup(ctx context.Context) (models.OTPSetup, error)

	// Confirm proves the authenticator was enrolled by submitting a
	// current code. After a successful confirm, logins demand a code.
	Confirm(ctx context.Context, code string) error
}
