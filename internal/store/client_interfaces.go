package store

import (
	"context"

	"github.com/veilpost/veilpost-go/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SecretStore persists the session secrets of the logged-in account between
// client runs. The production implementation sits on the OS keyring, which
// encrypts at rest; everything it holds is scrubbed by Clear on logout.
type SecretStore interface {
	// Save stores session, replacing whatever was stored before.
	Save(session models.Session) error

	// Load returns the stored session, or [ErrNoStoredSession] (wrapped)
	// when nothing usable is stored.
	Load() (models.Session, error)

	// Clear removes the stored session. Clearing an empty store is not
	// an error.
	Clear() error
}

// KnownAccountRepository is the local history of accounts this device has
// logged into, used to prefill the login screen. No secrets ever land here.
type KnownAccountRepository interface {
	// Remember upserts the entry for account.Email, keeping the original
	// first-seen time on conflict.
	Remember(ctx context.Context, account models.KnownAccount) error

	// Last returns the most recently used account, or
	// [ErrKnownAccountNotFound] when the device has no history yet.
	Last(ctx context.Context) (models.KnownAccount, error)

	// All returns every remembered account, most recently used first.
	All(ctx context.Context) ([]models.KnownAccount, error)

	// Forget removes the entry for email, if any.
	Forget(ctx context.Context, email string) error
}
