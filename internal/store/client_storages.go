package store

import (
	"context"
	"fmt"

	"github.com/veilpost/veilpost-go/internal/config"
	"github.com/veilpost/veilpost-go/internal/logger"
)

// ClientStorages groups the client-side stores into a single value the
// runtime wires once: the OS-keyring secret store for session restore and
// the SQLite login history.
type ClientStorages struct {
	// Secrets persists the logged-in session between client runs.
	Secrets SecretStore

	// Accounts is the device's login history, used to prefill the
	// login screen.
	Accounts KnownAccountRepository
}

// NewClientStorages initialises the client storage layer:
//  1. Opens the SQLite database at cfg.DB.DSN, creating the file on first
//     run, and applies pending schema migrations.
//  2. Opens the OS keyring under cfg.Keyring.ServiceName.
//
// Returns an error if the database cannot be opened or migrated, or the
// keyring is unavailable.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating client storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	ring, err := OpenKeyring(cfg.Keyring)
	if err != nil {
		return nil, err
	}

	return &ClientStorages{
		Secrets:  NewKeyringSecretStore(ring, logger),
		Accounts: NewKnownAccountRepository(db, logger),
	}, nil
}
