// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veilpost Labs

package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/99designs/keyring"

	"github.com/veilpost/veilpost-go/internal/config"
	"github.com/veilpost/veilpost-go/internal/logger"
	"github.com/veilpost/veilpost-go/models"
)

// sessionItemKey is the single keyring entry the secret store uses. One
// device holds at most one restorable session.
const sessionItemKey = "session"

// keyringSecretStore is the OS-keyring-backed implementation of
// [SecretStore]. The keyring encrypts at rest, so the session's unwrapped
// secrets never touch disk in the clear.
type keyringSecretStore struct {
	ring   keyring.Keyring
	logger *logger.Logger
}

// OpenKeyring opens the OS keyring under the configured service name.
func OpenKeyring(cfg config.ClientKeyring) (keyring.Keyring, error) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		return nil, fmt.Errorf("error opening OS keyring: %w", err)
	}
	return ring, nil
}

// NewKeyringSecretStore constructs a [SecretStore] over an open keyring.
// Tests pass an in-memory keyring; production wiring passes [OpenKeyring]'s
// result.
func NewKeyringSecretStore(ring keyring.Keyring, logger *logger.Logger) SecretStore {
	logger.Debug().Msg("creating keyring secret store")
	return &keyringSecretStore{
		ring:   ring,
		logger: logger,
	}
}

// Save stores session, replacing whatever was stored before.
func (s *keyringSecretStore) Save(session models.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("error encoding session for keyring: %w", err)
	}

	err = s.ring.Set(keyring.Item{
		Key:         sessionItemKey,
		Data:        payload,
		Label:       "Veilpost session",
		Description: "Veilpost client session secrets",
	})
	if err != nil {
		return fmt.Errorf("error writing session to keyring: %w", err)
	}

	return nil
}

// Load returns the stored session. A missing, corrupt, or incomplete entry
// yields [ErrNoStoredSession]; corrupt entries are removed so the next run
// starts clean.
func (s *keyringSecretStore) Load() (models.Session, error) {
	item, err := s.ring.Get(sessionItemKey)
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return models.Session{}, ErrNoStoredSession
		}
		return models.Session{}, fmt.Errorf("error reading session from keyring: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal(item.Data, &session); err != nil {
		s.logger.Err(err).Msg("stored session is corrupt, discarding")
		_ = s.ring.Remove(sessionItemKey)
		return models.Session{}, fmt.Errorf("%w: corrupt entry", ErrNoStoredSession)
	}

	if session.Token == "" || session.AccountID == "" {
		return models.Session{}, fmt.Errorf("%w: incomplete entry", ErrNoStoredSession)
	}

	return session, nil
}

// Clear removes the stored session. Clearing an empty store is not an error.
func (s *keyringSecretStore) Clear() error {
	err := s.ring.Remove(sessionItemKey)
	if err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return fmt.Errorf("error removing session from keyring: %w", err)
	}
	return nil
}
