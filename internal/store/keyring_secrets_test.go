// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veilpost Labs

package store

import (
	"testing"

	"github.com/99designs/keyring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veilpost/veilpost-go/internal/logger"
	"github.com/veilpost/veilpost-go/models"
)

func newTestSecretStore() (SecretStore, keyring.Keyring) {
	ring := keyring.NewArrayKeyring(nil)
	return NewKeyringSecretStore(ring, logger.Nop()), ring
}

func testStoredSession() models.Session {
	return models.Session{
		AccountID:   "acc-1",
		Email:       "kim@veilpost.dev",
		Token:       "session-token",
		KeychainKey: []byte{1, 2, 3, 4},
		Keypair: models.RawKeypair{
			Public:  []byte{5, 6},
			Private: []byte{7, 8},
		},
		SignKeypair: models.RawKeypair{
			Public:  []byte{9, 10},
			Private: []byte{11, 12},
		},
	}
}

func TestSecretStore_SaveLoadRoundTrip(t *testing.T) {
	secrets, _ := newTestSecretStore()
	session := testStoredSession()

	require.NoError(t, secrets.Save(session))

	loaded, err := secrets.Load()
	require.NoError(t, err)
	assert.Equal(t, session, loaded)
}

func TestSecretStore_SaveReplaces(t *testing.T) {
	secrets, _ := newTestSecretStore()

	first := testStoredSession()
	require.NoError(t, secrets.Save(first))

	second := testStoredSession()
	second.AccountID = "acc-2"
	second.Token = "newer-token"
	require.NoError(t, secrets.Save(second))

	loaded, err := secrets.Load()
	require.NoError(t, err)
	assert.Equal(t, "acc-2", loaded.AccountID)
	assert.Equal(t, "newer-token", loaded.Token)
}

func TestSecretStore_LoadEmpty(t *testing.T) {
	secrets, _ := newTestSecretStore()

	_, err := secrets.Load()
	assert.ErrorIs(t, err, ErrNoStoredSession)
}

func TestSecretStore_LoadCorruptEntry(t *testing.T) {
	secrets, ring := newTestSecretStore()

	require.NoError(t, ring.Set(keyring.Item{Key: sessionItemKey, Data: []byte("{broken")}))

	_, err := secrets.Load()
	require.ErrorIs(t, err, ErrNoStoredSession)

	// The corrupt entry is discarded.
	_, err = ring.Get(sessionItemKey)
	assert.ErrorIs(t, err, keyring.ErrKeyNotFound)
}

func TestSecretStore_LoadIncompleteEntry(t *testing.T) {
	secrets, _ := newTestSecretStore()

	session := testStoredSession()
	session.Token = ""
	require.NoError(t, secrets.Save(session))

	_, err := secrets.Load()
	assert.ErrorIs(t, err, ErrNoStoredSession)
}

func TestSecretStore_ClearThenLoad(t *testing.T) {
	secrets, _ := newTestSecretStore()

	require.NoError(t, secrets.Save(testStoredSession()))
	require.NoError(t, secrets.Clear())

	_, err := secrets.Load()
	assert.ErrorIs(t, err, ErrNoStoredSession)
}

func TestSecretStore_ClearEmptyStore(t *testing.T) {
	secrets, _ := newTestSecretStore()

	assert.NoError(t, secrets.Clear())
}
