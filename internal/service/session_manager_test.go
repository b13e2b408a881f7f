// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veilpost Labs

package service

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veilpost/veilpost-go/models"
)

func testSession() models.Session {
	return models.Session{
		AccountID:     "acc-1",
		Email:         "kim@veilpost.dev",
		EmailVerified: true,
		Token:         "tok",
		KeychainKey:   []byte{1, 2, 3, 4},
		Keypair:       models.RawKeypair{Public: []byte{5}, Private: []byte{6, 7}},
		SignKeypair:   models.RawKeypair{Public: []byte{8}, Private: []byte{9, 10}},
	}
}

func TestSessionManager_SetAndCurrent(t *testing.T) {
	m := NewSessionManager()

	_, ok := m.Current()
	assert.False(t, ok)
	assert.False(t, m.Active())

	m.Set(testSession())

	got, ok := m.Current()
	require.True(t, ok)
	assert.True(t, m.Active())
	assert.Equal(t, "acc-1", got.AccountID)
	assert.Equal(t, "kim@veilpost.dev", got.Email)
	assert.Equal(t, []byte{1, 2, 3, 4}, got.KeychainKey)
}

func TestSessionManager_ClearScrubsSecrets(t *testing.T) {
	m := NewSessionManager()
	session := testSession()
	m.Set(session)

	m.Clear()

	_, ok := m.Current()
	assert.False(t, ok)
	assert.False(t, m.Active())

	// The key buffers are shared with the caller's copy; Clear must have
	// zeroized them in place.
	assert.True(t, bytes.Equal(session.KeychainKey, make([]byte, 4)))
	assert.True(t, bytes.Equal(session.Keypair.Private, make([]byte, 2)))
	assert.True(t, bytes.Equal(session.SignKeypair.Private, make([]byte, 2)))
}

func TestSessionManager_SetReplacesAndScrubsPrevious(t *testing.T) {
	m := NewSessionManager()
	first := testSession()
	m.Set(first)

	second := testSession()
	second.AccountID = "acc-2"
	second.KeychainKey = []byte{42, 42, 42, 42}
	m.Set(second)

	got, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, "acc-2", got.AccountID)
	assert.Equal(t, []byte{42, 42, 42, 42}, got.KeychainKey)

	assert.True(t, bytes.Equal(first.KeychainKey, make([]byte, 4)), "previous session keychain must be scrubbed")
}

func TestSessionManager_EmailVerificationPending(t *testing.T) {
	m := NewSessionManager()

	assert.False(t, m.EmailVerificationPending(), "no session, nothing pending")

	unverified := testSession()
	unverified.EmailVerified = false
	m.Set(unverified)
	assert.True(t, m.EmailVerificationPending())

	verified := testSession()
	m.Set(verified)
	assert.False(t, m.EmailVerificationPending())

	m.Clear()
	assert.False(t, m.EmailVerificationPending())
}

func TestSessionManager_ConcurrentReaders(t *testing.T) {
	m := NewSessionManager()
	m.Set(testSession())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_, _ = m.Current()
				_ = m.Active()
				_ = m.EmailVerificationPending()
			}
		}()
	}
	wg.Wait()
}
