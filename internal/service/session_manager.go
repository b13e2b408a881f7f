// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veilpost Labs

package service

import (
	"sync"

	"github.com/veilpost/veilpost-go/internal/crypto"
	"github.com/veilpost/veilpost-go/models"
)

// SessionManager owns the current authenticated session. The login flow is
// the single writer; everything else reads through the guarded accessors.
// It is injected where needed instead of living in a package global so tests
// can run isolated instances side by side.
type SessionManager struct {
	mu      sync.RWMutex
	current models.Session
	active  bool
}

// NewSessionManager returns a manager with no active session.
func NewSessionManager() *SessionManager {
	return &SessionManager{}
}

// Set installs session as the current one, scrubbing any previous session's
// secrets first.
func (m *SessionManager) Set(session models.Session) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.scrubLocked()
	m.current = session
	m.active = true
}

// Clear scrubs the current session's secret material and drops it. Copies
// handed out by Current share the underlying key buffers, so callers must
// not touch session secrets after Clear.
func (m *SessionManager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.scrubLocked()
	m.current = models.Session{}
	m.active = false
}

// Current returns the active session and whether one exists.
func (m *SessionManager) Current() (models.Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.current, m.active
}

// Active reports whether a session holds unwrapped account secrets.
func (m *SessionManager) Active() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.active
}

// EmailVerificationPending reports whether the active session belongs to an
// address the server has not seen verified yet. False when no session is
// active.
func (m *SessionManager) EmailVerificationPending() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.active && !m.current.EmailVerified
}

func (m *SessionManager) scrubLocked() {
	crypto.Zeroize(m.current.KeychainKey)
	crypto.Zeroize(m.current.Keypair.Private)
	crypto.Zeroize(m.current.SignKeypair.Private)
}
