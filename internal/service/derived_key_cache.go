// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veilpost Labs

package service

import (
	"bytes"
	"sync"

	"github.com/veilpost/veilpost-go/internal/crypto"
)

// DerivedKeyCache holds the most recent password-derived key so that a login
// retry (typically after an OTP prompt) skips the expensive derivation. The
// caller driving the login flow owns the cache and decides how long it
// lives; the flow invalidates it once a login completes.
//
// A nil *DerivedKeyCache is valid and never caches, so flows can take one
// without nil checks.
type DerivedKeyCache struct {
	mu       sync.Mutex
	password []byte
	key      []byte
}

// NewDerivedKeyCache returns an empty cache.
func NewDerivedKeyCache() *DerivedKeyCache {
	return &DerivedKeyCache{}
}

// Lookup returns a copy of the cached key if password matches the cached
// password byte for byte. Any other password, including one differing only
// in normalization, misses.
func (c *DerivedKeyCache) Lookup(password []byte) ([]byte, bool) {
	if c == nil {
		return nil, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.key == nil || !bytes.Equal(c.password, password) {
		return nil, false
	}

	return bytes.Clone(c.key), true
}

// Store replaces the cache contents with copies of password and key,
// scrubbing whatever was cached before.
func (c *DerivedKeyCache) Store(password, key []byte) {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.scrubLocked()
	c.password = bytes.Clone(password)
	c.key = bytes.Clone(key)
}

// Invalidate scrubs and forgets the cached password and key.
func (c *DerivedKeyCache) Invalidate() {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.scrubLocked()
	c.password = nil
	c.key = nil
}

func (c *DerivedKeyCache) scrubLocked() {
	crypto.Zeroize(c.password)
	crypto.Zeroize(c.key)
}
