// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veilpost Labs

package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
)

// ErrDecryptionFailed reports an authentication-tag mismatch: a wrong key,
// a wrong IV, or a tampered ciphertext. The three cases are
// indistinguishable on purpose.
var ErrDecryptionFailed = errors.New("decryption failed")

// secretBox is the private implementation of [SecretBox].
type secretBox struct{}

// NewSecretBox constructs a [SecretBox] backed by XChaCha20-Poly1305.
// The extended 24-byte nonce makes random IVs collision-safe without
// nonce bookkeeping.
func NewSecretBox() SecretBox {
	return &secretBox{}
}

// GenerateKey implements [SecretBox]. It reads 32 random bytes from the
// OS CSPRNG. Returns an error if the random read fails.
func (b *secretBox) GenerateKey() ([]byte, error) {
	key := make([]byte, keySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, err
	}
	return key, nil
}

// Seal implements [SecretBox]. The IV is returned separately instead of
// being prepended because the wire format stores the two as distinct
// fields.
func (b *secretBox) Seal(key, plaintext []byte) (iv, cipherText []byte, err error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, nil, fmt.Errorf("create cipher: %w", err)
	}

	iv = make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return nil, nil, fmt.Errorf("generate iv: %w", err)
	}

	return iv, aead.Seal(nil, iv, plaintext, nil), nil
}

// Open implements [SecretBox]. An error here almost always means the
// caller derived the wrong key from a wrong password.
func (b *secretBox) Open(key, iv, cipherText []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	if len(iv) != aead.NonceSize() {
		return nil, fmt.Errorf("%w: iv length = %d, want %d", ErrDecryptionFailed, len(iv), aead.NonceSize())
	}

	plaintext, err := aead.Open(nil, iv, cipherText, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	return plaintext, nil
}
