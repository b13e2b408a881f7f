// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veilpost Labs

package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// Signature engine errors.
var (
	// ErrInvalidSignature reports a signature that does not verify
	// against the given public key and message.
	ErrInvalidSignature = errors.New("invalid signature")

	// ErrInvalidSeed reports a seed with the wrong length.
	ErrInvalidSeed = errors.New("invalid seed length")

	// ErrInvalidKey reports a key with the wrong length.
	ErrInvalidKey = errors.New("invalid key length")
)

// signatureEngine is the private implementation of [SignatureEngine].
type signatureEngine struct{}

// NewSignatureEngine constructs a [SignatureEngine] backed by Ed25519
// with BLAKE2b-256 for hash-then-sign operations.
func NewSignatureEngine() SignatureEngine {
	return &signatureEngine{}
}

// KeypairFromSeed implements [SignatureEngine]. Expansion is pure: no
// randomness is consumed, so the same seed always yields the same keypair.
func (s *signatureEngine) KeypairFromSeed(seed []byte) (publicKey, privateKey []byte, err error) {
	if len(seed) != seedSize {
		return nil, nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidSeed, len(seed), seedSize)
	}

	private := ed25519.NewKeyFromSeed(seed)
	public := private.Public().(ed25519.PublicKey)

	return public, private, nil
}

// NewKeypair implements [SignatureEngine].
func (s *signatureEngine) NewKeypair() (publicKey, privateKey []byte, err error) {
	public, private, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("generate keypair: %w", err)
	}
	return public, private, nil
}

// Sign implements [SignatureEngine].
func (s *signatureEngine) Sign(privateKey, message []byte) ([]byte, error) {
	if len(privateKey) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("%w: private key %d bytes, want %d",
			ErrInvalidKey, len(privateKey), ed25519.PrivateKeySize)
	}
	return ed25519.Sign(privateKey, message), nil
}

// Verify implements [SignatureEngine].
func (s *signatureEngine) Verify(publicKey, message, signature []byte) error {
	if len(publicKey) != ed25519.PublicKeySize {
		return fmt.Errorf("%w: public key %d bytes, want %d",
			ErrInvalidKey, len(publicKey), ed25519.PublicKeySize)
	}
	if !ed25519.Verify(ed25519.PublicKey(publicKey), message, signature) {
		return ErrInvalidSignature
	}
	return nil
}

// SignHash implements [SignatureEngine]. The digest, not the message, is
// what gets signed, so the verifier only needs to reproduce the same
// BLAKE2b-256 hash of the payload.
func (s *signatureEngine) SignHash(privateKey, message []byte) ([]byte, error) {
	digest, err := digest(message)
	if err != nil {
		return nil, err
	}
	return s.Sign(privateKey, digest)
}

// VerifyHash implements [SignatureEngine].
func (s *signatureEngine) VerifyHash(publicKey, message, signature []byte) error {
	digest, err := digest(message)
	if err != nil {
		return err
	}
	return s.Verify(publicKey, digest, signature)
}

func digest(message []byte) ([]byte, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return nil, fmt.Errorf("create hash: %w", err)
	}
	h.Write(message)
	return h.Sum(nil), nil
}
