// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veilpost Labs

package models

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Byte sizes of the decoded wire fields. Every binary value travels as
// standard base64; these are the lengths after decoding.
const (
	SaltSize      = 16
	KeySize       = 32
	IVSize        = 24
	SignatureSize = 64
)

// ErrMalformedRecord reports an account record whose encoded fields cannot
// be decoded or have the wrong length.
var ErrMalformedRecord = errors.New("malformed account record")

// KDFParams carries the public key-derivation parameters stored with an
// account. They are not secret: the server returns them to anyone who asks
// for the account's public profile, so that any client can re-derive the
// same authentication key from the password.
type KDFParams struct {
	// Salt is the base64-encoded random salt, SaltSize bytes decoded.
	Salt string `json:"salt"`

	// TimeCost is the derivation iteration count.
	TimeCost uint32 `json:"time_cost"`

	// MemoryCost is the derivation memory cost in bytes.
	// Lane count is not carried on the wire and is pinned by the protocol.
	MemoryCost uint64 `json:"memory_cost"`
}

// SaltBytes decodes the salt and checks its length.
func (p KDFParams) SaltBytes() ([]byte, error) {
	return decodeFixed("kdf salt", p.Salt, SaltSize)
}

// SafeCipher is a symmetrically encrypted value: a fresh random IV plus the
// ciphertext, both base64-encoded. The key that opens it is never part of
// the structure.
type SafeCipher struct {
	// IV is the base64-encoded nonce, IVSize bytes decoded.
	IV string `json:"iv"`

	// CipherText is the base64-encoded ciphertext including the AEAD tag.
	CipherText string `json:"cipher_text"`
}

// Bytes decodes both halves of the cipher.
func (c SafeCipher) Bytes() (iv, cipherText []byte, err error) {
	iv, err = decodeFixed("iv", c.IV, IVSize)
	if err != nil {
		return nil, nil, err
	}
	cipherText, err = base64.StdEncoding.DecodeString(c.CipherText)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: cipher text: %w", ErrMalformedRecord, err)
	}
	return iv, cipherText, nil
}

// AuthKey holds the public half of the account's authentication keypair.
// The private half is never stored anywhere: it is re-derived from the
// password on every login.
type AuthKey struct {
	PublicKey string `json:"public_key"`
}

// WrappedKeypair is an asymmetric keypair whose private key is encrypted
// under the account keychain. The public key travels in clear.
type WrappedKeypair struct {
	// PublicKey is the base64-encoded public key, KeySize bytes decoded.
	PublicKey string `json:"public_key"`

	// IV is the nonce used to wrap the private key.
	IV string `json:"iv"`

	// CipherText is the wrapped private key.
	CipherText string `json:"cipher_text"`
}

// Cipher returns the wrapped private key as a [SafeCipher].
func (k WrappedKeypair) Cipher() SafeCipher {
	return SafeCipher{IV: k.IV, CipherText: k.CipherText}
}

// PublicKeyBytes decodes the public half and checks its length.
func (k WrappedKeypair) PublicKeyBytes() ([]byte, error) {
	return decodeFixed("public key", k.PublicKey, KeySize)
}

// AccountRecord is the complete account document exchanged with the server.
//
// Everything secret inside it is encrypted client-side before it leaves the
// process: the server stores the record but can open none of it. The record
// is covered by Signature so that a client fetching it back can prove the
// server did not alter it.
type AccountRecord struct {
	// ID is the server-assigned account identifier.
	// Empty until the server has accepted the record.
	ID string `json:"id,omitempty"`

	// Email is the account address used as the login identifier.
	Email string `json:"email"`

	// Auth is the public half of the password-derived signing keypair.
	Auth AuthKey `json:"auth"`

	// Keypair is the account's asymmetric encryption keypair,
	// private half wrapped under the keychain.
	Keypair WrappedKeypair `json:"keypair"`

	// SignKeypair is the account's long-lived signing keypair,
	// private half wrapped under the keychain.
	SignKeypair WrappedKeypair `json:"sign_keypair"`

	// Keychain is the random account key, wrapped under the
	// password-derived key. Every other private key hangs off it.
	Keychain SafeCipher `json:"keychain"`

	// KDF holds the public derivation parameters for this account.
	KDF KDFParams `json:"kdf"`

	// IPLookupConsent records whether the user allowed the server to
	// geolocate login IPs for breach notifications.
	IPLookupConsent bool `json:"ip_lookup_consent"`

	// Signature is the detached signature over [AccountRecord.SignedPayload],
	// produced with the password-derived private key.
	Signature string `json:"signature"`

	// Algorithms names the cipher suite the record was produced with.
	Algorithms string `json:"algorithms"`

	// EmailVerified reports whether the address has been confirmed.
	// Server-managed; ignored on registration.
	EmailVerified bool `json:"email_verified,omitempty"`

	// Created is the server-side creation timestamp.
	Created time.Time `json:"created,omitempty"`
}

// signedAccountView is the exact structure covered by an account signature.
//
// Field order is fixed by this declaration: encoding/json emits struct
// fields in declaration order, so signer and verifier always serialize the
// same bytes. Server-assigned fields, the clear auth public key, and the
// signature itself are deliberately outside the signed surface.
type signedAccountView struct {
	Email       string         `json:"email"`
	KDF         KDFParams      `json:"kdf"`
	Keychain    SafeCipher     `json:"keychain"`
	Keypair     WrappedKeypair `json:"keypair"`
	SignKeypair WrappedKeypair `json:"sign_keypair"`
}

// SignedPayload returns the canonical byte serialization of the fields an
// account signature covers. Two records that differ only in unsigned fields
// produce identical payloads.
func (r AccountRecord) SignedPayload() ([]byte, error) {
	payload, err := json.Marshal(signedAccountView{
		Email:       r.Email,
		KDF:         r.KDF,
		Keychain:    r.Keychain,
		Keypair:     r.Keypair,
		SignKeypair: r.SignKeypair,
	})
	if err != nil {
		return nil, fmt.Errorf("serialize signed account payload: %w", err)
	}
	return payload, nil
}

// Validate checks that every encoded field of the record decodes and has
// the size the suite requires. It does not verify the signature.
func (r AccountRecord) Validate() error {
	if r.Email == "" {
		return fmt.Errorf("%w: empty email", ErrMalformedRecord)
	}
	if _, err := decodeFixed("auth public key", r.Auth.PublicKey, KeySize); err != nil {
		return err
	}
	if _, err := r.KDF.SaltBytes(); err != nil {
		return err
	}
	if r.KDF.TimeCost == 0 || r.KDF.MemoryCost == 0 {
		return fmt.Errorf("%w: zero kdf cost", ErrMalformedRecord)
	}
	if _, _, err := r.Keychain.Bytes(); err != nil {
		return err
	}
	for _, keypair := range []WrappedKeypair{r.Keypair, r.SignKeypair} {
		if _, err := keypair.PublicKeyBytes(); err != nil {
			return err
		}
		if _, _, err := keypair.Cipher().Bytes(); err != nil {
			return err
		}
	}
	if _, err := decodeFixed("signature", r.Signature, SignatureSize); err != nil {
		return err
	}
	return nil
}

// SignatureBytes decodes the detached record signature.
func (r AccountRecord) SignatureBytes() ([]byte, error) {
	return decodeFixed("signature", r.Signature, SignatureSize)
}

// AuthPublicKeyBytes decodes the clear auth public key.
func (r AccountRecord) AuthPublicKeyBytes() ([]byte, error) {
	return decodeFixed("auth public key", r.Auth.PublicKey, KeySize)
}

// PublicAccount is the unauthenticated public profile of an account:
// just enough for a client to derive the right key and decide whether an
// OTP will be demanded.
type PublicAccount struct {
	// KDF holds the derivation parameters registered for the account.
	KDF KDFParams `json:"kdf"`

	// OTPEnabled reports whether login requires a one-time password.
	OTPEnabled bool `json:"otp_completed"`
}

func decodeFixed(field, value string, size int) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedRecord, field, err)
	}
	if len(raw) != size {
		return nil, fmt.Errorf("%w: %s: got %d bytes, want %d", ErrMalformedRecord, field, len(raw), size)
	}
	return raw, nil
}
