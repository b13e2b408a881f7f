// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veilpost Labs

package crypto

// Algorithms names every primitive of the cipher suite in one string.
// It is stamped on each account record so that a future suite migration
// can tell old records from new ones.
const Algorithms = "XCHACHA20_POLY1305+ED25519+ARGON2+X25519_XSalsa20Poly1305+BLAKE2b+IV24+SALT16+KEY32"

// Fixed sizes of the suite's primitives, in bytes.
const (
	saltSize = 16
	keySize  = 32
	ivSize   = 24
	seedSize = 32
)
