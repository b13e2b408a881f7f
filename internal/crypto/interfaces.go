package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyDeriver turns a password into key material in the zero-knowledge
// scheme. It knows nothing about the network, storage, or accounts.
//
// Scheme:
//
//	salt       = GenerateSalt()                      (registration only)
//	derivedKey = Derive(password, salt, time, mem)   (every login)
//
// The derived key never leaves client memory. The server only ever sees
// the public key of the keypair seeded from it.
type KeyDeriver interface {
	// GenerateSalt generates a random salt (16 bytes / 128 bits).
	// The salt is not a secret: the server stores and republishes it
	// so that any client can reproduce the same derivation.
	GenerateSalt() ([]byte, error)

	// Derive stretches the password into a 32-byte key using Argon2id
	// with the given time cost and memory cost in bytes. The lane count
	// is a protocol constant, not a parameter: the wire format does not
	// carry it, so every client must agree on it implicitly.
	//
	// Cost parameters are bounds-checked before any memory is committed,
	// so a hostile server cannot turn a login attempt into a
	// memory-exhaustion attack.
	Derive(password, salt []byte, timeCost uint32, memoryCost uint64) ([]byte, error)
}

// SecretBox seals and opens secrets under a symmetric key using
// XChaCha20-Poly1305. The IV travels separately from the ciphertext
// because the wire format stores them as distinct fields.
type SecretBox interface {
	// GenerateKey generates a random 32-byte symmetric key.
	GenerateKey() ([]byte, error)

	// Seal encrypts plaintext under key with a fresh random 24-byte IV.
	// Two calls with identical inputs produce different outputs.
	Seal(key, plaintext []byte) (iv, cipherText []byte, err error)

	// Open decrypts cipherText under key and iv. A wrong key or a
	// tampered ciphertext fails the authentication tag and returns an
	// error wrapping [ErrDecryptionFailed].
	Open(key, iv, cipherText []byte) ([]byte, error)
}

// SignatureEngine produces and verifies Ed25519 signatures.
//
// KeypairFromSeed is the heart of the authentication scheme: the same
// 32-byte seed always yields the same keypair, so a password-derived key
// doubles as a reproducible signing identity without the server ever
// holding anything password-equivalent.
type SignatureEngine interface {
	// KeypairFromSeed deterministically expands a 32-byte seed into an
	// Ed25519 keypair. Equal seeds yield equal keypairs.
	KeypairFromSeed(seed []byte) (publicKey, privateKey []byte, err error)

	// NewKeypair generates a random Ed25519 keypair for long-lived
	// account signing keys.
	NewKeypair() (publicKey, privateKey []byte, err error)

	// Sign signs message with privateKey.
	Sign(privateKey, message []byte) ([]byte, error)

	// Verify checks signature over message with publicKey. Returns an
	// error wrapping [ErrInvalidSignature] when the check fails.
	Verify(publicKey, message, signature []byte) error

	// SignHash hashes message with BLAKE2b-256 and signs the digest.
	// Used for large payloads where the raw message is re-derivable by
	// the verifier.
	SignHash(privateKey, message []byte) ([]byte, error)

	// VerifyHash re-hashes message with BLAKE2b-256 and verifies
	// signature over the digest.
	VerifyHash(publicKey, message, signature []byte) error
}
