package crypto

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/nacl/box"
)

// NewBoxKeypair generates an X25519 keypair for the account's asymmetric
// encryption slot (NaCl box: X25519-XSalsa20-Poly1305). The private half
// is meant to be wrapped under the account keychain immediately.
func NewBoxKeypair() (publicKey, privateKey []byte, err error) {
	public, private, err := box.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("generate box keypair: %w", err)
	}
	return public[:], private[:], nil
}
