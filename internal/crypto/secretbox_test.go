package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func TestGenerateKey_LengthAndRandomness(t *testing.T) {
	box := NewSecretBox()

	k1, err := box.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey error: %v", err)
	}
	k2, err := box.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey error: %v", err)
	}

	if len(k1) != 32 {
		t.Fatalf("key length = %d, want 32", len(k1))
	}
	if bytes.Equal(k1, k2) {
		t.Fatalf("expected keys to differ, but they are equal")
	}
}

func TestSealOpen_RoundTrip(t *testing.T) {
	box := NewSecretBox()

	key := bytes.Repeat([]byte{0x2A}, 32)
	plaintext := []byte("the keychain never leaves in the clear")

	iv, cipherText, err := box.Seal(key, plaintext)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	if len(iv) != 24 {
		t.Fatalf("iv length = %d, want 24", len(iv))
	}
	if bytes.Contains(cipherText, plaintext) {
		t.Fatalf("ciphertext contains the plaintext")
	}

	opened, err := box.Open(key, iv, cipherText)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if !bytes.Equal(opened, plaintext) {
		t.Fatalf("round trip mismatch")
	}
}

func TestSeal_FreshIVPerCall(t *testing.T) {
	box := NewSecretBox()

	key := bytes.Repeat([]byte{0x2A}, 32)
	plaintext := []byte("same plaintext twice")

	iv1, ct1, err := box.Seal(key, plaintext)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	iv2, ct2, err := box.Seal(key, plaintext)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	if bytes.Equal(iv1, iv2) {
		t.Fatalf("expected different IVs for two seals")
	}
	if bytes.Equal(ct1, ct2) {
		t.Fatalf("expected different ciphertexts for two seals")
	}
}

func TestOpen_WrongKeyFails(t *testing.T) {
	box := NewSecretBox()

	key := bytes.Repeat([]byte{0x11}, 32)
	wrongKey := bytes.Repeat([]byte{0x22}, 32)

	iv, cipherText, err := box.Seal(key, []byte("secret"))
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	_, err = box.Open(wrongKey, iv, cipherText)
	if err == nil {
		t.Fatalf("expected error for wrong key, got nil")
	}
	if !errors.Is(err, ErrDecryptionFailed) {
		t.Fatalf("error = %v, want ErrDecryptionFailed", err)
	}
}

func TestOpen_TamperedCiphertextFails(t *testing.T) {
	box := NewSecretBox()

	key := bytes.Repeat([]byte{0x11}, 32)

	iv, cipherText, err := box.Seal(key, []byte("secret"))
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	cipherText[0] ^= 0x01

	_, err = box.Open(key, iv, cipherText)
	if !errors.Is(err, ErrDecryptionFailed) {
		t.Fatalf("error = %v, want ErrDecryptionFailed", err)
	}
}

func TestOpen_WrongIVLengthFails(t *testing.T) {
	box := NewSecretBox()

	key := bytes.Repeat([]byte{0x11}, 32)

	_, cipherText, err := box.Seal(key, []byte("secret"))
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	_, err = box.Open(key, bytes.Repeat([]byte{0x00}, 12), cipherText)
	if !errors.Is(err, ErrDecryptionFailed) {
		t.Fatalf("error = %v, want ErrDecryptionFailed", err)
	}
}
