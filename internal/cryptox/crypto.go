// Package cryptox holds the primitives behind the sealed secret store:
// argon2id key derivation and AES-256-GCM sealing.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"

	"github.com/dmitrijs2005/studyprep/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	KeySize   = 32
	SaltSize  = 16
	NonceSize = 12
)

var ErrOpen = errors.New("cryptox: message authentication failed")

// DeriveKey stretches secret with salt into a KeySize-byte AES key.
func DeriveKey(secret []byte, salt []byte) []byte {
	return argon2.IDKey(secret, salt, 1, 64*1024, 4, KeySize)
}

// Seal encrypts plaintext with AES-GCM under key using a fresh random nonce.
// The key must be 16, 24 or 32 bytes long.
func Seal(plaintext, key []byte) (ciphertext, nonce []byte, err error) {
	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}

	nonce = common.GenerateRandByteArray(aesgcm.NonceSize())
	ciphertext = aesgcm.Seal(nil, nonce, plaintext, nil)
	return ciphertext, nonce, nil
}

// Open reverses Seal. A wrong key, nonce or tampered ciphertext yields ErrOpen.
func Open(ciphertext, nonce, key []byte) ([]byte, error) {
	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(nonce) != aesgcm.NonceSize() {
		return nil, ErrOpen
	}

	plaintext, err := aesgcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrOpen
	}
	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
