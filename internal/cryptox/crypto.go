// Package cryptox seals small records at rest: a key is derived from a
// passphrase with argon2id and values are encrypted with AES-256-GCM.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"

	"github.com/dmitrijs2005/challengehub/internal/common"
	"golang.org/x/crypto/argon2"
)

// KeySize is the derived key length (AES-256).
const KeySize = 32

// ErrSealedTooShort is returned by Open when the input cannot hold a nonce.
var ErrSealedTooShort = errors.New("sealed data too short")

// DeriveKey derives a KeySize-byte key from passphrase and salt with argon2id.
// The same inputs always give the same key.
func DeriveKey(passphrase []byte, salt []byte) []byte {
	return argon2.IDKey(passphrase, salt, 1, 64*1024, 4, KeySize)
}

// Seal encrypts plaintext with AES-GCM under key. A fresh random nonce is
// generated per call and prepended to the returned ciphertext.
func Seal(plaintext, key []byte) ([]byte, error) {
	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := common.GenerateRandByteArray(aead.NonceSize())
	return aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Open reverses Seal. It fails if the key is wrong or the data was altered.
func Open(sealed, key []byte) ([]byte, error) {
	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	n := aead.NonceSize()
	if len(sealed) < n {
		return nil, ErrSealedTooShort
	}
	return aead.Open(nil, sealed[:n], sealed[n:], nil)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
