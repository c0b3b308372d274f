package storage

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/challengehub/internal/common"
	"github.com/dmitrijs2005/challengehub/internal/cryptox"
)

// SaltKey holds the key-derivation salt in the wrapped store, unencrypted.
const SaltKey = "sealed-salt"

const saltSize = 16

// Sealed encrypts values before handing them to the wrapped Store.
type Sealed struct {
	inner Store
	key   []byte
}

// NewSealed derives the encryption key from passphrase. The salt is read
// from inner, or generated and saved on first use, so the same passphrase
// opens the same data across runs.
func NewSealed(ctx context.Context, inner Store, passphrase []byte) (*Sealed, error) {
	salt, err := inner.Get(ctx, SaltKey)
	if err != nil {
		return nil, fmt.Errorf("load salt: %w", err)
	}
	if len(salt) == 0 {
		salt = common.GenerateRandByteArray(saltSize)
		if err := inner.Set(ctx, SaltKey, salt); err != nil {
			return nil, fmt.Errorf("save salt: %w", err)
		}
	}

	return &Sealed{inner: inner, key: cryptox.DeriveKey(passphrase, salt)}, nil
}

func (s *Sealed) Get(ctx context.Context, key string) ([]byte, error) {
	sealed, err := s.inner.Get(ctx, key)
	if err != nil || sealed == nil {
		return nil, err
	}
	plain, err := cryptox.Open(sealed, s.key)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", key, err)
	}
	return plain, nil
}

func (s *Sealed) Set(ctx context.Context, key string, value []byte) error {
	if err := checkKey(key); err != nil {
		return err
	}
	sealed, err := cryptox.Seal(value, s.key)
	if err != nil {
		return fmt.Errorf("seal %s: %w", key, err)
	}
	return s.inner.Set(ctx, key, sealed)
}

func (s *Sealed) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, key)
}

// Close wipes the derived key and closes the wrapped store.
func (s *Sealed) Close() error {
	common.WipeByteArray(s.key)
	return s.inner.Close()
}
