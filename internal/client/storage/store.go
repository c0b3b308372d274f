// Package storage keeps small keyed blobs on the client, most notably the
// persisted session record.
//
// Every adapter honours the same contract: Get returns (nil, nil) for an
// absent key, Set overwrites, and Delete of an absent key is not an error.
package storage

import (
	"context"

	"github.com/dmitrijs2005/challengehub/internal/common"
)

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

func checkKey(key string) error {
	if key == "" {
		return common.ErrEmptyKey
	}
	return nil
}
