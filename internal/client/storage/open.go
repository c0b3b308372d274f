package storage

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/challengehub/internal/client/config"
	"github.com/redis/go-redis/v9"
)

// Open builds the Store selected by cfg.Backend and, when cfg.Passphrase is
// set, wraps it in Sealed. For redis the server is pinged up front.
func Open(ctx context.Context, cfg config.StorageConfig) (Store, error) {
	var (
		st  Store
		err error
	)

	switch cfg.Backend {
	case config.BackendMemory:
		st = NewMemory()
	case config.BackendFile:
		st, err = NewFile(cfg.Path)
	case config.BackendSQLite:
		st, err = OpenSQLite(ctx, cfg.Path)
	case config.BackendRedis:
		st, err = openRedis(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, err
	}

	if cfg.Passphrase == "" {
		return st, nil
	}

	sealed, err := NewSealed(ctx, st, []byte(cfg.Passphrase))
	if err != nil {
		_ = st.Close()
		return nil, err
	}
	return sealed, nil
}

func openRedis(ctx context.Context, cfg config.StorageConfig) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.RedisAddr, err)
	}
	return NewRedis(client, cfg.RedisPrefix), nil
}
