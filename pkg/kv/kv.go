// Package kv implements the internal key-value store that the driver
// servicer answers from before a client's backend exists. The backing store
// is the cluster's Redis instance.
package kv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store is the narrow KV surface needed by the pre-session fallback path.
type Store interface {
	Put(ctx context.Context, key, value []byte, overwrite bool) (alreadyExists bool, err error)
	Get(ctx context.Context, key []byte) ([]byte, error)
	Del(ctx context.Context, key []byte) error
	List(ctx context.Context, prefix []byte) ([][]byte, error)
	Exists(ctx context.Context, key []byte) (bool, error)
	PinRuntimeEnvURI(ctx context.Context, uri string, expirationS int32) error
}

// pinPrefix namespaces runtime-env URI pins away from user keys.
const pinPrefix = "raygate-runtime-env-pin:"

type redisStore struct {
	client *redis.Client
}

// NewRedisStore returns a Store backed by the Redis instance at addr.
// Username and password may be empty.
func NewRedisStore(addr, username, password string) Store {
	return &redisStore{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Username: username,
			Password: password,
		}),
	}
}

func (s *redisStore) Put(ctx context.Context, key, value []byte, overwrite bool) (bool, error) {
	if overwrite {
		if err := s.client.Set(ctx, string(key), value, 0).Err(); err != nil {
			return false, fmt.Errorf("kv put: %w", err)
		}
		return false, nil
	}
	stored, err := s.client.SetNX(ctx, string(key), value, 0).Result()
	if err != nil {
		return false, fmt.Errorf("kv put: %w", err)
	}
	return !stored, nil
}

func (s *redisStore) Get(ctx context.Context, key []byte) ([]byte, error) {
	val, err := s.client.Get(ctx, string(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("kv get: %w", err)
	}
	return val, nil
}

func (s *redisStore) Del(ctx context.Context, key []byte) error {
	if err := s.client.Del(ctx, string(key)).Err(); err != nil {
		return fmt.Errorf("kv del: %w", err)
	}
	return nil
}

func (s *redisStore) List(ctx context.Context, prefix []byte) ([][]byte, error) {
	var (
		keys   [][]byte
		cursor uint64
	)
	// SCAN MATCH uses glob syntax, so glob specials in the prefix must be
	// quoted.
	pattern := globEscape(string(prefix)) + "*"
	for {
		batch, next, err := s.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return nil, fmt.Errorf("kv list: %w", err)
		}
		for _, k := range batch {
			keys = append(keys, []byte(k))
		}
		if next == 0 {
			return keys, nil
		}
		cursor = next
	}
}

func (s *redisStore) Exists(ctx context.Context, key []byte) (bool, error) {
	n, err := s.client.Exists(ctx, string(key)).Result()
	if err != nil {
		return false, fmt.Errorf("kv exists: %w", err)
	}
	return n > 0, nil
}

func (s *redisStore) PinRuntimeEnvURI(ctx context.Context, uri string, expirationS int32) error {
	expiration := time.Duration(expirationS) * time.Second
	if err := s.client.Set(ctx, pinPrefix+uri, time.Now().Unix(), expiration).Err(); err != nil {
		return fmt.Errorf("kv pin runtime env uri: %w", err)
	}
	return nil
}

func globEscape(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '*', '?', '[', ']', '\\':
			out = append(out, '\\', c)
		default:
			out = append(out, c)
		}
	}
	return string(out)
}
