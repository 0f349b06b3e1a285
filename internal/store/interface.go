package store

import (
	"context"
	"errors"
	"time"
)

// ErrKeyNotFound is returned when a key does not exist in the store.
var ErrKeyNotFound = errors.New("store: key not found")

// KV abstracts the key-value operations the service needs from Redis:
// string get/set-with-expiry for the query cache and hash existence/
// increment for click counters. All operations are safe for concurrent
// use and may block on the network; callers supply timeouts via ctx.
type KV interface {
	// Get retrieves the value at key. Returns ErrKeyNotFound if the
	// key does not exist or has expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// SetEx stores a value with the given TTL.
	SetEx(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Exists reports whether the key exists.
	Exists(ctx context.Context, key string) (bool, error)

	// HSet sets a hash field to an integer value.
	HSet(ctx context.Context, key, field string, value int64) error

	// HIncrBy atomically increments a hash field, returning the new value.
	HIncrBy(ctx context.Context, key, field string, incr int64) (int64, error)

	// Ping verifies connectivity to the store.
	Ping(ctx context.Context) error

	// Close releases the underlying connection pool.
	Close() error
}
