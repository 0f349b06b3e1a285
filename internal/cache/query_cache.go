package cache

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/carlosalvarezg/recipe-search/internal/domain"
	"github.com/carlosalvarezg/recipe-search/internal/store"
)

var (
	ErrCacheMiss = errors.New("cache miss")
	// ErrCachePayload marks an entry that exists but cannot be decoded.
	// This is distinct from a miss: callers must not silently fall back
	// to the backend over corrupted data.
	ErrCachePayload = errors.New("corrupted cache payload")
)

// StoreQueryCache implements QueryCache over a KV store. Payloads are
// a JSON array of {title, link} records, decoded strictly.
type StoreQueryCache struct {
	kv     store.KV
	prefix string
}

// NewStoreQueryCache creates a query cache with the given key prefix.
func NewStoreQueryCache(kv store.KV, prefix string) *StoreQueryCache {
	return &StoreQueryCache{
		kv:     kv,
		prefix: prefix,
	}
}

// Key builds the cache key for a query. The raw query text is used
// byte for byte.
func (c *StoreQueryCache) Key(query string) string {
	return fmt.Sprintf("%s:%s", c.prefix, query)
}

func (c *StoreQueryCache) Get(ctx context.Context, query string) ([]domain.Recipe, error) {
	data, err := c.kv.Get(ctx, c.Key(query))
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to read cache entry: %w", err)
	}

	results, err := decodePayload(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCachePayload, err)
	}

	return results, nil
}

func (c *StoreQueryCache) Put(ctx context.Context, query string, results []domain.Recipe, ttl time.Duration) error {
	data, err := encodePayload(results)
	if err != nil {
		return fmt.Errorf("failed to encode cache payload: %w", err)
	}

	if err := c.kv.SetEx(ctx, c.Key(query), data, ttl); err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}

	return nil
}

func encodePayload(results []domain.Recipe) ([]byte, error) {
	return json.Marshal(results)
}

// decodePayload parses a cached result set. Unknown fields and trailing
// garbage are rejected so a malformed entry surfaces loudly instead of
// producing a partial result set.
func decodePayload(data []byte) ([]domain.Recipe, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var results []domain.Recipe
	if err := dec.Decode(&results); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("trailing data after result set")
	}

	return results, nil
}
