package cache

import (
	"context"
	"time"

	"github.com/carlosalvarezg/recipe-search/internal/domain"
)

// QueryCache caches the full top-K result set per distinct query text.
// Keys are built from the raw query with no normalization, so "Pasta"
// and "pasta" occupy separate entries.
type QueryCache interface {
	// Get returns the cached result set for a query. ErrCacheMiss when
	// no entry exists; ErrCachePayload when an entry exists but cannot
	// be decoded.
	Get(ctx context.Context, query string) ([]domain.Recipe, error)

	// Put stores the full result set under the query's key with the
	// given TTL.
	Put(ctx context.Context, query string, results []domain.Recipe, ttl time.Duration) error
}
