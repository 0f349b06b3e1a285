// Package clicks records per-(query, link) click counters for later
// relevance tuning.
package clicks

import (
	"context"
	"fmt"

	"github.com/carlosalvarezg/recipe-search/internal/store"
)

const countField = "count"

// Tracker accumulates click counts in hash records keyed by query and
// link. Counts only grow; nothing here expires or deletes them.
type Tracker interface {
	Record(ctx context.Context, query, link string) error
}

// StoreTracker implements Tracker over a KV store.
type StoreTracker struct {
	kv store.KV
}

func NewStoreTracker(kv store.KV) *StoreTracker {
	return &StoreTracker{kv: kv}
}

// Key builds the click record key for a (query, link) pair.
func (t *StoreTracker) Key(query, link string) string {
	return fmt.Sprintf("clicks:%s:%s", query, link)
}

// Record creates the record with count=1 on first click, increments
// thereafter. The existence check and the write are separate round
// trips: two concurrent first clicks for the same pair can both take
// the create path and land as a single count.
func (t *StoreTracker) Record(ctx context.Context, query, link string) error {
	key := t.Key(query, link)

	exists, err := t.kv.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to check click record: %w", err)
	}

	if exists {
		if _, err := t.kv.HIncrBy(ctx, key, countField, 1); err != nil {
			return fmt.Errorf("failed to increment click count: %w", err)
		}
		return nil
	}

	if err := t.kv.HSet(ctx, key, countField, 1); err != nil {
		return fmt.Errorf("failed to create click record: %w", err)
	}

	return nil
}
