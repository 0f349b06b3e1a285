package clicks

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carlosalvarezg/recipe-search/internal/store"
)

type fakeHashKV struct {
	hashes    map[string]map[string]int64
	existsErr error
	writeErr  error
}

func newFakeHashKV() *fakeHashKV {
	return &fakeHashKV{hashes: make(map[string]map[string]int64)}
}

func (kv *fakeHashKV) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, store.ErrKeyNotFound
}

func (kv *fakeHashKV) SetEx(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return nil
}

func (kv *fakeHashKV) Exists(ctx context.Context, key string) (bool, error) {
	if kv.existsErr != nil {
		return false, kv.existsErr
	}
	_, ok := kv.hashes[key]
	return ok, nil
}

func (kv *fakeHashKV) HSet(ctx context.Context, key, field string, value int64) error {
	if kv.writeErr != nil {
		return kv.writeErr
	}
	if kv.hashes[key] == nil {
		kv.hashes[key] = make(map[string]int64)
	}
	kv.hashes[key][field] = value
	return nil
}

func (kv *fakeHashKV) HIncrBy(ctx context.Context, key, field string, incr int64) (int64, error) {
	if kv.writeErr != nil {
		return 0, kv.writeErr
	}
	if kv.hashes[key] == nil {
		kv.hashes[key] = make(map[string]int64)
	}
	kv.hashes[key][field] += incr
	return kv.hashes[key][field], nil
}

func (kv *fakeHashKV) Ping(ctx context.Context) error { return nil }
func (kv *fakeHashKV) Close() error                   { return nil }

func TestTracker_AccumulatesClicks(t *testing.T) {
	kv := newFakeHashKV()
	tracker := NewStoreTracker(kv)
	ctx := context.Background()

	const (
		query = "pasta"
		link  = "https://recipes.test/carbonara"
	)

	require.NoError(t, tracker.Record(ctx, query, link))

	key := "clicks:pasta:https://recipes.test/carbonara"
	assert.Equal(t, key, tracker.Key(query, link))
	require.Contains(t, kv.hashes, key, "record must land under the exact clicks key")
	assert.Equal(t, int64(1), kv.hashes[key]["count"], "first click creates the record at 1")

	for i := 0; i < 3; i++ {
		require.NoError(t, tracker.Record(ctx, query, link))
	}
	assert.Equal(t, int64(4), kv.hashes[key]["count"])
}

func TestTracker_DistinctPairsDistinctRecords(t *testing.T) {
	kv := newFakeHashKV()
	tracker := NewStoreTracker(kv)
	ctx := context.Background()

	require.NoError(t, tracker.Record(ctx, "pasta", "https://recipes.test/a"))
	require.NoError(t, tracker.Record(ctx, "pasta", "https://recipes.test/b"))
	require.NoError(t, tracker.Record(ctx, "Pasta", "https://recipes.test/a"))

	assert.Len(t, kv.hashes, 3)
}

func TestTracker_StoreErrors(t *testing.T) {
	t.Run("existence check fails", func(t *testing.T) {
		kv := newFakeHashKV()
		kv.existsErr = errors.New("connection refused")
		tracker := NewStoreTracker(kv)

		assert.Error(t, tracker.Record(context.Background(), "pasta", "https://recipes.test/a"))
	})

	t.Run("write fails", func(t *testing.T) {
		kv := newFakeHashKV()
		kv.writeErr = errors.New("connection refused")
		tracker := NewStoreTracker(kv)

		assert.Error(t, tracker.Record(context.Background(), "pasta", "https://recipes.test/a"))
	})
}
