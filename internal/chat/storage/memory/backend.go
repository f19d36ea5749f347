package memory

import (
	"cmp"
	"context"
	"iter"
	"slices"
	"sync"

	"github.com/picatz/gemini/internal/chat/storage"
)

var _ storage.Backend[string, string] = (*Backend[string, string])(nil)

// Backend keeps entries in a slice sorted by key. Nothing is persisted.
type Backend[K cmp.Ordered, V any] struct {
	mu    sync.Mutex
	store []storage.Entry[K, V]
}

// NewBackend creates a new in-memory storage backend.
func NewBackend[K cmp.Ordered, V any]() *Backend[K, V] {
	return &Backend[K, V]{}
}

func (b *Backend[K, V]) search(key K) (int, bool) {
	return slices.BinarySearchFunc(b.store, key, func(e storage.Entry[K, V], k K) int {
		return cmp.Compare(e.Key, k)
	})
}

// Get retrieves a value by its key.
func (b *Backend[K, V]) Get(ctx context.Context, key K) (V, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if i, found := b.search(key); found {
		return b.store[i].Value, true, nil
	}

	var zero V
	return zero, false, nil
}

// Set stores a value, replacing any existing value for the key.
func (b *Backend[K, V]) Set(ctx context.Context, key K, value V) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	i, found := b.search(key)
	if found {
		b.store[i].Value = value
		return nil
	}

	b.store = slices.Insert(b.store, i, storage.Entry[K, V]{Key: key, Value: value})
	return nil
}

// Delete removes a key. Deleting a missing key is not an error.
func (b *Backend[K, V]) Delete(ctx context.Context, key K) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if i, found := b.search(key); found {
		b.store = slices.Delete(b.store, i, i+1)
	}

	return nil
}

// List returns entries in ascending key order, starting at pageToken if
// given. A nil or non-positive pageSize returns every remaining entry.
func (b *Backend[K, V]) List(ctx context.Context, pageSize *int, pageToken *K) (iter.Seq2[K, V], *K, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	start := 0
	if pageToken != nil {
		start, _ = b.search(*pageToken)
	}

	end := len(b.store)
	if pageSize != nil && *pageSize > 0 && start+*pageSize < end {
		end = start + *pageSize
	}

	var nextPageToken *K
	if end < len(b.store) {
		next := b.store[end].Key
		nextPageToken = &next
	}

	entries := slices.Clone(b.store[start:end])

	return func(yield func(K, V) bool) {
		for _, entry := range entries {
			if !yield(entry.Key, entry.Value) {
				break
			}
		}
	}, nextPageToken, nil
}

// Flush is a no-op for the in-memory backend.
func (b *Backend[K, V]) Flush(context.Context) error {
	return nil
}

// Close is a no-op for the in-memory backend.
func (b *Backend[K, V]) Close(context.Context) error {
	return nil
}
