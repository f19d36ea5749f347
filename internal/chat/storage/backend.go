package storage

import (
	"context"
	"iter"
)

// Entry is a single key-value pair held by a Backend.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Backend stores values by key. List returns entries in ascending key order,
// one page at a time; a nil next page token means there are no more pages.
type Backend[K, V any] interface {
	Get(ctx context.Context, key K) (value V, found bool, err error)
	Set(ctx context.Context, key K, value V) error
	Delete(ctx context.Context, key K) error
	List(ctx context.Context, pageSize *int, pageToken *K) (entries iter.Seq2[K, V], nextPageToken *K, err error)
	Flush(ctx context.Context) error
	Close(ctx context.Context) error
}

func ptr[T any](v T) *T {
	return &v
}

// PageSize is a helper for the pageSize argument of List.
func PageSize(pageSize int) *int {
	return ptr(pageSize)
}

// PageToken is a helper for the pageToken argument of List.
func PageToken[T any](pageToken T) *T {
	return ptr(pageToken)
}

// All walks every page of b and returns all entries in ascending key order.
// A non-positive pageSize leaves the page size to the backend.
func All[K, V any](ctx context.Context, b Backend[K, V], pageSize int) ([]Entry[K, V], error) {
	var (
		all   []Entry[K, V]
		size  *int
		token *K
	)

	if pageSize > 0 {
		size = PageSize(pageSize)
	}

	for {
		entries, next, err := b.List(ctx, size, token)
		if err != nil {
			return nil, err
		}

		for key, value := range entries {
			all = append(all, Entry[K, V]{Key: key, Value: value})
		}

		if next == nil {
			return all, nil
		}
		token = next
	}
}
