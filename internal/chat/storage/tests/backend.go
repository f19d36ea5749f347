package tests

import (
	"testing"

	"github.com/picatz/gemini/internal/chat/storage"
	"github.com/shoenig/test/must"
)

// BackendSuite tests a backend implementation of the storage package, using
// the provided backend instance to perform the tests.
func BackendSuite(t *testing.T, backend storage.Backend[string, string]) {
	t.Helper()

	ctx := t.Context()

	_, ok, err := backend.Get(ctx, "missing")
	must.NoError(t, err)
	must.False(t, ok)

	must.NoError(t, backend.Set(ctx, "hello", "world"))

	value, ok, err := backend.Get(ctx, "hello")
	must.NoError(t, err)
	must.True(t, ok)
	must.Eq(t, "world", value)

	must.NoError(t, backend.Set(ctx, "hello again", "world2"))

	value, ok, err = backend.Get(ctx, "hello again")
	must.NoError(t, err)
	must.True(t, ok)
	must.Eq(t, "world2", value)

	// Overwrite.
	must.NoError(t, backend.Set(ctx, "hello", "world!"))

	entries, next, err := backend.List(ctx, storage.PageSize(1), nil)
	must.NoError(t, err)
	must.NotNil(t, next)
	must.Eq(t, "hello again", *next)

	var keys []string
	for key, value := range entries {
		keys = append(keys, key)
		must.Eq(t, "world!", value)
	}
	must.Eq(t, []string{"hello"}, keys)

	entries, next, err = backend.List(ctx, nil, next)
	must.NoError(t, err)
	must.Nil(t, next)

	keys = nil
	for key, value := range entries {
		keys = append(keys, key)
		must.Eq(t, "world2", value)
	}
	must.Eq(t, []string{"hello again"}, keys)

	must.NoError(t, backend.Delete(ctx, "hello"))
	must.NoError(t, backend.Delete(ctx, "never set"))

	_, ok, err = backend.Get(ctx, "hello")
	must.NoError(t, err)
	must.False(t, ok)

	must.NoError(t, backend.Flush(ctx))
}

// Turn mirrors the shape of a recorded chat exchange.
type Turn struct {
	Model    string `json:"model"`
	Prompt   string `json:"prompt"`
	Response string `json:"response"`
	Tokens   int32  `json:"tokens"`
}

// BackendSuite_ordered_turns checks that turns keyed in ascending order come
// back in the same order across pages.
func BackendSuite_ordered_turns(t *testing.T, b storage.Backend[string, Turn]) {
	t.Helper()

	ctx := t.Context()

	keys := []string{"2a", "2b", "2c", "2d", "2e"}
	for i, key := range []string{"2c", "2a", "2e", "2b", "2d"} {
		must.NoError(t, b.Set(ctx, key, Turn{
			Model:    "models/gemini-1.5-flash",
			Prompt:   "prompt " + key,
			Response: "response " + key,
			Tokens:   int32(i),
		}))
	}

	all, err := storage.All(ctx, b, 2)
	must.NoError(t, err)
	must.Len(t, len(keys), all)

	for i, entry := range all {
		must.Eq(t, keys[i], entry.Key)
		must.Eq(t, "prompt "+keys[i], entry.Value.Prompt)
		must.Eq(t, "response "+keys[i], entry.Value.Response)
	}
}

// BackendSuite_page_sizes checks that a zero or negative page size lists
// every entry in one page instead of failing or paging forever.
func BackendSuite_page_sizes(t *testing.T, b storage.Backend[string, string]) {
	t.Helper()

	ctx := t.Context()

	for _, key := range []string{"a", "b", "c"} {
		must.NoError(t, b.Set(ctx, key, "value "+key))
	}

	for _, size := range []int{0, -1} {
		entries, next, err := b.List(ctx, storage.PageSize(size), nil)
		must.NoError(t, err)
		must.Nil(t, next)

		var keys []string
		for key := range entries {
			keys = append(keys, key)
		}
		must.Eq(t, []string{"a", "b", "c"}, keys)
	}
}
