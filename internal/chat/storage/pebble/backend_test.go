package pebble_test

import (
	"testing"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/picatz/gemini/internal/chat/storage"
	backendPebble "github.com/picatz/gemini/internal/chat/storage/pebble"
	"github.com/picatz/gemini/internal/chat/storage/tests"
	"github.com/shoenig/test/must"
)

func TestBackend_dir(t *testing.T) {
	b, err := backendPebble.NewBackend(t.TempDir(), nil, &storage.StringKeyCodec[string]{})
	must.NoError(t, err)
	must.NotNil(t, b)
	t.Cleanup(func() {
		must.NoError(t, b.Close(t.Context()))
	})

	tests.BackendSuite(t, b)
}

func TestBackend_mem_vfs(t *testing.T) {
	opts := &pebble.Options{
		FS:              vfs.NewMem(),
		LoggerAndTracer: backendPebble.NewLogger(nil),
	}

	b, err := backendPebble.NewBackend("", opts, &storage.StringKeyCodec[string]{})
	must.NoError(t, err)
	must.NotNil(t, b)
	t.Cleanup(func() {
		must.NoError(t, b.Close(t.Context()))
	})

	tests.BackendSuite(t, b)
}

func TestBackend_mem_vfs_ordered_turns(t *testing.T) {
	opts := &pebble.Options{
		FS: vfs.NewMem(),
	}

	b, err := backendPebble.NewBackend("", opts, &storage.StringKeyCodec[tests.Turn]{})
	must.NoError(t, err)
	must.NotNil(t, b)
	t.Cleanup(func() {
		must.NoError(t, b.Close(t.Context()))
	})

	tests.BackendSuite_ordered_turns(t, b)
}

func TestBackend_mem_vfs_page_sizes(t *testing.T) {
	b, err := backendPebble.NewBackend("", &pebble.Options{FS: vfs.NewMem()}, &storage.StringKeyCodec[string]{})
	must.NoError(t, err)
	t.Cleanup(func() {
		must.NoError(t, b.Close(t.Context()))
	})

	tests.BackendSuite_page_sizes(t, b)
}
