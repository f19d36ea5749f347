package memory_test

import (
	"testing"

	"github.com/picatz/gemini/internal/chat/storage/memory"
	"github.com/picatz/gemini/internal/chat/storage/tests"
)

func TestBackend(t *testing.T) {
	tests.BackendSuite(t, memory.NewBackend[string, string]())
	tests.BackendSuite_ordered_turns(t, memory.NewBackend[string, tests.Turn]())
}

func TestBackend_page_sizes(t *testing.T) {
	tests.BackendSuite_page_sizes(t, memory.NewBackend[string, string]())
}
