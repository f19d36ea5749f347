package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/cockroachdb/pebble"
	"github.com/picatz/gemini/internal/chat"
	"github.com/picatz/gemini/internal/chat/storage/memory"
	pebbleStorage "github.com/picatz/gemini/internal/chat/storage/pebble"
)

// openTranscript returns the store turns are recorded in. With no directory
// the transcript lives in memory and is gone when the program exits.
func openTranscript(dir string, logger *slog.Logger) (chat.Transcript, error) {
	if dir == "" {
		return memory.NewBackend[string, chat.Turn](), nil
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create transcript directory: %w", err)
	}

	opts := &pebble.Options{
		LoggerAndTracer: pebbleStorage.NewLogger(logger),
	}

	backend, err := pebbleStorage.NewBackend(dir, opts, &chat.TranscriptCodec{})
	if err != nil {
		return nil, fmt.Errorf("failed to open transcript: %w", err)
	}

	logger.Debug("opened transcript", "dir", dir)

	return backend, nil
}
