package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/picatz/gemini"
	"github.com/picatz/gemini/internal/chat"
	"github.com/picatz/gemini/internal/chat/storage"
	"github.com/shoenig/test/must"
	"github.com/spf13/cobra"
)

type fakeLister struct {
	names []string
	err   error
}

func (l fakeLister) ListModels(context.Context) ([]string, error) {
	return l.names, l.err
}

func testCommand(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	output := bytes.NewBuffer(nil)

	cmd := &cobra.Command{}
	cmd.SetContext(t.Context())
	cmd.SetOut(output)
	cmd.Flags().StringP("model", "m", gemini.DefaultModel, "")

	return cmd, output
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPrintModels(t *testing.T) {
	cmd, output := testCommand(t)

	err := printModels(cmd, fakeLister{names: []string{"models/gemini-1.5-pro", "models/embedding-001"}}, discardLogger())
	must.NoError(t, err)
	must.Eq(t, "Available Gemini models:\n  - models/gemini-1.5-pro\n", output.String())
}

func TestPrintModels_fallback(t *testing.T) {
	cmd, output := testCommand(t)

	err := printModels(cmd, fakeLister{err: errors.New("no network")}, discardLogger())
	must.NoError(t, err)
	must.StrContains(t, output.String(), "  - "+gemini.ModelGemini15Flash+"\n")
	must.StrContains(t, output.String(), "  - "+gemini.ModelGemini15Pro+"\n")
	must.StrContains(t, output.String(), "  - "+gemini.ModelGemini10Pro+"\n")
}

func TestChatModel(t *testing.T) {
	t.Setenv(gemini.ModelEnv, "")

	cmd, _ := testCommand(t)
	must.Eq(t, gemini.DefaultModel, chatModel(cmd))

	t.Setenv(gemini.ModelEnv, gemini.ModelGemini15Pro)
	must.Eq(t, gemini.ModelGemini15Pro, chatModel(cmd))

	must.NoError(t, cmd.Flags().Set("model", gemini.ModelGemini10Pro))
	must.Eq(t, gemini.ModelGemini10Pro, chatModel(cmd))
}

func TestOpenTranscript(t *testing.T) {
	memoryTranscript, err := openTranscript("", discardLogger())
	must.NoError(t, err)
	must.NoError(t, memoryTranscript.Close(t.Context()))

	dir := filepath.Join(t.TempDir(), "transcript")

	diskTranscript, err := openTranscript(dir, discardLogger())
	must.NoError(t, err)
	must.NoError(t, diskTranscript.Set(t.Context(), "2a", chat.Turn{Prompt: "hello"}))
	must.NoError(t, diskTranscript.Close(t.Context()))

	// Reopening keeps what was recorded.
	diskTranscript, err = openTranscript(dir, discardLogger())
	must.NoError(t, err)
	t.Cleanup(func() {
		must.NoError(t, diskTranscript.Close(t.Context()))
	})

	turns, err := storage.All(t.Context(), diskTranscript, 0)
	must.NoError(t, err)
	must.Len(t, 1, turns)
	must.Eq(t, "hello", turns[0].Value.Prompt)
}
