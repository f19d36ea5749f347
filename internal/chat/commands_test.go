package chat

import (
	"bytes"
	"errors"
	"testing"

	"github.com/shoenig/test/must"
)

func TestCommand_copy(t *testing.T) {
	var copied string
	writeClipboard = func(s string) error {
		copied = s
		return nil
	}
	t.Cleanup(func() {
		writeClipboard = defaultWriteClipboard
	})

	output := bytes.NewBuffer(nil)
	s := &Session{Commands: builtinCommands, out: output}

	must.True(t, s.runCommand(t.Context(), "/copy"))
	must.StrContains(t, output.String(), "Nothing to copy yet.")
	must.Eq(t, "", copied)

	s.LastReply = "the answer is 42"

	must.True(t, s.runCommand(t.Context(), "/COPY"))
	must.Eq(t, "the answer is 42", copied)
	must.StrContains(t, output.String(), "Copied last reply to clipboard.")
}

func TestCommand_copyFailure(t *testing.T) {
	writeClipboard = func(string) error {
		return errors.New("no clipboard utilities available")
	}
	t.Cleanup(func() {
		writeClipboard = defaultWriteClipboard
	})

	output := bytes.NewBuffer(nil)
	s := &Session{Commands: builtinCommands, out: output, LastReply: "x"}

	must.True(t, s.runCommand(t.Context(), "/copy"))
	must.StrContains(t, output.String(), "failed to copy to clipboard: no clipboard utilities available")
}

func TestSession_runCommand(t *testing.T) {
	output := bytes.NewBuffer(nil)
	s := &Session{Commands: builtinCommands, out: output}

	// Documented-only commands and plain text fall through to the loop.
	must.False(t, s.runCommand(t.Context(), "exit"))
	must.False(t, s.runCommand(t.Context(), "clear"))
	must.False(t, s.runCommand(t.Context(), "what is /help?"))

	must.True(t, s.runCommand(t.Context(), "/nope"))
	must.StrContains(t, output.String(), `Unknown command "/nope"`)
}
