package chat

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/picatz/gemini"
	"github.com/picatz/gemini/internal/chat/storage/memory"
	"github.com/segmentio/ksuid"
)

// ErrNoConversation is returned by NewSession when the first conversation
// could not be started. The reason has already been written to the
// session's writer.
var ErrNoConversation = errors.New("no conversation could be started")

// State is where the read loop is.
type State int

const (
	// StateAwaitingInput means the loop is waiting for the next line.
	StateAwaitingInput State = iota

	// StateProcessing means a message is being sent to the model.
	StateProcessing

	// StateTerminated means the loop has ended and will read no more input.
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateAwaitingInput:
		return "awaiting input"
	case StateProcessing:
		return "processing"
	case StateTerminated:
		return "terminated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Session is an interactive chat in a terminal. It reads one line at a time,
// runs commands locally and sends everything else to the active
// conversation.
//
// At most one conversation is active at a time; "clear" replaces it.
type Session struct {
	Model        string
	Factory      Factory
	Conversation Conversation
	Transcript   Transcript
	Commands     []Command

	// Width is the column replies are wrapped at.
	Width int

	// Markdown renders replies as markdown instead of plain wrapped text.
	Markdown bool

	// TokensUsed is the total reported for the current conversation.
	TokensUsed int64

	// LastReply is the text of the most recent reply.
	LastReply string

	in      io.Reader
	out     io.Writer
	lines   <-chan inputLine
	done    chan struct{}
	state   State
	lastKey ksuid.KSUID
	logger  *slog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithWidth sets the wrap width for replies.
func WithWidth(width int) Option {
	return func(s *Session) {
		s.Width = width
	}
}

// WithMarkdown enables markdown rendering of replies.
func WithMarkdown(enabled bool) Option {
	return func(s *Session) {
		s.Markdown = enabled
	}
}

// WithTranscript records turns in t instead of an in-memory store.
func WithTranscript(t Transcript) Option {
	return func(s *Session) {
		if t != nil {
			s.Transcript = t
		}
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSession starts a conversation on model and returns a session reading
// from r and writing to w.
//
// If the conversation can't be started, the reason is written to w and
// ErrNoConversation is returned.
func NewSession(ctx context.Context, f Factory, model string, r io.Reader, w io.Writer, opts ...Option) (*Session, error) {
	s := &Session{
		Model:      model,
		Factory:    f,
		Transcript: memory.NewBackend[string, Turn](),
		Commands:   builtinCommands,
		Width:      DefaultWidth,
		in:         r,
		out:        w,
		state:      StateAwaitingInput,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.Conversation = Open(ctx, w, f, model)
	if s.Conversation == nil {
		return nil, ErrNoConversation
	}

	return s, nil
}

// State returns the current state of the loop.
func (s *Session) State() State {
	return s.state
}

// Run prints a banner and processes input until the user exits, input ends,
// or ctx is cancelled.
func (s *Session) Run(ctx context.Context) {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, styleBold.Render(fmt.Sprintf("=== Chat with Gemini (%s) ===", s.Model)))
	fmt.Fprintln(s.out, "Type 'exit', 'quit', or press Ctrl+C to end the conversation.")
	fmt.Fprintln(s.out, "Type 'clear' to start a new conversation.")
	fmt.Fprintln(s.out, "Type '/help' for more commands.")
	fmt.Fprintln(s.out)

	for {
		done, err := s.RunOnce(ctx)
		if err != nil {
			fmt.Fprintln(s.out, styleError.Render("Error:")+" "+err.Error())
		}

		if done {
			break
		}
	}

	if err := s.Transcript.Flush(context.WithoutCancel(ctx)); err != nil {
		s.logger.Warn("failed to flush transcript", "error", err)
	}
}

func doneWithoutError() (bool, error) {
	return true, nil
}

func fatalError(err error) (bool, error) {
	return true, err
}

func ranSuccessfully() (bool, error) {
	return false, nil
}

// RunOnce reads and handles a single line of input. It reports done once
// the session has terminated; errors are fatal to the loop.
func (s *Session) RunOnce(ctx context.Context) (bool, error) {
	if s.state == StateTerminated {
		return doneWithoutError()
	}

	s.state = StateAwaitingInput
	fmt.Fprint(s.out, stylePrompt.Render("> "))

	input, err := s.readLine(ctx)
	if err != nil {
		fmt.Fprintln(s.out)
		s.terminate()
		if errors.Is(err, io.EOF) || ctx.Err() != nil {
			return doneWithoutError()
		}
		return fatalError(fmt.Errorf("failed to read input: %w", err))
	}

	trimmed := strings.TrimSpace(input)

	switch {
	case isExit(trimmed):
		s.terminate()
		return doneWithoutError()
	case strings.EqualFold(trimmed, "clear"):
		s.clear(ctx)
		return ranSuccessfully()
	case trimmed == "":
		return ranSuccessfully()
	}

	if s.runCommand(ctx, trimmed) {
		return ranSuccessfully()
	}

	s.state = StateProcessing
	s.send(ctx, trimmed)

	if ctx.Err() != nil {
		s.terminate()
		return doneWithoutError()
	}

	s.state = StateAwaitingInput
	return ranSuccessfully()
}

func isExit(input string) bool {
	return strings.EqualFold(input, "exit") || strings.EqualFold(input, "quit")
}

// terminate prints the farewell, once.
func (s *Session) terminate() {
	if s.state == StateTerminated {
		return
	}
	s.state = StateTerminated
	if s.done != nil {
		close(s.done)
	}
	fmt.Fprintln(s.out, "Exiting chat.")
}

// clear replaces the conversation with a fresh one. If a new conversation
// can't be started the current one is kept.
func (s *Session) clear(ctx context.Context) {
	conv := Open(ctx, s.out, s.Factory, s.Model)
	if conv == nil {
		fmt.Fprintln(s.out, styleWarning.Render("Chat history was not cleared; continuing the previous conversation."))
		return
	}

	s.Conversation = conv
	s.TokensUsed = 0
	s.LastReply = ""
	fmt.Fprintln(s.out, "Chat history cleared.")
}

// send forwards input to the conversation and prints the reply, or a
// message describing why there isn't one.
func (s *Session) send(ctx context.Context, input string) {
	reply, err := s.Conversation.Send(ctx, input)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		s.printTurnError(err)
		return
	}

	s.TokensUsed += int64(reply.TotalTokens)
	s.LastReply = reply.Text

	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, styleReply.Render("Gemini:"))
	if s.Markdown {
		fmt.Fprint(s.out, renderMarkdown(reply.Text, s.Width))
	} else {
		fmt.Fprintln(s.out, Wrap(reply.Text, s.Width))
	}
	fmt.Fprintln(s.out)

	key, err := recordTurn(ctx, s.Transcript, s.lastKey, Turn{
		Model:          s.Model,
		Prompt:         input,
		Response:       reply.Text,
		PromptTokens:   reply.PromptTokens,
		ResponseTokens: reply.ResponseTokens,
		Time:           time.Now(),
	})
	if err != nil {
		s.logger.Warn("failed to record turn", "error", err)
		return
	}
	s.lastKey = key
}

func (s *Session) printTurnError(err error) {
	switch gemini.KindOf(err) {
	case gemini.ErrorKindRateLimited:
		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, styleError.Render("Rate Limit Error:")+" You've reached the API rate limits for the free tier.")
		fmt.Fprintln(s.out, "Tips to resolve this issue:")
		fmt.Fprintln(s.out, "  1. Wait a minute before trying again")
		fmt.Fprintf(s.out, "  2. Try using a different model with '--model %s'\n", gemini.ModelGemini15Flash8B)
		fmt.Fprintln(s.out, "  3. Check your quota at https://ai.google.dev/gemini-api/docs/rate-limits")
		fmt.Fprintln(s.out)
	default:
		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, styleError.Render("Error:")+" "+err.Error())
		fmt.Fprintln(s.out)
	}
}

type inputLine struct {
	text string
	err  error
}

// readLine returns the next line of input, or ctx's error once it is
// cancelled. The first call starts the goroutine that reads input.
func (s *Session) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if s.lines == nil {
		s.done = make(chan struct{})
		s.lines = readLines(s.in, s.done)
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-s.lines:
		if !ok {
			return "", io.EOF
		}
		return l.text, l.err
	}
}

// readLines reads r line by line until it ends or done is closed. A read
// already blocked on r only returns once r produces more input.
func readLines(r io.Reader, done <-chan struct{}) <-chan inputLine {
	lines := make(chan inputLine, 1)

	send := func(l inputLine) bool {
		select {
		case <-done:
			return false
		default:
		}

		select {
		case lines <- l:
			return true
		case <-done:
			return false
		}
	}

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

		for scanner.Scan() {
			if !send(inputLine{text: scanner.Text()}) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			send(inputLine{err: err})
		}
	}()

	return lines
}
