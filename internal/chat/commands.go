package chat

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// CommandFunc runs a command against the session. args are the words that
// followed the command name.
type CommandFunc func(ctx context.Context, s *Session, args []string)

// Command is something the user can type that is handled locally instead of
// being sent to the model.
type Command struct {
	// Name of the command, matched case-insensitively against the first word
	// of the input.
	Name string

	// Description shown by /help.
	Description string

	// Run executes the command. Commands with no Run are handled by the
	// loop itself and only listed for documentation.
	Run CommandFunc
}

var builtinCommands = []Command{
	{
		Name:        "exit",
		Description: "Exit the chat session (also 'quit').",
	},
	{
		Name:        "clear",
		Description: "Start a new conversation with the same model.",
	},
	{
		Name:        "/help",
		Description: "Show this list of commands.",
		Run: func(ctx context.Context, s *Session, args []string) {
			s.showHelp()
		},
	},
	{
		Name:        "/history",
		Description: "Show the most recent turns, optionally limited to n: /history [n]",
		Run: func(ctx context.Context, s *Session, args []string) {
			n := 10
			if len(args) > 0 {
				v, err := strconv.Atoi(args[0])
				if err != nil || v <= 0 {
					fmt.Fprintf(s.out, "Invalid count %q, expected a positive number.\n", args[0])
					return
				}
				n = v
			}
			s.showHistory(ctx, n)
		},
	},
	{
		Name:        "/tokens",
		Description: "Show the tokens used by the current conversation.",
		Run: func(ctx context.Context, s *Session, args []string) {
			fmt.Fprintf(s.out, "Tokens used: %d\n", s.TokensUsed)
		},
	},
	{
		Name:        "/copy",
		Description: "Copy the last reply to the clipboard.",
		Run: func(ctx context.Context, s *Session, args []string) {
			if s.LastReply == "" {
				fmt.Fprintln(s.out, "Nothing to copy yet.")
				return
			}
			if err := writeClipboard(s.LastReply); err != nil {
				fmt.Fprintln(s.out, styleError.Render("Error:")+" failed to copy to clipboard: "+err.Error())
				return
			}
			fmt.Fprintln(s.out, "Copied last reply to clipboard.")
		},
	},
	{
		Name:        "/model",
		Description: "Show the model this session is using.",
		Run: func(ctx context.Context, s *Session, args []string) {
			fmt.Fprintf(s.out, "Model: %s\n", s.Model)
		},
	},
}

// runCommand runs the command named by the first word of input, if any.
// Input starting with "/" that names no command is reported as unknown
// rather than sent to the model.
func (s *Session) runCommand(ctx context.Context, input string) bool {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return false
	}

	for _, cmd := range s.Commands {
		if cmd.Run == nil || !strings.EqualFold(cmd.Name, fields[0]) {
			continue
		}
		cmd.Run(ctx, s, fields[1:])
		return true
	}

	if strings.HasPrefix(fields[0], "/") {
		fmt.Fprintf(s.out, "Unknown command %q, type /help for a list of commands.\n", fields[0])
		return true
	}

	return false
}

func (s *Session) showHelp() {
	fmt.Fprintln(s.out, styleBold.Render("Commands"))
	fmt.Fprintln(s.out)

	for _, cmd := range s.Commands {
		fmt.Fprintln(s.out, "- "+styleFaint.Render(cmd.Name)+": "+cmd.Description)
	}

	fmt.Fprintln(s.out)
}

func (s *Session) showHistory(ctx context.Context, n int) {
	turns, err := recentTurns(ctx, s.Transcript, n)
	if err != nil {
		fmt.Fprintln(s.out, styleError.Render("Error:")+" "+err.Error())
		return
	}

	if len(turns) == 0 {
		fmt.Fprintln(s.out, "No history yet.")
		return
	}

	for _, entry := range turns {
		turn := entry.Value
		fmt.Fprintln(s.out, styleFaint.Render(turn.Time.Format("2006-01-02 15:04:05")+" "+turn.Model))
		fmt.Fprintln(s.out, stylePrompt.Render("You:")+" "+turn.Prompt)
		fmt.Fprintln(s.out, styleReply.Render("Gemini:")+" "+turn.Response)
		fmt.Fprintf(s.out, "Tokens: %d prompt, %d response\n", turn.PromptTokens, turn.ResponseTokens)
		fmt.Fprintln(s.out, "---")
	}
}
