package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/picatz/gemini"
	"github.com/picatz/gemini/internal/chat"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gemini",
	Short: "Chat with Gemini models from your terminal",
	Long: "Chat with Gemini models from your terminal.\n\n" +
		"The API key is read from the " + gemini.APIKeyEnv + " environment variable, " +
		"or from a .env file in the current directory.",
	Args: cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		envFile, _ := cmd.Flags().GetString("env-file")
		if err := gemini.LoadEnvFile(envFile); err != nil {
			return fmt.Errorf("failed to load env file %q: %w", envFile, err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd)

		client, err := newClient(cmd, logger)
		if errors.Is(err, errNotConfigured) {
			return nil
		}
		if err != nil {
			return err
		}

		if list, _ := cmd.Flags().GetBool("list-models"); list {
			return printModels(cmd, client, logger)
		}

		return runChat(cmd, client, logger)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("env-file", ".env", "File to load environment variables from, if it exists")
	flags.Bool("debug", false, "Log diagnostic output to stderr")
	flags.Int("rpm", 0, "Maximum requests per minute to send (0 means no limit)")

	rootCmd.Flags().StringP("model", "m", gemini.DefaultModel, "Model to chat with (or set "+gemini.ModelEnv+")")
	rootCmd.Flags().BoolP("list-models", "l", false, "List available models and exit")
	rootCmd.Flags().Int("width", 0, "Column to wrap replies at (0 means the terminal width)")
	rootCmd.Flags().Bool("markdown", false, "Render replies as markdown")
	rootCmd.Flags().String("transcript", "", "Directory to keep a persistent transcript in")
}

// newLogger returns the logger for diagnostics. It only prints warnings
// unless --debug is set.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	return logger
}

// errNotConfigured means the client couldn't be configured. It has been
// reported, and the program exits normally.
var errNotConfigured = errors.New("not configured")

// newClient resolves the API key and configures a client. A missing key is
// reported with instructions for setting it.
func newClient(cmd *cobra.Command, logger *slog.Logger) (*gemini.Client, error) {
	apiKey, err := gemini.ResolveAPIKey(os.LookupEnv)
	if errors.Is(err, gemini.ErrMissingAPIKey) {
		fmt.Fprintln(cmd.ErrOrStderr(), gemini.APIKeyInstructions)
		os.Exit(1)
	}
	if err != nil {
		return nil, err
	}

	cfg := gemini.DefaultConfig(apiKey)
	cfg.RequestsPerMinute, _ = cmd.Flags().GetInt("rpm")
	cfg.Logger = logger

	client, err := gemini.NewClient(cmd.Context(), cfg)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), styleError.Render("Error configuring Gemini API:")+" "+err.Error())
		return nil, errNotConfigured
	}

	return client, nil
}

// chatModel is the --model flag, or GEMINI_MODEL when the flag isn't given.
func chatModel(cmd *cobra.Command) string {
	model, _ := cmd.Flags().GetString("model")
	if cmd.Flags().Changed("model") {
		return model
	}

	if env, ok := os.LookupEnv(gemini.ModelEnv); ok && env != "" {
		return env
	}

	return model
}

func runChat(cmd *cobra.Command, client *gemini.Client, logger *slog.Logger) error {
	ctx := cmd.Context()

	dir, _ := cmd.Flags().GetString("transcript")

	transcript, err := openTranscript(dir, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := transcript.Close(ctx); err != nil {
			logger.Warn("failed to close transcript", "error", err)
		}
	}()

	width, _ := cmd.Flags().GetInt("width")
	markdown, _ := cmd.Flags().GetBool("markdown")

	session, err := chat.NewSession(
		ctx,
		chat.ClientFactory(client),
		chatModel(cmd),
		cmd.InOrStdin(),
		cmd.OutOrStdout(),
		chat.WithTranscript(transcript),
		chat.WithWidth(chat.ResolveWidth(width, os.Stdout)),
		chat.WithMarkdown(markdown),
		chat.WithLogger(logger),
	)
	if errors.Is(err, chat.ErrNoConversation) {
		// The reason has been printed; there's nothing to chat with.
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to create chat session: %w", err)
	}

	session.Run(ctx)

	return nil
}
