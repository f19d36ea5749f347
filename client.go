// Package gemini is a small client for chatting with the Gemini API.
//
// It wraps the official SDK with the handful of things a terminal chat needs:
// a fixed generation configuration, a filtered model catalog with a static
// fallback, and errors that carry a kind instead of only a message.
//
// https://ai.google.dev/gemini-api/docs
package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// Config is everything needed to build a Client. It is created once at
// startup and not modified afterwards.
type Config struct {
	// APIKey authenticates every request.
	APIKey string

	// BaseURL overrides the service endpoint. Empty means the SDK default.
	BaseURL string

	// HTTPClient is the HTTP client used for requests. If nil, the SDK
	// creates its own.
	HTTPClient *http.Client

	// RequestsPerMinute paces chat messages. Zero means no pacing.
	RequestsPerMinute int

	// Generation is the sampling configuration for every chat.
	Generation GenerationConfig

	// Safety maps harm categories to block thresholds for every chat.
	Safety map[HarmCategory]HarmBlockThreshold

	// Logger receives diagnostic output. If nil, slog.Default is used.
	Logger *slog.Logger
}

// DefaultConfig returns a Config with the fixed generation configuration
// and safety thresholds.
func DefaultConfig(apiKey string) Config {
	return Config{
		APIKey:     apiKey,
		Generation: DefaultGeneration,
		Safety:     SafetyThresholds,
	}
}

// Client talks to the Gemini API.
type Client struct {
	cfg     Config
	genai   *genai.Client
	limiter *rate.Limiter
	logger  *slog.Logger
}

// Ensure Client can be used as a model catalog.
var _ ModelLister = (*Client)(nil)

// NewClient returns a new Client configured by cfg.
//
// Configuration problems, such as an empty API key, are returned as an
// *Error of kind ErrorKindAuth.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, &Error{Kind: ErrorKindAuth, Op: "configure", Err: ErrMissingAPIKey}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
		HTTPOptions: genai.HTTPOptions{
			BaseURL: cfg.BaseURL,
		},
	})
	if err != nil {
		return nil, &Error{Kind: ErrorKindAuth, Op: "configure", Err: err}
	}

	return &Client{
		cfg:     cfg,
		genai:   gc,
		limiter: NewRequestLimiter(cfg.RequestsPerMinute),
		logger:  logger,
	}, nil
}

// ListModels returns the name of every model the service exposes,
// following pagination.
func (c *Client) ListModels(ctx context.Context) ([]string, error) {
	var names []string

	for model, err := range c.genai.Models.All(ctx) {
		if err != nil {
			return nil, wrapError("list models", err)
		}
		names = append(names, model.Name)
	}

	c.logger.Debug("listed models", "count", len(names))

	return names, nil
}

// StartChat opens a chat with an empty history on the given model.
//
// The model is looked up first, so an unknown or unsupported model fails
// here with ErrorKindNotFound instead of on the first message.
func (c *Client) StartChat(ctx context.Context, model string) (*Chat, error) {
	if _, err := c.genai.Models.Get(ctx, model, nil); err != nil {
		return nil, wrapError("get model", err)
	}

	gc, err := c.genai.Chats.Create(ctx, model, contentConfig(c.cfg.Generation, c.cfg.Safety), nil)
	if err != nil {
		return nil, wrapError("create chat", err)
	}

	c.logger.Debug("started chat", "model", model)

	return &Chat{
		model:   model,
		chat:    gc,
		limiter: c.limiter,
		logger:  c.logger,
	}, nil
}

// Reply is the model's answer to a single message.
type Reply struct {
	// Text of the reply, with all parts joined.
	Text string

	// PromptTokens is the size of the prompt, including the history.
	PromptTokens int32

	// ResponseTokens is the size of the reply.
	ResponseTokens int32

	// TotalTokens is the total billed for the exchange.
	TotalTokens int32
}

// Chat is a multi-turn conversation with one model. The SDK keeps the
// history and sends it with every message.
type Chat struct {
	model   string
	chat    *genai.Chat
	limiter *rate.Limiter
	logger  *slog.Logger
}

// Model returns the model the chat is bound to.
func (c *Chat) Model() string {
	return c.model
}

// Send sends text as the next user message and returns the model's reply.
func (c *Chat) Send(ctx context.Context, text string) (Reply, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return Reply{}, wrapError("send message", fmt.Errorf("waiting for rate limiter: %w", err))
	}

	resp, err := c.chat.SendMessage(ctx, genai.Part{Text: text})
	if err != nil {
		return Reply{}, wrapError("send message", err)
	}

	reply := Reply{Text: resp.Text()}
	if usage := resp.UsageMetadata; usage != nil {
		reply.PromptTokens = usage.PromptTokenCount
		reply.ResponseTokens = usage.CandidatesTokenCount
		reply.TotalTokens = usage.TotalTokenCount
	}

	c.logger.Debug("received reply", "model", c.model, "tokens", reply.TotalTokens)

	return reply, nil
}
