package chat

import (
	"context"
	"fmt"
	"time"

	"github.com/picatz/gemini/internal/chat/storage"
	"github.com/segmentio/ksuid"
)

// Turn is one prompt and its reply, as recorded in the transcript.
type Turn struct {
	Model          string    `json:"model,omitzero"`
	Prompt         string    `json:"prompt,omitzero"`
	Response       string    `json:"response,omitzero"`
	PromptTokens   int32     `json:"prompt_tokens,omitzero"`
	ResponseTokens int32     `json:"response_tokens,omitzero"`
	Time           time.Time `json:"time,omitzero"`
}

// Transcript stores turns keyed by KSUID, so key order is the order the
// turns happened in.
type Transcript = storage.Backend[string, Turn]

// TranscriptCodec is the codec for on-disk transcripts.
type TranscriptCodec = storage.StringKeyCodec[Turn]

// recordTurn stores turn under a new KSUID that sorts after prev, so turns
// recorded within the same second keep their order.
func recordTurn(ctx context.Context, t Transcript, prev ksuid.KSUID, turn Turn) (ksuid.KSUID, error) {
	id, err := ksuid.NewRandomWithTime(turn.Time)
	if err != nil {
		return prev, fmt.Errorf("failed to generate transcript key: %w", err)
	}

	if !prev.IsNil() && ksuid.Compare(id, prev) <= 0 {
		id = prev.Next()
	}

	if err := t.Set(ctx, id.String(), turn); err != nil {
		return prev, fmt.Errorf("failed to record turn: %w", err)
	}

	return id, nil
}

// recentTurns returns up to n of the most recent turns, oldest first.
func recentTurns(ctx context.Context, t Transcript, n int) ([]storage.Entry[string, Turn], error) {
	all, err := storage.All(ctx, t, 50)
	if err != nil {
		return nil, fmt.Errorf("failed to list transcript: %w", err)
	}

	if n > 0 && len(all) > n {
		all = all[len(all)-n:]
	}

	return all, nil
}
