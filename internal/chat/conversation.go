package chat

import (
	"context"
	"fmt"
	"io"

	"github.com/picatz/gemini"
)

// Conversation is a remote multi-turn conversation bound to one model.
type Conversation interface {
	Send(ctx context.Context, text string) (gemini.Reply, error)
}

// Factory starts new conversations.
type Factory interface {
	StartConversation(ctx context.Context, model string) (Conversation, error)
}

// FactoryFunc adapts a function to the Factory interface.
type FactoryFunc func(ctx context.Context, model string) (Conversation, error)

// StartConversation calls f(ctx, model).
func (f FactoryFunc) StartConversation(ctx context.Context, model string) (Conversation, error) {
	return f(ctx, model)
}

// ClientFactory returns a Factory backed by a Gemini client.
func ClientFactory(client *gemini.Client) Factory {
	return FactoryFunc(func(ctx context.Context, model string) (Conversation, error) {
		c, err := client.StartChat(ctx, model)
		if err != nil {
			return nil, err
		}
		return c, nil
	})
}

// Open starts a conversation on model, writing a message to w if it can't.
//
// It never returns an error: a nil Conversation means the caller cannot
// proceed with that model.
func Open(ctx context.Context, w io.Writer, f Factory, model string) Conversation {
	conv, err := f.StartConversation(ctx, model)
	if err == nil && conv != nil {
		return conv
	}

	if err == nil {
		err = fmt.Errorf("no conversation returned for model %q", model)
	}

	switch gemini.KindOf(err) {
	case gemini.ErrorKindNotFound:
		fmt.Fprintln(w, styleError.Render("Error:")+fmt.Sprintf(" Model '%s' is not supported for chat/content generation.", model))
		fmt.Fprintln(w, "Try using one of these reliable models instead:")
		for i, name := range gemini.FallbackModels() {
			if i == 0 {
				name += " (recommended)"
			}
			fmt.Fprintln(w, "  - "+name)
		}
	default:
		fmt.Fprintln(w, styleError.Render("Error creating chat session:")+" "+err.Error())
	}

	return nil
}
