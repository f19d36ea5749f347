package gemini_test

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/picatz/gemini"
	"github.com/shoenig/test/must"
	"google.golang.org/genai"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want gemini.ErrorKind
	}{
		{"nil", nil, gemini.ErrorKindOther},
		{"api 401", genai.APIError{Code: 401, Message: "unauthenticated"}, gemini.ErrorKindAuth},
		{"api 403", genai.APIError{Code: 403, Message: "permission denied"}, gemini.ErrorKindAuth},
		{"api 404", genai.APIError{Code: 404, Message: "models/x is not found"}, gemini.ErrorKindNotFound},
		{"api 429", genai.APIError{Code: 429, Message: "Resource has been exhausted"}, gemini.ErrorKindRateLimited},
		{"api status only", genai.APIError{Status: "RESOURCE_EXHAUSTED"}, gemini.ErrorKindRateLimited},
		{"api invalid key", genai.APIError{Code: 400, Message: "API key not valid. Please pass a valid API key.", Status: "INVALID_ARGUMENT"}, gemini.ErrorKindAuth},
		{"api 500", genai.APIError{Code: 500, Message: "internal"}, gemini.ErrorKindOther},
		{"api pointer", &genai.APIError{Code: 404}, gemini.ErrorKindNotFound},
		{"wrapped api", fmt.Errorf("send: %w", genai.APIError{Code: 429}), gemini.ErrorKindRateLimited},
		{"missing key", gemini.ErrMissingAPIKey, gemini.ErrorKindAuth},
		{"deadline", context.DeadlineExceeded, gemini.ErrorKindNetwork},
		{"dial", &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}, gemini.ErrorKindNetwork},
		{"text quota", errors.New("Error 429: You exceeded your current QUOTA"), gemini.ErrorKindRateLimited},
		{"text 429 only", errors.New("429 too many requests"), gemini.ErrorKindOther},
		{"text not found", errors.New("404 models/foo Not Found"), gemini.ErrorKindNotFound},
		{"text other", errors.New("something broke"), gemini.ErrorKindOther},
		{"typed", &gemini.Error{Kind: gemini.ErrorKindNetwork, Err: errors.New("429 quota")}, gemini.ErrorKindNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			must.Eq(t, tt.want, gemini.KindOf(tt.err))
		})
	}
}

func TestError_messageIsVerbatim(t *testing.T) {
	cause := errors.New("upstream said no")
	err := &gemini.Error{Kind: gemini.ErrorKindOther, Op: "send message", Err: cause}

	must.Eq(t, "upstream said no", err.Error())
	must.ErrorIs(t, err, cause)

	var target *gemini.Error
	must.True(t, errors.As(fmt.Errorf("outer: %w", err), &target))
	must.Eq(t, "send message", target.Op)
}

func TestErrorKind_String(t *testing.T) {
	must.Eq(t, "other", gemini.ErrorKindOther.String())
	must.Eq(t, "auth", gemini.ErrorKindAuth.String())
	must.Eq(t, "notFound", gemini.ErrorKindNotFound.String())
	must.Eq(t, "rateLimited", gemini.ErrorKindRateLimited.String())
	must.Eq(t, "network", gemini.ErrorKindNetwork.String())
}
