package gemini_test

import (
	"context"
	"testing"
	"time"

	"github.com/picatz/gemini"
	"github.com/shoenig/test/must"
	"golang.org/x/time/rate"
)

func TestNewRequestLimiter(t *testing.T) {
	limiter := gemini.NewRequestLimiter(15)

	must.Eq(t, rate.Every(4*time.Second), limiter.Limit())
	must.Eq(t, 1, limiter.Burst())

	// The first request goes through, the next has to wait its turn.
	must.True(t, limiter.Allow())
	must.False(t, limiter.Allow())
}

func TestNewRequestLimiter_disabled(t *testing.T) {
	for _, rpm := range []int{0, -1} {
		limiter := gemini.NewRequestLimiter(rpm)
		must.Eq(t, rate.Inf, limiter.Limit())

		for range 100 {
			must.True(t, limiter.Allow())
		}
	}
}

func TestNewRequestLimiter_waitHonorsContext(t *testing.T) {
	limiter := gemini.NewRequestLimiter(1)
	must.True(t, limiter.Allow())

	ctx, cancel := context.WithTimeout(t.Context(), 10*time.Millisecond)
	defer cancel()

	// The next token is a minute away, well past the deadline.
	must.Error(t, limiter.Wait(ctx))
}
