package gemini

import (
	"time"

	"golang.org/x/time/rate"
)

// NewRequestLimiter returns a limiter that allows requestsPerMinute
// requests per minute, with a burst of one so requests are spread out
// evenly instead of bunching up at the start of each minute.
//
// A non-positive value disables pacing.
//
// # Example
//
//	limiter := gemini.NewRequestLimiter(15) // free tier
//	if err := limiter.Wait(ctx); err != nil {
//	    return err
//	}
func NewRequestLimiter(requestsPerMinute int) *rate.Limiter {
	if requestsPerMinute <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(requestsPerMinute)), 1)
}
