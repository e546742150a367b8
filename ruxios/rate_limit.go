package ruxios

import (
	"context"
	"errors"
	"net/http"

	"golang.org/x/time/rate"
)

// RateLimitConfig throttles the requests a Client sends.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate. Zero or less disables limiting.
	RequestsPerSecond float64

	// Burst is the number of requests allowed at once above the rate.
	// Values below 1 are treated as 1.
	Burst int

	// WaitOnLimit makes requests wait for a slot, bounded by their context.
	// Otherwise they fail immediately with ErrRateLimited.
	WaitOnLimit bool
}

// ErrRateLimited is the cause of a KindTransport error for a request
// rejected by the client rate limit.
var ErrRateLimited = errors.New("rate limit exceeded")

type rateLimitTransport struct {
	next    http.RoundTripper
	limiter *rate.Limiter
	wait    bool
}

func newRateLimitTransport(next http.RoundTripper, cfg *RateLimitConfig) http.RoundTripper {
	if cfg == nil || cfg.RequestsPerSecond <= 0 {
		return next
	}
	burst := max(cfg.Burst, 1)
	return &rateLimitTransport{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst),
		wait:    cfg.WaitOnLimit,
	}
}

// RoundTrip implements http.RoundTripper.
func (t *rateLimitTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if !t.wait {
		if !t.limiter.Allow() {
			return nil, ErrRateLimited
		}
		return t.next.RoundTrip(req)
	}

	if err := t.limiter.Wait(req.Context()); err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, ErrRateLimited
	}
	return t.next.RoundTrip(req)
}

// WithRateLimit throttles every request the client sends.
//
// Example:
//
//	client := ruxios.New(
//	    ruxios.WithBaseURL("https://api.github.com"),
//	    ruxios.WithRateLimit(ruxios.RateLimitConfig{RequestsPerSecond: 5, Burst: 1, WaitOnLimit: true}),
//	)
func WithRateLimit(rl RateLimitConfig) Option {
	return func(cfg *internalConfig) {
		cfg.RateLimit = &rl
	}
}
