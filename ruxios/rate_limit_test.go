package ruxios

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRateLimitTransport_Disabled(t *testing.T) {
	mock := NewMockTransport()

	tests := []struct {
		name string
		cfg  *RateLimitConfig
	}{
		{name: "given nil config, then returns next", cfg: nil},
		{name: "given zero rate, then returns next", cfg: &RateLimitConfig{Burst: 5}},
		{name: "given negative rate, then returns next", cfg: &RateLimitConfig{RequestsPerSecond: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Same(t, mock, newRateLimitTransport(mock, tt.cfg))
		})
	}
}

func TestRateLimit_AllowsWithinBurst(t *testing.T) {
	mock := NewMockTransport().StubResponse(http.StatusOK, `{}`)
	client := New(
		WithMockTransport(mock),
		WithRateLimit(RateLimitConfig{RequestsPerSecond: 1, Burst: 3}),
	)

	for range 3 {
		_, err := Get[Value, Value](context.Background(), client, "http://api.test/x")
		require.NoError(t, err)
	}
	assert.Equal(t, 3, mock.RequestCount())
}

func TestRateLimit_FailFast(t *testing.T) {
	mock := NewMockTransport().StubResponse(http.StatusOK, `{}`)
	client := New(
		WithMockTransport(mock),
		WithRateLimit(RateLimitConfig{RequestsPerSecond: 0.001, Burst: 1}),
	)
	ctx := context.Background()

	_, err := Get[Value, Value](ctx, client, "http://api.test/x")
	require.NoError(t, err)

	_, err = Get[Value, Value](ctx, client, "http://api.test/x")
	require.Error(t, err)
	assert.True(t, IsTransport(err))
	assert.ErrorIs(t, err, ErrRateLimited)
	assert.Equal(t, 1, mock.RequestCount(), "rejected request never reaches the transport")
}

func TestRateLimit_WaitMode(t *testing.T) {
	mock := NewMockTransport().StubResponse(http.StatusOK, `{}`)
	client := New(
		WithMockTransport(mock),
		WithRateLimit(RateLimitConfig{RequestsPerSecond: 20, Burst: 1, WaitOnLimit: true}),
	)
	ctx := context.Background()

	start := time.Now()
	for range 3 {
		_, err := Get[Value, Value](ctx, client, "http://api.test/x")
		require.NoError(t, err)
	}

	assert.GreaterOrEqual(t, time.Since(start), 80*time.Millisecond)
	assert.Equal(t, 3, mock.RequestCount())
}

func TestRateLimit_WaitRespectsContext(t *testing.T) {
	mock := NewMockTransport().StubResponse(http.StatusOK, `{}`)
	client := New(
		WithMockTransport(mock),
		WithRateLimit(RateLimitConfig{RequestsPerSecond: 0.01, Burst: 1, WaitOnLimit: true}),
	)

	_, err := Get[Value, Value](context.Background(), client, "http://api.test/x")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = Get[Value, Value](ctx, client, "http://api.test/x")
	require.Error(t, err)
	assert.True(t, IsTransport(err))
	assert.True(t,
		errors.Is(err, ErrRateLimited) || errors.Is(err, context.DeadlineExceeded),
		"either the limiter rejects up front or the deadline expires: %v", err)
}
