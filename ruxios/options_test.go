package ruxios

import (
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestNewConfig(t *testing.T) {
	cfg := newConfig()

	assert.Equal(t, DefaultConfig(), cfg.config)
	assert.NotNil(t, cfg.TracerProvider)
	assert.NotNil(t, cfg.MeterProvider)
	assert.NotNil(t, cfg.Tracer)
	assert.NotNil(t, cfg.Meter)
	assert.NotNil(t, cfg.Metrics)
	assert.NotNil(t, cfg.Propagators)
	assert.NotNil(t, cfg.Interceptors)
	assert.Nil(t, cfg.RateLimit)
	assert.False(t, cfg.Debug)
	assert.False(t, cfg.GenerateCurl)
}

func TestWithServiceName(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		wantAttrs   []attribute.KeyValue
	}{
		{
			name:        "given service name, then adds client name attribute",
			serviceName: "github-client",
			wantAttrs:   []attribute.KeyValue{attribute.String("http.client.name", "github-client")},
		},
		{
			name:        "given empty service name, then no attributes",
			serviceName: "",
			wantAttrs:   []attribute.KeyValue{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newConfig(WithServiceName(tt.serviceName))
			assert.Equal(t, tt.serviceName, cfg.ServiceName)
			assert.Equal(t, tt.wantAttrs, cfg.baseAttributes())
		})
	}
}

func TestWithProviders(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	mp := sdkmetric.NewMeterProvider()

	cfg := newConfig(WithTracerProvider(tp), WithMeterProvider(mp))

	assert.Same(t, tp, cfg.TracerProvider)
	assert.Same(t, mp, cfg.MeterProvider)
}

func TestWithPropagators(t *testing.T) {
	p := propagation.TraceContext{}
	cfg := newConfig(WithPropagators(p))

	assert.Equal(t, p, cfg.Propagators)
}

func TestWithFilter(t *testing.T) {
	skipHealth := func(r *http.Request) bool { return r.URL.Path != "/health" }
	cfg := newConfig(WithFilter(skipHealth))

	health, _ := http.NewRequest(http.MethodGet, "http://x/health", nil)
	users, _ := http.NewRequest(http.MethodGet, "http://x/users", nil)

	assert.Len(t, cfg.Filters, 1)
	assert.False(t, cfg.shouldTrace(health))
	assert.True(t, cfg.shouldTrace(users))
}

func TestWithTransport(t *testing.T) {
	t.Run("given no transport, then falls back to the default", func(t *testing.T) {
		cfg := newConfig()
		assert.Equal(t, http.DefaultTransport, cfg.baseTransport())
	})

	t.Run("given transport, then uses it", func(t *testing.T) {
		mock := NewMockTransport()
		cfg := newConfig(WithTransport(mock))
		assert.Same(t, mock, cfg.baseTransport())
	})

	t.Run("given rate limit, then wraps the transport", func(t *testing.T) {
		mock := NewMockTransport()
		cfg := newConfig(WithTransport(mock), WithRateLimit(RateLimitConfig{RequestsPerSecond: 10}))

		rl, ok := cfg.baseTransport().(*rateLimitTransport)
		assert.True(t, ok)
		assert.Same(t, mock, rl.next)
	})
}

func TestWithDebugOptions(t *testing.T) {
	logger := zerolog.Nop()
	cfg := newConfig(WithLogger(logger), WithDebug(true), WithGenerateCurl(true))

	assert.True(t, cfg.Debug)
	assert.True(t, cfg.GenerateCurl)
	assert.Equal(t, logger, cfg.Logger)
}
