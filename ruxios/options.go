package ruxios

import (
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const (
	// scope is the instrumentation scope name for OpenTelemetry.
	scope = "github.com/kroma-labs/ruxios-go/ruxios"
)

// defaultLogger is used for debug output unless WithLogger is given.
var defaultLogger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// internalConfig holds the client Config together with the ambient settings
// (instrumentation, logging, transport) set through options.
type internalConfig struct {
	// config is the user-facing client configuration.
	config Config

	// === OpenTelemetry ===

	TracerProvider trace.TracerProvider
	MeterProvider  metric.MeterProvider
	Tracer         trace.Tracer
	Meter          metric.Meter
	Metrics        *metrics

	// Propagators injects trace context into outgoing headers.
	// Default: TraceContext + Baggage (W3C)
	Propagators propagation.TextMapPropagator

	// ServiceName is added as "http.client.name" on spans and metrics.
	ServiceName string

	// Filters decide which requests are traced. All must return true.
	Filters []Filter

	// === Transport ===

	// Transport is the base round tripper. Nil means http.DefaultTransport.
	Transport http.RoundTripper

	// RateLimit throttles requests before they reach Transport. Nil disables it.
	RateLimit *RateLimitConfig

	// === Debugging ===

	Logger       zerolog.Logger
	Debug        bool
	GenerateCurl bool

	// === Interceptors ===

	Interceptors *InterceptorChain
}

// newConfig creates a new internal config with defaults and applies options.
func newConfig(opts ...Option) *internalConfig {
	cfg := &internalConfig{
		config:         DefaultConfig(),
		TracerProvider: otel.GetTracerProvider(),
		MeterProvider:  otel.GetMeterProvider(),
		Propagators: propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		),
		Logger:       defaultLogger,
		Interceptors: NewInterceptorChain(),
	}

	for _, opt := range opts {
		opt(cfg)
	}

	cfg.config = cfg.config.clone()
	cfg.Tracer = cfg.TracerProvider.Tracer(scope)
	cfg.Meter = cfg.MeterProvider.Meter(scope)

	// A nil *metrics is safe to record on; instruments are optional.
	cfg.Metrics, _ = newMetrics(cfg.Meter)

	return cfg
}

// baseTransport returns the round tripper the instrumentation wraps: the
// configured transport behind the optional rate limiter.
func (cfg *internalConfig) baseTransport() http.RoundTripper {
	base := cfg.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	return newRateLimitTransport(base, cfg.RateLimit)
}

// baseAttributes returns common attributes for all spans and metrics.
func (cfg *internalConfig) baseAttributes() []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, 1)
	if cfg.ServiceName != "" {
		attrs = append(attrs, attribute.String("http.client.name", cfg.ServiceName))
	}
	return attrs
}

// shouldTrace reports whether every filter accepts req.
func (cfg *internalConfig) shouldTrace(req *http.Request) bool {
	for _, f := range cfg.Filters {
		if !f(req) {
			return false
		}
	}
	return true
}

// Filter determines whether a request should be traced.
// Return true to trace the request, false to skip tracing.
type Filter func(r *http.Request) bool

// Option configures a Client.
type Option func(*internalConfig)

// WithConfig replaces the whole client Config.
//
// Example:
//
//	client := ruxios.New(ruxios.WithConfig(ruxios.Config{
//	    BaseURL: "https://jsonplaceholder.typicode.com",
//	    Timeout: 5 * time.Second,
//	}))
func WithConfig(c Config) Option {
	return func(cfg *internalConfig) {
		cfg.config = c
	}
}

// WithBaseURL sets Config.BaseURL.
func WithBaseURL(baseURL string) Option {
	return func(cfg *internalConfig) {
		cfg.config.BaseURL = baseURL
	}
}

// WithTimeout sets Config.Timeout. Zero disables the timeout.
func WithTimeout(d time.Duration) Option {
	return func(cfg *internalConfig) {
		cfg.config.Timeout = d
	}
}

// WithDefaultHeaders appends "Name: value" entries to Config.DefaultHeaders.
//
// Example:
//
//	client := ruxios.New(
//	    ruxios.WithDefaultHeaders("Accept: application/json"),
//	)
func WithDefaultHeaders(headers ...string) Option {
	return func(cfg *internalConfig) {
		cfg.config.DefaultHeaders = append(cfg.config.DefaultHeaders, headers...)
	}
}

// WithServiceName sets an identifier for this client in traces and metrics.
// It is recorded as the "http.client.name" attribute.
func WithServiceName(name string) Option {
	return func(cfg *internalConfig) {
		cfg.ServiceName = name
	}
}

// WithTracerProvider sets the OpenTelemetry TracerProvider.
// If not called, the global provider from otel.GetTracerProvider() is used.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(cfg *internalConfig) {
		cfg.TracerProvider = tp
	}
}

// WithMeterProvider sets the OpenTelemetry MeterProvider.
// If not called, the global provider from otel.GetMeterProvider() is used.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(cfg *internalConfig) {
		cfg.MeterProvider = mp
	}
}

// WithPropagators sets the propagators used to inject trace context.
func WithPropagators(p propagation.TextMapPropagator) Option {
	return func(cfg *internalConfig) {
		cfg.Propagators = p
	}
}

// WithFilter adds a tracing filter. Requests rejected by any filter are sent
// without a span; metrics are still recorded.
//
// Example - skip health checks:
//
//	client := ruxios.New(
//	    ruxios.WithFilter(func(r *http.Request) bool {
//	        return !strings.HasPrefix(r.URL.Path, "/health")
//	    }),
//	)
func WithFilter(f Filter) Option {
	return func(cfg *internalConfig) {
		cfg.Filters = append(cfg.Filters, f)
	}
}

// WithTransport sets the base http.RoundTripper that performs the exchange.
// The instrumentation wraps it.
func WithTransport(rt http.RoundTripper) Option {
	return func(cfg *internalConfig) {
		cfg.Transport = rt
	}
}

// WithLogger sets the zerolog logger used for debug output.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *internalConfig) {
		cfg.Logger = logger
	}
}

// WithDebug logs every request and response at debug level.
func WithDebug(enabled bool) Option {
	return func(cfg *internalConfig) {
		cfg.Debug = enabled
	}
}

// WithGenerateCurl logs the cURL equivalent of every request at debug level.
func WithGenerateCurl(enabled bool) Option {
	return func(cfg *internalConfig) {
		cfg.GenerateCurl = enabled
	}
}
