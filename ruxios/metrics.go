package ruxios

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// metrics holds the metric instruments for client operations.
// All record methods are no-ops on a nil receiver.
type metrics struct {
	// requestDuration measures the round trip duration in seconds.
	requestDuration metric.Float64Histogram

	// requestBodySize measures the size of request bodies in bytes.
	requestBodySize metric.Int64Histogram

	// responseBodySize measures the bytes read from response bodies.
	responseBodySize metric.Int64Histogram

	// activeRequests tracks the number of in-flight requests.
	activeRequests metric.Int64UpDownCounter

	// requestErrors counts transport failures by error type.
	requestErrors metric.Int64Counter

	// decodeErrors counts body encode/decode failures.
	decodeErrors metric.Int64Counter
}

var sizeBuckets = []float64{0, 100, 1024, 10 * 1024, 100 * 1024, 1024 * 1024, 10 * 1024 * 1024}

// newMetrics creates and registers metric instruments.
func newMetrics(meter metric.Meter) (*metrics, error) {
	m := &metrics{}
	var err error

	m.requestDuration, err = meter.Float64Histogram(
		"http.client.request.duration",
		metric.WithDescription("Duration of HTTP client requests in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.005, 0.01, 0.025, 0.05, 0.075, 0.1, 0.25, 0.5, 0.75, 1, 2.5, 5, 7.5, 10,
		),
	)
	if err != nil {
		return nil, err
	}

	m.requestBodySize, err = meter.Int64Histogram(
		"http.client.request.body.size",
		metric.WithDescription("Size of HTTP client request bodies in bytes"),
		metric.WithUnit("By"),
		metric.WithExplicitBucketBoundaries(sizeBuckets...),
	)
	if err != nil {
		return nil, err
	}

	m.responseBodySize, err = meter.Int64Histogram(
		"http.client.response.body.size",
		metric.WithDescription("Size of HTTP client response bodies in bytes"),
		metric.WithUnit("By"),
		metric.WithExplicitBucketBoundaries(sizeBuckets...),
	)
	if err != nil {
		return nil, err
	}

	m.activeRequests, err = meter.Int64UpDownCounter(
		"http.client.active_requests",
		metric.WithDescription("Number of in-flight HTTP client requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	m.requestErrors, err = meter.Int64Counter(
		"http.client.request.errors",
		metric.WithDescription("Number of HTTP client requests that failed in transport"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	m.decodeErrors, err = meter.Int64Counter(
		"ruxios.client.decode.errors",
		metric.WithDescription("Number of request or response bodies that failed to encode or decode"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	return m, nil
}

func (m *metrics) recordRequestDuration(
	ctx context.Context,
	duration time.Duration,
	attrs []attribute.KeyValue,
) {
	if m == nil {
		return
	}
	m.requestDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
}

func (m *metrics) recordRequestBodySize(ctx context.Context, size int64, attrs []attribute.KeyValue) {
	if m == nil {
		return
	}
	m.requestBodySize.Record(ctx, size, metric.WithAttributes(attrs...))
}

func (m *metrics) recordResponseBodySize(ctx context.Context, size int64, attrs []attribute.KeyValue) {
	if m == nil {
		return
	}
	m.responseBodySize.Record(ctx, size, metric.WithAttributes(attrs...))
}

func (m *metrics) recordActiveRequestStart(ctx context.Context, attrs []attribute.KeyValue) {
	if m == nil {
		return
	}
	m.activeRequests.Add(ctx, 1, metric.WithAttributes(attrs...))
}

func (m *metrics) recordActiveRequestEnd(ctx context.Context, attrs []attribute.KeyValue) {
	if m == nil {
		return
	}
	m.activeRequests.Add(ctx, -1, metric.WithAttributes(attrs...))
}

func (m *metrics) recordError(ctx context.Context, errorType string, attrs []attribute.KeyValue) {
	if m == nil {
		return
	}
	allAttrs := append(append([]attribute.KeyValue(nil), attrs...), attribute.String("error.type", errorType))
	m.requestErrors.Add(ctx, 1, metric.WithAttributes(allAttrs...))
}

// recordDecodeError counts a codec failure; phase is "request" or "response".
func (m *metrics) recordDecodeError(ctx context.Context, phase string, attrs []attribute.KeyValue) {
	if m == nil {
		return
	}
	allAttrs := append(append([]attribute.KeyValue(nil), attrs...), attribute.String("ruxios.phase", phase))
	m.decodeErrors.Add(ctx, 1, metric.WithAttributes(allAttrs...))
}
