package ruxios

import (
	"io"
	"sync/atomic"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// trackedBody wraps a response body so the request span covers reading it.
// The span ends, and onClose runs with the byte count, on the first of
// EOF or Close.
type trackedBody struct {
	span    trace.Span
	body    io.ReadCloser
	read    atomic.Int64
	done    atomic.Bool
	onClose func(bytesRead int64)
}

func newTrackedBody(span trace.Span, body io.ReadCloser, onClose func(int64)) io.ReadCloser {
	if body == nil {
		span.End()
		return nil
	}
	return &trackedBody{span: span, body: body, onClose: onClose}
}

func (b *trackedBody) Read(p []byte) (int, error) {
	n, err := b.body.Read(p)
	b.read.Add(int64(n))

	switch err {
	case nil:
	case io.EOF:
		b.finish()
	default:
		b.span.RecordError(err)
		b.span.SetStatus(codes.Error, err.Error())
	}
	return n, err
}

func (b *trackedBody) Close() error {
	b.finish()
	return b.body.Close()
}

func (b *trackedBody) finish() {
	if !b.done.CompareAndSwap(false, true) {
		return
	}
	if b.onClose != nil {
		b.onClose(b.read.Load())
	}
	b.span.End()
}
