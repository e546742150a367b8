package ruxios

import (
	"errors"
	"fmt"
)

// ErrorKind discriminates the variants of Error.
type ErrorKind int

const (
	// KindTransport is a failure to send the request or read the response.
	KindTransport ErrorKind = iota
	// KindDecode is a failure to encode the request body or decode a response body.
	KindDecode
	// KindEnv is a failure to read configuration from the environment.
	KindEnv
	// KindMethod is an HTTP response outside the 2xx range, or a synthetic
	// error built with NewErrorFromString or NewErrorFromValue.
	KindMethod
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindDecode:
		return "decode"
	case KindEnv:
		return "env"
	case KindMethod:
		return "method"
	default:
		return "unknown"
	}
}

// Sentinels matched by errors.Is against any *Error, whatever its value type.
var (
	ErrTransport = errors.New("ruxios: transport error")
	ErrDecode    = errors.New("ruxios: decode error")
	ErrEnv       = errors.New("ruxios: env error")
	ErrMethod    = errors.New("ruxios: method error")

	// ErrEnvNotPresent is the cause of a KindEnv error for an unset variable.
	ErrEnvNotPresent = errors.New("environment variable not found")
)

func (k ErrorKind) sentinel() error {
	switch k {
	case KindTransport:
		return ErrTransport
	case KindDecode:
		return ErrDecode
	case KindEnv:
		return ErrEnv
	case KindMethod:
		return ErrMethod
	default:
		return nil
	}
}

// Error is the error returned by every request in this package. E is the
// caller-chosen type the body of a non-2xx response is decoded into.
//
// Only KindMethod errors carry Value. Status is the HTTP status when a
// response was received, and 0 otherwise.
//
// Example:
//
//	resp, err := ruxios.Get[User, APIError](ctx, client, "/users/42")
//	var apiErr *ruxios.Error[APIError]
//	if errors.As(err, &apiErr) && apiErr.Kind == ruxios.KindMethod {
//	    log.Printf("status %d: %s", apiErr.Status, apiErr.Value.Message)
//	}
type Error[E any] struct {
	Kind   ErrorKind
	Status int
	Value  E
	Err    error
}

// Error implements the error interface.
func (e *Error[E]) Error() string {
	switch e.Kind {
	case KindTransport:
		return "Request failed: " + causeText(e.Err)
	case KindDecode:
		if e.Status != 0 {
			return fmt.Sprintf("Deserialization failed (HTTP %d): %s", e.Status, causeText(e.Err))
		}
		return "Deserialization failed: " + causeText(e.Err)
	case KindEnv:
		return "Failed to get env: " + causeText(e.Err)
	case KindMethod:
		return fmt.Sprintf("Method error: status %d: %+v", e.Status, e.Value)
	default:
		return "ruxios: unknown error: " + causeText(e.Err)
	}
}

// Unwrap returns the underlying cause.
func (e *Error[E]) Unwrap() error {
	return e.Err
}

// Is matches the kind sentinels ErrTransport, ErrDecode, ErrEnv and ErrMethod.
func (e *Error[E]) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// HTTPStatus returns the response status, or 0 when none was received.
func (e *Error[E]) HTTPStatus() int {
	return e.Status
}

func causeText(err error) string {
	if err == nil {
		return "<nil>"
	}
	return err.Error()
}

func newError[E any](kind ErrorKind, status int, err error) *Error[E] {
	return &Error[E]{Kind: kind, Status: status, Err: err}
}

// NewErrorFromString builds a synthetic KindMethod error with status 0 and
// the document {"message": msg}. Use it for local failures that did not come
// from an HTTP exchange.
func NewErrorFromString(msg string) *Error[Value] {
	return &Error[Value]{
		Kind:  KindMethod,
		Value: MustValueOf(map[string]string{"message": msg}),
	}
}

// NewErrorFromValue builds a synthetic KindMethod error with status 0 whose
// value is v converted to a document. If v cannot be encoded the result is a
// KindDecode error instead.
func NewErrorFromValue(v any) *Error[Value] {
	val, err := ValueOf(v)
	if err != nil {
		return newError[Value](KindDecode, 0, err)
	}
	return &Error[Value]{Kind: KindMethod, Value: val}
}

// IsTransport reports whether err is a KindTransport error.
func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}

// IsDecode reports whether err is a KindDecode error.
func IsDecode(err error) bool {
	return errors.Is(err, ErrDecode)
}

// IsEnv reports whether err is a KindEnv error.
func IsEnv(err error) bool {
	return errors.Is(err, ErrEnv)
}

// IsMethod reports whether err is a KindMethod error.
func IsMethod(err error) bool {
	return errors.Is(err, ErrMethod)
}

// StatusOf returns the HTTP status carried by err, if any.
// The boolean is false when err is not an *Error or carries status 0.
func StatusOf(err error) (int, bool) {
	var s interface{ HTTPStatus() int }
	if !errors.As(err, &s) {
		return 0, false
	}
	status := s.HTTPStatus()
	return status, status != 0
}
