package ruxios

import (
	"net/http"

	"github.com/google/uuid"
)

// RequestInterceptor modifies a request after its headers are built and
// before it is sent. Returning an error aborts the request with a
// KindTransport error.
type RequestInterceptor func(req *http.Request) error

// InterceptorChain runs request interceptors in the order they were added.
type InterceptorChain struct {
	request []RequestInterceptor
}

// NewInterceptorChain creates an empty chain.
func NewInterceptorChain() *InterceptorChain {
	return &InterceptorChain{}
}

// Add appends an interceptor.
func (c *InterceptorChain) Add(i RequestInterceptor) {
	c.request = append(c.request, i)
}

// Len returns the number of interceptors.
func (c *InterceptorChain) Len() int {
	return len(c.request)
}

// Apply runs every interceptor, stopping at the first error.
func (c *InterceptorChain) Apply(req *http.Request) error {
	for _, i := range c.request {
		if err := i(req); err != nil {
			return err
		}
	}
	return nil
}

// BearerAuthInterceptor sets "Authorization: Bearer <token>".
func BearerAuthInterceptor(token string) RequestInterceptor {
	return func(req *http.Request) error {
		req.Header.Set("Authorization", "Bearer "+token)
		return nil
	}
}

// BearerAuthFuncInterceptor is like BearerAuthInterceptor but fetches the
// token per request, for tokens that rotate.
func BearerAuthFuncInterceptor(tokenFunc func() (string, error)) RequestInterceptor {
	return func(req *http.Request) error {
		token, err := tokenFunc()
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+token)
		return nil
	}
}

// CorrelationIDInterceptor sets headerName to idFunc() unless the request
// already carries it.
func CorrelationIDInterceptor(headerName string, idFunc func() string) RequestInterceptor {
	return func(req *http.Request) error {
		if req.Header.Get(headerName) == "" {
			req.Header.Set(headerName, idFunc())
		}
		return nil
	}
}

// WithRequestInterceptor adds interceptors to the client.
//
// Example:
//
//	client := ruxios.New(
//	    ruxios.WithRequestInterceptor(ruxios.BearerAuthInterceptor(token)),
//	)
func WithRequestInterceptor(interceptors ...RequestInterceptor) Option {
	return func(cfg *internalConfig) {
		for _, i := range interceptors {
			cfg.Interceptors.Add(i)
		}
	}
}

// WithRequestID tags every request with a random UUID in headerName
// (for example "X-Request-Id"), unless the caller set one.
func WithRequestID(headerName string) Option {
	return WithRequestInterceptor(CorrelationIDInterceptor(headerName, uuid.NewString))
}
