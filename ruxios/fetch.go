package ruxios

import (
	"context"
)

// FetchBuilder builds a one-off untyped request. Create one with Fetch.
//
// Request, response and error bodies are all Value.
type FetchBuilder struct {
	url     string
	method  string
	headers map[string]string
	body    *Value
	bodyErr error
	client  *Client
}

// Fetch starts a shorthand request to an absolute url.
//
// Unset parts default in a chain: no method means GET, no headers means an
// empty header set, no body means no payload. Unless Client is called, each
// Do builds a throwaway Client with an empty base URL and the default timeout.
//
// Example - GET:
//
//	resp, err := ruxios.Fetch("https://api.github.com/users/octocat").Do(ctx)
//
// Example - POST with headers and body:
//
//	resp, err := ruxios.Fetch("https://jsonplaceholder.typicode.com/posts").
//	    Method("POST").
//	    Header("Content-Type", "application/json").
//	    Body(map[string]any{"title": "foo", "userId": 1}).
//	    Do(ctx)
func Fetch(url string) *FetchBuilder {
	return &FetchBuilder{url: url}
}

// Method sets the method name. It is resolved with ParseMethod, so unknown
// names fall back to GET.
func (fb *FetchBuilder) Method(method string) *FetchBuilder {
	fb.method = method
	return fb
}

// Header adds a single header.
func (fb *FetchBuilder) Header(key, value string) *FetchBuilder {
	if fb.headers == nil {
		fb.headers = make(map[string]string)
	}
	fb.headers[key] = value
	return fb
}

// Headers adds every entry of headers. For maps keyed by named string types,
// convert with ConvertMap first.
func (fb *FetchBuilder) Headers(headers map[string]string) *FetchBuilder {
	for k, v := range headers {
		fb.Header(k, v)
	}
	return fb
}

// Body sets the payload. v is converted to a Value; a conversion failure is
// reported by Do as a KindDecode error.
func (fb *FetchBuilder) Body(v any) *FetchBuilder {
	val, err := ValueOf(v)
	if err != nil {
		fb.body, fb.bodyErr = nil, err
		return fb
	}
	fb.body, fb.bodyErr = &val, nil
	return fb
}

// Client makes Do send through c instead of a throwaway client. The URL is
// then appended to c's base URL.
func (fb *FetchBuilder) Client(c *Client) *FetchBuilder {
	fb.client = c
	return fb
}

// Config returns the RequestConfig Do will send.
func (fb *FetchBuilder) Config() RequestConfig {
	method := fb.method
	if method == "" {
		method = string(MethodGet)
	}
	headers := make(map[string]string, len(fb.headers))
	for k, v := range fb.headers {
		headers[k] = v
	}
	return RequestConfig{
		URL:     fb.url,
		Method:  method,
		Headers: headers,
	}
}

// Do sends the request. Errors are *Error[Value].
func (fb *FetchBuilder) Do(ctx context.Context) (*Response[Value], error) {
	if fb.bodyErr != nil {
		return nil, newError[Value](KindDecode, 0, fb.bodyErr)
	}

	c := fb.client
	if c == nil {
		c = New(WithBaseURL(""))
	}

	return Request[Value, Value](ctx, c, fb.Config(), fb.body)
}
