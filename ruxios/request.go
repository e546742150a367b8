package ruxios

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
)

// Request performs a request described by rc and decodes the outcome.
//
// The URL is Config.BaseURL + rc.URL, concatenated as is. Headers are sent
// in this order: Config.DefaultHeaders, "User-Agent: Ruxios", rc.Headers.
// A non-nil body is JSON encoded and sent as the payload, with
// "Content-Type: application/json" unless rc.Headers sets a content type.
//
// The whole response body is read into memory. A 2xx body is decoded into
// TRes and returned in a Response. Any other status decodes the body into
// TErr and returns it as a KindMethod *Error[TErr]. An empty body decodes to
// the zero value.
//
// Every non-nil error is an *Error[TErr]:
//   - KindTransport when sending the request or reading the body fails
//   - KindDecode when encoding body or decoding the response fails; Status is
//     set when a response was received
//   - KindMethod for non-2xx responses
//
// TReq comes last so it can be inferred from body; with a nil body all three
// type arguments must be given.
//
// Example:
//
//	resp, err := ruxios.Request[Post, APIError](ctx, client, ruxios.RequestConfig{
//	    URL:     "/posts",
//	    Method:  "POST",
//	    Headers: map[string]string{"X-Trace": "1"},
//	}, &newPost)
func Request[TRes, TErr, TReq any](
	ctx context.Context,
	c *Client,
	rc RequestConfig,
	body *TReq,
) (*Response[TRes], error) {
	cfg := c.cfg
	attrs := cfg.baseAttributes()
	fullURL := cfg.config.BaseURL + rc.URL

	var payload []byte
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			cfg.Metrics.recordDecodeError(ctx, "request", attrs)
			return nil, newError[TErr](KindDecode, 0, err)
		}
		payload = data
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, rc.method().String(), fullURL, reader)
	if err != nil {
		return nil, newError[TErr](KindTransport, 0, err)
	}

	for name, values := range c.defaultHeader {
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}
	req.Header.Add("User-Agent", UserAgent)
	for name, v := range rc.Headers {
		req.Header.Add(name, v)
	}
	if payload != nil && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}

	if err := cfg.Interceptors.Apply(req); err != nil {
		return nil, newError[TErr](KindTransport, 0, err)
	}

	if cfg.Debug {
		logRequest(cfg.Logger, req)
	}
	if cfg.GenerateCurl {
		logCurl(cfg.Logger, req, payload)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, newError[TErr](KindTransport, 0, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newError[TErr](KindTransport, resp.StatusCode, err)
	}

	if cfg.Debug {
		logResponse(cfg.Logger, req, resp.StatusCode, len(data), time.Since(start))
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		var out TRes
		if err := decodeBody(data, &out); err != nil {
			cfg.Metrics.recordDecodeError(ctx, "response", attrs)
			return nil, newError[TErr](KindDecode, resp.StatusCode, err)
		}
		return &Response[TRes]{
			Status: resp.StatusCode,
			Header: resp.Header,
			Data:   out,
		}, nil
	}

	var errValue TErr
	if err := decodeBody(data, &errValue); err != nil {
		cfg.Metrics.recordDecodeError(ctx, "response", attrs)
		return nil, newError[TErr](KindDecode, resp.StatusCode, err)
	}
	return nil, &Error[TErr]{
		Kind:   KindMethod,
		Status: resp.StatusCode,
		Value:  errValue,
	}
}

// decodeBody decodes JSON text into target, leaving target untouched when
// the body is empty.
func decodeBody(data []byte, target any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	return json.Unmarshal(data, target)
}

// Get performs a GET request to url. See Request.
func Get[TRes, TErr any](ctx context.Context, c *Client, url string) (*Response[TRes], error) {
	return Request[TRes, TErr, Value](ctx, c, RequestConfig{URL: url, Method: http.MethodGet}, nil)
}

// Post performs a POST request to url with body as JSON. See Request.
//
// Example:
//
//	resp, err := ruxios.Post[User, APIError](ctx, client, "/users", newUser)
func Post[TRes, TErr, TReq any](ctx context.Context, c *Client, url string, body TReq) (*Response[TRes], error) {
	return Request[TRes, TErr](ctx, c, RequestConfig{URL: url, Method: http.MethodPost}, &body)
}

// Put performs a PUT request to url with body as JSON. See Request.
func Put[TRes, TErr, TReq any](ctx context.Context, c *Client, url string, body TReq) (*Response[TRes], error) {
	return Request[TRes, TErr](ctx, c, RequestConfig{URL: url, Method: http.MethodPut}, &body)
}

// Patch performs a PATCH request to url with body as JSON. See Request.
func Patch[TRes, TErr, TReq any](ctx context.Context, c *Client, url string, body TReq) (*Response[TRes], error) {
	return Request[TRes, TErr](ctx, c, RequestConfig{URL: url, Method: http.MethodPatch}, &body)
}

// Delete performs a DELETE request to url. See Request.
func Delete[TRes, TErr any](ctx context.Context, c *Client, url string) (*Response[TRes], error) {
	return Request[TRes, TErr, Value](ctx, c, RequestConfig{URL: url, Method: http.MethodDelete}, nil)
}

// Head performs a HEAD request to url. See Request.
func Head[TRes, TErr any](ctx context.Context, c *Client, url string) (*Response[TRes], error) {
	return Request[TRes, TErr, Value](ctx, c, RequestConfig{URL: url, Method: http.MethodHead}, nil)
}

// Options performs an OPTIONS request to url. See Request.
func Options[TRes, TErr any](ctx context.Context, c *Client, url string) (*Response[TRes], error) {
	return Request[TRes, TErr, Value](ctx, c, RequestConfig{URL: url, Method: http.MethodOptions}, nil)
}

// Trace performs a TRACE request to url. See Request.
func Trace[TRes, TErr any](ctx context.Context, c *Client, url string) (*Response[TRes], error) {
	return Request[TRes, TErr, Value](ctx, c, RequestConfig{URL: url, Method: http.MethodTrace}, nil)
}
