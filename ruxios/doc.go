// Package ruxios provides a thin, typed wrapper around net/http for JSON APIs.
//
// # Features
//
//   - Generic request functions returning a typed Response envelope
//   - A four-kind error type carrying the decoded body of non-2xx responses
//   - Untyped documents (Value) with path queries and schema validation
//   - A one-line Fetch shorthand
//   - OpenTelemetry tracing and metrics on the transport
//   - Optional client-side rate limiting
//
// # Quick Start
//
//	client := ruxios.New(
//	    ruxios.WithBaseURL("https://jsonplaceholder.typicode.com"),
//	    ruxios.WithTimeout(5*time.Second),
//	)
//
//	// Typed GET
//	resp, err := ruxios.Get[Post, ruxios.Value](ctx, client, "/posts/1")
//
//	// POST with a JSON body; TReq is inferred from the body
//	resp, err := ruxios.Post[Post, ruxios.Value](ctx, client, "/posts", newPost)
//
// Request functions are generic free functions rather than methods because Go
// methods cannot declare type parameters.
//
// # URLs and Headers
//
// The request URL is Config.BaseURL followed by the request URL, with no
// normalization: a missing or doubled "/" is sent as is. Every request
// carries, in order, Config.DefaultHeaders, "User-Agent: Ruxios" and the
// request headers. Headers are added, never replaced.
//
// # Errors
//
// Every error returned by a request is an *Error[TErr], where TErr is the type
// non-2xx bodies are decoded into:
//
//	resp, err := ruxios.Get[User, APIError](ctx, client, "/users/42")
//	switch {
//	case ruxios.IsMethod(err):
//	    var apiErr *ruxios.Error[APIError]
//	    errors.As(err, &apiErr)
//	    log.Printf("status %d: %s", apiErr.Status, apiErr.Value.Message)
//	case ruxios.IsTransport(err):
//	    // network failure, timeout, rate limit
//	case ruxios.IsDecode(err):
//	    // body did not match the expected shape
//	}
//
// # Untyped Documents
//
// Value holds a JSON document as is. A Response[Value] can be re-decoded later:
//
//	resp, err := ruxios.Fetch("https://api.github.com/users/octocat").Do(ctx)
//	login := resp.Data.Get("login").String()
//	user, err := ruxios.Decode[User](resp)
//
// # Environment
//
// Nothing is read from the environment implicitly. ConfigFromEnv builds a
// Config from <PREFIX>_BASE_URL, <PREFIX>_TIMEOUT_MS and <PREFIX>_HEADERS,
// optionally loading dotenv files first.
//
// # OpenTelemetry
//
// Each request gets a client span named "HTTP <METHOD>" that ends when the
// body has been read. Trace context is injected into outgoing headers.
// Metrics:
//
//   - http.client.request.duration (histogram, seconds)
//   - http.client.request.body.size (histogram, bytes)
//   - http.client.response.body.size (histogram, bytes)
//   - http.client.active_requests (up-down counter)
//   - http.client.request.errors (counter)
//   - ruxios.client.decode.errors (counter)
//
// Global providers are used unless WithTracerProvider or WithMeterProvider is
// given.
//
// # Testing
//
// MockTransport replaces the network in tests:
//
//	mock := ruxios.NewMockTransport().StubResponse(200, `{"id":1}`)
//	client := ruxios.New(ruxios.WithMockTransport(mock))
package ruxios
