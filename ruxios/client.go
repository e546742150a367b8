package ruxios

import (
	"net/http"
)

// UserAgent is sent as the User-Agent header of every request.
const UserAgent = "Ruxios"

// Client holds one instrumented *http.Client and an immutable Config.
// It is safe for concurrent use.
//
// Requests are made through the generic functions Request, Get, Post, Put,
// Patch, Delete, Head, Options and Trace, which take the Client as an
// argument because Go methods cannot have type parameters.
//
// Example:
//
//	client := ruxios.New(
//	    ruxios.WithBaseURL("https://api.github.com"),
//	    ruxios.WithServiceName("github-client"),
//	)
//
//	resp, err := ruxios.Get[User, ruxios.Value](ctx, client, "/users/octocat")
type Client struct {
	// httpClient is the transport collaborator, wrapped with instrumentation.
	httpClient *http.Client

	// cfg holds the client Config and the ambient settings.
	cfg *internalConfig

	// defaultHeader is Config.DefaultHeaders parsed once at construction.
	defaultHeader http.Header
}

// New creates a Client from DefaultConfig modified by opts.
//
// Example:
//
//	client := ruxios.New(
//	    ruxios.WithBaseURL("https://jsonplaceholder.typicode.com"),
//	    ruxios.WithTimeout(5*time.Second),
//	    ruxios.WithDebug(true),
//	)
func New(opts ...Option) *Client {
	cfg := newConfig(opts...)

	return &Client{
		httpClient: &http.Client{
			Transport: newOtelTransport(cfg.baseTransport(), cfg),
			Timeout:   cfg.config.Timeout,
		},
		cfg:           cfg,
		defaultHeader: cfg.config.defaultHeader(),
	}
}

// Config returns a copy of the client configuration.
func (c *Client) Config() Config {
	return c.cfg.config.clone()
}

// HTTP returns the underlying *http.Client, for passing to libraries that
// expect one. Requests sent through it bypass the envelope and error
// handling of this package but keep the instrumentation.
func (c *Client) HTTP() *http.Client {
	return c.httpClient
}
