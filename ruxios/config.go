package ruxios

import (
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout is the request timeout used by DefaultConfig.
const DefaultTimeout = 10 * time.Second

// Config holds the client-level defaults shared by every request made
// through a Client.
//
// A Client copies its Config at construction time; changing the struct
// afterwards has no effect on the client.
//
// Example:
//
//	client := ruxios.New(ruxios.WithConfig(ruxios.Config{
//	    BaseURL: "https://api.github.com",
//	    Timeout: 5 * time.Second,
//	}))
type Config struct {
	// BaseURL is prepended verbatim to every RequestConfig.URL.
	// No slash is inserted or removed, so "https://api.example.com" + "/x"
	// gives "https://api.example.com/x".
	//
	// Default: "" (request URLs must be absolute)
	BaseURL string

	// Timeout bounds the whole exchange, including reading the body.
	// Zero means no timeout.
	//
	// Default: 10s
	Timeout time.Duration

	// DefaultHeaders are sent with every request, in order, before the
	// User-Agent and the per-request headers. Each entry has the form
	// "Name: value"; entries without a colon are skipped.
	//
	// Example: []string{"Accept: application/json"}
	DefaultHeaders []string
}

// DefaultConfig returns the configuration used when no options are given:
// an empty base URL, a 10 second timeout and no default headers.
func DefaultConfig() Config {
	return Config{
		BaseURL: "",
		Timeout: DefaultTimeout,
	}
}

// clone returns a deep copy so the caller's slice can't alias the client's.
func (c Config) clone() Config {
	if c.DefaultHeaders != nil {
		c.DefaultHeaders = append([]string(nil), c.DefaultHeaders...)
	}
	return c
}

// defaultHeader parses the DefaultHeaders entries into an http.Header,
// preserving their order within each name.
func (c Config) defaultHeader() http.Header {
	h := make(http.Header, len(c.DefaultHeaders))
	for _, line := range c.DefaultHeaders {
		name, value, ok := strings.Cut(line, ":")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			continue
		}
		h.Add(name, strings.TrimSpace(value))
	}
	return h
}
