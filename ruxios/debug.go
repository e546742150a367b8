package ruxios

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// curlCommand renders req as an equivalent cURL invocation.
//
// Example output:
//
//	curl -X POST 'https://api.example.com/users' -H 'User-Agent: Ruxios' -d '{"name":"John"}'
func curlCommand(req *http.Request, body []byte) string {
	parts := []string{"curl"}

	if req.Method != http.MethodGet {
		parts = append(parts, "-X", req.Method)
	}
	parts = append(parts, fmt.Sprintf("'%s'", req.URL.String()))

	names := make([]string, 0, len(req.Header))
	for k := range req.Header {
		names = append(names, k)
	}
	sort.Strings(names)

	for _, k := range names {
		for _, v := range req.Header[k] {
			parts = append(parts, "-H", fmt.Sprintf("'%s: %s'", k, v))
		}
	}

	if len(body) > 0 {
		escaped := strings.ReplaceAll(string(body), "'", `'\''`)
		parts = append(parts, "-d", fmt.Sprintf("'%s'", escaped))
	}

	return strings.Join(parts, " ")
}

func logRequest(logger zerolog.Logger, req *http.Request) {
	logger.Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Msg("HTTP request")
}

func logResponse(logger zerolog.Logger, req *http.Request, status int, size int, duration time.Duration) {
	logger.Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Int("status", status).
		Int("body_bytes", size).
		Dur("duration", duration).
		Msg("HTTP response")
}

func logCurl(logger zerolog.Logger, req *http.Request, body []byte) {
	logger.Debug().
		Str("curl", curlCommand(req, body)).
		Msg("HTTP request as cURL")
}
