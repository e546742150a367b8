package ruxios

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurlCommand(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		url     string
		headers http.Header
		body    []byte
		want    string
	}{
		{
			name:   "given GET request, then generates basic curl",
			method: http.MethodGet,
			url:    "https://api.example.com/users",
			want:   "curl 'https://api.example.com/users'",
		},
		{
			name:    "given POST request, then includes method, headers and body",
			method:  http.MethodPost,
			url:     "https://api.example.com/users",
			headers: http.Header{"Content-Type": {"application/json"}},
			body:    []byte(`{"name":"John"}`),
			want:    `curl -X POST 'https://api.example.com/users' -H 'Content-Type: application/json' -d '{"name":"John"}'`,
		},
		{
			name:   "given multiple headers, then sorts them by name",
			method: http.MethodGet,
			url:    "https://api.example.com/users",
			headers: http.Header{
				"User-Agent":    {"Ruxios"},
				"Authorization": {"Bearer token123"},
				"Accept":        {"application/json"},
			},
			want: "curl 'https://api.example.com/users' -H 'Accept: application/json' " +
				"-H 'Authorization: Bearer token123' -H 'User-Agent: Ruxios'",
		},
		{
			name:    "given repeated header, then emits every value",
			method:  http.MethodGet,
			url:     "https://api.example.com/",
			headers: http.Header{"X-Tag": {"a", "b"}},
			want:    "curl 'https://api.example.com/' -H 'X-Tag: a' -H 'X-Tag: b'",
		},
		{
			name:   "given body with single quotes, then escapes them",
			method: http.MethodPost,
			url:    "https://api.example.com/data",
			body:   []byte(`{"message":"it's working"}`),
			want:   `curl -X POST 'https://api.example.com/data' -d '{"message":"it'\''s working"}'`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, tt.url, nil)
			require.NoError(t, err)
			if tt.headers != nil {
				req.Header = tt.headers
			}

			assert.Equal(t, tt.want, curlCommand(req, tt.body))
		})
	}
}

func TestDebugLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	mock := NewMockTransport().StubResponse(http.StatusOK, `{"id":1}`)
	client := New(
		WithMockTransport(mock),
		WithLogger(logger),
		WithDebug(true),
		WithGenerateCurl(true),
	)

	_, err := Post[Value, Value](context.Background(), client, "http://api.test/items", map[string]int{"n": 1})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"message":"HTTP request"`)
	assert.Contains(t, out, `"message":"HTTP response"`)
	assert.Contains(t, out, `"status":200`)
	assert.Contains(t, out, `"message":"HTTP request as cURL"`)
	assert.Contains(t, out, `curl -X POST 'http://api.test/items'`)
}

func TestDebugLogging_Disabled(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	mock := NewMockTransport().StubResponse(http.StatusOK, `{}`)
	client := New(WithMockTransport(mock), WithLogger(logger))

	_, err := Get[Value, Value](context.Background(), client, "http://api.test/items")
	require.NoError(t, err)

	assert.Empty(t, buf.String())
}
