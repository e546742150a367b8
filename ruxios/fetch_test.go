package ruxios

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch_Config(t *testing.T) {
	tests := []struct {
		name        string
		build       func() *FetchBuilder
		wantMethod  string
		wantHeaders map[string]string
	}{
		{
			name:        "given url only, then GET with empty headers",
			build:       func() *FetchBuilder { return Fetch("https://api.example.com") },
			wantMethod:  "GET",
			wantHeaders: map[string]string{},
		},
		{
			name: "given method, then uses it",
			build: func() *FetchBuilder {
				return Fetch("https://api.example.com").Method("DELETE")
			},
			wantMethod:  "DELETE",
			wantHeaders: map[string]string{},
		},
		{
			name: "given header calls, then merges them",
			build: func() *FetchBuilder {
				return Fetch("https://api.example.com").
					Header("A", "1").
					Headers(map[string]string{"B": "2"}).
					Header("A", "3")
			},
			wantMethod:  "GET",
			wantHeaders: map[string]string{"A": "3", "B": "2"},
		},
		{
			name: "given named string types, then ConvertMap feeds Headers",
			build: func() *FetchBuilder {
				type headerName string
				return Fetch("https://api.example.com").
					Method("post").
					Headers(ConvertMap(map[headerName]string{"X-Key": "k"}))
			},
			wantMethod:  "post",
			wantHeaders: map[string]string{"X-Key": "k"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc := tt.build().Config()

			assert.Equal(t, "https://api.example.com", rc.URL)
			assert.Equal(t, tt.wantMethod, rc.Method)
			assert.Equal(t, tt.wantHeaders, rc.Headers)
		})
	}
}

func TestFetch_Config_ReturnsCopy(t *testing.T) {
	fb := Fetch("https://api.example.com").Header("A", "1")
	rc := fb.Config()
	rc.Headers["A"] = "changed"

	assert.Equal(t, "1", fb.Config().Headers["A"])
}

func TestFetch_Do(t *testing.T) {
	server := newTestServer(t)
	ctx := context.Background()

	t.Run("given absolute url, then GET through a throwaway client", func(t *testing.T) {
		resp, err := Fetch(server.URL + "/users/octocat").Do(ctx)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.Status)
		assert.Equal(t, "octocat", resp.Data.Get("login").String())

		user, err := Decode[testUser](resp)
		require.NoError(t, err)
		assert.Equal(t, testUser{Login: "octocat", ID: 1}, user)
	})

	t.Run("given method, headers and body, then sends them", func(t *testing.T) {
		resp, err := Fetch(server.URL+"/echo").
			Method("post").
			Header("Content-Type", "application/json").
			Header("X-Trace", "abc").
			Body(testPost{Title: "foo", UserID: 1}).
			Do(ctx)
		require.NoError(t, err)

		assert.Equal(t, http.MethodPost, resp.Data.Get("method").String())
		assert.Equal(t, "abc", resp.Data.Get("header.X-Trace.0").String())
		assert.Equal(t, UserAgent, resp.Data.Get("header.User-Agent.0").String())
		assert.JSONEq(t, `{"title":"foo","userId":1}`, resp.Data.Get("body").Raw)
	})

	t.Run("given no body, then sends no payload", func(t *testing.T) {
		resp, err := Fetch(server.URL + "/echo").Method("PUT").Do(ctx)
		require.NoError(t, err)

		assert.Equal(t, "PUT", resp.Data.Get("method").String())
		assert.Equal(t, "null", resp.Data.Get("body").Raw)
	})

	t.Run("given non-2xx, then method error with the document", func(t *testing.T) {
		resp, err := Fetch(server.URL + "/status/404").Do(ctx)
		require.Error(t, err)
		assert.Nil(t, resp)

		var e *Error[Value]
		require.ErrorAs(t, err, &e)
		assert.Equal(t, KindMethod, e.Kind)
		assert.Equal(t, 404, e.Status)
		assert.Equal(t, "status 404", e.Value.Get("message").String())
	})

	t.Run("given unencodable body, then decode error", func(t *testing.T) {
		_, err := Fetch(server.URL + "/echo").Method("POST").Body(make(chan int)).Do(ctx)
		require.Error(t, err)
		assert.True(t, IsDecode(err))
	})

	t.Run("given a later valid body, then the earlier error is cleared", func(t *testing.T) {
		resp, err := Fetch(server.URL+"/echo").
			Method("POST").
			Body(make(chan int)).
			Body(map[string]int{"n": 1}).
			Do(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.Data.Get("body.n").Int())
	})

	t.Run("given explicit client, then url is relative to its base", func(t *testing.T) {
		mock := NewMockTransport().StubResponse(http.StatusOK, `{"ok":true}`)
		client := New(WithBaseURL("http://api.test/v1"), WithMockTransport(mock))

		resp, err := Fetch("/things").Client(client).Do(ctx)
		require.NoError(t, err)
		assert.True(t, resp.Data.Get("ok").Bool())

		last, _ := mock.LastRequest()
		assert.Equal(t, "http://api.test/v1/things", last.URL)
	})
}
