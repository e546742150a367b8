package ruxios

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
)

type testUser struct {
	Login string `json:"login"`
	ID    int    `json:"id"`
}

type testAPIError struct {
	Message string `json:"message"`
}

type testPost struct {
	Title  string `json:"title"`
	UserID int    `json:"userId"`
}

// echoReply is what the /echo route answers with.
type echoReply struct {
	Method string      `json:"method"`
	Path   string      `json:"path"`
	Header http.Header `json:"header"`
	Body   Value       `json:"body"`
}

// newTestServer starts an API server with these routes:
//
//	GET  /users/{name}   {"login": name, "id": 1}
//	*    /echo           echoReply
//	*    /status/{code}  status code with {"message": "status <code>"}
//	GET  /empty          204, no body
//	GET  /text           200, a non-JSON body
//	GET  /slow           waits 200ms or until the request is cancelled
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	r := chi.NewRouter()

	r.Get("/users/{name}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, testUser{Login: chi.URLParam(r, "name"), ID: 1})
	})

	r.HandleFunc("/echo", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		writeJSON(w, http.StatusOK, echoReply{
			Method: r.Method,
			Path:   r.URL.Path,
			Header: r.Header,
			Body:   RawValue(body),
		})
	})

	r.HandleFunc("/status/{code}", func(w http.ResponseWriter, r *http.Request) {
		code, err := strconv.Atoi(chi.URLParam(r, "code"))
		if err != nil {
			code = http.StatusBadRequest
		}
		writeJSON(w, code, testAPIError{Message: "status " + strconv.Itoa(code)})
	})

	r.Get("/empty", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	r.Get("/text", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("not json"))
	})

	r.Get("/slow", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(200 * time.Millisecond):
			w.WriteHeader(http.StatusOK)
		case <-r.Context().Done():
		}
	})

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
