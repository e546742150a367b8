package ruxios

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"sync"
)

// RecordedRequest is a request captured by MockTransport, with its body
// already read.
type RecordedRequest struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// MockTransport is an http.RoundTripper for tests. It returns stubbed
// responses and records every request it sees.
//
// Example:
//
//	mock := ruxios.NewMockTransport().
//	    StubPath("/users/1", http.StatusOK, `{"login":"octocat"}`)
//	client := ruxios.New(
//	    ruxios.WithBaseURL("https://api.example.com"),
//	    ruxios.WithMockTransport(mock),
//	)
type MockTransport struct {
	mu          sync.RWMutex
	stubs       []stub
	defaultResp *stubResponse
	defaultErr  error
	requests    []RecordedRequest
}

type stubResponse struct {
	status int
	body   string
	header http.Header
}

type stub struct {
	matcher  func(*http.Request) bool
	response *stubResponse
	err      error
}

// NewMockTransport creates an empty MockTransport. Without stubs every
// request fails.
func NewMockTransport() *MockTransport {
	return &MockTransport{}
}

// StubResponse answers every unmatched request with status and body.
func (m *MockTransport) StubResponse(status int, body string) *MockTransport {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultResp = &stubResponse{status: status, body: body}
	return m
}

// StubError fails every unmatched request with err.
func (m *MockTransport) StubError(err error) *MockTransport {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultErr = err
	return m
}

// StubPath answers requests for path.
func (m *MockTransport) StubPath(path string, status int, body string) *MockTransport {
	return m.StubFunc(func(req *http.Request) bool {
		return req.URL.Path == path
	}, status, body)
}

// StubMethod answers requests with the given method.
func (m *MockTransport) StubMethod(method string, status int, body string) *MockTransport {
	return m.StubFunc(func(req *http.Request) bool {
		return req.Method == method
	}, status, body)
}

// StubFunc answers requests accepted by matcher. Stubs are tried in the
// order they were added.
func (m *MockTransport) StubFunc(matcher func(*http.Request) bool, status int, body string) *MockTransport {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stubs = append(m.stubs, stub{
		matcher:  matcher,
		response: &stubResponse{status: status, body: body},
	})
	return m
}

// StubFuncError fails requests accepted by matcher with err.
func (m *MockTransport) StubFuncError(matcher func(*http.Request) bool, err error) *MockTransport {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stubs = append(m.stubs, stub{matcher: matcher, err: err})
	return m
}

// RoundTrip implements http.RoundTripper.
func (m *MockTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	var body []byte
	if req.Body != nil {
		var err error
		body, err = io.ReadAll(req.Body)
		req.Body.Close()
		if err != nil {
			return nil, err
		}
	}

	m.mu.Lock()
	m.requests = append(m.requests, RecordedRequest{
		Method: req.Method,
		URL:    req.URL.String(),
		Header: req.Header.Clone(),
		Body:   body,
	})
	m.mu.Unlock()

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, s := range m.stubs {
		if s.matcher(req) {
			if s.err != nil {
				return nil, s.err
			}
			return s.response.build(req), nil
		}
	}

	if m.defaultErr != nil {
		return nil, m.defaultErr
	}
	if m.defaultResp != nil {
		return m.defaultResp.build(req), nil
	}

	return nil, errors.New("no stub found for request: " + req.Method + " " + req.URL.String())
}

// Requests returns every request seen so far.
func (m *MockTransport) Requests() []RecordedRequest {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]RecordedRequest(nil), m.requests...)
}

// RequestCount returns the number of requests seen.
func (m *MockTransport) RequestCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.requests)
}

// LastRequest returns the most recent request. ok is false if none was made.
func (m *MockTransport) LastRequest() (req RecordedRequest, ok bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.requests) == 0 {
		return RecordedRequest{}, false
	}
	return m.requests[len(m.requests)-1], true
}

// Reset clears recorded requests and stubs.
func (m *MockTransport) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = nil
	m.stubs = nil
	m.defaultResp = nil
	m.defaultErr = nil
}

func (s *stubResponse) build(req *http.Request) *http.Response {
	header := s.header.Clone()
	if header == nil {
		header = make(http.Header)
	}
	return &http.Response{
		Status:        http.StatusText(s.status),
		StatusCode:    s.status,
		Header:        header,
		Body:          io.NopCloser(bytes.NewBufferString(s.body)),
		ContentLength: int64(len(s.body)),
		Request:       req,
	}
}

// WithMockTransport sends requests through mock instead of the network.
func WithMockTransport(mock *MockTransport) Option {
	return WithTransport(mock)
}
