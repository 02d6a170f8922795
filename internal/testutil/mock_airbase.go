// Package testutil provides testing utilities for the Airbase client.
package testutil

import (
	"net/http"
	"net/http/httptest"
	"sync"
)

// MockAirbase is a configurable mock Airbase server for testing.
type MockAirbase struct {
	server   *httptest.Server
	mu       sync.RWMutex
	handlers map[string]func(w http.ResponseWriter, r *http.Request)
	pages    map[string]map[string]string

	// Tracking
	RequestCount      int
	LastRequestHeader http.Header
}

// NewMockAirbase creates a new mock Airbase server.
func NewMockAirbase() *MockAirbase {
	mock := &MockAirbase{
		handlers: make(map[string]func(w http.ResponseWriter, r *http.Request)),
		pages:    make(map[string]map[string]string),
	}

	mock.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mock.mu.Lock()
		mock.RequestCount++
		mock.LastRequestHeader = r.Header.Clone()
		mock.mu.Unlock()

		// Check for custom handler
		mock.mu.RLock()
		handler, exists := mock.handlers[r.URL.Path]
		mock.mu.RUnlock()

		if exists {
			handler(w, r)
			return
		}

		// Check for scripted pages
		mock.mu.RLock()
		tablePages, scripted := mock.pages[r.URL.Path]
		mock.mu.RUnlock()

		if scripted {
			offset := r.URL.Query().Get("offset")
			body, ok := tablePages[offset]
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte(`{"error":"NOT_FOUND"}`))
				return
			}
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.Write([]byte(body))
			return
		}

		// Default handler
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Write([]byte(`{}`))
	}))

	return mock
}

// URL returns the mock server URL.
func (m *MockAirbase) URL() string {
	return m.server.URL
}

// Close shuts down the mock server.
func (m *MockAirbase) Close() {
	m.server.Close()
}

// Reset clears all tracking counters.
func (m *MockAirbase) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RequestCount = 0
	m.LastRequestHeader = nil
}

// Requests returns the number of requests served so far.
func (m *MockAirbase) Requests() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.RequestCount
}

// SetHandler sets a custom handler for a specific path.
func (m *MockAirbase) SetHandler(path string, handler func(w http.ResponseWriter, r *http.Request)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[path] = handler
}

// ScriptPages configures a table path to serve a fixed page sequence keyed
// by the offset query parameter. The empty key is the first page; a page
// body carrying `"offset":"c2"` tells the client to come back with
// offset=c2, which must be a key in the map.
func (m *MockAirbase) ScriptPages(path string, pagesByOffset map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pages[path] = pagesByOffset
}
