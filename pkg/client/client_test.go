package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
		errorMsg    string
	}{
		{
			name:        "valid config",
			config:      DefaultConfig("https://api.airbase.example/v0", "appBase1", "key123"),
			expectError: false,
		},
		{
			name:        "missing base URL",
			config:      Config{BaseID: "appBase1", APIKey: "key123"},
			expectError: true,
			errorMsg:    "base URL is required",
		},
		{
			name:        "missing base ID",
			config:      Config{BaseURL: "https://api.airbase.example/v0", APIKey: "key123"},
			expectError: true,
			errorMsg:    "base ID is required",
		},
		{
			name:        "missing API key",
			config:      Config{BaseURL: "https://api.airbase.example/v0", BaseID: "appBase1"},
			expectError: true,
			errorMsg:    "API key is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.config)

			if tt.expectError {
				if err == nil {
					t.Fatal("Expected error but got nil")
				}
				if tt.errorMsg != "" && err.Error() != tt.errorMsg {
					t.Errorf("Error message = %q, want %q", err.Error(), tt.errorMsg)
				}
				return
			}

			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			if c == nil {
				t.Fatal("Client is nil")
			}
		})
	}
}

func TestClient_FetchPage(t *testing.T) {
	var gotRequest *http.Request

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequest = r.Clone(r.Context())
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"records":[{"fields":{"Name":"Harry Kane"}}]}`))
	}))
	defer server.Close()

	c, err := New(DefaultConfig(server.URL, "appBase1", "key123"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	body, err := c.FetchPage(context.Background(), "Scorers", "")
	if err != nil {
		t.Fatalf("FetchPage failed: %v", err)
	}
	if len(body) == 0 {
		t.Error("Expected non-empty body")
	}

	if got := gotRequest.Header.Get("Authorization"); got != "Bearer key123" {
		t.Errorf("Authorization = %q, want %q", got, "Bearer key123")
	}
	if got := gotRequest.Header.Get("Accept"); got != "application/json" {
		t.Errorf("Accept = %q, want %q", got, "application/json")
	}
	if got := gotRequest.URL.Path; got != "/appBase1/Scorers" {
		t.Errorf("Path = %q, want %q", got, "/appBase1/Scorers")
	}

	query := gotRequest.URL.Query()
	if got := query.Get("sort[0][field]"); got != "ID" {
		t.Errorf("sort field = %q, want %q", got, "ID")
	}
	if got := query.Get("sort[0][direction]"); got != "asc" {
		t.Errorf("sort direction = %q, want %q", got, "asc")
	}
	if query.Has("offset") {
		t.Error("First page request should carry no offset")
	}
}

func TestClient_FetchPageWithOffset(t *testing.T) {
	var gotOffset string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotOffset = r.URL.Query().Get("offset")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c, err := New(DefaultConfig(server.URL, "appBase1", "key123"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if _, err := c.FetchPage(context.Background(), "Scorers", "cursor42"); err != nil {
		t.Fatalf("FetchPage failed: %v", err)
	}
	if gotOffset != "cursor42" {
		t.Errorf("offset = %q, want %q", gotOffset, "cursor42")
	}
}

func TestClient_FetchPageTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"AUTHENTICATION_REQUIRED"}`))
	}))
	defer server.Close()

	c, err := New(DefaultConfig(server.URL, "appBase1", "badkey"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	_, err = c.FetchPage(context.Background(), "Scorers", "")
	if err == nil {
		t.Fatal("Expected error but got nil")
	}

	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("Error type = %T, want *TransportError", err)
	}
	if transportErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("StatusCode = %d, want %d", transportErr.StatusCode, http.StatusUnauthorized)
	}
	if transportErr.Body != `{"error":"AUTHENTICATION_REQUIRED"}` {
		t.Errorf("Body = %q, want the response body retained", transportErr.Body)
	}
}

func TestClient_FetchPageContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	c, err := New(DefaultConfig(server.URL, "appBase1", "key123"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.FetchPage(ctx, "Scorers", ""); err == nil {
		t.Error("Expected error for cancelled context")
	}
}
