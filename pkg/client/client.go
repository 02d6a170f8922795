// Package client provides the HTTP transport to the Airbase API with
// bearer authentication, structured logging, and error classification.
package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Prometheus metrics for Airbase transport operations.
var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "airbase_requests_total",
		Help: "Total Airbase requests by table and status",
	}, []string{"table", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "airbase_request_duration_seconds",
		Help:    "Airbase request duration in seconds by table",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
	}, []string{"table"})

	errorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "airbase_errors_total",
		Help: "Total Airbase errors by class",
	}, []string{"class"})
)

// sortField is the stable identifier field every page request sorts by.
// The backend assigns ascending IDs, so this fixes server order across
// pages and makes collection order deterministic.
const sortField = "ID"

// Client is the Airbase HTTP transport.
type Client struct {
	httpClient *http.Client
	config     Config
	logger     zerolog.Logger
}

// Config holds the transport configuration.
type Config struct {
	// BaseURL is the API root, e.g. "https://api.airbase.example/v0".
	BaseURL string

	// BaseID selects the data base within the backend.
	BaseID string

	// APIKey is sent as a bearer token on every request.
	APIKey string

	// UserAgent identifies this client to the backend.
	UserAgent string

	// Timeout bounds each page request.
	Timeout time.Duration
}

// DefaultConfig returns a safe default configuration.
func DefaultConfig(baseURL, baseID, apiKey string) Config {
	return Config{
		BaseURL:   baseURL,
		BaseID:    baseID,
		APIKey:    apiKey,
		UserAgent: "airbase-client/0.1.0",
		Timeout:   30 * time.Second,
	}
}

// New creates a new Airbase transport client.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if cfg.BaseID == "" {
		return nil, fmt.Errorf("base ID is required")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	logger := log.With().Str("component", "airbase-client").Logger()

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		config: cfg,
		logger: logger,
	}, nil
}

// FetchPage performs one page GET against a table. The request always
// carries the stable ascending sort directive; a non-empty offset is the
// continuation cursor from the previous page. Returns the raw response
// body on 2xx and a *TransportError on any other status. The core never
// retries; retry policy belongs to the caller.
func (c *Client) FetchPage(ctx context.Context, tableID, offset string) ([]byte, error) {
	startTime := time.Now()
	defer func() {
		requestDuration.WithLabelValues(tableID).Observe(time.Since(startTime).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.pageURL(tableID, offset), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	req.Header.Set("Accept", "application/json")
	if c.config.UserAgent != "" {
		req.Header.Set("User-Agent", c.config.UserAgent)
	}

	c.logger.Debug().
		Str("table", tableID).
		Bool("has_offset", offset != "").
		Msg("Executing Airbase page request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		errorsTotal.WithLabelValues(string(ErrorClassNetwork)).Inc()
		requestsTotal.WithLabelValues(tableID, "network_error").Inc()
		c.logger.Error().Err(err).Str("table", tableID).Msg("HTTP request failed")
		return nil, fmt.Errorf("airbase request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		errorsTotal.WithLabelValues(string(ErrorClassNetwork)).Inc()
		return nil, fmt.Errorf("read response body: %w", err)
	}

	requestsTotal.WithLabelValues(tableID, fmt.Sprintf("%d", resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		transportErr := &TransportError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
		errorsTotal.WithLabelValues(string(transportErr.Class())).Inc()
		c.logger.Warn().
			Str("table", tableID).
			Int("status", resp.StatusCode).
			Str("error_class", string(transportErr.Class())).
			Msg("Airbase request error")
		return nil, transportErr
	}

	return body, nil
}

// pageURL builds the table endpoint URL with the sort directive and the
// optional continuation cursor.
func (c *Client) pageURL(tableID, offset string) string {
	query := url.Values{}
	query.Set("sort[0][field]", sortField)
	query.Set("sort[0][direction]", "asc")
	if offset != "" {
		query.Set("offset", offset)
	}

	base := strings.TrimRight(c.config.BaseURL, "/")
	return base + "/" + url.PathEscape(c.config.BaseID) + "/" + url.PathEscape(tableID) + "?" + query.Encode()
}

// SetHTTPClient sets a custom HTTP client (for testing).
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}
