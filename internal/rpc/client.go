package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// ErrUnavailable marks an upstream call that answered with a non-200 status.
var ErrUnavailable = errors.New("upstream unavailable")

// StatusError carries the status of a non-200 response.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error: %d - %s", e.StatusCode, e.Status)
}

func (e *StatusError) Unwrap() error {
	return ErrUnavailable
}

// Client is a JSON-over-HTTP client with rate limiting, retries, and structured logging
type Client struct {
	Name        string
	RateLimiter *rate.Limiter
	MaxRetries  int
	RetryDelay  time.Duration
	Logger      *zerolog.Logger
	HTTPClient  *http.Client
}

// NewClient creates a new client. A rateLimit of zero disables limiting and
// maxRetries below one means a single attempt.
func NewClient(name, apiKey string, rateLimit float64, maxRetries int, retryDelay, httpTimeout time.Duration, logger *zerolog.Logger) *Client {
	limit := rate.Inf
	if rateLimit > 0 {
		limit = rate.Limit(rateLimit)
	}

	return &Client{
		Name:        name,
		RateLimiter: rate.NewLimiter(limit, 1),
		MaxRetries:  maxRetries,
		RetryDelay:  retryDelay,
		Logger:      logger,
		HTTPClient: &http.Client{
			Timeout: httpTimeout,
			Transport: &CustomTransport{
				Base:   http.DefaultTransport,
				ApiKey: apiKey,
			},
		},
	}
}

// CustomTransport adds API key authentication to HTTP requests
type CustomTransport struct {
	Base   http.RoundTripper
	ApiKey string
}

func (t *CustomTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Accept", "application/json")
	if req.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if t.ApiKey != "" {
		req.Header.Set("Authorization", "Bearer "+t.ApiKey)
	}
	return t.Base.RoundTrip(req)
}

// GetJSON issues a GET to url and decodes the JSON body into out.
func (c *Client) GetJSON(ctx context.Context, url string, out interface{}) error {
	return c.do(ctx, http.MethodGet, url, nil, out)
}

// PostJSON marshals body, POSTs it to url and decodes the JSON reply into out.
func (c *Client) PostJSON(ctx context.Context, url string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}
	return c.do(ctx, http.MethodPost, url, payload, out)
}

func (c *Client) do(ctx context.Context, method, url string, payload []byte, out interface{}) error {
	c.Logger.Debug().
		Str("service", c.Name).
		Str("method", method).
		Str("url", url).
		Msg("Making HTTP call")

	if err := c.RateLimiter.Wait(ctx); err != nil {
		c.Logger.Error().Err(err).Str("service", c.Name).Msg("Rate limit error")
		return fmt.Errorf("rate limit error: %w", err)
	}

	err := c.retry(ctx, func() error {
		var body io.Reader
		if payload != nil {
			body = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, url, body)
		if err != nil {
			return err
		}

		resp, err := c.HTTPClient.Do(req)
		if err != nil {
			return err
		}
		defer func(Body io.ReadCloser) {
			_ = Body.Close()
		}(resp.Body)

		if resp.StatusCode != http.StatusOK {
			return &StatusError{URL: url, StatusCode: resp.StatusCode, Status: resp.Status}
		}

		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
		return nil
	})
	if err != nil {
		c.Logger.Error().
			Err(err).
			Str("service", c.Name).
			Str("method", method).
			Str("url", url).
			Msg("HTTP call failed")
		return fmt.Errorf("%s: %w", c.Name, err)
	}

	return nil
}

// retry executes a function with retry logic
func (c *Client) retry(ctx context.Context, fn func() error) error {
	attempts := c.MaxRetries
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			select {
			case <-time.After(c.RetryDelay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		if err = fn(); err == nil {
			return nil
		}
	}
	return err
}

// Close closes the HTTP client connections
func (c *Client) Close() {
	if c.HTTPClient != nil {
		c.HTTPClient.CloseIdleConnections()
	}
}
