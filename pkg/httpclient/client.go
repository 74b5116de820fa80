// Package httpclient provides an outbound HTTP client with timeouts,
// retries, and a circuit breaker for calls to external collaborators.
package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"time"
)

// Config controls client behavior. Zero values fall back to defaults.
type Config struct {
	Timeout       time.Duration
	MaxRetries    int
	RetryBaseWait time.Duration
	Breaker       BreakerConfig
}

// Client wraps http.Client with retry and circuit breaker behavior.
type Client struct {
	httpClient *http.Client
	maxRetries int
	baseWait   time.Duration
	breaker    *Breaker
	logger     *slog.Logger
}

func New(name string, cfg Config, l *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	baseWait := cfg.RetryBaseWait
	if baseWait == 0 {
		baseWait = 200 * time.Millisecond
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		maxRetries: cfg.MaxRetries,
		baseWait:   baseWait,
		breaker:    NewBreaker(name, cfg.Breaker, l),
		logger:     l,
	}
}

// Do executes the request through the circuit breaker, retrying
// idempotent failures with jittered exponential backoff. The response body
// is fully read and replaced so it can be consumed after retries.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	var body []byte
	if req.Body != nil {
		var err error
		body, err = io.ReadAll(req.Body)
		req.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("read request body: %w", err)
		}
	}

	return c.breaker.Execute(func() (*http.Response, error) {
		var lastErr error
		for attempt := 0; attempt <= c.maxRetries; attempt++ {
			if attempt > 0 {
				if err := c.wait(req.Context(), attempt); err != nil {
					return nil, err
				}
			}

			if body != nil {
				req.Body = io.NopCloser(bytes.NewReader(body))
			}

			resp, err := c.httpClient.Do(req)
			if err != nil {
				lastErr = err
				continue
			}

			if resp.StatusCode >= http.StatusInternalServerError {
				respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
				resp.Body.Close()
				lastErr = &StatusError{StatusCode: resp.StatusCode, Body: string(respBody)}
				continue
			}

			return resp, nil
		}
		return nil, fmt.Errorf("all %d attempts failed: %w", c.maxRetries+1, lastErr)
	})
}

func (c *Client) wait(ctx context.Context, attempt int) error {
	backoff := c.baseWait * time.Duration(1<<(attempt-1))
	jitter := time.Duration(rand.Int63n(int64(backoff) / 2))

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(backoff + jitter):
		return nil
	}
}
