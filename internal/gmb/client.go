package gmb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/utafrali/ReviewDeskGo/pkg/httpclient"
)

const apiBaseURL = "https://mybusiness.googleapis.com/v4"

// Client is the surface the sync service needs from the GMB API.
type Client interface {
	ListAccounts(ctx context.Context) ([]Account, error)
	ListLocations(ctx context.Context, accountName string) ([]Location, error)
	ListReviews(ctx context.Context, locationName string) ([]Review, error)
	ReplyToReview(ctx context.Context, reviewName, comment string) (*ReviewReply, error)
}

// APIClient calls the GMB REST API through the shared outbound HTTP
// client, so retries and the circuit breaker apply to every call.
type APIClient struct {
	http        *httpclient.Client
	baseURL     string
	tokenSource oauth2.TokenSource
	logger      *slog.Logger
}

func NewAPIClient(http *httpclient.Client, tokenSource oauth2.TokenSource, l *slog.Logger) *APIClient {
	return &APIClient{http: http, baseURL: apiBaseURL, tokenSource: tokenSource, logger: l}
}

func (c *APIClient) ListAccounts(ctx context.Context) ([]Account, error) {
	var out struct {
		Accounts []Account `json:"accounts"`
	}
	if err := c.get(ctx, "/accounts", &out); err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return out.Accounts, nil
}

func (c *APIClient) ListLocations(ctx context.Context, accountName string) ([]Location, error) {
	var out struct {
		Locations []Location `json:"locations"`
	}
	if err := c.get(ctx, "/"+accountName+"/locations", &out); err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	return out.Locations, nil
}

func (c *APIClient) ListReviews(ctx context.Context, locationName string) ([]Review, error) {
	var out struct {
		Reviews []Review `json:"reviews"`
	}
	if err := c.get(ctx, "/"+locationName+"/reviews", &out); err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return out.Reviews, nil
}

func (c *APIClient) ReplyToReview(ctx context.Context, reviewName, comment string) (*ReviewReply, error) {
	body, err := json.Marshal(map[string]string{"comment": comment})
	if err != nil {
		return nil, fmt.Errorf("marshal reply: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPut, "/"+reviewName+"/reply", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var reply ReviewReply
	if err := c.do(req, &reply); err != nil {
		return nil, fmt.Errorf("reply to review: %w", err)
	}
	return &reply, nil
}

func (c *APIClient) get(ctx context.Context, path string, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *APIClient) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	token, err := c.tokenSource.Token()
	if err != nil {
		return nil, fmt.Errorf("get access token: %w", err)
	}
	token.SetAuthHeader(req)
	return req, nil
}

func (c *APIClient) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &httpclient.StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
