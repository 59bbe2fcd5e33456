package serper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/lysyi3m/event-scout/app/metrics"
)

const DefaultBaseURL = "https://google.serper.dev"

// Client talks to the Serper.dev search API. Every call is a single
// attempt with a hard timeout; retry policy, if any, belongs to the caller.
// The rate limiter keeps the client inside the provider's free-tier
// throttle.
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	timeout    time.Duration
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewClient(baseURL, apiKey, userAgent string, timeout, rateInterval time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if rateInterval <= 0 {
		rateInterval = time.Second
	}

	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         (&net.Dialer{Timeout: 5 * time.Second, KeepAlive: 60 * time.Second}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}

	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		userAgent:  userAgent,
		timeout:    timeout,
		httpClient: &http.Client{Transport: transport},
		limiter:    rate.NewLimiter(rate.Every(rateInterval), 1),
	}
}

// Search performs one provider call. The context is bounded by the client
// timeout; cancellation resolves to an error, never a hang.
func (c *Client) Search(ctx context.Context, req SearchRequest) (*SearchResult, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(timeoutCtx, http.MethodPost, c.baseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("X-API-KEY", c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		metrics.IncProviderRequest("error")
		return nil, fmt.Errorf("failed to call Serper API: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.IncProviderRequest("error")
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.IncProviderRequest("http_error")
		return nil, fmt.Errorf("Serper API error: HTTP %d: %s", resp.StatusCode, truncate(string(data), 200))
	}

	var result SearchResult
	if err := json.Unmarshal(data, &result); err != nil {
		metrics.IncProviderRequest("decode_error")
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if result.Error != "" {
		metrics.IncProviderRequest("api_error")
		return nil, fmt.Errorf("Serper API error: %s", result.Error)
	}

	metrics.IncProviderRequest("ok")
	slog.Debug("Serper search completed", "query", req.Q, "organic", len(result.Organic), "people_also_ask", len(result.PeopleAlsoAsk))

	return &result, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
