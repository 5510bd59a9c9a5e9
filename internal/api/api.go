package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"news-signal-engine/internal/logger"
)

// Client wraps a resty client with default headers, retries and an optional
// request rate limit.
type Client struct {
	http       *resty.Client
	limiter    *rate.Limiter
	useLogging bool
}

func (c *Client) logDebug(ctx context.Context, msg string, args ...any) {
	if c.useLogging {
		logger.Debug(ctx, msg, args...)
	}
}

func (c *Client) logWarn(ctx context.Context, msg string, args ...any) {
	if c.useLogging {
		logger.Warn(ctx, msg, args...)
	}
}

// ClientOption configures the API client
type ClientOption func(*Client)

func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.http.SetTimeout(timeout)
	}
}

// WithBaseURL sets the base URL for all requests
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.http.SetBaseURL(baseURL)
	}
}

// WithHeaders sets default headers for all requests
func WithHeaders(headers map[string]string) ClientOption {
	return func(c *Client) {
		c.http.SetHeaders(headers)
	}
}

func WithLogging(enabled bool) ClientOption {
	return func(c *Client) {
		c.useLogging = enabled
	}
}

// WithRetry retries transport failures, 429 and 5xx responses with
// exponential backoff between initialWait and maxWait.
func WithRetry(maxRetries int, initialWait, maxWait time.Duration) ClientOption {
	return func(c *Client) {
		c.http.
			SetRetryCount(maxRetries).
			SetRetryWaitTime(initialWait).
			SetRetryMaxWaitTime(maxWait)
	}
}

// WithRateLimit caps outgoing requests at perSecond. Zero or less disables it.
func WithRateLimit(perSecond float64) ClientOption {
	return func(c *Client) {
		if perSecond <= 0 {
			c.limiter = nil
			return
		}
		burst := max(1, int(perSecond))
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// WithTransport replaces the underlying round tripper.
func WithTransport(rt http.RoundTripper) ClientOption {
	return func(c *Client) {
		c.http.SetTransport(rt)
	}
}

// NewClient creates a new API client with the given options
func NewClient(opts ...ClientOption) *Client {
	client := &Client{
		http: resty.New().
			SetTimeout(30 * time.Second).
			AddRetryCondition(func(r *resty.Response, err error) bool {
				if err != nil {
					return true
				}
				return r.StatusCode() == http.StatusTooManyRequests || r.StatusCode() >= 500
			}),
	}

	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Response represents an HTTP response
type Response struct {
	StatusCode int
	Body       []byte
	Headers    http.Header
}

// GET requests path with the given query parameters. Status codes of 400 and
// above are returned as errors once retries are exhausted.
func (c *Client) GET(ctx context.Context, path string, query map[string]string) (*Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	c.logDebug(ctx, "HTTP Request", "method", http.MethodGet, "path", path)

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(query).
		Get(path)
	if err != nil {
		c.logWarn(ctx, "HTTP request failed", "path", path, "error", err)
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}

	c.logDebug(ctx, "HTTP Response",
		"path", path,
		"status", resp.StatusCode(),
		"duration", resp.Time(),
		"bodySize", len(resp.Body()))

	if resp.StatusCode() >= 400 {
		c.logWarn(ctx, "HTTP error response", "path", path, "status", resp.StatusCode())
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode(), resp.String())
	}

	return &Response{
		StatusCode: resp.StatusCode(),
		Body:       resp.Body(),
		Headers:    resp.Header(),
	}, nil
}

// ParseJSON parses the response body as JSON into the given struct
func (r *Response) ParseJSON(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("failed to parse JSON response: %w", err)
	}
	return nil
}

// YahooFinanceHeaders returns headers for Yahoo Finance API
func YahooFinanceHeaders() map[string]string {
	return map[string]string{
		"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		"Accept":          "application/json",
		"Accept-Language": "en-US,en;q=0.9",
		"Referer":         "https://finance.yahoo.com/",
	}
}
