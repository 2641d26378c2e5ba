package graph

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"villanova-server/internal/observability"
	"villanova-server/internal/ratelimit"
)

// invalidMetricCode is the upstream error code for an unsupported insights metric
const invalidMetricCode = 100

// APIError is an error returned by the graph API
type APIError struct {
	StatusCode int
	Code       int
	Subcode    int
	Type       string
	Message    string
	TraceID    string
}

// Error returns the upstream message unchanged so callers can match on it.
func (e *APIError) Error() string {
	return e.Message
}

// IsPermissionError reports whether err is an upstream OAuth or permission rejection
func IsPermissionError(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Type == "OAuthException" || apiErr.Code == 10 || apiErr.Code == 190 || (apiErr.Code >= 200 && apiErr.Code < 300)
}

type errorEnvelope struct {
	Error *struct {
		Message      string `json:"message"`
		Type         string `json:"type"`
		Code         int    `json:"code"`
		ErrorSubcode int    `json:"error_subcode"`
		FBTraceID    string `json:"fbtrace_id"`
	} `json:"error"`
}

// Config holds graph API connection settings
type Config struct {
	BaseURL string
	Version string
	Timeout time.Duration
}

// Client wraps the social graph API. Every call is routed through the request queue.
type Client struct {
	baseURL    string
	httpClient *http.Client
	queue      *ratelimit.Queue
	logger     *observability.Logger
}

func NewClient(cfg Config, queue *ratelimit.Queue, logger *observability.Logger) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	base := strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Version != "" {
		base = base + "/" + strings.Trim(cfg.Version, "/")
	}
	return &Client{
		baseURL: base,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		queue:  queue,
		logger: logger,
	}
}

// call queues a request at the given priority and decodes the JSON response into out
func (c *Client) call(ctx context.Context, priority int, method, path string, params url.Values, out any) error {
	return c.queue.Enqueue(ctx, priority, func(ctx context.Context) error {
		return c.do(ctx, method, path, params, out)
	})
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, out any) error {
	endpoint := c.baseURL + "/" + strings.TrimPrefix(path, "/")

	var body io.Reader
	if method == http.MethodPost {
		body = strings.NewReader(params.Encode())
	} else if len(params) > 0 {
		endpoint = endpoint + "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if method == http.MethodPost {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return parseError(resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}

func parseError(status int, raw []byte) error {
	var envelope errorEnvelope
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error != nil {
		return &APIError{
			StatusCode: status,
			Code:       envelope.Error.Code,
			Subcode:    envelope.Error.ErrorSubcode,
			Type:       envelope.Error.Type,
			Message:    envelope.Error.Message,
			TraceID:    envelope.Error.FBTraceID,
		}
	}
	msg := strings.TrimSpace(string(raw))
	if len(msg) > 200 {
		msg = msg[:200]
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &APIError{StatusCode: status, Message: msg}
}

func withToken(token string, kv ...string) url.Values {
	params := url.Values{}
	params.Set("access_token", token)
	for i := 0; i+1 < len(kv); i += 2 {
		params.Set(kv[i], kv[i+1])
	}
	return params
}
