package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultRESTURL is the base URL of the versioned REST API.
	DefaultRESTURL = "https://api.gandi.net/v5"

	restTimeout = 30 * time.Second
)

// RESTClient performs authenticated JSON requests against the REST API.
// It uses a direct HTTP client: the API surface used here is small and
// every response is decoded into loosely typed records anyway.
type RESTClient struct {
	key        string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// RESTOption is a functional option for configuring a RESTClient.
type RESTOption func(*RESTClient)

// WithBaseURL overrides the API base URL.
func WithBaseURL(u string) RESTOption {
	return func(c *RESTClient) {
		if u != "" {
			c.baseURL = strings.TrimRight(u, "/")
		}
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) RESTOption {
	return func(c *RESTClient) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithRESTLogger sets a custom logger.
func WithRESTLogger(logger *slog.Logger) RESTOption {
	return func(c *RESTClient) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewRESTClient creates a RESTClient authenticating with the given API key.
func NewRESTClient(key string, opts ...RESTOption) *RESTClient {
	c := &RESTClient{
		key:        key,
		baseURL:    DefaultRESTURL,
		httpClient: &http.Client{Timeout: restTimeout},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API base URL requests are sent to.
func (c *RESTClient) BaseURL() string { return c.baseURL }

func (c *RESTClient) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *RESTClient) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *RESTClient) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *RESTClient) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

func (c *RESTClient) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

// restErrorBody covers the error shapes returned by the REST API.
type restErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Cause   string `json:"cause"`
	Errors  []struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	} `json:"errors"`
}

func (b restErrorBody) String() string {
	parts := make([]string, 0, 2+len(b.Errors))
	if b.Cause != "" {
		parts = append(parts, b.Cause)
	}
	if b.Message != "" {
		parts = append(parts, b.Message)
	}
	for _, e := range b.Errors {
		if e.Name != "" {
			parts = append(parts, e.Name+": "+e.Description)
		} else {
			parts = append(parts, e.Description)
		}
	}
	return strings.Join(parts, "; ")
}

// do sends a request and decodes a JSON response into out. A nil out, an
// empty body or a 204 response skips decoding.
func (c *RESTClient) do(ctx context.Context, method, path string, body, out any) error {
	op := method + " " + path

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("rest %s: failed to encode request: %w", op, err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("rest %s: failed to build request: %w", op, err)
	}
	req.Header.Set("Authorization", "Apikey "+c.key)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("rest %s: request failed: %w", op, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("rest request",
		slog.String("method", method),
		slog.String("url", c.baseURL+path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("rest %s: failed to read response: %w", op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb restErrorBody
		message := strings.TrimSpace(string(data))
		if json.Unmarshal(data, &eb) == nil {
			if s := eb.String(); s != "" {
				message = s
			}
		}
		return &Error{
			Transport:  REST,
			Op:         op,
			StatusCode: resp.StatusCode,
			Message:    message,
			Err:        classifyStatus(resp.StatusCode, message),
		}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("rest %s: failed to decode response: %w", op, err)
	}
	return nil
}
