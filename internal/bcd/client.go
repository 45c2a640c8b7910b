// Package bcd implements a client for the better-call.dev REST API.
package bcd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-levels/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-levels/pkg/safe"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

const (
	DefaultBaseURL = "https://api.better-call.dev/v1"
	DefaultTimeout = 30 * time.Second

	operationHead       = "head"
	operationOperations = "operations"

	maxErrorBodyLen = 512
)

// Config holds client settings. Zero values fall back to the defaults.
type Config struct {
	BaseURL string
	Timeout time.Duration
	// RPS paces outgoing requests; 0 leaves them unpaced.
	RPS int
	// PageSize is sent as the count parameter of operations requests; 0 omits it.
	PageSize int
	// HTTPClient overrides the default client built from Timeout.
	HTTPClient *http.Client
}

// Client issues sequential GET requests against the API.
type Client struct {
	baseURL    string
	pageSize   uint64
	httpClient *http.Client
	rl         ratelimit.Limiter
	logger     *zap.Logger
}

func NewClient(cfg Config, logger *zap.Logger) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	parsed, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse api url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("api url scheme %q not supported, use http or https", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("api url missing host")
	}

	pageSize, err := safe.Uint64(cfg.PageSize)
	if err != nil {
		return nil, fmt.Errorf("page size: %w", err)
	}
	if cfg.RPS < 0 {
		return nil, fmt.Errorf("rps must not be negative, got %d", cfg.RPS)
	}

	rl := ratelimit.NewUnlimited()
	if cfg.RPS > 0 {
		rl = ratelimit.New(cfg.RPS)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		pageSize:   pageSize,
		httpClient: httpClient,
		rl:         rl,
		logger:     logger,
	}, nil
}

// Heads returns the head record of every network the API tracks.
func (c *Client) Heads(ctx context.Context) ([]model.Head, error) {
	var heads []model.Head
	if err := c.get(ctx, operationHead, c.endpoint("head"), nil, &heads); err != nil {
		return nil, err
	}
	return heads, nil
}

// Operations returns one page of contract operations starting at cursor.
// An empty cursor requests the first page.
func (c *Client) Operations(ctx context.Context, ref model.NetworkRef, cursor model.Cursor) (*model.OperationsPage, error) {
	params := url.Values{}
	if cursor != "" {
		params.Set("last_id", string(cursor))
	}
	if c.pageSize > 0 {
		params.Set("count", strconv.FormatUint(c.pageSize, 10))
	}

	endpoint := c.endpoint("contract", string(ref.Network), string(ref.Contract), "operations")

	var page model.OperationsPage
	if err := c.get(ctx, operationOperations, endpoint, params, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) endpoint(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return c.baseURL + "/" + strings.Join(escaped, "/")
}

func (c *Client) get(ctx context.Context, op, endpoint string, params url.Values, result any) error {
	fullURL := endpoint
	if len(params) > 0 {
		fullURL = endpoint + "?" + params.Encode()
	}

	c.rl.Take()
	c.logger.Debug("GET", zap.String("url", fullURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return &FetchError{Op: op, URL: fullURL, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &FetchError{Op: op, URL: fullURL, Err: fmt.Errorf("do request: %w", err)}
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Warn("failed to close response body", zap.Error(closeErr))
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &FetchError{Op: op, URL: fullURL, StatusCode: resp.StatusCode, Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &FetchError{
			Op:         op,
			URL:        fullURL,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status: %s", truncate(body)),
		}
	}

	if err := json.Unmarshal(body, result); err != nil {
		return &FetchError{Op: op, URL: fullURL, StatusCode: resp.StatusCode, Err: fmt.Errorf("parse response: %w", err)}
	}

	return nil
}

func truncate(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > maxErrorBodyLen {
		return s[:maxErrorBodyLen] + "..."
	}
	return s
}
