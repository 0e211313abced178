package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/LakhiniVoshadee/litshelf-storefront/internal/telemetry"
)

// TokenSource supplies the current bearer token. It is consulted
// immediately before each request, never cached at client construction,
// so a logout/login between two calls is reflected on the very next
// call. An empty token means the request goes out without an
// Authorization header and the server decides.
type TokenSource interface {
	Token() string
}

// Config holds gateway client settings
type Config struct {
	BaseURL string
	Timeout time.Duration
	// Tokens supplies bearer tokens; nil means all calls are anonymous.
	Tokens TokenSource
	// OnAuthRejection is invoked when any request comes back 401, so the
	// session can be torn down. May be nil.
	OnAuthRejection func()
	Logger          *zap.Logger
}

// Client is the single egress point for all calls to the bookstore API.
// It performs no retries, no backoff and no request deduplication: a
// transparent one-shot pass-through.
type Client struct {
	baseURL         string
	http            *http.Client
	tokens          TokenSource
	onAuthRejection func()
	log             *zap.Logger
}

// NewClient creates a gateway client for the API at cfg.BaseURL.
func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		return nil, errors.New("gateway: base URL is required")
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("gateway: invalid base URL: %w", err)
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          10,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		ForceAttemptHTTP2:     true,
	}

	return &Client{
		baseURL: base,
		http: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		tokens:          cfg.Tokens,
		onAuthRejection: cfg.OnAuthRejection,
		log:             cfg.Logger,
	}, nil
}

// do sends one request and decodes the success payload into out (out
// may be nil when the caller discards the body). Failures propagate as
// *APIError for server rejections or wrapped transport errors.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	ctx, span := telemetry.StartSpan(ctx, "gateway."+method+" "+path)
	defer span.End()

	span.SetAttributes(
		attribute.String("http.method", method),
		attribute.String("http.path", path),
	)

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("gateway: failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("gateway: failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	requestID := uuid.New().String()
	req.Header.Set("X-Request-ID", requestID)

	// Read the token at send time, not construction time.
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.log.Warn("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", requestID),
			zap.Error(err))
		return fmt.Errorf("gateway: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("gateway: failed to read response: %w", err)
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	c.log.Debug("request completed",
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", requestID),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newAPIError(resp.StatusCode, data)
		span.SetStatus(codes.Error, apiErr.Message)
		if apiErr.IsAuthRejection() && c.onAuthRejection != nil {
			c.onAuthRejection()
		}
		return apiErr
	}

	span.SetStatus(codes.Ok, "")

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("gateway: failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}
