// Package apiclient talks to the blog REST backend.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "http://localhost:3000"
	DefaultTimeout = 30 * time.Second

	maxResponseBytes = 4 << 20
)

// TokenSource yields the current bearer token, or "" when signed out.
type TokenSource interface {
	Token() string
}

// RequestHook runs on every outgoing request before it is sent.
type RequestHook func(req *http.Request)

// Client is safe for concurrent use once configured.
type Client struct {
	baseURL string
	http    *http.Client
	hooks   []RequestHook
}

type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client (and its timeout).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithTokenSource attaches the bearer token from ts to every request.
func WithTokenSource(ts TokenSource) Option {
	return WithRequestHook(BearerHook(ts))
}

func WithRequestHook(h RequestHook) Option {
	return func(c *Client) {
		c.hooks = append(c.hooks, h)
	}
}

// BearerHook sets the Authorization header when ts holds a token.
func BearerHook(ts TokenSource) RequestHook {
	return func(req *http.Request) {
		if ts == nil {
			return
		}
		if token := ts.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
}

func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// do sends a JSON request and decodes a 2xx JSON body into dst.
func (c *Client) do(ctx context.Context, method, path string, body, dst any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for _, hook := range c.hooks {
		hook(req)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return newError(res.StatusCode, data)
	}

	if dst == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, dst); err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError

		switch {
		case errors.As(err, &syntaxError):
			return fmt.Errorf("response body contains badly-formed JSON (at character %d)", syntaxError.Offset)
		case errors.As(err, &unmarshalTypeError):
			return fmt.Errorf("response body contains an invalid value for the %q field", unmarshalTypeError.Field)
		default:
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}
