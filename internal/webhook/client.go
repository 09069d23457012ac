package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const secretHeader = "X-Webhook-Secret"

// Client posts trigger payloads to the automation system.
type Client struct {
	client  *http.Client
	baseURL string
	headers map[string]string
}

type Option func(*Client)

// WithHTTPClient replaces the default client (30s timeout).
func WithHTTPClient(c *http.Client) Option {
	return func(w *Client) {
		w.client = c
	}
}

// WithSecret sends secret in the X-Webhook-Secret header. Empty is ignored.
func WithSecret(secret string) Option {
	return WithHeader(secretHeader, secret)
}

func WithHeader(key, value string) Option {
	return func(w *Client) {
		if value == "" {
			return
		}
		if w.headers == nil {
			w.headers = make(map[string]string)
		}
		w.headers[key] = value
	}
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// StatusError is returned when the automation system answers outside 2xx.
type StatusError struct {
	Path   string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("webhook %s returned status %d", e.Path, e.Status)
	}
	return fmt.Sprintf("webhook %s returned status %d: %s", e.Path, e.Status, e.Body)
}

// Send marshals payload and POSTs it to baseURL/path.
func (c *Client) Send(ctx context.Context, path string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return c.SendRaw(ctx, path, body)
}

// SendRaw POSTs an already encoded JSON body.
func (c *Client) SendRaw(ctx context.Context, path string, body []byte) error {
	if c.baseURL == "" {
		return fmt.Errorf("webhook base url is not configured")
	}
	path = "/" + strings.TrimLeft(path, "/")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{Path: path, Status: resp.StatusCode, Body: strings.TrimSpace(string(snippet))}
	}
	io.Copy(io.Discard, resp.Body)
	return nil
}
