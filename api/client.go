package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	errs "github.com/jrsteele09/go-ecom-client/internal/errors"
	"github.com/pkg/errors"
)

// Client is a thin REST client for the platform backend. All state the
// backend owns stays on the backend; the client only shapes requests and
// decodes response envelopes.
type Client struct {
	baseURL string
	http    *http.Client
}

type ClientOption func(*Client)

// WithHTTPClient overrides the underlying *http.Client (primarily for testing).
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) {
		c.http = h
	}
}

func New(baseURL string, options ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// APIError is an application-level failure flagged inside a success-shaped
// response body ({success:false, message}).
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return "request failed"
	}
	return e.Message
}

func (c *Client) postJSON(ctx context.Context, path string, bearer string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "[Client.postJSON] marshal body")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "[Client.postJSON] new request")
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, bearer, out)
}

func (c *Client) getJSON(ctx context.Context, path string, bearer string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errors.Wrap(err, "[Client.getJSON] new request")
	}
	return c.do(req, bearer, out)
}

func (c *Client) do(req *http.Request, bearer string, out any) error {
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "[Client.do] %s %s", req.Method, req.URL.Path)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%s %s: %w: %d", req.Method, req.URL.Path, errs.ErrUnexpectedStatus, resp.StatusCode)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "[Client.do] decode %s", req.URL.Path)
	}
	return nil
}
