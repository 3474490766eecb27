// Package api implements the HTTP transport for the store API: JSON and
// multipart requests, bearer credential attachment, and decoding of the
// {success, data, message} response envelope every endpoint uses.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmperov/shopadmin/internal/logging"
)

// TokenSource supplies the current bearer credential. An empty token means
// the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// Client is a thin, stateless HTTP client for the store API. It performs no
// caching and no retries; every failure is surfaced to the caller.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger
}

func NewClient(baseURL string, tokens TokenSource, timeout time.Duration, log logging.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log,
	}
}

// BaseURL returns the configured API origin.
func (c *Client) BaseURL() string { return c.baseURL }

// AssetURL resolves a persisted image name against the uploads path of the
// API origin.
func (c *Client) AssetURL(name string) string {
	return c.baseURL + "/uploads/" + name
}

// envelope mirrors the standard response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) (json.RawMessage, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if resp.StatusCode >= 300 {
			return nil, &Error{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return nil, fmt.Errorf("decode envelope: %w", err)
	}

	if resp.StatusCode >= 300 || !env.Success {
		msg := env.Message
		if msg == "" {
			msg = genericFailure
		}
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "status", resp.StatusCode, "message", msg)
		return nil, &Error{Status: resp.StatusCode, Message: msg}
	}

	return env.Data, nil
}

func decode[T any](data json.RawMessage) (T, error) {
	var out T
	if len(data) == 0 || string(data) == "null" {
		return out, nil
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("decode data: %w", err)
	}
	return out, nil
}

// Get issues a GET request and decodes the envelope data into T.
func Get[T any](ctx context.Context, c *Client, path string, query url.Values) (T, error) {
	data, err := c.do(ctx, http.MethodGet, path, query, nil, "")
	if err != nil {
		var zero T
		return zero, err
	}
	return decode[T](data)
}

// PostJSON issues a POST request with a JSON body and decodes the data into T.
func PostJSON[T any](ctx context.Context, c *Client, path string, payload any) (T, error) {
	return sendJSON[T](ctx, c, http.MethodPost, path, payload)
}

// PutJSON issues a PUT request with a JSON body and decodes the data into T.
func PutJSON[T any](ctx context.Context, c *Client, path string, payload any) (T, error) {
	return sendJSON[T](ctx, c, http.MethodPut, path, payload)
}

func sendJSON[T any](ctx context.Context, c *Client, method, path string, payload any) (T, error) {
	var zero T
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return zero, fmt.Errorf("encode payload: %w", err)
		}
		body = bytes.NewReader(b)
	}
	data, err := c.do(ctx, method, path, nil, body, "application/json")
	if err != nil {
		return zero, err
	}
	return decode[T](data)
}

// PostForm issues a POST request with a multipart body and decodes the data into T.
func PostForm[T any](ctx context.Context, c *Client, path string, form *FormBody) (T, error) {
	return sendForm[T](ctx, c, http.MethodPost, path, form)
}

// PutForm issues a PUT request with a multipart body and decodes the data into T.
func PutForm[T any](ctx context.Context, c *Client, path string, form *FormBody) (T, error) {
	return sendForm[T](ctx, c, http.MethodPut, path, form)
}

func sendForm[T any](ctx context.Context, c *Client, method, path string, form *FormBody) (T, error) {
	var zero T
	body, contentType, err := form.Encode()
	if err != nil {
		return zero, fmt.Errorf("encode form: %w", err)
	}
	data, err := c.do(ctx, method, path, nil, body, contentType)
	if err != nil {
		return zero, err
	}
	return decode[T](data)
}

// Delete issues a DELETE request. The data payload, if any, is discarded;
// only the envelope acknowledgement matters.
func (c *Client) Delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil, nil, "")
	return err
}
