package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/apex/log"

	"github.com/minicex/minicex/cli/internal/session"
)

// Client wraps HTTP calls to the exchange REST API.
type Client struct {
	baseURL    string
	headers    http.Header
	httpClient *http.Client
}

// NewClient creates a new API client. An empty token sends no Authorization header.
func NewClient(baseURL, token string, timeout ...time.Duration) *Client {
	return newClient(baseURL, session.Session{Token: token}.AuthHeaders(), timeout...)
}

func newClient(baseURL string, headers http.Header, timeout ...time.Duration) *Client {
	httpTimeout := 30 * time.Second
	if len(timeout) > 0 && timeout[0] > 0 {
		httpTimeout = timeout[0]
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		headers: headers,
		httpClient: &http.Client{
			Timeout: httpTimeout,
		},
	}
}

// BaseURL returns the API base URL the client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// StatusError is returned when the server answers with a 4xx or 5xx status.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return e.Message
}

// DecodeError is returned when a response body does not match the expected schema.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s response: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// do executes an HTTP request and returns the raw response body. Auth headers
// are attached only when authed is set.
func (c *Client) do(ctx context.Context, method, path string, body any, authed bool) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	if authed {
		for k, vs := range c.headers {
			for _, v := range vs {
				req.Header.Add(k, v)
			}
		}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log.WithField("method", method).WithField("url", req.URL.String()).Debug("api request")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		msg, ok := extractAPIErrorBody(respBody)
		if !ok {
			msg = fmt.Sprintf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
		}
		return nil, &StatusError{Code: resp.StatusCode, Message: msg}
	}

	return respBody, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, nil, true)
}

func (c *Client) post(ctx context.Context, path string, body any) ([]byte, error) {
	return c.do(ctx, http.MethodPost, path, body, true)
}

// decode unmarshals a plain JSON response into T.
func decode[T any](path string, data []byte) (*T, error) {
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	return &out, nil
}

func extractAPIErrorBody(body []byte) (string, bool) {
	if len(body) == 0 {
		return "", false
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", false
	}

	if msg, ok := parseErrorValue(payload["detail"]); ok {
		return msg, true
	}
	if msg, ok := parseErrorValue(payload["error"]); ok {
		return msg, true
	}
	return "", false
}

func parseErrorValue(raw any) (string, bool) {
	switch value := raw.(type) {
	case string:
		msg := strings.TrimSpace(value)
		if msg == "" {
			return "", false
		}
		return msg, true
	case []any:
		// validation errors: [{"loc": [...], "msg": "...", "type": "..."}]
		msgs := make([]string, 0, len(value))
		for _, item := range value {
			entry, ok := item.(map[string]any)
			if !ok {
				continue
			}
			if m, ok := entry["msg"].(string); ok && strings.TrimSpace(m) != "" {
				msgs = append(msgs, strings.TrimSpace(m))
			}
		}
		if len(msgs) == 0 {
			return "", false
		}
		return strings.Join(msgs, "; "), true
	case map[string]any:
		if nested, ok := parseErrorValue(value["detail"]); ok {
			return nested, true
		}
		message, _ := value["message"].(string)
		message = strings.TrimSpace(message)
		return message, message != ""
	}
	return "", false
}
