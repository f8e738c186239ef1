package upstream

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

	"go.uber.org/zap"
)

const defaultTimeout = 15 * time.Second

// Client is the shared transport behind every resource client. It speaks JSON
// to the platform API, attaches the caller's bearer token, and normalizes all
// failures into *APIError.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

func NewClient(baseURL string, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		logger:  logger,
	}
}

// get issues an idempotent read with a single automatic retry on transport
// failures and 5xx answers. Writes go through do directly and are never
// retried.
func (c *Client) get(ctx context.Context, token, path string, query url.Values, out interface{}) error {
	err := c.do(ctx, http.MethodGet, token, path, query, nil, out)
	if err == nil || !retryable(err) {
		return err
	}

	c.logger.Warn("retrying upstream read",
		zap.String("path", path),
		zap.Error(err),
	)
	return c.do(ctx, http.MethodGet, token, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, token, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, token, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, token, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, token, path, nil, body, out)
}

func (c *Client) patch(ctx context.Context, token, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPatch, token, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, token, path string) error {
	return c.do(ctx, http.MethodDelete, token, path, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, token, path string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &APIError{Status: 0, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("failed to decode response: %v", err),
		}
	}
	return nil
}

// errorBody is the error envelope the platform API responds with. Older
// endpoints used "error" instead of "message" and "errors" instead of
// "field_errors"; both spellings are accepted here so the portal never
// inspects a raw body.
type errorBody struct {
	Message     string              `json:"message"`
	Error       string              `json:"error"`
	FieldErrors map[string][]string `json:"field_errors"`
	Errors      map[string][]string `json:"errors"`
}

func decodeError(resp *http.Response) *APIError {
	apiErr := &APIError{Status: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		apiErr.Message = http.StatusText(resp.StatusCode)
		return apiErr
	}

	var body errorBody
	if err := json.Unmarshal(data, &body); err == nil {
		apiErr.Message = body.Message
		if apiErr.Message == "" {
			apiErr.Message = body.Error
		}
		apiErr.FieldErrors = body.FieldErrors
		if apiErr.FieldErrors == nil {
			apiErr.FieldErrors = body.Errors
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}

func retryable(err error) bool {
	return IsNetwork(err) || IsServerError(err)
}
