package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultTimeout is the transport-level ceiling for a single call.
// There is no retry or backoff; a failed call surfaces immediately.
const DefaultTimeout = time.Minute

// TokenSource yields the bearer token to attach to outgoing requests.
// An empty token means the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// Client wraps the backend REST API. Responses are unwrapped from the
// {data, resp_code, resp_msg} envelope; resp_code != 200 is an
// application-level failure even on HTTP 200.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	logger     *slog.Logger
}

// NewClient creates an API client for the given base URL
func NewClient(baseURL string, tokens TokenSource, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
		tokens:     tokens,
		logger:     logger,
	}
}

// SetTimeout overrides the transport-level timeout
func (c *Client) SetTimeout(d time.Duration) {
	c.httpClient.Timeout = d
}

// RequestOption tweaks a single call
type RequestOption func(*requestConfig)

type requestConfig struct {
	query url.Values
}

// WithQuery attaches query parameters to the call
func WithQuery(query url.Values) RequestOption {
	return func(cfg *requestConfig) {
		cfg.query = query
	}
}

// WithParam attaches a single query parameter to the call
func WithParam(key, value string) RequestOption {
	return func(cfg *requestConfig) {
		if cfg.query == nil {
			cfg.query = url.Values{}
		}
		cfg.query.Set(key, value)
	}
}

func (c *Client) Get(ctx context.Context, path string, out interface{}, opts ...RequestOption) error {
	return c.do(ctx, http.MethodGet, path, nil, out, opts...)
}

func (c *Client) Post(ctx context.Context, path string, body interface{}, out interface{}, opts ...RequestOption) error {
	return c.do(ctx, http.MethodPost, path, body, out, opts...)
}

func (c *Client) Put(ctx context.Context, path string, body interface{}, out interface{}, opts ...RequestOption) error {
	return c.do(ctx, http.MethodPut, path, body, out, opts...)
}

func (c *Client) Patch(ctx context.Context, path string, body interface{}, out interface{}, opts ...RequestOption) error {
	return c.do(ctx, http.MethodPatch, path, body, out, opts...)
}

func (c *Client) Delete(ctx context.Context, path string, out interface{}, opts ...RequestOption) error {
	return c.do(ctx, http.MethodDelete, path, nil, out, opts...)
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}, opts ...RequestOption) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := c.newRequest(ctx, method, path, reader, opts...)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

// FileUpload describes the optional file part of a multipart request
type FileUpload struct {
	FieldName string
	FileName  string
	Reader    io.Reader
}

// PostMultipart sends a JSON part named "payload" plus an optional file
// part, matching the backend's leave submission endpoint.
func (c *Client) PostMultipart(ctx context.Context, path string, body interface{}, file *FileUpload, out interface{}, opts ...RequestOption) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode multipart payload: %w", err)
	}
	if err := mw.WriteField("payload", string(payload)); err != nil {
		return fmt.Errorf("failed to write multipart payload: %w", err)
	}

	if file != nil {
		part, err := mw.CreateFormFile(file.FieldName, file.FileName)
		if err != nil {
			return fmt.Errorf("failed to create multipart file part: %w", err)
		}
		if _, err := io.Copy(part, file.Reader); err != nil {
			return fmt.Errorf("failed to write multipart file part: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, &buf, opts...)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return c.send(req, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader, opts ...RequestOption) (*http.Request, error) {
	cfg := &requestConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	target := c.baseURL + path
	if len(cfg.query) > 0 {
		target += "?" + cfg.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return req, nil
}

func (c *Client) send(req *http.Request, out interface{}) error {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("request failed", "method", req.Method, "path", req.URL.Path, "error", err)
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var envelope Envelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug("request completed",
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"resp_code", envelope.RespCode,
		"duration", time.Since(start),
	)

	if envelope.RespCode != CodeOK {
		return &Error{
			StatusCode: resp.StatusCode,
			RespCode:   envelope.RespCode,
			Message:    envelope.RespMsg,
		}
	}

	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return nil
}
