// Package api is the single HTTP boundary to the food-ordering backend.
// Every endpoint wrapper is a thin typed projection over Client.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

const (
	headerInitData = "x-telegram-init-data"

	defaultTimeout = 10 * time.Second
)

// Credentials supplies the auth material attached to outgoing requests. It
// is re-read on every request: a logout elsewhere must be observed promptly,
// so the token is never cached inside the client.
type Credentials interface {
	Token(ctx context.Context) (string, bool)
	InitData(ctx context.Context) (string, bool)
}

// Client wraps the backend REST API. Both the bearer token and the raw
// init-data header are attached when available; the backend decides which to
// trust.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	creds          Credentials
	onUnauthorized func(ctx context.Context)
}

type Option func(*Client)

// WithHTTPClient replaces the underlying transport, mainly for tests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithUnauthorizedHook registers a callback invoked on any backend 401,
// used to soft-invalidate the stored session.
func WithUnauthorizedHook(hook func(ctx context.Context)) Option {
	return func(c *Client) {
		c.onUnauthorized = hook
	}
}

func NewClient(baseURL string, creds Credentials, opts ...Option) *Client {
	client := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		creds: creds,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Upload is a multipart file payload. The content type is set by the
// multipart writer, never by the caller.
type Upload struct {
	Field    string
	FileName string
	Content  io.Reader
	Extra    map[string]string
}

// Request issues an HTTP call and decodes the response into out (which may
// be nil for fire-and-forget calls). Non-2xx responses and 204 never touch
// out; failures are reported as *Error when the backend produced them.
func (c *Client) Request(ctx context.Context, method, path string, body, out any) error {
	var (
		reader      io.Reader
		contentType string
	)

	switch payload := body.(type) {
	case nil:
	case *Upload:
		buf, ct, err := encodeMultipart(payload)
		if err != nil {
			return err
		}
		reader, contentType = buf, ct
	default:
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader, contentType = bytes.NewReader(encoded), "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	c.attachCredentials(ctx, req)

	return c.do(req, out)
}

// do executes a prepared request and applies the uniform response handling:
// 401 soft-invalidation, error envelope decoding, 204 short-circuit.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		// Session expired or revoked: drop it and force re-authentication.
		if c.onUnauthorized != nil {
			c.onUnauthorized(req.Context())
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return &Error{Status: resp.StatusCode, Detail: decodeDetail(raw)}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response from %s: %w", req.URL.Path, err)
	}
	return nil
}

func (c *Client) attachCredentials(ctx context.Context, req *http.Request) {
	if c.creds == nil {
		return
	}
	if token, ok := c.creds.Token(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if initData, ok := c.creds.InitData(ctx); ok {
		req.Header.Set(headerInitData, initData)
	}
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.Request(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Request(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Request(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.Request(ctx, http.MethodDelete, path, nil, nil)
}

func encodeMultipart(upload *Upload) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	part, err := writer.CreateFormFile(upload.Field, upload.FileName)
	if err != nil {
		return nil, "", fmt.Errorf("create multipart file: %w", err)
	}
	if _, err := io.Copy(part, upload.Content); err != nil {
		return nil, "", fmt.Errorf("copy upload content: %w", err)
	}
	for key, value := range upload.Extra {
		if err := writer.WriteField(key, value); err != nil {
			return nil, "", fmt.Errorf("write multipart field %q: %w", key, err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("finalize multipart body: %w", err)
	}

	return buf, writer.FormDataContentType(), nil
}
