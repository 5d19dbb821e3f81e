package resrel

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/net/publicsuffix"
)

const (
	contentTypeJSON    = "application/json"
	csrfCookieEndpoint = "/sanctum/csrf-cookie"

	// defaultErrorMessage is used when an error response carries no
	// usable message of its own.
	defaultErrorMessage = "La requête a échoué."
)

// Options configures a Client. Callers should pass a validated base URL;
// everything else has working defaults.
type Options struct {
	// BaseURL is the backend root, e.g. "https://api.example.gouv.fr".
	BaseURL string

	// Tokens persists the session token. Defaults to an in-memory store.
	Tokens TokenStore

	// HTTPClient overrides the underlying transport. When nil a client
	// with Timeout is built. A cookie jar is installed either way so the
	// CSRF cookie survives between calls.
	HTTPClient *http.Client

	// Timeout bounds each request when HTTPClient is nil.
	Timeout time.Duration

	// UserAgent is sent on every request.
	UserAgent string

	Logger *slog.Logger
}

// Client is the single chokepoint for outgoing HTTP calls. It enforces a
// uniform request/response contract: default JSON headers, a bearer token
// read fresh from the TokenStore on every call, JSON bodies in and out,
// and a typed error for every failure (*APIError for structured responses,
// *TransportError for everything else).
type Client struct {
	baseURL   string
	hc        *http.Client
	tokens    TokenStore
	userAgent string
	logger    *slog.Logger
}

// New builds a Client from options.
func New(opts Options) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("base URL is required")
	}
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q", opts.BaseURL)
	}

	tokens := opts.Tokens
	if tokens == nil {
		tokens = &MemoryTokenStore{}
	}

	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		hc = &http.Client{Timeout: timeout}
	}
	if hc.Jar == nil {
		jar, jarErr := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
		if jarErr != nil {
			return nil, fmt.Errorf("build cookie jar: %w", jarErr)
		}
		hc.Jar = jar
	}

	userAgent := strings.TrimSpace(opts.UserAgent)
	if userAgent == "" {
		userAgent = "resrel-go"
	}

	return &Client{
		baseURL:   baseURL,
		hc:        hc,
		tokens:    tokens,
		userAgent: userAgent,
		logger:    opts.Logger,
	}, nil
}

// Tokens exposes the store so the auth layer can write and clear tokens.
func (c *Client) Tokens() TokenStore { return c.tokens }

func (c *Client) log() *slog.Logger {
	if c != nil && c.logger != nil {
		return c.logger
	}
	return slog.Default()
}

// RequestOptions carries per-call extras.
type RequestOptions struct {
	// Headers override the client defaults header by header.
	Headers http.Header

	// Query is appended to the endpoint.
	Query url.Values
}

// Upload describes one multipart file upload.
type Upload struct {
	Field    string
	Filename string
	Content  io.Reader

	// Fields are additional plain form values sent alongside the file.
	Fields map[string]string
}

type multipartBody struct {
	data        []byte
	contentType string
}

// Request issues one HTTP call against the configured base URL and returns
// the raw JSON body on success. body is JSON-encoded when non-nil. Every
// non-2xx response comes back as a *APIError carrying the status and the
// parsed payload; transport and decode failures come back as a
// *TransportError. A 401 response additionally deletes the stored token,
// whatever the endpoint.
func (c *Client) Request(ctx context.Context, method, endpoint string, body any, opts *RequestOptions) (json.RawMessage, error) {
	var reader io.Reader
	contentType := contentTypeJSON

	switch b := body.(type) {
	case nil:
	case *multipartBody:
		reader = bytes.NewReader(b.data)
		contentType = b.contentType
	default:
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, &TransportError{Message: fmt.Sprintf("encode request body: %v", err), Err: err}
		}
		reader = bytes.NewReader(payload)
	}

	return c.do(ctx, method, endpoint, reader, contentType, opts)
}

func (c *Client) do(ctx context.Context, method, endpoint string, body io.Reader, contentType string, opts *RequestOptions) (json.RawMessage, error) {
	target := c.baseURL + endpoint
	if opts != nil && len(opts.Query) > 0 {
		target += "?" + opts.Query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, &TransportError{Message: err.Error(), Err: err}
	}

	req.Header.Set("Accept", contentTypeJSON)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	req.Header.Set("X-Request-Id", uuid.NewString())
	req.Header.Set("User-Agent", c.userAgent)

	// The token is read fresh from the store on every call, never cached
	// in the client, so a login or logout elsewhere takes effect on the
	// very next request.
	token, err := c.tokens.Token()
	if err != nil {
		c.log().Warn("read stored token", "error", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	// Caller-supplied headers win over defaults.
	if opts != nil {
		for name, values := range opts.Headers {
			req.Header.Del(name)
			for _, v := range values {
				req.Header.Add(name, v)
			}
		}
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, &TransportError{Message: err.Error(), Err: err}
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.log().Warn("close response body", "error", closeErr)
		}
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Message: fmt.Sprintf("read response body: %v", err), Err: err}
	}

	var parsed any
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &parsed); err != nil {
			return nil, &TransportError{Message: fmt.Sprintf("decode response body: %v", err), Err: err}
		}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		if resp.StatusCode == http.StatusUnauthorized {
			// An unauthenticated response invalidates whatever token was
			// sent with the request.
			if clearErr := c.tokens.Clear(); clearErr != nil {
				c.log().Warn("clear stored token", "error", clearErr)
			}
		}
		return nil, &APIError{Message: errorMessage(parsed), Status: resp.StatusCode, Data: parsed}
	}

	return json.RawMessage(raw), nil
}

func errorMessage(parsed any) string {
	if body, ok := parsed.(map[string]any); ok {
		if msg, ok := body["message"].(string); ok && msg != "" {
			return msg
		}
	}
	return defaultErrorMessage
}

// DoJSON issues a request and decodes the response into out when out is
// non-nil. An undecodable success body surfaces as a *TransportError, the
// same as any other decode failure.
func (c *Client) DoJSON(ctx context.Context, method, endpoint string, body, out any, opts *RequestOptions) error {
	raw, err := c.Request(ctx, method, endpoint, body, opts)
	if err != nil {
		return err
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &TransportError{Message: fmt.Sprintf("decode response body: %v", err), Err: err}
	}
	return nil
}

// Get issues a GET and decodes the response into out.
func (c *Client) Get(ctx context.Context, endpoint string, out any, opts *RequestOptions) error {
	return c.DoJSON(ctx, http.MethodGet, endpoint, nil, out, opts)
}

// Post issues a POST with a JSON body and decodes the response into out.
func (c *Client) Post(ctx context.Context, endpoint string, body, out any) error {
	return c.DoJSON(ctx, http.MethodPost, endpoint, body, out, nil)
}

// Put issues a PUT with a JSON body and decodes the response into out.
func (c *Client) Put(ctx context.Context, endpoint string, body, out any) error {
	return c.DoJSON(ctx, http.MethodPut, endpoint, body, out, nil)
}

// Delete issues a DELETE and decodes the response into out.
func (c *Client) Delete(ctx context.Context, endpoint string, out any) error {
	return c.DoJSON(ctx, http.MethodDelete, endpoint, nil, out, nil)
}

// PostMultipart uploads a file as multipart form data. Unlike every other
// call it does not send the JSON content type: the multipart writer
// supplies one carrying the part boundary.
func (c *Client) PostMultipart(ctx context.Context, endpoint string, up Upload, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile(up.Field, up.Filename)
	if err != nil {
		return &TransportError{Message: fmt.Sprintf("build multipart body: %v", err), Err: err}
	}
	if _, err := io.Copy(part, up.Content); err != nil {
		return &TransportError{Message: fmt.Sprintf("read upload content: %v", err), Err: err}
	}
	for field, value := range up.Fields {
		if err := w.WriteField(field, value); err != nil {
			return &TransportError{Message: fmt.Sprintf("build multipart body: %v", err), Err: err}
		}
	}
	if err := w.Close(); err != nil {
		return &TransportError{Message: fmt.Sprintf("build multipart body: %v", err), Err: err}
	}

	return c.DoJSON(ctx, http.MethodPost, endpoint, &multipartBody{
		data:        buf.Bytes(),
		contentType: w.FormDataContentType(),
	}, out, nil)
}

// PrimeCSRF asks the backend to set its CSRF cookie before state-changing
// calls. The call is advisory: failures are logged and swallowed.
func (c *Client) PrimeCSRF(ctx context.Context) {
	if _, err := c.Request(ctx, http.MethodGet, csrfCookieEndpoint, nil, nil); err != nil {
		c.log().Warn("csrf cookie priming failed", "error", err)
	}
}
