package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/challengehub/internal/common"
	"github.com/dmitrijs2005/challengehub/internal/logging"
	"github.com/google/uuid"
)

// DefaultTimeout bounds every request when Config.Timeout is not set.
const DefaultTimeout = 10 * time.Second

// maxBodySize caps how much of a response body is read.
const maxBodySize = 10 << 20

// Config holds the outbound HTTP settings.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// TokenSource yields the bearer token for the next request.
// An empty token means the request goes out anonymously.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// TokenSourceFunc adapts a function to TokenSource.
type TokenSourceFunc func(ctx context.Context) (string, error)

func (f TokenSourceFunc) Token(ctx context.Context) (string, error) {
	return f(ctx)
}

// RequestInterceptor runs on every outgoing request after the built-in
// headers are set. Returning an error aborts the request.
type RequestInterceptor func(req *http.Request) error

// UnauthorizedHandler is notified once for every 401 response.
type UnauthorizedHandler func(ctx context.Context)

// Request describes one API call. Body is sent as JSON; Form, when set,
// is sent as multipart/form-data and Body is ignored.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
	Form   *Form
}

// Transport is the single outbound HTTP path of the client. It injects the
// bearer token, classifies failures into *Error and reports 401 responses
// to the registered handler. It never retries.
type Transport struct {
	baseURL        string
	client         *http.Client
	tokens         TokenSource
	onUnauthorized UnauthorizedHandler
	interceptors   []RequestInterceptor
	online         func() bool
	log            logging.Logger
}

type Option func(*Transport)

// WithHTTPClient replaces the underlying client. A client without a timeout
// gets the configured one so no request can hang indefinitely.
func WithHTTPClient(c *http.Client) Option {
	return func(t *Transport) {
		t.client = c
	}
}

func WithTokenSource(ts TokenSource) Option {
	return func(t *Transport) {
		t.tokens = ts
	}
}

func WithUnauthorizedHandler(h UnauthorizedHandler) Option {
	return func(t *Transport) {
		t.onUnauthorized = h
	}
}

func WithRequestInterceptor(i RequestInterceptor) Option {
	return func(t *Transport) {
		t.interceptors = append(t.interceptors, i)
	}
}

// WithConnectivityCheck installs a probe consulted when a request gets no
// response; false classifies the failure as offline.
func WithConnectivityCheck(online func() bool) Option {
	return func(t *Transport) {
		t.online = online
	}
}

func WithLogger(l logging.Logger) Option {
	return func(t *Transport) {
		t.log = l
	}
}

// New builds a Transport for cfg.BaseURL.
func New(cfg Config, opts ...Option) (*Transport, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		return nil, errors.New("base url is required")
	}
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported base url scheme %q", u.Scheme)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	t := &Transport{
		baseURL: strings.TrimRight(base, "/"),
		log:     logging.Nop(),
	}
	for _, opt := range opts {
		opt(t)
	}

	if t.client == nil {
		t.client = &http.Client{Timeout: timeout}
	} else if t.client.Timeout <= 0 {
		c := *t.client
		c.Timeout = timeout
		t.client = &c
	}

	return t, nil
}

// Do sends r and decodes a successful JSON response into out (if non-nil).
// Every failure is returned as *Error.
func (t *Transport) Do(ctx context.Context, r *Request, out any) error {
	req, err := t.newRequest(ctx, r)
	if err != nil {
		return err
	}

	start := time.Now()
	resp, err := t.client.Do(req)
	if err != nil {
		e := t.classifyNoResponse(ctx, err)
		t.log.Warn(ctx, "request failed without response",
			"method", r.Method, "path", r.Path, "kind", e.Kind.String(), "error", err)
		return e
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return t.classifyNoResponse(ctx, err)
	}

	t.log.Debug(ctx, "request completed",
		"method", r.Method, "path", r.Path, "status", resp.StatusCode,
		"request_id", req.Header.Get(common.RequestIDHeaderName), "duration", time.Since(start))

	if resp.StatusCode >= http.StatusBadRequest {
		e := &Error{Kind: KindServer, Status: resp.StatusCode, Message: serverMessage(body)}
		if resp.StatusCode == http.StatusUnauthorized {
			t.log.Warn(ctx, "unauthorized response", "method", r.Method, "path", r.Path)
			if t.onUnauthorized != nil {
				t.onUnauthorized(context.WithoutCancel(ctx))
			}
		}
		return e
	}

	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &Error{Kind: KindUnknown, Status: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func (t *Transport) newRequest(ctx context.Context, r *Request) (*http.Request, error) {
	var (
		body        io.Reader
		contentType = "application/json"
	)

	switch {
	case r.Form != nil:
		buf, ct, err := r.Form.encode()
		if err != nil {
			return nil, &Error{Kind: KindUnknown, Err: err}
		}
		body, contentType = buf, ct
	case r.Body != nil:
		b, err := json.Marshal(r.Body)
		if err != nil {
			return nil, &Error{Kind: KindUnknown, Err: fmt.Errorf("encode request: %w", err)}
		}
		body = bytes.NewReader(b)
	}

	target := t.baseURL + "/" + strings.TrimLeft(r.Path, "/")
	if len(r.Query) > 0 {
		target += "?" + r.Query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, target, body)
	if err != nil {
		return nil, &Error{Kind: KindUnknown, Err: fmt.Errorf("build request: %w", err)}
	}

	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	t.authorize(ctx, req)

	for _, intercept := range t.interceptors {
		if err := intercept(req); err != nil {
			return nil, &Error{Kind: KindUnknown, Err: fmt.Errorf("request interceptor: %w", err)}
		}
	}
	return req, nil
}

// authorize sets the bearer header when a token is available. A missing
// token or a failing source leaves the request anonymous.
func (t *Transport) authorize(ctx context.Context, req *http.Request) {
	if t.tokens == nil {
		return
	}
	token, err := t.tokens.Token(ctx)
	if err != nil {
		t.log.Warn(ctx, "token source failed, sending anonymously", "error", err)
		return
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}
}
