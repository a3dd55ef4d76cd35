package httpclient

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	nethttp "net/http"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/addrkit/go-fias/logger"
)

const (
	// DefaultTimeout is the default request timeout duration
	DefaultTimeout = 30 * time.Second

	// DefaultMaxPayloadLogBytes caps logged body sizes when payload logging is on
	DefaultMaxPayloadLogBytes = 2048
)

// client implements the Client interface
type client struct {
	httpClient           *nethttp.Client
	logger               logger.Logger
	config               *Config
	requestInterceptors  []RequestInterceptor
	responseInterceptors []ResponseInterceptor
	callCount            int64
}

// NewClient creates a new HTTP client with default configuration
func NewClient(log logger.Logger) Client {
	return NewBuilder(log).Build()
}

// Builder provides a fluent interface for configuring the HTTP client
type Builder struct {
	config *Config
	logger logger.Logger
}

// NewBuilder creates a new client builder
func NewBuilder(log logger.Logger) *Builder {
	return &Builder{
		config: &Config{
			Timeout:              DefaultTimeout,
			RequestInterceptors:  []RequestInterceptor{},
			ResponseInterceptors: []ResponseInterceptor{},
			DefaultHeaders:       make(map[string]string),
			MaxPayloadLogBytes:   DefaultMaxPayloadLogBytes,
		},
		logger: log,
	}
}

// WithTimeout sets the request timeout
func (b *Builder) WithTimeout(timeout time.Duration) *Builder {
	b.config.Timeout = timeout
	return b
}

// WithDefaultHeader adds a default header that will be sent with all requests
func (b *Builder) WithDefaultHeader(key, value string) *Builder {
	b.config.DefaultHeaders[key] = value
	return b
}

// WithRequestInterceptor adds a request interceptor
func (b *Builder) WithRequestInterceptor(interceptor RequestInterceptor) *Builder {
	b.config.RequestInterceptors = append(b.config.RequestInterceptors, interceptor)
	return b
}

// WithResponseInterceptor adds a response interceptor
func (b *Builder) WithResponseInterceptor(interceptor ResponseInterceptor) *Builder {
	b.config.ResponseInterceptors = append(b.config.ResponseInterceptors, interceptor)
	return b
}

// WithPayloadLogging enables debug-level logging of request/response bodies
func (b *Builder) WithPayloadLogging(maxBytes int) *Builder {
	b.config.LogPayloads = true
	if maxBytes > 0 {
		b.config.MaxPayloadLogBytes = maxBytes
	}
	return b
}

// Build creates the HTTP client with the configured options
func (b *Builder) Build() Client {
	return &client{
		httpClient: &nethttp.Client{
			Timeout: b.config.Timeout,
		},
		logger:               b.logger,
		config:               b.config,
		requestInterceptors:  b.config.RequestInterceptors,
		responseInterceptors: b.config.ResponseInterceptors,
	}
}

// Get performs a GET request
func (c *client) Get(ctx context.Context, req *Request) (*Response, error) {
	return c.Do(ctx, nethttp.MethodGet, req)
}

// Post performs a POST request
func (c *client) Post(ctx context.Context, req *Request) (*Response, error) {
	return c.Do(ctx, nethttp.MethodPost, req)
}

// Close releases pooled transport connections
func (c *client) Close() {
	c.httpClient.CloseIdleConnections()
}

// Do performs a single HTTP round trip with the specified method.
// It never retries; compose with the retry package for that.
func (c *client) Do(ctx context.Context, method string, req *Request) (*Response, error) {
	if err := c.validateRequest(req); err != nil {
		return nil, err
	}

	start := time.Now()
	callCount := atomic.AddInt64(&c.callCount, 1)

	c.logRequest(method, req)

	httpReq, err := c.buildRequest(ctx, method, req)
	if err != nil {
		return nil, err
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if c.isTimeout(err) {
			return nil, NewTimeoutError("request timeout", c.config.Timeout)
		}
		return nil, NewNetworkError("request execution failed", err)
	}

	resp, err := c.buildResponse(ctx, start, callCount, httpReq, httpResp)
	if err != nil {
		return nil, err
	}

	c.logResponse(resp)

	if !IsSuccessStatus(resp.StatusCode) {
		return resp, NewHTTPError(
			"HTTP request failed with status "+nethttp.StatusText(resp.StatusCode),
			resp.StatusCode,
			resp.Body,
		)
	}
	return resp, nil
}

// validateRequest validates the request before sending
func (c *client) validateRequest(req *Request) error {
	if req == nil {
		return NewValidationError("request cannot be nil", "request")
	}
	if req.URL == "" {
		return NewValidationError("URL cannot be empty", "url")
	}
	return nil
}

// buildURL encodes query parameters into the request URL
func (c *client) buildURL(req *Request) (string, error) {
	if len(req.Query) == 0 {
		return req.URL, nil
	}
	u, err := url.Parse(req.URL)
	if err != nil {
		return "", NewValidationError("invalid URL: "+err.Error(), "url")
	}
	q := u.Query()
	for key, value := range req.Query {
		q.Set(key, value)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// applyHeaders applies headers to the HTTP request
func (c *client) applyHeaders(httpReq *nethttp.Request, req *Request) {
	// Apply default headers first
	for key, value := range c.config.DefaultHeaders {
		httpReq.Header.Set(key, value)
	}

	// Apply request-specific headers (these override defaults)
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	// Set Content-Type if not already set and body is present
	if httpReq.Header.Get("Content-Type") == "" && req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if httpReq.Header.Get(HeaderXRequestID) == "" {
		httpReq.Header.Set(HeaderXRequestID, uuid.NewString())
	}
}

// buildRequest constructs an *http.Request, applies headers, and runs request interceptors.
func (c *client) buildRequest(ctx context.Context, method string, req *Request) (*nethttp.Request, error) {
	reqURL, err := c.buildURL(req)
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := nethttp.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return nil, NewNetworkError("failed to create HTTP request", err)
	}

	c.applyHeaders(httpReq, req)

	if err := c.runRequestInterceptors(ctx, httpReq); err != nil {
		return nil, NewInterceptorError("request interceptor failed", "request", err)
	}
	return httpReq, nil
}

// buildResponse runs response interceptors, reads the body, and builds a Response.
func (c *client) buildResponse(ctx context.Context, start time.Time, callCount int64, httpReq *nethttp.Request, httpResp *nethttp.Response) (*Response, error) {
	defer httpResp.Body.Close()

	if err := c.runResponseInterceptors(ctx, httpReq, httpResp); err != nil {
		return nil, NewInterceptorError("response interceptor failed", "response", err)
	}

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, NewNetworkError("failed to read response body", err)
	}

	elapsed := time.Since(start)
	return &Response{
		StatusCode: httpResp.StatusCode,
		Body:       respBody,
		Headers:    httpResp.Header,
		Stats: Stats{
			ElapsedTime: elapsed,
			CallCount:   callCount,
		},
	}, nil
}

func (c *client) isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// runRequestInterceptors executes all request interceptors
func (c *client) runRequestInterceptors(ctx context.Context, req *nethttp.Request) error {
	for _, interceptor := range c.requestInterceptors {
		if err := interceptor(ctx, req); err != nil {
			return err
		}
	}
	return nil
}

// runResponseInterceptors executes all response interceptors
func (c *client) runResponseInterceptors(ctx context.Context, req *nethttp.Request, resp *nethttp.Response) error {
	for _, interceptor := range c.responseInterceptors {
		if err := interceptor(ctx, req, resp); err != nil {
			return err
		}
	}
	return nil
}

// logRequest logs the outgoing request
func (c *client) logRequest(method string, req *Request) {
	logEvent := c.logger.Debug().
		Str("direction", "outbound").
		Str("method", method).
		Str("url", req.URL)

	if c.config.LogPayloads && len(req.Body) > 0 {
		logEvent = logEvent.Bytes("body", c.capPayload(req.Body))
	}

	logEvent.Msg("HTTP client request")
}

// logResponse logs the incoming response
func (c *client) logResponse(resp *Response) {
	logEvent := c.logger.Debug().
		Str("direction", "inbound").
		Int("status", resp.StatusCode).
		Dur("elapsed", resp.Stats.ElapsedTime).
		Int64("call_count", resp.Stats.CallCount)

	if c.config.LogPayloads && len(resp.Body) > 0 {
		logEvent = logEvent.Bytes("body", c.capPayload(resp.Body))
	}

	logEvent.Msg("HTTP client response")
}

func (c *client) capPayload(body []byte) []byte {
	maxLen := c.config.MaxPayloadLogBytes
	if maxLen <= 0 || len(body) <= maxLen {
		return body
	}
	return body[:maxLen]
}
