package httpclient

import (
	"context"
	nethttp "net/http"
	"time"
)

// HeaderXRequestID is the header carrying the per-request correlation ID.
const HeaderXRequestID = "X-Request-ID"

// Client defines the HTTP client interface for making requests
type Client interface {
	Get(ctx context.Context, req *Request) (*Response, error)
	Post(ctx context.Context, req *Request) (*Response, error)
	Do(ctx context.Context, method string, req *Request) (*Response, error)
	// Close releases pooled transport connections. The client must not be
	// used after Close returns.
	Close()
}

// Request represents an HTTP request with all necessary data.
// Query parameters are encoded into the URL before sending.
type Request struct {
	URL     string
	Query   map[string]string
	Headers map[string]string
	Body    []byte
}

// Response represents an HTTP response with tracking information
type Response struct {
	StatusCode int
	Body       []byte
	Headers    nethttp.Header
	Stats      Stats
}

// Stats contains request execution statistics
type Stats struct {
	ElapsedTime time.Duration
	CallCount   int64
}

// RequestInterceptor is called before sending the request
type RequestInterceptor func(ctx context.Context, req *nethttp.Request) error

// ResponseInterceptor is called after receiving the response
type ResponseInterceptor func(ctx context.Context, req *nethttp.Request, resp *nethttp.Response) error

// Config holds the HTTP client configuration
type Config struct {
	Timeout              time.Duration
	RequestInterceptors  []RequestInterceptor
	ResponseInterceptors []ResponseInterceptor
	DefaultHeaders       map[string]string
	// LogPayloads enables debug-level logging of request and response bodies
	LogPayloads bool
	// MaxPayloadLogBytes caps the number of body bytes logged when LogPayloads is enabled
	MaxPayloadLogBytes int
}
