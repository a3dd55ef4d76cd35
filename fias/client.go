package fias

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/addrkit/go-fias/httpclient"
	"github.com/addrkit/go-fias/logger"
)

// Client calls the SPAS v2.0 API on behalf of one token. All fields are
// read-only after construction, so a single Client may serve concurrent
// calls.
type Client struct {
	token         string
	addressType   AddressType
	baseURL       string
	transport     httpclient.Client
	log           logger.Logger
	ownsTransport bool
}

// Option configures a Client during construction.
type Option func(*Client)

// WithAddressType sets the default address representation applied to every
// call that does not override it.
func WithAddressType(t AddressType) Option {
	return func(c *Client) {
		c.addressType = t
	}
}

// WithBaseURL overrides the SPAS API root. Tests point this at a local server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithTransport supplies an externally owned HTTP client. The Client will
// not close a transport it does not own.
func WithTransport(t httpclient.Client) Option {
	return func(c *Client) {
		c.transport = t
		c.ownsTransport = false
	}
}

// WithLogger sets the structured logger used for deprecation warnings and
// transport logging on the client-owned transport.
func WithLogger(log logger.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// New creates a Client for the given bearer token.
func New(token string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(token) == "" {
		return nil, httpclient.NewValidationError("token cannot be blank", "token")
	}

	c := &Client{
		token:         token,
		addressType:   Municipality,
		baseURL:       DefaultBaseURL,
		ownsTransport: true,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.log == nil {
		c.log = logger.New("info", false)
	}
	if c.transport == nil {
		c.transport = httpclient.NewClient(c.log)
		c.ownsTransport = true
	}
	return c, nil
}

// Close releases the client-owned transport's pooled connections. It is a
// no-op for transports supplied with WithTransport.
func (c *Client) Close() {
	if c.ownsTransport {
		c.transport.Close()
	}
}

// headers returns the standard headers carried on every authenticated call.
func (c *Client) headers() map[string]string {
	return map[string]string{
		"accept":       "application/json",
		"master-token": c.token,
		"Content-Type": "application/json",
	}
}

// resolveAddressType applies the per-call override when present, falling
// back to the client default.
func (c *Client) resolveAddressType(override []AddressType) AddressType {
	for _, t := range override {
		if t != 0 {
			return t
		}
	}
	return c.addressType
}

// get issues an authenticated GET and returns the body verbatim.
func (c *Client) get(ctx context.Context, endpoint string, query map[string]string) (json.RawMessage, error) {
	resp, err := c.transport.Get(ctx, &httpclient.Request{
		URL:     c.baseURL + endpoint,
		Query:   query,
		Headers: c.headers(),
	})
	if err != nil {
		return nil, err
	}
	return json.RawMessage(resp.Body), nil
}

// post issues an authenticated POST with a JSON body and returns the
// response body verbatim.
func (c *Client) post(ctx context.Context, endpoint string, body any) (json.RawMessage, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, httpclient.NewValidationError("failed to encode request body: "+err.Error(), "body")
	}
	resp, err := c.transport.Post(ctx, &httpclient.Request{
		URL:     c.baseURL + endpoint,
		Headers: c.headers(),
		Body:    payload,
	})
	if err != nil {
		return nil, err
	}
	return json.RawMessage(resp.Body), nil
}

// requireNonBlank rejects empty and whitespace-only required parameters
// before any network call happens.
func requireNonBlank(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return httpclient.NewValidationError(field+" cannot be blank", field)
	}
	return nil
}
