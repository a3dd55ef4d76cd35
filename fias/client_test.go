package fias

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/addrkit/go-fias/httpclient"
	"github.com/addrkit/go-fias/logger"
)

const testToken = "test-token-123"

type capturedRequest struct {
	method string
	path   string
	query  url.Values
	header nethttp.Header
	body   []byte
}

type testServer struct {
	*httptest.Server
	mu       sync.Mutex
	requests []capturedRequest
}

// newTestServer records every request and answers with the given status
// and body.
func newTestServer(t *testing.T, status int, respBody string) *testServer {
	t.Helper()
	ts := &testServer{}
	ts.Server = httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		body, _ := io.ReadAll(r.Body)
		ts.mu.Lock()
		defer ts.mu.Unlock()
		ts.requests = append(ts.requests, capturedRequest{
			method: r.Method,
			path:   r.URL.Path,
			query:  r.URL.Query(),
			header: r.Header.Clone(),
			body:   body,
		})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(respBody))
	}))
	t.Cleanup(ts.Close)
	return ts
}

func newTestClient(t *testing.T, ts *testServer, opts ...Option) *Client {
	t.Helper()
	var buf bytes.Buffer
	log := logger.NewWithOutput("error", false, &buf)
	opts = append([]Option{
		WithBaseURL(ts.URL),
		WithTransport(httpclient.NewClient(log)),
		WithLogger(log),
	}, opts...)
	c, err := New(testToken, opts...)
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c
}

func TestNewRejectsBlankToken(t *testing.T) {
	for _, token := range []string{"", "   "} {
		_, err := New(token)
		assert.True(t, httpclient.IsErrorType(err, httpclient.ValidationError))
	}
}

func TestStandardHeaders(t *testing.T) {
	ts := newTestServer(t, 200, `{"addresses":[]}`)
	c := newTestClient(t, ts)

	_, err := c.GetRegions(context.Background())
	require.NoError(t, err)

	require.Len(t, ts.requests, 1)
	req := ts.requests[0]
	assert.Equal(t, "application/json", req.header.Get("accept"))
	assert.Equal(t, testToken, req.header.Get("master-token"))
	assert.Equal(t, "application/json", req.header.Get("Content-Type"))
	assert.NotEmpty(t, req.header.Get(httpclient.HeaderXRequestID))
}

func TestDefaultAddressTypeApplied(t *testing.T) {
	ts := newTestServer(t, 200, `{}`)
	c := newTestClient(t, ts, WithAddressType(Administrative))

	_, err := c.DetailsByID(context.Background(), 77)
	require.NoError(t, err)

	require.Len(t, ts.requests, 1)
	assert.Equal(t, "1", ts.requests[0].query.Get("address_type"))
	assert.Equal(t, "77", ts.requests[0].query.Get("object_id"))
}

func TestPerCallAddressTypeOverride(t *testing.T) {
	ts := newTestServer(t, 200, `{}`)
	c := newTestClient(t, ts, WithAddressType(Administrative))

	_, err := c.DetailsByID(context.Background(), 77, Municipality)
	require.NoError(t, err)

	require.Len(t, ts.requests, 1)
	assert.Equal(t, "2", ts.requests[0].query.Get("address_type"))
}

func TestMunicipalityIsDefaultWhenUnconfigured(t *testing.T) {
	ts := newTestServer(t, 200, `{}`)
	c := newTestClient(t, ts)

	_, err := c.DetailsByID(context.Background(), 77)
	require.NoError(t, err)

	require.Len(t, ts.requests, 1)
	assert.Equal(t, "2", ts.requests[0].query.Get("address_type"))
}

func TestDeprecatedDetailsLogsAndDelegates(t *testing.T) {
	ts := newTestServer(t, 200, `{"object_id":77}`)

	var buf bytes.Buffer
	log := logger.NewWithOutput("warn", false, &buf)
	c, err := New(testToken,
		WithBaseURL(ts.URL),
		WithTransport(httpclient.NewClient(log)),
		WithLogger(log),
	)
	require.NoError(t, err)
	t.Cleanup(c.Close)

	body, err := c.Details(context.Background(), 77)
	require.NoError(t, err)
	assert.JSONEq(t, `{"object_id":77}`, string(body))

	require.Len(t, ts.requests, 1)
	assert.Equal(t, "/GetAddressItemById", ts.requests[0].path)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "Details", entry["operation"])
	assert.Equal(t, "DetailsByID", entry["replacement"])
}

func TestHTTPErrorsPropagateUnchanged(t *testing.T) {
	ts := newTestServer(t, 502, `{"error":"bad gateway"}`)
	c := newTestClient(t, ts)

	_, err := c.GetRegions(context.Background())
	require.Error(t, err)
	assert.True(t, httpclient.IsErrorType(err, httpclient.HTTPError))
	assert.Equal(t, 502, httpclient.StatusCode(err))
}

func TestConcurrentCallsShareOneClient(t *testing.T) {
	ts := newTestServer(t, 200, `{"addresses":[]}`)
	c := newTestClient(t, ts)

	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			_, err := c.GetRegions(context.Background())
			done <- err
		}()
	}
	for i := 0; i < 8; i++ {
		assert.NoError(t, <-done)
	}
}
