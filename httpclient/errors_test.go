package httpclient

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const testConnectionFailed = "connection failed"

func TestErrorTypeFormatting(t *testing.T) {
	tests := []struct {
		name     string
		error    ClientError
		contains []string
	}{
		{
			name:     "network error without wrapped error",
			error:    NewNetworkError(testConnectionFailed, nil),
			contains: []string{"network error", testConnectionFailed},
		},
		{
			name:     "network error with wrapped error",
			error:    NewNetworkError(testConnectionFailed, errors.New("underlying issue")),
			contains: []string{"network error", testConnectionFailed, "underlying issue"},
		},
		{
			name:     "timeout error",
			error:    NewTimeoutError("request timeout", 30*time.Second),
			contains: []string{"timeout error", "request timeout", "30s"},
		},
		{
			name:     "http error",
			error:    NewHTTPError("bad request", 400, []byte("invalid input")),
			contains: []string{"HTTP error", "bad request", "400"},
		},
		{
			name:     "auth error with status",
			error:    NewAuthError("token missing", 200),
			contains: []string{"auth error", "token missing", "200"},
		},
		{
			name:     "auth error without status",
			error:    NewAuthError("token missing", 0),
			contains: []string{"auth error", "token missing"},
		},
		{
			name:     "validation error with field",
			error:    NewValidationError("search string cannot be blank", "search_string"),
			contains: []string{"validation error", "search string cannot be blank", "search_string"},
		},
		{
			name:     "validation error without field",
			error:    NewValidationError("invalid request", ""),
			contains: []string{"validation error", "invalid request"},
		},
		{
			name:     "interceptor error",
			error:    NewInterceptorError("processing failed", "request", errors.New("parsing error")),
			contains: []string{"interceptor error", "processing failed", "request", "parsing error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errorMsg := tt.error.Error()
			for _, expected := range tt.contains {
				assert.Contains(t, errorMsg, expected, "Error message should contain: %s", expected)
			}
		})
	}
}

func TestErrorTypeIdentification(t *testing.T) {
	tests := []struct {
		name     string
		error    ClientError
		expected ErrorType
	}{
		{"network", NewNetworkError("test", nil), NetworkError},
		{"timeout", NewTimeoutError("test", time.Second), TimeoutError},
		{"http", NewHTTPError("test", 500, nil), HTTPError},
		{"auth", NewAuthError("test", 403), AuthError},
		{"validation", NewValidationError("test", "field"), ValidationError},
		{"interceptor", NewInterceptorError("test", "stage", nil), InterceptorError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.error.Type())
			assert.True(t, IsErrorType(tt.error, tt.expected))
		})
	}
}

func TestErrorUnwrapping(t *testing.T) {
	t.Run("network error unwrapping", func(t *testing.T) {
		underlyingErr := errors.New("connection refused")
		netErr := NewNetworkError("failed to connect", underlyingErr)

		assert.True(t, errors.Is(netErr, underlyingErr))

		var target *networkError
		assert.True(t, errors.As(netErr, &target))
		assert.Equal(t, "failed to connect", target.message)
	})

	t.Run("interceptor error unwrapping", func(t *testing.T) {
		underlyingErr := errors.New("parse failure")
		icErr := NewInterceptorError("intercept failed", "response", underlyingErr)

		assert.True(t, errors.Is(icErr, underlyingErr))
	})
}

func TestIsErrorType(t *testing.T) {
	assert.False(t, IsErrorType(nil, NetworkError))
	assert.False(t, IsErrorType(errors.New("plain"), NetworkError))
	assert.False(t, IsErrorType(NewTimeoutError("t", time.Second), NetworkError))
}

func TestIsHTTPStatusError(t *testing.T) {
	err := NewHTTPError("unavailable", 503, nil)
	assert.True(t, IsHTTPStatusError(err, 503))
	assert.False(t, IsHTTPStatusError(err, 500))
	assert.False(t, IsHTTPStatusError(errors.New("plain"), 503))
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, 502, StatusCode(NewHTTPError("bad gateway", 502, nil)))
	assert.Equal(t, 403, StatusCode(NewAuthError("denied", 403)))
	assert.Zero(t, StatusCode(NewNetworkError("down", nil)))
	assert.Zero(t, StatusCode(nil))
}

func TestIsSuccessStatus(t *testing.T) {
	assert.True(t, IsSuccessStatus(200))
	assert.True(t, IsSuccessStatus(204))
	assert.False(t, IsSuccessStatus(199))
	assert.False(t, IsSuccessStatus(300))
	assert.False(t, IsSuccessStatus(500))
}

func TestHTTPErrorPayload(t *testing.T) {
	body := []byte(`{"detail":"oops"}`)
	err := NewHTTPError("server error", 500, body)

	var httpErr *httpError
	assert.True(t, errors.As(err, &httpErr))
	assert.Equal(t, 500, httpErr.StatusCode())
	assert.Equal(t, body, httpErr.Body())
}
