// Package httpclient provides a small, composable HTTP client with
// request/response interceptors, default headers, query-parameter
// encoding, and structured request/response logging.
//
// The client performs exactly one HTTP round trip per call and classifies
// every failure into a ClientError type (network, timeout, http, auth,
// validation, interceptor). It never retries on its own; callers who want
// retries wrap calls with the retry package, which understands this
// package's error classification.
//
// Every outgoing request carries an X-Request-ID header, generated when
// the caller has not supplied one.
package httpclient
