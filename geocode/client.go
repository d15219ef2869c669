// Copyright 2026 The Jusogo Authors
// SPDX-License-Identifier: Apache-2.0

package geocode

import (
	"context"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/jusogo/jusogo/utils/httputils"
)

const defaultTimeout = 10 * time.Second

// ClientOptions configuration shared by the provider adapters.
type ClientOptions struct {
	// Timeout for a single vendor call. Defaults to 10s.
	Timeout time.Duration

	// Enables light tracing of HTTP requests and responses
	EnableHTTPTrace bool

	// Enables full HTTP body tracing
	EnableHTTPBodyTrace bool

	// KakaoBaseURL overrides the Kakao Local API base URL (tests).
	KakaoBaseURL string

	// NaverBaseURL overrides the NCP Maps API base URL (tests).
	NaverBaseURL string
}

// newHTTPClient builds the adapter HTTP client: fixed timeout, no retries,
// static headers appended to every request, optional tracing.
func newHTTPClient(options *ClientOptions, headers map[string]string) *http.Client {
	if options == nil {
		options = &ClientOptions{}
	}

	var httpLogWriter io.Writer
	if options.EnableHTTPTrace {
		httpLogWriter = os.Stderr
	}

	transport := &http.Transport{
		MaxIdleConns:          10,
		MaxIdleConnsPerHost:   4,
		MaxConnsPerHost:       4,
		IdleConnTimeout:       30 * time.Second,
		ResponseHeaderTimeout: 10 * time.Second,
	}

	loggingTransport := &httputils.LoggingRoundTripper{
		Writer:    httpLogWriter,
		DumpBody:  options.EnableHTTPBodyTrace,
		Transport: transport,
	}

	headerTransport := &httputils.AppendRequestHeadersRoundTripper{
		Headers:   headers,
		Transport: loggingTransport,
	}

	timeout := options.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: headerTransport,
	}
}

// doGet issues one GET and returns the status and the full body. When
// header is non-nil it receives the response headers (for the debug dump).
func doGet(ctx context.Context, client *http.Client, provider, reqURL string, header *http.Header) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, nil, &Error{Type: ErrorTypeInvalidRequest, Provider: provider, Message: "building request", Err: err}
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, &Error{Type: ErrorTypeTransport, Provider: provider, Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, &Error{Type: ErrorTypeTransport, Provider: provider, Message: "reading response body", Err: err}
	}

	if header != nil {
		*header = resp.Header
	}

	return resp.StatusCode, body, nil
}
