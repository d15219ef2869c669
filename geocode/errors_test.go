// Copyright 2026 The Jusogo Authors
// SPDX-License-Identifier: Apache-2.0

package geocode

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyHTTPStatus(t *testing.T) {
	tests := []struct {
		status int
		want   ErrorType
	}{
		{http.StatusUnauthorized, ErrorTypeAuth},
		{http.StatusForbidden, ErrorTypeAuth},
		{http.StatusTooManyRequests, ErrorTypeRateLimit},
		{http.StatusBadRequest, ErrorTypeInvalidRequest},
		{http.StatusBadGateway, ErrorTypeTransport},
		{http.StatusServiceUnavailable, ErrorTypeTransport},
		{http.StatusGatewayTimeout, ErrorTypeTransport},
		{http.StatusTeapot, ErrorTypeUnknown},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("HTTP %d", tt.status), func(t *testing.T) {
			err := ClassifyHTTPStatus("kakao", tt.status)
			require.NotNil(t, err)
			assert.Equal(t, tt.want, err.Type)
			assert.Equal(t, "kakao", err.Provider)
		})
	}
}

func TestErrorString(t *testing.T) {
	err := &Error{Type: ErrorTypeAuth, Provider: "naver", Message: "authentication rejected (HTTP 401)"}
	assert.Equal(t, "naver: authentication rejected (HTTP 401)", err.Error())

	wrapped := &Error{Type: ErrorTypeTransport, Provider: "kakao", Message: "request failed", Err: errors.New("dial tcp: timeout")}
	assert.Equal(t, "kakao: request failed: dial tcp: timeout", wrapped.Error())
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("calling vendor: %w", &Error{Type: ErrorTypeTransport, Provider: "kakao", Message: "request failed", Err: cause})

	var geoErr *Error
	require.True(t, errors.As(err, &geoErr))
	assert.Equal(t, ErrorTypeTransport, geoErr.Type)
	assert.True(t, errors.Is(err, cause))
}

func TestIsAuthError(t *testing.T) {
	auth := &Error{Type: ErrorTypeAuth, Provider: "kakao", Message: "rejected"}

	assert.True(t, IsAuthError(auth))
	assert.True(t, IsAuthError(fmt.Errorf("geocoding: %w", auth)))
	assert.False(t, IsAuthError(&Error{Type: ErrorTypeTransport, Provider: "kakao", Message: "down"}))
	assert.False(t, IsAuthError(errors.New("plain error")))
	assert.False(t, IsAuthError(nil))
}

func TestIsTransportError(t *testing.T) {
	transport := &Error{Type: ErrorTypeTransport, Provider: "naver", Message: "down"}

	assert.True(t, IsTransportError(transport))
	assert.False(t, IsTransportError(&Error{Type: ErrorTypeAuth, Provider: "naver", Message: "rejected"}))
	assert.False(t, IsTransportError(nil))
}

func TestErrorTypeString(t *testing.T) {
	tests := []struct {
		typ  ErrorType
		want string
	}{
		{ErrorTypeUnknown, "unknown"},
		{ErrorTypeAuth, "auth"},
		{ErrorTypeRateLimit, "rate_limit"},
		{ErrorTypeInvalidRequest, "invalid_request"},
		{ErrorTypeTransport, "transport"},
		{ErrorTypeInvalidResponse, "invalid_response"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.typ.String())
	}
}
