// Copyright 2026 The Jusogo Authors
// SPDX-License-Identifier: Apache-2.0

package geocode

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents a failed provider call.
type Error struct {
	Type     ErrorType
	Provider string
	Message  string
	Err      error
}

// ErrorType classifies provider call failures.
type ErrorType int

const (
	// ErrorTypeUnknown unclassified failure.
	ErrorTypeUnknown ErrorType = iota
	// ErrorTypeAuth the vendor rejected the credentials.
	ErrorTypeAuth
	// ErrorTypeRateLimit the vendor throttled the call.
	ErrorTypeRateLimit
	// ErrorTypeInvalidRequest the vendor rejected the request parameters.
	ErrorTypeInvalidRequest
	// ErrorTypeTransport the call never produced a usable response.
	ErrorTypeTransport
	// ErrorTypeInvalidResponse the vendor response could not be decoded.
	ErrorTypeInvalidResponse
)

func (t ErrorType) String() string {
	switch t {
	case ErrorTypeAuth:
		return "auth"
	case ErrorTypeRateLimit:
		return "rate_limit"
	case ErrorTypeInvalidRequest:
		return "invalid_request"
	case ErrorTypeTransport:
		return "transport"
	case ErrorTypeInvalidResponse:
		return "invalid_response"
	default:
		return "unknown"
	}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Provider, e.Message, e.Err)
	}

	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsAuthError reports whether the error is a vendor authentication or
// authorization rejection.
func IsAuthError(err error) bool {
	var geoErr *Error
	if errors.As(err, &geoErr) {
		return geoErr.Type == ErrorTypeAuth
	}

	return false
}

// IsTransportError reports whether the error is a network-level failure.
func IsTransportError(err error) bool {
	var geoErr *Error
	if errors.As(err, &geoErr) {
		return geoErr.Type == ErrorTypeTransport
	}

	return false
}

// ClassifyHTTPStatus maps a non-200 vendor status onto an Error.
func ClassifyHTTPStatus(provider string, statusCode int) *Error {
	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &Error{
			Type:     ErrorTypeAuth,
			Provider: provider,
			Message:  fmt.Sprintf("authentication rejected (HTTP %d)", statusCode),
		}
	case http.StatusTooManyRequests:
		return &Error{
			Type:     ErrorTypeRateLimit,
			Provider: provider,
			Message:  "rate limit reached",
		}
	case http.StatusBadRequest:
		return &Error{
			Type:     ErrorTypeInvalidRequest,
			Provider: provider,
			Message:  "invalid request",
		}
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return &Error{
			Type:     ErrorTypeTransport,
			Provider: provider,
			Message:  fmt.Sprintf("service unavailable (HTTP %d)", statusCode),
		}
	default:
		return &Error{
			Type:     ErrorTypeUnknown,
			Provider: provider,
			Message:  fmt.Sprintf("HTTP %d", statusCode),
		}
	}
}
