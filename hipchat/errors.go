// Copyright 2026 The hipchat-api Authors
// SPDX-License-Identifier: Apache-2.0

package hipchat

import (
	"errors"
	"fmt"
	"net/http"
)

// RemoteError represents a structured error response from the HipChat
// API. Every non-2xx response carries a JSON envelope of the form
// {"error": {"code": 404, "type": "Not Found", "message": "..."}}
// which decodes into this type. Callers can use errors.As to extract
// the structured information:
//
//	var remoteErr *hipchat.RemoteError
//	if errors.As(err, &remoteErr) {
//	    if remoteErr.StatusCode == http.StatusNotFound { ... }
//	}
//
// or use the status predicates (IsNotFoundError etc.) for the common cases.
type RemoteError struct {
	// Code is the error code reported inside the response body. The v1
	// API mirrors the HTTP status here.
	Code int `json:"code"`
	// Type is the short error class from the server (e.g., "Unauthorized").
	Type string `json:"type"`
	// Message is the human-readable error description from the server.
	Message string `json:"message"`
	// StatusCode is the HTTP status code of the response.
	StatusCode int `json:"-"`
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("hipchat: %s (%d): %s", e.Type, e.StatusCode, e.Message)
}

// TransportError represents a network-level failure: request
// construction, connection establishment, or reading the response body.
// The remote API was never reached, or its response never arrived
// intact. Unwraps to the underlying error.
type TransportError struct {
	// Op describes the attempted operation (e.g., "GET rooms/show").
	Op string
	// Err is the underlying transport error.
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("hipchat: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error, allowing errors.Is and errors.As
// to walk the full chain.
func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError represents a 2xx response whose body could not be mapped
// into the expected shape: malformed JSON, or a response envelope
// missing its resource object. The remote call succeeded; the local
// mapping did not, and no partially populated object is returned.
type DecodeError struct {
	// Endpoint is the API method whose response failed to decode.
	Endpoint string
	// Err describes the decode failure.
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("hipchat: decoding %s response: %v", e.Endpoint, e.Err)
}

// Unwrap returns the underlying decode error.
func (e *DecodeError) Unwrap() error { return e.Err }

// IsRemoteStatus checks whether err is a *RemoteError with the given
// HTTP status code.
func IsRemoteStatus(err error, statusCode int) bool {
	var remoteErr *RemoteError
	if errors.As(err, &remoteErr) {
		return remoteErr.StatusCode == statusCode
	}
	return false
}

// IsAuthenticationError reports whether err is a remote 401: the auth
// token is invalid, or lacks the privilege the operation requires.
func IsAuthenticationError(err error) bool {
	return IsRemoteStatus(err, http.StatusUnauthorized)
}

// IsNotFoundError reports whether err is a remote 404: the room or user
// does not exist.
func IsNotFoundError(err error) bool {
	return IsRemoteStatus(err, http.StatusNotFound)
}

// IsBadRequest reports whether err is a remote 400: the request data
// was rejected by the server.
func IsBadRequest(err error) bool {
	return IsRemoteStatus(err, http.StatusBadRequest)
}

// IsRateLimited reports whether err is a remote 403, which the v1 API
// uses to signal that the token's rate limit has been exceeded.
func IsRateLimited(err error) bool {
	return IsRemoteStatus(err, http.StatusForbidden)
}

// IsServiceUnavailable reports whether err is a remote 503: the service
// is temporarily unavailable.
func IsServiceUnavailable(err error) bool {
	return IsRemoteStatus(err, http.StatusServiceUnavailable)
}
