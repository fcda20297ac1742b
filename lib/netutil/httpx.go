// Copyright 2026 The hipchat-api Authors
// SPDX-License-Identifier: Apache-2.0

// Package netutil provides HTTP I/O helpers for the API client.
//
// Response body reads are bounded at [MaxResponseSize] so that a
// misbehaving server cannot cause unbounded memory allocation. The bound
// applies to the v1 API's JSON responses; the largest legitimate payload
// is a day of room history, which is orders of magnitude below the limit.
package netutil

import (
	"io"
)

// MaxResponseSize is the bound on API response body reads: 32 MB.
// Intentionally generous so it never interferes with normal operation.
const MaxResponseSize int64 = 32 << 20

// ReadResponse reads a JSON API response body up to MaxResponseSize bytes.
// Use instead of io.ReadAll when reading HTTP response bodies.
func ReadResponse(body io.Reader) ([]byte, error) {
	return io.ReadAll(io.LimitReader(body, MaxResponseSize))
}

// ErrorBody reads an HTTP error response body and returns it as a string
// for diagnostic error messages. Read errors are silently ignored — a
// partial or empty body is still useful in an error message.
func ErrorBody(body io.Reader) string {
	data, _ := io.ReadAll(io.LimitReader(body, MaxResponseSize))
	return string(data)
}
