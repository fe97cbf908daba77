// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package netutil provides HTTP response helpers shared by the
// activity client and its in-memory test service.
//
// Every JSON response body is read through [ReadResponse], which caps
// the read at [MaxResponseSize] so a misbehaving server cannot make the
// client buffer an unbounded body.
package netutil

import (
	"encoding/json"
	"io"
	"net/http"
)

// MaxResponseSize bounds JSON response body reads: 16 MB. An activity
// snapshot for a large school is a few hundred kilobytes.
const MaxResponseSize int64 = 16 << 20

// ReadResponse reads a JSON API response body up to MaxResponseSize bytes.
func ReadResponse(body io.Reader) ([]byte, error) {
	return io.ReadAll(io.LimitReader(body, MaxResponseSize))
}

// IsSuccess reports whether status is a 2xx code, which is what the
// browser's Response.ok checks.
func IsSuccess(status int) bool {
	return status >= 200 && status < 300
}

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(writer http.ResponseWriter, status int, v any) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	_ = json.NewEncoder(writer).Encode(v)
}
