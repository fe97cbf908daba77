// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package netutil

import (
	"errors"
	"net"
	"net/http"
)

// IsServerClosed reports whether err is the normal result of stopping
// an HTTP server: [http.ErrServerClosed] from Serve after Shutdown, or
// [net.ErrClosed] when the listener was closed underneath it. Neither
// should be reported as a failure.
func IsServerClosed(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, http.ErrServerClosed) || errors.Is(err, net.ErrClosed)
}
