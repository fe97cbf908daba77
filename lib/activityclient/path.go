// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package activityclient

import (
	"net/url"
	"strings"
)

// EncodeComponent percent-encodes s for use as a single path segment or
// query value. Spaces become %20 rather than "+", '@' becomes %40, and
// '/' becomes %2F, so the result means the same thing in either
// position.
func EncodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// SignupPath is the request target for enrolling email in name.
func SignupPath(name, email string) string {
	return "/activities/" + EncodeComponent(name) + "/signup?email=" + EncodeComponent(email)
}

// UnregisterPath is the request target for removing email from name.
func UnregisterPath(name, email string) string {
	return "/activities/" + EncodeComponent(name) + "/participants?email=" + EncodeComponent(email)
}
