// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"fmt"
	"sync/atomic"
)

var uniqueCounter atomic.Uint64

// UniqueID returns "prefix-N" with N increasing across the test binary.
//
//	name := testutil.UniqueID("club")            // "club-1", "club-2", ...
//	email := testutil.UniqueEmail("student")     // "student-3@example.edu"
func UniqueID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, uniqueCounter.Add(1))
}

// UniqueEmail returns a distinct address under example.edu.
func UniqueEmail(prefix string) string {
	return UniqueID(prefix) + "@example.edu"
}
