// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package activitytest provides an in-memory activity service that
// speaks the same REST API as the real one. Tests point an
// activityclient at it through httptest; cmd/rollcall-mock-service
// serves it on a port for local development of the terminal client.
//
// The enrollment rules follow the production service: unknown
// activities are 404, a duplicate or over-capacity signup is 400,
// removing someone who is not enrolled is 404, and GET /activities is
// marked Cache-Control: no-store. Activities keep their seed order in
// every snapshot.
package activitytest
