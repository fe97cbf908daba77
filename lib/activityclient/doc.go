// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package activityclient is a typed client for the activity service's
// REST API:
//
//	GET    /activities                                -> snapshot
//	POST   /activities/{name}/signup?email={email}        -> {"message"} | {"detail"}
//	DELETE /activities/{name}/participants?email={email}  -> {"message"} | {"detail"}
//
// Activity names and emails are percent-encoded the way a browser's
// encodeURIComponent would encode them (see [EncodeComponent]), so a
// name like "Band / Orchestra" reaches the server as one path segment.
//
// Errors come in three shapes, which callers tell apart with
// errors.As and errors.Is:
//
//   - [*APIError]: the server answered with a non-2xx status. Detail
//     holds the server's explanation when it sent one.
//   - [ErrMalformedResponse]: the server answered, but the body was not
//     the expected JSON.
//   - anything else: the request never completed (connection refused,
//     context cancelled, DNS failure).
package activityclient
