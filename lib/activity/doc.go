// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package activity defines the enrollment data served by the activity
// service: a [Snapshot] of every activity, keyed by name, with its
// description, schedule, capacity, and ordered participant list.
//
// A Snapshot is the complete enrollment state at one instant. Clients
// never patch one; they fetch a new one. Entry order is the order the
// server wrote the keys of its JSON object, which Go maps would lose,
// so [ParseSnapshot] walks the object in document order.
package activity
