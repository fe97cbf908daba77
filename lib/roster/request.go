// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package roster

import "fmt"

// MutationKind identifies the operation a MutationRequest performs.
type MutationKind int

const (
	// MutationSignup enrolls an email in an activity.
	MutationSignup MutationKind = iota + 1

	// MutationUnregister removes an email from an activity.
	MutationUnregister
)

func (kind MutationKind) String() string {
	switch kind {
	case MutationSignup:
		return "signup"
	case MutationUnregister:
		return "unregister"
	default:
		return fmt.Sprintf("MutationKind(%d)", int(kind))
	}
}

// MutationRequest is an immutable description of one mutation. It is
// a plain value: copying it into a rendered row captures the activity
// and email as they were when the row was built.
type MutationRequest struct {
	Kind     MutationKind
	Activity string
	Email    string
}

// SignupRequest describes enrolling email in activity.
func SignupRequest(activity, email string) MutationRequest {
	return MutationRequest{Kind: MutationSignup, Activity: activity, Email: email}
}

// UnregisterRequest describes removing email from activity.
func UnregisterRequest(activity, email string) MutationRequest {
	return MutationRequest{Kind: MutationUnregister, Activity: activity, Email: email}
}
