// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package activity

import (
	"errors"
	"slices"
	"testing"
)

const orderedBody = `{
  "Chess Club": {
    "description": "Learn strategies and compete in chess tournaments",
    "schedule": "Fridays, 3:30 PM - 5:00 PM",
    "max_participants": 12,
    "participants": ["michael@mergington.edu", "daniel@mergington.edu"]
  },
  "Art Club": {
    "description": "Paint & draw",
    "schedule": "Thursdays",
    "max_participants": 3,
    "participants": []
  },
  "Band / Orchestra": {
    "description": "Music",
    "schedule": "Mondays",
    "max_participants": 1,
    "participants": ["a@b.com", "c@d.com"]
  }
}`

func TestParseSnapshotPreservesOrder(t *testing.T) {
	snapshot, err := ParseSnapshot([]byte(orderedBody))
	if err != nil {
		t.Fatalf("ParseSnapshot: %v", err)
	}

	want := []string{"Chess Club", "Art Club", "Band / Orchestra"}
	if got := snapshot.Names(); !slices.Equal(got, want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}

	chess := snapshot.Entries[0].Details
	if chess.MaxParticipants != 12 || chess.Schedule != "Fridays, 3:30 PM - 5:00 PM" {
		t.Errorf("Chess Club details = %+v", chess)
	}
	if !slices.Equal(chess.Participants, []string{"michael@mergington.edu", "daniel@mergington.edu"}) {
		t.Errorf("participant order lost: %v", chess.Participants)
	}
}

func TestParseSnapshotOrderIsNotAlphabetical(t *testing.T) {
	snapshot, err := ParseSnapshot([]byte(`{"zeta":{"participants":[]},"alpha":{"participants":[]}}`))
	if err != nil {
		t.Fatalf("ParseSnapshot: %v", err)
	}
	if got := snapshot.Names(); !slices.Equal(got, []string{"zeta", "alpha"}) {
		t.Fatalf("Names() = %v, want [zeta alpha]", got)
	}
}

func TestParseSnapshotDuplicateKey(t *testing.T) {
	body := `{"a":{"max_participants":1,"participants":[]},"b":{"participants":[]},"a":{"max_participants":9,"participants":[]}}`
	snapshot, err := ParseSnapshot([]byte(body))
	if err != nil {
		t.Fatalf("ParseSnapshot: %v", err)
	}
	if got := snapshot.Names(); !slices.Equal(got, []string{"a", "b"}) {
		t.Fatalf("Names() = %v, want [a b]", got)
	}
	if details, _ := snapshot.Lookup("a"); details.MaxParticipants != 9 {
		t.Errorf("duplicate key kept MaxParticipants %d, want 9", details.MaxParticipants)
	}
}

func TestParseSnapshotEmptyObject(t *testing.T) {
	snapshot, err := ParseSnapshot([]byte(`{}`))
	if err != nil {
		t.Fatalf("ParseSnapshot: %v", err)
	}
	if len(snapshot.Entries) != 0 {
		t.Fatalf("got %d entries, want 0", len(snapshot.Entries))
	}
}

func TestParseSnapshotMalformed(t *testing.T) {
	cases := map[string]string{
		"not json":             `<html>Internal Server Error</html>`,
		"array":                `[1,2,3]`,
		"string":               `"activities"`,
		"entry not object":     `{"Chess Club": 4}`,
		"missing participants": `{"Chess Club": {"max_participants": 4}}`,
		"participants string":  `{"Chess Club": {"participants": "a@b.com"}}`,
		"wrong field type":     `{"Chess Club": {"max_participants": "many", "participants": []}}`,
		"fractional capacity":  `{"Chess Club": {"max_participants": 12.0, "participants": []}}`,
		"participant number":   `{"Chess Club": {"max_participants": 12, "participants": ["a@b.com", 7]}}`,
		"one bad entry":        `{"Chess Club": {"max_participants": 12, "participants": []}, "Gym": {"participants": ["x", false]}}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseSnapshot([]byte(body))
			if !errors.Is(err, ErrMalformed) {
				t.Fatalf("err = %v, want ErrMalformed", err)
			}
		})
	}
}

func TestSpotsLeft(t *testing.T) {
	cases := []struct {
		details Details
		want    int
	}{
		{Details{MaxParticipants: 12, Participants: []string{"a", "b"}}, 10},
		{Details{MaxParticipants: 0, Participants: []string{}}, 0},
		{Details{MaxParticipants: 1, Participants: []string{"a", "b", "c"}}, -2},
	}
	for _, testCase := range cases {
		if got := testCase.details.SpotsLeft(); got != testCase.want {
			t.Errorf("SpotsLeft(%+v) = %d, want %d", testCase.details, got, testCase.want)
		}
	}
}

func TestLookupMissing(t *testing.T) {
	snapshot, err := ParseSnapshot([]byte(orderedBody))
	if err != nil {
		t.Fatalf("ParseSnapshot: %v", err)
	}
	if _, ok := snapshot.Lookup("Drama Club"); ok {
		t.Error("Lookup found an activity that is not in the snapshot")
	}
}
