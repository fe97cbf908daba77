// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package activity

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// ErrMalformed is returned by ParseSnapshot when the body is not a JSON
// object of activity details. Field types are strict: max_participants
// must be an integer literal, so 12.0 is rejected, and every participant
// must be a string. One bad entry rejects the whole snapshot; there is
// no partial result.
var ErrMalformed = errors.New("activity: malformed snapshot")

// Details is the per-activity record in a snapshot.
type Details struct {
	Description     string `json:"description"`
	Schedule        string `json:"schedule"`
	MaxParticipants int    `json:"max_participants"`

	// Participants is in enrollment order.
	Participants []string `json:"participants"`
}

// SpotsLeft is capacity minus current enrollment. The server is
// authoritative; a negative value is returned as-is.
func (details Details) SpotsLeft() int {
	return details.MaxParticipants - len(details.Participants)
}

// Entry pairs an activity name with its details.
type Entry struct {
	Name    string
	Details Details
}

// Snapshot is every activity at one instant, in server order.
type Snapshot struct {
	Entries []Entry
}

// Lookup returns the details for name.
func (snapshot Snapshot) Lookup(name string) (Details, bool) {
	for _, entry := range snapshot.Entries {
		if entry.Name == name {
			return entry.Details, true
		}
	}
	return Details{}, false
}

// Names returns the activity names in snapshot order.
func (snapshot Snapshot) Names() []string {
	names := make([]string, len(snapshot.Entries))
	for index, entry := range snapshot.Entries {
		names[index] = entry.Name
	}
	return names
}

// ParseSnapshot decodes a GET /activities body. Entries keep the key
// order of the JSON object. A key that appears twice keeps its first
// position and its last value, as a JavaScript object would.
func ParseSnapshot(data []byte) (Snapshot, error) {
	if !gjson.ValidBytes(data) {
		return Snapshot{}, fmt.Errorf("%w: invalid JSON", ErrMalformed)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return Snapshot{}, fmt.Errorf("%w: expected object, got %s", ErrMalformed, root.Type)
	}

	var snapshot Snapshot
	positions := make(map[string]int)
	var decodeErr error
	root.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		details, err := decodeDetails(value)
		if err != nil {
			decodeErr = fmt.Errorf("%w: activity %q: %v", ErrMalformed, name, err)
			return false
		}
		if position, seen := positions[name]; seen {
			snapshot.Entries[position].Details = details
			return true
		}
		positions[name] = len(snapshot.Entries)
		snapshot.Entries = append(snapshot.Entries, Entry{Name: name, Details: details})
		return true
	})
	if decodeErr != nil {
		return Snapshot{}, decodeErr
	}
	return snapshot, nil
}

func decodeDetails(value gjson.Result) (Details, error) {
	if !value.IsObject() {
		return Details{}, fmt.Errorf("expected object, got %s", value.Type)
	}
	if !value.Get("participants").IsArray() {
		return Details{}, errors.New("participants is not a list")
	}
	var details Details
	if err := json.Unmarshal([]byte(value.Raw), &details); err != nil {
		return Details{}, err
	}
	if details.Participants == nil {
		details.Participants = []string{}
	}
	return details, nil
}
