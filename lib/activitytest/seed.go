// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package activitytest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/rollcall/lib/activity"
)

// seedFile is the on-disk seed format. Activities are a list so the
// file order becomes the snapshot order.
type seedFile struct {
	Activities []seedActivity `yaml:"activities"`
}

type seedActivity struct {
	Name            string   `yaml:"name"`
	Description     string   `yaml:"description"`
	Schedule        string   `yaml:"schedule"`
	MaxParticipants int      `yaml:"max_participants"`
	Participants    []string `yaml:"participants"`
}

// LoadSeed reads a YAML seed file.
//
// Example:
//
//	activities:
//	  - name: Chess Club
//	    description: Learn strategies and compete in chess tournaments
//	    schedule: Fridays, 3:30 PM - 5:00 PM
//	    max_participants: 12
//	    participants: [michael@mergington.edu]
func LoadSeed(path string) (activity.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return activity.Snapshot{}, fmt.Errorf("reading seed: %w", err)
	}
	return ParseSeed(data)
}

// ParseSeed decodes YAML seed data. Names must be non-empty and
// unique, and capacity must not be negative.
func ParseSeed(data []byte) (activity.Snapshot, error) {
	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return activity.Snapshot{}, fmt.Errorf("parsing seed: %w", err)
	}

	var snapshot activity.Snapshot
	seen := make(map[string]bool, len(file.Activities))
	for index, entry := range file.Activities {
		if entry.Name == "" {
			return activity.Snapshot{}, fmt.Errorf("seed activity %d: name is required", index)
		}
		if seen[entry.Name] {
			return activity.Snapshot{}, fmt.Errorf("seed activity %q: duplicate name", entry.Name)
		}
		if entry.MaxParticipants < 0 {
			return activity.Snapshot{}, fmt.Errorf("seed activity %q: max_participants is negative", entry.Name)
		}
		seen[entry.Name] = true

		participants := entry.Participants
		if participants == nil {
			participants = []string{}
		}
		snapshot.Entries = append(snapshot.Entries, activity.Entry{
			Name: entry.Name,
			Details: activity.Details{
				Description:     entry.Description,
				Schedule:        entry.Schedule,
				MaxParticipants: entry.MaxParticipants,
				Participants:    participants,
			},
		})
	}
	return snapshot, nil
}

// DefaultSeed is the stock Mergington High School activity list.
func DefaultSeed() activity.Snapshot {
	return activity.Snapshot{Entries: []activity.Entry{
		{Name: "Chess Club", Details: activity.Details{
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		}},
		{Name: "Programming Class", Details: activity.Details{
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		}},
		{Name: "Gym Class", Details: activity.Details{
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		}},
		{Name: "Basketball Team", Details: activity.Details{
			Description:     "Practice and compete in inter-school basketball games",
			Schedule:        "Wednesdays, 4:00 PM - 6:00 PM",
			MaxParticipants: 15,
			Participants:    []string{},
		}},
		{Name: "Art Studio", Details: activity.Details{
			Description:     "Explore painting, drawing, and mixed media",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 2,
			Participants:    []string{"ava@mergington.edu", "mia@mergington.edu"},
		}},
	}}
}
