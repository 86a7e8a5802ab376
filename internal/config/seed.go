package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mergington/activities/internal/domain/activity"
)

// Seed returns the activity set the registry starts with: the YAML file
// named by SeedFile when set, otherwise the compiled-in default roster.
func (c Config) Seed() (map[string]activity.Activity, error) {
	if c.SeedFile == "" {
		return DefaultSeed(), nil
	}
	return LoadSeed(c.SeedFile)
}

// LoadSeed parses and validates a YAML seed file. The document is a
// mapping from activity name to its record:
//
//	Chess Club:
//	  description: Learn strategies and compete in chess tournaments
//	  schedule: Fridays, 3:30 PM - 5:00 PM
//	  max_participants: 12
//	  participants:
//	    - michael@mergington.edu
func LoadSeed(path string) (map[string]activity.Activity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var seed map[string]activity.Activity
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	for name, act := range seed {
		act.Name = name
		seed[name] = act
	}

	if err := ValidateSeed(seed); err != nil {
		return nil, fmt.Errorf("invalid seed %s: %w", path, err)
	}
	return seed, nil
}

// ValidateSeed enforces the registry invariants on seed data: at least
// one activity, positive capacities, rosters within capacity and free of
// duplicate emails. Name uniqueness is inherent to the mapping.
func ValidateSeed(seed map[string]activity.Activity) error {
	if len(seed) == 0 {
		return fmt.Errorf("no activities defined")
	}
	for name, act := range seed {
		if name == "" {
			return fmt.Errorf("activity with empty name")
		}
		if act.MaxParticipants <= 0 {
			return fmt.Errorf("activity %q: max_participants must be positive", name)
		}
		if len(act.Participants) > act.MaxParticipants {
			return fmt.Errorf("activity %q: %d participants exceed capacity %d",
				name, len(act.Participants), act.MaxParticipants)
		}
		seen := make(map[string]struct{}, len(act.Participants))
		for _, email := range act.Participants {
			if email == "" {
				return fmt.Errorf("activity %q: empty participant email", name)
			}
			if _, dup := seen[email]; dup {
				return fmt.Errorf("activity %q: duplicate participant %s", name, email)
			}
			seen[email] = struct{}{}
		}
	}
	return nil
}

// DefaultSeed returns the built-in activity roster.
func DefaultSeed() map[string]activity.Activity {
	return map[string]activity.Activity{
		"Basketball": {
			Name:            "Basketball",
			Description:     "Team basketball practice and intramural games",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 15,
		},
		"Tennis Club": {
			Name:            "Tennis Club",
			Description:     "Tennis lessons and match competitions",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 10,
		},
		"Drama Club": {
			Name:            "Drama Club",
			Description:     "Theater performances and acting workshops",
			Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 25,
		},
		"Visual Arts": {
			Name:            "Visual Arts",
			Description:     "Painting, drawing, and sculpture techniques",
			Schedule:        "Saturdays, 10:00 AM - 12:00 PM",
			MaxParticipants: 18,
		},
		"Debate Team": {
			Name:            "Debate Team",
			Description:     "Competitive debate and public speaking skills",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 16,
		},
		"Robotics Club": {
			Name:            "Robotics Club",
			Description:     "Build and program robots for competitions",
			Schedule:        "Thursdays and Saturdays, 3:30 PM - 5:30 PM",
			MaxParticipants: 20,
		},
		"Chess Club": {
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		"Programming Class": {
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		"Gym Class": {
			Name:            "Gym Class",
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
	}
}
