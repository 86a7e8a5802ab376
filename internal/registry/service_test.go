package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/mergington/activities/internal/apperr"
	"github.com/mergington/activities/internal/domain/activity"
	"github.com/mergington/activities/internal/storage"
	"github.com/mergington/activities/internal/storage/memory"
)

func newService() (*Service, *memory.Store) {
	store := memory.New(map[string]activity.Activity{
		"Basketball": {
			Name:            "Basketball",
			Description:     "Team basketball practice and intramural games",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 15,
		},
		"Chess Club": {
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
	})
	return New(store, nil), store
}

func TestService_Signup(t *testing.T) {
	svc, store := newService()
	ctx := context.Background()

	msg, err := svc.Signup(ctx, "Basketball", "alice@x.edu")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if msg != "alice@x.edu signed up for Basketball" {
		t.Fatalf("unexpected message %q", msg)
	}

	act, _ := store.GetActivity(ctx, "Basketball")
	if len(act.Participants) != 1 || act.Participants[0] != "alice@x.edu" {
		t.Fatalf("expected alice enrolled, got %v", act.Participants)
	}

	// Second identical signup must fail and leave the roster unchanged.
	if _, err := svc.Signup(ctx, "Basketball", "alice@x.edu"); !errors.Is(err, storage.ErrAlreadySignedUp) {
		t.Fatalf("expected ErrAlreadySignedUp, got %v", err)
	}
	act, _ = store.GetActivity(ctx, "Basketball")
	if len(act.Participants) != 1 {
		t.Fatalf("roster changed on failed signup: %v", act.Participants)
	}
}

func TestService_SignupFull(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	// Chess Club starts at 2/12; ten more distinct signups fill it.
	emails := []string{
		"s0@x.edu", "s1@x.edu", "s2@x.edu", "s3@x.edu", "s4@x.edu",
		"s5@x.edu", "s6@x.edu", "s7@x.edu", "s8@x.edu", "s9@x.edu",
	}
	for _, email := range emails {
		if _, err := svc.Signup(ctx, "Chess Club", email); err != nil {
			t.Fatalf("signup %s: %v", email, err)
		}
	}

	_, err := svc.Signup(ctx, "Chess Club", "extra@x.edu")
	if !errors.Is(err, storage.ErrActivityFull) {
		t.Fatalf("expected ErrActivityFull, got %v", err)
	}
}

func TestService_SignupValidation(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	if _, err := svc.Signup(ctx, "NoSuchClub", "x@x.edu"); !errors.Is(err, storage.ErrActivityNotFound) {
		t.Fatalf("expected ErrActivityNotFound, got %v", err)
	}

	_, err := svc.Signup(ctx, "Basketball", "   ")
	var se *apperr.Error
	if !errors.As(err, &se) || se.Category != apperr.CategoryConflict {
		t.Fatalf("expected conflict for blank email, got %v", err)
	}
}

func TestService_Unregister(t *testing.T) {
	svc, store := newService()
	ctx := context.Background()

	msg, err := svc.Unregister(ctx, "Chess Club", "michael@mergington.edu")
	if err != nil {
		t.Fatalf("unregister: %v", err)
	}
	if msg != "michael@mergington.edu unregistered from Chess Club" {
		t.Fatalf("unexpected message %q", msg)
	}

	act, _ := store.GetActivity(ctx, "Chess Club")
	if len(act.Participants) != 1 || act.Participants[0] != "daniel@mergington.edu" {
		t.Fatalf("expected only daniel left, got %v", act.Participants)
	}

	if _, err := svc.Unregister(ctx, "Chess Club", "michael@mergington.edu"); !errors.Is(err, storage.ErrNotSignedUp) {
		t.Fatalf("expected ErrNotSignedUp, got %v", err)
	}
	if _, err := svc.Unregister(ctx, "NoSuchClub", "x@x.edu"); !errors.Is(err, storage.ErrActivityNotFound) {
		t.Fatalf("expected ErrActivityNotFound, got %v", err)
	}
}

func TestService_SignupUnregisterRoundTrip(t *testing.T) {
	svc, store := newService()
	ctx := context.Background()

	before, _ := store.GetActivity(ctx, "Chess Club")

	if _, err := svc.Signup(ctx, "Chess Club", "alice@x.edu"); err != nil {
		t.Fatalf("signup: %v", err)
	}
	if _, err := svc.Unregister(ctx, "Chess Club", "alice@x.edu"); err != nil {
		t.Fatalf("unregister: %v", err)
	}

	after, _ := store.GetActivity(ctx, "Chess Club")
	if len(after.Participants) != len(before.Participants) {
		t.Fatalf("round trip changed roster size: %v vs %v", before.Participants, after.Participants)
	}
	for i := range before.Participants {
		if after.Participants[i] != before.Participants[i] {
			t.Fatalf("round trip reordered roster: %v vs %v", before.Participants, after.Participants)
		}
	}
}

func TestService_ListDoesNotMutate(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	first, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(first) != 2 {
		t.Fatalf("expected 2 activities, got %d", len(first))
	}
	for name, act := range first {
		if act.Description == "" || act.Schedule == "" || act.MaxParticipants <= 0 || act.Participants == nil {
			t.Fatalf("activity %q missing fields: %+v", name, act)
		}
	}

	second, _ := svc.List(ctx)
	if len(second["Chess Club"].Participants) != len(first["Chess Club"].Participants) {
		t.Fatalf("listing mutated state")
	}
}
