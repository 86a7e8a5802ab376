// Package memory provides the in-memory ActivityStore implementation.
package memory

import (
	"context"
	"sync"

	"github.com/mergington/activities/internal/domain/activity"
	"github.com/mergington/activities/internal/storage"
)

// Store is an in-memory implementation of storage.ActivityStore. It is
// safe for concurrent use: precondition checks and the roster mutation
// happen under a single critical section, so concurrent signups cannot
// overfill a roster or duplicate an email.
type Store struct {
	mu         sync.RWMutex
	activities map[string]activity.Activity
	seed       map[string]activity.Activity
}

var _ storage.ActivityStore = (*Store)(nil)

// New creates a store populated from the seed. The seed is deep-copied so
// later mutations never leak back into the caller's data, and is retained
// for Reset.
func New(seed map[string]activity.Activity) *Store {
	return &Store{
		activities: cloneRegistry(seed),
		seed:       cloneRegistry(seed),
	}
}

// GetActivity returns a copy of the named activity.
func (s *Store) GetActivity(_ context.Context, name string) (activity.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	act, ok := s.activities[name]
	if !ok {
		return activity.Activity{}, storage.ErrActivityNotFound
	}
	return act.Clone(), nil
}

// ListActivities returns a copy of the full registry keyed by name.
func (s *Store) ListActivities(_ context.Context) (map[string]activity.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneRegistry(s.activities), nil
}

// AddParticipant appends email to the named roster after checking, in
// order, that the activity exists, has free capacity, and does not
// already list the email.
func (s *Store) AddParticipant(_ context.Context, name, email string) (activity.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	act, ok := s.activities[name]
	if !ok {
		return activity.Activity{}, storage.ErrActivityNotFound
	}
	if act.IsFull() {
		return activity.Activity{}, storage.ErrActivityFull
	}
	if act.HasParticipant(email) {
		return activity.Activity{}, storage.ErrAlreadySignedUp
	}

	act.Participants = append(act.Participants, email)
	s.activities[name] = act
	return act.Clone(), nil
}

// RemoveParticipant deletes email from the named roster, preserving the
// relative order of the remaining members.
func (s *Store) RemoveParticipant(_ context.Context, name, email string) (activity.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	act, ok := s.activities[name]
	if !ok {
		return activity.Activity{}, storage.ErrActivityNotFound
	}

	idx := -1
	for i, p := range act.Participants {
		if p == email {
			idx = i
			break
		}
	}
	if idx < 0 {
		return activity.Activity{}, storage.ErrNotSignedUp
	}

	act.Participants = append(append([]string(nil), act.Participants[:idx]...), act.Participants[idx+1:]...)
	s.activities[name] = act
	return act.Clone(), nil
}

// Reset atomically restores the registry to the seed snapshot.
func (s *Store) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.activities = cloneRegistry(s.seed)
	return nil
}

func cloneRegistry(in map[string]activity.Activity) map[string]activity.Activity {
	out := make(map[string]activity.Activity, len(in))
	for name, act := range in {
		out[name] = act.Clone()
	}
	return out
}
