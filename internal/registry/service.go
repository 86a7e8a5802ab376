// Package registry implements the activity-signup operations on top of an
// ActivityStore.
package registry

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mergington/activities/internal/apperr"
	"github.com/mergington/activities/internal/domain/activity"
	"github.com/mergington/activities/internal/logging"
	"github.com/mergington/activities/internal/metrics"
	"github.com/mergington/activities/internal/storage"
)

// Service validates and executes the registry operations. The store owns
// the atomicity of check-then-act; the service owns input validation,
// logging and metrics.
type Service struct {
	store storage.ActivityStore
	log   *logging.Logger
}

// New constructs a registry service.
func New(store storage.ActivityStore, log *logging.Logger) *Service {
	if log == nil {
		log = logging.NewDefault("registry")
	}
	return &Service{store: store, log: log}
}

// List returns the full name-to-record mapping of the registry. It never
// mutates state.
func (s *Service) List(ctx context.Context) (map[string]activity.Activity, error) {
	return s.store.ListActivities(ctx)
}

// Get returns a single activity by name.
func (s *Service) Get(ctx context.Context, name string) (activity.Activity, error) {
	return s.store.GetActivity(ctx, name)
}

// Signup adds email to the named activity's roster. Preconditions are
// checked in contract order: activity exists, roster below capacity,
// email not already enrolled. On success the email is appended, keeping
// signup order.
func (s *Service) Signup(ctx context.Context, name, email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", apperr.Conflict("email is required")
	}

	act, err := s.store.AddParticipant(ctx, name, email)
	if err != nil {
		metrics.RecordSignup(signupOutcome(err))
		return "", err
	}
	metrics.RecordSignup("ok")

	s.log.WithField("activity", name).
		WithField("email", email).
		WithField("roster_size", len(act.Participants)).
		Info("participant signed up")
	return fmt.Sprintf("%s signed up for %s", email, name), nil
}

// Unregister removes email from the named activity's roster, preserving
// the order of the remaining members.
func (s *Service) Unregister(ctx context.Context, name, email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", apperr.Conflict("email is required")
	}

	act, err := s.store.RemoveParticipant(ctx, name, email)
	if err != nil {
		metrics.RecordUnregister(unregisterOutcome(err))
		return "", err
	}
	metrics.RecordUnregister("ok")

	s.log.WithField("activity", name).
		WithField("email", email).
		WithField("roster_size", len(act.Participants)).
		Info("participant unregistered")
	return fmt.Sprintf("%s unregistered from %s", email, name), nil
}

func signupOutcome(err error) string {
	switch {
	case errors.Is(err, storage.ErrActivityNotFound):
		return "not_found"
	case errors.Is(err, storage.ErrActivityFull):
		return "full"
	case errors.Is(err, storage.ErrAlreadySignedUp):
		return "duplicate"
	}
	return "error"
}

func unregisterOutcome(err error) string {
	switch {
	case errors.Is(err, storage.ErrActivityNotFound):
		return "not_found"
	case errors.Is(err, storage.ErrNotSignedUp):
		return "not_member"
	}
	return "error"
}
