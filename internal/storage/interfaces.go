// Package storage defines the persistence contract for the activity
// registry.
package storage

import (
	"context"

	"github.com/mergington/activities/internal/apperr"
	"github.com/mergington/activities/internal/domain/activity"
)

// Canonical registry errors. The detail strings are part of the client
// contract and must not be reworded.
var (
	ErrActivityNotFound = apperr.NotFound("Activity not found")
	ErrActivityFull     = apperr.Conflict("Activity is full")
	ErrAlreadySignedUp  = apperr.Conflict("Already signed up")
	ErrNotSignedUp      = apperr.Conflict("Student not signed up for this activity")
)

// ActivityStore holds the activity registry. The activity set is fixed for
// the lifetime of the process; only rosters mutate. Implementations must
// make the capacity and membership checks atomic with the mutation.
type ActivityStore interface {
	GetActivity(ctx context.Context, name string) (activity.Activity, error)
	ListActivities(ctx context.Context) (map[string]activity.Activity, error)
	AddParticipant(ctx context.Context, name, email string) (activity.Activity, error)
	RemoveParticipant(ctx context.Context, name, email string) (activity.Activity, error)

	// Reset restores the registry to its seed snapshot. Test harness
	// capability, not a production operation.
	Reset(ctx context.Context) error
}
